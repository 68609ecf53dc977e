package mysql

import (
	"github.com/efaps/esql/metadata/database"
	"github.com/efaps/esql/metadata/info"
	"github.com/efaps/esql/metadata/registry"
)

const product = "MySQL"

var mySQL5 = database.Product{
	Name:  product,
	Major: 5,
}

var mySQL8 = database.Product{
	Name:  product,
	Major: 8,
}

//MySQL5 return MySQL 5.x product
func MySQL5() *database.Product {
	return &mySQL5
}

//MySQL8 return MySQL 8.x product
func MySQL8() *database.Product {
	return &mySQL8
}

func newDialect(product database.Product) *info.Dialect {
	return &info.Dialect{
		Product:          product,
		Placeholder:      "?",
		QuoteCharacter:   '\'',
		BackslashEscapes: true,
		IdentifierQuote:  "`",
		CaseFunc:         "UPPER",
		CurrentTimestamp: "CURRENT_TIMESTAMP",
		TimestampLiteral: "TIMESTAMP %s",
		BooleanLiterals:  true,
		VersionSQL:       "SELECT VERSION()",
	}
}

func init() {
	registry.RegisterDialect(newDialect(mySQL5))
	registry.RegisterDialect(newDialect(mySQL8))
}
