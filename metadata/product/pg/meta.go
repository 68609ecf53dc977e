package pg

import (
	"github.com/efaps/esql/metadata/database"
	"github.com/efaps/esql/metadata/info"
	"github.com/efaps/esql/metadata/info/placeholder"
	"github.com/efaps/esql/metadata/registry"
)

const product = "PostgreSQL"

var pgSQL9 = database.Product{
	Name:      product,
	DriverPkg: "pq",
	Major:     9,
}

//PqSQL9 return PostgreSQL 9.x product
func PqSQL9() *database.Product {
	return &pgSQL9
}

func init() {
	registry.RegisterDialect(&info.Dialect{
		Product:             pgSQL9,
		Placeholder:         "$",
		PlaceholderResolver: &placeholder.Ordinal{Prefix: "$"},
		QuoteCharacter:      '\'', // 39 is single quote '
		IdentifierQuote:     `"`,
		CaseFunc:            "UPPER",
		CurrentTimestamp:    "CURRENT_TIMESTAMP",
		TimestampLiteral:    "TIMESTAMP %s",
		BooleanLiterals:     true,
		VersionSQL:          "SELECT version()",
		SequenceCreate:      "CREATE SEQUENCE %s INCREMENT 1 MINVALUE 1 MAXVALUE 9223372036854775807 START %d CACHE 1",
		SequenceNext:        "SELECT nextval('%s')",
	})
}
