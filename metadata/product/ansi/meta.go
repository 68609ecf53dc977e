package ansi

import (
	"github.com/efaps/esql/metadata/database"
	"github.com/efaps/esql/metadata/info"
	"github.com/efaps/esql/metadata/info/placeholder"
	"github.com/efaps/esql/metadata/registry"
)

//Product represents product
const product = "ANSI"

//ANSI defines default product
var ANSI = database.Product{
	Name:   product,
	Major:  1,
	Driver: "ansi",
}

//Dialect returns default dialect, used when no product matches
func Dialect() *info.Dialect {
	return registry.LookupDialect(&ANSI)
}

func init() {
	registry.RegisterDialect(&info.Dialect{
		Product:             ANSI,
		Placeholder:         "?",
		PlaceholderResolver: &placeholder.Positional{},
		QuoteCharacter:      '\'',
		IdentifierQuote:     `"`,
		CaseFunc:            "UPPER",
		CurrentTimestamp:    "CURRENT_TIMESTAMP",
		TimestampLiteral:    "TIMESTAMP %s",
		BooleanLiterals:     true,
		SequenceCreate:      "CREATE SEQUENCE %s START WITH %d",
		SequenceNext:        "SELECT NEXT VALUE FOR %s",
	})
}
