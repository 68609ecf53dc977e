package sqlserver

import (
	"github.com/efaps/esql/metadata/database"
	"github.com/efaps/esql/metadata/info"
	"github.com/efaps/esql/metadata/info/placeholder"
	"github.com/efaps/esql/metadata/registry"
)

const product = "SQLServer"

var sqlServer = database.Product{
	Name:      product,
	DriverPkg: "mssql",
}

// SQLServer returns SQL Server product
func SQLServer() *database.Product { return &sqlServer }

func init() {
	registry.RegisterDialect(&info.Dialect{
		Product:             sqlServer,
		Placeholder:         "@p",
		PlaceholderResolver: &placeholder.Ordinal{Prefix: "@p"},
		QuoteCharacter:      '\'',
		IdentifierQuote:     "[",
		IdentifierQuoteEnd:  "]",
		CaseFunc:            "UPPER",
		CurrentTimestamp:    "CURRENT_TIMESTAMP",
		MaxInList:           2000,
		VersionSQL:          "SELECT @@VERSION",
		SequenceCreate:      "CREATE SEQUENCE %s START WITH %d INCREMENT BY 1",
		SequenceNext:        "SELECT NEXT VALUE FOR %s",
	})
}
