package sqlite

import (
	"github.com/efaps/esql/metadata/database"
	"github.com/efaps/esql/metadata/info"
	"github.com/efaps/esql/metadata/registry"
)

const product = "SQLite"

var sqLite3 = database.Product{
	Name:      product,
	Major:     3,
	DriverPkg: "sqlite3",
	Driver:    "SQLiteDriver",
}

//SQLite3 return SQLite3 product
func SQLite3() *database.Product {
	return &sqLite3
}

func init() {
	registry.RegisterDialect(&info.Dialect{
		Product:          sqLite3,
		Placeholder:      "?",
		QuoteCharacter:   '\'',
		IdentifierQuote:  `"`,
		CaseFunc:         "UPPER",
		CurrentTimestamp: "CURRENT_TIMESTAMP",
		MaxInList:        999,
		VersionSQL:       "SELECT sqlite_version()",
	})
}
