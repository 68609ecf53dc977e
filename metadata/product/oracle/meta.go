package oracle

import (
	"github.com/efaps/esql/metadata/database"
	"github.com/efaps/esql/metadata/info"
	"github.com/efaps/esql/metadata/registry"
)

const product = "Oracle"

// MaxInList is the maximum number of expressions Oracle accepts in a single IN list
const MaxInList = 1000

var oracleProduct = database.Product{
	Name:      product,
	DriverPkg: "godror",
}

// Oracle returns Oracle product
func Oracle() *database.Product { return &oracleProduct }

func init() {
	registry.RegisterDialect(&info.Dialect{
		Product:          oracleProduct,
		Placeholder:      "?",
		QuoteCharacter:   '\'',
		IdentifierQuote:  `"`,
		CaseFunc:         "UPPER",
		CurrentTimestamp: "SYSTIMESTAMP",
		TimestampLiteral: "TIMESTAMP %s",
		MaxInList:        MaxInList,
		VersionSQL:       "SELECT banner FROM v$version WHERE banner LIKE 'Oracle%' AND ROWNUM = 1",
		SequenceCreate:   "CREATE SEQUENCE %s START WITH %d INCREMENT BY 1 NOCACHE",
		SequenceNext:     "SELECT %s.NEXTVAL FROM DUAL",
	})
}
