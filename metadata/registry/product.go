package registry

import (
	"database/sql"
	"reflect"
	"strings"

	"github.com/efaps/esql/metadata/database"
)

const defaultProductName = "ansi"

//MatchProduct matches product with sql driver
func MatchProduct(db *sql.DB) *database.Product {
	driverType := reflect.TypeOf(db.Driver())
	if driverType.Kind() == reflect.Ptr {
		driverType = driverType.Elem()
	}
	driverTypePair := strings.Split(driverType.String(), ".")
	driverPkg := driverTypePair[0]
	driverName := driverTypePair[len(driverTypePair)-1]
	var product, defaultProduct *database.Product
	for name, candidate := range Products() {
		if strings.Contains(driverPkg, name) ||
			(candidate.DriverPkg != "" && strings.Contains(driverPkg, candidate.DriverPkg)) ||
			(candidate.Driver != "" && strings.Contains(candidate.Driver, driverName) && driverName != "Driver") {
			matched := *candidate
			matched.DriverPkg = driverPkg
			matched.Driver = driverName
			product = &matched
		}
		if strings.Contains(strings.ToLower(candidate.Driver), defaultProductName) {
			defaultProduct = candidate
		}
	}
	if product == nil {
		product = defaultProduct
	}
	return product
}
