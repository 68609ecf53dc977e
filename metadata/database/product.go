package database

import "strings"

// Product represents database product
type Product struct {
	Name      string
	Driver    string
	DriverPkg string
	Major     int
	Minor     int
	Release   int
}

// Key returns registry key of the product
func (p *Product) Key() string {
	return strings.ToLower(p.Name)
}

// Equal checks if product name and major.minor versions are equal
func (p *Product) Equal(product *Product) bool {
	if !strings.EqualFold(p.Name, product.Name) {
		return false
	}
	return p.Major == product.Major && p.Minor == product.Minor
}

// New crates new product with supplied version
func (p *Product) New(major, minor, release int) *Product {
	return &Product{
		Name:      p.Name,
		Driver:    p.Driver,
		DriverPkg: p.DriverPkg,
		Major:     major,
		Minor:     minor,
		Release:   release,
	}
}
