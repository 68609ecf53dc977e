package schema

// IDColumn is the object identity column every table carries
const IDColumn = "ID"

// Table represents SQL table a type or attribute is stored in
type Table struct {
	Name       string
	TypeColumn string //discriminator column holding type id, empty when table stores a single type
}

// HasTypeColumn returns true if table stores more than one type
func (t *Table) HasTypeColumn() bool {
	return t.TypeColumn != ""
}
