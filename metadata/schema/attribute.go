package schema

// Attribute represents type attribute mapped to table columns
type Attribute struct {
	ID         int64
	Name       string
	Kind       Kind
	Owner      *Type
	Table      *Table
	Columns    []string
	LinkTarget string //target type name for link kinds, status group name for status kind
}

// Column returns attribute value column
func (a *Attribute) Column() string {
	return a.Columns[0]
}

// IsLink returns true if attribute refers to another object
func (a *Attribute) IsLink() bool {
	return a.Kind.IsLink()
}
