package query

import (
	"github.com/efaps/esql/metadata/schema"
	"github.com/efaps/esql/query/selection"
)

// IDExpression identifies object id column, always selected at position 0
const IDExpression = "id"

type (
	// Column represents selected column
	Column struct {
		Expression string
		Position   int
		Index      int //table alias index
		Name       string
		Attribute  *schema.Attribute //nil for id and class columns
	}

	// Statement represents rendered query
	Statement struct {
		ID        string
		Label     string
		Type      *schema.Type
		SQL       string
		Args      []interface{}
		Columns   []*Column
		positions map[string]int
	}
)

// Position returns result position of the first column selected with the expression
func (s *Statement) Position(expression string) (int, bool) {
	if pos, ok := s.positions[expression]; ok {
		return pos, true
	}
	part, err := selection.Parse(expression)
	if err != nil {
		pos, ok := s.positions["attribute["+expression+"]"]
		return pos, ok
	}
	pos, ok := s.positions[part.String()]
	return pos, ok
}

// Expressions returns column expressions in result order
func (s *Statement) Expressions() []string {
	var result = make([]string, len(s.Columns))
	for i, column := range s.Columns {
		result[i] = column.Expression
	}
	return result
}

func (s *Statement) addColumn(resolved *selection.Resolved) *Column {
	column := &Column{
		Expression: resolved.Expression,
		Position:   len(s.Columns),
		Index:      resolved.Index,
		Name:       resolved.Columns[0],
		Attribute:  resolved.Attribute,
	}
	if _, ok := s.positions[column.Expression]; !ok {
		s.positions[column.Expression] = column.Position
	}
	s.Columns = append(s.Columns, column)
	return column
}
