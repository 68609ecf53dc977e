package query

import (
	"github.com/efaps/esql/metadata/schema"
	"github.com/efaps/esql/query/buffer"
	"github.com/efaps/esql/query/predicate"
	"github.com/efaps/esql/query/selection"
	"github.com/efaps/esql/query/table"
	"github.com/google/uuid"
)

type orderColumn struct {
	*selection.Resolved
	desc bool
}

// Build resolves select expressions, predicate and order clauses against one table alias allocator and renders SQL,
// no statement is returned on error
func (q *Query) Build() (*Statement, error) {
	env := &selection.Env{Cache: q.cache, Tables: table.New(q.baseType.MainTable.Name), Query: q.label}
	statement := &Statement{
		ID:        uuid.New().String(),
		Label:     q.label,
		Type:      q.baseType,
		positions: map[string]int{},
	}
	statement.addColumn(&selection.Resolved{Expression: IDExpression, Type: q.baseType, Columns: []string{schema.IDColumn}})
	for _, expression := range q.selects {
		part, err := selection.Parse(expression)
		if err != nil {
			return nil, err
		}
		resolved, err := part.Resolve(env, q.baseType, 0)
		if err != nil {
			return nil, err
		}
		statement.addColumn(resolved)
	}
	var where *predicate.Prepared
	if q.where != nil {
		var err error
		if where, err = q.where.Prepare(env, q.baseType, q.logger); err != nil {
			return nil, err
		}
	}
	var orders []*orderColumn
	for _, order := range q.orders {
		part, err := selection.Parse(order.Expression)
		if err != nil {
			return nil, err
		}
		resolved, err := part.Resolve(env, q.baseType, 0)
		if err != nil {
			return nil, err
		}
		orders = append(orders, &orderColumn{Resolved: resolved, desc: order.Desc})
	}
	env.Tables.Seal()

	SQL := buffer.New(q.dialect)
	if err := q.render(SQL, statement, env.Tables, where, orders); err != nil {
		return nil, err
	}
	statement.SQL = SQL.String()
	statement.Args = SQL.Args()
	if q.dialect.BindValues {
		statement.SQL = q.dialect.EnsurePlaceholders(statement.SQL)
	}
	q.logger.Debug("statement built", "id", statement.ID, "query", q.label, "sql", statement.SQL)
	return statement, nil
}

func (q *Query) render(SQL *buffer.SQL, statement *Statement, tables *table.Allocator, where *predicate.Prepared, orders []*orderColumn) error {
	SQL.Append("SELECT ")
	for i, column := range statement.Columns {
		if i > 0 {
			SQL.Append(", ")
		}
		SQL.Column(column.Index, column.Name, false)
	}
	SQL.Append(" FROM ").Identifier(q.baseType.MainTable.Name).Append(" ", table.Alias(0))
	for _, join := range tables.Joins() {
		SQL.Append(" LEFT JOIN ").Identifier(join.Table).Append(" ", table.Alias(join.Index), " ON ")
		SQL.Column(join.Index, join.Left, false).Append(" = ").Column(join.Parent, join.Right, false)
	}
	hasTypeFilter := q.baseType.MainTable.HasTypeColumn()
	if hasTypeFilter || where != nil {
		SQL.Append(" WHERE ")
	}
	if hasTypeFilter {
		if err := q.appendTypeFilter(SQL); err != nil {
			return err
		}
		if where != nil {
			SQL.Append(" AND ")
		}
	}
	if where != nil {
		if err := where.AppendSQL(SQL); err != nil {
			return err
		}
	}
	for i, order := range orders {
		if i == 0 {
			SQL.Append(" ORDER BY ")
		} else {
			SQL.Append(", ")
		}
		SQL.Column(order.Index, order.Columns[0], false)
		if order.desc {
			SQL.Append(" DESC")
		}
	}
	return nil
}

// appendTypeFilter restricts rows of a shared main table to the base type and its descendants
func (q *Query) appendTypeFilter(SQL *buffer.SQL) error {
	types := q.baseType.Descendants()
	SQL.Column(0, q.baseType.MainTable.TypeColumn, false)
	if len(types) == 1 {
		SQL.Append(" = ")
		return SQL.Value(types[0].ID, false)
	}
	SQL.Append(" IN (")
	for i, aType := range types {
		if i > 0 {
			SQL.Append(", ")
		}
		if err := SQL.Value(aType.ID, false); err != nil {
			return err
		}
	}
	SQL.Append(")")
	return nil
}
