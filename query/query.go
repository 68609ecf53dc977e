// Package query assembles select expressions, predicates and order clauses into dialect specific SQL
package query

import (
	"log/slog"

	"github.com/efaps/esql/io/errx"
	"github.com/efaps/esql/metadata/info"
	"github.com/efaps/esql/metadata/product/ansi"
	"github.com/efaps/esql/metadata/schema"
	"github.com/efaps/esql/option"
	"github.com/efaps/esql/query/predicate"
)

type (
	// Order represents order by clause
	Order struct {
		Expression string
		Desc       bool
	}

	// Query represents object query over a base type and its descendants
	Query struct {
		label    string
		cache    *schema.Cache
		baseType *schema.Type
		dialect  *info.Dialect
		logger   *slog.Logger
		selects  []string
		where    *predicate.Node
		orders   []Order
	}
)

// Select adds select expressions, a bare attribute name stands for attribute[name]
func (q *Query) Select(expressions ...string) *Query {
	for _, expression := range expressions {
		q.selects = append(q.selects, predicate.Attr(expression).Expression)
	}
	return q
}

// Where sets filter predicate
func (q *Query) Where(node *predicate.Node) *Query {
	q.where = node
	return q
}

// OrderBy adds order clauses
func (q *Query) OrderBy(orders ...Order) *Query {
	for _, order := range orders {
		order.Expression = predicate.Attr(order.Expression).Expression
		q.orders = append(q.orders, order)
	}
	return q
}

// Type returns query base type
func (q *Query) Type() *schema.Type {
	return q.baseType
}

// Dialect returns query dialect
func (q *Query) Dialect() *info.Dialect {
	return q.dialect
}

// New creates a query for the type, supported options: *info.Dialect, *slog.Logger, option.Label
func New(cache *schema.Cache, typeName string, options ...option.Option) (*Query, error) {
	opts := option.Options(options)
	label := opts.Label()
	if label == "" {
		label = typeName
	}
	if cache == nil {
		return nil, errx.UnknownType(label, typeName)
	}
	baseType, ok := cache.Type(typeName)
	if !ok {
		return nil, errx.UnknownType(label, typeName)
	}
	dialect := opts.Dialect()
	if dialect == nil {
		dialect = ansi.Dialect()
	}
	return &Query{
		label:    label,
		cache:    cache,
		baseType: baseType,
		dialect:  dialect,
		logger:   opts.Logger(),
	}, nil
}
