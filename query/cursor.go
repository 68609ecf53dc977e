package query

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"

	"github.com/efaps/esql/io"
	"github.com/efaps/esql/io/errx"
	"github.com/efaps/esql/io/read"
	"github.com/efaps/esql/option"
	"github.com/viant/xunsafe"
)

type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// Cursor iterates statement result rows, values are addressed by select expression
type Cursor struct {
	statement *Statement
	rows      *sql.Rows
	values    []interface{}
	holders   []interface{}
	fields    map[reflect.Type][]io.Field
	err       error
}

// Next advances cursor to the next row
func (c *Cursor) Next() bool {
	if c.err != nil || !c.rows.Next() {
		return false
	}
	if err := c.rows.Scan(c.holders...); err != nil {
		c.err = errx.Execution(c.statement.Label, err)
		return false
	}
	return true
}

// Err returns iteration error
func (c *Cursor) Err() error {
	if c.err != nil {
		return c.err
	}
	if err := c.rows.Err(); err != nil {
		return errx.Execution(c.statement.Label, err)
	}
	return nil
}

// Close closes underlying rows
func (c *Cursor) Close() error {
	return c.rows.Close()
}

// Statement returns executed statement
func (c *Cursor) Statement() *Statement {
	return c.statement
}

// ID returns current object id
func (c *Cursor) ID() int64 {
	var id int64
	_ = read.Assign(&id, c.values[0])
	return id
}

// Value returns current row value for the expression
func (c *Cursor) Value(expression string) (interface{}, bool) {
	pos, ok := c.statement.Position(expression)
	if !ok {
		return nil, false
	}
	return read.Normalize(c.values[pos]), true
}

// String returns value as string, empty for NULL or unknown expression
func (c *Cursor) String(expression string) string {
	var result string
	c.assign(expression, &result)
	return result
}

// Int returns value as int64
func (c *Cursor) Int(expression string) int64 {
	var result int64
	c.assign(expression, &result)
	return result
}

// Float returns value as float64
func (c *Cursor) Float(expression string) float64 {
	var result float64
	c.assign(expression, &result)
	return result
}

// Bool returns value as bool
func (c *Cursor) Bool(expression string) bool {
	var result bool
	c.assign(expression, &result)
	return result
}

func (c *Cursor) assign(expression string, dest interface{}) {
	value, ok := c.Value(expression)
	if !ok {
		return
	}
	if err := read.Assign(dest, value); err != nil && c.err == nil {
		c.err = fmt.Errorf("failed to read %v: %w", expression, err)
	}
}

// Scan copies current row into struct fields tagged with select expressions, i.e. `select:"linkto[Creator].attribute[Name]"`
func (c *Cursor) Scan(dest interface{}) error {
	destType := reflect.TypeOf(dest)
	if destType == nil || destType.Kind() != reflect.Ptr || destType.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("expected pointer to struct, but had %T", dest)
	}
	fields, ok := c.fields[destType]
	if !ok {
		var err error
		if fields, err = io.NewMatcher(option.TagSelect).Partial().Match(destType, c.statement.Expressions()); err != nil {
			return err
		}
		c.fields[destType] = fields
	}
	ptr := xunsafe.AsPointer(dest)
	for i := range fields {
		if fields[i].Field == nil {
			continue
		}
		if err := read.Assign(fields[i].Addr(ptr), c.values[i]); err != nil {
			return fmt.Errorf("failed to assign %v: %w", fields[i].Column, err)
		}
	}
	return nil
}

// Query executes statement, *sql.Tx option takes precedence over db
func (s *Statement) Query(ctx context.Context, db *sql.DB, options ...option.Option) (*Cursor, error) {
	var target querier
	switch tx := option.Options(options).Tx(); {
	case tx != nil:
		target = tx
	case db != nil:
		target = db
	default:
		return nil, fmt.Errorf("db was nil")
	}
	rows, err := target.QueryContext(ctx, s.SQL, s.Args...)
	if err != nil {
		return nil, errx.Execution(s.Label, err)
	}
	cursor := &Cursor{
		statement: s,
		rows:      rows,
		values:    make([]interface{}, len(s.Columns)),
		holders:   make([]interface{}, len(s.Columns)),
		fields:    map[reflect.Type][]io.Field{},
	}
	for i := range cursor.values {
		cursor.holders[i] = &cursor.values[i]
	}
	return cursor, nil
}

// Execute builds the query and executes it, construction errors prevent any SQL from being sent
func (q *Query) Execute(ctx context.Context, db *sql.DB, options ...option.Option) (*Cursor, error) {
	statement, err := q.Build()
	if err != nil {
		return nil, err
	}
	return statement.Query(ctx, db, options...)
}
