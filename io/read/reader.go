package read

import (
	"context"
	"database/sql"
	"fmt"
	"reflect"

	"github.com/efaps/esql/metadata/info"
	"github.com/efaps/esql/metadata/registry"
	"github.com/efaps/esql/option"
)

type querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

//Reader represents generic query reader
type Reader struct {
	query   string
	newRow  func() interface{}
	tagName string
	querier querier
	mapper  RowMapper
}

//QueryAll query all
func (r *Reader) QueryAll(ctx context.Context, emit func(row interface{}) error, args ...interface{}) error {
	rows, err := r.querier.QueryContext(ctx, r.query, args...)
	if err != nil {
		return fmt.Errorf("failed to run query: %v, due to %w", r.query, err)
	}
	defer rows.Close()
	return r.ReadAll(ctx, rows, emit)
}

//ReadAll read all
func (r *Reader) ReadAll(ctx context.Context, rows *sql.Rows, emit func(row interface{}) error) error {
	columns, err := rows.Columns()
	if err != nil {
		return err
	}
	var values = make([]interface{}, len(columns))
	var holders = make([]interface{}, len(columns))
	for i := range values {
		holders[i] = &values[i]
	}
	for rows.Next() {
		if err = ctx.Err(); err != nil {
			return err
		}
		if err = rows.Scan(holders...); err != nil {
			return fmt.Errorf("failed to scan %v, due to %w", r.query, err)
		}
		row := r.newRow()
		mapper, err := r.ensureMapper(columns, row)
		if err != nil {
			return err
		}
		if err = mapper(row, values); err != nil {
			return err
		}
		if err = emit(row); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *Reader) ensureMapper(columns []string, row interface{}) (RowMapper, error) {
	if r.mapper != nil {
		return r.mapper, nil
	}
	mapper, err := NewRowMapper(columns, reflect.TypeOf(row), r.tagName)
	if err != nil {
		return nil, fmt.Errorf("failed to get row mapper, due to %w", err)
	}
	r.mapper = mapper
	return mapper, nil
}

//New creates a records to a structs reader, *sql.Tx option takes precedence over db
func New(ctx context.Context, db *sql.DB, query string, newRow func() interface{}, options ...option.Option) (*Reader, error) {
	dialect := ensureDialect(options, db)
	if dialect != nil {
		query = dialect.EnsurePlaceholders(query)
	}
	reader := &Reader{
		query:   query,
		newRow:  newRow,
		tagName: option.Options(options).Tag(),
	}
	switch tx := option.Options(options).Tx(); {
	case tx != nil:
		reader.querier = tx
	case db != nil:
		reader.querier = db
	default:
		return nil, fmt.Errorf("db was nil")
	}
	return reader, nil
}

func ensureDialect(options []option.Option, db *sql.DB) *info.Dialect {
	dialect := option.Options(options).Dialect()
	if dialect == nil && db != nil {
		product := registry.MatchProduct(db)
		if product == nil {
			return nil
		}
		dialect = registry.LookupDialect(product)
	}
	return dialect
}

//NewMap creates records to map reader
func NewMap(ctx context.Context, db *sql.DB, query string, options ...option.Option) (*Reader, error) {
	return New(ctx, db, query, func() interface{} {
		return make(map[string]interface{})
	}, options...)
}

//NewSlice create records to a slice reader
func NewSlice(ctx context.Context, db *sql.DB, query string, columns int, options ...option.Option) (*Reader, error) {
	return New(ctx, db, query, func() interface{} {
		return make([]interface{}, columns)
	}, options...)
}
