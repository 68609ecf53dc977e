package option

import (
	"database/sql"
	"log/slog"

	"github.com/efaps/esql/metadata/database"
	"github.com/efaps/esql/metadata/info"
)

const (
	//TagSqlx defines sqlx annotation
	TagSqlx = "sqlx"
	//TagSelect defines select expression annotation used by cursor scan
	TagSelect = "select"
)

//Option represents generic option
type Option interface{}

//Options represents generic options
type Options []Option

//Tag represents annotation tag option
type Tag string

//Label represents query label used in errors and logs
type Label string

//Tag returns annotation tag, default sqlx
func (o Options) Tag() string {
	if len(o) == 0 {
		return TagSqlx
	}
	for _, candidate := range o {
		if tagOpt, ok := candidate.(Tag); ok {
			return string(tagOpt)
		}
	}
	return TagSqlx
}

//Dialect returns dialect
func (o Options) Dialect() *info.Dialect {
	if len(o) == 0 {
		return nil
	}
	for _, candidate := range o {
		if dialect, ok := candidate.(*info.Dialect); ok {
			return dialect
		}
	}
	return nil
}

//Product returns product
func (o Options) Product() *database.Product {
	if len(o) == 0 {
		return nil
	}
	for _, candidate := range o {
		if dialect, ok := candidate.(*info.Dialect); ok {
			return &dialect.Product
		}
		if product, ok := candidate.(*database.Product); ok {
			return product
		}
	}
	return nil
}

//Tx returns transaction option
func (o Options) Tx() *sql.Tx {
	tx, _ := Lookup[*sql.Tx](o)
	return tx
}

//Logger returns logger option, default slog.Default()
func (o Options) Logger() *slog.Logger {
	for _, candidate := range o {
		if logger, ok := candidate.(*slog.Logger); ok && logger != nil {
			return logger
		}
	}
	return slog.Default()
}

//Label returns query label option
func (o Options) Label() string {
	for _, candidate := range o {
		if label, ok := candidate.(Label); ok {
			return string(label)
		}
	}
	return ""
}

//Interfaces returns options as interfaces
func (o Options) Interfaces() []interface{} {
	var result = make([]interface{}, len(o))
	for i := range o {
		result[i] = o[i]
	}
	return result
}
