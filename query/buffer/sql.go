// Package buffer renders dialect specific SQL text
package buffer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/efaps/esql/metadata/info"
	"github.com/efaps/esql/metadata/info/placeholder"
	"github.com/efaps/esql/query/table"
)

type (
	// SQL represents SQL text buffer, values are rendered as literals or collected as bind arguments
	SQL struct {
		sb      strings.Builder
		dialect *info.Dialect
		args    []interface{}
	}

	// Number represents numeric literal kept in its textual form
	Number string

	// Raw represents SQL fragment appended as is
	Raw string
)

// Valid reports whether n is a plain decimal: optional sign, digits with optional fraction and exponent
func (n Number) Valid() bool {
	s := string(n)
	if s != "" && (s[0] == '-' || s[0] == '+') {
		s = s[1:]
	}
	digits := func() int {
		i := 0
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		s = s[i:]
		return i
	}
	mantissa := digits()
	if s != "" && s[0] == '.' {
		s = s[1:]
		mantissa += digits()
	}
	if mantissa == 0 {
		return false
	}
	if s != "" && (s[0] == 'e' || s[0] == 'E') {
		s = s[1:]
		if s != "" && (s[0] == '-' || s[0] == '+') {
			s = s[1:]
		}
		if digits() == 0 {
			return false
		}
	}
	return s == ""
}

// Dialect returns buffer dialect
func (b *SQL) Dialect() *info.Dialect {
	return b.dialect
}

// Append appends SQL fragments
func (b *SQL) Append(fragments ...string) *SQL {
	for _, fragment := range fragments {
		b.sb.WriteString(fragment)
	}
	return b
}

// Identifier appends quoted identifier
func (b *SQL) Identifier(name string) *SQL {
	b.sb.WriteString(b.dialect.QuoteIdentifier(name))
	return b
}

// ColumnRef returns alias qualified quoted column
func (b *SQL) ColumnRef(index int, column string) string {
	return table.Alias(index) + "." + b.dialect.QuoteIdentifier(column)
}

// Column appends alias qualified column, folded with dialect case function if requested
func (b *SQL) Column(index int, column string, fold bool) *SQL {
	ref := b.ColumnRef(index, column)
	if fold {
		ref = b.dialect.Fold(ref)
	}
	b.sb.WriteString(ref)
	return b
}

// Value appends value literal or placeholder, folded with dialect case function if requested
func (b *SQL) Value(value interface{}, fold bool) error {
	text, err := b.value(value)
	if err != nil {
		return err
	}
	if fold {
		text = b.dialect.Fold(text)
	}
	b.sb.WriteString(text)
	return nil
}

func (b *SQL) value(value interface{}) (string, error) {
	if raw, ok := value.(Raw); ok {
		return string(raw), nil
	}
	if number, ok := value.(Number); ok && !number.Valid() {
		return "", fmt.Errorf("invalid number: %q", string(number))
	}
	if b.dialect.BindValues {
		switch actual := value.(type) {
		case Number:
			b.args = append(b.args, string(actual))
		default:
			b.args = append(b.args, value)
		}
		return placeholder.Default, nil
	}
	switch actual := value.(type) {
	case nil:
		return "NULL", nil
	case int:
		return strconv.Itoa(actual), nil
	case int64:
		return b.dialect.Int(actual), nil
	case float64:
		return strconv.FormatFloat(actual, 'f', -1, 64), nil
	case Number:
		return string(actual), nil
	case string:
		return b.dialect.QuoteString(actual), nil
	case bool:
		return b.dialect.Bool(actual), nil
	case time.Time:
		return b.dialect.Timestamp(actual), nil
	}
	return "", fmt.Errorf("unsupported value type: %T", value)
}

// Args returns collected bind arguments
func (b *SQL) Args() []interface{} {
	return b.args
}

// Len returns buffer length
func (b *SQL) Len() int {
	return b.sb.Len()
}

// String returns SQL text
func (b *SQL) String() string {
	return b.sb.String()
}

// New creates SQL buffer
func New(dialect *info.Dialect) *SQL {
	return &SQL{dialect: dialect}
}
