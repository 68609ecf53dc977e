package info

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/efaps/esql/metadata/database"
	"github.com/efaps/esql/metadata/info/placeholder"
)

const (
	defaultCaseFunc         = "UPPER"
	defaultCurrentTimestamp = "CURRENT_TIMESTAMP"
	timestampLayout         = "2006-01-02 15:04:05.000"
)

// Dialect represents dialect
type Dialect struct {
	database.Product
	Placeholder         string // prepare statement placeholder, default '?', but pg uses '$'
	PlaceholderResolver placeholder.Generator
	QuoteCharacter      byte   // string literal quote
	BackslashEscapes    bool   // backslash escapes inside string literals, as in MySQL
	IdentifierQuote     string // opening identifier quote, empty leaves identifiers bare
	IdentifierQuoteEnd  string // closing identifier quote when it differs from the opening one
	CaseFunc            string // function used for case insensitive comparison, default UPPER
	CurrentTimestamp    string
	TimestampLiteral    string // fmt pattern taking formatted timestamp
	BooleanLiterals     bool   // TRUE/FALSE, otherwise 1/0
	BindValues          bool   // render values as placeholders instead of literals
	MaxInList           int    // maximum number of values in a single IN list, 0 unlimited
	VersionSQL          string
	SequenceCreate      string // fmt pattern taking sequence name and start value
	SequenceNext        string // fmt pattern taking sequence name
}

// Dialects represents dialects
type Dialects []*Dialect

// PlaceholderGetter returns PlaceholderResolver if not nil, otherwise returns function that returns Placeholder
func (d *Dialect) PlaceholderGetter() func() string {
	if d.PlaceholderResolver != nil {
		return d.PlaceholderResolver.Resolver()
	}
	return (&placeholder.Positional{}).Resolver()
}

// EnsurePlaceholders converts '?' to specific dialect placeholders if needed
func (d *Dialect) EnsurePlaceholders(SQL string) string {
	if d.Placeholder == placeholder.Default {
		return SQL
	}
	placeholders := indexPlaceholders(SQL)
	placeholderLen := len(placeholders)
	if placeholderLen == 0 || placeholders[0] == -1 {
		return SQL
	}
	var result = make([]byte, len(SQL)-placeholderLen+d.countPlaceholdersLen(0, placeholderLen))
	sqlPos := 0
	resultPos := 0
	getPlaceholder := d.PlaceholderGetter()
	for _, pos := range placeholders {
		fragment := SQL[sqlPos:pos]
		sqlPos = pos + 1
		resultPos += copy(result[resultPos:], fragment)
		resultPos += copy(result[resultPos:], getPlaceholder())
	}
	if sqlPos < len(SQL) {
		resultPos += copy(result[resultPos:], SQL[sqlPos:])
	}
	return string(result[:resultPos])
}

func (d *Dialect) countPlaceholdersLen(start, numOfPlaceholders int) int {
	if d.PlaceholderResolver != nil {
		return d.PlaceholderResolver.Len(start, numOfPlaceholders)
	}
	return (&placeholder.Positional{}).Len(start, numOfPlaceholders)
}

func indexPlaceholders(SQL string) []int {
	index := strings.Index(SQL, placeholder.Default)
	var indexes = []int{index}
	for index+1 < len(SQL) {
		next := strings.Index(SQL[index+1:], placeholder.Default)
		if next == -1 {
			break
		}
		indexes = append(indexes, index+1+next)
		index += next + 1
	}
	return indexes
}

// QuoteIdentifier quotes table or column name
func (d *Dialect) QuoteIdentifier(name string) string {
	if d.IdentifierQuote == "" {
		return name
	}
	end := d.IdentifierQuoteEnd
	if end == "" {
		end = d.IdentifierQuote
	}
	return d.IdentifierQuote + strings.ReplaceAll(name, end, end+end) + end
}

// QuoteString returns string literal, embedded quotes are doubled
func (d *Dialect) QuoteString(value string) string {
	quote := d.QuoteCharacter
	if quote == 0 {
		quote = '\''
	}
	q := string(quote)
	if d.BackslashEscapes {
		value = strings.ReplaceAll(value, `\`, `\\`)
	}
	return q + strings.ReplaceAll(value, q, q+q) + q
}

// Fold wraps expression with the dialect case function
func (d *Dialect) Fold(expr string) string {
	fn := d.CaseFunc
	if fn == "" {
		fn = defaultCaseFunc
	}
	return fn + "(" + expr + ")"
}

// Bool returns boolean literal
func (d *Dialect) Bool(value bool) string {
	if d.BooleanLiterals {
		if value {
			return "TRUE"
		}
		return "FALSE"
	}
	if value {
		return "1"
	}
	return "0"
}

// Int returns decimal integer literal
func (d *Dialect) Int(value int64) string {
	return strconv.FormatInt(value, 10)
}

// Timestamp returns timestamp literal
func (d *Dialect) Timestamp(value time.Time) string {
	literal := d.QuoteString(value.Format(timestampLayout))
	if d.TimestampLiteral == "" {
		return literal
	}
	return fmt.Sprintf(d.TimestampLiteral, literal)
}

// Now returns current timestamp expression
func (d *Dialect) Now() string {
	if d.CurrentTimestamp == "" {
		return defaultCurrentTimestamp
	}
	return d.CurrentTimestamp
}

// CreateSequenceSQL returns sequence DDL or false if dialect has no sequences
func (d *Dialect) CreateSequenceSQL(name string, start int64) (string, bool) {
	if d.SequenceCreate == "" {
		return "", false
	}
	return fmt.Sprintf(d.SequenceCreate, name, start), true
}

// NextValueSQL returns statement fetching next sequence value or false if dialect has no sequences
func (d *Dialect) NextValueSQL(name string) (string, bool) {
	if d.SequenceNext == "" {
		return "", false
	}
	return fmt.Sprintf(d.SequenceNext, name), true
}

func (a Dialects) Len() int      { return len(a) }
func (a Dialects) Swap(i, j int) { a[i], a[j] = a[j], a[i] }
func (a Dialects) Less(i, j int) bool {
	return 100000*a[i].Major+a[i].Minor < 100000*a[j].Major+a[j].Minor
}
