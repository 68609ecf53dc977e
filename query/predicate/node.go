// Package predicate builds WHERE clauses: a raw Node tree is prepared against the schema into a Prepared tree which renders SQL
package predicate

import (
	"strconv"
	"strings"
	"time"

	"github.com/efaps/esql/query/buffer"
)

// Kind represents predicate node kind
type Kind int

const (
	KindAnd Kind = iota + 1
	KindOr
	KindNot
	KindCompare
	KindIsNull
	KindIsNotNull
	KindClassified
)

var kindNames = map[Kind]string{
	KindAnd:        "AND",
	KindOr:         "OR",
	KindNot:        "NOT",
	KindCompare:    "compare",
	KindIsNull:     "IS NULL",
	KindIsNotNull:  "IS NOT NULL",
	KindClassified: "classified",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Operator represents comparison operator
type Operator int

const (
	Equal Operator = iota + 1
	NotEqual
	Less
	LessOrEqual
	Greater
	GreaterOrEqual
	Like
)

var operators = map[Operator]string{
	Equal:          "=",
	NotEqual:       "!=",
	Less:           "<",
	LessOrEqual:    "<=",
	Greater:        ">",
	GreaterOrEqual: ">=",
	Like:           "LIKE",
}

func (o Operator) String() string {
	return operators[o]
}

type (
	// Node represents raw predicate node built by the caller
	Node struct {
		Kind           Kind
		Op             Operator
		Attribute      *Attribute
		Values         []Value
		Children       []*Node
		Classification string
		ignoreCase     bool
	}

	// Attribute represents compared select expression
	Attribute struct {
		Expression string
	}

	valueKind int

	// Value represents comparison operand
	Value struct {
		kind    valueKind
		literal interface{}
		ref     string
	}
)

const (
	valueLiteral valueKind = iota
	valueNow
	valueRef
)

// Attr creates attribute operand, a bare name stands for attribute[name]
func Attr(expression string) *Attribute {
	if !strings.ContainsAny(expression, "[.") && !strings.EqualFold(expression, "id") {
		expression = "attribute[" + expression + "]"
	}
	return &Attribute{Expression: expression}
}

// Int creates integer value
func Int(v int64) Value { return Value{literal: v} }

// Str creates string value
func Str(v string) Value { return Value{literal: v} }

// Bool creates boolean value
func Bool(v bool) Value { return Value{literal: v} }

// Decimal creates numeric value kept in its textual form
func Decimal(v string) Value { return Value{literal: buffer.Number(v)} }

// Time creates timestamp value
func Time(v time.Time) Value { return Value{literal: v} }

// Now creates dialect current timestamp value
func Now() Value { return Value{kind: valueNow} }

// Ref creates value referencing another select expression
func Ref(expression string) Value { return Value{kind: valueRef, ref: Attr(expression).Expression} }

// And creates conjunction
func And(children ...*Node) *Node { return &Node{Kind: KindAnd, Children: children} }

// Or creates disjunction
func Or(children ...*Node) *Node { return &Node{Kind: KindOr, Children: children} }

// Not creates negation
func Not(child *Node) *Node { return &Node{Kind: KindNot, Children: []*Node{child}} }

// Compare creates comparison node
func Compare(attr *Attribute, op Operator, values ...Value) *Node {
	return &Node{Kind: KindCompare, Op: op, Attribute: attr, Values: values}
}

// Eq creates equality, many values render IN list
func Eq(attr *Attribute, values ...Value) *Node { return Compare(attr, Equal, values...) }

// NotEq creates inequality, many values render NOT IN list
func NotEq(attr *Attribute, values ...Value) *Node { return Compare(attr, NotEqual, values...) }

func Lt(attr *Attribute, value Value) *Node { return Compare(attr, Less, value) }

func Le(attr *Attribute, value Value) *Node { return Compare(attr, LessOrEqual, value) }

func Gt(attr *Attribute, value Value) *Node { return Compare(attr, Greater, value) }

func Ge(attr *Attribute, value Value) *Node { return Compare(attr, GreaterOrEqual, value) }

// Matches creates LIKE comparison
func Matches(attr *Attribute, pattern string) *Node { return Compare(attr, Like, Str(pattern)) }

// IsNull creates IS NULL check
func IsNull(attr *Attribute) *Node { return &Node{Kind: KindIsNull, Attribute: attr} }

// IsNotNull creates IS NOT NULL check
func IsNotNull(attr *Attribute) *Node { return &Node{Kind: KindIsNotNull, Attribute: attr} }

// Classified matches objects carrying supplied classification
func Classified(name string) *Node { return &Node{Kind: KindClassified, Classification: name} }

// IgnoreCase folds both sides of the comparison with dialect case function,
// on And, Or and Not it applies to every nested comparison
func (n *Node) IgnoreCase() *Node {
	if n == nil {
		return nil
	}
	n.ignoreCase = true
	for _, child := range n.Children {
		child.IgnoreCase()
	}
	return n
}
