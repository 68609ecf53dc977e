package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/efaps/esql/query"
	"github.com/efaps/esql/query/predicate"
)

var filterOperators = []struct {
	token string
	op    predicate.Operator
}{
	{"!=", predicate.NotEqual},
	{">=", predicate.GreaterOrEqual},
	{"<=", predicate.LessOrEqual},
	{"=", predicate.Equal},
	{">", predicate.Greater},
	{"<", predicate.Less},
	{"~", predicate.Like},
}

// parseFilter parses <expression><op><value>[,<value>...], op is one of != >= <= = > < ~ (LIKE),
// values are integers or strings, a single null value checks NULL, only = and != take value lists
func parseFilter(text string, ignoreCase bool) (*predicate.Node, error) {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '[':
			depth++
			continue
		case ']':
			depth--
			continue
		}
		if depth > 0 {
			continue
		}
		for _, candidate := range filterOperators {
			if !strings.HasPrefix(text[i:], candidate.token) {
				continue
			}
			expression := strings.TrimSpace(text[:i])
			if expression == "" {
				return nil, fmt.Errorf("invalid filter %q: missing expression", text)
			}
			return newComparison(predicate.Attr(expression), candidate.op, strings.TrimSpace(text[i+len(candidate.token):]), ignoreCase), nil
		}
	}
	return nil, fmt.Errorf("invalid filter %q: missing operator", text)
}

func newComparison(attr *predicate.Attribute, op predicate.Operator, literal string, ignoreCase bool) *predicate.Node {
	if strings.EqualFold(literal, "null") {
		switch op {
		case predicate.Equal:
			return predicate.IsNull(attr)
		case predicate.NotEqual:
			return predicate.IsNotNull(attr)
		}
	}
	items := []string{literal}
	if op == predicate.Equal || op == predicate.NotEqual {
		items = strings.Split(literal, ",")
	}
	var values []predicate.Value
	for _, item := range items {
		item = strings.TrimSpace(item)
		if number, err := strconv.ParseInt(item, 10, 64); err == nil {
			values = append(values, predicate.Int(number))
			continue
		}
		values = append(values, predicate.Str(item))
	}
	node := predicate.Compare(attr, op, values...)
	if ignoreCase {
		node.IgnoreCase()
	}
	return node
}

// parseOrder parses <expression>[ asc|desc]
func parseOrder(text string) query.Order {
	text = strings.TrimSpace(text)
	order := query.Order{Expression: text}
	if index := strings.LastIndex(text, " "); index != -1 {
		switch strings.ToLower(text[index+1:]) {
		case "desc":
			order.Desc = true
			order.Expression = strings.TrimSpace(text[:index])
		case "asc":
			order.Expression = strings.TrimSpace(text[:index])
		}
	}
	return order
}
