// Package selection parses dotted select expressions and resolves them into joins and columns
package selection

import "strings"

// Kind represents select part kind
type Kind int

const (
	KindAttribute Kind = iota + 1
	KindLinkTo
	KindClass
	KindID
)

var kindNames = map[Kind]string{
	KindAttribute: "attribute",
	KindLinkTo:    "linkto",
	KindClass:     "class",
	KindID:        "id",
}

func (k Kind) String() string {
	return kindNames[k]
}

// Part represents one segment of a select expression, Next holds the remaining segments
type Part struct {
	Kind Kind
	Name string
	Next *Part
}

// Terminal returns true if part is the last segment
func (p *Part) Terminal() bool {
	return p.Next == nil
}

// Depth returns number of segments
func (p *Part) Depth() int {
	depth := 0
	for part := p; part != nil; part = part.Next {
		depth++
	}
	return depth
}

// String returns canonical expression
func (p *Part) String() string {
	sb := strings.Builder{}
	for part := p; part != nil; part = part.Next {
		if part != p {
			sb.WriteByte('.')
		}
		sb.WriteString(part.Kind.String())
		if part.Kind == KindID {
			continue
		}
		sb.WriteByte('[')
		sb.WriteString(strings.ReplaceAll(part.Name, "]", `\]`))
		sb.WriteByte(']')
	}
	return sb.String()
}
