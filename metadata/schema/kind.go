package schema

import (
	"fmt"
	"strings"
)

// Kind represents attribute type kind
type Kind int

const (
	KindUndefined Kind = iota
	KindString
	KindInteger
	KindDecimal
	KindBoolean
	KindDate
	KindDateTime
	KindLink
	KindLinkWithUoM
	KindStatus
	KindType
)

var kindNames = map[Kind]string{
	KindString:      "string",
	KindInteger:     "integer",
	KindDecimal:     "decimal",
	KindBoolean:     "boolean",
	KindDate:        "date",
	KindDateTime:    "datetime",
	KindLink:        "link",
	KindLinkWithUoM: "linkWithUoM",
	KindStatus:      "status",
	KindType:        "type",
}

// ParseKind parses kind name, case insensitive
func ParseKind(name string) (Kind, error) {
	for kind, candidate := range kindNames {
		if strings.EqualFold(candidate, name) {
			return kind, nil
		}
	}
	return KindUndefined, fmt.Errorf("unsupported attribute kind: %q", name)
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsString returns true if values of the kind compare as text
func (k Kind) IsString() bool {
	return k == KindString
}

// IsLink returns true if the attribute column holds an object id of another type
func (k Kind) IsLink() bool {
	switch k {
	case KindLink, KindLinkWithUoM, KindStatus:
		return true
	}
	return false
}

// Columns returns number of columns the kind occupies
func (k Kind) Columns() int {
	if k == KindLinkWithUoM {
		return 2
	}
	return 1
}
