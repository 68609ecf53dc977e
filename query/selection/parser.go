package selection

import (
	"fmt"
	"strings"

	"github.com/efaps/esql/io/errx"
	"github.com/viant/parsly"
)

// Parse parses select expression i.e. linkto[Creator].attribute[Name]
func Parse(expression string) (*Part, error) {
	cursor := parsly.NewCursor("", []byte(expression), 0)
	part, err := parseSegment(cursor)
	if err != nil {
		return nil, errx.Syntax(expression, err)
	}
	return part, nil
}

func parseSegment(cursor *parsly.Cursor) (*Part, error) {
	part := &Part{}
	match := cursor.MatchAfterOptional(whitespaceToken, attributeToken, linkToToken, classToken, idToken)
	switch match.Code {
	case attributeKeyword:
		part.Kind = KindAttribute
	case linkToKeyword:
		part.Kind = KindLinkTo
	case classKeyword:
		part.Kind = KindClass
	case idKeyword:
		part.Kind = KindID
	default:
		return nil, cursor.NewError(attributeToken, linkToToken, classToken, idToken)
	}
	if part.Kind != KindID {
		match = cursor.MatchOne(nameBlockToken)
		if match.Code != nameBlockCode {
			return nil, cursor.NewError(nameBlockToken)
		}
		block := match.Text(cursor)
		part.Name = strings.TrimSpace(strings.ReplaceAll(block[1:len(block)-1], `\]`, "]"))
		if part.Name == "" {
			return nil, fmt.Errorf("%v name was empty at pos %v", part.Kind, cursor.Pos)
		}
	}
	match = cursor.MatchAfterOptional(whitespaceToken, dotToken)
	switch match.Code {
	case parsly.EOF:
		return part, nil
	case dotCode:
		if part.Kind == KindAttribute || part.Kind == KindID {
			return nil, fmt.Errorf("%v has to be the last segment, at pos %v", part.Kind, cursor.Pos)
		}
		next, err := parseSegment(cursor)
		if err != nil {
			return nil, err
		}
		part.Next = next
		return part, nil
	}
	return nil, cursor.NewError(dotToken)
}
