package selection

import (
	"testing"

	"github.com/efaps/esql/io/errx"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	var testCases = []struct {
		description string
		expression  string
		expect      string
		depth       int
		hasError    bool
	}{
		{description: "attribute", expression: "attribute[Name]", expect: "attribute[Name]", depth: 1},
		{description: "case insensitive keywords", expression: "LinkTo[Creator].Attribute[Name]", expect: "linkto[Creator].attribute[Name]", depth: 2},
		{description: "whitespace", expression: " linkto[Creator] . linkto[Manager] . attribute[ Name ]", expect: "linkto[Creator].linkto[Manager].attribute[Name]", depth: 3},
		{description: "class", expression: "class[Document_Class].attribute[Priority]", expect: "class[Document_Class].attribute[Priority]", depth: 2},
		{description: "terminal linkto", expression: "linkto[Creator]", expect: "linkto[Creator]", depth: 1},
		{description: "id", expression: "linkto[Creator].id", expect: "linkto[Creator].id", depth: 2},
		{description: "empty name", expression: "attribute[]", hasError: true},
		{description: "unknown kind", expression: "column[Name]", hasError: true},
		{description: "attribute not terminal", expression: "attribute[Name].attribute[Other]", hasError: true},
		{description: "missing name", expression: "linkto.attribute[Name]", hasError: true},
		{description: "trailing dot", expression: "linkto[Creator].", hasError: true},
		{description: "unterminated block", expression: "attribute[Name", hasError: true},
		{description: "empty", expression: "", hasError: true},
	}

	for _, testCase := range testCases {
		part, err := Parse(testCase.expression)
		if testCase.hasError {
			assert.True(t, errx.IsSyntax(err), testCase.description)
			assert.Nil(t, part, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.expect, part.String(), testCase.description)
		assert.Equal(t, testCase.depth, part.Depth(), testCase.description)
	}
}
