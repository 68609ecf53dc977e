package placeholder

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrdinal_Len(t *testing.T) {
	var testCases = []struct {
		description       string
		prefix            string
		numOfPlaceholders int
	}{
		{description: "$1 - $9", prefix: "$", numOfPlaceholders: 9},
		{description: "$1 - $10", prefix: "$", numOfPlaceholders: 10},
		{description: "$1 - $1232", prefix: "$", numOfPlaceholders: 1232},
		{description: "@p1 - @p150", prefix: "@p", numOfPlaceholders: 150},
		{description: "none", prefix: "$", numOfPlaceholders: 0},
	}

	for _, testCase := range testCases {
		generator := &Ordinal{Prefix: testCase.prefix}
		sb := strings.Builder{}
		next := generator.Resolver()
		for i := 0; i < testCase.numOfPlaceholders; i++ {
			placeholder := next()
			assert.Equal(t, testCase.prefix+strconv.Itoa(i+1), placeholder, testCase.description)
			sb.WriteString(placeholder)
		}
		assert.Equal(t, sb.Len(), generator.Len(0, testCase.numOfPlaceholders), testCase.description)
	}
}

func TestPositional(t *testing.T) {
	generator := &Positional{}
	next := generator.Resolver()
	assert.Equal(t, Default, next())
	assert.Equal(t, Default, next())
	assert.Equal(t, 3, generator.Len(0, 3))
}
