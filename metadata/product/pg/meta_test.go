package pg

import (
	"testing"

	"github.com/efaps/esql/metadata/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialect(t *testing.T) {
	dialect := registry.LookupDialect(PqSQL9())
	require.NotNil(t, dialect)

	var testCases = []struct {
		description string
		SQL         string
		expect      string
	}{
		{
			description: "ordinal placeholders",
			SQL:         `SELECT T0."ID" FROM "T_DOC" T0 WHERE T0."TYPEID" IN (?, ?) AND T0."NAME" = ?`,
			expect:      `SELECT T0."ID" FROM "T_DOC" T0 WHERE T0."TYPEID" IN ($1, $2) AND T0."NAME" = $3`,
		},
		{
			description: "no placeholders",
			SQL:         `SELECT T0."ID" FROM "T_DOC" T0`,
			expect:      `SELECT T0."ID" FROM "T_DOC" T0`,
		},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, dialect.EnsurePlaceholders(testCase.SQL), testCase.description)
	}
	next, ok := dialect.NextValueSQL("SEQ_DOC")
	assert.True(t, ok)
	assert.Equal(t, "SELECT nextval('SEQ_DOC')", next)
}
