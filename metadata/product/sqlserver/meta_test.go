package sqlserver

import (
	"testing"

	"github.com/efaps/esql/metadata/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDialect(t *testing.T) {
	dialect := registry.LookupDialect(SQLServer())
	require.NotNil(t, dialect)
	actual := dialect.EnsurePlaceholders("SELECT T0.[ID] FROM [T_DOC] T0 WHERE T0.[NAME] = ? AND T0.[STATUS] IN (?, ?)")
	assert.Equal(t, "SELECT T0.[ID] FROM [T_DOC] T0 WHERE T0.[NAME] = @p1 AND T0.[STATUS] IN (@p2, @p3)", actual)
	assert.Equal(t, "[T_DOC]]X]", dialect.QuoteIdentifier("T_DOC]X"))
	assert.Equal(t, 2000, dialect.MaxInList)
}
