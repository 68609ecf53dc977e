package cli

import (
	"bytes"
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/efaps/esql/metadata/schema/schematest"
	"github.com/efaps/esql/query/predicate"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

const schemaURL = "mem://localhost/esql/cli/schema.yaml"

func uploadSchema(t *testing.T) {
	require.Nil(t, afs.New().Upload(context.Background(), schemaURL, file.DefaultFileOsMode, strings.NewReader(schematest.YAML)))
}

func run(t *testing.T, args ...string) (string, error) {
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"render", "query", "config"} {
		subCmd, _, err := cmd.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, subCmd.Name())
	}
	renderCmd, _, err := cmd.Find([]string{"render"})
	require.NoError(t, err)
	for _, flag := range []string{"select", "where", "order", "ignore-case"} {
		assert.NotNil(t, renderCmd.Flags().Lookup(flag), flag)
	}
	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestParseFilter(t *testing.T) {
	var testCases = []struct {
		description string
		filter      string
		kind        predicate.Kind
		op          predicate.Operator
		expression  string
		values      int
		hasError    bool
	}{
		{description: "equal", filter: "Name=Alice", kind: predicate.KindCompare, op: predicate.Equal, expression: "attribute[Name]", values: 1},
		{description: "linked not equal list", filter: "linkto[Creator].attribute[Name] != Alice, Bob", kind: predicate.KindCompare, op: predicate.NotEqual, expression: "linkto[Creator].attribute[Name]", values: 2},
		{description: "greater or equal", filter: "Amount>=10", kind: predicate.KindCompare, op: predicate.GreaterOrEqual, expression: "attribute[Amount]", values: 1},
		{description: "like", filter: "Name~A%", kind: predicate.KindCompare, op: predicate.Like, expression: "attribute[Name]", values: 1},
		{description: "like with comma", filter: "Name~Smith, J%", kind: predicate.KindCompare, op: predicate.Like, expression: "attribute[Name]", values: 1},
		{description: "greater with comma", filter: "Name>B,C", kind: predicate.KindCompare, op: predicate.Greater, expression: "attribute[Name]", values: 1},
		{description: "null", filter: "Description=null", kind: predicate.KindIsNull, expression: "attribute[Description]"},
		{description: "not null", filter: "Description!=NULL", kind: predicate.KindIsNotNull, expression: "attribute[Description]"},
		{description: "missing operator", filter: "Name", hasError: true},
		{description: "missing expression", filter: "=Alice", hasError: true},
	}

	for _, testCase := range testCases {
		node, err := parseFilter(testCase.filter, false)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		assert.Equal(t, testCase.kind, node.Kind, testCase.description)
		assert.Equal(t, testCase.op, node.Op, testCase.description)
		assert.Equal(t, testCase.expression, node.Attribute.Expression, testCase.description)
		assert.Len(t, node.Values, testCase.values, testCase.description)
	}
}

func TestParseOrder(t *testing.T) {
	assert.Equal(t, "Name", parseOrder("Name").Expression)
	order := parseOrder("linkto[Creator].attribute[Name] DESC")
	assert.Equal(t, "linkto[Creator].attribute[Name]", order.Expression)
	assert.True(t, order.Desc)
	order = parseOrder(" Name asc ")
	assert.Equal(t, "Name", order.Expression)
	assert.False(t, order.Desc)
}

func TestLoadConfig(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "esql.yaml")
	require.Nil(t, os.WriteFile(configPath, []byte("schema: mem://localhost/schema.yaml\ndialect: PostgreSQL\ndsn: test.db\n"), 0644))
	t.Setenv("ESQL_DIALECT", "MySQL")

	cfg, err := LoadConfig(configPath)
	require.Nil(t, err)
	assert.Equal(t, &Config{Schema: "mem://localhost/schema.yaml", Dialect: "MySQL", Driver: "sqlite3", DSN: "test.db"}, cfg)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, err)
}

func TestRenderCommand(t *testing.T) {
	uploadSchema(t)
	t.Setenv("ESQL_SCHEMA", schemaURL)
	t.Setenv("ESQL_DIALECT", "PostgreSQL")

	output, err := run(t, "render", "Document", "-s", "Name", "-w", "linkto[Creator].attribute[Name]=Alice", "-o", "Name desc")
	require.Nil(t, err)
	assert.Equal(t, `SELECT T0."ID", T0."NAME" FROM "T_DOC" T0 LEFT JOIN "T_PERSON" T1 ON T1."ID" = T0."CREATOR" WHERE T0."TYPEID" IN (100, 101) AND T1."NAME" = 'Alice' ORDER BY T0."NAME" DESC
0	id	T0.ID
1	attribute[Name]	T0.NAME
`, output)

	output, err = run(t, "render", "Person", "--format", "json", "-s", "linkto[Manager].attribute[Name]", "-w", "Name=Alice", "-w", "Active=1")
	require.Nil(t, err)
	assert.Contains(t, output, `"sql": "SELECT T0.\"ID\", T1.\"NAME\" FROM \"T_PERSON\" T0 LEFT JOIN \"T_PERSON\" T1 ON T1.\"ID\" = T0.\"MANAGER\" WHERE (T0.\"NAME\" = 'Alice' AND T0.\"ACTIVE\" = 1)"`)
	assert.Contains(t, output, `"expression": "linkto[Manager].attribute[Name]"`)

	_, err = run(t, "render", "Document", "-s", "Nmae")
	assert.NotNil(t, err)
	_, err = run(t, "render", "Document", "--format", "xml")
	assert.NotNil(t, err)
}

func TestQueryCommand(t *testing.T) {
	uploadSchema(t)
	dsn := filepath.Join(t.TempDir(), "cli.db")
	db, err := sql.Open("sqlite3", dsn)
	require.Nil(t, err)
	_, err = db.Exec(`CREATE TABLE T_PERSON (ID INTEGER PRIMARY KEY, NAME TEXT, ACTIVE INTEGER, MANAGER INTEGER);
INSERT INTO T_PERSON VALUES (1, 'Alice', 1, NULL), (2, 'Bob', 0, 1);`)
	require.Nil(t, err)
	require.Nil(t, db.Close())

	t.Setenv("ESQL_SCHEMA", schemaURL)
	t.Setenv("ESQL_DSN", dsn)
	t.Setenv("ESQL_DIALECT", "")

	output, err := run(t, "query", "Person", "-s", "Name", "-s", "linkto[Manager].attribute[Name]", "-o", "Name")
	require.Nil(t, err)
	assert.Equal(t, "id\tattribute[Name]\tlinkto[Manager].attribute[Name]\n1\tAlice\tNULL\n2\tBob\tAlice\n", output)

	output, err = run(t, "query", "Person", "--format", "json", "-s", "Name", "-w", "Name=bob", "-i")
	require.Nil(t, err)
	assert.Equal(t, `{"attribute[Name]":"Bob","id":2}`+"\n", output)
}

func TestConfigCommand(t *testing.T) {
	t.Setenv("ESQL_DIALECT", "SQLServer")
	output, err := run(t, "config")
	require.Nil(t, err)
	assert.Contains(t, output, "dialect: SQLServer")
	assert.Contains(t, output, "driver: sqlite3")
}
