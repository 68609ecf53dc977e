package selection

import (
	"testing"

	"github.com/efaps/esql/io/errx"
	"github.com/efaps/esql/metadata/schema/schematest"
	"github.com/efaps/esql/query/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPart_Resolve(t *testing.T) {
	cache := schematest.Cache()
	document, _ := cache.Type("Document")

	var testCases = []struct {
		description string
		expressions []string
		expectIndex []int
		expectCols  []string
		joins       []table.Key
	}{
		{
			description: "main table attribute never joins",
			expressions: []string{"attribute[Name]"},
			expectIndex: []int{0},
			expectCols:  []string{"NAME"},
		},
		{
			description: "child table attribute joins once by ID",
			expressions: []string{"attribute[Description]", "attribute[Description]"},
			expectIndex: []int{1, 1},
			expectCols:  []string{"DESCRIPTION", "DESCRIPTION"},
			joins:       []table.Key{{Table: "T_DOCDETAIL", Column: "ID", Parent: 0}},
		},
		{
			description: "same link path joins once",
			expressions: []string{"linkto[Creator].attribute[Name]", "linkto[Creator].attribute[Active]"},
			expectIndex: []int{1, 1},
			expectCols:  []string{"NAME", "ACTIVE"},
			joins:       []table.Key{{Table: "T_PERSON", Column: "CREATOR", Parent: 0}},
		},
		{
			description: "self join distinctness",
			expressions: []string{"linkto[Creator].attribute[Name]", "linkto[Modifier].attribute[Name]"},
			expectIndex: []int{1, 2},
			expectCols:  []string{"NAME", "NAME"},
			joins: []table.Key{
				{Table: "T_PERSON", Column: "CREATOR", Parent: 0},
				{Table: "T_PERSON", Column: "MODIFIER", Parent: 0},
			},
		},
		{
			description: "chained links",
			expressions: []string{"linkto[Creator].linkto[Manager].attribute[Name]"},
			expectIndex: []int{2},
			expectCols:  []string{"NAME"},
			joins: []table.Key{
				{Table: "T_PERSON", Column: "CREATOR", Parent: 0},
				{Table: "T_PERSON", Column: "MANAGER", Parent: 1},
			},
		},
		{
			description: "terminal linkto selects link column",
			expressions: []string{"linkto[Creator]"},
			expectIndex: []int{0},
			expectCols:  []string{"CREATOR"},
		},
		{
			description: "linked id",
			expressions: []string{"linkto[Creator].id"},
			expectIndex: []int{1},
			expectCols:  []string{"ID"},
			joins:       []table.Key{{Table: "T_PERSON", Column: "CREATOR", Parent: 0}},
		},
		{
			description: "classification attribute",
			expressions: []string{"class[Document_Class].attribute[Priority]", "class[Document_Class]"},
			expectIndex: []int{1, 1},
			expectCols:  []string{"PRIORITY", "ID"},
			joins:       []table.Key{{Table: "T_DOCCLS", Column: "DOCLINK", Parent: 0}},
		},
	}

	for _, testCase := range testCases {
		env := &Env{Cache: cache, Tables: table.New(document.MainTable.Name), Query: "Documents"}
		for i, expression := range testCase.expressions {
			part, err := Parse(expression)
			require.Nil(t, err, testCase.description)
			resolved, err := part.Resolve(env, document, 0)
			if !assert.Nil(t, err, testCase.description) {
				continue
			}
			assert.Equal(t, testCase.expectIndex[i], resolved.Index, testCase.description)
			assert.Equal(t, testCase.expectCols[i], resolved.Columns[0], testCase.description)
			assert.Equal(t, part.String(), resolved.Expression, testCase.description)
		}
		var actual []table.Key
		for _, join := range env.Tables.Joins() {
			actual = append(actual, join.Key)
		}
		assert.Equal(t, testCase.joins, actual, testCase.description)
	}
}

func TestPart_Resolve_JoinCondition(t *testing.T) {
	cache := schematest.Cache()
	document, _ := cache.Type("Document")
	env := &Env{Cache: cache, Tables: table.New("T_DOC")}
	for _, expression := range []string{"linkto[Creator].attribute[Name]", "class[Document_Class].attribute[Priority]", "attribute[Description]"} {
		part, err := Parse(expression)
		require.Nil(t, err)
		_, err = part.Resolve(env, document, 0)
		require.Nil(t, err)
	}
	joins := env.Tables.Joins()
	require.Len(t, joins, 3)
	assert.Equal(t, "ID", joins[0].Left)
	assert.Equal(t, "CREATOR", joins[0].Right)
	assert.Equal(t, "DOCLINK", joins[1].Left)
	assert.Equal(t, "ID", joins[1].Right)
	assert.Equal(t, "ID", joins[2].Left)
	assert.Equal(t, "ID", joins[2].Right)
}

func TestPart_Resolve_Errors(t *testing.T) {
	cache := schematest.Cache()
	document, _ := cache.Type("Document")
	person, _ := cache.Type("Person")

	var testCases = []struct {
		description string
		baseType    string
		expression  string
		kind        error
		expect      string
	}{
		{
			description: "unknown attribute",
			expression:  "linkto[Creator].attribute[Nmae]",
			kind:        errx.ErrUnknownAttribute,
			expect:      "esql resolve: unknown attribute query=Documents type=Person attribute=Nmae",
		},
		{
			description: "unknown classification",
			expression:  "class[Missing].attribute[Priority]",
			kind:        errx.ErrUnknownClassification,
			expect:      "esql resolve: unknown classification query=Documents type=Document classification=Missing",
		},
		{
			description: "classification of other type",
			baseType:    "Person",
			expression:  "class[Document_Class]",
			kind:        errx.ErrUnknownClassification,
			expect:      "esql resolve: unknown classification query=Documents type=Person classification=Document_Class",
		},
		{
			description: "not a link",
			expression:  "linkto[Name].attribute[Name]",
			kind:        errx.ErrNotLink,
			expect:      "esql resolve: attribute is not a link query=Documents type=Document attribute=Name",
		},
	}

	for _, testCase := range testCases {
		base := document
		if testCase.baseType == "Person" {
			base = person
		}
		env := &Env{Cache: cache, Tables: table.New(base.MainTable.Name), Query: "Documents"}
		part, err := Parse(testCase.expression)
		require.Nil(t, err, testCase.description)
		_, err = part.Resolve(env, base, 0)
		assert.ErrorIs(t, err, testCase.kind, testCase.description)
		assert.True(t, errx.IsSchema(err), testCase.description)
		if err != nil {
			assert.Equal(t, testCase.expect, err.Error(), testCase.description)
		}
	}
}
