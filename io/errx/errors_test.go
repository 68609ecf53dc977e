package errx

import (
	"database/sql/driver"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSchemaKinds_Is(t *testing.T) {
	var testCases = []struct {
		description string
		err         error
		kind        error
		expect      string
	}{
		{
			description: "unknown type",
			err:         UnknownType("Document", "Docment"),
			kind:        ErrUnknownType,
			expect:      "esql resolve: unknown type query=Document type=Docment",
		},
		{
			description: "unknown attribute",
			err:         UnknownAttribute("Document", "Person", "Nmae"),
			kind:        ErrUnknownAttribute,
			expect:      "esql resolve: unknown attribute query=Document type=Person attribute=Nmae",
		},
		{
			description: "unknown classification",
			err:         UnknownClassification("Document", "Document", "Missing"),
			kind:        ErrUnknownClassification,
			expect:      "esql resolve: unknown classification query=Document type=Document classification=Missing",
		},
	}

	for _, testCase := range testCases {
		assert.True(t, errors.Is(testCase.err, testCase.kind), testCase.description)
		assert.True(t, IsSchema(testCase.err), testCase.description)
		assert.False(t, IsExecution(testCase.err), testCase.description)
		assert.EqualValues(t, testCase.expect, testCase.err.Error(), testCase.description)
	}
}

func TestExecution_PreservesCause(t *testing.T) {
	err := Execution("Document", driver.ErrBadConn)
	assert.True(t, IsExecution(err))
	assert.True(t, errors.Is(err, driver.ErrBadConn))
	assert.False(t, IsSchema(err))

	var actual *Error
	if assert.True(t, errors.As(err, &actual)) {
		assert.Equal(t, "Document", actual.Query)
	}
}

func TestMisuse_Is(t *testing.T) {
	err := Misuse("allocate", errors.New("sealed"))
	assert.True(t, IsMisuse(err))
	assert.EqualValues(t, "esql allocate: misuse: sealed", err.Error())
}
