package io

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

type documentRow struct {
	ID       int64  `sqlx:"ID"`
	Name     string `sqlx:"name=DOC_NAME"`
	Status   int
	Creator  string `sqlx:"CREATOR_NAME|PERSON_NAME"`
	Internal string `sqlx:"-"`
}

func TestMatcher_Match(t *testing.T) {
	var testCases = []struct {
		description string
		columns     []string
		expect      []string
		hasError    bool
	}{
		{
			description: "tag names",
			columns:     []string{"ID", "DOC_NAME"},
			expect:      []string{"ID", "Name"},
		},
		{
			description: "field name fuzzy match",
			columns:     []string{"status", "id"},
			expect:      []string{"Status", "ID"},
		},
		{
			description: "alternative column names",
			columns:     []string{"PERSON_NAME"},
			expect:      []string{"Creator"},
		},
		{
			description: "transient field not matched",
			columns:     []string{"Internal"},
			hasError:    true,
		},
	}

	for _, testCase := range testCases {
		fields, err := NewMatcher("sqlx").Match(reflect.TypeOf(&documentRow{}), testCase.columns)
		if testCase.hasError {
			assert.NotNil(t, err, testCase.description)
			continue
		}
		if !assert.Nil(t, err, testCase.description) {
			continue
		}
		var actual []string
		for _, field := range fields {
			actual = append(actual, field.Name)
		}
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestParseTag(t *testing.T) {
	assert.Equal(t, &Tag{Column: "ID"}, ParseTag("ID"))
	assert.Equal(t, &Tag{Column: "NAME"}, ParseTag("name=NAME"))
	assert.Equal(t, &Tag{Transient: true}, ParseTag("-"))
	assert.Equal(t, &Tag{}, ParseTag(""))
}

func TestMatcher_Partial(t *testing.T) {
	fields, err := NewMatcher("sqlx").Partial().Match(reflect.TypeOf(&documentRow{}), []string{"ID", "UNKNOWN", "DOC_NAME"})
	assert.Nil(t, err)
	assert.Len(t, fields, 3)
	assert.Equal(t, "ID", fields[0].Name)
	assert.Nil(t, fields[1].Field)
	assert.Equal(t, "Name", fields[2].Name)
}
