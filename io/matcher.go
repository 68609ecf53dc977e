package io

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/viant/xunsafe"
)

//Matcher implements column to struct filed mapper
type Matcher struct {
	tagName string
	partial bool
}

//Partial returns matcher leaving columns without a field unmapped instead of reporting an error
func (f *Matcher) Partial() *Matcher {
	return &Matcher{tagName: f.tagName, partial: true}
}

//Match matches field with columns, columns without a field are reported as error unless matcher is partial,
//then their Field is left nil
func (f *Matcher) Match(targetType reflect.Type, columns []string) ([]Field, error) {
	if targetType.Kind() == reflect.Ptr {
		targetType = targetType.Elem()
	}
	if targetType.Kind() != reflect.Struct {
		return nil, fmt.Errorf("expected struct, but had: %v", targetType.String())
	}
	xStruct := xunsafe.NewStruct(targetType)
	var idx = make(index, len(xStruct.Fields)*3) //create index to map various version of field name to the column name
	var fields = make([]Field, 0, len(xStruct.Fields))
	for i := range xStruct.Fields {
		structField := &xStruct.Fields[i]
		field := Field{Field: structField}
		if parsed := ParseTag(structField.Tag.Get(f.tagName)); parsed != nil {
			field.Tag = *parsed
		}
		if field.Transient {
			continue
		}
		pos := len(fields)
		if field.Tag.Column != "" {
			for _, name := range strings.Split(field.Tag.Column, "|") {
				idx.add(name, pos)
			}
		}
		idx.add(structField.Name, pos)
		fields = append(fields, field)
	}
	var matched = make([]Field, len(columns))
	var unmatched []string
	for i, column := range columns {
		pos := idx.match(column)
		if pos == -1 {
			if f.partial {
				continue
			}
			unmatched = append(unmatched, column)
			continue
		}
		matched[i] = fields[pos]
		matched[i].Column = column
	}
	if len(unmatched) > 0 {
		return nil, fmt.Errorf("failed to match columns: %v", unmatched)
	}
	return matched, nil
}

//NewMatcher creates a fields to column matcher
func NewMatcher(tagName string) *Matcher {
	return &Matcher{tagName: tagName}
}
