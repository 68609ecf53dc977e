package read

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/efaps/esql/io"
	"github.com/viant/toolbox"
	"github.com/viant/xunsafe"
)

//RowMapper assigns scanned values to a row
type RowMapper func(target interface{}, values []interface{}) error

//NewRowMapper creates a row mapper for supplied columns and row type
func NewRowMapper(columns []string, targetType reflect.Type, tagName string) (RowMapper, error) {
	switch targetType.Kind() {
	case reflect.Ptr:
		if targetType.Elem().Kind() == reflect.Struct {
			return NewStructMapper(columns, targetType.Elem(), tagName)
		}
	case reflect.Map:
		return mapMapper(columns), nil
	case reflect.Slice:
		return sliceMapper(columns), nil
	}
	return nil, fmt.Errorf("unsupported row type: %v", targetType.String())
}

//NewStructMapper creates a new record mapper for supplied struct type
func NewStructMapper(columns []string, recordType reflect.Type, tagName string) (RowMapper, error) {
	matched, err := io.NewMatcher(tagName).Match(recordType, columns)
	if err != nil {
		return nil, err
	}
	return func(target interface{}, values []interface{}) error {
		ptr := xunsafe.AsPointer(target)
		for i := range matched {
			if err := Assign(matched[i].Addr(ptr), values[i]); err != nil {
				return fmt.Errorf("failed to assign %v: %w", matched[i].Column, err)
			}
		}
		return nil
	}, nil
}

func mapMapper(columns []string) RowMapper {
	return func(target interface{}, values []interface{}) error {
		aMap, ok := target.(map[string]interface{})
		if !ok {
			return fmt.Errorf("expected %T, but had %T", aMap, target)
		}
		for i, column := range columns {
			aMap[column] = Normalize(values[i])
		}
		return nil
	}
}

func sliceMapper(columns []string) RowMapper {
	return func(target interface{}, values []interface{}) error {
		aSlice, ok := target.([]interface{})
		if !ok || len(aSlice) < len(columns) {
			return fmt.Errorf("expected %T with %v elements, but had %T", aSlice, len(columns), target)
		}
		for i := range columns {
			aSlice[i] = Normalize(values[i])
		}
		return nil
	}
}

//Normalize converts driver bytes into string
func Normalize(value interface{}) interface{} {
	if data, ok := value.([]byte); ok {
		return string(data)
	}
	return value
}

var timeLayouts = []string{time.RFC3339Nano, "2006-01-02 15:04:05.999999999-07:00", "2006-01-02 15:04:05.999999999", "2006-01-02"}

//Assign converts value into destination pointer type, nil value leaves destination unchanged
func Assign(dest interface{}, value interface{}) error {
	value = Normalize(value)
	if value == nil {
		return nil
	}
	switch actual := dest.(type) {
	case *interface{}:
		*actual = value
	case *string:
		*actual = toolbox.AsString(value)
	case *int:
		*actual = toolbox.AsInt(value)
	case *int64:
		*actual = int64(toolbox.AsInt(value))
	case *float64:
		*actual = toolbox.AsFloat(value)
	case *bool:
		*actual = asBool(value)
	case *time.Time:
		ts, err := asTime(value)
		if err != nil {
			return err
		}
		*actual = ts
	default:
		destValue := reflect.ValueOf(dest)
		if destValue.Kind() != reflect.Ptr {
			return fmt.Errorf("expected pointer, but had %T", dest)
		}
		source := reflect.ValueOf(value)
		if !source.Type().ConvertibleTo(destValue.Elem().Type()) {
			return fmt.Errorf("unable to convert %T to %v", value, destValue.Elem().Type())
		}
		destValue.Elem().Set(source.Convert(destValue.Elem().Type()))
	}
	return nil
}

func asBool(value interface{}) bool {
	switch actual := value.(type) {
	case int64:
		return actual != 0
	case int:
		return actual != 0
	case float64:
		return actual != 0
	case string:
		switch strings.ToLower(actual) {
		case "1", "t", "y", "yes", "true", "\x01": //MySQL BIT(1) arrives as a single byte
			return true
		}
		return false
	}
	return toolbox.AsBoolean(value)
}

func asTime(value interface{}) (time.Time, error) {
	switch actual := value.(type) {
	case time.Time:
		return actual, nil
	case string:
		for _, layout := range timeLayouts {
			if ts, err := time.Parse(layout, actual); err == nil {
				return ts, nil
			}
		}
		return time.Time{}, fmt.Errorf("unsupported time format: %v", actual)
	}
	return time.Time{}, fmt.Errorf("unable to convert %T to time", value)
}
