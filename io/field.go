package io

import (
	"unsafe"

	"github.com/viant/xunsafe"
)

// Field represents column mapped field
type Field struct {
	Tag
	Column string
	*xunsafe.Field
}

// Addr returns field pointer
func (f *Field) Addr(pointer unsafe.Pointer) interface{} {
	return f.Field.Addr(pointer)
}
