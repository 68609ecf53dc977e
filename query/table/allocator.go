// Package table allocates correlation aliases for the tables a query joins
package table

import (
	"fmt"
	"strconv"

	"github.com/efaps/esql/io/errx"
)

const opAllocate = "allocate"

type (
	// Key identifies one join path: the joined table, the column correlating it and the parent alias index
	Key struct {
		Table  string
		Column string
		Parent int
	}

	// Join represents allocated table with its join condition: T<Index>.<Left> = T<Parent>.<Right>
	Join struct {
		Key
		Index int
		Left  string
		Right string
	}

	// Allocator represents per query table alias registry, index 0 is the base table
	Allocator struct {
		base   string
		joins  []*Join
		byKey  map[Key]*Join
		sealed bool
	}
)

// Alias returns alias for supplied index
func Alias(index int) string {
	return "T" + strconv.Itoa(index)
}

// Index returns previously allocated index for the key
func (a *Allocator) Index(tableName, column string, parent int) (int, bool) {
	join, ok := a.byKey[Key{Table: tableName, Column: column, Parent: parent}]
	if !ok {
		return 0, false
	}
	return join.Index, true
}

// NewIndex allocates next index for the key, joined with T<index>.left = T<parent>.right
func (a *Allocator) NewIndex(tableName, column string, parent int, left, right string) (int, error) {
	if a.sealed {
		return 0, errx.Misuse(opAllocate, fmt.Errorf("allocator sealed, unable to join %v", tableName))
	}
	key := Key{Table: tableName, Column: column, Parent: parent}
	if _, ok := a.byKey[key]; ok {
		return 0, errx.Misuse(opAllocate, fmt.Errorf("duplicate join key %+v", key))
	}
	if parent < 0 || parent > len(a.joins) {
		return 0, errx.Misuse(opAllocate, fmt.Errorf("unknown parent index %v for %v", parent, tableName))
	}
	join := &Join{Key: key, Index: len(a.joins) + 1, Left: left, Right: right}
	a.joins = append(a.joins, join)
	a.byKey[key] = join
	return join.Index, nil
}

// Ensure returns existing index for the key or allocates a new one,
// reusing a key with a different join condition is rejected
func (a *Allocator) Ensure(tableName, column string, parent int, left, right string) (int, error) {
	join, ok := a.byKey[Key{Table: tableName, Column: column, Parent: parent}]
	if !ok {
		return a.NewIndex(tableName, column, parent, left, right)
	}
	if join.Left != left || join.Right != right {
		return 0, errx.Misuse(opAllocate, fmt.Errorf("join key %+v reused with %v = %v, previously %v = %v", join.Key, left, right, join.Left, join.Right))
	}
	return join.Index, nil
}

// Joins returns joins in allocation order
func (a *Allocator) Joins() []*Join {
	return a.joins
}

// Table returns table name for supplied index
func (a *Allocator) Table(index int) (string, bool) {
	if index == 0 {
		return a.base, true
	}
	if index < 0 || index > len(a.joins) {
		return "", false
	}
	return a.joins[index-1].Table, true
}

// Len returns number of allocated aliases including base table
func (a *Allocator) Len() int {
	return len(a.joins) + 1
}

// Seal rejects further allocation
func (a *Allocator) Seal() {
	a.sealed = true
}

// Sealed returns true if allocator was sealed
func (a *Allocator) Sealed() bool {
	return a.sealed
}

// New creates allocator with base table at index 0
func New(base string) *Allocator {
	return &Allocator{base: base, byKey: map[Key]*Join{}}
}
