package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestTableSetGet verifies insertion, overwrite-in-place, and lookup.
func TestTableSetGet(t *testing.T) {
	var tbl Table
	tbl.Set("a", NewLongUint(1))
	tbl.Set("b", NewLongUint(2))
	tbl.Set("a", NewLongUint(3)) // overwrite

	require.Equal(t, 2, tbl.Len())

	v, ok := tbl.Get("a")
	require.True(t, ok)
	u, _ := v.Uint64()
	require.Equal(t, uint64(3), u)

	_, ok = tbl.Get("missing")
	require.False(t, ok)
}

// TestTableEqualOrderIndependent verifies two tables built in different
// insertion orders compare equal.
func TestTableEqualOrderIndependent(t *testing.T) {
	var t1, t2 Table
	t1.Set("x", NewBool(true))
	t1.Set("y", NewShortString("hi"))

	t2.Set("y", NewShortString("hi"))
	t2.Set("x", NewBool(true))

	require.True(t, t1.Equal(t2))
}

// TestArrayEqualIsPositional verifies, in contrast to Table, that Array
// equality depends on element order.
func TestArrayEqualIsPositional(t *testing.T) {
	a := Array{NewLongUint(1), NewLongUint(2)}
	b := Array{NewLongUint(2), NewLongUint(1)}

	require.False(t, a.Equal(b))
	require.True(t, a.Equal(Array{NewLongUint(1), NewLongUint(2)}))
}

// TestNestedTableRoundTripsThroughValue verifies a table nested as a
// value inside another table preserves its contents.
func TestNestedTableRoundTripsThroughValue(t *testing.T) {
	var inner Table
	inner.Set("leaf", NewLongLongInt(-7))

	var outer Table
	outer.Set("nested", NewTable(inner))

	v, ok := outer.Get("nested")
	require.True(t, ok)
	require.Equal(t, KindTable, v.Kind())

	got, ok := v.Table()
	require.True(t, ok)
	require.True(t, got.Equal(inner))
}

// TestValueEqualRecursesIntoArrayOfTables verifies Value.Equal recurses
// through an array containing nested tables.
func TestValueEqualRecursesIntoArrayOfTables(t *testing.T) {
	var t1 Table
	t1.Set("k", NewShortShortUint(9))

	a1 := NewArray(Array{NewTable(t1), NewVoid()})
	a2 := NewArray(Array{NewTable(t1), NewVoid()})

	require.True(t, a1.Equal(a2))
}
