package wire

// entry is a single (name, value) pair inside a Table, kept alongside an
// index so repeated lookups don't re-scan the slice while insertion order
// is still preserved for deterministic re-encoding — the same ordered-list
// plus hash-index shape the teacher uses to track metric names
// (internal/collision.Tracker: metricNamesList ordered, metricNames map for
// O(1) lookup).
type entry struct {
	name  string
	value Value
}

// Table is an ordered mapping from field name to Value. Equality is
// order-independent per spec; iteration order (Range) follows insertion
// order for deterministic re-encoding.
type Table struct {
	entries []entry
	index   map[string]int
}

// Set inserts or overwrites the value for name, preserving the original
// insertion position on overwrite.
func (t *Table) Set(name string, v Value) {
	if t.index == nil {
		t.index = make(map[string]int)
	}

	if i, ok := t.index[name]; ok {
		t.entries[i].value = v
		return
	}

	t.index[name] = len(t.entries)
	t.entries = append(t.entries, entry{name: name, value: v})
}

// Get returns the value for name and whether it was present.
func (t Table) Get(name string) (Value, bool) {
	i, ok := t.index[name]
	if !ok {
		return Value{}, false
	}

	return t.entries[i].value, true
}

// Len returns the number of entries in t.
func (t Table) Len() int { return len(t.entries) }

// Range calls fn for each entry in insertion order, stopping early if fn
// returns false.
func (t Table) Range(fn func(name string, v Value) bool) {
	for _, e := range t.entries {
		if !fn(e.name, e.value) {
			return
		}
	}
}

// Equal reports whether t and other contain the same set of (name, value)
// pairs, irrespective of insertion order.
func (t Table) Equal(other Table) bool {
	if t.Len() != other.Len() {
		return false
	}

	for _, e := range t.entries {
		ov, ok := other.Get(e.name)
		if !ok || !e.value.Equal(ov) {
			return false
		}
	}

	return true
}

// Array is an ordered, heterogeneously-typed sequence of field values.
type Array []Value

// Equal reports whether a and other hold equal values in the same order —
// arrays are positional, unlike tables, so order matters here.
func (a Array) Equal(other Array) bool {
	if len(a) != len(other) {
		return false
	}

	for i := range a {
		if !a[i].Equal(other[i]) {
			return false
		}
	}

	return true
}
