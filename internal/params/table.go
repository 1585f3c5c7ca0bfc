// Package params implements the parameter table handed to a launched driver
// process: an insertion-ordered mapping from string keys to scalar cty values.
//
// Why ordered, and why cty?
//
// A launch description assembles its parameters from several layers (a block of
// static camera defaults, then a derived block computed from resolved
// arguments). Merging those layers must be deterministic, and the rendered
// params file should read in the same order the description declares, so the
// table remembers insertion order. The values themselves are bool, number, or
// string; cty.Value is the tagged union the rest of the configuration pipeline
// already speaks, so the table stores cty values directly instead of inventing
// a parallel variant type.
package params

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// Entry is a single key/value pair in declaration order.
type Entry struct {
	Key   string
	Value cty.Value
}

// Table is an insertion-ordered mapping from parameter key to a scalar
// cty.Value. The zero value is not usable; construct with New.
type Table struct {
	keys   []string
	values map[string]cty.Value
}

// New creates an empty Table.
func New() *Table {
	return &Table{values: make(map[string]cty.Value)}
}

// Set inserts or overrides a key. A new key is appended at the end; an
// existing key keeps its original position and only its value changes. This
// is what makes a later merge layer win on collision without reshuffling the
// table.
func (t *Table) Set(key string, val cty.Value) {
	if _, exists := t.values[key]; !exists {
		t.keys = append(t.keys, key)
	}
	t.values[key] = val
}

// Get returns the value for a key and whether it is present.
func (t *Table) Get(key string) (cty.Value, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.keys)
}

// Entries returns all key/value pairs in insertion order. The slice is a
// copy; mutating it does not affect the table.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, 0, len(t.keys))
	for _, k := range t.keys {
		entries = append(entries, Entry{Key: k, Value: t.values[k]})
	}
	return entries
}

// Clone returns an independent copy of the table.
func (t *Table) Clone() *Table {
	clone := New()
	for _, k := range t.keys {
		clone.Set(k, t.values[k])
	}
	return clone
}

// Equal reports whether two tables hold the same entries in the same order.
// go-cmp picks this method up, so tables diff cleanly in tests.
func (t *Table) Equal(other *Table) bool {
	if other == nil || len(t.keys) != len(other.keys) {
		return false
	}
	for i, k := range t.keys {
		if other.keys[i] != k {
			return false
		}
		if !t.values[k].RawEquals(other.values[k]) {
			return false
		}
	}
	return true
}

// String renders the table for logs and error messages.
func (t *Table) String() string {
	s := "{"
	for i, k := range t.keys {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%s=%v", k, t.values[k])
	}
	return s + "}"
}

// Merge combines layers in the given order into a fresh table. Later layers
// override earlier ones on key collision; keys are never deleted. The inputs
// are not modified.
func Merge(layers ...*Table) *Table {
	merged := New()
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		for _, k := range layer.keys {
			merged.Set(k, layer.values[k])
		}
	}
	return merged
}
