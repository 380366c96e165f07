package pathtree

import (
	"iter"
	"slices"
)

// Attributes is an insertion-ordered string to string mapping.
//
// Setting a key that already exists replaces its value but keeps the key at
// its original position, so repeated merges never reorder output. A nil
// *Attributes behaves as an empty mapping for all read methods.
type Attributes struct {
	keys   []string
	values map[string]string
}

// NewAttributes returns Attributes populated from alternating key, value
// arguments. It panics if given an odd number of arguments.
func NewAttributes(pairs ...string) *Attributes {
	if len(pairs)%2 == 1 {
		panic("pathtree.NewAttributes: odd argument count")
	}
	a := &Attributes{values: make(map[string]string, len(pairs)/2)}
	for i := 0; i < len(pairs); i += 2 {
		a.Set(pairs[i], pairs[i+1])
	}
	return a
}

// Set stores value under key and reports whether an existing value was
// overwritten.
func (a *Attributes) Set(key, value string) bool {
	if a.values == nil {
		a.values = make(map[string]string)
	}
	_, exists := a.values[key]
	if !exists {
		a.keys = append(a.keys, key)
	}
	a.values[key] = value
	return exists
}

// Get returns the value stored under key.
func (a *Attributes) Get(key string) (string, bool) {
	if a == nil {
		return "", false
	}
	v, ok := a.values[key]
	return v, ok
}

// Len returns the number of keys.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}

// Keys returns the keys in stored order.
func (a *Attributes) Keys() []string {
	if a == nil {
		return nil
	}
	return slices.Clone(a.keys)
}

// All iterates over key, value pairs in stored order.
func (a *Attributes) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		if a == nil {
			return
		}
		for _, k := range a.keys {
			if !yield(k, a.values[k]) {
				return
			}
		}
	}
}

// Merge sets every pair of other onto a, in other's order, and returns the
// keys whose previous values were overwritten (last write wins).
func (a *Attributes) Merge(other *Attributes) []string {
	var overwritten []string
	for k, v := range other.All() {
		if a.Set(k, v) {
			overwritten = append(overwritten, k)
		}
	}
	return overwritten
}

// Clone returns an independent copy. Cloning nil yields an empty mapping.
func (a *Attributes) Clone() *Attributes {
	c := &Attributes{values: make(map[string]string, a.Len())}
	c.Merge(a)
	return c
}

// Equal reports whether a and other hold the same pairs in the same order.
func (a *Attributes) Equal(other *Attributes) bool {
	if a.Len() != other.Len() {
		return false
	}
	for i, k := range a.Keys() {
		if other.keys[i] != k || other.values[k] != a.values[k] {
			return false
		}
	}
	return true
}
