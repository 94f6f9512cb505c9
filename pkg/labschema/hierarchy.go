package labschema

import (
	"sort"
	"strings"
)

// Depth returns the number of dot separators in a hierarchical code.
func Depth(code string) int {
	return strings.Count(code, ".")
}

// Hierarchy is an Ordered map kept sorted by ascending Depth of its keys,
// ties broken by insertion order. Iterating it yields every code before any
// code with more dot segments, so a dot-truncated parent is always seen
// before its children.
//
// The order equals a stable sort by Depth after every insertion; new keys are
// placed at the upper bound of their depth instead of re-sorting.
type Hierarchy[V any] struct {
	Ordered[V]
}

// NewHierarchy creates an empty Hierarchy.
func NewHierarchy[V any]() *Hierarchy[V] {
	return &Hierarchy[V]{Ordered: Ordered[V]{values: make(map[string]V)}}
}

// Put stores v under code. An existing code keeps its slot and is overwritten.
func (h *Hierarchy[V]) Put(code string, v V) bool {
	if h.Has(code) {
		h.values[code] = v
		return true
	}
	depth := Depth(code)
	i := sort.Search(len(h.keys), func(i int) bool {
		return Depth(h.keys[i]) > depth
	})
	h.insertAt(i, code, v)
	return false
}
