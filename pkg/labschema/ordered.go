package labschema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Ordered is a string-keyed map that iterates in insertion order.
// Replacing an existing key keeps its original position.
// The zero value is ready to use.
type Ordered[V any] struct {
	keys   []string
	values map[string]V
}

// NewOrdered creates an empty Ordered map.
func NewOrdered[V any]() *Ordered[V] {
	return &Ordered[V]{values: make(map[string]V)}
}

// Put stores v under key and reports whether an existing entry was replaced.
func (o *Ordered[V]) Put(key string, v V) bool {
	if o.values == nil {
		o.values = make(map[string]V)
	}
	if _, ok := o.values[key]; ok {
		o.values[key] = v
		return true
	}
	o.keys = append(o.keys, key)
	o.values[key] = v
	return false
}

// insertAt places a new key at position i. The key must not be present.
func (o *Ordered[V]) insertAt(i int, key string, v V) {
	if o.values == nil {
		o.values = make(map[string]V)
	}
	o.keys = append(o.keys, "")
	copy(o.keys[i+1:], o.keys[i:])
	o.keys[i] = key
	o.values[key] = v
}

// Get returns the value stored under key.
func (o *Ordered[V]) Get(key string) (V, bool) {
	if o == nil {
		var zero V
		return zero, false
	}
	v, ok := o.values[key]
	return v, ok
}

// Has reports whether key is present.
func (o *Ordered[V]) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Len returns the number of entries.
func (o *Ordered[V]) Len() int {
	if o == nil {
		return 0
	}
	return len(o.keys)
}

// Keys returns a copy of the keys in iteration order.
func (o *Ordered[V]) Keys() []string {
	if o == nil {
		return nil
	}
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// Each calls fn for every entry in order until fn returns false.
func (o *Ordered[V]) Each(fn func(key string, v V) bool) {
	if o == nil {
		return
	}
	for _, k := range o.keys {
		if !fn(k, o.values[k]) {
			return
		}
	}
}

// MarshalJSON encodes the map as a JSON object preserving iteration order.
func (o *Ordered[V]) MarshalJSON() ([]byte, error) {
	if o == nil {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		vb, err := json.Marshal(o.values[k])
		if err != nil {
			return nil, fmt.Errorf("failed to encode %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
