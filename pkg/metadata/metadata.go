// Package metadata provides the insertion-ordered mapping used for document
// frontmatter. Keys keep their first-seen position; assigning an existing key
// replaces the value in place.
package metadata

import (
	"bytes"
	"encoding/json"
)

// Mapping is an ordered set of (key, value) pairs keyed by string.
type Mapping struct {
	keys   []string
	values map[string]any
}

// Pair couples a metadata key with its value.
type Pair struct {
	Key   string
	Value any
}

// New returns an empty Mapping ready for use.
func New() *Mapping {
	return &Mapping{values: map[string]any{}}
}

// Set stores value under key. A new key is appended; an existing key keeps
// its original position and gets the new value.
func (m *Mapping) Set(key string, value any) {
	if m.values == nil {
		m.values = map[string]any{}
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value stored under key and whether it was present.
func (m *Mapping) Get(key string) (any, bool) {
	if m == nil || m.values == nil {
		return nil, false
	}
	value, ok := m.values[key]
	return value, ok
}

// Len reports the number of stored keys.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order. The slice is a copy.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// Pairs returns the entries in insertion order.
func (m *Mapping) Pairs() []Pair {
	if m == nil {
		return nil
	}
	pairs := make([]Pair, 0, len(m.keys))
	for _, key := range m.keys {
		pairs = append(pairs, Pair{Key: key, Value: m.values[key]})
	}
	return pairs
}

// MarshalJSON encodes the mapping as a JSON object preserving key order.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		value, err := json.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
