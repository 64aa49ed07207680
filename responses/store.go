// Package responses holds the keyword to response mapping the bot answers
// with, and the matching rules used against incoming messages.
package responses

import "iter"

// Entry is a single keyword and the text posted when it is seen.
type Entry struct {
	Keyword  string `mapstructure:"keyword" validate:"required,notblank,max=99"`
	Response string `mapstructure:"response"`
}

// Store keeps keyword / response pairs.
type Store interface {
	// Put inserts or overwrites the response for keyword.
	Put(keyword, response string)
	// Delete removes keyword and reports whether it was present. Deleting a
	// missing keyword does nothing.
	Delete(keyword string) bool
	// All yields the pairs in insertion order.
	All() iter.Seq2[string, string]
	Len() int
}

// Memory is an in-memory Store that remembers insertion order.
//
// Memory is not safe for concurrent use.
type Memory struct {
	keys   []string
	values map[string]string
}

// NewMemory returns a Memory seeded with entries, in order.
func NewMemory(entries ...Entry) *Memory {
	m := &Memory{
		values: make(map[string]string, len(entries)),
	}
	for _, e := range entries {
		m.Put(e.Keyword, e.Response)
	}
	return m
}

// Put implements Store. Overwriting a keyword keeps its original position.
func (m *Memory) Put(keyword, response string) {
	if _, ok := m.values[keyword]; !ok {
		m.keys = append(m.keys, keyword)
	}
	m.values[keyword] = response
}

// Delete implements Store.
func (m *Memory) Delete(keyword string) bool {
	if _, ok := m.values[keyword]; !ok {
		return false
	}
	delete(m.values, keyword)
	for i, k := range m.keys {
		if k == keyword {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
	return true
}

// All implements Store.
func (m *Memory) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Len implements Store.
func (m *Memory) Len() int {
	return len(m.keys)
}
