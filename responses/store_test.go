package responses

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func collect(s Store) []Entry {
	var out []Entry
	for k, v := range s.All() {
		out = append(out, Entry{Keyword: k, Response: v})
	}
	return out
}

func TestMemory(t *testing.T) {
	t.Run("keeps insertion order", func(t *testing.T) {
		m := NewMemory(
			Entry{Keyword: "b", Response: "2"},
			Entry{Keyword: "a", Response: "1"},
			Entry{Keyword: "c", Response: "3"},
		)
		assert.Equal(t, []Entry{{"b", "2"}, {"a", "1"}, {"c", "3"}}, collect(m))
		assert.Equal(t, 3, m.Len())
	})

	t.Run("overwrite keeps a single entry in its original position", func(t *testing.T) {
		m := NewMemory(Entry{Keyword: "k", Response: "r1"}, Entry{Keyword: "x", Response: "y"})
		m.Put("k", "r2")
		assert.Equal(t, []Entry{{"k", "r2"}, {"x", "y"}}, collect(m))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("delete removes the entry", func(t *testing.T) {
		m := NewMemory(Entry{Keyword: "a", Response: "1"}, Entry{Keyword: "b", Response: "2"})
		assert.True(t, m.Delete("a"))
		assert.Equal(t, []Entry{{"b", "2"}}, collect(m))
	})

	t.Run("delete of a missing keyword is a no-op", func(t *testing.T) {
		m := NewMemory(Entry{Keyword: "Hey", Response: "What's up?"})
		assert.NotPanics(t, func() {
			assert.False(t, m.Delete("missing"))
			assert.False(t, m.Delete("missing"))
		})
		assert.Equal(t, []Entry{{"Hey", "What's up?"}}, collect(m))
	})

	t.Run("all is restartable and reflects current state", func(t *testing.T) {
		m := NewMemory(Entry{Keyword: "a", Response: "1"})
		first := collect(m)
		second := collect(m)
		assert.Equal(t, first, second)

		m.Put("b", "2")
		assert.Equal(t, []Entry{{"a", "1"}, {"b", "2"}}, collect(m))
	})

	t.Run("all stops when the consumer stops", func(t *testing.T) {
		m := NewMemory(Entry{Keyword: "a", Response: "1"}, Entry{Keyword: "b", Response: "2"})
		var seen []string
		for k := range m.All() {
			seen = append(seen, k)
			break
		}
		assert.Equal(t, []string{"a"}, seen)
	})

	t.Run("empty store", func(t *testing.T) {
		m := NewMemory()
		assert.Empty(t, collect(m))
		assert.Equal(t, 0, m.Len())
	})
}
