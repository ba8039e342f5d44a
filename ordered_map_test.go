package tokenv2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderedMap(t *testing.T) {
	m := NewOrderedMap[int]()
	assert.Equal(t, 0, m.Len())
	assert.Empty(t, m.Keys())

	m.Set("b", 1)
	m.Set("a", 2)
	m.Set("c", 3)

	t.Run("Order", func(t *testing.T) {
		assert.Equal(t, []string{"b", "a", "c"}, m.Keys())
		assert.Equal(t, 3, m.Len())
	})

	t.Run("OverwriteKeepsPosition", func(t *testing.T) {
		m.Set("b", 10)
		assert.Equal(t, []string{"b", "a", "c"}, m.Keys())

		v, ok := m.Get("b")
		require.True(t, ok)
		assert.Equal(t, 10, v)
	})

	t.Run("Missing", func(t *testing.T) {
		v, ok := m.Get("x")
		assert.False(t, ok)
		assert.Equal(t, 0, v)
		assert.False(t, m.Has("x"))
		assert.True(t, m.Has("a"))
	})

	t.Run("KeysIsCopy", func(t *testing.T) {
		keys := m.Keys()
		keys[0] = "changed"
		assert.Equal(t, "b", m.Keys()[0])
	})

	t.Run("Range", func(t *testing.T) {
		var visited []string
		m.Range(func(key string, value int) bool {
			visited = append(visited, key)
			return key != "a"
		})
		assert.Equal(t, []string{"b", "a"}, visited)
	})
}
