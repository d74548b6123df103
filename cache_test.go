package roster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexCacheBasicOperations(t *testing.T) {
	cache := newIndexCache[string, string](10, "items")

	items := []string{"item0", "item1", "item2", "item3", "item4"}
	for i, item := range items {
		index, err := cache.Register(item, item)
		require.NoError(t, err)
		assert.Equal(t, i, index, "indices follow registration order")
	}

	for i, item := range items {
		index, found := cache.GetIndex(item)
		require.True(t, found)
		assert.Equal(t, i, index)
		assert.Equal(t, item, *cache.GetItem(index))
	}

	_, found := cache.GetIndex("nonexistent")
	assert.False(t, found)
	assert.Equal(t, len(items), cache.Len())
}

func TestIndexCacheCapacity(t *testing.T) {
	const capacity = 5
	cache := newIndexCache[int, int](capacity, "numbers")

	for i := 0; i < capacity; i++ {
		_, err := cache.Register(i, i*i)
		require.NoError(t, err)
	}

	index, err := cache.Register(100, 100)
	var capErr CapacityExceededError
	require.ErrorAs(t, err, &capErr)
	assert.Equal(t, -1, index)
	assert.Equal(t, capacity, capErr.Limit)
	assert.Equal(t, "numbers", capErr.What)
	assert.Equal(t, capacity, cache.Len())
}

func TestIndexCacheClear(t *testing.T) {
	cache := newIndexCache[string, Position](10, "positions")
	for _, key := range []string{"a", "b", "c"} {
		_, err := cache.Register(key, Position{X: 1})
		require.NoError(t, err)
	}

	cache.Clear()
	assert.Equal(t, 0, cache.Len())
	_, found := cache.GetIndex("a")
	assert.False(t, found)

	index, err := cache.Register("c", Position{Y: 2})
	require.NoError(t, err)
	assert.Equal(t, 0, index, "indices restart after clear")
	assert.Equal(t, Position{Y: 2}, *cache.GetItem(index))
}
