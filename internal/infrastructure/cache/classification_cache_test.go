package cache

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheKey(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, cacheKey("I love this"), cacheKey("I love this"))
	})

	t.Run("distinct texts get distinct keys", func(t *testing.T) {
		assert.NotEqual(t, cacheKey("I love this"), cacheKey("I hate this"))
	})

	t.Run("whitespace variants are distinct", func(t *testing.T) {
		assert.NotEqual(t, cacheKey("hello"), cacheKey(" hello "))
	})

	t.Run("namespaced and fixed length", func(t *testing.T) {
		key := cacheKey(strings.Repeat("x", 5000))
		assert.True(t, strings.HasPrefix(key, "classification:"))
		assert.Len(t, key, len("classification:")+64)
	})
}
