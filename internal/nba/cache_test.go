package nba

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheTTL(t *testing.T) {
	c := newCache(15 * time.Minute)
	current := time.Now()
	c.now = func() time.Time { return current }

	_, ok := c.get("board")
	assert.False(t, ok, "empty cache must miss")

	c.set("board", []int{1, 2, 3})

	v, ok := c.get("board")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, v)

	current = current.Add(14 * time.Minute)
	_, ok = c.get("board")
	assert.True(t, ok, "entry inside the TTL must hit")

	current = current.Add(time.Minute)
	_, ok = c.get("board")
	assert.False(t, ok, "entry read exactly at the deadline must miss")

	// A fresh set after expiry starts a new window.
	c.set("board", "fresh")
	v, ok = c.get("board")
	require.True(t, ok)
	assert.Equal(t, "fresh", v)
}

func TestCacheKeysAreIndependent(t *testing.T) {
	c := newCache(time.Minute)
	c.set("a", 1)
	c.set("b", 2)

	v, ok := c.get("a")
	require.True(t, ok)
	assert.Equal(t, 1, v)
	v, ok = c.get("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}
