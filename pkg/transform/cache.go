package transform

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/taigrr/neon/pkg/math3d"
)

// Cache memoizes op-list matrices by op prefix. Transforms never cache on
// their own; callers that rebuild the same prefixes every frame, like a rig
// whose joints share a chain, opt in through a Cache. A Cache is safe for
// concurrent use.
type Cache struct {
	mats *lru.Cache[string, math3d.Mat4]
}

// NewCache returns a cache holding up to size matrices.
func NewCache(size int) (*Cache, error) {
	mats, err := lru.New[string, math3d.Mat4](size)
	if err != nil {
		return nil, fmt.Errorf("create matrix cache: %w", err)
	}
	return &Cache{mats: mats}, nil
}

// Mat is t.Mat through the cache.
func (c *Cache) Mat(t *Transform) math3d.Mat4 {
	return c.MatAt(t, t.Len())
}

// MatAt is t.MatAt through the cache.
func (c *Cache) MatAt(t *Transform, n int) math3d.Mat4 {
	key := t.Key(n)
	if m, ok := c.mats.Get(key); ok {
		return m
	}
	m := t.MatAt(n)
	c.mats.Add(key, m)
	return m
}

// Len returns the number of cached matrices.
func (c *Cache) Len() int {
	return c.mats.Len()
}

// Purge drops every cached matrix.
func (c *Cache) Purge() {
	c.mats.Purge()
}
