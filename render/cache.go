// Copyright © 2026 The lovels authors

package render

import (
	"sync"

	"github.com/lovely2d/lovels/catalog"
)

// DefaultCacheSize is the number of rendered entries a Cache keeps.
const DefaultCacheSize = 10

// Cache is a bounded map from catalog key to rendered content. When full,
// the least recently inserted key is evicted. Replacing the content of a
// present key keeps its insertion slot.
type Cache struct {
	mu       sync.Mutex
	capacity int
	order    []string
	items    map[string]string
}

// NewCache creates a cache holding at most capacity entries. A
// non-positive capacity selects DefaultCacheSize.
func NewCache(capacity int) *Cache {
	if capacity <= 0 {
		capacity = DefaultCacheSize
	}
	return &Cache{
		capacity: capacity,
		items:    make(map[string]string, capacity),
	}
}

// Get returns the content cached for key.
func (c *Cache) Get(key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.items[key]
	return s, ok
}

// Put stores content under key, evicting the oldest insertion if the
// cache is full.
func (c *Cache) Put(key, content string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[key]; ok {
		c.items[key] = content
		return
	}
	if len(c.order) >= c.capacity {
		oldest := c.order[0]
		copy(c.order, c.order[1:])
		c.order = c.order[:len(c.order)-1]
		delete(c.items, oldest)
	}
	c.order = append(c.order, key)
	c.items[key] = content
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Keys returns the cached keys, oldest insertion first.
func (c *Cache) Keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// CachedRenderer memoizes hover renders, which depend on the entry alone.
// Other modes are rendered directly. Output is identical with and without
// a populated cache.
type CachedRenderer struct {
	Renderer *Renderer
	Cache    *Cache
}

var _ Documenter = (*CachedRenderer)(nil)

// NewCachedRenderer wraps r with a cache of the given capacity.
func NewCachedRenderer(r *Renderer, capacity int) *CachedRenderer {
	return &CachedRenderer{Renderer: r, Cache: NewCache(capacity)}
}

// Render implements Documenter.
func (r *CachedRenderer) Render(e *catalog.Entry, mode Mode, highlight int) string {
	if e == nil || mode != Hover || r.Cache == nil {
		return r.Renderer.Render(e, mode, highlight)
	}
	if s, ok := r.Cache.Get(e.Key); ok {
		return s
	}
	s := r.Renderer.Render(e, Hover, NoHighlight)
	r.Cache.Put(e.Key, s)
	return s
}
