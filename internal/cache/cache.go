// Package cache is a small in-memory TTL cache with LRU eviction. It backs
// the caching gateway decorator; nothing here is shared across processes.
package cache

import (
	"container/list"
	"sync"
	"time"
)

// Cache is safe for concurrent use. Expired entries are removed lazily on
// the next Get.
type Cache struct {
	mu       sync.Mutex
	items    map[string]*entry
	order    *list.List // MRU at front, LRU at back
	maxItems int        // 0 = unlimited
}

type entry struct {
	key  string
	val  any
	exp  time.Time // zero = no expiry
	elem *list.Element
}

// New creates a Cache holding at most maxItems entries; maxItems <= 0 means
// unlimited.
func New(maxItems int) *Cache {
	if maxItems < 0 {
		maxItems = 0
	}
	return &Cache{
		items:    make(map[string]*entry),
		order:    list.New(),
		maxItems: maxItems,
	}
}

// Get returns the value for key and whether it exists and has not expired.
func (c *Cache) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.items[key]
	if !ok {
		return nil, false
	}
	if !e.exp.IsZero() && time.Now().After(e.exp) {
		c.remove(e)
		return nil, false
	}
	c.order.MoveToFront(e.elem)
	return e.val, true
}

// Set stores val under key with the given TTL. ttl <= 0 means no expiry.
func (c *Cache) Set(key string, val any, ttl time.Duration) {
	var exp time.Time
	if ttl > 0 {
		exp = time.Now().Add(ttl)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[key]; ok {
		e.val = val
		e.exp = exp
		c.order.MoveToFront(e.elem)
		return
	}
	e := &entry{key: key, val: val, exp: exp}
	e.elem = c.order.PushFront(e)
	c.items[key] = e
	if c.maxItems > 0 && c.order.Len() > c.maxItems {
		if back := c.order.Back(); back != nil {
			c.remove(back.Value.(*entry))
		}
	}
}

// Delete removes key if present.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if e, ok := c.items[key]; ok {
		c.remove(e)
	}
}

// Len reports the number of stored entries, counting expired ones not yet
// collected.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.order.Len()
}

// remove unlinks e. Callers must hold c.mu.
func (c *Cache) remove(e *entry) {
	delete(c.items, e.key)
	c.order.Remove(e.elem)
}
