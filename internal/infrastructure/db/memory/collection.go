// Package memory holds in-process repositories used by the memory store
// driver and by tests. Every value is cloned on the way in and out so callers
// never share state with the store.
package memory

import "sync"

type collection[T any] struct {
	mu    sync.RWMutex
	order []string
	items map[string]T
	clone func(T) T
}

func newCollection[T any](clone func(T) T) *collection[T] {
	return &collection[T]{items: make(map[string]T), clone: clone}
}

// insert adds v under id. It reports false when id is already taken.
func (c *collection[T]) insert(id string, v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; ok {
		return false
	}
	c.items[id] = c.clone(v)
	c.order = append(c.order, id)
	return true
}

func (c *collection[T]) get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.items[id]
	if !ok {
		var zero T
		return zero, false
	}
	return c.clone(v), true
}

// replace overwrites an existing entry. It reports false when id is unknown.
func (c *collection[T]) replace(id string, v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	c.items[id] = c.clone(v)
	return true
}

// upsert stores v under id, inserting it when id is new.
func (c *collection[T]) upsert(id string, v T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		c.order = append(c.order, id)
	}
	c.items[id] = c.clone(v)
}

// mutate runs fn on the stored value under the write lock.
func (c *collection[T]) mutate(id string, fn func(T)) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.items[id]
	if !ok {
		return false
	}
	fn(v)
	return true
}

func (c *collection[T]) remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, k := range c.order {
		if k == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// all returns every value in insertion order.
func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.clone(c.items[id]))
	}
	return out
}
