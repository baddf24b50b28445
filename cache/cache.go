package cache

import (
	"sync"
	"time"

	"github.com/xuenqlve/patterns/errors"
)

// Loader builds the value for a key on first use.
type Loader[K comparable, V any] func(key K) (V, error)

// Lazy is a get-or-create cache: a value is built only when first requested
// and reused afterwards. Keys are remembered in creation order.
type Lazy[K comparable, V any] struct {
	items  map[K]Item[V]
	order  []K
	mu     sync.RWMutex
	loader Loader[K, V]
}

// NewLazy creates an empty cache that builds missing values with loader.
func NewLazy[K comparable, V any](loader Loader[K, V]) *Lazy[K, V] {
	return &Lazy[K, V]{
		items:  make(map[K]Item[V]),
		loader: loader,
	}
}

// GetOrLoad returns the cached value for key, building it on a miss. created
// reports whether this call ran the loader. A failed load caches nothing.
func (c *Lazy[K, V]) GetOrLoad(key K) (value V, created bool, err error) {
	c.mu.RLock()
	item, found := c.items[key]
	c.mu.RUnlock()
	if found {
		return item.Value, false, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// another caller may have loaded it between the two locks
	if item, found = c.items[key]; found {
		return item.Value, false, nil
	}
	if c.loader == nil {
		return value, false, errors.Errorf("no loader for missing key %v", key)
	}
	value, err = c.loader(key)
	if err != nil {
		return value, false, errors.Trace(err)
	}
	c.items[key] = Item[V]{Value: value, Created: time.Now()}
	c.order = append(c.order, key)
	return value, true, nil
}

// Get returns a cached value without loading.
func (c *Lazy[K, V]) Get(key K) (V, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, found := c.items[key]
	return item.Value, found
}

// Contains reports whether key has been loaded.
func (c *Lazy[K, V]) Contains(key K) bool {
	_, found := c.Get(key)
	return found
}

// Delete drops key; the next GetOrLoad rebuilds it.
func (c *Lazy[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, found := c.items[key]; !found {
		return
	}
	delete(c.items, key)
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i:i], c.order[i+1:]...)
			break
		}
	}
}

// Keys returns the loaded keys in creation order.
func (c *Lazy[K, V]) Keys() []K {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]K(nil), c.order...)
}

func (c *Lazy[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
