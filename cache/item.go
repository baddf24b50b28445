package cache

import "time"

// Item is a cached value and the moment it was created.
type Item[V any] struct {
	Value   V
	Created time.Time
}
