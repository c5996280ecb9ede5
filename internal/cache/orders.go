// Package cache keeps the desk's view of store orders.
//
// The cache is written by two sources: periodic fetches and optimistic
// patches after a successful mutation. Every write takes a sequence number
// from one monotonic counter, and a fetch result is only applied to orders
// that were not patched after the fetch began.
package cache

import (
	"sort"
	"sync"

	"github.com/rookgm/storedesk/internal/models"
)

// FetchToken marks the moment a fetch was started
type FetchToken uint64

// OrderCache is in-memory cache of store orders
type OrderCache struct {
	mu     sync.RWMutex
	seq    uint64
	orders map[string]models.Order
	// patched holds sequence of the last local mutation per order id
	patched map[string]uint64
}

// NewOrderCache creates new OrderCache instance
func NewOrderCache() *OrderCache {
	return &OrderCache{
		orders:  make(map[string]models.Order),
		patched: make(map[string]uint64),
	}
}

// BeginFetch returns token to pass to ApplyFetch once fetch completes
func (c *OrderCache) BeginFetch() FetchToken {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	return FetchToken(c.seq)
}

// ApplyFetch replaces cached orders with fetched ones. Orders patched
// locally after token was issued keep their local copy, and are kept even
// if missing from the fetch. Returns number of discarded stale entries.
func (c *OrderCache) ApplyFetch(token FetchToken, fetched []models.Order) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	stale := 0
	next := make(map[string]models.Order, len(fetched))

	for _, o := range fetched {
		if seq, ok := c.patched[o.ID]; ok && seq > uint64(token) {
			stale++
			continue
		}
		o.Version = c.seq
		next[o.ID] = o
	}

	for id, seq := range c.patched {
		if seq > uint64(token) {
			if o, ok := c.orders[id]; ok {
				next[id] = o
			}
			continue
		}
		// fetch has caught up with this mutation
		delete(c.patched, id)
	}

	c.orders = next
	return stale
}

// Patch applies local mutation of order
func (c *OrderCache) Patch(id string, mutate func(o *models.Order)) (models.Order, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	o, ok := c.orders[id]
	if !ok {
		return models.Order{}, false
	}

	c.seq++
	mutate(&o)
	o.Version = c.seq
	c.orders[id] = o
	c.patched[id] = c.seq

	return o, true
}

// Get returns cached order by id
func (c *OrderCache) Get(id string) (models.Order, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	o, ok := c.orders[id]
	return o, ok
}

// List returns cached orders matching filter sorted by order date, newest first.
// nil filter matches every order.
func (c *OrderCache) List(filter func(o *models.Order) bool) []models.Order {
	c.mu.RLock()
	out := make([]models.Order, 0, len(c.orders))
	for _, o := range c.orders {
		if filter == nil || filter(&o) {
			out = append(out, o)
		}
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].OrderDate.Equal(out[j].OrderDate) {
			return out[i].ID < out[j].ID
		}
		return out[i].OrderDate.After(out[j].OrderDate)
	})
	return out
}

// PendingCount returns number of orders in pending status
func (c *OrderCache) PendingCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	n := 0
	for _, o := range c.orders {
		if o.Status == models.OrderStatusPending {
			n++
		}
	}
	return n
}

// StatusFilter matches orders in status
func StatusFilter(status models.OrderStatus) func(o *models.Order) bool {
	return func(o *models.Order) bool {
		return o.Status == status
	}
}
