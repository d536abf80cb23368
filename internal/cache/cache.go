// Package cache holds fetched data in memory for a bounded time so timeframe
// reselection does not hammer the provider.
package cache

import (
	"sync"
	"time"

	"GoogChfTracker/internal/model"
)

type entry struct {
	dataset  *model.AlignedDataset
	storedAt time.Time
}

// DatasetCache is a TTL cache of aligned datasets keyed by timeframe.
type DatasetCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[model.Timeframe]entry
	now     func() time.Time
}

// NewDatasetCache creates a cache with the given TTL.
func NewDatasetCache(ttl time.Duration) *DatasetCache {
	return &DatasetCache{
		ttl:     ttl,
		entries: make(map[model.Timeframe]entry),
		now:     time.Now,
	}
}

// Get returns the cached dataset for a timeframe if it is still fresh.
func (c *DatasetCache) Get(tf model.Timeframe) (*model.AlignedDataset, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[tf]
	if !ok || c.now().Sub(e.storedAt) > c.ttl {
		delete(c.entries, tf)
		return nil, false
	}
	return e.dataset, true
}

// Put stores a dataset for a timeframe.
func (c *DatasetCache) Put(tf model.Timeframe, ds *model.AlignedDataset) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[tf] = entry{dataset: ds, storedAt: c.now()}
}
