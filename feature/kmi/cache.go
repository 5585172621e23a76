package kmi

import (
	"sync"
	"time"

	"kmi-checker/core/symbols"

	"golang.org/x/sync/singleflight"
)

// cachedTable is a parsed table with its build time.
type cachedTable struct {
	table symbols.Table
	built time.Time
	ttl   time.Duration
}

// isExpired returns true if this entry has expired based on its TTL.
func (c *cachedTable) isExpired() bool {
	if c.ttl == 0 {
		return true // No caching
	}
	return time.Since(c.built) > c.ttl
}

// tableCache holds parsed tables keyed by source and parser options.
// Cached tables are shared between checks and must never be modified.
type tableCache struct {
	mu      sync.RWMutex
	entries map[string]*cachedTable
	sf      singleflight.Group
	ttl     time.Duration
}

func newTableCache(ttl time.Duration) *tableCache {
	return &tableCache{
		entries: make(map[string]*cachedTable),
		ttl:     ttl,
	}
}

// enabled reports whether tables are kept at all.
func (c *tableCache) enabled() bool {
	return c.ttl > 0
}

// getOrLoad returns the cached table for key, or loads it.
// Uses singleflight so concurrent checks of one build parse it once.
func (c *tableCache) getOrLoad(key string, load func() (symbols.Table, error)) (symbols.Table, error) {
	if !c.enabled() {
		return load()
	}

	// Fast path: check if entry exists and is fresh
	c.mu.RLock()
	entry, exists := c.entries[key]
	c.mu.RUnlock()

	if exists && !entry.isExpired() {
		return entry.table, nil
	}

	result, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		c.mu.RLock()
		entry, exists := c.entries[key]
		c.mu.RUnlock()

		if exists && !entry.isExpired() {
			return entry.table, nil
		}

		table, err := load()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = &cachedTable{table: table, built: time.Now(), ttl: c.ttl}
		c.mu.Unlock()

		return table, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(symbols.Table), nil
}
