// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package cache

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

// Entry is a cached value with its expiration instant. Entries are never
// mutated after insertion; refreshing a key replaces the whole entry.
type Entry struct {
	Data      interface{}
	ExpiresAt time.Time
}

// Cache is a thread-safe in-memory key-value store with per-entry TTL.
// Expired entries are dropped lazily on Get and swept by a background
// cleanup loop. The API layer keeps one Cache per Handler and clears it
// whenever the catalog snapshot reloads.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]Entry
	ttl     time.Duration

	// Counters live under their own lock so hot Get paths do not
	// serialize on the entry map's write lock just to bump a stat.
	statsMu     sync.Mutex
	hits        int64
	misses      int64
	evictions   int64
	lastCleanup time.Time
}

// Stats is a point-in-time copy of the cache's performance counters.
// TotalKeys counts live entries, including ones whose TTL has passed but
// which no Get or sweep has removed yet.
type Stats struct {
	Hits        int64
	Misses      int64
	Evictions   int64
	TotalKeys   int64
	LastCleanup time.Time
}

// New creates a cache whose entries expire after ttl. A background
// goroutine sweeps expired entries every 5 minutes; it runs for the life
// of the process, which is fine for the one long-lived cache the API
// handler owns.
//
// Example:
//
//	c := cache.New(time.Minute)
//	c.Set(key, body)
//	if data, ok := c.Get(key); ok {
//	    // serve cached response
//	}
func New(ttl time.Duration) *Cache {
	c := &Cache{
		entries:     make(map[string]Entry),
		ttl:         ttl,
		lastCleanup: time.Now(),
	}

	go c.cleanupLoop()

	return c
}

// Get returns the value stored under key if it exists and has not
// expired. An expired entry is removed on access and reported as a miss
// plus an eviction.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		c.addMisses(1)
		return nil, false
	}

	if time.Now().After(entry.ExpiresAt) {
		c.mu.Lock()
		// A concurrent Set may have refreshed the key between the read
		// and this lock; only evict the entry we actually observed.
		if cur, still := c.entries[key]; still && cur.ExpiresAt.Equal(entry.ExpiresAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		c.addMisses(1)
		c.addEvictions(1)
		return nil, false
	}

	c.addHits(1)
	return entry.Data, true
}

// Set stores value under key with the cache's default TTL. An existing
// entry is replaced and its expiration reset.
func (c *Cache) Set(key string, value interface{}) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores value under key with an explicit TTL, overriding the
// cache default for this entry only.
func (c *Cache) SetWithTTL(key string, value interface{}, ttl time.Duration) {
	entry := Entry{Data: value, ExpiresAt: time.Now().Add(ttl)}

	c.mu.Lock()
	c.entries[key] = entry
	c.mu.Unlock()
}

// Delete removes the entry stored under key. Removing a present key
// counts as an eviction; deleting an absent key is a no-op.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	_, existed := c.entries[key]
	delete(c.entries, key)
	c.mu.Unlock()

	if existed {
		c.addEvictions(1)
	}
}

// Clear drops every entry at once by replacing the backing map. Handlers
// call this after a catalog reload so no response built from the
// superseded snapshot survives.
func (c *Cache) Clear() {
	c.mu.Lock()
	evicted := int64(len(c.entries))
	c.entries = make(map[string]Entry)
	c.mu.Unlock()

	c.addEvictions(evicted)
}

// GetStats returns a copy of the current counters. TotalKeys is read
// from the live entry map, so it reflects sweeps and clears immediately.
func (c *Cache) GetStats() Stats {
	c.mu.RLock()
	total := int64(len(c.entries))
	c.mu.RUnlock()

	c.statsMu.Lock()
	defer c.statsMu.Unlock()

	return Stats{
		Hits:        c.hits,
		Misses:      c.misses,
		Evictions:   c.evictions,
		TotalKeys:   total,
		LastCleanup: c.lastCleanup,
	}
}

// HitRate returns the percentage of Get calls served from cache, or 0
// before any Get has run.
func (c *Cache) HitRate() float64 {
	s := c.GetStats()
	if total := s.Hits + s.Misses; total > 0 {
		return float64(s.Hits) / float64(total) * 100.0
	}
	return 0
}

// cleanupLoop sweeps expired entries on a fixed interval. The interval is
// deliberately coarse: Get already drops expired entries on access, so
// the sweep only bounds memory held by keys nothing reads anymore.
func (c *Cache) cleanupLoop() {
	const sweepEvery = 5 * time.Minute

	ticker := time.NewTicker(sweepEvery)
	defer ticker.Stop()
	for range ticker.C {
		c.cleanup()
	}
}

// cleanup removes every entry whose TTL has passed.
func (c *Cache) cleanup() {
	now := time.Now()

	c.mu.Lock()
	evicted := int64(0)
	for key, entry := range c.entries {
		if now.After(entry.ExpiresAt) {
			delete(c.entries, key)
			evicted++
		}
	}
	c.mu.Unlock()

	c.statsMu.Lock()
	c.evictions += evicted
	c.lastCleanup = now
	c.statsMu.Unlock()
}

func (c *Cache) addHits(n int64) {
	c.statsMu.Lock()
	c.hits += n
	c.statsMu.Unlock()
}

func (c *Cache) addMisses(n int64) {
	c.statsMu.Lock()
	c.misses += n
	c.statsMu.Unlock()
}

func (c *Cache) addEvictions(n int64) {
	c.statsMu.Lock()
	c.evictions += n
	c.statsMu.Unlock()
}

// GenerateKey builds a cache key from a method name and its parameters.
// Parameters are serialized to JSON and hashed so that equivalent filter
// structs map to the same key regardless of who built them. Values that
// cannot be serialized fall back to their fmt representation, which keeps
// the key usable at the cost of a longer string.
func GenerateKey(method string, params interface{}) string {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Sprintf("%s:%v", method, params)
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", method, hash[:16])
}
