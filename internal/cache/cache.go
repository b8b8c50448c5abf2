package cache

import (
	"os"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jonboulle/clockwork"

	"view-scaffold/internal/logger"
	"view-scaffold/internal/model"
)

// Defaults applied when the config leaves cache tuning unset
const (
	DefaultMaxEntries    = 256
	DefaultTTL           = 10 * time.Minute
	DefaultSweepInterval = time.Minute
)

// Entry is the memoized extraction result for one fully qualified type
// name. It is valid only while the backing file's modification time has
// not advanced past ModTime and StoredAt+TTL has not passed.
type Entry struct {
	TypeName   string
	SourceFile string
	Properties []model.Property
	ModTime    time.Time // Source mod time observed at caching
	StoredAt   time.Time // Cache-insertion instant (injected clock)
}

// Cache memoizes extraction results per type name, bounded in size,
// invalidated by file modification time and by age. The underlying LRU
// store is internally synchronized; file stats are issued outside any
// critical section. Safe for concurrent use.
type Cache struct {
	store    *lru.Cache[string, *Entry]
	ttl      time.Duration
	clock    clockwork.Clock
	done     chan struct{}
	stopOnce sync.Once
}

// New builds a cache. maxEntries, ttl, and sweepInterval fall back to
// the package defaults when non-positive. A nil clock means wall time;
// tests pass clockwork.NewFakeClock so expiry is deterministic. The
// background sweep starts immediately and runs until Close.
func New(maxEntries int, ttl, sweepInterval time.Duration, clock clockwork.Clock) (*Cache, error) {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if sweepInterval <= 0 {
		sweepInterval = DefaultSweepInterval
	}
	if clock == nil {
		clock = clockwork.NewRealClock()
	}

	store, err := lru.New[string, *Entry](maxEntries)
	if err != nil {
		return nil, err
	}

	c := &Cache{
		store: store,
		ttl:   ttl,
		clock: clock,
		done:  make(chan struct{}),
	}
	go c.sweepLoop(sweepInterval)
	return c, nil
}

// Get returns the cached property list for typeName, re-validating the
// entry against the file at filePath. A newer modification time, an
// expired age, or a stat failure evicts the entry and reports a miss.
// The returned slice is the caller's own copy.
func (c *Cache) Get(typeName, filePath string) ([]model.Property, bool) {
	entry, ok := c.store.Get(typeName)
	if !ok {
		return nil, false
	}

	if c.clock.Since(entry.StoredAt) > c.ttl {
		logger.Debug("[CACHE] Entry for %s expired, evicting", typeName)
		c.store.Remove(typeName)
		return nil, false
	}

	info, err := os.Stat(filePath)
	if err != nil {
		// Unreadable source invalidates the entry; never surfaced
		logger.Debug("[CACHE] Stat failed for %s (%v), evicting %s", filePath, err, typeName)
		c.store.Remove(typeName)
		return nil, false
	}
	if info.ModTime().After(entry.ModTime) {
		logger.Debug("[CACHE] %s changed on disk, evicting %s", filePath, typeName)
		c.store.Remove(typeName)
		return nil, false
	}

	return model.Clone(entry.Properties), true
}

// Set stores a fresh extraction result stamped with the file's current
// modification time. A stat failure means "do not cache" and is
// swallowed. At capacity the LRU store evicts an existing entry.
func (c *Cache) Set(typeName, filePath string, props []model.Property) {
	info, err := os.Stat(filePath)
	if err != nil {
		logger.Debug("[CACHE] Stat failed for %s (%v), not caching %s", filePath, err, typeName)
		return
	}

	c.store.Add(typeName, &Entry{
		TypeName:   typeName,
		SourceFile: filePath,
		Properties: model.Clone(props),
		ModTime:    info.ModTime(),
		StoredAt:   c.clock.Now(),
	})
}

// Delete removes the entry for typeName, if any
func (c *Cache) Delete(typeName string) {
	c.store.Remove(typeName)
}

// Clear removes everything
func (c *Cache) Clear() {
	c.store.Purge()
}

// Len returns the current number of entries, expired or not
func (c *Cache) Len() int {
	return c.store.Len()
}

// Close stops the background sweep. Safe to call more than once.
func (c *Cache) Close() {
	c.stopOnce.Do(func() {
		close(c.done)
	})
}

// sweepLoop periodically removes expired entries independent of lookups
// so long-idle entries do not pin memory until queried again
func (c *Cache) sweepLoop(interval time.Duration) {
	ticker := c.clock.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			c.sweep()
		case <-c.done:
			return
		}
	}
}

// sweep removes expired entries one at a time; each Peek/Remove holds
// the store's internal lock only briefly, so lookups are never blocked
// for longer than a single removal
func (c *Cache) sweep() {
	for _, key := range c.store.Keys() {
		entry, ok := c.store.Peek(key)
		if ok && c.clock.Since(entry.StoredAt) > c.ttl {
			logger.Debug("[CACHE] Sweep removing expired entry %s", key)
			c.store.Remove(key)
		}
	}
}
