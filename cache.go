package tlcache

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ZaguanLabs/tlcache/storage"
)

// Cache is a bounded, persistent translation cache. Lookups are
// exact-match by composite key; entries expire after a configured
// window and the oldest entries are evicted when the accounted size
// exceeds the configured cap. All state is guarded by a single mutex so
// the subtract-old/insert-new/evict sequence in Set is atomic with
// respect to concurrent calls.
type Cache struct {
	mu      sync.Mutex
	entries map[string]Entry
	size    int64 // accounted bytes; always equals the sum over entries of entrySize
	stats   metrics

	expiration time.Duration
	maxSize    int64

	clock func() time.Time
	log   logrus.FieldLogger

	store storage.Store
	saver *saver
}

// Option configures a Cache.
type Option func(*Cache)

// WithStore sets the snapshot backend. Without one the cache is purely
// in-memory.
func WithStore(store storage.Store) Option {
	return func(c *Cache) {
		c.store = store
	}
}

// WithLogger sets the logger used for contained persistence failures.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Cache) {
		c.log = log
	}
}

// WithClock sets the time source. Used by tests to control expiration
// and eviction ordering without sleeping.
func WithClock(clock func() time.Time) Option {
	return func(c *Cache) {
		c.clock = clock
	}
}

// WithExpiration overrides the config-derived expiration window.
func WithExpiration(d time.Duration) Option {
	return func(c *Cache) {
		c.expiration = d
	}
}

// WithMaxBytes overrides the config-derived size cap.
func WithMaxBytes(n int64) Option {
	return func(c *Cache) {
		c.maxSize = n
	}
}

// New creates a cache with the given configuration. Construction never
// fails: a missing or malformed snapshot is logged and the cache starts
// empty.
func New(cfg Config, opts ...Option) *Cache {
	cfg = cfg.withDefaults()

	c := &Cache{
		entries:    make(map[string]Entry),
		expiration: cfg.expiration(),
		maxSize:    cfg.maxBytes(),
		clock:      time.Now,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.log == nil {
		log := logrus.New()
		log.SetLevel(logrus.WarnLevel)
		c.log = log
	}

	if c.store != nil {
		c.saver = newSaver(c, c.store, cfg.SaveDebounce)
		swept := c.loadSnapshot()
		c.saver.start()
		if swept {
			c.requestSave()
		}
	}

	return c
}

// Open creates a cache persisted to a snapshot file at path. It is a
// convenience wrapper around New with a file-backed store.
func Open(path string, cfg Config, opts ...Option) *Cache {
	return New(cfg, append([]Option{WithStore(storage.NewFileStore(path))}, opts...)...)
}

// Get retrieves the cached translation for a text and language pair.
// Returns the value and true on a hit, empty string and false on a miss
// or when the entry has expired. Reads never refresh an entry's age.
func (c *Cache) Get(text, from, to string) (string, bool) {
	return c.GetKey(Key(text, from, to))
}

// GetKey retrieves the cached translation for a pre-derived key.
func (c *Cache) GetKey(key string) (string, bool) {
	start := c.clock()

	c.mu.Lock()

	entry, ok := c.entries[key]
	if !ok {
		c.stats.recordMiss()
		c.mu.Unlock()
		return "", false
	}

	if c.expiredAt(entry, start) {
		// Lazy expiration: drop the entry and treat as a miss.
		delete(c.entries, key)
		c.size -= entrySize(key, entry)
		c.stats.recordMiss()
		c.mu.Unlock()
		c.requestSave()
		return "", false
	}

	c.stats.recordHit(c.clock().Sub(start))
	c.mu.Unlock()
	return entry.Value, true
}

// Set stores a translation for a text and language pair, replacing any
// prior entry and resetting its age. The size cap is enforced
// synchronously and a debounced snapshot write is scheduled.
func (c *Cache) Set(text, value, from, to string) {
	c.SetKey(Key(text, from, to), value, from, to)
}

// SetKey stores a translation under a pre-derived key.
func (c *Cache) SetKey(key, value, from, to string) {
	now := c.clock()

	c.mu.Lock()
	if old, ok := c.entries[key]; ok {
		c.size -= entrySize(key, old)
	}
	entry := Entry{Value: value, CreatedAt: now, From: from, To: to}
	c.entries[key] = entry
	c.size += entrySize(key, entry)
	c.evict()
	c.mu.Unlock()

	c.requestSave()
}

// Delete removes an entry. Returns true if it was present.
func (c *Cache) Delete(key string) bool {
	c.mu.Lock()
	entry, ok := c.entries[key]
	if ok {
		delete(c.entries, key)
		c.size -= entrySize(key, entry)
	}
	c.mu.Unlock()

	if ok {
		c.requestSave()
	}
	return ok
}

// Clear removes all entries and resets the accounted size. Hit/miss
// counters are cumulative for the cache's lifetime and survive Clear;
// use ResetStats for a fresh baseline.
func (c *Cache) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]Entry)
	c.size = 0
	c.mu.Unlock()

	c.requestSave()
}

// Len returns the number of live entries, expired-but-unswept entries
// included.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Size returns the accounted byte size of all live entries.
func (c *Cache) Size() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size
}

// Stats returns a snapshot of cumulative cache performance.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:            c.stats.hits,
		Misses:          c.stats.misses,
		HitRate:         c.stats.hitRate(),
		AvgResponseTime: c.stats.avgResponseTime(),
		Size:            c.size,
		Entries:         len(c.entries),
	}
}

// ResetStats zeroes the hit/miss counters and latency totals.
func (c *Cache) ResetStats() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stats.reset()
}

// Prune removes all expired entries and reports how many were dropped.
// Expiration is otherwise lazy; Prune is for callers that want the
// sweep done eagerly, such as the CLI.
func (c *Cache) Prune() int {
	now := c.clock()

	c.mu.Lock()
	removed := c.sweepLocked(now)
	c.mu.Unlock()

	if removed > 0 {
		c.requestSave()
	}
	return removed
}

// Flush synchronously writes the current state to the snapshot backend,
// bypassing the debounce window. It is the shutdown hook for callers
// that want stronger durability than the steady-state fire-and-forget
// writes provide.
func (c *Cache) Flush() error {
	if c.saver == nil {
		return nil
	}
	return c.saver.flush(context.Background())
}

// Close stops the background saver and performs a final best-effort
// flush.
func (c *Cache) Close() error {
	if c.saver == nil {
		return nil
	}
	return c.saver.close()
}

// expiredAt reports whether the entry's age exceeds the expiration
// window at the given instant.
func (c *Cache) expiredAt(e Entry, now time.Time) bool {
	if c.expiration <= 0 {
		return false
	}
	return now.Sub(e.CreatedAt) > c.expiration
}

// sweepLocked removes expired entries. Caller holds the mutex.
func (c *Cache) sweepLocked(now time.Time) int {
	removed := 0
	for key, entry := range c.entries {
		if c.expiredAt(entry, now) {
			delete(c.entries, key)
			c.size -= entrySize(key, entry)
			removed++
		}
	}
	return removed
}

// requestSave schedules a debounced snapshot write. Fire-and-forget:
// the caller never waits for, or learns the outcome of, the write.
func (c *Cache) requestSave() {
	if c.saver != nil {
		c.saver.request()
	}
}
