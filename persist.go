package tlcache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/ZaguanLabs/tlcache/storage"
)

// saveTimeout bounds a single snapshot write.
const saveTimeout = 10 * time.Second

// saver performs debounced, fire-and-forget snapshot writes in the
// background. Mutations mark it dirty; at most one durable write
// happens per debounce window, and requests landing inside the window
// are coalesced into the next one. Failed writes are logged and
// dropped; there is no retry queue.
type saver struct {
	cache *Cache
	store storage.Store
	deb   *debouncer

	mu    sync.Mutex
	dirty bool

	wake     chan struct{}
	done     chan struct{}
	finished chan struct{}
	stop     sync.Once
}

func newSaver(c *Cache, store storage.Store, debounce time.Duration) *saver {
	return &saver{
		cache:    c,
		store:    store,
		deb:      newDebouncer(debounce, c.clock),
		wake:     make(chan struct{}, 1),
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}
}

func (s *saver) start() {
	go s.run()
}

// request marks the state dirty and nudges the background writer. It
// never blocks.
func (s *saver) request() {
	s.mu.Lock()
	s.dirty = true
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *saver) run() {
	defer close(s.finished)

	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		// Hold off until the debounce window reopens; requests that
		// arrive meanwhile fold into this write.
		if wait := s.deb.Remaining(); wait > 0 {
			select {
			case <-s.done:
				return
			case <-time.After(wait):
			}
		}

		if !s.takeDirty() {
			continue
		}
		s.deb.Force()

		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		s.write(ctx)
		cancel()
	}
}

// flush writes the current state immediately, bypassing the debounce
// window.
func (s *saver) flush(ctx context.Context) error {
	s.takeDirty()
	s.deb.Force()

	data, err := s.cache.encode()
	if err != nil {
		return &SnapshotError{Op: "save", Store: s.store.Name(), Cause: err}
	}
	if err := s.store.Save(ctx, data); err != nil {
		return &SnapshotError{Op: "save", Store: s.store.Name(), Cause: err}
	}
	return nil
}

// close stops the background writer and performs a final flush.
func (s *saver) close() error {
	s.stop.Do(func() {
		close(s.done)
	})
	<-s.finished

	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	return s.flush(ctx)
}

func (s *saver) takeDirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirty := s.dirty
	s.dirty = false
	return dirty
}

// write serializes the full live entry set and saves it. Failures are
// contained and logged; the cache keeps operating in memory.
func (s *saver) write(ctx context.Context) {
	data, err := s.cache.encode()
	if err != nil {
		s.cache.log.WithError(err).WithField("store", s.store.Name()).
			Warn("encoding cache snapshot failed")
		return
	}
	if err := s.store.Save(ctx, data); err != nil {
		s.cache.log.WithError(err).WithField("store", s.store.Name()).
			Warn("writing cache snapshot failed")
	}
}

// loadSnapshot populates the cache from the snapshot backend, then
// performs the one-time expiration sweep. A missing or malformed
// snapshot is contained: the cache starts empty. Returns whether the
// sweep removed anything, in which case the caller schedules a save.
func (c *Cache) loadSnapshot() bool {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()

	data, err := c.store.Load(ctx)
	if errors.Is(err, storage.ErrNotFound) {
		return false
	}
	if err != nil {
		c.log.WithError(err).WithField("store", c.store.Name()).
			Warn("loading cache snapshot failed; starting empty")
		return false
	}

	entries, err := decodeSnapshot(data)
	if err != nil {
		c.log.WithError(err).WithField("store", c.store.Name()).
			Warn("cache snapshot is malformed; starting empty")
		return false
	}

	now := c.clock()

	c.mu.Lock()
	c.entries = entries
	c.size = 0
	for key, entry := range entries {
		c.size += entrySize(key, entry)
	}
	removed := c.sweepLocked(now)
	c.mu.Unlock()

	return removed > 0
}

// encode serializes the live entry set under the mutex.
func (c *Cache) encode() ([]byte, error) {
	c.mu.Lock()
	entries := make(map[string]Entry, len(c.entries))
	for key, entry := range c.entries {
		entries[key] = entry
	}
	c.mu.Unlock()

	return encodeSnapshot(entries, c.clock())
}
