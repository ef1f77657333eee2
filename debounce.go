package tlcache

import (
	"sync"
	"time"
)

// debouncer suppresses repeated actions within a minimum interval of
// the last one that fired.
type debouncer struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

func newDebouncer(interval time.Duration, now func() time.Time) *debouncer {
	if now == nil {
		now = time.Now
	}
	return &debouncer{
		interval: interval,
		now:      now,
	}
}

// TryAcquire reports whether the action may fire now, recording the
// firing time when it may. A request inside the window returns false.
func (d *debouncer) TryAcquire() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	now := d.now()
	if !d.last.IsZero() && now.Sub(d.last) < d.interval {
		return false
	}
	d.last = now
	return true
}

// Force records a firing time unconditionally. Used by explicit
// flushes, which bypass the window.
func (d *debouncer) Force() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.last = d.now()
}

// Remaining returns how long until the window reopens, zero if it is
// already open.
func (d *debouncer) Remaining() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.last.IsZero() {
		return 0
	}
	rem := d.interval - d.now().Sub(d.last)
	if rem < 0 {
		return 0
	}
	return rem
}
