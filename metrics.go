package tlcache

import "time"

// Stats is a point-in-time snapshot of cache performance, cumulative
// since construction.
type Stats struct {
	Hits   uint64
	Misses uint64

	// HitRate is the percentage of lookups served from the cache,
	// 0-100. Zero when nothing has been observed yet.
	HitRate float64

	// AvgResponseTime is the mean lookup latency measured on the hit
	// path only. Misses are not timed; this asymmetry is intentional.
	AvgResponseTime time.Duration

	// Size is the accounted byte size of all live entries.
	Size int64

	// Entries is the live entry count, expired-but-unswept included.
	Entries int
}

// metrics tracks hit/miss counters and hit latency. It is mutated only
// under the cache mutex.
type metrics struct {
	hits                 uint64
	misses               uint64
	hitResponseTimeTotal time.Duration
	hitCount             uint64
}

func (m *metrics) recordHit(elapsed time.Duration) {
	m.hits++
	m.hitResponseTimeTotal += elapsed
	m.hitCount++
}

func (m *metrics) recordMiss() {
	m.misses++
}

func (m *metrics) hitRate() float64 {
	total := m.hits + m.misses
	if total == 0 {
		return 0
	}
	return float64(m.hits) / float64(total) * 100
}

func (m *metrics) avgResponseTime() time.Duration {
	if m.hitCount == 0 {
		return 0
	}
	return m.hitResponseTimeTotal / time.Duration(m.hitCount)
}

func (m *metrics) reset() {
	*m = metrics{}
}
