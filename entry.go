package tlcache

import "time"

// Entry holds one cached translation with its creation time and the
// language pair it was produced for. Entries are created or wholesale
// replaced, never mutated in place; CreatedAt resets on every replace.
type Entry struct {
	Value     string
	CreatedAt time.Time
	From      string
	To        string
}

// entryOverhead covers the timestamp field in the size estimate.
const entryOverhead = 8

// entrySize estimates the cost of one entry in bytes: two bytes per
// character across key, value, and language tags, plus a fixed overhead.
// The estimate is deliberately approximate; it exists to give the size
// cap a deterministic, reproducible basis, not to match the true
// in-memory footprint.
func entrySize(key string, e Entry) int64 {
	return 2*int64(len(key)+len(e.Value)+len(e.From)+len(e.To)) + entryOverhead
}
