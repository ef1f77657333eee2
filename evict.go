package tlcache

import "sort"

// evict removes the oldest entries until the accounted size fits within
// the cap. Ordering is purely by creation time: reads never refresh an
// entry's age, so a frequently re-read old entry is evicted exactly as
// readily as a never-read one. Ties break by key so the outcome is
// deterministic. Caller holds the mutex.
func (c *Cache) evict() {
	if c.maxSize <= 0 || c.size <= c.maxSize {
		return
	}

	type keyed struct {
		key   string
		entry Entry
	}

	aged := make([]keyed, 0, len(c.entries))
	for key, entry := range c.entries {
		aged = append(aged, keyed{key, entry})
	}

	sort.Slice(aged, func(i, j int) bool {
		if aged[i].entry.CreatedAt.Equal(aged[j].entry.CreatedAt) {
			return aged[i].key < aged[j].key
		}
		return aged[i].entry.CreatedAt.Before(aged[j].entry.CreatedAt)
	})

	for _, item := range aged {
		if c.size <= c.maxSize {
			break
		}
		delete(c.entries, item.key)
		c.size -= entrySize(item.key, item.entry)
	}
}
