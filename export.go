package tlcache

import (
	"encoding/json"
	"io"
	"os"
	"time"
)

// snapshotVersion identifies the persisted layout.
const snapshotVersion = "1"

// snapshotEntry is the serialized form of one cache entry.
type snapshotEntry struct {
	Result    string `json:"result"`
	Timestamp int64  `json:"timestamp"` // creation time, epoch milliseconds
	From      string `json:"from"`
	To        string `json:"to"`
}

// snapshotEnvelope is the persisted snapshot layout: a versioned
// mapping from cache key to serialized entry.
type snapshotEnvelope struct {
	Version string                   `json:"version"`
	SavedAt string                   `json:"saved_at,omitempty"`
	Entries map[string]snapshotEntry `json:"entries"`
}

func buildEnvelope(entries map[string]Entry, savedAt time.Time) snapshotEnvelope {
	env := snapshotEnvelope{
		Version: snapshotVersion,
		SavedAt: savedAt.UTC().Format(time.RFC3339),
		Entries: make(map[string]snapshotEntry, len(entries)),
	}
	for key, entry := range entries {
		env.Entries[key] = snapshotEntry{
			Result:    entry.Value,
			Timestamp: entry.CreatedAt.UnixMilli(),
			From:      entry.From,
			To:        entry.To,
		}
	}
	return env
}

func encodeSnapshot(entries map[string]Entry, savedAt time.Time) ([]byte, error) {
	return json.Marshal(buildEnvelope(entries, savedAt))
}

func decodeSnapshot(data []byte) (map[string]Entry, error) {
	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	entries := make(map[string]Entry, len(env.Entries))
	for key, se := range env.Entries {
		entries[key] = Entry{
			Value:     se.Result,
			CreatedAt: time.UnixMilli(se.Timestamp),
			From:      se.From,
			To:        se.To,
		}
	}
	return entries, nil
}

// Export writes the live entry set to w as indented JSON in the
// snapshot layout.
func (c *Cache) Export(w io.Writer) error {
	c.mu.Lock()
	entries := make(map[string]Entry, len(c.entries))
	for key, entry := range c.entries {
		entries[key] = entry
	}
	c.mu.Unlock()

	env := buildEnvelope(entries, c.clock())

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(env)
}

// ExportToFile exports the cache to a file.
// The path is provided by the caller and is intentionally user-controlled.
func (c *Cache) ExportToFile(path string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return err
	}
	defer f.Close()

	return c.Export(f)
}

// ImportResult contains statistics about an import operation.
type ImportResult struct {
	Version  string
	Imported int
	Skipped  int
}

// Import reads entries in the snapshot layout from r and merges them
// into the cache, preserving their original creation times. Entries
// that are already past the expiration window are skipped. The size cap
// is enforced after the merge and a snapshot write is scheduled.
func (c *Cache) Import(r io.Reader) (*ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &ImportError{Message: "reading input", Cause: err}
	}

	var env snapshotEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, &ImportError{Message: "decoding JSON", Cause: err}
	}

	result := &ImportResult{Version: env.Version}
	now := c.clock()

	c.mu.Lock()
	for key, se := range env.Entries {
		entry := Entry{
			Value:     se.Result,
			CreatedAt: time.UnixMilli(se.Timestamp),
			From:      se.From,
			To:        se.To,
		}
		if c.expiredAt(entry, now) {
			result.Skipped++
			continue
		}
		if old, ok := c.entries[key]; ok {
			c.size -= entrySize(key, old)
		}
		c.entries[key] = entry
		c.size += entrySize(key, entry)
		result.Imported++
	}
	c.evict()
	c.mu.Unlock()

	if result.Imported > 0 {
		c.requestSave()
	}
	return result, nil
}

// ImportFromFile imports cache entries from a file.
// The path is provided by the caller and is intentionally user-controlled.
func (c *Cache) ImportFromFile(path string) (*ImportResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, &ImportError{Message: "opening file", Cause: err}
	}
	defer f.Close()

	return c.Import(f)
}
