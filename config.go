package tlcache

import "time"

// Configuration bounds. Values outside the range are clamped rather
// than rejected; zero values take the default.
const (
	DefaultExpirationDays = 3
	MinExpirationDays     = 1
	MaxExpirationDays     = 30

	DefaultMaxSizeMB = 20
	MinMaxSizeMB     = 5
	MaxMaxSizeMB     = 100

	DefaultSaveDebounce = time.Second
)

// Config holds the operational settings of a cache.
type Config struct {
	// ExpirationDays is the entry time-to-live in days (default 3,
	// clamped to 1-30).
	ExpirationDays int

	// MaxSizeMB caps the accounted size of the cache in megabytes
	// (default 20, clamped to 5-100).
	MaxSizeMB int

	// SaveDebounce is the minimum interval between durable snapshot
	// writes (default 1s).
	SaveDebounce time.Duration
}

// DefaultConfig returns the default cache configuration.
func DefaultConfig() Config {
	return Config{
		ExpirationDays: DefaultExpirationDays,
		MaxSizeMB:      DefaultMaxSizeMB,
		SaveDebounce:   DefaultSaveDebounce,
	}
}

// withDefaults fills zero values and clamps out-of-range ones.
func (c Config) withDefaults() Config {
	if c.ExpirationDays == 0 {
		c.ExpirationDays = DefaultExpirationDays
	}
	if c.ExpirationDays < MinExpirationDays {
		c.ExpirationDays = MinExpirationDays
	}
	if c.ExpirationDays > MaxExpirationDays {
		c.ExpirationDays = MaxExpirationDays
	}

	if c.MaxSizeMB == 0 {
		c.MaxSizeMB = DefaultMaxSizeMB
	}
	if c.MaxSizeMB < MinMaxSizeMB {
		c.MaxSizeMB = MinMaxSizeMB
	}
	if c.MaxSizeMB > MaxMaxSizeMB {
		c.MaxSizeMB = MaxMaxSizeMB
	}

	if c.SaveDebounce <= 0 {
		c.SaveDebounce = DefaultSaveDebounce
	}
	return c
}

// expiration converts ExpirationDays to a duration.
func (c Config) expiration() time.Duration {
	return time.Duration(c.ExpirationDays) * 24 * time.Hour
}

// maxBytes converts MaxSizeMB to a byte cap.
func (c Config) maxBytes() int64 {
	return int64(c.MaxSizeMB) * 1 << 20
}
