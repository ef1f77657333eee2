package tlcache

import (
	"context"
	"strings"
)

// LookupFunc computes a translation for text that is not cached. It is
// the seam where a remote translation client plugs in; the cache itself
// never performs network I/O.
type LookupFunc func(ctx context.Context, text, from, to string) (string, error)

// Resolver answers translation lookups from the cache, computing and
// caching on miss.
type Resolver struct {
	cache  *Cache
	lookup LookupFunc
}

// NewResolver creates a resolver over the given cache and lookup.
func NewResolver(cache *Cache, lookup LookupFunc) *Resolver {
	return &Resolver{
		cache:  cache,
		lookup: lookup,
	}
}

// Resolve returns the translation for text. Requests where source and
// target share a base language return the text unchanged without
// touching the cache or the lookup. On a miss the lookup runs, its
// result is cached, and lookup errors propagate to the caller; cache
// operations themselves cannot fail.
func (r *Resolver) Resolve(ctx context.Context, text, from, to string) (string, error) {
	if sameBaseLang(from, to) {
		return text, nil
	}

	if cached, ok := r.cache.Get(text, from, to); ok {
		return cached, nil
	}

	result, err := r.lookup(ctx, text, from, to)
	if err != nil {
		return "", err
	}

	r.cache.Set(text, result, from, to)
	return result, nil
}

// Cache returns the underlying cache for inspection.
func (r *Resolver) Cache() *Cache {
	return r.cache
}

// sameBaseLang reports whether two language tags share a base language
// (e.g., "en_US" and "en").
func sameBaseLang(a, b string) bool {
	return baseLang(a) == baseLang(b)
}

// baseLang extracts the base language code (e.g., "en" from "en_US").
func baseLang(lang string) string {
	parts := strings.Split(lang, "_")
	if len(parts) > 0 {
		return strings.ToLower(parts[0])
	}
	return strings.ToLower(lang)
}
