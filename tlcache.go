// Package tlcache provides a bounded, persistent cache for translation
// results.
//
// Entries are keyed by source text and language pair, expire after a
// configured window, and the oldest entries are evicted when the cache
// exceeds a configured byte size. State is persisted through a snapshot
// backend with debounced, fire-and-forget writes, so lookups stay free
// of I/O on the hot path.
//
// Basic usage:
//
//	import (
//	    "context"
//	    "github.com/ZaguanLabs/tlcache"
//	)
//
//	func main() {
//	    cache := tlcache.Open("tlcache.json", tlcache.DefaultConfig())
//	    defer cache.Close()
//
//	    if v, ok := cache.Get("Hello", "en", "fr"); ok {
//	        fmt.Println(v) // Bonjour
//	        return
//	    }
//	    cache.Set("Hello", "Bonjour", "en", "fr")
//	}
//
// Callers that compute translations on a miss can wrap the cache in a
// Resolver, which handles the get/compute/set cycle and skips lookups
// when source and target share a base language.
package tlcache
