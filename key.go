package tlcache

// Separator joins the components of a cache key. It is reserved and not
// expected to occur in legitimate source text or language tags.
const Separator = "|"

// Key derives the cache key for a text and language pair.
// Keys are exact-match only: no normalization, fuzzy matching, or
// case-folding is applied to any component.
func Key(text, from, to string) string {
	return text + Separator + from + Separator + to
}

// KeyWithVariant derives a cache key carrying an extra discriminator
// (e.g., a formatting label), producing an independent cache slot for
// the same source text and language pair.
func KeyWithVariant(text, variant, from, to string) string {
	return text + Separator + variant + Separator + from + Separator + to
}
