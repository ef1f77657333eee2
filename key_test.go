package tlcache

import "testing"

func TestKey(t *testing.T) {
	if got := Key("Hello", "en", "fr"); got != "Hello|en|fr" {
		t.Errorf("Key = %q, want %q", got, "Hello|en|fr")
	}
}

func TestKeyWithVariant(t *testing.T) {
	got := KeyWithVariant("Hello", "title", "en", "fr")
	if got != "Hello|title|en|fr" {
		t.Errorf("KeyWithVariant = %q, want %q", got, "Hello|title|en|fr")
	}
	if got == Key("Hello", "en", "fr") {
		t.Error("variant key must not collide with the plain key")
	}
}

func TestKey_ExactMatch(t *testing.T) {
	// No normalization of any kind.
	if Key("hello", "en", "fr") == Key("Hello", "en", "fr") {
		t.Error("keys must be case-sensitive")
	}
	if Key(" hello", "en", "fr") == Key("hello", "en", "fr") {
		t.Error("keys must not be trimmed")
	}
}
