package tlcache

import (
	"errors"
	"strings"
	"testing"
)

func TestSnapshotError(t *testing.T) {
	cause := errors.New("disk full")
	err := &SnapshotError{Op: "save", Store: "file:/tmp/x", Cause: cause}

	if !strings.Contains(err.Error(), "save") || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("SnapshotError should unwrap to its cause")
	}
}

func TestSnapshotError_NoStore(t *testing.T) {
	err := &SnapshotError{Op: "decode", Cause: errors.New("bad json")}
	if strings.Contains(err.Error(), "()") {
		t.Errorf("Error() = %q should omit empty store", err.Error())
	}
}

func TestImportError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &ImportError{Message: "decoding JSON", Cause: cause}

	if !strings.Contains(err.Error(), "decoding JSON") {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, cause) {
		t.Error("ImportError should unwrap to its cause")
	}

	bare := &ImportError{Message: "reading input"}
	if !strings.Contains(bare.Error(), "reading input") {
		t.Errorf("Error() = %q", bare.Error())
	}
}
