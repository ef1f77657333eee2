package tlcache

import "fmt"

// SnapshotError indicates a persistence failure: a snapshot that could
// not be loaded, decoded, or written. Snapshot failures are contained;
// they are logged and never surface from Get, Set, or Clear.
type SnapshotError struct {
	Op    string // "load", "decode", or "save"
	Store string // backend name, for logging
	Cause error
}

func (e *SnapshotError) Error() string {
	if e.Store != "" {
		return fmt.Sprintf("snapshot %s (%s): %v", e.Op, e.Store, e.Cause)
	}
	return fmt.Sprintf("snapshot %s: %v", e.Op, e.Cause)
}

func (e *SnapshotError) Unwrap() error {
	return e.Cause
}

// ImportError indicates that an exported cache file could not be read.
type ImportError struct {
	Message string
	Cause   error
}

func (e *ImportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("import error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("import error: %s", e.Message)
}

func (e *ImportError) Unwrap() error {
	return e.Cause
}
