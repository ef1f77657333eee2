package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStore_LoadMissing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "missing.json"))

	_, err := s.Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load on missing file = %v, want ErrNotFound", err)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	s := NewFileStore(path)
	ctx := context.Background()

	want := []byte(`{"version":"1"}`)
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("Load returned %q, want %q", got, want)
	}
}

func TestFileStore_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "snap.json")
	s := NewFileStore(path)

	if err := s.Save(context.Background(), []byte("x")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("snapshot file not created: %v", err)
	}
}

func TestFileStore_SaveReplacesPrevious(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	s := NewFileStore(path)
	ctx := context.Background()

	if err := s.Save(ctx, []byte("first")); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	if err := s.Save(ctx, []byte("second")); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Load returned %q, want %q", got, "second")
	}

	// No temp files should survive a completed save
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the snapshot file, found %d entries", len(entries))
	}
}

func TestFileStore_SaveMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	s := NewFileStore(path)

	if err := s.Save(context.Background(), []byte("x")); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("snapshot mode = %o, want 600", info.Mode().Perm())
	}
}

func TestFileStore_Name(t *testing.T) {
	s := NewFileStore("/tmp/snap.json")
	if s.Name() != "file:/tmp/snap.json" {
		t.Errorf("Name() = %q", s.Name())
	}
}
