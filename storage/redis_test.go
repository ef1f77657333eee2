package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

func TestRedisStore_Load_Hit(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStoreFromClient(db, "test:snapshot", 0)

	mock.ExpectGet("test:snapshot").SetVal(`{"version":"1"}`)

	data, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if string(data) != `{"version":"1"}` {
		t.Errorf("Load returned %q", data)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_Load_Missing(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStoreFromClient(db, "test:snapshot", 0)

	mock.ExpectGet("test:snapshot").RedisNil()

	_, err := store.Load(context.Background())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Load = %v, want ErrNotFound", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_Save(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStoreFromClient(db, "test:snapshot", 0)

	mock.ExpectSet("test:snapshot", []byte("payload"), 0).SetVal("OK")

	if err := store.Save(context.Background(), []byte("payload")); err != nil {
		t.Errorf("Save failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_Save_WithTTL(t *testing.T) {
	db, mock := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStoreFromClient(db, "test:snapshot", time.Hour)

	mock.ExpectSet("test:snapshot", []byte("payload"), time.Hour).SetVal("OK")

	if err := store.Save(context.Background(), []byte("payload")); err != nil {
		t.Errorf("Save failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("Unmet expectations: %v", err)
	}
}

func TestRedisStore_DefaultKey(t *testing.T) {
	db, _ := redismock.NewClientMock()
	defer db.Close()

	store := NewRedisStoreFromClient(db, "", 0)
	if store.Name() != "redis:tlcache:snapshot" {
		t.Errorf("Name() = %q, want default key", store.Name())
	}
}
