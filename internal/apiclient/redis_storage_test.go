package apiclient

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	"github.com/gracewaylabs/graceway-admin/pkg/config"
)

func newMiniredisStorage(t *testing.T) *RedisStorage {
	t.Helper()
	server := miniredis.RunT(t)
	storage, err := NewRedisStorage(context.Background(), config.RedisConfig{Address: server.Addr()})
	if err != nil {
		t.Fatalf("new redis storage: %v", err)
	}
	t.Cleanup(func() { _ = storage.Close() })
	return storage
}

func TestRedisStorageRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := newMiniredisStorage(t)

	if value, err := storage.Get(ctx, StorageKeyAccessToken); err != nil || value != "" {
		t.Fatalf("empty get = (%q, %v)", value, err)
	}

	if err := storage.Set(ctx, StorageKeyAccessToken, "acc-1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if value, err := storage.Get(ctx, StorageKeyAccessToken); err != nil || value != "acc-1" {
		t.Fatalf("get = (%q, %v)", value, err)
	}

	if err := storage.Delete(ctx, StorageKeyAccessToken, StorageKeyRefreshToken); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if value, _ := storage.Get(ctx, StorageKeyAccessToken); value != "" {
		t.Fatalf("deleted key survived: %q", value)
	}
}

func TestRedisStorageKeysNamespaced(t *testing.T) {
	ctx := context.Background()
	server := miniredis.RunT(t)
	storage, err := NewRedisStorage(ctx, config.RedisConfig{Address: server.Addr()})
	if err != nil {
		t.Fatalf("new redis storage: %v", err)
	}
	defer storage.Close()

	if err := storage.Set(ctx, StorageKeyAccessToken, "acc-1"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !server.Exists("graceway:token:accessToken") {
		t.Fatalf("expected namespaced key, have %v", server.Keys())
	}
}

func TestRedisStorageWithTokenManager(t *testing.T) {
	ctx := context.Background()
	storage := newMiniredisStorage(t)

	manager := NewTokenManager(ctx, storage, nil, nil)
	manager.SetTokens(ctx, "acc-1", "ref-1")

	// A second manager on the same store picks the session up.
	second := NewTokenManager(ctx, storage, nil, nil)
	if second.AccessToken() != "acc-1" || second.RefreshToken() != "ref-1" {
		t.Fatalf("shared session not restored: %+v", second.Pair())
	}
}
