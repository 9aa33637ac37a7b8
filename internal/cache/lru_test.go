package cache

import (
	"testing"
	"time"
)

func TestLRUStoreRoundTrip(t *testing.T) {
	store := NewLRUStore(10)
	store.Set("k", []byte("value"), time.Minute)

	got, ok := store.Get("k")
	if !ok {
		t.Fatal("Expected a cache hit")
	}
	if string(got) != "value" {
		t.Errorf("Expected %q, got %q", "value", got)
	}
}

func TestLRUStoreExpiry(t *testing.T) {
	store := NewLRUStore(10)
	store.Set("k", []byte("value"), 30*time.Millisecond)

	if _, ok := store.Get("k"); !ok {
		t.Fatal("Expected a hit inside the TTL window")
	}

	time.Sleep(50 * time.Millisecond)

	if _, ok := store.Get("k"); ok {
		t.Fatal("Expected a miss after the TTL elapsed")
	}
}

func TestLRUStoreDeleteAndPurge(t *testing.T) {
	store := NewLRUStore(10)
	store.Set("a", []byte("1"), time.Minute)
	store.Set("b", []byte("2"), time.Minute)

	store.Delete("a")
	if _, ok := store.Get("a"); ok {
		t.Error("Expected a miss after Delete")
	}
	if _, ok := store.Get("b"); !ok {
		t.Error("Delete must not touch other keys")
	}

	store.Purge()
	if _, ok := store.Get("b"); ok {
		t.Error("Expected a miss after Purge")
	}
}

func TestLRUStoreMissingKey(t *testing.T) {
	store := NewLRUStore(10)
	if _, ok := store.Get("nope"); ok {
		t.Error("Expected a miss for an unknown key")
	}
}
