package ristretto

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	t.Parallel()

	validLevels := []string{"small", "medium", "large", "very-large"}
	for _, level := range validLevels {
		t.Run(level, func(t *testing.T) {
			cache, err := New[any](level)
			if err != nil {
				t.Errorf("New(%q) returned an unexpected error: %v", level, err)
			}
			if cache == nil {
				t.Errorf("New(%q) returned a nil cache, but no error", level)
			}
		})
	}

	invalidLevels := []string{"", "invalid-level", " medium"}
	for _, level := range invalidLevels {
		t.Run(level, func(t *testing.T) {
			cache, err := New[any](level)
			if err == nil {
				t.Errorf("New(%q) was expected to return an error, but did not", level)
			}
			if cache != nil {
				t.Errorf("New(%q) was expected to return a non-nil cache, but did not", level)
			}
		})
	}
}

func TestCacheSetAndGet(t *testing.T) {
	t.Parallel()
	cache, err := New[string]("small")
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	key, value := "test-key", "test-value"
	cache.Set(key, value, 1)
	// Ristretto processes writes asynchronously, so a small delay is needed
	// for the value to become available.
	time.Sleep(10 * time.Millisecond)

	retrieved, found := cache.Get(key)
	if !found {
		t.Errorf("expected to find key %q, but it was not found", key)
	}
	if retrieved != value {
		t.Errorf("expected value %q, but got %q", value, retrieved)
	}

	retrieved, found = cache.Get("non-existent-key")
	if found {
		t.Error("expected not to find key, but it was found")
	}
	if retrieved != "" {
		t.Errorf("expected zero value \"\", but got %q", retrieved)
	}
}

func TestCacheSetWithTTL(t *testing.T) {
	t.Parallel()
	cache, err := New[int]("small")
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	key, value := "ttl-key", 123
	ttl := 50 * time.Millisecond

	cache.SetWithTTL(key, value, 1, ttl)
	time.Sleep(10 * time.Millisecond) // Wait for write to process

	retrieved, found := cache.Get(key)
	if !found {
		t.Fatal("key not found before TTL expiration")
	}
	if retrieved != value {
		t.Fatalf("expected value %d, but got %d", value, retrieved)
	}

	time.Sleep(ttl)

	if _, found = cache.Get(key); found {
		t.Error("key was found after TTL expiration, but should have been evicted")
	}
}

func TestCacheDelete(t *testing.T) {
	t.Parallel()
	cache, err := New[string]("small")
	if err != nil {
		t.Fatalf("failed to create cache: %v", err)
	}

	cache.Set("doomed", "value", 1)
	time.Sleep(10 * time.Millisecond)

	cache.Delete("doomed")
	if _, found := cache.Get("doomed"); found {
		t.Error("expected key to be gone after delete")
	}
}
