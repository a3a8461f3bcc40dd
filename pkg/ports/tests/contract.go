package tests

import (
	"context"
	"testing"

	"github.com/aretw0/bayeux/pkg/domain"
	"github.com/aretw0/bayeux/pkg/ports"
)

// PosteriorCacheContractTest is a reusable suite that verifies an adapter
// complies with ports.PosteriorCache.
func PosteriorCacheContractTest(t *testing.T, cache ports.PosteriorCache) {
	t.Helper()
	ctx := context.Background()

	dist := domain.Distribution{
		domain.True:  0.75,
		domain.False: 0.25,
	}

	t.Run("Get_Miss", func(t *testing.T) {
		_, ok, err := cache.Get(ctx, "absent")
		if err != nil {
			t.Fatalf("unexpected error on miss: %v", err)
		}
		if ok {
			t.Error("expected miss for absent key")
		}
	})

	t.Run("Put_Get", func(t *testing.T) {
		if err := cache.Put(ctx, "k1", dist); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, ok, err := cache.Get(ctx, "k1")
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if !ok {
			t.Fatal("expected hit for k1")
		}
		if !got.Equal(dist, domain.ProbabilityTolerance) {
			t.Errorf("got %v, want %v", got, dist)
		}
	})

	t.Run("Put_Replaces", func(t *testing.T) {
		replacement := domain.Distribution{domain.True: 0.5, domain.False: 0.5}
		if err := cache.Put(ctx, "k1", replacement); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, ok, _ := cache.Get(ctx, "k1")
		if !ok || !got.Equal(replacement, domain.ProbabilityTolerance) {
			t.Errorf("got %v, want %v", got, replacement)
		}
	})

	t.Run("Isolation", func(t *testing.T) {
		// Mutating a retrieved distribution must not corrupt the cache.
		if err := cache.Put(ctx, "k2", dist); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		got, _, _ := cache.Get(ctx, "k2")
		got[domain.True] = 0.0
		again, _, _ := cache.Get(ctx, "k2")
		if !again.Equal(dist, domain.ProbabilityTolerance) {
			t.Error("cache entry mutated through a retrieved copy")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := cache.Put(ctx, "k3", dist); err != nil {
			t.Fatalf("Put failed: %v", err)
		}
		if err := cache.Delete(ctx, "k3"); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		_, ok, err := cache.Get(ctx, "k3")
		if err != nil {
			t.Fatalf("Get after Delete failed: %v", err)
		}
		if ok {
			t.Error("expected miss after Delete")
		}
	})

	t.Run("Delete_Absent", func(t *testing.T) {
		if err := cache.Delete(ctx, "never-existed"); err != nil {
			t.Errorf("Delete of absent key failed: %v", err)
		}
	})
}
