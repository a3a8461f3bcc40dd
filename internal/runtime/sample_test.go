package runtime

import (
	"math"
	"math/rand"
	"testing"

	"github.com/aretw0/bayeux/pkg/domain"
)

func TestSample_Deterministic(t *testing.T) {
	dist := domain.Distribution{domain.String("a"): 0.3, domain.String("b"): 0.7}

	a := rand.New(rand.NewSource(42))
	b := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		oa, err := Sample(dist, a)
		if err != nil {
			t.Fatalf("Sample failed: %v", err)
		}
		ob, _ := Sample(dist, b)
		if oa != ob {
			t.Fatalf("draw %d diverged under identical seeds", i)
		}
	}
}

func TestSample_Frequencies(t *testing.T) {
	dist := domain.Distribution{domain.True: 0.2, domain.False: 0.8}
	rng := rand.New(rand.NewSource(1))

	const n = 20000
	hits := 0
	for i := 0; i < n; i++ {
		o, err := Sample(dist, rng)
		if err != nil {
			t.Fatalf("Sample failed: %v", err)
		}
		if o == domain.True {
			hits++
		}
	}
	got := float64(hits) / n
	if math.Abs(got-0.2) > 0.02 {
		t.Errorf("empirical P(true) = %v, want ~0.2", got)
	}
}

func TestSample_SingleOutcome(t *testing.T) {
	dist := domain.Distribution{domain.String("only"): 1}
	rng := rand.New(rand.NewSource(7))
	o, err := Sample(dist, rng)
	if err != nil {
		t.Fatalf("Sample failed: %v", err)
	}
	if o != domain.String("only") {
		t.Errorf("got %s, want only", o)
	}
}

func TestSample_Unnormalized(t *testing.T) {
	dist := domain.Distribution{domain.True: 3, domain.False: 3}
	rng := rand.New(rand.NewSource(7))
	if _, err := Sample(dist, rng); err == nil {
		t.Error("expected error for unnormalized distribution")
	}
}
