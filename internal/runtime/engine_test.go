package runtime

import (
	"context"
	"errors"
	"math"
	"sync"
	"testing"

	"github.com/aretw0/bayeux/pkg/domain"
)

// rainWetNetwork builds the canonical two-variable test network:
// P(rain)=0.2 and wet conditioned on rain (0.9 / 0.1).
func rainWetNetwork(t *testing.T) *domain.Network {
	t.Helper()
	net := domain.NewNetwork()

	prior := domain.NewConditionalTable(0)
	if err := prior.Put(nil, domain.NewBinary(0.2)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := net.Add("rain", nil, prior); err != nil {
		t.Fatalf("Add rain failed: %v", err)
	}

	cpt := domain.NewConditionalTable(1)
	if err := cpt.Put(domain.Row{domain.True}, domain.NewBinary(0.9)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := cpt.Put(domain.Row{domain.False}, domain.NewBinary(0.1)); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if _, err := net.Add("wet", []string{"rain"}, cpt); err != nil {
		t.Fatalf("Add wet failed: %v", err)
	}
	return net
}

func TestEngine_Ask_Posterior(t *testing.T) {
	engine := NewEngine(rainWetNetwork(t))
	ctx := context.Background()

	posterior, err := engine.Ask(ctx, "rain", domain.Evidence{"wet": domain.True})
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	// Bayes by hand: 0.2*0.9 / (0.2*0.9 + 0.8*0.1).
	wantYes := 0.18 / 0.26
	if got := posterior[domain.True]; math.Abs(got-wantYes) > 1e-6 {
		t.Errorf("P(rain|wet) = %v, want %v", got, wantYes)
	}
	if got := posterior[domain.False]; math.Abs(got-(1-wantYes)) > 1e-6 {
		t.Errorf("P(!rain|wet) = %v, want %v", got, 1-wantYes)
	}
}

func TestEngine_Ask_PriorIdentity(t *testing.T) {
	// With no evidence, a root variable's posterior is its own prior.
	engine := NewEngine(rainWetNetwork(t))

	posterior, err := engine.Ask(context.Background(), "rain", nil)
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if math.Abs(posterior[domain.True]-0.2) > 1e-9 {
		t.Errorf("P(rain) = %v, want 0.2", posterior[domain.True])
	}
	if err := posterior.Validate(); err != nil {
		t.Errorf("posterior invalid: %v", err)
	}
}

func TestEngine_Ask_Idempotent(t *testing.T) {
	engine := NewEngine(rainWetNetwork(t))
	ctx := context.Background()
	ev := domain.Evidence{"wet": domain.True}

	first, err := engine.Ask(ctx, "rain", ev)
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	second, err := engine.Ask(ctx, "rain", ev)
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	// Bit-identical, not just tolerance-equal: same network, same joint.
	for o, p := range first {
		if second[o] != p {
			t.Errorf("outcome %s: %v != %v across identical calls", o, p, second[o])
		}
	}
}

func TestEngine_Ask_ContradictoryEvidence(t *testing.T) {
	engine := NewEngine(rainWetNetwork(t))

	// "wet" can only be true or false; string evidence matches no row.
	_, err := engine.Ask(context.Background(), "rain", domain.Evidence{"wet": domain.String("soaked")})
	if !errors.Is(err, domain.ErrZeroTotalProbability) {
		t.Errorf("expected ErrZeroTotalProbability, got %v", err)
	}
}

func TestEngine_Ask_ImpossibleCombination(t *testing.T) {
	// A deterministic chain where the evidence combination has zero joint mass.
	net := domain.NewNetwork()
	prior := domain.NewConditionalTable(0)
	prior.Put(nil, domain.NewBinary(0.5))
	net.Add("a", nil, prior)

	// b is a copy of a: P(b=a) = 1.
	cpt := domain.NewConditionalTable(1)
	cpt.Put(domain.Row{domain.True}, domain.NewBinary(1))
	cpt.Put(domain.Row{domain.False}, domain.NewBinary(0))
	net.Add("b", []string{"a"}, cpt)

	engine := NewEngine(net)
	_, err := engine.Ask(context.Background(), "a",
		domain.Evidence{"a": domain.True, "b": domain.False})
	if !errors.Is(err, domain.ErrZeroTotalProbability) {
		t.Errorf("expected ErrZeroTotalProbability, got %v", err)
	}
}

func TestEngine_Ask_UnknownNames(t *testing.T) {
	engine := NewEngine(rainWetNetwork(t))
	ctx := context.Background()

	t.Run("Query", func(t *testing.T) {
		_, err := engine.Ask(ctx, "snow", nil)
		if !errors.Is(err, domain.ErrUnknownVariable) {
			t.Errorf("expected ErrUnknownVariable, got %v", err)
		}
	})

	t.Run("Evidence", func(t *testing.T) {
		_, err := engine.Ask(ctx, "rain", domain.Evidence{"snow": domain.True})
		if !errors.Is(err, domain.ErrUnknownVariable) {
			t.Errorf("expected ErrUnknownVariable, got %v", err)
		}
	})
}

func TestEngine_Ask_EvidenceOnQueryVariable(t *testing.T) {
	engine := NewEngine(rainWetNetwork(t))

	posterior, err := engine.Ask(context.Background(), "rain", domain.Evidence{"rain": domain.True})
	if err != nil {
		t.Fatalf("Ask failed: %v", err)
	}
	if posterior[domain.True] != 1 {
		t.Errorf("P(rain|rain) = %v, want 1", posterior[domain.True])
	}
}

func TestEngine_Ask_CancelledContext(t *testing.T) {
	engine := NewEngine(rainWetNetwork(t))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := engine.Ask(ctx, "rain", nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestEngine_Ask_Concurrent(t *testing.T) {
	// First access from many goroutines must build the joint exactly once
	// and every caller must see the same posterior.
	engine := NewEngine(rainWetNetwork(t))
	ctx := context.Background()

	const workers = 16
	results := make([]domain.Distribution, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = engine.Ask(ctx, "rain", domain.Evidence{"wet": domain.True})
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		if errs[i] != nil {
			t.Fatalf("worker %d failed: %v", i, errs[i])
		}
		if !results[i].Equal(results[0], 0) {
			t.Errorf("worker %d saw a different posterior", i)
		}
	}
}

func TestCacheKey(t *testing.T) {
	net := rainWetNetwork(t)

	a := CacheKey(net, "rain", domain.Evidence{"wet": domain.True})
	b := CacheKey(net, "rain", domain.Evidence{"wet": domain.True})
	if a != b {
		t.Error("identical queries produced different cache keys")
	}

	c := CacheKey(net, "rain", domain.Evidence{"wet": domain.False})
	if a == c {
		t.Error("different evidence produced the same cache key")
	}

	d := CacheKey(net, "wet", domain.Evidence{"wet": domain.True})
	if a == d {
		t.Error("different queries produced the same cache key")
	}
}
