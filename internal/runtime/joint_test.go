package runtime

import (
	"errors"
	"math"
	"testing"

	"github.com/aretw0/bayeux/pkg/domain"
)

func TestBuildJoint_SumsToOne(t *testing.T) {
	joint, err := buildJoint(rainWetNetwork(t))
	if err != nil {
		t.Fatalf("buildJoint failed: %v", err)
	}
	if joint.Len() != 4 {
		t.Errorf("rows = %d, want 4 (2x2 domains)", joint.Len())
	}
	if got := joint.Sum(); math.Abs(got-1) > domain.ProbabilityTolerance {
		t.Errorf("joint sum = %v, want 1", got)
	}
}

func TestBuildJoint_RowProbabilities(t *testing.T) {
	joint, err := buildJoint(rainWetNetwork(t))
	if err != nil {
		t.Fatalf("buildJoint failed: %v", err)
	}

	// Index every row by its key and check the four products.
	want := map[string]float64{
		domain.Row{domain.True, domain.True}.Key():   0.2 * 0.9,
		domain.Row{domain.True, domain.False}.Key():  0.2 * 0.1,
		domain.Row{domain.False, domain.True}.Key():  0.8 * 0.1,
		domain.Row{domain.False, domain.False}.Key(): 0.8 * 0.9,
	}
	for i := 0; i < joint.Len(); i++ {
		key := joint.Row(i).Key()
		expected, ok := want[key]
		if !ok {
			t.Fatalf("unexpected row %s", joint.Row(i))
		}
		if math.Abs(joint.Prob(i)-expected) > domain.ProbabilityTolerance {
			t.Errorf("row %s: P = %v, want %v", joint.Row(i), joint.Prob(i), expected)
		}
		delete(want, key)
	}
	if len(want) != 0 {
		t.Errorf("%d expected rows missing from joint", len(want))
	}
}

func TestBuildJoint_ThreeVariableChain(t *testing.T) {
	// sprinkler-style chain: cloudy -> rain -> wet.
	net := domain.NewNetwork()

	cloudyT := domain.NewConditionalTable(0)
	cloudyT.Put(nil, domain.NewBinary(0.5))
	net.Add("cloudy", nil, cloudyT)

	rainT := domain.NewConditionalTable(1)
	rainT.Put(domain.Row{domain.True}, domain.NewBinary(0.8))
	rainT.Put(domain.Row{domain.False}, domain.NewBinary(0.2))
	net.Add("rain", []string{"cloudy"}, rainT)

	wetT := domain.NewConditionalTable(1)
	wetT.Put(domain.Row{domain.True}, domain.NewBinary(0.9))
	wetT.Put(domain.Row{domain.False}, domain.NewBinary(0.0))
	net.Add("wet", []string{"rain"}, wetT)

	joint, err := buildJoint(net)
	if err != nil {
		t.Fatalf("buildJoint failed: %v", err)
	}
	if joint.Len() != 8 {
		t.Errorf("rows = %d, want 8", joint.Len())
	}
	if got := joint.Sum(); math.Abs(got-1) > domain.ProbabilityTolerance {
		t.Errorf("joint sum = %v, want 1", got)
	}
}

func TestBuildJoint_IncompleteRowDistribution(t *testing.T) {
	// weather's winter row never mentions "sun", yet "sun" is in the domain
	// via the summer row. Enumeration must fail, not assume zero.
	net := domain.NewNetwork()

	season := domain.NewConditionalTable(0)
	season.Put(nil, domain.Distribution{domain.String("winter"): 0.5, domain.String("summer"): 0.5})
	net.Add("season", nil, season)

	weather := domain.NewConditionalTable(1)
	weather.Put(domain.Row{domain.String("winter")}, domain.Distribution{domain.String("snow"): 1})
	weather.Put(domain.Row{domain.String("summer")}, domain.Distribution{domain.String("sun"): 1})
	net.Add("weather", []string{"season"}, weather)

	_, err := buildJoint(net)
	if !errors.Is(err, domain.ErrMissingConditionalRow) {
		t.Errorf("expected ErrMissingConditionalRow, got %v", err)
	}
}

func TestBuildJoint_MissingConditionalRow(t *testing.T) {
	net := domain.NewNetwork()

	prior := domain.NewConditionalTable(0)
	prior.Put(nil, domain.NewBinary(0.5))
	net.Add("rain", nil, prior)

	// Only the rain=true row is supplied; rain=false enumeration must fail.
	cpt := domain.NewConditionalTable(1)
	cpt.Put(domain.Row{domain.True}, domain.NewBinary(0.9))
	net.Add("wet", []string{"rain"}, cpt)

	_, err := buildJoint(net)
	if !errors.Is(err, domain.ErrMissingConditionalRow) {
		t.Errorf("expected ErrMissingConditionalRow, got %v", err)
	}
}

func TestBuildJoint_EmptyNetwork(t *testing.T) {
	if _, err := buildJoint(domain.NewNetwork()); err == nil {
		t.Error("expected error for empty network")
	}
}
