package validator_test

import (
	"testing"

	"github.com/aretw0/bayeux/internal/validator"
	"github.com/aretw0/bayeux/pkg/dsl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_WellFormed(t *testing.T) {
	net, err := dsl.New().
		Add("rain", nil, dsl.Prior(dsl.Binary(0.2))).
		Add("wet", []string{"rain"}, dsl.CPT{
			{Given: dsl.Given(true), Dist: dsl.Binary(0.9)},
			{Given: dsl.Given(false), Dist: dsl.Binary(0.1)},
		}).
		Build()
	require.NoError(t, err)

	assert.NoError(t, validator.Validate(net))
}

func TestValidate_MissingParentCombination(t *testing.T) {
	// wet only covers rain=true; rain=false is reachable but unsupplied.
	net, err := dsl.New().
		Add("rain", nil, dsl.Prior(dsl.Binary(0.2))).
		Add("wet", []string{"rain"}, dsl.CPT{
			{Given: dsl.Given(true), Dist: dsl.Binary(0.9)},
		}).
		Build()
	require.NoError(t, err)

	err = validator.Validate(net)
	require.Error(t, err)
	issues := validator.Issues(err)
	require.Len(t, issues, 1)
	assert.Equal(t, "wet", issues[0].Variable)
}

func TestValidate_PartialRowDistribution(t *testing.T) {
	// The winter row omits "sun", which the summer row puts in the domain.
	net, err := dsl.New().
		Add("season", nil, dsl.Prior(dsl.Dist{"winter": 0.5, "summer": 0.5})).
		Add("weather", []string{"season"}, dsl.CPT{
			{Given: dsl.Given("winter"), Dist: dsl.Dist{"snow": 1}},
			{Given: dsl.Given("summer"), Dist: dsl.Dist{"sun": 0.9, "snow": 0.1}},
		}).
		Build()
	require.NoError(t, err)

	err = validator.Validate(net)
	require.Error(t, err)
	issues := validator.Issues(err)
	require.Len(t, issues, 1)
	assert.Equal(t, "weather", issues[0].Variable)
	assert.Contains(t, issues[0].Reason, "covers 1 of 2")
}

func TestValidate_UnreachableRow(t *testing.T) {
	// A row keyed by an outcome the parent can never take.
	net, err := dsl.New().
		Add("rain", nil, dsl.Prior(dsl.Binary(0.2))).
		Add("wet", []string{"rain"}, dsl.CPT{
			{Given: dsl.Given(true), Dist: dsl.Binary(0.9)},
			{Given: dsl.Given(false), Dist: dsl.Binary(0.1)},
			{Given: dsl.Given("drizzle"), Dist: dsl.Binary(0.5)},
		}).
		Build()
	require.NoError(t, err)

	err = validator.Validate(net)
	require.Error(t, err)
	issues := validator.Issues(err)
	require.Len(t, issues, 1)
	assert.Contains(t, issues[0].Reason, "outside the parent's domain")
}

func TestValidate_MultipleIssuesAggregated(t *testing.T) {
	net, err := dsl.New().
		Add("a", nil, dsl.Prior(dsl.Binary(0.5))).
		Add("b", nil, dsl.Prior(dsl.Binary(0.5))).
		Add("c", []string{"a", "b"}, dsl.CPT{
			{Given: dsl.Given(true, true), Dist: dsl.Binary(0.9)},
			// three of four combinations missing
		}).
		Build()
	require.NoError(t, err)

	err = validator.Validate(net)
	require.Error(t, err)
	assert.Len(t, validator.Issues(err), 3)
	assert.Contains(t, err.Error(), "3 validation issues")
}
