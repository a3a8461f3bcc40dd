package yamlfile_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/bayeux/pkg/adapters/yamlfile"
	"github.com/aretw0/bayeux/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeNetwork(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load(t *testing.T) {
	path := writeNetwork(t, `
name: sprinkler
variables:
  - name: rain
    p: 0.2
  - name: wet
    parents: [rain]
    rows:
      - given: [true]
        p: 0.9
      - given: [false]
        dist: {true: 0.1, false: 0.9}
`)

	net, err := yamlfile.NewLoader(path).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, net.Len())

	rain, err := net.Lookup("rain")
	require.NoError(t, err)
	prior, err := rain.Prior()
	require.NoError(t, err)
	assert.InDelta(t, 0.2, prior[domain.True], 1e-9)

	wet, err := net.Lookup("wet")
	require.NoError(t, err)
	dist, err := wet.Conditional(domain.Row{domain.False})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, dist[domain.True], 1e-9)
}

func TestLoader_StringOutcomes(t *testing.T) {
	path := writeNetwork(t, `
variables:
  - name: weather
    dist: {sun: 0.7, rain: 0.2, snow: 0.1}
  - name: traffic
    parents: [weather]
    rows:
      - given: [sun]
        dist: {light: 0.8, heavy: 0.2}
      - given: [rain]
        dist: {light: 0.4, heavy: 0.6}
      - given: [snow]
        dist: {light: 0.1, heavy: 0.9}
`)

	net, err := yamlfile.NewLoader(path).Load(context.Background())
	require.NoError(t, err)

	weather, err := net.Lookup("weather")
	require.NoError(t, err)
	assert.Len(t, weather.Domain(), 3)

	traffic, err := net.Lookup("traffic")
	require.NoError(t, err)
	dist, err := traffic.Conditional(domain.Row{domain.String("snow")})
	require.NoError(t, err)
	assert.InDelta(t, 0.9, dist[domain.String("heavy")], 1e-9)
}

func TestLoader_NormalizesWeights(t *testing.T) {
	path := writeNetwork(t, `
variables:
  - name: die
    dist: {one: 1, two: 1, three: 1, four: 1, five: 1, six: 1}
`)

	net, err := yamlfile.NewLoader(path).Load(context.Background())
	require.NoError(t, err)

	die, err := net.Lookup("die")
	require.NoError(t, err)
	prior, err := die.Prior()
	require.NoError(t, err)
	assert.InDelta(t, 1.0/6.0, prior[domain.String("three")], 1e-9)
}

func TestLoader_Errors(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"UnknownParent", `
variables:
  - name: wet
    parents: [rain]
    rows:
      - given: [true]
        p: 0.9
`},
		{"NoVariables", `
name: empty
`},
		{"MissingDistribution", `
variables:
  - name: rain
`},
		{"DistAndP", `
variables:
  - name: rain
    p: 0.2
    rows:
      - p: 0.2
`},
		{"NumericOutcome", `
variables:
  - name: count
    rows:
      - dist: {low: 0.5, high: 0.5}
  - name: next
    parents: [count]
    rows:
      - given: [3]
        p: 0.5
`},
		{"MalformedYAML", `variables: [`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeNetwork(t, tc.content)
			_, err := yamlfile.NewLoader(path).Load(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestLoader_UnknownParentSentinel(t *testing.T) {
	path := writeNetwork(t, `
variables:
  - name: wet
    parents: [rain]
    rows:
      - given: [true]
        p: 0.9
`)
	_, err := yamlfile.NewLoader(path).Load(context.Background())
	assert.True(t, errors.Is(err, domain.ErrUnknownVariable), "got %v", err)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := yamlfile.NewLoader(filepath.Join(t.TempDir(), "absent.yaml")).Load(context.Background())
	assert.Error(t, err)
}

func TestLoader_DuplicateRowLastWins(t *testing.T) {
	path := writeNetwork(t, `
variables:
  - name: coin
    rows:
      - p: 0.5
      - p: 0.9
`)

	net, err := yamlfile.NewLoader(path).Load(context.Background())
	require.NoError(t, err)

	coin, err := net.Lookup("coin")
	require.NoError(t, err)
	prior, err := coin.Prior()
	require.NoError(t, err)
	assert.InDelta(t, 0.9, prior[domain.True], 1e-9)
}
