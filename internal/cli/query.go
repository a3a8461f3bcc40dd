package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"os"

	"github.com/aretw0/bayeux"
	"github.com/aretw0/bayeux/internal/presentation/tui"
	"github.com/aretw0/bayeux/pkg/adapters/redis"
	"github.com/aretw0/bayeux/pkg/domain"
)

// QueryOptions contains all the configuration for the query command.
type QueryOptions struct {
	NetworkPath string
	Query       string
	Evidence    []string // raw variable=value pairs
	JSON        bool
	Debug       bool
	RedisURL    string
	Samples     int
	Seed        int64
}

// ExecuteQuery handles the 'query' command logic: load the network, run the
// posterior query and render the result.
func ExecuteQuery(opts QueryOptions) error {
	logger := createLogger(opts.Debug)

	evidence, err := ParseEvidence(opts.Evidence)
	if err != nil {
		return err
	}

	engineOpts := []bayeux.Option{}
	if opts.Debug {
		engineOpts = append(engineOpts, bayeux.WithLogger(logger))
	}
	if opts.RedisURL != "" {
		engineOpts = append(engineOpts, bayeux.WithCache(redis.New(opts.RedisURL, "", 0)))
	}

	eng, err := bayeux.New(opts.NetworkPath, engineOpts...)
	if err != nil {
		return fmt.Errorf("error initializing bayeux: %w", err)
	}

	ctx := context.Background()
	posterior, err := eng.Ask(ctx, opts.Query, evidence)
	if err != nil {
		return err
	}

	if opts.JSON {
		return printJSON(opts.Query, posterior)
	}

	report, err := tui.RenderPosterior(opts.Query, evidence, posterior)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	fmt.Print(report)

	if opts.Samples > 0 {
		return printSamples(eng, posterior, opts)
	}
	return nil
}

func printJSON(query string, posterior domain.Distribution) error {
	out := map[string]any{
		"query":     query,
		"posterior": displayMap(posterior),
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func printSamples(eng *bayeux.Engine, posterior domain.Distribution, opts QueryOptions) error {
	rng := rand.New(rand.NewSource(opts.Seed))
	counts := make(map[string]int)
	for i := 0; i < opts.Samples; i++ {
		outcome, err := eng.Sample(posterior, rng)
		if err != nil {
			return err
		}
		counts[outcome.String()]++
	}
	fmt.Printf("\n%d draws:\n", opts.Samples)
	for _, o := range posterior.Outcomes() {
		fmt.Printf("  %s: %d\n", o, counts[o.String()])
	}
	return nil
}

func displayMap(dist domain.Distribution) map[string]float64 {
	out := make(map[string]float64, len(dist))
	for _, o := range dist.Outcomes() {
		out[o.String()] = dist[o]
	}
	return out
}
