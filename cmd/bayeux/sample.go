package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"

	"github.com/aretw0/bayeux"
	"github.com/aretw0/bayeux/internal/cli"
	"github.com/spf13/cobra"
)

// sampleCmd represents the sample command
var sampleCmd = &cobra.Command{
	Use:   "sample <variable>",
	Short: "Draw samples from a posterior distribution",
	Long:  `Computes the posterior of a variable given evidence, then draws N outcomes from it and prints the counts.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		networkPath, _ := cmd.Flags().GetString("network")
		evidencePairs, _ := cmd.Flags().GetStringArray("evidence")
		n, _ := cmd.Flags().GetInt("n")
		seed, _ := cmd.Flags().GetInt64("seed")

		if err := runSample(networkPath, args[0], evidencePairs, n, seed); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().StringArrayP("evidence", "e", nil, "Observed evidence as variable=value (repeatable)")
	sampleCmd.Flags().Int("n", 100, "Number of samples to draw")
	sampleCmd.Flags().Int64("seed", 1, "Random seed")
}

func runSample(networkPath, query string, evidencePairs []string, n int, seed int64) error {
	evidence, err := cli.ParseEvidence(evidencePairs)
	if err != nil {
		return err
	}

	eng, err := bayeux.New(networkPath)
	if err != nil {
		return fmt.Errorf("error initializing bayeux: %w", err)
	}

	posterior, err := eng.Ask(context.Background(), query, evidence)
	if err != nil {
		return err
	}

	rng := rand.New(rand.NewSource(seed))
	counts := make(map[string]int)
	for i := 0; i < n; i++ {
		outcome, err := eng.Sample(posterior, rng)
		if err != nil {
			return err
		}
		counts[outcome.String()]++
	}

	fmt.Printf("%d draws from P(%s):\n", n, query)
	for _, o := range posterior.Outcomes() {
		fmt.Printf("  %s: %d\n", o, counts[o.String()])
	}
	return nil
}
