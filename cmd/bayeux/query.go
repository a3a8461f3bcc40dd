package main

import (
	"fmt"
	"os"

	"github.com/aretw0/bayeux/internal/cli"
	"github.com/spf13/cobra"
)

// queryCmd represents the query command
var queryCmd = &cobra.Command{
	Use:   "query <variable>",
	Short: "Compute a posterior distribution",
	Long: `Computes the posterior distribution of a variable given evidence.

Evidence is passed as repeated --evidence flags in variable=value form.
The values "true" and "false" are treated as booleans; anything else is
a string outcome.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		networkPath, _ := cmd.Flags().GetString("network")
		evidence, _ := cmd.Flags().GetStringArray("evidence")
		jsonMode, _ := cmd.Flags().GetBool("json")
		debug, _ := cmd.Flags().GetBool("debug")
		redisURL, _ := cmd.Flags().GetString("redis-url")
		samples, _ := cmd.Flags().GetInt("samples")
		seed, _ := cmd.Flags().GetInt64("seed")

		err := cli.ExecuteQuery(cli.QueryOptions{
			NetworkPath: networkPath,
			Query:       args[0],
			Evidence:    evidence,
			JSON:        jsonMode,
			Debug:       debug,
			RedisURL:    redisURL,
			Samples:     samples,
			Seed:        seed,
		})
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringArrayP("evidence", "e", nil, "Observed evidence as variable=value (repeatable)")
	queryCmd.Flags().Bool("json", false, "Output the posterior as JSON")
	queryCmd.Flags().Bool("debug", false, "Enable debug logging")
	queryCmd.Flags().String("redis-url", os.Getenv("REDIS_URL"), "Redis address for posterior caching (defaults to $REDIS_URL)")
	queryCmd.Flags().Int("samples", 0, "Draw N samples from the posterior after printing it")
	queryCmd.Flags().Int64("seed", 1, "Random seed for --samples")
}
