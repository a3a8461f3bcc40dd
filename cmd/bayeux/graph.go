package main

import (
	"fmt"
	"os"

	"github.com/aretw0/bayeux"
	"github.com/aretw0/bayeux/internal/presentation/graph"
	"github.com/spf13/cobra"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Export the network structure as a diagram",
	Long:  `Loads the network and outputs a Mermaid diagram (graph TD) of the variables and their dependencies. Optionally highlights a query variable and evidence variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		networkPath, _ := cmd.Flags().GetString("network")
		query, _ := cmd.Flags().GetString("query")
		evidence, _ := cmd.Flags().GetStringArray("evidence")

		engine, err := bayeux.New(networkPath)
		if err != nil {
			fmt.Printf("Error initializing bayeux: %v\n", err)
			os.Exit(1)
		}

		var overlay *graph.Overlay
		if query != "" || len(evidence) > 0 {
			overlay = &graph.Overlay{
				QueryVariable:     query,
				EvidenceVariables: evidence,
			}
		}

		// Generate and print Mermaid graph
		output := graph.GenerateMermaid(engine.Network(), overlay)
		fmt.Print(output)
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)

	graphCmd.Flags().String("query", "", "Variable to highlight as the query")
	graphCmd.Flags().StringArrayP("evidence", "e", nil, "Variables to highlight as evidence (repeatable)")
}
