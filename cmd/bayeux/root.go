package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bayeux",
	Short: "Bayeux is an exact inference engine for Bayesian networks",
	Long:  `Bayeux answers posterior queries over discrete Bayesian networks defined in simple YAML files, using full joint enumeration.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringP("network", "n", "network.yaml", "Path to the network definition file")
}
