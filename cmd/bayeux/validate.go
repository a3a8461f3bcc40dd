package main

import (
	"fmt"
	"os"

	"github.com/aretw0/bayeux"
	"github.com/aretw0/bayeux/internal/validator"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the network for consistency",
	Long:  `Loads the network and reports incomplete conditional tables, rows with missing outcomes and rows conditioned on impossible parent values.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runValidate(cmd, args); err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Network is valid! ✅")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	networkPath, _ := cmd.Flags().GetString("network")
	if !cmd.Flags().Changed("network") && len(args) > 0 {
		networkPath = args[0]
	}

	eng, err := bayeux.New(networkPath)
	if err != nil {
		return fmt.Errorf("failed to init engine: %w", err)
	}

	return validator.Validate(eng.Network())
}
