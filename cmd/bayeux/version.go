package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/bayeux"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of bayeux",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("bayeux version %s\n", strings.TrimSpace(bayeux.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
