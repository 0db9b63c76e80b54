package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "policyiter",
	Short: "Exact policy iteration for frozen-lake MDPs",
	Long: "Policyiter extracts the tabular dynamics of a frozen-lake grid world,\n" +
		"solves it with dynamic-programming policy iteration, and validates the\n" +
		"optimal policy with simulated rollout episodes.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
}

func init() {
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(mapsCmd)
	rootCmd.Version = version
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
