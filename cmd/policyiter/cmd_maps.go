package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CodeStranger-Fred/policyiter/frozenlake"
)

var mapsCmd = &cobra.Command{
	Use:   "maps",
	Short: "List the built-in lake maps",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		for _, name := range frozenlake.Builtins() {
			desc, _ := frozenlake.BuiltinDesc(name)
			fmt.Fprintf(out, "%s (%dx%d):\n", name, len(desc), len(desc[0]))
			for _, row := range desc {
				fmt.Fprintf(out, "  %s\n", row)
			}
		}
		return nil
	},
}
