// Package cli wires the puzzle and solver packages into the eightpuzzle
// command-line tool. The core packages stay free of presentation
// concerns; everything printed lives here.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// jsonOutput is the global --json flag.
var jsonOutput bool

// rootCmd is the root command for eightpuzzle.
var rootCmd = &cobra.Command{
	Use:     "eightpuzzle",
	Version: "dev",
	Short:   "8-puzzle solver comparing A* heuristics",
	Long: `eightpuzzle solves 3x3 sliding tile puzzles with A* search.

Boards are given as nine row-major digits with 0 for the blank, e.g.
"136547208" for:

  1 3 6
  5 4 7
  2 _ 8

Four interchangeable heuristics are available: misplaced, manhattan,
linear-conflict, and zero (uniform-cost baseline).`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// SetVersion overrides the version reported by the version command.
func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "solving",
		Title: "Solving:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "cli-tooling",
		Title: "CLI & Tooling:",
	})

	versionCmd := &cobra.Command{
		Use:     "version",
		Short:   "Print the eightpuzzle CLI version",
		Args:    cobra.NoArgs,
		GroupID: "cli-tooling",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	solveCmd.GroupID = "solving"
	compareCmd.GroupID = "solving"
	shuffleCmd.GroupID = "solving"
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(shuffleCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
