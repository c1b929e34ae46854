package cli

import (
	"fmt"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/danieljhkim/eightpuzzle/internal/puzzle"
	"github.com/danieljhkim/eightpuzzle/internal/solver"
)

var compareProfile bool

// compareEntry is one heuristic's row in the comparison report.
type compareEntry struct {
	Heuristic string `json:"heuristic"`
	Length    int    `json:"length"`
	Explored  int    `json:"explored"`
	Duration  string `json:"duration"`
}

// compareReport is the JSON payload for the compare command.
type compareReport struct {
	Board         string         `json:"board"`
	OptimalLength int            `json:"optimalLength"`
	Runs          []compareEntry `json:"runs"`
}

var compareCmd = &cobra.Command{
	Use:   "compare [board]",
	Short: "Run every heuristic on one board and compare efficiency",
	Long: `Run an independent A* search per heuristic on the same board and
report solution length, explored-node count, and runtime for each.

Every search gets a fresh frontier, cost map, and closed set, so runs do
not influence one another. The optimal length from breadth-first search
is printed as the reference.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := boardFromArgs(args)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if !board.Solvable() {
			PrintWarning(out, fmt.Sprintf("board %s has odd permutation parity", board.Key()))
			return fmt.Errorf("board %s is not solvable", board.Key())
		}

		if compareProfile {
			defer profile.Start(profile.ProfilePath(".")).Stop()
		}

		optimal, _ := solver.ShortestPathLength(board)

		runs := make([]compareEntry, 0, len(puzzle.Heuristics()))
		for _, h := range puzzle.Heuristics() {
			started := clk.Now()
			result := solver.Solve(board, h.Fn)
			elapsed := clk.Since(started)
			runs = append(runs, compareEntry{
				Heuristic: h.Name,
				Length:    len(result.Moves),
				Explored:  result.Explored,
				Duration:  elapsed.String(),
			})
		}

		if jsonOutput {
			return outputJSON(out, compareReport{
				Board:         board.Key(),
				OptimalLength: optimal,
				Runs:          runs,
			})
		}

		PrintBoard(out, board.String())
		PrintSection(out, "A* heuristic comparison")
		PrintLabelValue(out, "Optimal length (BFS)", fmt.Sprintf("%d moves", optimal))
		fmt.Fprintln(out)
		for _, run := range runs {
			fmt.Fprintf(out, "  %-16s %3d moves  %7d explored  %s\n",
				run.Heuristic, run.Length, run.Explored, run.Duration)
		}
		return nil
	},
}

func init() {
	compareCmd.Flags().BoolVar(&compareProfile, "profile", false,
		"Write a CPU profile of the comparison runs to the current directory")
}
