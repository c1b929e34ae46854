package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/eightpuzzle/internal/puzzle"
	"github.com/danieljhkim/eightpuzzle/internal/solver"
)

var solveHeuristicName string

// solveReport is the JSON payload for the solve command.
type solveReport struct {
	Board     string        `json:"board"`
	Heuristic string        `json:"heuristic"`
	Moves     []puzzle.Move `json:"moves"`
	Length    int           `json:"length"`
	Explored  int           `json:"explored"`
}

var solveCmd = &cobra.Command{
	Use:   "solve [board]",
	Short: "Solve a board with A*",
	Long: `Solve a board with A* and print the move sequence.

The board is nine row-major digits with 0 for the blank; without an
argument a built-in demo board is solved.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		board, err := boardFromArgs(args)
		if err != nil {
			return err
		}
		h, err := puzzle.HeuristicByName(solveHeuristicName)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		if !board.Solvable() {
			PrintWarning(out, fmt.Sprintf("board %s has odd permutation parity", board.Key()))
			return fmt.Errorf("board %s is not solvable", board.Key())
		}

		result := solver.Solve(board, h)

		if jsonOutput {
			return outputJSON(out, solveReport{
				Board:     board.Key(),
				Heuristic: solveHeuristicName,
				Moves:     result.Moves,
				Length:    len(result.Moves),
				Explored:  result.Explored,
			})
		}

		PrintBoard(out, board.String())
		fmt.Fprintln(out)
		if len(result.Moves) == 0 {
			PrintSuccess(out, "board is already solved")
			return nil
		}
		PrintLabelValue(out, "Heuristic", solveHeuristicName)
		PrintLabelValue(out, "Solution", fmt.Sprintf("%d moves", len(result.Moves)))
		PrintLabelValue(out, "Explored", fmt.Sprintf("%d nodes", result.Explored))
		PrintLabelValue(out, "Moves", joinMoves(result.Moves))
		return nil
	},
}

func joinMoves(moves []puzzle.Move) string {
	names := make([]string, len(moves))
	for i, m := range moves {
		names[i] = m.String()
	}
	return strings.Join(names, ", ")
}

func init() {
	solveCmd.Flags().StringVar(&solveHeuristicName, "heuristic", "manhattan",
		"Heuristic to guide the search (misplaced|manhattan|linear-conflict|zero)")
}
