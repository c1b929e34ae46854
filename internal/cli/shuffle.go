package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/danieljhkim/eightpuzzle/internal/puzzle"
)

var (
	shuffleSteps int
	shuffleSeed  int64
)

// shuffleReport is the JSON payload for the shuffle command.
type shuffleReport struct {
	Board string `json:"board"`
	Steps int    `json:"steps"`
}

var shuffleCmd = &cobra.Command{
	Use:   "shuffle",
	Short: "Generate a solvable board by a random walk from the goal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if shuffleSteps < 0 {
			return fmt.Errorf("steps must be >= 0, got %d", shuffleSteps)
		}
		seed := shuffleSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rng := rand.New(rand.NewSource(seed))
		board := puzzle.Shuffle(shuffleSteps, rng)
		out := cmd.OutOrStdout()

		if jsonOutput {
			return outputJSON(out, shuffleReport{Board: board.Key(), Steps: shuffleSteps})
		}

		PrintBoard(out, board.String())
		PrintLabelValue(out, "Board", board.Key())
		return nil
	},
}

func init() {
	shuffleCmd.Flags().IntVar(&shuffleSteps, "steps", 30, "Number of random moves from the goal")
	shuffleCmd.Flags().Int64Var(&shuffleSeed, "seed", 0, "Random seed (0 = time-based)")
}
