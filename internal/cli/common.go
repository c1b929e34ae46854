package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/danieljhkim/eightpuzzle/internal/clock"
	"github.com/danieljhkim/eightpuzzle/internal/puzzle"
)

// demoBoardKey is the solvable fixture used when no board is given,
// the same starting layout the tool's experiments were designed around.
const demoBoardKey = "136547208"

// clk is swapped for a FakeClock in tests.
var clk clock.Clock = &clock.RealClock{}

// boardFromArgs parses the optional board argument, falling back to the
// demo fixture.
func boardFromArgs(args []string) (puzzle.Board, error) {
	key := demoBoardKey
	if len(args) > 0 {
		key = args[0]
	}
	board, err := puzzle.Parse(key)
	if err != nil {
		return puzzle.Board{}, fmt.Errorf("failed to parse board: %w", err)
	}
	return board, nil
}

// outputJSON writes a value as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
