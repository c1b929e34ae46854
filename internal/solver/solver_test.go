package solver

import (
	"math/rand"
	"testing"

	"github.com/danieljhkim/eightpuzzle/internal/puzzle"
)

// reachableStates is the size of one permutation-parity class of the
// 8-puzzle state space: 9!/2.
const reachableStates = 181440

func demoBoard(t *testing.T) puzzle.Board {
	t.Helper()
	b, err := puzzle.New([3][3]int{{1, 3, 6}, {5, 4, 7}, {2, 0, 8}})
	if err != nil {
		t.Fatalf("demo board: %v", err)
	}
	return b
}

// replay applies moves in order and returns the final board.
func replay(b puzzle.Board, moves []puzzle.Move) puzzle.Board {
	for _, m := range moves {
		b = b.Apply(m)
	}
	return b
}

func TestSolve_DemoBoard(t *testing.T) {
	start := demoBoard(t)
	optimal, ok := ShortestPathLength(start)
	if !ok {
		t.Fatal("demo board unexpectedly unreachable")
	}

	for _, h := range puzzle.Heuristics() {
		t.Run(h.Name, func(t *testing.T) {
			result := Solve(start, h.Fn)
			if !result.Found {
				t.Fatal("Solve() did not find a solution")
			}
			if len(result.Moves) == 0 {
				t.Fatal("Solve() returned an empty move sequence")
			}
			if len(result.Moves) != optimal {
				t.Errorf("solution length = %d, want optimal %d", len(result.Moves), optimal)
			}
			if got := replay(start, result.Moves); !got.IsGoal() {
				t.Errorf("replaying moves ended at %s, want goal", got.Key())
			}
			if result.Explored <= 0 {
				t.Errorf("Explored = %d, want > 0", result.Explored)
			}
		})
	}
}

func TestSolve_ExploredOrdering(t *testing.T) {
	// More informed heuristics should expand fewer nodes on this fixture.
	// Not a law of A*, but the expected ordering the comparison exists
	// to demonstrate.
	start := demoBoard(t)

	zero := Solve(start, puzzle.Zero).Explored
	misplaced := Solve(start, puzzle.Misplaced).Explored
	manhattan := Solve(start, puzzle.Manhattan).Explored
	linear := Solve(start, puzzle.LinearConflict).Explored

	if !(zero >= misplaced && misplaced >= manhattan && manhattan >= linear) {
		t.Errorf("explored counts not ordered: zero=%d misplaced=%d manhattan=%d linear-conflict=%d",
			zero, misplaced, manhattan, linear)
	}
}

func TestSolve_AlreadySolved(t *testing.T) {
	result := Solve(puzzle.Goal(), puzzle.Manhattan)
	if !result.Found {
		t.Error("Found = false for the goal board")
	}
	if len(result.Moves) != 0 {
		t.Errorf("Moves = %v, want none", result.Moves)
	}
	if result.Explored != 0 {
		t.Errorf("Explored = %d, want 0", result.Explored)
	}
}

func TestSolve_Unsolvable(t *testing.T) {
	if testing.Short() {
		t.Skip("exhausts the full reachable state space")
	}
	// Two adjacent tiles of the goal swapped: odd permutation parity.
	start, err := puzzle.New([3][3]int{{2, 1, 3}, {4, 5, 6}, {7, 8, 0}})
	if err != nil {
		t.Fatalf("unsolvable board: %v", err)
	}
	if start.Solvable() {
		t.Fatal("fixture should be unsolvable")
	}

	result := Solve(start, puzzle.Manhattan)
	if result.Found {
		t.Error("Found = true for an unsolvable board")
	}
	if len(result.Moves) != 0 {
		t.Errorf("Moves = %v, want none", result.Moves)
	}
	if result.Explored != reachableStates {
		t.Errorf("Explored = %d, want the full parity class %d", result.Explored, reachableStates)
	}
}

func TestSolve_ZeroMatchesBFS(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 5; i++ {
		start := puzzle.Shuffle(14, rng)
		want, ok := ShortestPathLength(start)
		if !ok {
			t.Fatalf("shuffled board %s unreachable", start.Key())
		}
		result := Solve(start, puzzle.Zero)
		if !result.Found {
			t.Fatalf("Solve(%s, zero) found no solution", start.Key())
		}
		if len(result.Moves) != want {
			t.Errorf("Solve(%s, zero) length = %d, want BFS length %d", start.Key(), len(result.Moves), want)
		}
	}
}

func TestSolve_Deterministic(t *testing.T) {
	start := demoBoard(t)
	first := Solve(start, puzzle.Manhattan)
	second := Solve(start, puzzle.Manhattan)

	if first.Explored != second.Explored {
		t.Errorf("Explored differed across runs: %d vs %d", first.Explored, second.Explored)
	}
	if len(first.Moves) != len(second.Moves) {
		t.Fatalf("move counts differed: %d vs %d", len(first.Moves), len(second.Moves))
	}
	for i := range first.Moves {
		if first.Moves[i] != second.Moves[i] {
			t.Errorf("move %d differed: %v vs %v", i, first.Moves[i], second.Moves[i])
		}
	}
}

func TestShortestPathLength(t *testing.T) {
	if got, ok := ShortestPathLength(puzzle.Goal()); !ok || got != 0 {
		t.Errorf("ShortestPathLength(goal) = %d, %v, want 0, true", got, ok)
	}

	oneAway := puzzle.Goal().Apply(puzzle.MoveUp)
	if got, ok := ShortestPathLength(oneAway); !ok || got != 1 {
		t.Errorf("ShortestPathLength(one move away) = %d, %v, want 1, true", got, ok)
	}
}

func TestShortestPathLength_Unreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("exhausts the full reachable state space")
	}
	start, err := puzzle.New([3][3]int{{2, 1, 3}, {4, 5, 6}, {7, 8, 0}})
	if err != nil {
		t.Fatalf("unsolvable board: %v", err)
	}
	if _, ok := ShortestPathLength(start); ok {
		t.Error("ShortestPathLength reported an unsolvable board as reachable")
	}
}
