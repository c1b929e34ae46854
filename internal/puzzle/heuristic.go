package puzzle

import (
	"errors"
	"fmt"
)

// ErrUnknownHeuristic indicates a heuristic name with no registered function.
var ErrUnknownHeuristic = errors.New("unknown heuristic")

// Heuristic estimates the remaining number of moves from a board to the
// goal. All heuristics in this package are admissible: they never
// overestimate the true remaining cost.
type Heuristic func(Board) int

// NamedHeuristic pairs a heuristic with the name it is selected by.
type NamedHeuristic struct {
	Name string
	Fn   Heuristic
}

// Heuristics returns the available heuristics in increasing order of
// informedness: misplaced, manhattan, linear-conflict, zero last as the
// uninformed baseline.
func Heuristics() []NamedHeuristic {
	return []NamedHeuristic{
		{Name: "misplaced", Fn: Misplaced},
		{Name: "manhattan", Fn: Manhattan},
		{Name: "linear-conflict", Fn: LinearConflict},
		{Name: "zero", Fn: Zero},
	}
}

// HeuristicByName looks up a heuristic by its registered name.
func HeuristicByName(name string) (Heuristic, error) {
	for _, h := range Heuristics() {
		if h.Name == name {
			return h.Fn, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownHeuristic, name)
}

// Misplaced counts the non-blank tiles that are not on their goal cell.
func Misplaced(b Board) int {
	count := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.grid[r][c]
			if v != Blank && v != goalValueAt(r, c) {
				count++
			}
		}
	}
	return count
}

// Manhattan sums, over all non-blank tiles, the row plus column distance
// between each tile's current cell and its goal cell.
func Manhattan(b Board) int {
	total := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := b.grid[r][c]
			if v == Blank {
				continue
			}
			gr, gc := goalPosition(v)
			total += abs(r-gr) + abs(c-gc)
		}
	}
	return total
}

// LinearConflict is Manhattan plus 2 for every pair of tiles that share
// their goal row (or column), currently sit in that row (or column), and
// are in reversed relative order. Row and column conflicts are counted
// independently.
func LinearConflict(b Board) int {
	conflicts := 0
	for line := 0; line < Size; line++ {
		for i := 0; i < Size-1; i++ {
			for j := i + 1; j < Size; j++ {
				// Goal order within a row or column is ascending, so a
				// reversed pair is simply a larger value before a smaller one.
				vi, vj := b.grid[line][i], b.grid[line][j]
				if inGoalRow(vi, line) && inGoalRow(vj, line) && vi > vj {
					conflicts += 2
				}
				ui, uj := b.grid[i][line], b.grid[j][line]
				if inGoalColumn(ui, line) && inGoalColumn(uj, line) && ui > uj {
					conflicts += 2
				}
			}
		}
	}
	return Manhattan(b) + conflicts
}

// Zero is the constant-zero heuristic, reducing A* to uniform-cost search.
func Zero(Board) int {
	return 0
}

// goalValueAt returns the tile the goal layout holds at (r, c).
func goalValueAt(r, c int) int {
	if r == Size-1 && c == Size-1 {
		return Blank
	}
	return r*Size + c + 1
}

// goalPosition returns the goal cell of a non-blank tile value.
func goalPosition(v int) (row, col int) {
	return (v - 1) / Size, (v - 1) % Size
}

func inGoalRow(v, row int) bool {
	return v != Blank && (v-1)/Size == row
}

func inGoalColumn(v, col int) bool {
	return v != Blank && (v-1)%Size == col
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
