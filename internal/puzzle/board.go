// Package puzzle provides the 8-puzzle board representation, move rules,
// and the heuristic functions used to guide the solver.
//
// A Board is an immutable value: Apply returns a new Board and never
// mutates the receiver, so boards can be shared freely between the
// solver's frontier, cost map, and closed set. Board is comparable and
// safe to use as a map key.
package puzzle

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Size is the board edge length. The goal layout is fixed to 3x3.
const Size = 3

// Blank is the tile value representing the empty cell.
const Blank = 0

// ErrInvalidBoard indicates a grid that is not a permutation of 0-8.
var ErrInvalidBoard = errors.New("invalid board")

// Board is a 3x3 tile arrangement with the blank position cached.
// The zero value is not a valid board; construct with New, Goal, Parse,
// or Shuffle.
type Board struct {
	grid     [Size][Size]int
	blankRow int
	blankCol int
}

// New validates grid and returns it as a Board. The grid must contain
// each value 0-8 exactly once.
func New(grid [Size][Size]int) (Board, error) {
	var seen [Size * Size]bool
	b := Board{grid: grid}
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := grid[r][c]
			if v < 0 || v >= Size*Size {
				return Board{}, fmt.Errorf("%w: value %d at row %d, col %d out of range", ErrInvalidBoard, v, r, c)
			}
			if seen[v] {
				return Board{}, fmt.Errorf("%w: value %d appears more than once", ErrInvalidBoard, v)
			}
			seen[v] = true
			if v == Blank {
				b.blankRow, b.blankCol = r, c
			}
		}
	}
	return b, nil
}

// Goal returns the solved board [[1,2,3],[4,5,6],[7,8,0]].
func Goal() Board {
	return Board{
		grid:     [Size][Size]int{{1, 2, 3}, {4, 5, 6}, {7, 8, Blank}},
		blankRow: Size - 1,
		blankCol: Size - 1,
	}
}

// Parse builds a Board from a 9-digit row-major key such as "136547208",
// where 0 marks the blank.
func Parse(key string) (Board, error) {
	if len(key) != Size*Size {
		return Board{}, fmt.Errorf("%w: key %q must be %d digits", ErrInvalidBoard, key, Size*Size)
	}
	var grid [Size][Size]int
	for i, ch := range key {
		if ch < '0' || ch > '8' {
			return Board{}, fmt.Errorf("%w: key %q contains %q", ErrInvalidBoard, key, ch)
		}
		grid[i/Size][i%Size] = int(ch - '0')
	}
	return New(grid)
}

// Grid returns a copy of the tile arrangement.
func (b Board) Grid() [Size][Size]int {
	return b.grid
}

// LegalMoves returns the directions the blank can move without leaving
// the board, always in up, down, left, right order.
func (b Board) LegalMoves() []Move {
	moves := make([]Move, 0, 4)
	if b.blankRow > 0 {
		moves = append(moves, MoveUp)
	}
	if b.blankRow < Size-1 {
		moves = append(moves, MoveDown)
	}
	if b.blankCol > 0 {
		moves = append(moves, MoveLeft)
	}
	if b.blankCol < Size-1 {
		moves = append(moves, MoveRight)
	}
	return moves
}

// Apply returns the board with the blank swapped one cell in the given
// direction. Applying a move outside LegalMoves returns the receiver
// unchanged; callers are expected to draw moves from LegalMoves.
func (b Board) Apply(m Move) Board {
	dr, dc := m.delta()
	r, c := b.blankRow+dr, b.blankCol+dc
	if r < 0 || r >= Size || c < 0 || c >= Size {
		return b
	}
	next := b
	next.grid[b.blankRow][b.blankCol] = b.grid[r][c]
	next.grid[r][c] = Blank
	next.blankRow, next.blankCol = r, c
	return next
}

// IsGoal reports whether the board equals the solved layout.
func (b Board) IsGoal() bool {
	return b == Goal()
}

// Solvable reports whether the goal is reachable from this board.
// A 3x3 board is solvable exactly when the number of inversions among
// its non-blank tiles (read row-major) is even, matching the goal's
// permutation parity.
func (b Board) Solvable() bool {
	flat := make([]int, 0, Size*Size-1)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.grid[r][c] != Blank {
				flat = append(flat, b.grid[r][c])
			}
		}
	}
	inversions := 0
	for i := 0; i < len(flat); i++ {
		for j := i + 1; j < len(flat); j++ {
			if flat[i] > flat[j] {
				inversions++
			}
		}
	}
	return inversions%2 == 0
}

// Shuffle returns a board produced by a random walk of steps legal moves
// starting from the goal. The result is always solvable.
func Shuffle(steps int, rng *rand.Rand) Board {
	b := Goal()
	for i := 0; i < steps; i++ {
		moves := b.LegalMoves()
		b = b.Apply(moves[rng.Intn(len(moves))])
	}
	return b
}

// Key returns the 9-digit row-major representation accepted by Parse.
func (b Board) Key() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			sb.WriteByte(byte('0' + b.grid[r][c]))
		}
	}
	return sb.String()
}

// String renders the board over three lines, with _ for the blank.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if b.grid[r][c] == Blank {
				sb.WriteByte('_')
			} else {
				sb.WriteByte(byte('0' + b.grid[r][c]))
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
