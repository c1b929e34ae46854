package puzzle

import (
	"errors"
	"fmt"
)

// ErrUnknownMove indicates a direction name ParseMove does not recognize.
var ErrUnknownMove = errors.New("unknown move")

// Move is a direction the blank tile slides in.
type Move string

const (
	MoveUp    Move = "up"
	MoveDown  Move = "down"
	MoveLeft  Move = "left"
	MoveRight Move = "right"
)

// Opposite returns the move that undoes m.
func (m Move) Opposite() Move {
	switch m {
	case MoveUp:
		return MoveDown
	case MoveDown:
		return MoveUp
	case MoveLeft:
		return MoveRight
	case MoveRight:
		return MoveLeft
	default:
		return m
	}
}

// String returns the direction name.
func (m Move) String() string {
	return string(m)
}

// ParseMove converts a direction name to a Move.
func ParseMove(s string) (Move, error) {
	switch Move(s) {
	case MoveUp, MoveDown, MoveLeft, MoveRight:
		return Move(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMove, s)
	}
}

// delta returns the row and column offset of the cell the blank swaps with.
func (m Move) delta() (dr, dc int) {
	switch m {
	case MoveUp:
		return -1, 0
	case MoveDown:
		return 1, 0
	case MoveLeft:
		return 0, -1
	case MoveRight:
		return 0, 1
	default:
		return 0, 0
	}
}
