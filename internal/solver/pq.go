package solver

import "github.com/danieljhkim/eightpuzzle/internal/puzzle"

// frontierItem is one pending expansion: the board to expand, the moves
// that reached it, and its A* priority.
type frontierItem struct {
	fCost int
	// order is an insertion-time counter used as the tie-breaker for
	// equal f-costs, so boards are never compared for ordering and the
	// exploration order is deterministic.
	order int
	board puzzle.Board
	moves []puzzle.Move
}

// frontier implements heap.Interface ordered by (fCost, order).
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].fCost != f[j].fCost {
		return f[i].fCost < f[j].fCost
	}
	return f[i].order < f[j].order
}

func (f frontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
}

func (f *frontier) Push(x any) {
	*f = append(*f, x.(*frontierItem))
}

func (f *frontier) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]
	return item
}
