// Package solver implements A* search over 8-puzzle boards.
//
// The engine is single-threaded and runs each search to completion in
// one call. Duplicate boards may sit in the frontier at once; stale
// entries are discarded at pop time via the closed set (lazy deletion)
// rather than deduplicated at push time.
package solver

import (
	"container/heap"

	"github.com/danieljhkim/eightpuzzle/internal/puzzle"
)

// Result is the outcome of one search.
type Result struct {
	// Moves is the solution path from the start board to the goal, in
	// application order. Nil when no solution exists.
	Moves []puzzle.Move

	// Explored is the number of boards expanded during the search.
	Explored int

	// Found distinguishes an already-solved start (empty Moves, true)
	// from an exhausted search (empty Moves, false).
	Found bool
}

// Solve runs A* from start guided by h and returns the move sequence and
// explored-board count. With an admissible heuristic the returned path
// has minimum length. If the goal is unreachable the search exhausts the
// reachable state space and returns Found false with nil Moves.
//
// Each call uses a fresh frontier, cost map, closed set, and tie-break
// counter, so independent invocations are reproducible and safe to run
// back to back.
func Solve(start puzzle.Board, h puzzle.Heuristic) Result {
	open := make(frontier, 0, 64)
	heap.Init(&open)

	order := 0
	heap.Push(&open, &frontierItem{fCost: h(start), order: order, board: start})

	gCost := map[puzzle.Board]int{start: 0}
	closed := make(map[puzzle.Board]bool)
	explored := 0

	for open.Len() > 0 {
		item := heap.Pop(&open).(*frontierItem)
		current := item.board

		if current.IsGoal() {
			return Result{Moves: item.moves, Explored: explored, Found: true}
		}
		if closed[current] {
			// Stale entry superseded by a cheaper path already expanded.
			continue
		}
		closed[current] = true
		explored++

		for _, move := range current.LegalMoves() {
			next := current.Apply(move)
			tentative := gCost[current] + 1
			if previous, seen := gCost[next]; !seen || tentative < previous {
				gCost[next] = tentative
				order++
				moves := make([]puzzle.Move, len(item.moves)+1)
				copy(moves, item.moves)
				moves[len(item.moves)] = move
				heap.Push(&open, &frontierItem{
					fCost: tentative + h(next),
					order: order,
					board: next,
					moves: moves,
				})
			}
		}
	}

	return Result{Explored: explored}
}

// ShortestPathLength returns the true minimum number of moves from start
// to the goal by breadth-first search, and whether the goal is reachable.
// It serves as the optimal-length reference when comparing heuristics.
func ShortestPathLength(start puzzle.Board) (int, bool) {
	if start.IsGoal() {
		return 0, true
	}
	depth := map[puzzle.Board]int{start: 0}
	queue := []puzzle.Board{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, move := range current.LegalMoves() {
			next := current.Apply(move)
			if _, seen := depth[next]; seen {
				continue
			}
			depth[next] = depth[current] + 1
			if next.IsGoal() {
				return depth[next], true
			}
			queue = append(queue, next)
		}
	}
	return 0, false
}
