package bot

import (
	"math"

	"github.com/mathisdelsart/Connect4Zero/internal/domain"
)

// minimax scores node for maximizing and caches the result on the node.
// A node is a max node when the side that moved into it is not maximizing,
// since the next move then belongs to maximizing.
func minimax(n *node, depth int, maximizing domain.PlayerID, weights Weights) int {
	if depth == 0 {
		if !n.terminal {
			n.value = weights.EvaluatePosition(n.player, n.player.Opponent(), n.board, n.move, maximizing)
		}
		return n.value
	}

	// wins and full boards
	if len(n.children) == 0 {
		return n.value
	}

	if n.player != maximizing {
		best := math.MinInt
		for _, child := range n.children {
			best = max(best, minimax(child, depth-1, maximizing, weights))
		}
		n.value = best
		return best
	}

	best := math.MaxInt
	for _, child := range n.children {
		best = min(best, minimax(child, depth-1, maximizing, weights))
	}
	n.value = best
	return best
}

// bestMove runs the search and picks the column of the root child whose
// value matches the root. Ties go to the static evaluation, and among equal
// evaluations the rightmost column wins.
func bestMove(root *node, depth int, maximizing domain.PlayerID, weights Weights) int {
	if len(root.children) == 0 {
		return -1
	}

	score := minimax(root, depth, maximizing, weights)

	tied := make([]*node, 0, len(root.children))
	for _, child := range root.children {
		if child.value == score {
			tied = append(tied, child)
		}
	}

	if len(tied) == 1 {
		return tied[0].move.Column
	}

	bestCol := -1
	bestEval := math.MinInt
	for _, child := range tied {
		eval := weights.EvaluatePosition(child.player, child.player.Opponent(), child.board, child.move, maximizing)
		if eval >= bestEval {
			bestEval = eval
			bestCol = child.move.Column
		}
	}

	return bestCol
}
