package bot

import (
	"github.com/mathisdelsart/Connect4Zero/internal/domain"
)

const DefaultSearchDepth = 4

// HardBot searches the full game tree to a fixed depth with minimax.
type HardBot struct {
	depth   int
	weights Weights
}

// NewHardBot returns a bot searching depth plies. Depths below 1 use
// DefaultSearchDepth and zero Weights use DefaultWeights.
func NewHardBot(depth int, weights Weights) *HardBot {
	if depth < 1 {
		depth = DefaultSearchDepth
	}
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	return &HardBot{depth: depth, weights: weights}
}

func (h *HardBot) Depth() int {
	return h.depth
}

func (h *HardBot) CalculateBestMove(board domain.Board, botPlayer domain.PlayerID) int {
	// the centre is the strongest opening, no need to search
	if domain.IsEmpty(board) {
		return domain.Columns / 2
	}

	root := newRoot(board, botPlayer.Opponent(), h.depth)
	buildTree(root, botPlayer, botPlayer, h.weights)

	return bestMove(root, h.depth, botPlayer, h.weights)
}
