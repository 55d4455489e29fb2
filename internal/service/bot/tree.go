package bot

import (
	"github.com/mathisdelsart/Connect4Zero/internal/domain"
)

// node is one position in the search tree. player is the side that just
// moved into board, and depth is how many plies are still searched below it.
type node struct {
	board    domain.Board
	player   domain.PlayerID
	move     domain.Move
	depth    int
	value    int
	terminal bool
	children []*node
}

func newRoot(board domain.Board, lastMover domain.PlayerID, depth int) *node {
	return &node{
		board:  board,
		player: lastMover,
		move:   domain.Move{Row: -1, Column: -1},
		depth:  depth,
	}
}

// buildTree expands root one whole level at a time until depth runs out.
// mover is the side to play from root. Wins are scored as they are found and
// never expanded further.
func buildTree(root *node, mover domain.PlayerID, maximizing domain.PlayerID, weights Weights) {
	frontier := []*node{root}

	for remaining := root.depth; remaining > 0 && len(frontier) > 0; remaining-- {
		next := make([]*node, 0, len(frontier)*domain.Columns)

		for _, parent := range frontier {
			for _, move := range domain.ValidMoves(parent.board) {
				child := &node{
					board:  parent.board,
					player: mover,
					move:   move,
					depth:  remaining - 1,
				}
				child.board[move.Row][move.Column] = mover

				if domain.CheckWin(child.board, move.Column, mover) {
					child.terminal = true
					child.value = terminalScore(weights.Win, mover, maximizing, child.depth)
				} else {
					next = append(next, child)
				}

				parent.children = append(parent.children, child)
			}
		}

		frontier = next
		mover = mover.Opponent()
	}
}

// terminalScore rewards quicker wins and slower losses.
func terminalScore(win int, winner, maximizing domain.PlayerID, remaining int) int {
	score := win * (remaining + 1)
	if winner != maximizing {
		return -score
	}
	return score
}
