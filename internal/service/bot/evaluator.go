package bot

import (
	"github.com/mathisdelsart/Connect4Zero/internal/domain"
)

// Weights holds every constant the evaluation uses. It is passed by value
// and never modified once a bot is built.
type Weights struct {
	Opponent int // per token next to the move belonging to the opponent
	Player   int // per token next to the move belonging to the mover
	Position int // multiplier for Table
	Win      int // base score of a won position
	Table    [domain.Rows][domain.Columns]int
}

// DefaultWeights favours the centre columns and middle rows.
func DefaultWeights() Weights {
	return Weights{
		Opponent: 5,
		Player:   10,
		Position: 80,
		Win:      1_000_000,
		Table: [domain.Rows][domain.Columns]int{
			{3, 4, 5, 7, 5, 4, 3},
			{4, 6, 8, 10, 8, 6, 4},
			{5, 8, 11, 13, 11, 8, 5},
			{5, 8, 11, 13, 11, 8, 5},
			{4, 6, 8, 10, 8, 6, 4},
			{3, 4, 5, 7, 5, 4, 3},
		},
	}
}

// threat directions, both ways along each axis
var halfDirections = [8][2]int{
	{0, 1}, {0, -1},  // horizontal
	{1, 0}, {-1, 0},  // vertical
	{1, 1}, {-1, -1}, // diagonal \
	{1, -1}, {-1, 1}, // diagonal /
}

const maxThreatRun = 3

// EvaluateThreats scores how many of target's tokens sit next to move.
// Each of the 8 directions counts at most 3 tokens, stopping at the first
// cell that is not target's or is off the board.
func EvaluateThreats(board domain.Board, move domain.Move, target domain.PlayerID, weight int) int {
	score := 0
	for _, dir := range halfDirections {
		count := 0
		r, c := move.Row+dir[0], move.Column+dir[1]
		for count < maxThreatRun && r >= 0 && r < domain.Rows && c >= 0 && c < domain.Columns && board[r][c] == target {
			count++
			r += dir[0]
			c += dir[1]
		}
		score += count * weight
	}
	return score
}

// EvaluateBoardPosition is the static worth of the cell a move lands on.
func (w Weights) EvaluateBoardPosition(move domain.Move) int {
	return w.Table[move.Row][move.Column] * w.Position
}

// EvaluatePosition scores the position reached by player playing move,
// always from maximizing's point of view.
func (w Weights) EvaluatePosition(player, opponent domain.PlayerID, board domain.Board, move domain.Move, maximizing domain.PlayerID) int {
	score := EvaluateThreats(board, move, opponent, w.Opponent) +
		EvaluateThreats(board, move, player, w.Player) +
		w.EvaluateBoardPosition(move)

	if player != maximizing {
		return -score
	}
	return score
}
