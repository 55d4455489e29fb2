package bot

import (
	"math/rand"

	"github.com/mathisdelsart/Connect4Zero/internal/domain"
)

// EasyBot wins when it can, blocks when it must, and otherwise plays at random.
type EasyBot struct {
	rng *rand.Rand
}

// NewEasyBot uses rng for its random picks. A nil rng falls back to the
// package-level source. A non-nil rng must not be shared between goroutines.
func NewEasyBot(rng *rand.Rand) *EasyBot {
	return &EasyBot{rng: rng}
}

func (e *EasyBot) CalculateBestMove(board domain.Board, botPlayer domain.PlayerID) int {
	validColumns := domain.AvailableColumns(board)
	if len(validColumns) == 0 {
		return -1
	}

	opponent := botPlayer.Opponent()

	// one pass, left to right: a column is taken as soon as it wins or blocks
	for _, col := range validColumns {
		if domain.CheckWin(domain.DropToken(board, col, botPlayer), col, botPlayer) {
			return col
		}
		if domain.CheckWin(domain.DropToken(board, col, opponent), col, opponent) {
			return col
		}
	}

	return validColumns[e.intn(len(validColumns))]
}

func (e *EasyBot) intn(n int) int {
	if e.rng == nil {
		return rand.Intn(n)
	}
	return e.rng.Intn(n)
}
