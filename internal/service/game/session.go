package game

import (
	"context"
	"log"
	"time"

	"github.com/pkg/errors"

	"github.com/mathisdelsart/Connect4Zero/internal/domain"
	"github.com/mathisdelsart/Connect4Zero/internal/service/bot"
	"github.com/mathisdelsart/Connect4Zero/pkg/uid"
)

// ErrIllegalMove is returned when a strategy picks a column that cannot be played.
var ErrIllegalMove = errors.New("strategy returned an illegal column")

// Result is the outcome of one finished game.
type Result struct {
	GameID     string
	Status     domain.GameStatus
	Winner     domain.PlayerID
	Moves      []domain.Move
	Board      domain.Board
	CreatedAt  time.Time
	FinishedAt time.Time
}

// GameSession owns the canonical game and asks each side's strategy for a
// column in turn. Strategies only ever see a copy of the board.
type GameSession struct {
	GameID    string
	Game      *domain.Game
	Players   map[domain.PlayerID]bot.Strategy
	CreatedAt time.Time
	Verbose   bool
}

func NewGameSession(player1, player2 bot.Strategy) *GameSession {
	return &GameSession{
		GameID: uid.GenerateGameID(),
		Game:   domain.NewGame(),
		Players: map[domain.PlayerID]bot.Strategy{
			domain.Player1: player1,
			domain.Player2: player2,
		},
		CreatedAt: time.Now(),
	}
}

// HandleBotMove plays a single ply for the current player.
func (gs *GameSession) HandleBotMove() (domain.Move, error) {
	if gs.Game.IsFinished() {
		return domain.Move{}, domain.ErrGameOver
	}

	player := gs.Game.CurrentPlayer
	column := gs.Players[player].CalculateBestMove(gs.Game.Board, player)

	move, err := gs.Game.MakeMove(column)
	if err != nil {
		return domain.Move{}, errors.Wrapf(ErrIllegalMove, "game %s ply %d: player %d chose column %d: %v",
			gs.GameID, gs.Game.MoveCount+1, player, column, err)
	}

	if gs.Verbose {
		log.Printf("[GAME] %s: player %d -> column %d (row %d)", gs.GameID, player, move.Column, move.Row)
	}
	return move, nil
}

// Play runs the game to completion. The context is checked between plies.
func (gs *GameSession) Play(ctx context.Context) (Result, error) {
	for !gs.Game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return Result{}, errors.Wrapf(err, "game %s interrupted after %d moves", gs.GameID, gs.Game.MoveCount)
		}
		if _, err := gs.HandleBotMove(); err != nil {
			return Result{}, err
		}
	}

	result := Result{
		GameID:     gs.GameID,
		Status:     gs.Game.Status,
		Winner:     gs.Game.Winner,
		Moves:      append([]domain.Move(nil), gs.Game.History...),
		Board:      gs.Game.Board,
		CreatedAt:  gs.CreatedAt,
		FinishedAt: time.Now(),
	}

	if gs.Verbose {
		log.Printf("[GAME] %s finished: status=%s winner=%d moves=%d in %s",
			gs.GameID, result.Status, result.Winner, len(result.Moves), result.Duration().Round(time.Millisecond))
	}
	return result, nil
}

// Duration is the wall time the game took.
func (r Result) Duration() time.Duration {
	return r.FinishedAt.Sub(r.CreatedAt)
}

// Play is a shorthand for a fresh session between player1 and player2.
func Play(ctx context.Context, player1, player2 bot.Strategy) (Result, error) {
	return NewGameSession(player1, player2).Play(ctx)
}
