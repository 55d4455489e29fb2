package game

import (
	"bytes"
	"context"
	"log"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/pkg/errors"

	"github.com/mathisdelsart/Connect4Zero/internal/domain"
	"github.com/mathisdelsart/Connect4Zero/internal/service/bot"
)

// fixedColumn always plays the same column, legal or not.
type fixedColumn int

func (f fixedColumn) CalculateBestMove(domain.Board, domain.PlayerID) int {
	return int(f)
}

func TestPlayHardAgainstEasy(t *testing.T) {
	for seed := int64(1); seed <= 3; seed++ {
		hard := bot.NewHardBot(4, bot.DefaultWeights())
		easy := bot.NewEasyBot(rand.New(rand.NewSource(seed)))

		result, err := Play(context.Background(), hard, easy)
		if err != nil {
			t.Fatalf("seed %d: %v", seed, err)
		}

		if n := len(result.Moves); n == 0 || n > domain.Rows*domain.Columns {
			t.Fatalf("seed %d: game lasted %d plies", seed, n)
		}

		switch result.Status {
		case domain.StatusWon:
			last := result.Moves[len(result.Moves)-1]
			if !domain.CheckWin(result.Board, last.Column, result.Winner) {
				t.Fatalf("seed %d: winner %d has no line through the last move\n%s", seed, result.Winner, result.Board)
			}
			wantWinner := domain.Player1
			if len(result.Moves)%2 == 0 {
				wantWinner = domain.Player2
			}
			if result.Winner != wantWinner {
				t.Fatalf("seed %d: winner %d did not play the last move", seed, result.Winner)
			}
		case domain.StatusDraw:
			if !domain.IsBoardFull(result.Board) || result.Winner != domain.Empty {
				t.Fatalf("seed %d: draw on a board that is not full", seed)
			}
		default:
			t.Fatalf("seed %d: unexpected status %s", seed, result.Status)
		}

		if result.GameID == "" {
			t.Fatalf("seed %d: missing game id", seed)
		}
		if result.FinishedAt.Before(result.CreatedAt) || result.Duration() < 0 {
			t.Fatalf("seed %d: game finished before it started", seed)
		}
	}
}

func TestPlayReplaysToTheSameBoard(t *testing.T) {
	result, err := Play(context.Background(),
		bot.NewEasyBot(rand.New(rand.NewSource(11))),
		bot.NewEasyBot(rand.New(rand.NewSource(12))))
	if err != nil {
		t.Fatalf("Play: %v", err)
	}

	g := domain.NewGame()
	for i, m := range result.Moves {
		got, err := g.MakeMove(m.Column)
		if err != nil {
			t.Fatalf("replaying move %d: %v", i, err)
		}
		if got != m {
			t.Fatalf("move %d landed on %+v, recorded %+v", i, got, m)
		}
	}
	if g.Board != result.Board || g.Status != result.Status {
		t.Fatal("replayed game does not match the result")
	}
}

func TestPlayReportsIllegalColumns(t *testing.T) {
	// both sides keep playing column 0 until it is full
	_, err := Play(context.Background(), fixedColumn(0), fixedColumn(0))
	if err == nil {
		t.Fatal("expected an error once column 0 is full")
	}
	if errors.Cause(err) != ErrIllegalMove {
		t.Fatalf("error = %v, want %v", err, ErrIllegalMove)
	}

	_, err = Play(context.Background(), fixedColumn(-1), fixedColumn(0))
	if errors.Cause(err) != ErrIllegalMove {
		t.Fatalf("error = %v, want %v", err, ErrIllegalMove)
	}
}

func TestPlayStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	session := NewGameSession(fixedColumn(0), fixedColumn(1))
	if _, err := session.Play(ctx); errors.Cause(err) != context.Canceled {
		t.Fatalf("error = %v, want %v", err, context.Canceled)
	}
	if session.Game.MoveCount != 0 {
		t.Fatalf("%d moves played after cancel", session.Game.MoveCount)
	}
}

func TestHandleBotMoveAfterGameOver(t *testing.T) {
	session := NewGameSession(fixedColumn(0), fixedColumn(1))
	for !session.Game.IsFinished() {
		if _, err := session.HandleBotMove(); err != nil {
			t.Fatalf("HandleBotMove: %v", err)
		}
	}
	if session.Game.Winner != domain.Player1 || session.Game.MoveCount != 7 {
		t.Fatalf("winner=%d moves=%d, want player 1 after 7", session.Game.Winner, session.Game.MoveCount)
	}
	if _, err := session.HandleBotMove(); err != domain.ErrGameOver {
		t.Fatalf("error = %v, want %v", err, domain.ErrGameOver)
	}
}

func TestPlayVerboseLogsDuration(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	session := NewGameSession(fixedColumn(0), fixedColumn(1))
	session.Verbose = true
	if _, err := session.Play(context.Background()); err != nil {
		t.Fatalf("Play: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, session.GameID+" finished: status=won winner=1 moves=7 in ") {
		t.Fatalf("summary line missing from log:\n%s", out)
	}
}

func TestPlayHumanAgainstBot(t *testing.T) {
	var out bytes.Buffer
	human := bot.NewHumanPlayer(strings.NewReader("0\nnope\n0\n0\n0\n"), &out)

	result, err := Play(context.Background(), human, fixedColumn(1))
	if err != nil {
		t.Fatalf("Play: %v", err)
	}
	if result.Winner != domain.Player1 || len(result.Moves) != 7 {
		t.Fatalf("winner=%d moves=%d, want player 1 after 7\n%s", result.Winner, len(result.Moves), out.String())
	}
	if !strings.Contains(out.String(), "Please enter a valid number.") {
		t.Fatalf("bad input was not reported:\n%s", out.String())
	}
}

func TestPlayHumanInputEnds(t *testing.T) {
	human := bot.NewHumanPlayer(strings.NewReader("3\n"), &bytes.Buffer{})

	_, err := Play(context.Background(), human, fixedColumn(1))
	if errors.Cause(err) != ErrIllegalMove {
		t.Fatalf("error = %v, want %v", err, ErrIllegalMove)
	}
}
