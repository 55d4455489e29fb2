package game

import (
	"context"
	"log"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mathisdelsart/Connect4Zero/internal/domain"
	"github.com/mathisdelsart/Connect4Zero/internal/service/bot"
)

// PlayerFactory builds the two strategies for game number i. Each game gets
// its own instances so no bot is shared between goroutines.
type PlayerFactory func(i int) (player1, player2 bot.Strategy)

// Tally counts the outcomes of a series.
type Tally struct {
	Games       int
	Player1Wins int
	Player2Wins int
	Draws       int
}

func (t *Tally) add(r Result) {
	t.Games++
	switch {
	case r.Status == domain.StatusDraw:
		t.Draws++
	case r.Winner == domain.Player1:
		t.Player1Wins++
	case r.Winner == domain.Player2:
		t.Player2Wins++
	}
}

// Runner plays independent games concurrently.
type Runner struct {
	Games       int
	Parallelism int
	Verbose     bool
	NewPlayers  PlayerFactory
}

func NewRunner(games, parallelism int, factory PlayerFactory) *Runner {
	if parallelism < 1 {
		parallelism = runtime.NumCPU()
	}
	return &Runner{
		Games:       games,
		Parallelism: parallelism,
		NewPlayers:  factory,
	}
}

// Run plays every game and returns the tally. The first failing game cancels
// the games that have not started yet.
func (r *Runner) Run(ctx context.Context) (Tally, error) {
	var (
		mu    sync.Mutex
		tally Tally
	)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.Parallelism)

	for i := 0; i < r.Games; i++ {
		g.Go(func() error {
			p1, p2 := r.NewPlayers(i)
			session := NewGameSession(p1, p2)
			session.Verbose = r.Verbose

			result, err := session.Play(ctx)
			if err != nil {
				return err
			}

			mu.Lock()
			tally.add(result)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("[RUNNER] series stopped: %v", err)
		return tally, err
	}
	return tally, nil
}
