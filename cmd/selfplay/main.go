package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/mathisdelsart/Connect4Zero/internal/config"
	"github.com/mathisdelsart/Connect4Zero/internal/domain"
	"github.com/mathisdelsart/Connect4Zero/internal/service/bot"
	"github.com/mathisdelsart/Connect4Zero/internal/service/game"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	log.Printf("Player 1: %s (%s), Player 2: %s (%s), hard depth=%d",
		bot.GetBotName(cfg.PlayerOne), cfg.PlayerOne,
		bot.GetBotName(cfg.PlayerTwo), cfg.PlayerTwo,
		cfg.HardSearchDepth)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.HasHuman() {
		playInteractive(ctx, cfg)
		return
	}

	factory := func(i int) (bot.Strategy, bot.Strategy) {
		return newStrategy(cfg, cfg.PlayerOne, 2*i), newStrategy(cfg, cfg.PlayerTwo, 2*i+1)
	}

	runner := game.NewRunner(cfg.Games, cfg.Parallelism, factory)
	runner.Verbose = cfg.Verbose

	start := time.Now()
	log.Printf("Playing %d games with parallelism %d...", cfg.Games, runner.Parallelism)

	tally, err := runner.Run(ctx)
	if err != nil {
		log.Fatalf("Series failed: %v", err)
	}

	log.Printf("Player 1 wins: %d, Player 2 wins: %d, draws: %d (of %d)",
		tally.Player1Wins, tally.Player2Wins, tally.Draws, tally.Games)
	log.Printf("Total time: %s", time.Since(start).Round(time.Millisecond))
}

// playInteractive runs the games one after the other on the console. A
// single HumanPlayer reads stdin for every human side so no input is lost
// between games.
func playInteractive(ctx context.Context, cfg *config.Config) {
	human := bot.NewHumanPlayer(os.Stdin, os.Stdout)
	pick := func(difficulty bot.Difficulty, slot int) bot.Strategy {
		if difficulty == bot.Human {
			return human
		}
		return newStrategy(cfg, difficulty, slot)
	}

	for i := 0; i < cfg.Games; i++ {
		session := game.NewGameSession(pick(cfg.PlayerOne, 2*i), pick(cfg.PlayerTwo, 2*i+1))
		session.Verbose = cfg.Verbose

		result, err := session.Play(ctx)
		if err != nil {
			log.Fatalf("Game %d stopped: %v", i+1, err)
		}

		fmt.Printf("\n%s0123456\n", result.Board)
		switch result.Status {
		case domain.StatusDraw:
			fmt.Println("DRAW!")
		default:
			winner := cfg.PlayerOne
			if result.Winner == domain.Player2 {
				winner = cfg.PlayerTwo
			}
			fmt.Printf("Player %d (%s) wins after %d moves.\n", result.Winner, bot.GetBotName(winner), len(result.Moves))
		}
	}
}

// newStrategy gives every bot its own random source. With SEED unset the
// sources are seeded from the clock.
func newStrategy(cfg *config.Config, difficulty bot.Difficulty, slot int) bot.Strategy {
	opts := bot.DefaultOptions()
	opts.SearchDepth = cfg.HardSearchDepth

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	opts.Rand = rand.New(rand.NewSource(seed + int64(slot)))

	return bot.NewStrategy(difficulty, opts)
}
