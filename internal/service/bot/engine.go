package bot

import (
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/mathisdelsart/Connect4Zero/internal/domain"
)

// Strategy picks the column to play for player on board. The board is a
// copy, strategies never change the caller's game. Callers must make sure at
// least one column is playable; otherwise -1 is returned.
type Strategy interface {
	CalculateBestMove(board domain.Board, player domain.PlayerID) int
}

type Difficulty string

const (
	Easy  Difficulty = "easy"
	Hard  Difficulty = "hard"
	Human Difficulty = "human"
)

var BotNames = map[Difficulty]string{
	Easy:  "Alice",
	Hard:  "Charles",
	Human: "You",
}

func GetBotName(difficulty Difficulty) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch d := Difficulty(strings.ToLower(strings.TrimSpace(s))); d {
	case Easy, Hard, Human:
		return d, nil
	default:
		return "", errors.Errorf("unknown difficulty %q", s)
	}
}

// Options configures the strategies built by NewStrategy.
type Options struct {
	SearchDepth int
	Weights     Weights
	Rand        *rand.Rand

	// console used by Human, stdin and stdout when nil
	In  io.Reader
	Out io.Writer
}

func DefaultOptions() Options {
	return Options{
		SearchDepth: DefaultSearchDepth,
		Weights:     DefaultWeights(),
	}
}

// NewStrategy selects the bot for difficulty
func NewStrategy(difficulty Difficulty, opts Options) Strategy {
	switch difficulty {
	case Hard:
		return NewHardBot(opts.SearchDepth, opts.Weights)
	case Human:
		in, out := opts.In, opts.Out
		if in == nil {
			in = os.Stdin
		}
		if out == nil {
			out = os.Stdout
		}
		return NewHumanPlayer(in, out)
	default:
		return NewEasyBot(opts.Rand)
	}
}
