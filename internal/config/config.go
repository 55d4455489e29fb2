package config

import (
	"log"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/mathisdelsart/Connect4Zero/internal/service/bot"
)

type Config struct {
	HardSearchDepth int
	PlayerOne       bot.Difficulty
	PlayerTwo       bot.Difficulty
	Games           int
	Parallelism     int
	Seed            int64
	Verbose         bool
}

func LoadConfig() (*Config, error) {
	depth := GetEnvAsInt("HARD_SEARCH_DEPTH", bot.DefaultSearchDepth)
	if depth < 1 {
		return nil, errors.Errorf("HARD_SEARCH_DEPTH must be at least 1, got %d", depth)
	}

	playerOne, err := bot.ParseDifficulty(GetEnv("PLAYER_ONE", string(bot.Hard)))
	if err != nil {
		return nil, errors.Wrap(err, "PLAYER_ONE")
	}
	playerTwo, err := bot.ParseDifficulty(GetEnv("PLAYER_TWO", string(bot.Easy)))
	if err != nil {
		return nil, errors.Wrap(err, "PLAYER_TWO")
	}

	cfg := &Config{
		HardSearchDepth: depth,
		PlayerOne:       playerOne,
		PlayerTwo:       playerTwo,
		Seed:            int64(GetEnvAsInt("SEED", 0)),
		Verbose:         GetEnvAsBool("VERBOSE", false),
	}

	defaultGames := 10
	if cfg.HasHuman() {
		defaultGames = 1
	}
	cfg.Games = GetEnvAsInt("GAMES", defaultGames)
	if cfg.Games < 0 {
		return nil, errors.Errorf("GAMES must not be negative, got %d", cfg.Games)
	}

	cfg.Parallelism = GetEnvAsInt("PARALLELISM", runtime.NumCPU())
	if cfg.HasHuman() && cfg.Parallelism != 1 {
		// one console, one game at a time
		if os.Getenv("PARALLELISM") != "" {
			log.Printf("PARALLELISM=%d ignored, human games are played one at a time", cfg.Parallelism)
		}
		cfg.Parallelism = 1
	}

	return cfg, nil
}

// HasHuman reports whether a person plays one of the sides.
func (c *Config) HasHuman() bool {
	return c.PlayerOne == bot.Human || c.PlayerTwo == bot.Human
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid boolean value for %s: %s, using default: %t", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
