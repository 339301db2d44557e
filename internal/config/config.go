// Package config resolves runtime settings from the environment, with
// an optional .env file for local runs.
package config

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"durak/internal/bot"
)

// Config holds the settings a game run needs.
type Config struct {
	Difficulty bot.Difficulty
	// Seed pins the random source for reproducible runs; 0 means
	// time-seeded.
	Seed       int64
	PlayerName string
	BotName    string
	LogLevel   logrus.Level
}

// Load reads DURAK_* environment variables on top of defaults. A .env
// file in the working directory is applied first if present.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		Difficulty: bot.DifficultyMedium,
		PlayerName: "Player",
		BotName:    "Computer",
		LogLevel:   logrus.InfoLevel,
	}
	if v := os.Getenv("DURAK_DIFFICULTY"); v != "" {
		d, err := bot.ParseDifficulty(v)
		if err != nil {
			return Config{}, fmt.Errorf("DURAK_DIFFICULTY: %w", err)
		}
		cfg.Difficulty = d
	}
	if v := os.Getenv("DURAK_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("DURAK_SEED: %w", err)
		}
		cfg.Seed = seed
	}
	if v := os.Getenv("DURAK_PLAYER_NAME"); v != "" {
		cfg.PlayerName = v
	}
	if v := os.Getenv("DURAK_BOT_NAME"); v != "" {
		cfg.BotName = v
	}
	if v := os.Getenv("DURAK_LOG_LEVEL"); v != "" {
		level, err := logrus.ParseLevel(v)
		if err != nil {
			return Config{}, fmt.Errorf("DURAK_LOG_LEVEL: %w", err)
		}
		cfg.LogLevel = level
	}
	return cfg, nil
}

// Rand returns the seeded random source the config asks for, or nil to
// let callers fall back to their time-seeded default.
func (c Config) Rand() *rand.Rand {
	if c.Seed == 0 {
		return nil
	}
	return rand.New(rand.NewSource(c.Seed))
}
