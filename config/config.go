// Package config reads runtime settings from the environment, with an
// optional .env file loaded first.
package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hgorl/highsuit/scores"
)

// Config holds the process-level settings for a game session.
type Config struct {
	// ScoresFile is where the leaderboard is persisted.
	ScoresFile string
	// NoColor disables colored terminal output.
	NoColor bool
}

// Load reads the configuration. A .env file in the working directory is
// honored when present; real environment variables win over it.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{ScoresFile: scores.DefaultFilename}
	if v := os.Getenv("HIGHSUIT_SCORES_FILE"); v != "" {
		cfg.ScoresFile = v
	}
	if v := os.Getenv("HIGHSUIT_NO_COLOR"); v != "" {
		cfg.NoColor = v == "1" || strings.EqualFold(v, "true")
	}
	return cfg
}
