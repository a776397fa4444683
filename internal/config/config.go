package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// DefaultNumPlayers is used when --numPlayers is not given
	DefaultNumPlayers = 2

	// DefaultEnvFile is loaded if it exists
	DefaultEnvFile = ".env"
)

// Config holds everything the entry point needs
type Config struct {
	// NumPlayers comes from the --numPlayers flag
	NumPlayers int

	// EnvFile comes from the --env flag
	EnvFile string

	LogLevel    string        `env:"PIG_LOG_LEVEL" envDefault:"warn"`
	Seed        int64         `env:"PIG_SEED" envDefault:"0"`
	ClearScreen bool          `env:"PIG_CLEAR_SCREEN" envDefault:"true"`
	Tone        string        `env:"PIG_TONE" envDefault:"neutral"`
	RedisAddr   string        `env:"PIG_REDIS_ADDR"`
	TallyTTL    time.Duration `env:"PIG_TALLY_TTL" envDefault:"1h"`
}

// Load parses flags from args, then an optional env file, then the environment.
// Flag usage and errors are written to output
func Load(args []string, output io.Writer) (*Config, error) {
	cfg := &Config{}

	flags := flag.NewFlagSet("pig", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.IntVar(&cfg.NumPlayers, "numPlayers", DefaultNumPlayers, "Number of players playing Pig.")
	flags.StringVar(&cfg.EnvFile, "env", DefaultEnvFile, "Optional file of environment variables.")

	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return nil, err
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// HasEnoughPlayers reports whether a game can be started
func (c *Config) HasEnoughPlayers() bool {
	return c.NumPlayers > 1
}

// loadEnvFile loads variables from path without overriding ones already set.
// A missing file is not an error
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	return nil
}
