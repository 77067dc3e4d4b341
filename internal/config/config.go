// Package config loads the bot's settings from the environment, with an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Hall of Fame storage backends
const (
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config holds every setting cmd/bot needs
type Config struct {
	// Discord
	DiscordToken  string `env:"DISCORD_TOKEN,required"`
	ApplicationID string `env:"APPLICATION_ID"`
	GuildID       string `env:"GUILD_ID"`

	// Redis
	RedisAddr     string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Hall of Fame
	HallOfFameBackend string `env:"HALL_OF_FAME_BACKEND" envDefault:"redis"`
	SQLitePath        string `env:"SQLITE_PATH" envDefault:"kostka.db"`
	HallOfFameSize    int    `env:"HALL_OF_FAME_SIZE" envDefault:"10"`

	// Game
	TargetScore int   `env:"TARGET_SCORE" envDefault:"10000"`
	DiceSeed    int64 `env:"DICE_SEED"`
}

// Load reads the given .env files (".env" when none are named) into the
// environment, then parses it. Missing files are skipped and variables
// already set win over file values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	return Parse()
}

// Parse reads the configuration from environment variables
func Parse() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks values env tags cannot express
func (c *Config) Validate() error {
	switch c.HallOfFameBackend {
	case BackendRedis:
	case BackendSQLite:
		if c.SQLitePath == "" {
			return errors.New("SQLITE_PATH is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown HALL_OF_FAME_BACKEND %q", c.HallOfFameBackend)
	}

	if c.TargetScore <= 0 {
		return fmt.Errorf("TARGET_SCORE must be positive, got %d", c.TargetScore)
	}

	if c.HallOfFameSize <= 0 {
		return fmt.Errorf("HALL_OF_FAME_SIZE must be positive, got %d", c.HallOfFameSize)
	}

	return nil
}
