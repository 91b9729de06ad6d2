// Package config reads runtime settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var ErrInvalidBackend = errors.New("invalid prefs backend")

const (
	BackendFile  = "file"
	BackendRedis = "redis"
)

type Config struct {
	Addr     string `env:"SOLITAIRE_ADDR,default=:8000"`
	LogLevel string `env:"SOLITAIRE_LOG_LEVEL,default=info"`

	// PrefsBackend is "file" or "redis"
	PrefsBackend string `env:"SOLITAIRE_PREFS_BACKEND,default=file"`
	PrefsFile    string `env:"SOLITAIRE_PREFS_FILE,default=solitaire-prefs.yaml"`
	RedisAddr    string `env:"SOLITAIRE_REDIS_ADDR,default=localhost:6379"`
	RedisKey     string `env:"SOLITAIRE_REDIS_KEY,default=solitaire:prefs"`

	// DrawMode is used for new games that don't ask for one
	DrawMode string `env:"SOLITAIRE_DRAW_MODE,default=3"`

	// Games and Seed drive the headless autoplay
	Games int   `env:"SOLITAIRE_GAMES,default=10"`
	Seed  int64 `env:"SOLITAIRE_SEED,default=1"`
}

// Load reads the given .env files, if present, then decodes the environment.
// Variables already set take precedence over the files.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	cfg := &Config{}
	if err := envdecode.Decode(cfg); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("decoding environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.PrefsBackend {
	case BackendFile, BackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.PrefsBackend)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

// Logger returns a logger at the configured level
func (c *Config) Logger() *logrus.Logger {
	log := logrus.New()
	if level, err := logrus.ParseLevel(c.LogLevel); err == nil {
		log.SetLevel(level)
	}
	return log
}
