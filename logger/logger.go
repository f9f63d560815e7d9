// Package logger configures the structured logger shared by the fifo command
// and its HTTP service.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config selects the level and the format of the logs.
type Config struct {
	Level  string // debug, info, warn, error... defaults to info.
	Format string // "pretty" for a human readable console, json otherwise.
}

// FromEnv reads the configuration from LOG_LEVEL and LOG_FORMAT.
func FromEnv() Config {
	return Config{
		Level:  os.Getenv("LOG_LEVEL"),
		Format: os.Getenv("LOG_FORMAT"),
	}
}

// New creates a logger writing to w according to cfg, and installs it as the
// global zerolog logger.
func New(w io.Writer, cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "pretty" {
		w = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}
	}

	l := zerolog.New(w).With().Timestamp().Logger()
	log.Logger = l
	return l
}
