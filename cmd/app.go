// Package cmd implements the CLI application to compute FIFO accounting.
package cmd

import (
	"errors"
	"flag"
	"io/fs"
	"os"

	"github.com/etnz/fifo/logger"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&computeCmd{}, "accounting")
	c.Register(&inventoryCmd{}, "accounting")
	c.Register(&fmtCmd{}, "accounting")

	c.Register(&serveCmd{}, "service")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error). Defaults to $LOG_LEVEL, or info.")
var logFormat = flag.String("log-format", "", "Log format (json, pretty). Defaults to $LOG_FORMAT, or json.")

// LoadEnv loads the .env file from the working directory, if there is one.
// Variables already set in the environment are not overridden.
func LoadEnv() error {
	err := godotenv.Load()
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Logger returns the application logger, configured by the global flags or
// the environment. Logs go to stderr, stdout is for reports.
func Logger() zerolog.Logger {
	cfg := logger.FromEnv()
	if *logLevel != "" {
		cfg.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Format = *logFormat
	}
	return logger.New(os.Stderr, cfg)
}
