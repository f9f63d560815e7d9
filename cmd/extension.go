package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/etnz/fifo/logger"
)

// Environment variables passed to extensions, so that they log like fifo.
const (
	EnvLogLevel  = "LOG_LEVEL"
	EnvLogFormat = "LOG_FORMAT"
)

// RunExtension attempts to find and execute an external fifo-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found.
func RunExtension(subcommand string, args []string) (bool, int) {
	return runExtension(subcommand, args, os.Stdin, os.Stdout, os.Stderr)
}

func runExtension(subcommand string, args []string, stdin io.Reader, stdout, stderr io.Writer) (bool, int) {
	name := "fifo-" + subcommand
	log := Logger()

	lp, err := exec.LookPath(name)
	if err != nil {
		log.Debug().Err(err).Str("extension", name).Msg("extension not found in PATH")
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	// Pass global flags as environment variables.
	cfg := logger.FromEnv()
	if *logLevel != "" {
		cfg.Level = *logLevel
	}
	if *logFormat != "" {
		cfg.Format = *logFormat
	}
	cmd.Env = append(os.Environ(), EnvLogLevel+"="+cfg.Level, EnvLogFormat+"="+cfg.Format)

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			return true, exitError.ExitCode()
		}
		fmt.Fprintf(stderr, "Error executing external command %q: %v\n", name, err)
		return true, 1
	}
	return true, 0
}
