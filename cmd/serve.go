package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/fifo/server"
	"github.com/google/subcommands"
)

// EnvAddr is the environment variable holding the default listen address.
const EnvAddr = "FIFO_ADDR"

type serveCmd struct {
	addr string
}

func (*serveCmd) Name() string     { return "serve" }
func (*serveCmd) Synopsis() string { return "serve the FIFO computation over HTTP" }
func (*serveCmd) Usage() string {
	return `fifo serve [-addr <host:port>]

  Starts an HTTP service computing the FIFO accounting of the entries posted
  to /api/v1/fifo. See 'fifo topic serve'.

`
}

func (c *serveCmd) SetFlags(f *flag.FlagSet) {
	addr := os.Getenv(EnvAddr)
	if addr == "" {
		addr = ":8080"
	}
	f.StringVar(&c.addr, "addr", addr, "Listen address. Defaults to $"+EnvAddr+", or :8080.")
}

func (c *serveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	log := Logger()
	app := server.New(log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", c.addr).Msg("listening")
		errc <- app.Listen(c.addr)
	}()

	select {
	case err := <-errc:
		fmt.Fprintf(os.Stderr, "Error serving: %v\n", err)
		return subcommands.ExitFailure
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("shutdown")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
