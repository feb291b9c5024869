// Command statfinder prints the games and stat leaders for one date. It
// starts the relay in-process, queries it once, and shuts it down.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"os"
	"time"

	"github.com/preston-bernstein/nba-stat-finder/internal/config"
	"github.com/preston-bernstein/nba-stat-finder/internal/gateway"
	"github.com/preston-bernstein/nba-stat-finder/internal/logging"
	"github.com/preston-bernstein/nba-stat-finder/internal/server"
)

const stopTimeout = 5 * time.Second

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("statfinder", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var date, port string
	fs.StringVar(&date, "date", "", "date to query (required)")
	fs.StringVar(&date, "d", "", "shorthand for --date")
	fs.StringVar(&port, "port", "0", "port for the in-process relay; 0 picks a free one")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if date == "" {
		fmt.Fprintln(stderr, "missing required flag: --date")
		fs.Usage()
		return 2
	}

	validDate, err := gateway.ValidateDate(date)
	if err != nil {
		fmt.Fprintln(stdout, "Invalid date")
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	cfg.Port = port
	cfg.Metrics.Enabled = false

	logger := logging.NewLogger(logging.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: stderr,
	})

	srv := server.New(cfg, logger)
	if err := srv.Start(ctx); err != nil {
		fmt.Fprintln(stderr, "starting relay:", err)
		return 1
	}
	defer func() {
		stopCtx, cancel := context.WithTimeout(context.Background(), stopTimeout)
		defer cancel()
		_ = srv.Stop(stopCtx)
	}()

	baseURL, err := localURL(srv.Addr())
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	text, err := gateway.NewClient(baseURL, nil).Query(ctx, validDate)
	var statusErr *gateway.StatusError
	switch {
	case err == nil:
		fmt.Fprintln(stdout, text)
		return 0
	case errors.As(err, &statusErr):
		fmt.Fprintln(stdout, text)
		return 1
	default:
		fmt.Fprintln(stderr, err)
		return 1
	}
}

// localURL turns a listener address such as "[::]:8080" into a loopback URL.
func localURL(addr string) (string, error) {
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "", fmt.Errorf("relay address %q: %w", addr, err)
	}
	return "http://127.0.0.1:" + port, nil
}
