// Command gridpath visualizes the pathfinding algorithm set.
//
// Default mode runs the terminal visualizer: endless iterations of
// fresh endpoints and obstacles, each traversed by every configured
// algorithm in sequence (quit with q or Esc, skip a run with space).
// With -serve the same engine is exposed over HTTP instead.
//
// Usage:
//
//	gridpath [-scenario file.hcl] [-serve addr] [-log-level level]
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/server"
	"github.com/katalvlaran/gridpath/internal/viz"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run holds the application logic so main stays a thin exit-code shim.
func run(args []string) error {
	fs := flag.NewFlagSet("gridpath", flag.ContinueOnError)
	scenarioPath := fs.String("scenario", "", "path to an HCL scenario file")
	serveAddr := fs.String("serve", "", "serve the HTTP API on this address instead of the terminal visualizer")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return err
	}

	logger, err := newLogger(*logLevel)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	if *serveAddr != "" {
		return server.New(logger).Run(*serveAddr)
	}

	scenario := config.Default()
	if *scenarioPath != "" {
		if scenario, err = config.Load(*scenarioPath); err != nil {
			return err
		}
		logger.Info("scenario loaded", "path", *scenarioPath,
			"grid", fmt.Sprintf("%dx%d", scenario.Width, scenario.Height),
			"algorithms", len(scenario.Algorithms))
	}

	runner, err := viz.New(scenario, logger)
	if err != nil {
		return err
	}
	defer runner.Close()

	return runner.Run()
}

// newLogger builds the process-wide slog text logger on stderr.
func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
