package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/gidgo/internal/cli"
	"github.com/vk/gidgo/internal/ctxlog"
	"github.com/vk/gidgo/internal/driver"
	"github.com/vk/gidgo/internal/example"
)

// main is the entrypoint for the run_compare binary.
func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.ExitIO)
	}
}

func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse("run_compare", args, outW, true)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(cfg.LogLevel, cfg.LogFormat, os.Stderr)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	ex, err := example.Load(cfg.Prefix)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitIO, Message: err.Error()}
	}

	fmt.Fprintf(outW, "=== %s: %d updates ===\n", ex.Name, len(ex.Input))
	fmt.Fprintf(outW, "%-8s %10s %12s %12s  %s\n", "alg", "time (ms)", "work", "space", "result")
	failed := false
	for _, res := range driver.RunCompare(ctx, ex, cfg.Algorithms, cfg.Timeout) {
		verdict := "ok"
		switch {
		case res.TimedOut:
			verdict = "timeout"
		case !res.Correct:
			verdict = "mismatch"
		}
		fmt.Fprintf(outW, "%-8s %10d %12d %12d  %s\n",
			res.Algorithm, res.Elapsed.Milliseconds(), res.Work, res.Space, verdict)
		if !res.Correct {
			failed = true
		}
	}
	if failed {
		return &cli.ExitError{Code: cli.ExitMismatch, Message: "one or more algorithms failed"}
	}
	return nil
}
