package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/gidgo/internal/cli"
	"github.com/vk/gidgo/internal/ctxlog"
	"github.com/vk/gidgo/internal/driver"
	"github.com/vk/gidgo/internal/example"
)

// main is the entrypoint for the run_example binary.
func main() {
	// Use a minimal logger until the full one is configured.
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

// run encapsulates the binary's logic for easier testing and error handling.
func run(outW io.Writer, args []string) error {
	cfg, shouldExit, err := cli.Parse("run_example", args, outW, false)
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

	failed := false
	for _, a := range cfg.Algorithms {
		res := driver.RunExample(ctx, ex, a, cfg.Timeout)
		fmt.Fprintf(outW, "%-8s %6d ms  %s\n", a, res.Elapsed.Milliseconds(), verdict(res))
		if ex.Expected == nil && res.Output != nil {
			data, err := json.Marshal(res.Output)
			if err != nil {
				return &cli.ExitError{Code: cli.ExitIO, Message: err.Error()}
			}
			fmt.Fprintf(outW, "%s\n", data)
		}
		if !res.Correct {
			failed = true
		}
	}
	if failed {
		return &cli.ExitError{Code: cli.ExitMismatch, Message: "one or more algorithms failed"}
	}
	return nil
}

func verdict(res driver.Result) string {
	switch {
	case res.TimedOut:
		return "timeout"
	case res.Correct:
		return "ok"
	default:
		return "mismatch"
	}
}
