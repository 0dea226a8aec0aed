package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vk/gidgo/internal/cli"
	"github.com/vk/gidgo/internal/ctxlog"
	"github.com/vk/gidgo/internal/driver"
	"github.com/vk/gidgo/internal/stream"
)

// main is the entrypoint for the live_server binary: a websocket feed that
// classifies an update stream interactively, plus Prometheus metrics.
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
	flagSet := flag.NewFlagSet("live_server", flag.ContinueOnError)
	flagSet.SetOutput(outW)
	addrFlag := flagSet.String("addr", ":8080", "Listen address.")
	algFlag := flagSet.String("a", "jump", "Detector algorithm backing each connection.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Log level. Options: 'debug', 'info', 'warn', 'error'.")
	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &cli.ExitError{Code: cli.ExitIO, Message: err.Error()}
	}

	alg, err := driver.Parse(*algFlag)
	if err != nil {
		return &cli.ExitError{Code: cli.ExitIO, Message: err.Error()}
	}
	logger := cli.NewLogger(*logLevelFlag, *logFormatFlag, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = ctxlog.WithLogger(ctx, logger)

	handler := stream.New(alg.New)
	server := &http.Server{
		Addr:    *addrFlag,
		Handler: handler.Routes(),
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("live server listening", "addr", *addrFlag, "algorithm", alg.String())
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		logger.Info("live server stopped")
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
