package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vk/gidgo/internal/driver"
)

// Exit codes of the driver binaries.
const (
	ExitOK       = 0
	ExitMismatch = 1
	ExitIO       = 2
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Config is the parsed command line shared by run_example and run_compare.
type Config struct {
	// Prefix is the example path without the _in.json suffix.
	Prefix string
	// Algorithms to run, in order.
	Algorithms []driver.Algorithm
	Timeout    time.Duration
	LogLevel   string
	LogFormat  string
}

// Parse processes command-line arguments for one of the driver binaries.
// compareAll selects the run_compare default of running every algorithm.
// It returns the populated config, or a boolean indicating the program
// should exit cleanly (help), or an ExitError carrying the exit code.
func Parse(name string, args []string, output io.Writer, compareAll bool) (*Config, bool, error) {
	flagSet := flag.NewFlagSet(name, flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprintf(output, `
%[1]s - run guided-incremental-digraph detectors on an example.

Usage:
  %[1]s [options] PREFIX

Arguments:
  PREFIX
    Path to an example without the file extension; PREFIX_in.json must
    exist and PREFIX_expect.json is used as the expectation if present.

Options:
`, name)
		flagSet.PrintDefaults()
	}

	algFlag := flagSet.String("a", "", "Algorithms to run: comma-separated names or letters (n,s,b,l,j).")
	exclFlag := flagSet.String("e", "", "Algorithms to exclude from the run.")
	timeoutFlag := flagSet.Uint("t", 10, "Per-algorithm timeout in seconds.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Log level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitIO, Message: err.Error()}
	}

	if flagSet.NArg() != 1 {
		flagSet.Usage()
		if flagSet.NArg() == 0 {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitIO, Message: "expected exactly one example prefix"}
	}

	cfg := &Config{
		Prefix:    flagSet.Arg(0),
		Timeout:   time.Duration(*timeoutFlag) * time.Second,
		LogFormat: strings.ToLower(*logFormatFlag),
		LogLevel:  strings.ToLower(*logLevelFlag),
	}
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: ExitIO, Message: "invalid log-format: must be 'text' or 'json'"}
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: ExitIO, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	selected, err := driver.ParseList(*algFlag)
	if err != nil {
		return nil, false, &ExitError{Code: ExitIO, Message: err.Error()}
	}
	excluded, err := driver.ParseList(*exclFlag)
	if err != nil {
		return nil, false, &ExitError{Code: ExitIO, Message: err.Error()}
	}
	switch {
	case len(selected) > 0:
		cfg.Algorithms = selected
	case len(excluded) > 0 || compareAll:
		cfg.Algorithms = driver.Excluding(excluded)
	default:
		cfg.Algorithms = []driver.Algorithm{driver.Naive}
	}
	if len(cfg.Algorithms) == 0 {
		return nil, false, &ExitError{Code: ExitIO, Message: "no algorithms left to run"}
	}
	return cfg, false, nil
}
