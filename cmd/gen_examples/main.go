package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vk/gidgo/internal/cli"
	"github.com/vk/gidgo/internal/generator"
)

// main is the entrypoint for the gen_examples binary, which writes the
// benchmark corpus declared by an HCL suite file.
func main() {
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
	flagSet := flag.NewFlagSet("gen_examples", flag.ContinueOnError)
	flagSet.SetOutput(outW)
	suiteFlag := flagSet.String("c", "", "Path to an HCL suite file. The built-in default suite is used when empty.")
	outFlag := flagSet.String("o", "", "Output directory, overriding the suite's output_dir.")
	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return &cli.ExitError{Code: cli.ExitIO, Message: err.Error()}
	}

	suite := generator.DefaultSuite()
	if *suiteFlag != "" {
		var err error
		suite, err = generator.LoadSuite(*suiteFlag)
		if err != nil {
			return &cli.ExitError{Code: cli.ExitIO, Message: err.Error()}
		}
	}
	if *outFlag != "" {
		suite.OutputDir = *outFlag
	}

	examples, err := suite.Examples()
	if err != nil {
		return &cli.ExitError{Code: cli.ExitIO, Message: err.Error()}
	}
	if err := os.MkdirAll(suite.OutputDir, 0o755); err != nil {
		return &cli.ExitError{Code: cli.ExitIO, Message: err.Error()}
	}
	for _, ex := range examples {
		if err := ex.Save(suite.OutputDir); err != nil {
			return &cli.ExitError{Code: cli.ExitIO, Message: err.Error()}
		}
		fmt.Fprintf(outW, "wrote %s (%d updates)\n", ex.Name, len(ex.Input))
	}
	fmt.Fprintf(outW, "%d examples in %s\n", len(examples), suite.OutputDir)
	return nil
}
