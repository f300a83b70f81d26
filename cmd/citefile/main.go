// citefile checks Citation File Format documents (CITATION.cff and JSON
// equivalents) and reports every problem found in each file.
//
// Usage:
//
//	citefile validate [flags] FILE...
//
// The exit status is 0 when every file is valid, 1 when any file fails to
// read or validate, and 2 on usage errors.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/reoring/citefile/i18n"
)

// exitError carries a process exit status out of run.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

var errInvalid = errors.New("one or more files are invalid")

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var coder interface{ ExitCode() int }
		if errors.As(err, &coder) {
			if coder.ExitCode() == 2 {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			}
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		printUsage(stderr)
		return &exitError{code: 2, err: errors.New("missing command")}
	}
	switch args[0] {
	case "validate":
		return runValidate(ctx, args[1:], stdout, stderr)
	case "help", "-h", "--help":
		printUsage(stdout)
		return nil
	default:
		printUsage(stderr)
		return &exitError{code: 2, err: fmt.Errorf("unknown command %q", args[0])}
	}
}

type options struct {
	strict      bool
	format      string
	lang        string
	logLevel    string
	logFormat   string
	concurrency int
}

func runValidate(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	var opts options
	flagSet := pflag.NewFlagSet("validate", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.BoolVar(&opts.strict, "strict", false, "treat unknown fields as errors")
	flagSet.StringVar(&opts.format, "format", "text", "report format: text or json")
	flagSet.StringVar(&opts.lang, "lang", os.Getenv("CITEFILE_LANG"), "message language (en, ja); defaults to $CITEFILE_LANG")
	flagSet.StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	flagSet.StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")
	flagSet.IntVarP(&opts.concurrency, "jobs", "j", 8, "files validated in parallel")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return &exitError{code: 2, err: err}
	}
	if help, _ := flagSet.GetBool("help"); help {
		printUsage(stdout)
		flagSet.SetOutput(stdout)
		flagSet.PrintDefaults()
		return nil
	}
	files := flagSet.Args()
	if len(files) == 0 {
		return &exitError{code: 2, err: errors.New("validate: no files given")}
	}
	if opts.format != "text" && opts.format != "json" {
		return &exitError{code: 2, err: fmt.Errorf("validate: unknown --format %q", opts.format)}
	}
	if opts.concurrency < 1 {
		return &exitError{code: 2, err: fmt.Errorf("validate: --jobs must be at least 1, got %d", opts.concurrency)}
	}
	logger, err := newLogger(stderr, opts.logLevel, opts.logFormat)
	if err != nil {
		return &exitError{code: 2, err: err}
	}
	if opts.lang != "" {
		i18n.SetLanguage(opts.lang)
	}

	results, err := validateFiles(ctx, files, opts, logger)
	if err != nil {
		return err
	}
	if err := writeReport(stdout, opts.format, results); err != nil {
		return err
	}
	for _, r := range results {
		if !r.Valid {
			return &exitError{code: 1, err: errInvalid}
		}
	}
	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", level)
	}
	handlerOpts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q", format)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprint(w, `citefile checks citation metadata files.

Usage:
  citefile validate [flags] FILE...

Examples:
  # Check the citation file of the current project
  citefile validate CITATION.cff

  # Reject unknown keys and print machine-readable results
  citefile validate --strict --format json CITATION.cff other/citation.json

`)
}
