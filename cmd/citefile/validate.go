package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	gojson "github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	"github.com/reoring/citefile"
)

// fileResult is the outcome for one input file.
type fileResult struct {
	File     string          `json:"file"`
	Valid    bool            `json:"valid"`
	Title    string          `json:"title,omitempty"`
	Error    string          `json:"error,omitempty"`
	Findings citefile.Issues `json:"findings,omitempty"`
}

// validateFiles checks every file concurrently. Results keep the order of
// files regardless of completion order.
func validateFiles(ctx context.Context, files []string, opts options, logger *slog.Logger) ([]fileResult, error) {
	results := make([]fileResult, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.concurrency)
	for i, file := range files {
		i, file := i, file
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = validateFile(file, opts, logger)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func validateFile(file string, opts options, logger *slog.Logger) fileResult {
	log := logger.With("file", file)
	res := fileResult{File: file}
	c, findings, err := citefile.ReadFile(file, citefile.ParseOpt{Strict: opts.strict, Logger: log})
	if err != nil {
		if issues, ok := citefile.AsIssues(err); ok {
			res.Findings = issues
		} else {
			res.Error = err.Error()
		}
		log.Info("citation file rejected", "error", err)
		return res
	}
	res.Valid = true
	res.Title = c.Title
	res.Findings = findings
	log.Info("citation file accepted", "findings", len(findings))
	return res
}

func writeReport(w io.Writer, format string, results []fileResult) error {
	if format == "json" {
		enc := gojson.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}
	var b strings.Builder
	for _, r := range results {
		switch {
		case r.Error != "":
			fmt.Fprintf(&b, "%s: error: %s\n", r.File, r.Error)
		case r.Valid:
			fmt.Fprintf(&b, "%s: valid (%q)\n", r.File, r.Title)
		default:
			fmt.Fprintf(&b, "%s: invalid\n", r.File)
		}
		for _, is := range r.Findings {
			fmt.Fprintf(&b, "  %s %s: %s\n", is.Severity, is.Path, is.Message)
			if is.Hint != "" {
				fmt.Fprintf(&b, "      hint: %s\n", is.Hint)
			}
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	return nil
}
