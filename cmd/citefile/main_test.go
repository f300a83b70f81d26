package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	gojson "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/citefile/i18n"
)

func fixture(name string) string { return filepath.Join("..", "..", "testdata", name) }

func exitCode(t *testing.T, err error) int {
	t.Helper()
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	require.True(t, errors.As(err, &coder), "unexpected error %v", err)
	return coder.ExitCode()
}

func TestRun_ValidFile(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"validate", fixture("valid.cff")}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), `valid ("My Research Software")`)
}

func TestRun_InvalidFileExitsOne(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"validate", fixture("valid.cff"), fixture("invalid.cff")}, &stdout, &stderr)
	assert.Equal(t, 1, exitCode(t, err))

	out := stdout.String()
	assert.Contains(t, out, fixture("invalid.cff")+": invalid")
	assert.Contains(t, out, "error /date-released")
	assert.Contains(t, out, "error /authors/1: record for authors matches more than one shape")
	// argument order is kept
	assert.Less(t, bytes.Index(stdout.Bytes(), []byte("valid.cff")), bytes.Index(stdout.Bytes(), []byte("invalid.cff")))
}

func TestRun_JSONReport(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"validate", "--format", "json", fixture("citation.json"), fixture("missing.cff")}
	err := run(context.Background(), args, &stdout, &stderr)
	assert.Equal(t, 1, exitCode(t, err))

	var results []struct {
		File     string `json:"file"`
		Valid    bool   `json:"valid"`
		Error    string `json:"error"`
		Findings []struct {
			Code     string `json:"code"`
			Severity string `json:"severity"`
		} `json:"findings"`
	}
	require.NoError(t, gojson.Unmarshal(stdout.Bytes(), &results))
	require.Len(t, results, 2)

	assert.True(t, results[0].Valid)
	assert.Empty(t, results[0].Error)

	assert.False(t, results[1].Valid)
	assert.Contains(t, results[1].Error, "missing.cff")
}

func TestRun_StrictRejectsUnknownFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "CITATION.cff")
	writeFile(t, path, "cff-version: 1.2.0\ntitle: T\nauthors:\n  - name: ACME\nfoo: 1\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"validate", path}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), "warning /foo")

	stdout.Reset()
	err := run(context.Background(), []string{"validate", "--strict", path}, &stdout, &stderr)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, stdout.String(), "error /foo")
}

func TestRun_Language(t *testing.T) {
	defer i18n.SetLanguage("en")
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"validate", "--lang", "ja", fixture("invalid.cff")}, &stdout, &stderr)
	assert.Equal(t, 1, exitCode(t, err))
	assert.Contains(t, stdout.String(), "フィールド date-released の形式が不正です")
}

func TestRun_DebugLogging(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{"validate", "--log-level", "debug", "--log-format", "json", fixture("valid.cff")}
	require.NoError(t, run(context.Background(), args, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `"msg":"selected record variant"`)
}

func TestRun_UsageErrors(t *testing.T) {
	cases := [][]string{
		nil,
		{"frobnicate"},
		{"validate"},
		{"validate", "--format", "xml", "a.cff"},
		{"validate", "--log-level", "loud", "a.cff"},
		{"validate", "--log-format", "xml", "a.cff"},
		{"validate", "--jobs", "0", "a.cff"},
		{"validate", "--no-such-flag", "a.cff"},
	}
	for _, args := range cases {
		var stdout, stderr bytes.Buffer
		err := run(context.Background(), args, &stdout, &stderr)
		assert.Equal(t, 2, exitCode(t, err), "%v", args)
	}
}
