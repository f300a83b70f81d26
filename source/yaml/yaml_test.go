package yaml

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Scalars(t *testing.T) {
	src := `
title: My Tool
version: 1.10
year: 2021
open: true
none: ~
date-released: 2021-08-11
bad-date: 2021-02-30
`
	v, err := Decode([]byte(src))
	require.NoError(t, err)
	m, ok := v.(map[string]any)
	require.True(t, ok)

	assert.Equal(t, "My Tool", m["title"])
	assert.Equal(t, Number("1.10"), m["version"])
	assert.Equal(t, Number("2021"), m["year"])
	assert.Equal(t, true, m["open"])
	assert.Nil(t, m["none"])
	assert.Contains(t, m, "none")
	assert.Equal(t, "2021-08-11", m["date-released"])
	assert.Equal(t, "2021-02-30", m["bad-date"])
}

func TestNumber(t *testing.T) {
	n := Number("0x1F")
	i, err := n.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(31), i)

	f, err := Number("1.5").Float64()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)
	assert.Equal(t, "1.5", Number("1.5").String())
}

func TestDecode_DuplicateKey(t *testing.T) {
	src := "title: a\nversion: 1\ntitle: b\n"
	_, err := Decode([]byte(src))
	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, "title", dup.Key)
	assert.Equal(t, "/title", dup.Pointer)
	assert.Equal(t, 1, dup.FirstLine)
	assert.Equal(t, 3, dup.Line)
	assert.Contains(t, dup.Error(), `"title"`)
}

func TestDecode_AliasAndMerge(t *testing.T) {
	src := `
base: &me
  given-names: Ada
  family-names: Lovelace
authors:
  - *me
contact:
  - <<: *me
    email: ada@example.org
    family-names: King
`
	v, err := Decode([]byte(src))
	require.NoError(t, err)
	m := v.(map[string]any)

	authors := m["authors"].([]any)
	require.Len(t, authors, 1)
	assert.Equal(t, "Ada", authors[0].(map[string]any)["given-names"])

	contact := m["contact"].([]any)[0].(map[string]any)
	assert.Equal(t, "Ada", contact["given-names"])
	assert.Equal(t, "King", contact["family-names"])
	assert.Equal(t, "ada@example.org", contact["email"])
}

func TestDecode_Empty(t *testing.T) {
	v, err := Decode(nil)
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDecode_MultipleDocuments(t *testing.T) {
	_, err := Decode([]byte("a: 1\n---\nb: 2\n"))
	assert.ErrorIs(t, err, ErrMultipleDocuments)
}

func TestDecode_Syntax(t *testing.T) {
	_, err := Decode([]byte("title: [unclosed\n"))
	assert.Error(t, err)
}

func TestDecode_NestedDuplicateKeyPointer(t *testing.T) {
	src := "authors:\n  - name: A\n  - name: B\n    a/b: 1\n    a/b: 2\n"
	_, err := Decode([]byte(src))
	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup), "got %v", err)
	assert.Equal(t, "/authors/1/a~1b", dup.Pointer)
	assert.Equal(t, 5, dup.Line)
}

// aliasBomb builds a document whose last key expands to 10^levels nodes.
func aliasBomb(levels int) []byte {
	var b strings.Builder
	b.WriteString("a0: &a0 [x, x, x, x, x, x, x, x, x, x]\n")
	for i := 1; i <= levels; i++ {
		prev := fmt.Sprintf("*a%d", i-1)
		fmt.Fprintf(&b, "a%d: &a%d [%s]\n", i, i, strings.TrimSuffix(strings.Repeat(prev+", ", 10), ", "))
	}
	return []byte(b.String())
}

func TestDecode_ExcessiveAliasing(t *testing.T) {
	data := aliasBomb(6)
	require.Less(t, len(data), 512)
	_, err := Decode(data)
	assert.ErrorIs(t, err, ErrExcessiveAliasing)
}

func TestDecode_ModestAliasingAllowed(t *testing.T) {
	v, err := Decode(aliasBomb(2))
	require.NoError(t, err)
	a2 := v.(map[string]any)["a2"].([]any)
	assert.Len(t, a2, 10)
	assert.Len(t, a2[9].([]any), 10)
}
