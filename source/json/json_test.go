package json

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_KeepsNumberText(t *testing.T) {
	v, err := Decode([]byte(`{"version": 1.10, "title": "x", "keywords": ["a"]}`))
	require.NoError(t, err)
	m := v.(map[string]any)
	n, ok := m["version"].(interface{ String() string })
	require.True(t, ok, "version is %T", m["version"])
	assert.Equal(t, "1.10", n.String())
	assert.Equal(t, "x", m["title"])
	assert.Equal(t, []any{"a"}, m["keywords"])
}

func TestDecode_CommentsAndTrailingCommas(t *testing.T) {
	src := `{
  // the title
  "title": "x", /* block */
  "authors": [{"name": "ACME"},],
}`
	v, err := Decode([]byte(src))
	require.NoError(t, err)
	m := v.(map[string]any)
	assert.Equal(t, "x", m["title"])
	assert.Len(t, m["authors"], 1)
}

func TestDecode_TrailingData(t *testing.T) {
	_, err := Decode([]byte(`{"a": 1} {"b": 2}`))
	assert.ErrorIs(t, err, ErrTrailingData)
}

func TestDecode_Empty(t *testing.T) {
	v, err := Decode([]byte("  \n"))
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestDecode_Syntax(t *testing.T) {
	_, err := Decode([]byte(`{"a": }`))
	assert.Error(t, err)
}

func TestDecode_DuplicateKeys(t *testing.T) {
	cases := map[string]string{
		`{"title":"First","title":"Second"}`:                   "/title",
		`{"authors":[{"name":"A"},{"name":"B","name":"C"}]}`:   "/authors/1/name",
		`{"a":{"x/y":1,"b":[1,[2],{"k":1}],"x/y":2}}`:          "/a/x~1y",
		`{"a":[{"k":1},{"k":2}],"b":{"k":1},"c":{"d":{"k":1}}}`: "",
	}
	for src, want := range cases {
		v, err := Decode([]byte(src))
		if want == "" {
			require.NoError(t, err, src)
			assert.NotNil(t, v)
			continue
		}
		var dup *DuplicateKeyError
		require.True(t, errors.As(err, &dup), "%s: got %v", src, err)
		assert.Equal(t, want, dup.Pointer, src)
		assert.Nil(t, v)
	}
}

func TestDecode_DuplicateKeysAfterComments(t *testing.T) {
	src := `{
  "title": "a", // first
  /* again */ "title": "b"
}`
	_, err := Decode([]byte(src))
	var dup *DuplicateKeyError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "title", dup.Key)
}
