package citefile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reoring/citefile"
)

type color int

const (
	red color = iota + 1
	green
)

var colors = citefile.NewEnumSet(
	citefile.EnumVariant[color]{Value: red, Label: "red", Aliases: []string{"rouge"}},
	citefile.EnumVariant[color]{Value: green, Label: "green"},
)

func TestEnumSet_Match(t *testing.T) {
	for _, tok := range []string{"red", "RED", "Red", "ROUGE"} {
		v, ok := colors.Match(tok)
		assert.True(t, ok, tok)
		assert.Equal(t, red, v, tok)
	}
	for _, tok := range []string{"blue", " red", "red ", ""} {
		_, ok := colors.Match(tok)
		assert.False(t, ok, "%q", tok)
	}
	assert.Equal(t, "green", colors.Label(green))
	assert.Equal(t, "", colors.Label(color(9)))
}

func TestEnumSet_Resolve(t *testing.T) {
	at := citefile.RootPath().Field("color")

	_, is := colors.Resolve(nil, false, at)
	require.NotNil(t, is)
	assert.Equal(t, citefile.CodeMissingRequiredField, is.Code)
	assert.Equal(t, "/color", is.Path)

	withDef := colors.WithDefault(green)
	v, is := withDef.Resolve(nil, false, at)
	assert.Nil(t, is)
	assert.Equal(t, green, v)
	_, hasDef := colors.Default()
	assert.False(t, hasDef, "WithDefault must not modify the receiver")

	_, is = colors.Resolve(3, true, at)
	require.NotNil(t, is)
	assert.Equal(t, citefile.CodeTypeMismatch, is.Code)

	_, is = colors.Resolve("blue", true, at)
	require.NotNil(t, is)
	assert.Equal(t, citefile.CodeInvalidEnumValue, is.Code)
	assert.Equal(t, "blue", is.Params["token"])
	assert.Contains(t, is.Message, `"blue"`)
	assert.Contains(t, is.Message, "color")
	assert.Equal(t, "expected one of red, green", is.Hint)

	// a present value never falls back to the default
	_, is = withDef.Resolve("blue", true, at)
	require.NotNil(t, is)
	assert.Equal(t, citefile.CodeInvalidEnumValue, is.Code)
}

func TestEnumSet_DuplicateSpellingPanics(t *testing.T) {
	assert.Panics(t, func() {
		citefile.NewEnumSet(
			citefile.EnumVariant[int]{Value: 1, Label: "a"},
			citefile.EnumVariant[int]{Value: 2, Label: "A"},
		)
	})
}
