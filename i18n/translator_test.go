package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	msg := T("missing_required_field", map[string]string{"field": "title"})
	assert.Equal(t, "required field title is missing", msg)

	SetLanguage("ja")
	defer SetLanguage("en")
	msg = T("missing_required_field", map[string]string{"field": "title"})
	assert.Equal(t, "必須フィールド title がありません", msg)
}

func TestTranslator_UnknownCodeAndLanguage(t *testing.T) {
	assert.Equal(t, "no_such_code", T("no_such_code", nil))

	SetLanguage("fr")
	defer SetLanguage("en")
	assert.Equal(t, "unknown field x", T("unknown_field", map[string]string{"field": "x"}))
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	assert.Equal(t, "X:empty_value", T("empty_value", nil))

	SetTranslator(nil)
	assert.Equal(t, "field f must not be empty", T("empty_value", map[string]string{"field": "f"}))
}

func TestMatch(t *testing.T) {
	cases := map[string]string{
		"ja":          "ja",
		"ja-JP":       "ja",
		"ja_JP.UTF-8": "ja",
		"en_US.UTF-8": "en",
		"en":          "en",
		"fr":          "en",
		"":            "en",
		"C":           "en",
		"!!":          "en",
	}
	for in, want := range cases {
		assert.Equal(t, want, Match(in), in)
	}
}
