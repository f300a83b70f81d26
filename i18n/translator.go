package i18n

import (
	"strings"
	"sync"

	"golang.org/x/text/language"
)

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "field", "token" or "keys").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator. Templates use
// {name} placeholders filled from data.
type dictTranslator struct{ lang string }

var dictionaries = map[string]map[string]string{
	"en": {
		"missing_required_field": "required field {field} is missing",
		"type_mismatch":          "field {field} must be {expected}",
		"empty_value":            "field {field} must not be empty",
		"too_few_items":          "field {field} needs at least {min} item(s)",
		"invalid_enum_value":     "\"{token}\" is not a valid value for {field}",
		"ambiguous_variant":      "record for {field} matches more than one shape: {variants}",
		"unrecognized_variant":   "record for {field} matches no known shape (keys: {keys})",
		"format_violation":       "field {field} is malformed: {reason}",
		"unknown_field":          "unknown field {field}",
		"duplicate_field":        "field {field} is given more than once ({keys})",
		"structural_failure":     "document cannot be decoded: {reason}",
		"preferred_citation_set": "a preferred citation is set; citing it instead of the work itself may conflict with software and data citation principles",
		"license_unspecified":    "no license or license-url is given; licensing is unspecified",
		"duplicate_item":         "\"{token}\" appears more than once in {field}",
	},
	"ja": {
		"missing_required_field": "必須フィールド {field} がありません",
		"type_mismatch":          "フィールド {field} は {expected} である必要があります",
		"empty_value":            "フィールド {field} は空にできません",
		"too_few_items":          "フィールド {field} には少なくとも {min} 個の要素が必要です",
		"invalid_enum_value":     "\"{token}\" は {field} の有効な値ではありません",
		"ambiguous_variant":      "{field} のレコードが複数の形に一致します: {variants}",
		"unrecognized_variant":   "{field} のレコードがどの形にも一致しません (キー: {keys})",
		"format_violation":       "フィールド {field} の形式が不正です: {reason}",
		"unknown_field":          "未知のフィールド {field} です",
		"duplicate_field":        "フィールド {field} が重複しています ({keys})",
		"structural_failure":     "文書を解析できません: {reason}",
		"preferred_citation_set": "preferred-citation が設定されています。作品そのものではなく別の文献を引用させることは、ソフトウェア・データ引用の原則に反する可能性があります",
		"license_unspecified":    "license も license-url もありません。ライセンスが不明です",
		"duplicate_item":         "\"{token}\" が {field} に重複しています",
	},
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	tmpl, ok := dictionaries[t.lang][code]
	if !ok {
		tmpl, ok = dictionaries["en"][code]
	}
	if !ok {
		return code
	}
	if len(data) == 0 {
		return tmpl
	}
	pairs := make([]string, 0, len(data)*2)
	for k, v := range data {
		pairs = append(pairs, "{"+k+"}", v)
	}
	return strings.NewReplacer(pairs...).Replace(tmpl)
}

var (
	mu                           = sync.RWMutex{}
	currentTranslator Translator = dictTranslator{lang: "en"}
)

var (
	supported = []string{"en", "ja"}
	matcher   = language.NewMatcher([]language.Tag{language.English, language.Japanese})
)

// Match maps a BCP 47 tag or a POSIX locale ("ja_JP.UTF-8") to the closest
// built-in dictionary, falling back to "en".
func Match(lang string) string {
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(lang, "_", "-"))
	if err != nil {
		return "en"
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return "en"
	}
	return supported[idx]
}

// SetLanguage switches the built-in Translator language. lang is matched
// with Match, so "ja-JP" and "ja_JP.UTF-8" select Japanese.
func SetLanguage(lang string) {
	lang = Match(lang)
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
