package citefile

import (
	"fmt"
	"strings"
)

// EnumVariant is one value of a closed enumeration together with the labels
// it is written as.
type EnumVariant[T comparable] struct {
	Value   T
	Label   string   // canonical spelling
	Aliases []string // additional accepted spellings
}

// EnumSet matches raw tokens against a closed set of variants. Comparison is
// case-insensitive over labels and aliases. An EnumSet is immutable; use
// WithDefault to derive one with a default.
type EnumSet[T comparable] struct {
	variants []EnumVariant[T]
	index    map[string]int
	def      *T
}

// NewEnumSet builds a matcher. It panics when two variants share a spelling.
func NewEnumSet[T comparable](variants ...EnumVariant[T]) *EnumSet[T] {
	e := &EnumSet[T]{variants: variants, index: make(map[string]int, len(variants))}
	for i, v := range variants {
		for _, sp := range append([]string{v.Label}, v.Aliases...) {
			k := fold(sp)
			if j, dup := e.index[k]; dup && j != i {
				panic(fmt.Sprintf("citefile: enum spelling %q used by %q and %q", sp, variants[j].Label, v.Label))
			}
			e.index[k] = i
		}
	}
	return e
}

func fold(s string) string { return strings.ToLower(s) }

// WithDefault returns a copy of the set that yields v when the field is absent.
func (e *EnumSet[T]) WithDefault(v T) *EnumSet[T] {
	cp := *e
	cp.def = &v
	return &cp
}

// Default returns the configured default.
func (e *EnumSet[T]) Default() (T, bool) {
	if e.def == nil {
		var zero T
		return zero, false
	}
	return *e.def, true
}

// Match returns the variant value whose label or alias equals token,
// ignoring case.
func (e *EnumSet[T]) Match(token string) (T, bool) {
	i, ok := e.index[fold(token)]
	if !ok {
		var zero T
		return zero, false
	}
	return e.variants[i].Value, true
}

// Label returns the canonical spelling of v, or "" when v is not a variant.
func (e *EnumSet[T]) Label(v T) string {
	for _, vv := range e.variants {
		if vv.Value == v {
			return vv.Label
		}
	}
	return ""
}

// Labels lists the canonical spellings in declaration order.
func (e *EnumSet[T]) Labels() []string {
	out := make([]string, len(e.variants))
	for i, v := range e.variants {
		out[i] = v.Label
	}
	return out
}

// Resolve decodes a raw document value for the field at the given path.
// present reports whether the key appeared in the document at all.
func (e *EnumSet[T]) Resolve(raw any, present bool, at PathRef) (T, *Issue) {
	var zero T
	if !present {
		if e.def != nil {
			return *e.def, nil
		}
		is := at.Issue(CodeMissingRequiredField, SeverityError)
		return zero, &is
	}
	token, ok := raw.(string)
	if !ok {
		is := at.Issue(CodeTypeMismatch, SeverityError, "expected", "text", "got", kindOf(raw))
		return zero, &is
	}
	v, ok := e.Match(token)
	if !ok {
		is := at.Issue(CodeInvalidEnumValue, SeverityError, "token", token)
		is.Hint = hintOneOf(e.Labels())
		return zero, &is
	}
	return v, nil
}

func hintOneOf(labels []string) string {
	const maxShown = 8
	if len(labels) > maxShown {
		return "expected one of " + strings.Join(labels[:maxShown], ", ") + fmt.Sprintf(", ... (%d values)", len(labels))
	}
	return "expected one of " + strings.Join(labels, ", ")
}
