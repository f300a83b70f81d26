package citefile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// decoder carries the options and the accumulated issues of one Decode call.
// It is never shared between calls.
type decoder struct {
	strict bool
	log    *slog.Logger
	issues Issues
}

func newDecoder(opt ParseOpt) *decoder {
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &decoder{strict: opt.Strict, log: log}
}

func (d *decoder) report(is ...Issue) { d.issues = append(d.issues, is...) }

func (d *decoder) reportPtr(is *Issue) bool {
	if is == nil {
		return false
	}
	d.issues = append(d.issues, *is)
	return true
}

func (d *decoder) errorCount() int {
	n := 0
	for _, it := range d.issues {
		if it.Severity == SeverityError {
			n++
		}
	}
	return n
}

// record is a mapping whose keys were resolved to canonical field names.
type record struct {
	d      *decoder
	at     PathRef
	values map[string]any    // canonical -> raw value
	keys   map[string]string // canonical -> spelling used in the document
}

// newRecord resolves every key of raw through table. Keys outside the table
// are unknown fields; two spellings of one field are a duplicate.
func (d *decoder) newRecord(raw map[string]any, table *FieldTable, at PathRef) *record {
	r := &record{d: d, at: at, values: make(map[string]any, len(raw)), keys: make(map[string]string, len(raw))}
	for _, k := range sortedKeys(raw) {
		canon, ok := table.Resolve(k)
		if !ok {
			sev := SeverityWarning
			if d.strict {
				sev = SeverityError
			}
			d.report(at.Field(k).Issue(CodeUnknownField, sev))
			continue
		}
		if first, dup := r.keys[canon]; dup {
			d.report(at.Field(canon).Issue(CodeDuplicateField, SeverityError, "keys", []string{first, k}))
			continue
		}
		r.keys[canon] = k
		r.values[canon] = raw[k]
	}
	return r
}

func (r *record) has(name string) bool {
	_, ok := r.values[name]
	return ok
}

func (r *record) field(name string) PathRef { return r.at.Field(name) }

func (r *record) missing(name string) {
	r.d.report(r.field(name).Issue(CodeMissingRequiredField, SeverityError))
}

func (r *record) mismatch(at PathRef, expected string, got any) {
	r.d.report(at.Issue(CodeTypeMismatch, SeverityError, "expected", expected, "got", kindOf(got)))
}

func (r *record) violation(at PathRef, err error) {
	is := at.Issue(CodeFormatViolation, SeverityError, "reason", err.Error())
	is.Cause = err
	r.d.report(is)
}

// textAt checks that v is non-empty text (or any text when allowEmpty).
func (r *record) textAt(at PathRef, v any, allowEmpty bool) (string, bool) {
	s, ok := v.(string)
	if !ok {
		r.mismatch(at, "text", v)
		return "", false
	}
	if !allowEmpty && strings.TrimSpace(s) == "" {
		r.d.report(at.Issue(CodeEmptyValue, SeverityError))
		return "", false
	}
	return s, true
}

// requiredText decodes a mandatory non-empty text field.
func (r *record) requiredText(name string) string {
	v, ok := r.values[name]
	if !ok {
		r.missing(name)
		return ""
	}
	s, _ := r.textAt(r.field(name), v, false)
	return s
}

// optionalText decodes a text field that is left empty when absent.
func (r *record) optionalText(name string) string {
	v, ok := r.values[name]
	if !ok {
		return ""
	}
	s, _ := r.textAt(r.field(name), v, false)
	return s
}

// textOrNumber accepts text or a number, keeping the number's literal form.
func (r *record) textOrNumber(name string) string {
	v, ok := r.values[name]
	if !ok {
		return ""
	}
	if n, ok := numberText(v); ok {
		return n
	}
	s, _ := r.textAt(r.field(name), v, false)
	return s
}

// date decodes a YYYY-MM-DD field. Timestamps produced by permissive
// document parsers are accepted as their UTC day.
func (r *record) date(name string) *Date {
	v, ok := r.values[name]
	if !ok {
		return nil
	}
	at := r.field(name)
	switch t := v.(type) {
	case time.Time:
		d := DateOf(t)
		return &d
	case string:
		d, err := ParseDate(t)
		if err != nil {
			r.violation(at, fmt.Errorf("%q: %w", t, err))
			return nil
		}
		return &d
	default:
		r.mismatch(at, "date text (YYYY-MM-DD)", v)
		return nil
	}
}

// sequence returns the elements of a sequence field; absence is an empty
// sequence. minItems applies only when the field is present.
func (r *record) sequence(name string, minItems int) ([]any, bool) {
	v, ok := r.values[name]
	if !ok {
		return nil, false
	}
	items, ok := asSequence(v)
	if !ok {
		r.mismatch(r.field(name), "sequence", v)
		return nil, false
	}
	if len(items) < minItems {
		r.d.report(r.field(name).Issue(CodeTooFewItems, SeverityError, "min", minItems))
		return nil, false
	}
	return items, true
}

// stringSet decodes a sequence of unique non-empty strings. Repeated entries
// are reported as warnings and kept once.
func (r *record) stringSet(name string) []string {
	items, ok := r.sequence(name, 1)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(items))
	seen := make(map[string]bool, len(items))
	for i, it := range items {
		at := r.field(name).Index(i)
		s, ok := r.textAt(at, it, false)
		if !ok {
			continue
		}
		if seen[s] {
			r.d.report(at.Issue(CodeDuplicateItem, SeverityWarning, "token", s))
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

// resolveEnum decodes an enumerated field through set.
func resolveEnum[T comparable](r *record, set *EnumSet[T], name string) T {
	v, present := r.values[name]
	val, is := set.Resolve(v, present, r.field(name))
	r.d.reportPtr(is)
	if !present && is == nil {
		r.d.log.Debug("applied default", "path", r.field(name).Pointer(), "value", set.Label(val))
	}
	return val
}

// optionalEnum decodes an enumerated field that may be absent even though
// set has no default; absence yields the zero value.
func optionalEnum[T comparable](r *record, set *EnumSet[T], name string) T {
	var zero T
	if !r.has(name) {
		return zero
	}
	return resolveEnum(r, set, name)
}

var errLicenseAnd = errors.New("license alternatives are combined with OR; AND expressions are not supported")

// license decodes a single SPDX identifier, an "A OR B" expression, or a
// sequence of identifiers. Every alternative must be a known identifier.
func (r *record) license(name string) License {
	v, ok := r.values[name]
	if !ok {
		return nil
	}
	at := r.field(name)
	var tokens []string
	var paths []PathRef
	switch t := v.(type) {
	case string:
		if strings.Contains(t, " AND ") {
			r.violation(at, errLicenseAnd)
			return nil
		}
		for _, tok := range strings.Split(t, " OR ") {
			tokens = append(tokens, strings.TrimSpace(tok))
			paths = append(paths, at)
		}
	default:
		if _, isSeq := asSequence(v); !isSeq {
			r.mismatch(at, "text or sequence of text", v)
			return nil
		}
		items, ok := r.sequence(name, 1)
		if !ok {
			return nil
		}
		for i, it := range items {
			s, ok := r.textAt(at.Index(i), it, false)
			if !ok {
				continue
			}
			tokens = append(tokens, s)
			paths = append(paths, at.Index(i))
		}
	}
	out := make(License, 0, len(tokens))
	seen := map[string]bool{}
	for i, tok := range tokens {
		id, ok := LookupLicense(tok)
		if !ok {
			is := paths[i].Issue(CodeFormatViolation, SeverityError, "reason", fmt.Sprintf("unknown SPDX license identifier %q", tok), "token", tok)
			r.d.report(is)
			continue
		}
		if seen[id] {
			r.d.report(paths[i].Issue(CodeDuplicateItem, SeverityWarning, "token", id))
			continue
		}
		if id != tok {
			r.d.log.Debug("normalized license identifier", "path", paths[i].Pointer(), "from", tok, "to", id)
		}
		seen[id] = true
		out = append(out, id)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// records decodes each element of a sequence field as a mapping with fn.
// Element failures are reported with their index and do not stop the loop.
func records[T any](r *record, name string, minItems int, fn func(raw any, at PathRef) (T, bool)) []T {
	items, ok := r.sequence(name, minItems)
	if !ok {
		return nil
	}
	out := make([]T, 0, len(items))
	for i, it := range items {
		if v, ok := fn(it, r.field(name).Index(i)); ok {
			out = append(out, v)
		}
	}
	return out
}
