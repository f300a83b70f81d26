package citefile

import (
	"sort"
	"strings"
)

// Variant is one shape of a polymorphic record. A raw record is of this
// variant when every Required field is present.
type Variant[T any] struct {
	Name     string
	Fields   *FieldTable
	Required []string
	Decode   func(r *record) T
}

// VariantSet selects and decodes one of several disjoint record shapes.
// Selection is structural: it never falls back to a default variant.
type VariantSet[T any] struct {
	variants []Variant[T]
	union    *FieldTable
}

// NewVariantSet builds a selector over variants. Keys are resolved through
// the union of all variant tables before selection, so alternate spellings
// count toward the required keys.
func NewVariantSet[T any](variants ...Variant[T]) *VariantSet[T] {
	tables := make([]*FieldTable, len(variants))
	for i, v := range variants {
		tables[i] = v.Fields
	}
	return &VariantSet[T]{variants: variants, union: Merge(tables...)}
}

// Select returns the single variant whose required fields are all present.
// When several match it returns nil and their names; when none match it
// returns nil, nil.
func (s *VariantSet[T]) Select(present map[string]bool) (*Variant[T], []string) {
	var matched []int
	for i, v := range s.variants {
		if hasAll(present, v.Required) {
			matched = append(matched, i)
		}
	}
	switch len(matched) {
	case 0:
		return nil, nil
	case 1:
		return &s.variants[matched[0]], nil
	}
	names := make([]string, len(matched))
	for i, m := range matched {
		names[i] = s.variants[m].Name
	}
	return nil, names
}

func hasAll(present map[string]bool, required []string) bool {
	for _, k := range required {
		if !present[k] {
			return false
		}
	}
	return true
}

// closest returns the variant missing the fewest required fields and the
// names it misses; used for diagnostics only.
func (s *VariantSet[T]) closest(present map[string]bool) (string, []string) {
	best, bestMissing := "", []string(nil)
	for _, v := range s.variants {
		var missing []string
		for _, k := range v.Required {
			if !present[k] {
				missing = append(missing, k)
			}
		}
		if best == "" || len(missing) < len(bestMissing) {
			best, bestMissing = v.Name, missing
		}
	}
	return best, bestMissing
}

// decode selects a variant for raw and decodes it. ok is false when raw is
// not a mapping or matches zero or several variants; the issue is reported.
func (s *VariantSet[T]) decode(d *decoder, raw any, at PathRef) (T, bool) {
	var zero T
	m, isMap := asMapping(raw)
	if !isMap {
		d.report(at.Issue(CodeTypeMismatch, SeverityError, "expected", "mapping", "got", kindOf(raw)))
		return zero, false
	}
	present := make(map[string]bool, len(m))
	for k := range m {
		if canon, ok := s.union.Resolve(k); ok {
			present[canon] = true
		}
	}
	v, ambiguous := s.Select(present)
	if v == nil {
		if len(ambiguous) > 0 {
			is := at.Issue(CodeAmbiguousVariant, SeverityError, "variants", ambiguous)
			is.Hint = "keep the keys of exactly one of: " + strings.Join(ambiguous, ", ")
			d.report(is)
			return zero, false
		}
		keys := sortedKeys(m)
		shown := strings.Join(keys, ", ")
		if shown == "" {
			shown = "none"
		}
		is := at.Issue(CodeUnrecognizedVariant, SeverityError, "keys", shown)
		is.Params["keys"] = keys
		if name, missing := s.closest(present); name != "" {
			sort.Strings(missing)
			is.Hint = "variant " + name + " needs " + strings.Join(missing, ", ")
		}
		d.report(is)
		return zero, false
	}
	d.log.Debug("selected record variant", "path", at.Pointer(), "variant", v.Name)
	return v.Decode(d.newRecord(m, v.Fields, at)), true
}
