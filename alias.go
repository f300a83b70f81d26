package citefile

import (
	"fmt"
	"strings"
)

// FieldTable maps every accepted key spelling of a record to its canonical
// field name. Tables are built once at package init and never mutated.
//
// Canonical names use the hyphenated CFF spelling; each hyphenated name also
// accepts its underscored form (date-released / date_released). Matching is
// case-sensitive.
type FieldTable struct {
	canonical []string            // declaration order, drives decode order
	spellings map[string][]string // canonical -> accepted spellings
	lookup    map[string]string   // spelling -> canonical
}

// FieldSpec declares one canonical field and any extra spellings beyond the
// automatic underscore alias.
type FieldSpec struct {
	Name    string
	Aliases []string
}

// F is shorthand for a FieldSpec without extra aliases.
func F(name string, aliases ...string) FieldSpec { return FieldSpec{Name: name, Aliases: aliases} }

// NewFieldTable builds a table from field specs. It panics on a spelling
// that maps to two canonical fields, since tables are static configuration.
func NewFieldTable(specs ...FieldSpec) *FieldTable {
	t := &FieldTable{
		spellings: make(map[string][]string, len(specs)),
		lookup:    make(map[string]string, len(specs)*2),
	}
	for _, s := range specs {
		if _, dup := t.spellings[s.Name]; dup {
			panic(fmt.Sprintf("citefile: field %q declared twice", s.Name))
		}
		t.canonical = append(t.canonical, s.Name)
		accepted := []string{s.Name}
		if u := strings.ReplaceAll(s.Name, "-", "_"); u != s.Name {
			accepted = append(accepted, u)
		}
		accepted = append(accepted, s.Aliases...)
		for _, sp := range accepted {
			if prev, ok := t.lookup[sp]; ok && prev != s.Name {
				panic(fmt.Sprintf("citefile: spelling %q maps to both %q and %q", sp, prev, s.Name))
			}
			t.lookup[sp] = s.Name
		}
		t.spellings[s.Name] = accepted
	}
	return t
}

// Merge returns a new table holding the fields of all given tables. Shared
// canonical names must declare identical spellings.
func Merge(tables ...*FieldTable) *FieldTable {
	var specs []FieldSpec
	seen := map[string]bool{}
	for _, t := range tables {
		for _, name := range t.canonical {
			if seen[name] {
				continue
			}
			seen[name] = true
			specs = append(specs, FieldSpec{Name: name, Aliases: t.extraAliases(name)})
		}
	}
	return NewFieldTable(specs...)
}

func (t *FieldTable) extraAliases(name string) []string {
	sp := t.spellings[name]
	var out []string
	u := strings.ReplaceAll(name, "-", "_")
	for _, s := range sp {
		if s != name && s != u {
			out = append(out, s)
		}
	}
	return out
}

// Resolve returns the canonical field name for a raw key, or ok=false when
// the key is not an accepted spelling of any field in the table.
func (t *FieldTable) Resolve(key string) (canonical string, ok bool) {
	canonical, ok = t.lookup[key]
	return canonical, ok
}

// Has reports whether name is a canonical field of the table.
func (t *FieldTable) Has(name string) bool {
	_, ok := t.spellings[name]
	return ok
}

// Canonical lists the canonical field names in declaration order.
func (t *FieldTable) Canonical() []string { return append([]string(nil), t.canonical...) }

// Spellings lists the accepted spellings of a canonical field, canonical
// first. It returns nil for unknown names.
func (t *FieldTable) Spellings(name string) []string {
	sp, ok := t.spellings[name]
	if !ok {
		return nil
	}
	return append([]string(nil), sp...)
}
