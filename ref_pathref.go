package citefile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/reoring/citefile/i18n"
)

// PathRef builds JSON Pointer paths in a chain-safe way and creates Issues.
// It remembers the innermost field name and sequence index so every Issue
// carries them without re-parsing the pointer.
type PathRef struct {
	parts []string
	field string
	index int
}

// RootPath returns the path of the document root.
func RootPath() PathRef { return PathRef{index: -1} }

// Field descends into a mapping key.
func (p PathRef) Field(name string) PathRef {
	if name == "" {
		return p
	}
	// escape '~' -> '~0', '/' -> '~1' per RFC6901
	esc := strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
	return PathRef{parts: append(append([]string{}, p.parts...), esc), field: name, index: p.index}
}

// Index descends into a sequence element.
func (p PathRef) Index(i int) PathRef {
	return PathRef{parts: append(append([]string{}, p.parts...), strconv.Itoa(i)), field: p.field, index: i}
}

// Pointer renders the path as a JSON Pointer.
func (p PathRef) Pointer() string {
	if len(p.parts) == 0 {
		return "/"
	}
	return "/" + strings.Join(p.parts, "/")
}

// Name returns the innermost field name (empty at the root).
func (p PathRef) Name() string { return p.field }

// Issue creates an Issue at this path. kv pairs become Params and, as strings,
// template data for the localized message; "field" defaults to the path's
// field name.
func (p PathRef) Issue(code string, sev Severity, kv ...any) Issue {
	params := map[string]any{}
	data := map[string]string{"field": p.field}
	if p.field == "" {
		data["field"] = "(root)"
	}
	for i := 0; i+1 < len(kv); i += 2 {
		k := fmt.Sprint(kv[i])
		params[k] = kv[i+1]
		switch v := kv[i+1].(type) {
		case []string:
			data[k] = strings.Join(v, ", ")
		default:
			data[k] = fmt.Sprint(v)
		}
	}
	if len(params) == 0 {
		params = nil
	}
	return Issue{
		Path:     p.Pointer(),
		Field:    p.field,
		Index:    p.index,
		Code:     code,
		Severity: sev,
		Message:  i18n.T(code, data),
		Params:   params,
	}
}
