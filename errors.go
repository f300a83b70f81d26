package citefile

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeMissingRequiredField = "missing_required_field"
	CodeTypeMismatch         = "type_mismatch"
	CodeEmptyValue           = "empty_value"
	CodeTooFewItems          = "too_few_items"
	CodeInvalidEnumValue     = "invalid_enum_value"
	CodeAmbiguousVariant     = "ambiguous_variant"
	CodeUnrecognizedVariant  = "unrecognized_variant"
	CodeFormatViolation      = "format_violation"
	CodeUnknownField         = "unknown_field"
	CodeDuplicateField       = "duplicate_field"
	CodeStructuralFailure    = "structural_failure"
	// Advisory findings (never errors)
	CodePreferredCitation  = "preferred_citation_set"
	CodeLicenseUnspecified = "license_unspecified"
	CodeDuplicateItem      = "duplicate_item"
)

// Severity classifies an Issue.
type Severity int

const (
	SeverityError   Severity = iota // Hard violation; fails Parse.
	SeverityWarning                 // Non-fatal, e.g. unknown keys outside strict mode.
	SeverityInfo                    // Informational finding from the validator.
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	default:
		return fmt.Sprintf("severity(%d)", int(s))
	}
}

// MarshalText renders the severity by name so reports stay readable.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// Issue represents a single decode error or validation finding.
type Issue struct {
	Path     string   `json:"path"`  // JSON Pointer over canonical keys (for example: /authors/2/given-names).
	Field    string   `json:"field"` // Canonical name of the innermost field, empty for the root.
	Index    int      `json:"index"` // Innermost sequence index, -1 when the issue is not inside a sequence.
	Code     string   `json:"code"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Hint     string   `json:"hint,omitempty"`
	Cause    error    `json:"-"`
	// Params carries structured parameters (e.g., {"token":"GPL","keys":[...]})
	// for i18n and tooling.
	Params map[string]any `json:"params,omitempty"`
}

func (it Issue) String() string {
	s := fmt.Sprintf("%s: %s at %s: %s", it.Severity, it.Code, it.Path, it.Message)
	if it.Hint != "" {
		s += " (" + it.Hint + ")"
	}
	return s
}

// Issues is a collection of issues that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. missing_required_field at /title
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

func (iss Issues) filter(sev Severity) Issues {
	var out Issues
	for _, it := range iss {
		if it.Severity == sev {
			out = append(out, it)
		}
	}
	return out
}

// Errors returns the hard violations.
func (iss Issues) Errors() Issues { return iss.filter(SeverityError) }

// Warnings returns the non-fatal warnings.
func (iss Issues) Warnings() Issues { return iss.filter(SeverityWarning) }

// Infos returns the informational findings.
func (iss Issues) Infos() Issues { return iss.filter(SeverityInfo) }

// HasErrors reports whether any issue is a hard violation.
func (iss Issues) HasErrors() bool {
	for _, it := range iss {
		if it.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Codes lists the issue codes in order; handy in tests and logs.
func (iss Issues) Codes() []string {
	out := make([]string, len(iss))
	for i, it := range iss {
		out[i] = it.Code
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// IOError reports that the citation file could not be read. The core never
// interprets the underlying error.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("reading %s: %v", e.Path, e.Err) }
func (e *IOError) Unwrap() error { return e.Err }
