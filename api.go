package citefile

// Parse is the primary entry point. It decodes a generic document tree (as
// produced by a YAML or JSON loader) and validates the result.
//
// On success it returns the Citation together with the non-fatal findings:
// decode warnings followed by validator warnings and informational notes.
// On failure it returns an Issues error holding every decode error and
// warning, or every validation finding when decoding succeeded but the
// validator found hard violations. A failed Parse never returns a Citation.
func Parse(doc any, opts ...ParseOpt) (*Citation, Issues, error) {
	c, warnings, err := Decode(doc, opts...)
	if err != nil {
		return nil, nil, err
	}
	findings := AppendIssues(warnings, Validate(c)...)
	if findings.HasErrors() {
		return nil, nil, findings
	}
	if len(findings) == 0 {
		findings = nil
	}
	return c, findings, nil
}
