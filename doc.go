// Package citefile decodes and validates Citation File Format (CFF 1.2.0)
// documents into a typed Citation.
//
// - Field names are resolved through alias tables (cff-version, cff_version
//   and schema-version name the same field).
// - Authors are decoded as Person or Entity by the keys they carry.
// - Every problem is reported in one pass as Issues (JSON Pointer, code,
//   severity, localized message).
//
// Typical usage:
//
//	c, findings, err := citefile.ReadFile("CITATION.cff")
//	if iss, ok := citefile.AsIssues(err); ok {
//		for _, it := range iss {
//			fmt.Println(it)
//		}
//	}
//
// Parse accepts an already loaded tree (map[string]any from any YAML or
// JSON library); ReadFile and ParseBytes load the bytes with the parsers
// under source/.
package citefile
