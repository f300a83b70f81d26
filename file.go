package citefile

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	jsonsrc "github.com/reoring/citefile/source/json"
	yamlsrc "github.com/reoring/citefile/source/yaml"
)

// ErrInvalidEncoding reports a citation file that is not UTF-8 text.
var ErrInvalidEncoding = errors.New("file is not valid UTF-8")

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// FormatForPath picks the serialization from a file name: ".json" is JSON,
// anything else (CITATION.cff, .yaml, .yml) is YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// ReadFile reads, decodes and validates the citation file at path. Failures
// to read the file are returned as *IOError before any decoding happens;
// everything else behaves like ParseBytes.
func ReadFile(path string, opts ...ParseOpt) (*Citation, Issues, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &IOError{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return nil, nil, &IOError{Path: path, Err: ErrInvalidEncoding}
	}
	return ParseBytes(data, FormatForPath(path), opts...)
}

// ParseBytes loads data in format f and runs Parse on the resulting tree.
func ParseBytes(data []byte, f Format, opts ...ParseOpt) (*Citation, Issues, error) {
	doc, err := LoadDocument(data, f)
	if err != nil {
		return nil, nil, err
	}
	return Parse(doc, opts...)
}

// LoadDocument turns raw bytes into the generic tree Decode consumes. Syntax
// errors, duplicate YAML keys and multi-document streams are returned as a
// single structural_failure issue whose Cause is the parser error.
func LoadDocument(data []byte, f Format) (any, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	var (
		doc any
		err error
	)
	switch f {
	case FormatJSON:
		doc, err = jsonsrc.Decode(data)
	default:
		doc, err = yamlsrc.Decode(data)
	}
	if err != nil {
		is := RootPath().Issue(CodeStructuralFailure, SeverityError, "reason", err.Error())
		is.Cause = err
		return nil, Issues{is}
	}
	return doc, nil
}
