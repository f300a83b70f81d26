// Package json loads a JSON citation file into the generic tree the citefile
// decoder consumes. Comments and trailing commas are tolerated.
package json

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gojson "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
)

// ErrTrailingData reports content after the top-level JSON value.
var ErrTrailingData = errors.New("json: unexpected data after top-level value")

// Decode parses one JSON value. Numbers keep their literal text. An empty
// input yields a nil tree. A key repeated within one object is a
// *DuplicateKeyError.
func Decode(data []byte) (any, error) {
	stripped := jsonc.ToJSON(data)
	if len(bytes.TrimSpace(stripped)) == 0 {
		return nil, nil
	}
	if err := detectDuplicateKeys(stripped); err != nil {
		return nil, err
	}
	dec := gojson.NewDecoder(bytes.NewReader(stripped))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	var extra any
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	return v, nil
}
