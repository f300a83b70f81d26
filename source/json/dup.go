package json

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	gojson "github.com/goccy/go-json"
)

// DuplicateKeyError reports a member name given twice in one JSON object.
type DuplicateKeyError struct {
	Key     string
	Pointer string // JSON Pointer of the duplicated member
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate JSON key %q at %s", e.Key, e.Pointer)
}

type containerKind int

const (
	kindObject containerKind = iota
	kindArray
)

type frame struct {
	kind         containerKind
	keys         map[string]struct{}
	expectingKey bool
	key          string // current member (objects)
	index        int    // current element (arrays)
}

// segment is the pointer token naming the child currently being read.
func (f *frame) segment() string {
	if f.kind == kindArray {
		return strconv.Itoa(f.index)
	}
	return strings.ReplaceAll(strings.ReplaceAll(f.key, "~", "~0"), "/", "~1")
}

// detectDuplicateKeys walks the token stream of data and returns the first
// duplicate object key. Syntax errors end the walk without an error; the
// value decoder reports them.
func detectDuplicateKeys(data []byte) error {
	dec := gojson.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var stack []frame

	// valueDone advances the enclosing container past one value.
	valueDone := func() {
		if len(stack) == 0 {
			return
		}
		top := &stack[len(stack)-1]
		if top.kind == kindObject {
			top.expectingKey = true
		} else {
			top.index++
		}
	}

	for {
		tok, err := dec.Token()
		if err != nil {
			return nil
		}
		switch v := tok.(type) {
		case gojson.Delim:
			switch v {
			case '{':
				stack = append(stack, frame{kind: kindObject, keys: map[string]struct{}{}, expectingKey: true})
			case '[':
				stack = append(stack, frame{kind: kindArray})
			case '}', ']':
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
				valueDone()
			}
		case string:
			if n := len(stack); n > 0 && stack[n-1].kind == kindObject && stack[n-1].expectingKey {
				top := &stack[n-1]
				top.key = v
				if _, dup := top.keys[v]; dup {
					return &DuplicateKeyError{Key: v, Pointer: pointer(stack)}
				}
				top.keys[v] = struct{}{}
				top.expectingKey = false
				continue
			}
			valueDone()
		default:
			valueDone()
		}
	}
}

func pointer(stack []frame) string {
	var b strings.Builder
	for i := range stack {
		b.WriteByte('/')
		b.WriteString(stack[i].segment())
	}
	return b.String()
}
