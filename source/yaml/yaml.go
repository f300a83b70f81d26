// Package yaml loads a YAML citation file into the generic tree the
// citefile decoder consumes: map[string]any, []any and scalars.
//
// Decoding goes through yaml.Node so duplicate mapping keys are reported
// with positions, and date-like scalars stay text for the decoder to check.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	yamlv3 "gopkg.in/yaml.v3"
)

// MaxDepth bounds nesting (including alias expansion).
const MaxDepth = 256

// Alias expansion may add at most aliasRatio nodes per node written in the
// document, and never less than minAliasBudget nodes in total.
const (
	aliasRatio     = 10
	minAliasBudget = 10000
)

var (
	// ErrMultipleDocuments reports a stream holding more than one document.
	ErrMultipleDocuments = errors.New("yaml: expected a single document")
	// ErrExcessiveAliasing reports alias expansion beyond the node budget.
	ErrExcessiveAliasing = errors.New("yaml: document contains excessive aliasing")
)

// DuplicateKeyError reports a duplicate key found in a YAML mapping with both
// the first occurrence position and the duplicate occurrence position.
type DuplicateKeyError struct {
	Key       string
	Pointer   string // JSON Pointer of the duplicated member
	FirstLine int
	FirstCol  int
	Line      int
	Col       int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate YAML key %q at %s, %d:%d (first at %d:%d)", e.Key, e.Pointer, e.Line, e.Col, e.FirstLine, e.FirstCol)
}

// Number keeps the literal text of an integer or float scalar so values such
// as version: 1.10 are not reformatted.
type Number string

func (n Number) String() string            { return string(n) }
func (n Number) Float64() (float64, error) { return strconv.ParseFloat(string(n), 64) }
func (n Number) Int64() (int64, error)     { return strconv.ParseInt(string(n), 0, 64) }

// Decode parses exactly one YAML document. An empty input yields a nil tree.
func Decode(data []byte) (any, error) {
	dec := yamlv3.NewDecoder(bytes.NewReader(data))
	var root yamlv3.Node
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	var extra yamlv3.Node
	if err := dec.Decode(&extra); err == nil {
		return nil, ErrMultipleDocuments
	} else if !errors.Is(err, io.EOF) {
		return nil, err
	}
	written := countNodes(&root)
	l := &loader{budget: written + max(minAliasBudget, aliasRatio*written)}
	return l.value(&root, "", 0)
}

// countNodes counts the nodes written in the document without following
// aliases.
func countNodes(n *yamlv3.Node) int {
	c := 1
	for _, ch := range n.Content {
		c += countNodes(ch)
	}
	return c
}

// loader converts one document, counting every node it produces.
type loader struct {
	nodes  int
	budget int
}

func (l *loader) value(n *yamlv3.Node, ptr string, depth int) (any, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("yaml: nesting deeper than %d at line %d", MaxDepth, n.Line)
	}
	l.nodes++
	if l.nodes > l.budget {
		return nil, ErrExcessiveAliasing
	}
	switch n.Kind {
	case yamlv3.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return l.value(n.Content[0], ptr, depth+1)
	case yamlv3.AliasNode:
		return l.value(n.Alias, ptr, depth+1)
	case yamlv3.MappingNode:
		return l.mapping(n, ptr, depth)
	case yamlv3.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for i, c := range n.Content {
			v, err := l.value(c, ptr+"/"+strconv.Itoa(i), depth+1)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yamlv3.ScalarNode:
		return scalarToValue(n), nil
	default:
		return nil, nil
	}
}

func (l *loader) mapping(n *yamlv3.Node, ptr string, depth int) (map[string]any, error) {
	m := make(map[string]any, len(n.Content)/2)
	first := make(map[string][2]int, len(n.Content)/2)
	var merges []*yamlv3.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := n.Content[i]
		v := n.Content[i+1]
		if k.Kind == yamlv3.ScalarNode && k.ShortTag() == "!!merge" {
			merges = append(merges, v)
			continue
		}
		key := k.Value
		at := ptr + "/" + escape(key)
		if pos, dup := first[key]; dup {
			return nil, &DuplicateKeyError{Key: key, Pointer: at, FirstLine: pos[0], FirstCol: pos[1], Line: k.Line, Col: k.Column}
		}
		first[key] = [2]int{k.Line, k.Column}
		val, err := l.value(v, at, depth+1)
		if err != nil {
			return nil, err
		}
		m[key] = val
	}
	// explicit keys win over merged ones
	for _, src := range merges {
		mv, err := l.value(src, ptr, depth+1)
		if err != nil {
			return nil, err
		}
		var maps []any
		if seq, ok := mv.([]any); ok {
			maps = seq
		} else {
			maps = []any{mv}
		}
		for _, one := range maps {
			om, ok := one.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("yaml: merge value at line %d is not a mapping", src.Line)
			}
			for k, v := range om {
				if _, set := m[k]; !set {
					m[k] = v
				}
			}
		}
	}
	return m, nil
}

// escape encodes a key as a JSON Pointer token (RFC 6901).
func escape(key string) string {
	return strings.ReplaceAll(strings.ReplaceAll(key, "~", "~0"), "/", "~1")
}

func scalarToValue(n *yamlv3.Node) any {
	switch n.ShortTag() {
	case "!!null":
		return nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err == nil {
			return b
		}
		return n.Value
	case "!!int", "!!float":
		return Number(n.Value)
	default:
		// !!str, !!timestamp, !!binary and custom tags stay text
		return n.Value
	}
}
