package citefile

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"time"
)

// The decoder accepts the generic tree produced by YAML/JSON loaders:
// map[string]any / map[any]any for mappings, slices for sequences and
// string, bool, numeric, time.Time or nil scalars. Numbers may also arrive
// as json.Number-like values (a String method plus Int64 or Float64).

type numberLike interface {
	String() string
	Float64() (float64, error)
}

// asMapping returns v as a mapping with string keys.
func asMapping(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, vv := range m {
			out[fmt.Sprint(k)] = vv
		}
		return out, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	it := rv.MapRange()
	for it.Next() {
		out[it.Key().String()] = it.Value().Interface()
	}
	return out, true
}

// asSequence returns v as a slice of elements.
func asSequence(v any) ([]any, bool) {
	if s, ok := v.([]any); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	if rv.Type().Elem().Kind() == reflect.Uint8 {
		// []byte is a scalar, not a sequence
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

// numberText renders a numeric scalar using its literal form where possible.
func numberText(v any) (string, bool) {
	switch n := v.(type) {
	case int:
		return strconv.Itoa(n), true
	case int64:
		return strconv.FormatInt(n, 10), true
	case int32:
		return strconv.FormatInt(int64(n), 10), true
	case uint64:
		return strconv.FormatUint(n, 10), true
	case uint:
		return strconv.FormatUint(uint64(n), 10), true
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64), true
	case float32:
		return strconv.FormatFloat(float64(n), 'f', -1, 32), true
	case numberLike:
		return n.String(), true
	}
	return "", false
}

// kindOf names the shape of a tree node for type-mismatch messages.
func kindOf(v any) string {
	if v == nil {
		return "null"
	}
	switch v.(type) {
	case string:
		return "text"
	case bool:
		return "boolean"
	case time.Time:
		return "timestamp"
	}
	if _, ok := numberText(v); ok {
		return "number"
	}
	if _, ok := asMapping(v); ok {
		return "mapping"
	}
	if _, ok := asSequence(v); ok {
		return "sequence"
	}
	return fmt.Sprintf("%T", v)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
