package format

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Record is a raw JSON object from the weather API. Numbers are expected to
// be decoded as json.Number, but float64 and plain strings are accepted too;
// the API returns the same field as a number in one payload and a string in
// the next.
type Record = map[string]any

// FormatError reports a record that lacks a key the formatter needs.
type FormatError struct {
	Field string   // what was being formatted, e.g. "temperature"
	Keys  []string // keys that were looked up, any one of which would do
}

func (e *FormatError) Error() string {
	quoted := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		quoted[i] = strconv.Quote(k)
	}
	return fmt.Sprintf("cannot format %s: record has no %s", e.Field, strings.Join(quoted, " or "))
}

// String normalizes a scalar value to its display text.
func String(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	}
	return fmt.Sprint(v)
}

// Lookup walks nested records along path. A missing or null value, or a
// non-object on the way, is reported as a FormatError naming the dotted path.
func Lookup(r Record, path ...string) (any, error) {
	var cur any = r
	for i, key := range path {
		m, ok := cur.(map[string]any)
		if !ok {
			return nil, &FormatError{Field: fieldName(path[:i]), Keys: []string{strings.Join(path, ".")}}
		}
		v, ok := m[key]
		if !ok || v == nil {
			return nil, &FormatError{Field: fieldName(path[:i]), Keys: []string{strings.Join(path, ".")}}
		}
		cur = v
	}
	return cur, nil
}

// LookupString is Lookup followed by String.
func LookupString(r Record, path ...string) (string, error) {
	v, err := Lookup(r, path...)
	if err != nil {
		return "", err
	}
	return String(v), nil
}

// LookupRecord returns the nested object at path.
func LookupRecord(r Record, path ...string) (Record, error) {
	v, err := Lookup(r, path...)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, &FormatError{Field: fieldName(path), Keys: []string{strings.Join(path, ".") + " object"}}
	}
	return m, nil
}

// LookupList returns the array at path.
func LookupList(r Record, path ...string) ([]any, error) {
	v, err := Lookup(r, path...)
	if err != nil {
		return nil, err
	}
	l, ok := v.([]any)
	if !ok {
		return nil, &FormatError{Field: fieldName(path), Keys: []string{strings.Join(path, ".") + " list"}}
	}
	return l, nil
}

// first returns the value of the first key present and non-null in r.
func first(r Record, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func fieldName(path []string) string {
	if len(path) == 0 {
		return "record"
	}
	return path[len(path)-1]
}
