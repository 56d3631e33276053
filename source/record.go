// Package source is the typed view over a loosely-typed dataset record.
//
// Every "missing key" decision of the converter is made here: accessors
// return an explicit ok flag instead of failing, and literal-encoded fields
// are parsed through package literal.
package source

import (
	"strconv"
	"strings"
	"time"

	"github.com/auscope/iso19115/literal"
)

// Record is a read-only view over a source record. The zero value is an
// empty record.
type Record struct {
	m map[string]any
}

// FromMap wraps m. The map is not copied and must not be mutated while the
// record is in use.
func FromMap(m map[string]any) Record { return Record{m: m} }

// Raw returns the value stored under key. Nil values count as absent.
func (r Record) Raw(key string) (any, bool) {
	v, ok := r.m[key]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Has reports whether key holds a non-nil value that is not a blank string.
func (r Record) Has(key string) bool {
	v, ok := r.Raw(key)
	if !ok {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	return true
}

// String returns the scalar under key rendered as a string. Lists, maps and
// nil are absent.
func (r Record) String(key string) (string, bool) {
	v, ok := r.Raw(key)
	if !ok {
		return "", false
	}
	return scalarString(v)
}

// NonEmpty is String with blank values treated as absent; the result is
// trimmed.
func (r Record) NonEmpty(key string) (string, bool) {
	s, ok := r.String(key)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}

// StringOr returns the trimmed non-empty string under key or def.
func (r Record) StringOr(key, def string) string {
	if s, ok := r.NonEmpty(key); ok {
		return s
	}
	return def
}

// Float returns the numeric value under key. Numeric strings are accepted.
func (r Record) Float(key string) (float64, bool) {
	v, ok := r.Raw(key)
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case interface{ Float64() (float64, error) }:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Int returns the integral value under key.
func (r Record) Int(key string) (int, bool) {
	f, ok := r.Float(key)
	if !ok || f != float64(int(f)) {
		return 0, false
	}
	return int(f), true
}

// List returns the list under key. A literal-encoded string is parsed; a
// malformed literal is absent.
func (r Record) List(key string) ([]any, bool) {
	v, ok := r.Raw(key)
	if !ok {
		return nil, false
	}
	switch t := v.(type) {
	case []any:
		return t, true
	case []string:
		out := make([]any, len(t))
		for i, s := range t {
			out[i] = s
		}
		return out, true
	case string:
		lv, ok := literal.Parse(t)
		if !ok || lv.Kind != literal.List {
			return nil, false
		}
		return lv.Any().([]any), true
	default:
		return nil, false
	}
}

// Strings returns the list under key as strings.
func (r Record) Strings(key string) ([]string, bool) {
	v, ok := r.Raw(key)
	if !ok {
		return nil, false
	}
	return literal.StringsOf(v)
}

// Records returns the list of objects under key. Decoded lists and
// literal-encoded strings are both accepted.
func (r Record) Records(key string) ([]Record, bool) {
	v, ok := r.Raw(key)
	if !ok {
		return nil, false
	}
	ms, ok := literal.RecordsOf(v)
	if !ok {
		return nil, false
	}
	out := make([]Record, len(ms))
	for i, m := range ms {
		out[i] = FromMap(m)
	}
	return out, true
}

// Sub returns the object under key.
func (r Record) Sub(key string) (Record, bool) {
	v, ok := r.Raw(key)
	if !ok {
		return Record{}, false
	}
	switch t := v.(type) {
	case map[string]any:
		return FromMap(t), true
	case string:
		lv, ok := literal.Parse(t)
		if !ok || lv.Kind != literal.Dict {
			return Record{}, false
		}
		return FromMap(lv.Any().(map[string]any)), true
	default:
		return Record{}, false
	}
}

func scalarString(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case int:
		return strconv.Itoa(t), true
	case int64:
		return strconv.FormatInt(t, 10), true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case time.Time:
		switch {
		case t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0:
			return t.Format("2006-01-02"), true
		case t.Location() == time.UTC:
			return t.Format("2006-01-02T15:04:05"), true
		default:
			return t.Format(time.RFC3339), true
		}
	case interface{ String() string }:
		// json.Number and friends.
		return t.String(), true
	default:
		return "", false
	}
}
