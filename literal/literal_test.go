package literal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auscope/iso19115/literal"
)

func TestParse_PythonAndJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want any
	}{
		{"python list", `['a', 'b']`, []any{"a", "b"}},
		{"json list", `["a", "b"]`, []any{"a", "b"}},
		{"trailing comma", `['a', 'b',]`, []any{"a", "b"}},
		{"tuple", `(1, 2.5)`, []any{1.0, 2.5}},
		{"keywords", `[True, False, None, true, null]`, []any{true, false, nil, true, nil}},
		{"dict", `{'name': 'Jane', 'n': -3}`, map[string]any{"name": "Jane", "n": -3.0}},
		{"nested", `[{'a': [1, 2]}, {}]`, []any{map[string]any{"a": []any{1.0, 2.0}}, map[string]any{}}},
		{"escapes", `"a\"bA"`, `a"bA`},
		{"unicode prefix", `[u'x']`, []any{"x"}},
		{"empty list", `[]`, []any{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := literal.Parse(tc.in)
			require.True(t, ok)
			assert.Equal(t, tc.want, v.Any())
		})
	}
}

func TestParse_UnicodeEscapes(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"bmp", `"caf\u00e9"`, "café"},
		{"surrogate pair", `"Jose \ud83d\ude00"`, "Jose 😀"},
		{"upper case pair", `'\uD83D\uDE00!'`, "😀!"},
		{"long escape", `'\U0001F600'`, "😀"},
		{"lone high surrogate", `"a\ud83db"`, "a\ufffdb"},
		{"high then non-surrogate", `"\ud83d\u0041"`, "\ufffdA"},
		{"lone low surrogate", `"\ude00"`, "\ufffd"},
		{"hex byte", `'\x41'`, "A"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := literal.Parse(tc.in)
			require.True(t, ok)
			assert.Equal(t, tc.want, v.Any())
		})
	}

	for _, in := range []string{`"\u12"`, `"\U0001F60"`, `"\uzzzz"`} {
		_, ok := literal.Parse(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestParse_Malformed(t *testing.T) {
	for _, in := range []string{
		``, `[`, `['a'`, `['a' 'b']`, `{'a' 1}`, `{[1]: 2}`, `'unterminated`,
		`__import__('os')`, `[1, 2] extra`, `Nonesuch`, `1..2`,
	} {
		_, ok := literal.Parse(in)
		assert.False(t, ok, "input %q", in)
	}
}

func TestParse_DepthLimit(t *testing.T) {
	deep := ""
	for i := 0; i < 200; i++ {
		deep += "["
	}
	_, ok := literal.Parse(deep)
	assert.False(t, ok)
}

func TestValue_StringsAndGet(t *testing.T) {
	v, ok := literal.Parse(`['x', 1, True]`)
	require.True(t, ok)
	s, ok := v.Strings()
	require.True(t, ok)
	assert.Equal(t, []string{"x", "1", "true"}, s)

	v, _ = literal.Parse(`[['x']]`)
	_, ok = v.Strings()
	assert.False(t, ok)

	d, _ := literal.Parse(`{'k': 'v'}`)
	got, ok := d.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got.Str())
	_, ok = d.Get("missing")
	assert.False(t, ok)
}

func TestStringsOf(t *testing.T) {
	s, ok := literal.StringsOf(`["A", "B"]`)
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, s)

	s, ok = literal.StringsOf([]any{"A", 2.0})
	require.True(t, ok)
	assert.Equal(t, []string{"A", "2"}, s)

	_, ok = literal.StringsOf("not a list")
	assert.False(t, ok)
	_, ok = literal.StringsOf(42)
	assert.False(t, ok)
}

func TestRecordsOf(t *testing.T) {
	recs, ok := literal.RecordsOf(`[{'author_name': 'A. Smith', 'author_affiliation': 'CSIRO'}]`)
	require.True(t, ok)
	require.Len(t, recs, 1)
	assert.Equal(t, "CSIRO", recs[0]["author_affiliation"])

	_, ok = literal.RecordsOf(`['x']`)
	assert.False(t, ok)
	_, ok = literal.RecordsOf(`{'a': 1}`)
	assert.False(t, ok)
}
