package source_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auscope/iso19115/source"
)

func TestRecord_Accessors(t *testing.T) {
	rec := source.FromMap(map[string]any{
		"title":     "Test",
		"blank":     "   ",
		"nil":       nil,
		"epsg_code": "4326",
		"elevation": 12.5,
		"tags":      []any{"x", "y"},
		"gcmd":      `['A', 'B']`,
		"author":    `[{'author_name': 'Jane'}]`,
		"org":       map[string]any{"title": "CSIRO"},
		"bad":       `['A'`,
	})

	s, ok := rec.String("title")
	require.True(t, ok)
	assert.Equal(t, "Test", s)

	_, ok = rec.NonEmpty("blank")
	assert.False(t, ok)
	assert.False(t, rec.Has("blank"))
	assert.False(t, rec.Has("nil"))
	assert.False(t, rec.Has("missing"))
	assert.Equal(t, "fallback", rec.StringOr("blank", "fallback"))

	code, ok := rec.Int("epsg_code")
	require.True(t, ok)
	assert.Equal(t, 4326, code)

	f, ok := rec.Float("elevation")
	require.True(t, ok)
	assert.InDelta(t, 12.5, f, 1e-9)

	el, ok := rec.String("elevation")
	require.True(t, ok)
	assert.Equal(t, "12.5", el)

	tags, ok := rec.Strings("tags")
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, tags)

	gcmd, ok := rec.Strings("gcmd")
	require.True(t, ok)
	assert.Equal(t, []string{"A", "B"}, gcmd)

	_, ok = rec.Strings("bad")
	assert.False(t, ok)
	_, ok = rec.List("bad")
	assert.False(t, ok)

	authors, ok := rec.Records("author")
	require.True(t, ok)
	require.Len(t, authors, 1)
	assert.Equal(t, "Jane", authors[0].StringOr("author_name", ""))

	org, ok := rec.Sub("org")
	require.True(t, ok)
	assert.Equal(t, "CSIRO", org.StringOr("title", ""))

	_, ok = rec.String("tags")
	assert.False(t, ok, "lists are not scalars")
}

func TestFromJSON_PreservesNumbers(t *testing.T) {
	rec, err := source.FromJSON(strings.NewReader(`{"id":"abc","epsg_code":28355,"elevation":1.50}`))
	require.NoError(t, err)
	s, ok := rec.String("elevation")
	require.True(t, ok)
	assert.Equal(t, "1.50", s)
	code, ok := rec.Int("epsg_code")
	require.True(t, ok)
	assert.Equal(t, 28355, code)
}

func TestFromJSON_RejectsNonObject(t *testing.T) {
	_, err := source.FromJSON(strings.NewReader(`null`))
	assert.Error(t, err)
	_, err = source.FromJSON(strings.NewReader(`{`))
	assert.Error(t, err)
}

func TestFromYAML(t *testing.T) {
	rec, err := source.FromYAML(strings.NewReader("title: Test\ntags:\n  - x\n  - y\norganization:\n  title: AuScope\n"))
	require.NoError(t, err)
	assert.Equal(t, "Test", rec.StringOr("title", ""))
	tags, ok := rec.Strings("tags")
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y"}, tags)
	org, ok := rec.Sub("organization")
	require.True(t, ok)
	assert.Equal(t, "AuScope", org.StringOr("title", ""))
}

func TestReadAll(t *testing.T) {
	recs, err := source.ReadAll(strings.NewReader(`[{"id":"a"},{"id":"b"}]`), source.FormatJSON)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "b", recs[1].StringOr("id", ""))

	recs, err = source.ReadAll(strings.NewReader("{\"id\":\"a\"}\n{\"id\":\"b\"}\n"), source.FormatJSON)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	recs, err = source.ReadAll(strings.NewReader("id: a\n---\nid: b\n"), source.FormatYAML)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "a", recs[0].StringOr("id", ""))

	recs, err = source.ReadAll(strings.NewReader("  "), source.FormatJSON)
	require.NoError(t, err)
	assert.Empty(t, recs)

	_, err = source.ReadAll(strings.NewReader("- 1\n"), source.FormatYAML)
	assert.Error(t, err)

	_, err = source.ReadAll(strings.NewReader(""), "xml")
	assert.Error(t, err)
}

func TestRecords_SurrogatePairEscape(t *testing.T) {
	rec := source.FromMap(map[string]any{"author": `[{"author_name": "Jose \ud83d\ude00"}]`})
	authors, ok := rec.Records("author")
	require.True(t, ok)
	require.Len(t, authors, 1)
	assert.Equal(t, "Jose 😀", authors[0].StringOr("author_name", ""))
}
