package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auscope/iso19115/source"
)

// exclusiveReader fails when two goroutines read at the same time.
type exclusiveReader struct {
	mu sync.Mutex
	r  *strings.Reader
}

func (e *exclusiveReader) Read(p []byte) (int, error) {
	if !e.mu.TryLock() {
		return 0, errors.New("concurrent read")
	}
	defer e.mu.Unlock()
	return e.r.Read(p)
}

func TestReadInputs_StdinOnce(t *testing.T) {
	file := filepath.Join(t.TempDir(), "one.json")
	require.NoError(t, os.WriteFile(file, []byte(`{"title": "file"}`), 0o600))

	stdin := &exclusiveReader{r: strings.NewReader(`[{"title": "a"}, {"title": "b"}]`)}
	recs, err := readInputs(stdin, []string{"-", file, "-"}, source.FormatJSON)
	require.NoError(t, err)

	var titles []string
	for _, r := range recs {
		titles = append(titles, r.StringOr("title", ""))
	}
	assert.Equal(t, []string{"a", "b", "file"}, titles)
}

func TestReadInputs_NoPathsReadsStdin(t *testing.T) {
	recs, err := readInputs(strings.NewReader("title: y\n"), nil, source.FormatYAML)
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "y", recs[0].StringOr("title", ""))
}

func TestReadInputs_MissingFile(t *testing.T) {
	_, err := readInputs(strings.NewReader(""), []string{filepath.Join(t.TempDir(), "nope.json")}, source.FormatJSON)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
