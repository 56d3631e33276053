package keyword_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auscope/iso19115/keyword"
	"github.com/auscope/iso19115/model"
)

func TestAlign(t *testing.T) {
	theme := model.KeywordTheme
	tests := []struct {
		name   string
		labels []string
		codes  []string
		ok     bool
	}{
		{"matched", []string{"a", "b", "c"}, []string{"1", "2", "3"}, true},
		{"single", []string{"a"}, []string{"1"}, true},
		{"more labels", []string{"a", "b"}, []string{"1"}, false},
		{"more codes", []string{"a"}, []string{"1", "2"}, false},
		{"empty labels", nil, []string{"1"}, false},
		{"both empty", nil, nil, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			kw, ok := keyword.Align(tc.labels, tc.codes, &theme, nil)
			assert.Equal(t, tc.ok, ok)
			if !tc.ok {
				assert.Nil(t, kw)
				return
			}
			require.Len(t, kw.Keywords, len(tc.labels))
			for i, k := range kw.Keywords {
				assert.Equal(t, tc.labels[i], k.Value)
				assert.Equal(t, tc.codes[i], k.Href)
			}
			assert.Equal(t, &theme, kw.Type)
		})
	}
}

func TestAlignSource(t *testing.T) {
	kw, err := keyword.AlignSource(`['EARTH SCIENCE', 'SOLID EARTH']`, `["u1", "u2"]`, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"EARTH SCIENCE", "SOLID EARTH"}, kw.Labels())

	_, err = keyword.AlignSource(`['a', 'b']`, `['1']`, nil, nil)
	assert.ErrorIs(t, err, keyword.ErrLengthMismatch)

	_, err = keyword.AlignSource(`['a'`, `['1']`, nil, nil)
	assert.ErrorIs(t, err, keyword.ErrMalformed)

	_, err = keyword.AlignSource(`[]`, `[]`, nil, nil)
	assert.ErrorIs(t, err, keyword.ErrEmpty)

	kw, err = keyword.AlignSource([]any{"a"}, []any{"1"}, nil, nil)
	require.NoError(t, err)
	assert.Len(t, kw.Keywords, 1)
}

func TestTags(t *testing.T) {
	// "é" composed and decomposed must collapse to one tag.
	kws := keyword.Tags([]any{" x ", "y", "x", "", map[string]any{"name": "z"}, "caf\u00e9", "cafe\u0301", 42})
	labels := make([]string, 0, len(kws))
	for _, k := range kws {
		require.Len(t, k.Keywords, 1)
		assert.Nil(t, k.Type)
		labels = append(labels, k.Keywords[0].Value)
	}
	assert.Equal(t, []string{"x", "y", "z", "caf\u00e9"}, labels)
}

func TestFixed(t *testing.T) {
	k := keyword.Fixed("AuScope")
	assert.Equal(t, []string{"AuScope"}, k.Labels())
	assert.False(t, k.Keywords[0].IsAnchor())
}

func TestThesaurus_Align(t *testing.T) {
	kw, err := keyword.ANZSRCFoR.Align(`['Geology']`, `['https://linked.data.gov.au/def/anzsrc-for/2020/3705']`)
	require.NoError(t, err)
	require.NotNil(t, kw.Type)
	assert.Equal(t, model.KeywordDiscipline, *kw.Type)
	require.NotNil(t, kw.ThesaurusName)
	assert.Contains(t, kw.ThesaurusName.Title, "Fields of Research")
	require.Len(t, kw.ThesaurusName.Dates, 1)
	assert.Equal(t, model.DatePublication, kw.ThesaurusName.Dates[0].DateType)
}

func TestDefaultRegistry(t *testing.T) {
	r := keyword.Default()
	assert.Equal(t, []string{"anzsrc-for", "gcmd"}, r.IDs())
	all := r.All()
	require.Len(t, all, 2)
	assert.Equal(t, "gcmd", all[0].ID)
	g, ok := r.Get("gcmd")
	require.True(t, ok)
	assert.Equal(t, "gcmd_keywords", g.LabelsKey)
}

func TestLoadThesauri(t *testing.T) {
	doc := `
thesauri:
  - id: platforms
    title: GCMD Platforms
    type: platform
    labels_key: platforms
    codes_key: platforms_code
  - id: gcmd
    title: GCMD Science Keywords (pinned)
    type: theme
    labels_key: gcmd_keywords
    codes_key: gcmd_keywords_code
`
	r, err := keyword.LoadThesauri(strings.NewReader(doc))
	require.NoError(t, err)
	ids := []string{}
	for _, th := range r.All() {
		ids = append(ids, th.ID)
	}
	assert.Equal(t, []string{"gcmd", "anzsrc-for", "platforms"}, ids)
	g, _ := r.Get("gcmd")
	assert.Equal(t, "GCMD Science Keywords (pinned)", g.Title)
}

func TestLoadThesauri_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"bad type":      "thesauri:\n  - {id: x, title: X, type: nonsense, labels_key: a, codes_key: b}\n",
		"missing keys":  "thesauri:\n  - {id: x, title: X, type: theme}\n",
		"unknown field": "thesauri:\n  - {id: x, title: X, type: theme, labels_key: a, codes_key: b, extra: 1}\n",
	} {
		_, err := keyword.LoadThesauri(strings.NewReader(doc))
		assert.Error(t, err, name)
	}

	r, err := keyword.LoadThesauri(strings.NewReader(""))
	require.NoError(t, err)
	assert.Len(t, r.All(), 2)
}
