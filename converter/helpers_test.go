package converter_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/auscope/iso19115/converter"
	"github.com/auscope/iso19115/model"
	"github.com/auscope/iso19115/source"
)

var fixedNow = time.Date(2024, 3, 4, 5, 6, 7, 0, time.UTC)

func quiet() []converter.Option {
	return []converter.Option{
		converter.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		converter.WithClock(func() time.Time { return fixedNow }),
	}
}

func newConverter(t *testing.T, p converter.Profile, opts ...converter.Option) *converter.Converter {
	t.Helper()
	c, err := converter.New(p, append(quiet(), opts...)...)
	require.NoError(t, err)
	return c
}

func convert(t *testing.T, p converter.Profile, m map[string]any) (model.Document, []string) {
	t.Helper()
	doc, issues, err := newConverter(t, p).Convert(t.Context(), source.FromMap(m))
	require.NoError(t, err)
	return doc, issues.Codes()
}

func datesOfType(doc model.Document, typ model.DateTypeCode) []string {
	var out []string
	for _, d := range doc.DateInfo {
		if d.DateType == typ {
			out = append(out, d.Date.String())
		}
	}
	return out
}

func keywordLabels(ident model.DataIdentification) [][]string {
	out := make([][]string, 0, len(ident.DescriptiveKeywords))
	for _, k := range ident.DescriptiveKeywords {
		out = append(out, k.Labels())
	}
	return out
}
