package converter_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/converter"
	"github.com/auscope/iso19115/keyword"
	"github.com/auscope/iso19115/metrics"
	"github.com/auscope/iso19115/model"
	"github.com/auscope/iso19115/source"
)

func TestConvert_MinimalRecord(t *testing.T) {
	doc, issues := convert(t, converter.DefaultProfile(), map[string]any{
		"title":            "Test",
		"id":               "abc123",
		"tags":             []any{"x", "y"},
		"notes":            "desc",
		"metadata_created": "2020-01-01T00:00:00",
	})
	assert.Empty(t, issues)

	require.Len(t, doc.IdentificationInfo, 1)
	ident := doc.IdentificationInfo[0]
	assert.Equal(t, "Test", ident.Citation.Title)
	assert.Equal(t, "desc", ident.Abstract)
	assert.Equal(t, [][]string{{"x"}, {"y"}, {"AuScope"}}, keywordLabels(ident))
	assert.NotNil(t, ident.ResourceConstraints)
	assert.Empty(t, ident.ResourceConstraints)

	assert.Equal(t, []string{"2020-01-01"}, datesOfType(doc, model.DateCreation))

	require.Len(t, ident.Extents, 1)
	ext := ident.Extents[0]
	assert.Empty(t, ext.GeographicElements)
	assert.Empty(t, ext.VerticalElements)
	require.Len(t, ext.TemporalElements, 1)
	assert.Equal(t, model.TemporalExtent{}, ext.TemporalElements[0])

	require.NotNil(t, doc.MetadataIdentifier)
	assert.Equal(t, "abc123", doc.MetadataIdentifier.Code.Value)
	require.NotNil(t, doc.MetadataScope)
	assert.Equal(t, model.ScopeDataset, doc.MetadataScope.Level)
	require.NotNil(t, doc.DefaultLocale)
	assert.Equal(t, model.LanguageEnglish, doc.DefaultLocale.Language)
	assert.Equal(t, model.CharsetUTF8, doc.DefaultLocale.CharacterEncoding)
	require.Len(t, doc.MetadataStandards, 1)
	assert.Equal(t, "ISO 19115-3", doc.MetadataStandards[0].Title)
}

func TestConvert_PointIdentity(t *testing.T) {
	doc, issues := convert(t, converter.DefaultProfile(), map[string]any{
		"title":           "Point",
		"id":              "p1",
		"epsg_code":       "4326",
		"location_choice": "point",
		"location_data":   `{"type":"Point","coordinates":[143.81,-36.63]}`,
	})
	assert.Empty(t, issues)

	ext := doc.IdentificationInfo[0].Extents[0]
	require.Len(t, ext.GeographicElements, 1)
	b, ok := ext.GeographicElements[0].(*model.BoundingBox)
	require.True(t, ok)
	assert.True(t, b.IsPoint)
	assert.Equal(t, 143.81, b.West)
	assert.Equal(t, b.West, b.East)
	assert.Equal(t, -36.63, b.South)
	assert.Equal(t, b.South, b.North)
	require.Len(t, ext.VerticalElements, 1)

	require.NotNil(t, doc.ReferenceSystemInfo)
	assert.Equal(t, "4326", doc.ReferenceSystemInfo.Identifier.Code.Value)
	require.NotNil(t, doc.ReferenceSystemInfo.Type)
	assert.Equal(t, model.RSTypeGeodeticGeographic2D, *doc.ReferenceSystemInfo.Type)

	require.Len(t, doc.SpatialRepresentationInfo, 1)
	assert.Equal(t, model.GeometricPoint, doc.SpatialRepresentationInfo[0].GeometricObjects[0].Type)
}

func TestConvert_InvalidCreatedReportedOnce(t *testing.T) {
	doc, issues, err := newConverter(t, converter.DefaultProfile()).Convert(t.Context(), source.FromMap(map[string]any{
		"title":            "Dates",
		"id":               "d1",
		"metadata_created": "not a date",
	}))
	require.NoError(t, err)

	var invalid iso.Issues
	for _, is := range issues {
		if is.Code == iso.CodeInvalidDate {
			invalid = append(invalid, is)
		}
	}
	require.Len(t, invalid, 1)
	assert.Equal(t, "/dateInfo", invalid[0].Path)
	assert.Equal(t, "metadata_created", invalid[0].Params["field"])
	assert.Empty(t, doc.IdentificationInfo[0].Citation.Dates)

	// A valid value still backs the citation date.
	doc, codes := convert(t, converter.DefaultProfile(), map[string]any{"title": "Dates", "id": "d1", "metadata_created": "2019-05-06"})
	assert.NotContains(t, codes, iso.CodeInvalidDate)
	require.Len(t, doc.IdentificationInfo[0].Citation.Dates, 1)
	assert.Equal(t, "2019-05-06", doc.IdentificationInfo[0].Citation.Dates[0].Date.String())
}

func TestController_LifecyclePanics(t *testing.T) {
	c := newConverter(t, converter.DefaultProfile())

	assert.Panics(t, func() { _ = c.NewController().Process(t.Context()) })
	assert.Panics(t, func() { c.NewController().Finalize() })
	assert.Panics(t, func() { _, _ = c.NewController().Build() })

	ctl := c.NewController()
	ctl.Initialize(source.FromMap(map[string]any{"title": "T"}))
	assert.Panics(t, func() { ctl.Initialize(source.FromMap(nil)) })
	assert.Panics(t, func() { ctl.Finalize() })
	require.NoError(t, ctl.Process(t.Context()))
	assert.Equal(t, converter.Processed, ctl.State())
	assert.Panics(t, func() { _, _ = ctl.Build() })
	ctl.Finalize()
	assert.Equal(t, converter.Finalized, ctl.State())
	_, err := ctl.Build()
	require.NoError(t, err)
}

func TestController_ConstructionError(t *testing.T) {
	p := converter.Profile{Name: "bare", Stages: []converter.StageID{converter.StageIdentifier}}
	c := newConverter(t, p)
	ctl := c.NewController()
	ctl.Initialize(source.FromMap(map[string]any{"id": "x"}))
	require.NoError(t, ctl.Process(t.Context()))
	ctl.Finalize()

	_, err := ctl.Build()
	var ce *iso.ConstructionError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, iso.ClassConstruction, iso.Classify(err))
	paths := []string{ce.Missing[0].Path, ce.Missing[1].Path}
	assert.ElementsMatch(t, []string{"/metadataScope", "/identificationInfo/0/citation/title"}, paths)
	assert.Equal(t, iso.CodeRequired, ce.Missing[0].Code)
	assert.NotEmpty(t, ce.Missing[0].Message)

	// The synthesised identification is reported.
	assert.True(t, ctl.Issues().Has(iso.CodeDefaulted))
}

func TestController_SynthesisesIdentification(t *testing.T) {
	p := converter.Profile{Name: "scoped", Stages: []converter.StageID{converter.StageScope}}
	doc, issues := convert(t, p, map[string]any{"title": "Only title"})
	require.Len(t, doc.IdentificationInfo, 1)
	assert.Equal(t, "Only title", doc.IdentificationInfo[0].Citation.Title)
	assert.Contains(t, issues, iso.CodeDefaulted)
}

func TestController_FoldsExtraIdentification(t *testing.T) {
	c := newConverter(t, converter.DefaultProfile())
	require.NoError(t, c.Override(converter.StageIdentification, func(_ context.Context, st *converter.State) error {
		st.Doc.AddIdentificationInfo(model.DataIdentification{
			Citation:            model.Citation{Title: "first"},
			DescriptiveKeywords: []model.Keywords{keyword.Fixed("a")},
		})
		st.Doc.AddIdentificationInfo(model.DataIdentification{
			Citation:            model.Citation{Title: "second"},
			DescriptiveKeywords: []model.Keywords{keyword.Fixed("b")},
		})
		return nil
	}))
	doc, issues, err := c.Convert(t.Context(), source.FromMap(map[string]any{"id": "f"}))
	require.NoError(t, err)
	require.Len(t, doc.IdentificationInfo, 1)
	assert.Equal(t, "first", doc.IdentificationInfo[0].Citation.Title)
	assert.Equal(t, [][]string{{"a"}, {"b"}}, keywordLabels(doc.IdentificationInfo[0]))
	require.True(t, issues.Has(iso.CodeFolded))
}

func TestController_FatalInvalidCodeValue(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	c := newConverter(t, converter.DefaultProfile(), converter.WithMetrics(m))

	ctl := c.NewController()
	ctl.Initialize(source.FromMap(map[string]any{
		"title":     "T",
		"date_info": []any{map[string]any{"date": "2020-01-01", "type": "bogus"}},
	}))
	err := ctl.Process(t.Context())

	var icv *iso.InvalidCodeValue
	require.ErrorAs(t, err, &icv)
	assert.Equal(t, "cit:CI_DateTypeCode", icv.CodeList)
	assert.Equal(t, "bogus", icv.Value)
	assert.True(t, iso.IsFatal(err))
	assert.Equal(t, converter.Failed, ctl.State())
	assert.Panics(t, func() { ctl.Finalize() })
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("iso19115-3", metrics.OutcomeFatal)))
}

func TestConvert_UnknownScopeIsFatal(t *testing.T) {
	_, _, err := converter.Convert(t.Context(), source.FromMap(map[string]any{"title": "T", "scope": "galaxy"}),
		converter.DefaultProfile(), quiet()...)
	var icv *iso.InvalidCodeValue
	require.ErrorAs(t, err, &icv)
	assert.Equal(t, "mcc:MD_ScopeCode", icv.CodeList)
}

func TestConvert_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	cancel()
	_, _, err := converter.Convert(ctx, source.FromMap(map[string]any{"title": "T"}), converter.DefaultProfile(), quiet()...)
	require.ErrorIs(t, err, context.Canceled)
}

func TestConvert_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	c := newConverter(t, converter.DefaultProfile(), converter.WithMetrics(m))
	_, issues, err := c.Convert(t.Context(), source.FromMap(map[string]any{
		"title":            "T",
		"metadata_created": "not a date",
	}))
	require.NoError(t, err)
	require.True(t, issues.Has(iso.CodeInvalidDate))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Conversions.WithLabelValues("iso19115-3", metrics.OutcomeSuccess)))
	assert.GreaterOrEqual(t, testutil.ToFloat64(m.SoftIssues.WithLabelValues(iso.CodeInvalidDate)), 1.0)
	n, err := testutil.GatherAndCount(reg, "iso19115_stage_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, len(converter.DefaultProfile().Stages), n)
}

func TestConvertAll(t *testing.T) {
	recs := []source.Record{
		source.FromMap(map[string]any{"title": "one", "id": "1"}),
		source.FromMap(map[string]any{"title": "two", "id": "2", "scope": "nope"}),
		source.FromMap(map[string]any{"title": "three", "id": "3"}),
	}
	results, err := converter.ConvertAll(t.Context(), recs, converter.DefaultProfile(), 2, quiet()...)
	require.NoError(t, err)
	require.Len(t, results, 3)

	for i, r := range results {
		assert.Equal(t, i, r.Index)
	}
	require.NoError(t, results[0].Err)
	assert.Equal(t, "one", results[0].Document.IdentificationInfo[0].Citation.Title)
	assert.True(t, iso.IsFatal(results[1].Err))
	require.NoError(t, results[2].Err)
	assert.Equal(t, "three", results[2].Document.IdentificationInfo[0].Citation.Title)
}

func TestNew_Validation(t *testing.T) {
	_, err := converter.New(converter.Profile{Name: "x", Stages: []converter.StageID{"nope"}})
	require.Error(t, err)

	p := converter.DefaultProfile()
	p.Settings.Thesauri = []string{"missing"}
	_, err = converter.New(p)
	require.ErrorContains(t, err, "unknown thesaurus")
}

func TestOverride(t *testing.T) {
	c := newConverter(t, converter.DefaultProfile())
	require.Error(t, c.Override("nope", func(context.Context, *converter.State) error { return nil }))
	require.Error(t, c.Override(converter.StageLineage, nil))

	boom := errors.New("boom")
	require.NoError(t, c.Override(converter.StageLineage, func(context.Context, *converter.State) error { return boom }))
	_, _, err := c.Convert(t.Context(), source.FromMap(map[string]any{"title": "T"}))
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "stage lineage")
}

type failingSerializer struct{}

func (failingSerializer) Serialize(context.Context, model.Document, io.Writer) error {
	return errors.New("cannot encode")
}

type validatorFunc func(context.Context, []byte) error

func (f validatorFunc) Validate(ctx context.Context, b []byte) error { return f(ctx, b) }

func TestPublish(t *testing.T) {
	doc, _ := convert(t, converter.DefaultProfile(), map[string]any{"title": "Published", "id": "pub"})

	out, err := converter.Publish(t.Context(), doc, converter.JSONSerializer{}, nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"title":"Published"`)

	_, err = converter.Publish(t.Context(), doc, failingSerializer{}, nil)
	var se *iso.StageError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, iso.StageSerialize, se.Stage)
	assert.Equal(t, iso.ClassCollaborator, iso.Classify(err))

	_, err = converter.Publish(t.Context(), doc, converter.JSONSerializer{Indent: true}, validatorFunc(func(_ context.Context, b []byte) error {
		if strings.Contains(string(b), "Published") {
			return errors.New("schematron: rule failed")
		}
		return nil
	}))
	require.ErrorAs(t, err, &se)
	assert.Equal(t, iso.StageValidate, se.Stage)
}
