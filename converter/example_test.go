package converter_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/converter"
	"github.com/auscope/iso19115/source"
)

func ExampleConvert() {
	rec, err := source.FromJSON(strings.NewReader(`{
		"title": "Test",
		"id": "abc123",
		"tags": ["x", "y"],
		"notes": "desc",
		"metadata_created": "2020-01-01T00:00:00"
	}`))
	if err != nil {
		panic(err)
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	doc, issues, err := converter.Convert(context.Background(), rec, converter.DefaultProfile(), converter.WithLogger(logger))
	if err != nil {
		panic(err)
	}

	ident := doc.IdentificationInfo[0]
	fmt.Println("title:", ident.Citation.Title)
	for _, kw := range ident.DescriptiveKeywords {
		fmt.Println("keyword:", strings.Join(kw.Labels(), ","))
	}
	for _, d := range doc.DateInfo {
		fmt.Printf("%s: %s\n", d.DateType, d.Date)
	}
	fmt.Println("issues:", len(issues))
	// Output:
	// title: Test
	// keyword: x
	// keyword: y
	// keyword: AuScope
	// creation: 2020-01-01
	// revision: 2020-01-01
	// issues: 0
}

func ExampleConvert_fatal() {
	rec := source.FromMap(map[string]any{"title": "T", "scope": "galaxy"})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	_, _, err := converter.Convert(context.Background(), rec, converter.DefaultProfile(), converter.WithLogger(logger))

	var icv *iso.InvalidCodeValue
	if errors.As(err, &icv) {
		fmt.Println(iso.Classify(err), icv.CodeList, icv.Value)
	}
	// Output:
	// fatal mcc:MD_ScopeCode galaxy
}

func ExampleController() {
	conv, err := converter.New(converter.DefaultProfile(),
		converter.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	if err != nil {
		panic(err)
	}
	ctl := conv.NewController()
	ctl.Initialize(source.FromMap(map[string]any{"title": "Stepwise", "language": "fr"}))
	if err := ctl.Process(context.Background()); err != nil {
		panic(err)
	}
	ctl.Finalize()
	doc, err := ctl.Build()
	if err != nil {
		panic(err)
	}
	fmt.Println(ctl.State(), doc.DefaultLocale.Language, doc.MetadataScope.Level)
	// Output:
	// finalized fra dataset
}
