package converter

import (
	"context"
	"strings"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/model"
)

// distributionStage lists the record's resources as download links of one
// distribution. Resources without a url are skipped; each distinct format is
// listed once.
func distributionStage(_ context.Context, st *State) error {
	if len(st.Doc.Document().DistributionInfo) > 0 || !st.Record.Has("resources") {
		return nil
	}
	resources, ok := st.Record.Records("resources")
	if !ok {
		st.Report(iso.Root().Field("distributionInfo").Issue(iso.CodeMalformedLiteral, "", "field", "resources"))
		return nil
	}
	fn, err := codeOf[model.OnLineFunctionCode](st, model.OnlineResource{}, "Function", string(model.FunctionDownload))
	if err != nil {
		return err
	}

	var dist model.Distribution
	var online []model.OnlineResource
	seen := map[string]bool{}
	for _, r := range resources {
		link, ok := r.NonEmpty("url")
		if !ok {
			continue
		}
		res := model.Link(link)
		res.Name = r.StringOr("name", "")
		res.Description = plainText(r.StringOr("description", ""))
		res.Function = fn
		online = append(online, res)

		if f, ok := r.NonEmpty("format"); ok && !seen[strings.ToLower(f)] {
			seen[strings.ToLower(f)] = true
			dist.Formats = append(dist.Formats, model.Format{Specification: model.Citation{Title: f}})
		}
	}
	if len(online) == 0 {
		return nil
	}
	dist.TransferOptions = []model.TransferOptions{{OnLine: online}}
	st.Doc.AddDistribution(dist)
	return nil
}
