package converter

import (
	"context"
	"time"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/codec"
	"github.com/auscope/iso19115/model"
	"github.com/auscope/iso19115/source"
)

// datesStage emits the explicit date_info entries, a creation date when none
// was given and a revision date. Equal dates are never appended twice.
func datesStage(ctx context.Context, st *State) error {
	at := iso.Root().Field("dateInfo")
	dateCodec := codec.ISODate()

	entries, ok := st.Record.Records("date_info")
	if !ok && st.Record.Has("date_info") {
		st.Report(at.Issue(iso.CodeMalformedLiteral, "", "field", "date_info"))
	}
	for i, e := range entries {
		typ, err := codeOf[model.DateTypeCode](st, model.Date{}, "DateType", e.StringOr("type", e.StringOr("date_type", "")))
		if err != nil {
			return err
		}
		raw, _ := e.String("date")
		v, err := dateCodec.Decode(ctx, raw)
		if err != nil {
			st.Report(dateIssue(at.Index(i), raw, err))
			continue
		}
		add(st, model.Date{Date: v, DateType: typ})
	}

	created, ok := recordDate(ctx, st, st.Record, "metadata_created", at)
	if !ok {
		created, ok = firstOfType(st.Doc.DateInfo(), model.DateCreation)
	}
	if !ok {
		created = model.NewDateTime(st.Now().UTC().Truncate(time.Second))
		st.Report(at.Issue(iso.CodeDefaulted, "", "field", "metadata_created", "value", created.String()))
	}
	if !st.Doc.HasDateType(model.DateCreation) {
		add(st, model.Date{Date: created, DateType: model.DateCreation})
	}

	// The revision date historically repeats the creation value.
	revision := created
	if st.Settings.RevisionDateSource == RevisionFromModified {
		if modified, ok := recordDate(ctx, st, st.Record, "metadata_modified", at); ok {
			revision = modified
		}
	}
	add(st, model.Date{Date: revision, DateType: model.DateRevision})
	return nil
}

func add(st *State, d model.Date) {
	if !st.Doc.HasDate(d) {
		st.Doc.AddDateInfo(d)
	}
}

func firstOfType(dates []model.Date, t model.DateTypeCode) (model.DateValue, bool) {
	for _, d := range dates {
		if d.DateType == t {
			return d.Date, true
		}
	}
	return model.DateValue{}, false
}

// recordDate parses the date under key. A present but unparseable value is
// reported.
func recordDate(ctx context.Context, st *State, rec source.Record, key string, at iso.PathRef) (model.DateValue, bool) {
	v, raw, err := decodeRecordDate(ctx, rec, key)
	if err != nil {
		is := dateIssue(at, raw, err)
		is.Params["field"] = key
		st.Report(is)
		return model.DateValue{}, false
	}
	return v, raw != ""
}

// decodeRecordDate is recordDate without reporting. raw is empty when key is
// absent.
func decodeRecordDate(ctx context.Context, rec source.Record, key string) (v model.DateValue, raw string, err error) {
	raw, ok := rec.NonEmpty(key)
	if !ok {
		return model.DateValue{}, "", nil
	}
	v, err = codec.ISODate().Decode(ctx, raw)
	return v, raw, err
}

func dateIssue(at iso.PathRef, raw string, cause error) iso.Issue {
	is := at.Issue(iso.CodeInvalidDate, "", "value", raw)
	is.Cause = cause
	return is
}
