package codec

import (
	"context"
	"strings"
	"time"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/model"
)

// maxDateLen bounds the literal considered; longer inputs (microsecond
// fractions, trailing zone names) are truncated before parsing.
const maxDateLen = 23

// DateOptions tunes the ISO date codec.
type DateOptions struct {
	// ForceDateTime keeps midnight values as gco:DateTime instead of
	// collapsing them to gco:Date.
	ForceDateTime bool
	// Location is applied to literals without a zone. Defaults to UTC.
	Location *time.Location
}

// ISODate returns a Codec between ISO 8601 literals and document dates.
func ISODate(opts ...DateOptions) Codec[string, model.DateValue] {
	var o DateOptions
	if len(opts) > 0 {
		o = opts[len(opts)-1]
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	return &isoDateCodec{opt: o}
}

type isoDateCodec struct {
	opt DateOptions
}

// layouts accepted after truncation, most specific first.
var layouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func (c *isoDateCodec) Decode(ctx context.Context, a string) (model.DateValue, error) {
	s := strings.TrimSpace(a)
	if len(s) > maxDateLen && !hasZone(s) {
		s = s[:maxDateLen]
	}
	var (
		t   time.Time
		err error
	)
	for _, layout := range layouts {
		t, err = time.ParseInLocation(layout, s, c.opt.Location)
		if err == nil {
			break
		}
	}
	if err != nil {
		return model.DateValue{}, iso.Issues{{
			Path:    "/",
			Code:    iso.CodeInvalidDate,
			Message: "cannot format date",
			Cause:   err,
			Params:  map[string]any{"value": a},
		}}
	}
	if !c.opt.ForceDateTime && t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 {
		return model.NewDate(t), nil
	}
	return model.NewDateTime(t), nil
}

func (c *isoDateCodec) Encode(ctx context.Context, b model.DateValue) (string, error) {
	if b.IsZero() {
		return "", iso.Issues{{Path: "/", Code: iso.CodeRequired, Message: "empty date"}}
	}
	return b.String(), nil
}

// hasZone reports whether a literal carries a zone designator after the time.
func hasZone(s string) bool {
	i := strings.IndexAny(s, "T ")
	if i < 0 {
		return false
	}
	rest := s[i+1:]
	return strings.HasSuffix(rest, "Z") || strings.ContainsAny(rest, "+") || strings.Count(rest, "-") > 0
}

// ParseDate decodes an ISO 8601 literal with the default options.
func ParseDate(s string) (model.DateValue, error) {
	return ISODate().Decode(context.Background(), s)
}
