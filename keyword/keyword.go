// Package keyword turns free-text tags and parallel label/code lists into
// typed keyword collections.
package keyword

import (
	"errors"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/auscope/iso19115/literal"
	"github.com/auscope/iso19115/model"
)

var (
	// ErrEmpty is returned by AlignSource when either side holds no entries.
	ErrEmpty = errors.New("keyword: empty label or code list")
	// ErrLengthMismatch is returned by AlignSource when the label and code
	// lists differ in length.
	ErrLengthMismatch = errors.New("keyword: label and code counts differ")
	// ErrMalformed is returned by AlignSource when a source is not a list
	// literal.
	ErrMalformed = errors.New("keyword: malformed literal list")
)

// Align pairs labels with codes by position. Each label becomes an anchor
// whose href is the code at the same index. The result is absent when the
// lists differ in length or either is empty.
func Align(labels, codes []string, typ *model.KeywordTypeCode, thesaurus *model.Citation) (*model.Keywords, bool) {
	if len(labels) == 0 || len(codes) == 0 || len(labels) != len(codes) {
		return nil, false
	}
	kw := &model.Keywords{
		Keywords:      make([]model.Text, len(labels)),
		Type:          typ,
		ThesaurusName: thesaurus,
	}
	for i := range labels {
		kw.Keywords[i] = model.Anchor(labels[i], codes[i])
	}
	return kw, true
}

// AlignSource is Align over literal-encoded (or already decoded) lists.
func AlignSource(labelsSrc, codesSrc any, typ *model.KeywordTypeCode, thesaurus *model.Citation) (*model.Keywords, error) {
	labels, ok := literal.StringsOf(labelsSrc)
	if !ok {
		return nil, ErrMalformed
	}
	codes, ok := literal.StringsOf(codesSrc)
	if !ok {
		return nil, ErrMalformed
	}
	if len(labels) == 0 || len(codes) == 0 {
		return nil, ErrEmpty
	}
	kw, ok := Align(labels, codes, typ, thesaurus)
	if !ok {
		return nil, ErrLengthMismatch
	}
	return kw, nil
}

// Tags builds one keyword collection per distinct tag. Tags are strings or
// label objects ({"name": ...} or {"display_name": ...}); values are trimmed
// and NFC-normalised, and blanks and repeats are dropped.
func Tags(values []any) []model.Keywords {
	labels := TagLabels(values)
	out := make([]model.Keywords, 0, len(labels))
	for _, l := range labels {
		out = append(out, Fixed(l))
	}
	return out
}

// TagLabels returns the normalised distinct tag labels in input order.
func TagLabels(values []any) []string {
	raw := make([]string, 0, len(values))
	for _, v := range values {
		switch t := v.(type) {
		case string:
			raw = append(raw, t)
		case map[string]any:
			if s, ok := t["name"].(string); ok {
				raw = append(raw, s)
			} else if s, ok := t["display_name"].(string); ok {
				raw = append(raw, s)
			}
		}
	}
	return dedupeAndTrim(raw)
}

// Fixed returns a single-keyword collection without type or thesaurus.
func Fixed(label string) model.Keywords {
	return model.Keywords{Keywords: []model.Text{model.String(label)}}
}

func dedupeAndTrim(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := norm.NFC.String(strings.TrimSpace(v))
		if trimmed == "" {
			continue
		}
		if _, ok := seen[trimmed]; !ok {
			seen[trimmed] = struct{}{}
			result = append(result, trimmed)
		}
	}
	return result
}
