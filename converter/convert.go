package converter

import (
	"bytes"
	"context"
	"io"

	"github.com/goccy/go-json"
	"golang.org/x/sync/errgroup"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/model"
	"github.com/auscope/iso19115/source"
)

// Convert runs the whole lifecycle for one record. Soft issues are returned
// alongside the document; err is fatal or a *iso19115.ConstructionError.
func (c *Converter) Convert(ctx context.Context, rec source.Record) (model.Document, iso.Issues, error) {
	ctl := c.NewController()
	ctl.Initialize(rec)
	if err := ctl.Process(ctx); err != nil {
		return model.Document{}, ctl.Issues(), err
	}
	ctl.Finalize()
	doc, err := ctl.Build()
	return doc, ctl.Issues(), err
}

// Convert builds a converter for profile and converts rec.
func Convert(ctx context.Context, rec source.Record, profile Profile, opts ...Option) (model.Document, iso.Issues, error) {
	c, err := New(profile, opts...)
	if err != nil {
		return model.Document{}, nil, err
	}
	return c.Convert(ctx, rec)
}

// Result is the outcome of one conversion of a batch.
type Result struct {
	Index    int
	Document model.Document
	Issues   iso.Issues
	Err      error
}

// ConvertAll converts records concurrently, at most limit at a time (no
// limit when limit <= 0). A failed record does not stop the others; its
// error is in its Result. The returned error is the context's.
func ConvertAll(ctx context.Context, recs []source.Record, profile Profile, limit int, opts ...Option) ([]Result, error) {
	c, err := New(profile, opts...)
	if err != nil {
		return nil, err
	}
	return c.ConvertAll(ctx, recs, limit)
}

// ConvertAll is the package-level ConvertAll on an existing converter.
func (c *Converter) ConvertAll(ctx context.Context, recs []source.Record, limit int) ([]Result, error) {
	results := make([]Result, len(recs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, rec := range recs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = Result{Index: i, Err: err}
				return err
			}
			doc, issues, err := c.Convert(ctx, rec)
			results[i] = Result{Index: i, Document: doc, Issues: issues, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// Serializer encodes a finished document, e.g. to ISO 19139 XML.
type Serializer interface {
	Serialize(ctx context.Context, doc model.Document, w io.Writer) error
}

// Validator checks serialized output against external schemas.
type Validator interface {
	Validate(ctx context.Context, content []byte) error
}

// Publish hands doc to the collaborators. Failures are wrapped in a
// *iso19115.StageError naming the collaborator, so they stay distinct from
// construction failures. A nil validator skips validation.
func Publish(ctx context.Context, doc model.Document, ser Serializer, val Validator) ([]byte, error) {
	var buf bytes.Buffer
	if err := ser.Serialize(ctx, doc, &buf); err != nil {
		return nil, &iso.StageError{Stage: iso.StageSerialize, Err: err}
	}
	if val != nil {
		if err := val.Validate(ctx, buf.Bytes()); err != nil {
			return buf.Bytes(), &iso.StageError{Stage: iso.StageValidate, Err: err}
		}
	}
	return buf.Bytes(), nil
}

// JSONSerializer writes the document model as JSON. It stands in for the
// XML serializer in tools and tests.
type JSONSerializer struct {
	Indent bool
}

func (s JSONSerializer) Serialize(_ context.Context, doc model.Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	if s.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(doc)
}
