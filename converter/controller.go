package converter

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/i18n"
	"github.com/auscope/iso19115/metrics"
	"github.com/auscope/iso19115/model"
	"github.com/auscope/iso19115/source"
)

// Lifecycle is the state of a Controller.
type Lifecycle int

const (
	Created Lifecycle = iota
	Initialized
	Processing
	Processed
	Finalized
	Failed
)

func (l Lifecycle) String() string {
	switch l {
	case Created:
		return "created"
	case Initialized:
		return "initialized"
	case Processing:
		return "processing"
	case Processed:
		return "processed"
	case Finalized:
		return "finalized"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// Controller owns a single conversion. Calling a lifecycle method out of
// order is a programming error and panics.
type Controller struct {
	conv   *Converter
	logger *slog.Logger
	issues *iso.Collector

	state Lifecycle
	st    *State
	doc   model.Document
	built bool
}

// State returns the current lifecycle state.
func (c *Controller) State() Lifecycle { return c.state }

// Issues returns the soft issues collected so far.
func (c *Controller) Issues() iso.Issues { return c.issues.Issues() }

// Document returns a shallow copy of the document as it stands. Before
// Finalize it is the document under construction.
func (c *Controller) Document() model.Document {
	switch c.state {
	case Created:
		return model.Document{}
	case Finalized:
		return c.doc
	}
	return c.st.Doc.Document()
}

func (c *Controller) require(op string, allowed ...Lifecycle) {
	for _, s := range allowed {
		if c.state == s {
			return
		}
	}
	panic(fmt.Sprintf("converter: %s called in state %s", op, c.state))
}

// Initialize binds the source record and allocates an empty document.
func (c *Controller) Initialize(rec source.Record) {
	c.require("Initialize", Created)
	conv := c.conv
	c.st = &State{
		Record:   rec,
		Doc:      model.NewBuilder(),
		Profile:  conv.profile.Name,
		Settings: conv.profile.Settings,
		Resolver: conv.opts.registry,
		Thesauri: conv.opts.thesauri,
		Now:      conv.opts.clock,
		issues:   c.issues,
		logger:   c.logger,
	}
	c.state = Initialized
}

// RunStage runs a single stage against the document under construction.
// Stages are idempotent, so a stage may be run again.
func (c *Controller) RunStage(ctx context.Context, id StageID) error {
	c.require("RunStage", Initialized, Processing, Processed)
	if err := c.runStage(ctx, id); err != nil {
		c.fail(err)
		return err
	}
	return nil
}

func (c *Controller) runStage(ctx context.Context, id StageID) error {
	fn, ok := c.conv.stages[id]
	if !ok {
		return fmt.Errorf("converter: unknown stage %q", id)
	}
	c.st.stage = id
	start := time.Now()
	c.logger.Debug("stage start", "stage", string(id))
	err := fn(ctx, c.st)
	elapsed := time.Since(start)
	c.conv.opts.metrics.ObserveStage(string(id), elapsed)
	if err != nil {
		c.logger.Error("stage failed", "stage", string(id), "error", err, "class", iso.Classify(err).String())
		return fmt.Errorf("stage %s: %w", id, err)
	}
	c.logger.Debug("stage done", "stage", string(id), "duration", elapsed)
	return nil
}

func (c *Controller) fail(err error) {
	c.state = Failed
	outcome := metrics.OutcomeFatal
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		outcome = metrics.OutcomeCanceled
	}
	c.conv.opts.metrics.IncrementConversion(c.conv.profile.Name, outcome)
}

// Process runs the profile's stages in order. The context is checked
// before each stage. Any stage error aborts the conversion.
func (c *Controller) Process(ctx context.Context) error {
	c.require("Process", Initialized)
	c.state = Processing
	for _, id := range c.conv.profile.Stages {
		if err := ctx.Err(); err != nil {
			c.fail(err)
			return err
		}
		if err := c.runStage(ctx, id); err != nil {
			c.fail(err)
			return err
		}
	}
	c.state = Processed
	return nil
}

// Finalize ensures exactly one identification record exists and freezes the
// document. Extra identification records are folded into the first; a
// missing one is synthesised from the record title.
func (c *Controller) Finalize() {
	c.require("Finalize", Processed)
	c.st.stage = "finalize"
	b := c.st.Doc
	at := iso.Root().Field("identificationInfo")
	switch n := b.IdentificationCount(); {
	case n == 0:
		title := c.st.Record.StringOr("title", c.st.Record.StringOr("name", ""))
		b.AddIdentificationInfo(model.DataIdentification{
			Citation:            model.Citation{Title: title},
			ResourceConstraints: []model.LegalConstraints{},
		})
		c.st.Report(at.Index(0).Issue(iso.CodeDefaulted, "", "reason", "no identification record"))
	case n > 1:
		folded := b.FoldIdentification()
		c.st.Report(at.Index(0).Issue(iso.CodeFolded, "", "folded", strconv.Itoa(folded)))
	}
	c.doc = b.Freeze()
	c.state = Finalized
}

// Build returns the finished document, or a *iso19115.ConstructionError
// listing the required elements that are still missing.
func (c *Controller) Build() (model.Document, error) {
	c.require("Build", Finalized)
	var missing iso.Issues
	if c.doc.MetadataScope == nil {
		missing = append(missing, required(iso.Root().Field("metadataScope")))
	}
	if len(c.doc.IdentificationInfo) == 0 || c.doc.IdentificationInfo[0].Citation.Title == "" {
		missing = append(missing, required(
			iso.Root().Field("identificationInfo").Index(0).Field("citation").Field("title")))
	}
	first := !c.built
	c.built = true
	if len(missing) > 0 {
		if first {
			c.conv.opts.metrics.IncrementConversion(c.conv.profile.Name, metrics.OutcomeConstruction)
		}
		return model.Document{}, &iso.ConstructionError{Missing: missing}
	}
	if first {
		c.conv.opts.metrics.IncrementConversion(c.conv.profile.Name, metrics.OutcomeSuccess)
	}
	return c.doc, nil
}

func required(p iso.PathRef) iso.Issue {
	return iso.IssueAt(p, iso.CodeRequired, i18n.T(iso.CodeRequired, nil), nil)
}
