package converter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/i18n"
	"github.com/auscope/iso19115/keyword"
	"github.com/auscope/iso19115/model"
	"github.com/auscope/iso19115/resolver"
	"github.com/auscope/iso19115/source"
)

// StageID names a pipeline stage.
type StageID string

const (
	StageIdentifier            StageID = "identifier"
	StageDefaultLocale         StageID = "default-locale"
	StageParent                StageID = "parent"
	StageScope                 StageID = "scope"
	StageStandard              StageID = "standard"
	StageProfile               StageID = "profile"
	StageAlternativeReference  StageID = "alternative-reference"
	StageOtherLocale           StageID = "other-locale"
	StageSpatialRepresentation StageID = "spatial-representation"
	StageReferenceSystem       StageID = "reference-system"
	StageMetadataExtension     StageID = "metadata-extension"
	StageDataQuality           StageID = "data-quality"
	StageContacts              StageID = "contacts"
	StageLineage               StageID = "lineage"
	StageMetadataLinkage       StageID = "metadata-linkage"
	StageIdentification        StageID = "identification"
	StageDates                 StageID = "dates"
	StageDistribution          StageID = "distribution"
	StageMetadataConstraints   StageID = "constraints"
	StageMaintenance           StageID = "maintenance"
)

// StageFunc populates the document fields owned by one stage. A returned
// error aborts the conversion; field-level problems go to State.Report.
type StageFunc func(ctx context.Context, st *State) error

// builtinStages maps every known stage id to its implementation.
var builtinStages = map[StageID]StageFunc{
	StageIdentifier:            identifierStage,
	StageDefaultLocale:         defaultLocaleStage,
	StageParent:                parentStage,
	StageScope:                 scopeStage,
	StageStandard:              standardStage,
	StageProfile:               profileStage,
	StageAlternativeReference:  alternativeReferenceStage,
	StageOtherLocale:           otherLocaleStage,
	StageSpatialRepresentation: spatialRepresentationStage,
	StageReferenceSystem:       referenceSystemStage,
	StageMetadataExtension:     metadataExtensionStage,
	StageDataQuality:           dataQualityStage,
	StageContacts:              contactsStage,
	StageLineage:               lineageStage,
	StageMetadataLinkage:       metadataLinkageStage,
	StageIdentification:        identificationStage,
	StageDates:                 datesStage,
	StageDistribution:          distributionStage,
	StageMetadataConstraints:   metadataConstraintsStage,
	StageMaintenance:           maintenanceStage,
}

// KnownStage reports whether id names a built-in stage.
func KnownStage(id StageID) bool {
	_, ok := builtinStages[id]
	return ok
}

// State is what a stage sees: the source record, the document under
// construction and the conversion's shared configuration.
type State struct {
	Record   source.Record
	Doc      *model.Builder
	Profile  string
	Settings Settings
	Resolver *resolver.Registry
	Thesauri *keyword.Registry
	Now      func() time.Time

	stage  StageID
	issues *iso.Collector
	logger *slog.Logger
}

// Logger returns the conversion logger scoped to the running stage.
func (st *State) Logger() *slog.Logger { return st.logger.With("stage", string(st.stage)) }

// Stage returns the id of the running stage.
func (st *State) Stage() StageID { return st.stage }

// Report records a soft issue attributed to the running stage. Issues
// without a message get the translated message for their code.
func (st *State) Report(is iso.Issue) {
	is.Stage = string(st.stage)
	if is.Message == "" {
		is.Message = i18n.T(is.Code, stringParams(is.Params))
	}
	st.issues.Add(is)
}

// Codelist constructs the value of a codelist-restricted field through the
// resolver, e.g. Codelist(model.Scope{}, "Level", "dataset").
func (st *State) Codelist(structValue any, field, literal string) (model.Codelist, error) {
	return st.Resolver.ForField(structValue, field, literal)
}

func stringParams(p map[string]any) map[string]string {
	if len(p) == 0 {
		return nil
	}
	out := make(map[string]string, len(p))
	for k, v := range p {
		out[k] = fmt.Sprint(v)
	}
	return out
}
