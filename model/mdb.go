package model

// Document is mdb:MD_Metadata, the root aggregate.
type Document struct {
	MetadataIdentifier            *Identifier             `json:"metadataIdentifier,omitempty"`
	DefaultLocale                 *Locale                 `json:"defaultLocale,omitempty"`
	ParentMetadata                *Citation               `json:"parentMetadata,omitempty"`
	MetadataScope                 *Scope                  `json:"metadataScope,omitempty"`
	Contacts                      []Responsibility        `json:"contact"`
	DateInfo                      []Date                  `json:"dateInfo"`
	MetadataStandards             []Citation              `json:"metadataStandard,omitempty"`
	MetadataProfiles              []Citation              `json:"metadataProfile,omitempty"`
	AlternativeMetadataReferences []Citation              `json:"alternativeMetadataReference,omitempty"`
	OtherLocales                  []Locale                `json:"otherLocale,omitempty"`
	MetadataLinkages              []OnlineResource        `json:"metadataLinkage,omitempty"`
	SpatialRepresentationInfo     []SpatialRepresentation `json:"spatialRepresentationInfo,omitempty"`
	ReferenceSystemInfo           *ReferenceSystem        `json:"referenceSystemInfo,omitempty"`
	MetadataExtensionInfo         []ExtensionInfo         `json:"metadataExtensionInfo,omitempty"`
	IdentificationInfo            []DataIdentification    `json:"identificationInfo"`
	DistributionInfo              []Distribution          `json:"distributionInfo,omitempty"`
	DataQualityInfo               []DataQuality           `json:"dataQualityInfo,omitempty"`
	ResourceLineage               []Lineage               `json:"resourceLineage,omitempty"`
	MetadataConstraints           []LegalConstraints      `json:"metadataConstraints,omitempty"`
	MetadataMaintenance           *MaintenanceInformation `json:"metadataMaintenance,omitempty"`
}

func (Document) QName() string { return "mdb:MD_Metadata" }

// Builder accumulates a Document. Repeated fields are append-only and keep
// insertion order; singular fields are set directly. Freeze hands the
// document over and detaches the builder.
type Builder struct {
	doc *Document
}

// NewBuilder returns a builder holding an empty document.
func NewBuilder() *Builder { return &Builder{doc: &Document{}} }

func (b *Builder) d() *Document {
	if b.doc == nil {
		panic("model: builder used after Freeze")
	}
	return b.doc
}

func (b *Builder) SetMetadataIdentifier(id Identifier) { b.d().MetadataIdentifier = &id }
func (b *Builder) SetDefaultLocale(l Locale)           { b.d().DefaultLocale = &l }
func (b *Builder) SetParentMetadata(c Citation)        { b.d().ParentMetadata = &c }
func (b *Builder) SetScope(s Scope)                    { b.d().MetadataScope = &s }
func (b *Builder) SetReferenceSystem(rs ReferenceSystem) {
	b.d().ReferenceSystemInfo = &rs
}

func (b *Builder) AddContact(r Responsibility) { b.d().Contacts = append(b.d().Contacts, r) }
func (b *Builder) AddDateInfo(d Date)          { b.d().DateInfo = append(b.d().DateInfo, d) }
func (b *Builder) AddMetadataStandard(c Citation) {
	b.d().MetadataStandards = append(b.d().MetadataStandards, c)
}
func (b *Builder) AddMetadataProfile(c Citation) {
	b.d().MetadataProfiles = append(b.d().MetadataProfiles, c)
}
func (b *Builder) AddAlternativeMetadataReference(c Citation) {
	b.d().AlternativeMetadataReferences = append(b.d().AlternativeMetadataReferences, c)
}
func (b *Builder) AddOtherLocale(l Locale) { b.d().OtherLocales = append(b.d().OtherLocales, l) }
func (b *Builder) AddMetadataLinkage(r OnlineResource) {
	b.d().MetadataLinkages = append(b.d().MetadataLinkages, r)
}
func (b *Builder) AddSpatialRepresentation(s SpatialRepresentation) {
	b.d().SpatialRepresentationInfo = append(b.d().SpatialRepresentationInfo, s)
}
func (b *Builder) AddExtensionInfo(e ExtensionInfo) {
	b.d().MetadataExtensionInfo = append(b.d().MetadataExtensionInfo, e)
}
func (b *Builder) AddIdentificationInfo(i DataIdentification) {
	b.d().IdentificationInfo = append(b.d().IdentificationInfo, i)
}
func (b *Builder) AddDataQuality(q DataQuality) {
	b.d().DataQualityInfo = append(b.d().DataQualityInfo, q)
}
func (b *Builder) AddLineage(l Lineage) { b.d().ResourceLineage = append(b.d().ResourceLineage, l) }
func (b *Builder) AddDistribution(d Distribution) {
	b.d().DistributionInfo = append(b.d().DistributionInfo, d)
}
func (b *Builder) AddMetadataConstraints(c LegalConstraints) {
	b.d().MetadataConstraints = append(b.d().MetadataConstraints, c)
}
func (b *Builder) SetMetadataMaintenance(m MaintenanceInformation) { b.d().MetadataMaintenance = &m }

// Scope returns the metadata scope, if set.
func (b *Builder) Scope() (Scope, bool) {
	if s := b.d().MetadataScope; s != nil {
		return *s, true
	}
	return Scope{}, false
}

// Contacts returns a copy of the contacts added so far.
func (b *Builder) Contacts() []Responsibility {
	return append([]Responsibility(nil), b.d().Contacts...)
}

// DateInfo returns a copy of the dates added so far.
func (b *Builder) DateInfo() []Date { return append([]Date(nil), b.d().DateInfo...) }

// HasDateType reports whether a date of the given type was added.
func (b *Builder) HasDateType(t DateTypeCode) bool {
	for _, d := range b.d().DateInfo {
		if d.DateType == t {
			return true
		}
	}
	return false
}

// HasDate reports whether an equal date was added.
func (b *Builder) HasDate(d Date) bool {
	for _, x := range b.d().DateInfo {
		if x.DateType == d.DateType && x.Date.Equal(d.Date) {
			return true
		}
	}
	return false
}

// IdentificationCount returns the number of identification records.
func (b *Builder) IdentificationCount() int { return len(b.d().IdentificationInfo) }

// Identification returns a copy of the i-th identification record.
func (b *Builder) Identification(i int) DataIdentification { return b.d().IdentificationInfo[i] }

// Document returns a shallow copy of the document under construction for
// read-only inspection.
func (b *Builder) Document() Document { return *b.d() }

// ReferenceSystem returns the reference system, if set.
func (b *Builder) ReferenceSystem() (ReferenceSystem, bool) {
	if rs := b.d().ReferenceSystemInfo; rs != nil {
		return *rs, true
	}
	return ReferenceSystem{}, false
}

// FoldIdentification consolidates every identification record after the
// first into the first one: keywords, extents, constraints, associated
// resources and credits are appended in order. It returns the number of
// records folded. The first record's citation and abstract are kept.
func (b *Builder) FoldIdentification() int {
	infos := b.d().IdentificationInfo
	if len(infos) < 2 {
		return 0
	}
	head := infos[0]
	for _, x := range infos[1:] {
		head.DescriptiveKeywords = append(head.DescriptiveKeywords, x.DescriptiveKeywords...)
		head.Extents = append(head.Extents, x.Extents...)
		head.ResourceConstraints = append(head.ResourceConstraints, x.ResourceConstraints...)
		head.AssociatedResources = append(head.AssociatedResources, x.AssociatedResources...)
		head.Credits = append(head.Credits, x.Credits...)
	}
	b.d().IdentificationInfo = []DataIdentification{head}
	return len(infos) - 1
}

// Freeze hands the accumulated document to the caller. The builder must not
// be used afterwards.
func (b *Builder) Freeze() Document {
	doc := *b.d()
	b.doc = nil
	return doc
}
