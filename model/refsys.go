package model

// ReferenceSystem is mrs:MD_ReferenceSystem.
type ReferenceSystem struct {
	Identifier *Identifier              `json:"referenceSystemIdentifier,omitempty"`
	Type       *ReferenceSystemTypeCode `json:"referenceSystemType,omitempty" iso:"codelist=mrs:MD_ReferenceSystemTypeCode"`
}

func (ReferenceSystem) QName() string { return "mrs:MD_ReferenceSystem" }

// Locale is lan:PT_Locale.
type Locale struct {
	Language          LanguageCode     `json:"language" iso:"codelist=lan:LanguageCode"`
	Country           string           `json:"country,omitempty"`
	CharacterEncoding CharacterSetCode `json:"characterEncoding" iso:"codelist=lan:MD_CharacterSetCode"`
}

func (Locale) QName() string { return "lan:PT_Locale" }

// Lineage is mrl:LI_Lineage.
type Lineage struct {
	Statement string `json:"statement"`
	Scope     *Scope `json:"scope,omitempty"`
}

func (Lineage) QName() string { return "mrl:LI_Lineage" }

// SpatialRepresentation is msr:MD_VectorSpatialRepresentation.
type SpatialRepresentation struct {
	TopologyLevel    TopologyLevelCode  `json:"topologyLevel" iso:"codelist=msr:MD_TopologyLevelCode"`
	GeometricObjects []GeometricObjects `json:"geometricObjects,omitempty"`
}

func (SpatialRepresentation) QName() string { return "msr:MD_VectorSpatialRepresentation" }

// GeometricObjects is msr:MD_GeometricObjects.
type GeometricObjects struct {
	Type  GeometricObjectTypeCode `json:"geometricObjectType" iso:"codelist=msr:MD_GeometricObjectTypeCode"`
	Count int                     `json:"geometricObjectCount,omitempty"`
}

func (GeometricObjects) QName() string { return "msr:MD_GeometricObjects" }

// DataQuality is mdq:DQ_DataQuality with a free-text standalone report.
type DataQuality struct {
	Scope  Scope  `json:"scope"`
	Report string `json:"standaloneQualityReport,omitempty"`
}

func (DataQuality) QName() string { return "mdq:DQ_DataQuality" }

// ExtensionInfo is mex:MD_MetadataExtensionInformation reduced to the
// extension's online resource.
type ExtensionInfo struct {
	ExtensionOnLineResource OnlineResource `json:"extensionOnLineResource"`
}

func (ExtensionInfo) QName() string { return "mex:MD_MetadataExtensionInformation" }
