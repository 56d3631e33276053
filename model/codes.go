package model

import (
	"strings"

	"golang.org/x/text/language"

	iso "github.com/auscope/iso19115"
)

// RoleCode is cit:CI_RoleCode.
type RoleCode string

const (
	RoleResourceProvider      RoleCode = "resourceProvider"
	RoleCustodian             RoleCode = "custodian"
	RoleOwner                 RoleCode = "owner"
	RoleUser                  RoleCode = "user"
	RoleDistributor           RoleCode = "distributor"
	RoleOriginator            RoleCode = "originator"
	RolePointOfContact        RoleCode = "pointOfContact"
	RolePrincipalInvestigator RoleCode = "principalInvestigator"
	RoleProcessor             RoleCode = "processor"
	RolePublisher             RoleCode = "publisher"
	RoleAuthor                RoleCode = "author"
	RoleSponsor               RoleCode = "sponsor"
	RoleCoAuthor              RoleCode = "coAuthor"
	RoleCollaborator          RoleCode = "collaborator"
	RoleEditor                RoleCode = "editor"
	RoleMediator              RoleCode = "mediator"
	RoleRightsHolder          RoleCode = "rightsHolder"
	RoleContributor           RoleCode = "contributor"
	RoleFunder                RoleCode = "funder"
	RoleStakeholder           RoleCode = "stakeholder"
)

var roleCodes = newCodeSet("cit:CI_RoleCode",
	"resourceProvider", "custodian", "owner", "user", "distributor", "originator",
	"pointOfContact", "principalInvestigator", "processor", "publisher", "author",
	"sponsor", "coAuthor", "collaborator", "editor", "mediator", "rightsHolder",
	"contributor", "funder", "stakeholder")

func (c RoleCode) CodeList() string { return roleCodes.qname }
func (c RoleCode) Value() string    { return string(c) }
func (c RoleCode) Valid() bool      { return roleCodes.has(string(c)) }

// ParseRoleCode validates a cit:CI_RoleCode literal.
func ParseRoleCode(s string) (RoleCode, error) { return parseCode[RoleCode](roleCodes, s) }

// DateTypeCode is cit:CI_DateTypeCode.
type DateTypeCode string

const (
	DateCreation        DateTypeCode = "creation"
	DatePublication     DateTypeCode = "publication"
	DateRevision        DateTypeCode = "revision"
	DateExpiry          DateTypeCode = "expiry"
	DateLastUpdate      DateTypeCode = "lastUpdate"
	DateLastRevision    DateTypeCode = "lastRevision"
	DateNextUpdate      DateTypeCode = "nextUpdate"
	DateUnavailable     DateTypeCode = "unavailable"
	DateInForce         DateTypeCode = "inForce"
	DateAdopted         DateTypeCode = "adopted"
	DateDeprecated      DateTypeCode = "deprecated"
	DateSuperseded      DateTypeCode = "superseded"
	DateValidityBegins  DateTypeCode = "validityBegins"
	DateValidityExpires DateTypeCode = "validityExpires"
	DateReleased        DateTypeCode = "released"
	DateDistribution    DateTypeCode = "distribution"
)

var dateTypeCodes = newCodeSet("cit:CI_DateTypeCode",
	"creation", "publication", "revision", "expiry", "lastUpdate", "lastRevision",
	"nextUpdate", "unavailable", "inForce", "adopted", "deprecated", "superseded",
	"validityBegins", "validityExpires", "released", "distribution")

func (c DateTypeCode) CodeList() string { return dateTypeCodes.qname }
func (c DateTypeCode) Value() string    { return string(c) }
func (c DateTypeCode) Valid() bool      { return dateTypeCodes.has(string(c)) }

// ParseDateTypeCode validates a cit:CI_DateTypeCode literal.
func ParseDateTypeCode(s string) (DateTypeCode, error) {
	return parseCode[DateTypeCode](dateTypeCodes, s)
}

// KeywordTypeCode is mri:MD_KeywordTypeCode.
type KeywordTypeCode string

const (
	KeywordDiscipline       KeywordTypeCode = "discipline"
	KeywordPlace            KeywordTypeCode = "place"
	KeywordStratum          KeywordTypeCode = "stratum"
	KeywordTemporal         KeywordTypeCode = "temporal"
	KeywordTheme            KeywordTypeCode = "theme"
	KeywordDataCentre       KeywordTypeCode = "dataCentre"
	KeywordFeatureType      KeywordTypeCode = "featureType"
	KeywordInstrument       KeywordTypeCode = "instrument"
	KeywordPlatform         KeywordTypeCode = "platform"
	KeywordProcess          KeywordTypeCode = "process"
	KeywordProject          KeywordTypeCode = "project"
	KeywordService          KeywordTypeCode = "service"
	KeywordProduct          KeywordTypeCode = "product"
	KeywordSubTopicCategory KeywordTypeCode = "subTopicCategory"
	KeywordTaxon            KeywordTypeCode = "taxon"
)

var keywordTypeCodes = newCodeSet("mri:MD_KeywordTypeCode",
	"discipline", "place", "stratum", "temporal", "theme", "dataCentre",
	"featureType", "instrument", "platform", "process", "project", "service",
	"product", "subTopicCategory", "taxon")

func (c KeywordTypeCode) CodeList() string { return keywordTypeCodes.qname }
func (c KeywordTypeCode) Value() string    { return string(c) }
func (c KeywordTypeCode) Valid() bool      { return keywordTypeCodes.has(string(c)) }

// ParseKeywordTypeCode validates a mri:MD_KeywordTypeCode literal.
func ParseKeywordTypeCode(s string) (KeywordTypeCode, error) {
	return parseCode[KeywordTypeCode](keywordTypeCodes, s)
}

// ScopeCode is mcc:MD_ScopeCode.
type ScopeCode string

const (
	ScopeDataset              ScopeCode = "dataset"
	ScopeSeries               ScopeCode = "series"
	ScopeNonGeographicDataset ScopeCode = "nonGeographicDataset"
	ScopeService              ScopeCode = "service"
	ScopeSoftware             ScopeCode = "software"
	ScopeCollection           ScopeCode = "collection"
	ScopeDocument             ScopeCode = "document"
	ScopeModel                ScopeCode = "model"
	ScopeSample               ScopeCode = "sample"
)

var scopeCodes = newCodeSet("mcc:MD_ScopeCode",
	"attribute", "attributeType", "collectionHardware", "collectionSession",
	"dataset", "series", "nonGeographicDataset", "dimensionGroup", "feature",
	"featureType", "propertyType", "fieldSession", "software", "service", "model",
	"tile", "metadata", "initiative", "sample", "document", "repository",
	"aggregate", "product", "collection", "coverage", "application")

func (c ScopeCode) CodeList() string { return scopeCodes.qname }
func (c ScopeCode) Value() string    { return string(c) }
func (c ScopeCode) Valid() bool      { return scopeCodes.has(string(c)) }

// ParseScopeCode validates a mcc:MD_ScopeCode literal.
func ParseScopeCode(s string) (ScopeCode, error) { return parseCode[ScopeCode](scopeCodes, s) }

// AssociationTypeCode is mri:DS_AssociationTypeCode.
type AssociationTypeCode string

const (
	AssociationCrossReference         AssociationTypeCode = "crossReference"
	AssociationLargerWorkCitation     AssociationTypeCode = "largerWorkCitation"
	AssociationPartOfSeamlessDatabase AssociationTypeCode = "partOfSeamlessDatabase"
	AssociationIsComposedOf           AssociationTypeCode = "isComposedOf"
	AssociationCollectiveTitle        AssociationTypeCode = "collectiveTitle"
	AssociationSeries                 AssociationTypeCode = "series"
	AssociationDependency             AssociationTypeCode = "dependency"
	AssociationRevisionOf             AssociationTypeCode = "revisionOf"
)

var associationTypeCodes = newCodeSet("mri:DS_AssociationTypeCode",
	"crossReference", "largerWorkCitation", "partOfSeamlessDatabase",
	"isComposedOf", "collectiveTitle", "series", "dependency", "revisionOf")

func (c AssociationTypeCode) CodeList() string { return associationTypeCodes.qname }
func (c AssociationTypeCode) Value() string    { return string(c) }
func (c AssociationTypeCode) Valid() bool      { return associationTypeCodes.has(string(c)) }

// ParseAssociationTypeCode validates a mri:DS_AssociationTypeCode literal.
func ParseAssociationTypeCode(s string) (AssociationTypeCode, error) {
	return parseCode[AssociationTypeCode](associationTypeCodes, s)
}

// RestrictionCode is mco:MD_RestrictionCode.
type RestrictionCode string

const (
	RestrictionCopyright           RestrictionCode = "copyright"
	RestrictionLicence             RestrictionCode = "licence"
	RestrictionOtherRestrictions   RestrictionCode = "otherRestrictions"
	RestrictionUnrestricted        RestrictionCode = "unrestricted"
	RestrictionLicenceUnrestricted RestrictionCode = "licenceUnrestricted"
)

var restrictionCodes = newCodeSet("mco:MD_RestrictionCode",
	"copyright", "patent", "patentPending", "trademark", "licence",
	"intellectualPropertyRights", "restricted", "otherRestrictions",
	"unrestricted", "licenceUnrestricted", "licenceEndUser",
	"licenceDistributor", "private", "statutory", "confidential",
	"sensitiveButUnclassified", "in-confidence")

func (c RestrictionCode) CodeList() string { return restrictionCodes.qname }
func (c RestrictionCode) Value() string    { return string(c) }
func (c RestrictionCode) Valid() bool      { return restrictionCodes.has(string(c)) }

// ParseRestrictionCode validates a mco:MD_RestrictionCode literal.
func ParseRestrictionCode(s string) (RestrictionCode, error) {
	return parseCode[RestrictionCode](restrictionCodes, s)
}

// ReferenceSystemTypeCode is mrs:MD_ReferenceSystemTypeCode.
type ReferenceSystemTypeCode string

const (
	RSTypeGeodeticGeographic2D ReferenceSystemTypeCode = "geodeticGeographic2D"
	RSTypeProjected            ReferenceSystemTypeCode = "projected"
	RSTypeVertical             ReferenceSystemTypeCode = "vertical"
)

var referenceSystemTypeCodes = newCodeSet("mrs:MD_ReferenceSystemTypeCode",
	"compoundGeographic2DVertical", "compoundProjected2DVertical", "engineering",
	"geodeticGeocentric", "geodeticGeographic2D", "geodeticGeographic3D",
	"geographicIdentifier", "linear", "parametric", "projected", "temporal",
	"vertical")

func (c ReferenceSystemTypeCode) CodeList() string { return referenceSystemTypeCodes.qname }
func (c ReferenceSystemTypeCode) Value() string    { return string(c) }
func (c ReferenceSystemTypeCode) Valid() bool      { return referenceSystemTypeCodes.has(string(c)) }

// ParseReferenceSystemTypeCode validates a mrs:MD_ReferenceSystemTypeCode literal.
func ParseReferenceSystemTypeCode(s string) (ReferenceSystemTypeCode, error) {
	return parseCode[ReferenceSystemTypeCode](referenceSystemTypeCodes, s)
}

// OnLineFunctionCode is cit:CI_OnLineFunctionCode.
type OnLineFunctionCode string

const (
	FunctionDownload         OnLineFunctionCode = "download"
	FunctionInformation      OnLineFunctionCode = "information"
	FunctionCompleteMetadata OnLineFunctionCode = "completeMetadata"
	FunctionBrowsing         OnLineFunctionCode = "browsing"
)

var onLineFunctionCodes = newCodeSet("cit:CI_OnLineFunctionCode",
	"download", "information", "offlineAccess", "order", "search",
	"completeMetadata", "browseGraphic", "upload", "emailService", "browsing",
	"fileAccess")

func (c OnLineFunctionCode) CodeList() string { return onLineFunctionCodes.qname }
func (c OnLineFunctionCode) Value() string    { return string(c) }
func (c OnLineFunctionCode) Valid() bool      { return onLineFunctionCodes.has(string(c)) }

// ParseOnLineFunctionCode validates a cit:CI_OnLineFunctionCode literal.
func ParseOnLineFunctionCode(s string) (OnLineFunctionCode, error) {
	return parseCode[OnLineFunctionCode](onLineFunctionCodes, s)
}

// MaintenanceFrequencyCode is mmi:MD_MaintenanceFrequencyCode.
type MaintenanceFrequencyCode string

const (
	MaintenanceAsNeeded   MaintenanceFrequencyCode = "asNeeded"
	MaintenanceIrregular  MaintenanceFrequencyCode = "irregular"
	MaintenanceNotPlanned MaintenanceFrequencyCode = "notPlanned"
	MaintenanceUnknown    MaintenanceFrequencyCode = "unknown"
)

var maintenanceFrequencyCodes = newCodeSet("mmi:MD_MaintenanceFrequencyCode",
	"continual", "daily", "weekly", "fortnightly", "monthly", "quarterly",
	"biannually", "annually", "asNeeded", "irregular", "notPlanned", "unknown",
	"periodic", "semimonthly", "biennially")

func (c MaintenanceFrequencyCode) CodeList() string { return maintenanceFrequencyCodes.qname }
func (c MaintenanceFrequencyCode) Value() string    { return string(c) }
func (c MaintenanceFrequencyCode) Valid() bool      { return maintenanceFrequencyCodes.has(string(c)) }

// ParseMaintenanceFrequencyCode validates a mmi:MD_MaintenanceFrequencyCode
// literal.
func ParseMaintenanceFrequencyCode(s string) (MaintenanceFrequencyCode, error) {
	return parseCode[MaintenanceFrequencyCode](maintenanceFrequencyCodes, s)
}

// TelephoneTypeCode is cit:CI_TelephoneTypeCode.
type TelephoneTypeCode string

var telephoneTypeCodes = newCodeSet("cit:CI_TelephoneTypeCode", "voice", "facsimile", "sms")

func (c TelephoneTypeCode) CodeList() string { return telephoneTypeCodes.qname }
func (c TelephoneTypeCode) Value() string    { return string(c) }
func (c TelephoneTypeCode) Valid() bool      { return telephoneTypeCodes.has(string(c)) }

// ParseTelephoneTypeCode validates a cit:CI_TelephoneTypeCode literal.
func ParseTelephoneTypeCode(s string) (TelephoneTypeCode, error) {
	return parseCode[TelephoneTypeCode](telephoneTypeCodes, s)
}

// TopicCategoryCode is the mri:MD_TopicCategoryCode enumeration.
type TopicCategoryCode string

const TopicGeoscientificInformation TopicCategoryCode = "geoscientificInformation"

var topicCategoryCodes = newCodeSet("mri:MD_TopicCategoryCode",
	"farming", "biota", "boundaries", "climatologyMeteorologyAtmosphere",
	"economy", "elevation", "environment", "geoscientificInformation", "health",
	"imageryBaseMapsEarthCover", "intelligenceMilitary", "inlandWaters",
	"location", "oceans", "planningCadastre", "society", "structure",
	"transportation", "utilitiesCommunication", "extraTerrestrial", "disaster")

func (c TopicCategoryCode) CodeList() string { return topicCategoryCodes.qname }
func (c TopicCategoryCode) Value() string    { return string(c) }
func (c TopicCategoryCode) Valid() bool      { return topicCategoryCodes.has(string(c)) }

// ParseTopicCategoryCode validates a mri:MD_TopicCategoryCode literal.
func ParseTopicCategoryCode(s string) (TopicCategoryCode, error) {
	return parseCode[TopicCategoryCode](topicCategoryCodes, s)
}

// ProgressCode is mcc:MD_ProgressCode.
type ProgressCode string

const (
	ProgressCompleted ProgressCode = "completed"
	ProgressOnGoing   ProgressCode = "onGoing"
)

var progressCodes = newCodeSet("mcc:MD_ProgressCode",
	"completed", "historicalArchive", "obsolete", "onGoing", "planned",
	"required", "underDevelopment", "final", "pending", "retired", "superseded",
	"tentative", "valid", "accepted", "notAccepted", "withdrawn", "proposed",
	"deprecated")

func (c ProgressCode) CodeList() string { return progressCodes.qname }
func (c ProgressCode) Value() string    { return string(c) }
func (c ProgressCode) Valid() bool      { return progressCodes.has(string(c)) }

// ParseProgressCode validates a mcc:MD_ProgressCode literal.
func ParseProgressCode(s string) (ProgressCode, error) {
	return parseCode[ProgressCode](progressCodes, s)
}

// CharacterSetCode is lan:MD_CharacterSetCode.
type CharacterSetCode string

const CharsetUTF8 CharacterSetCode = "utf8"

var characterSetCodes = newCodeSet("lan:MD_CharacterSetCode",
	"ucs2", "ucs4", "utf7", "utf8", "utf16", "8859part1", "8859part2",
	"8859part15", "jis", "shiftJIS", "eucJP", "usAscii", "ebcdic", "eucKR",
	"big5", "GB2312")

func (c CharacterSetCode) CodeList() string { return characterSetCodes.qname }
func (c CharacterSetCode) Value() string    { return string(c) }
func (c CharacterSetCode) Valid() bool      { return characterSetCodes.has(string(c)) }

// ParseCharacterSetCode validates a lan:MD_CharacterSetCode literal.
func ParseCharacterSetCode(s string) (CharacterSetCode, error) {
	return parseCode[CharacterSetCode](characterSetCodes, s)
}

// TopologyLevelCode is msr:MD_TopologyLevelCode.
type TopologyLevelCode string

const TopologyGeometryOnly TopologyLevelCode = "geometryOnly"

var topologyLevelCodes = newCodeSet("msr:MD_TopologyLevelCode",
	"geometryOnly", "topology1D", "planarGraph", "fullPlanarGraph",
	"surfaceGraph", "fullSurfaceGraph", "topology3D", "fullTopology3D", "abstract")

func (c TopologyLevelCode) CodeList() string { return topologyLevelCodes.qname }
func (c TopologyLevelCode) Value() string    { return string(c) }
func (c TopologyLevelCode) Valid() bool      { return topologyLevelCodes.has(string(c)) }

// ParseTopologyLevelCode validates a msr:MD_TopologyLevelCode literal.
func ParseTopologyLevelCode(s string) (TopologyLevelCode, error) {
	return parseCode[TopologyLevelCode](topologyLevelCodes, s)
}

// GeometricObjectTypeCode is msr:MD_GeometricObjectTypeCode.
type GeometricObjectTypeCode string

const (
	GeometricPoint   GeometricObjectTypeCode = "point"
	GeometricSurface GeometricObjectTypeCode = "surface"
)

var geometricObjectTypeCodes = newCodeSet("msr:MD_GeometricObjectTypeCode",
	"complex", "composite", "curve", "point", "solid", "surface")

func (c GeometricObjectTypeCode) CodeList() string { return geometricObjectTypeCodes.qname }
func (c GeometricObjectTypeCode) Value() string    { return string(c) }
func (c GeometricObjectTypeCode) Valid() bool      { return geometricObjectTypeCodes.has(string(c)) }

// ParseGeometricObjectTypeCode validates a msr:MD_GeometricObjectTypeCode literal.
func ParseGeometricObjectTypeCode(s string) (GeometricObjectTypeCode, error) {
	return parseCode[GeometricObjectTypeCode](geometricObjectTypeCodes, s)
}

// QNameLanguageCode is the qualified name of LanguageCode.
const QNameLanguageCode = "lan:LanguageCode"

// LanguageCode is lan:LanguageCode, an ISO 639-2/T three-letter code.
type LanguageCode string

// LanguageEnglish is the default metadata language.
const LanguageEnglish LanguageCode = "eng"

func (c LanguageCode) CodeList() string { return QNameLanguageCode }
func (c LanguageCode) Value() string    { return string(c) }

// Valid reports whether the code is a known ISO 639 three-letter language.
func (c LanguageCode) Valid() bool {
	if len(c) != 3 || strings.ToLower(string(c)) != string(c) {
		return false
	}
	_, err := language.ParseBase(string(c))
	return err == nil
}

// ParseLanguageCode validates a lan:LanguageCode literal.
func ParseLanguageCode(s string) (LanguageCode, error) {
	c := LanguageCode(s)
	if !c.Valid() {
		return "", &iso.InvalidCodeValue{CodeList: QNameLanguageCode, Value: s}
	}
	return c, nil
}
