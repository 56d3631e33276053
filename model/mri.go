package model

// DataIdentification is mri:MD_DataIdentification.
type DataIdentification struct {
	Citation                Citation             `json:"citation"`
	Abstract                string               `json:"abstract"`
	Purpose                 string               `json:"purpose,omitempty"`
	Credits                 []string             `json:"credit,omitempty"`
	Status                  []ProgressCode       `json:"status,omitempty" iso:"codelist=mcc:MD_ProgressCode"`
	PointOfContacts         []Responsibility     `json:"pointOfContact,omitempty"`
	TopicCategories         []TopicCategoryCode  `json:"topicCategory,omitempty" iso:"codelist=mri:MD_TopicCategoryCode"`
	Extents                 []Extent             `json:"extent,omitempty"`
	GraphicOverviews        []BrowseGraphic      `json:"graphicOverview,omitempty"`
	DescriptiveKeywords     []Keywords           `json:"descriptiveKeywords,omitempty"`
	ResourceConstraints     []LegalConstraints   `json:"resourceConstraints"`
	AssociatedResources     []AssociatedResource `json:"associatedResource,omitempty"`
	DefaultLocale           *Locale              `json:"defaultLocale,omitempty"`
	SupplementalInformation string               `json:"supplementalInformation,omitempty"`
}

func (DataIdentification) QName() string { return "mri:MD_DataIdentification" }

// Keywords is mri:MD_Keywords.
type Keywords struct {
	Keywords      []Text           `json:"keyword"`
	Type          *KeywordTypeCode `json:"type,omitempty" iso:"codelist=mri:MD_KeywordTypeCode"`
	ThesaurusName *Citation        `json:"thesaurusName,omitempty"`
}

func (Keywords) QName() string { return "mri:MD_Keywords" }

// Labels returns the keyword values in order.
func (k Keywords) Labels() []string {
	out := make([]string, 0, len(k.Keywords))
	for _, t := range k.Keywords {
		out = append(out, t.Value)
	}
	return out
}

// AssociatedResource is mri:MD_AssociatedResource.
type AssociatedResource struct {
	Name              *Citation           `json:"name,omitempty"`
	AssociationType   AssociationTypeCode `json:"associationType" iso:"codelist=mri:DS_AssociationTypeCode"`
	MetadataReference *Citation           `json:"metadataReference,omitempty"`
}

func (AssociatedResource) QName() string { return "mri:MD_AssociatedResource" }
