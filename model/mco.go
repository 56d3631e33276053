package model

// LegalConstraints is mco:MD_LegalConstraints.
type LegalConstraints struct {
	References        []Citation        `json:"reference,omitempty"`
	UseConstraints    []RestrictionCode `json:"useConstraints,omitempty" iso:"codelist=mco:MD_RestrictionCode"`
	AccessConstraints []RestrictionCode `json:"accessConstraints,omitempty" iso:"codelist=mco:MD_RestrictionCode"`
	OtherConstraints  []string          `json:"otherConstraints,omitempty"`
	UseLimitations    []string          `json:"useLimitation,omitempty"`
}

func (LegalConstraints) QName() string { return "mco:MD_LegalConstraints" }
