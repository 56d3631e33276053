package model

// Distribution is mrd:MD_Distribution.
type Distribution struct {
	Formats         []Format          `json:"distributionFormat,omitempty"`
	TransferOptions []TransferOptions `json:"transferOptions,omitempty"`
}

func (Distribution) QName() string { return "mrd:MD_Distribution" }

// Format is mrd:MD_Format. The format name is the title of its
// specification citation.
type Format struct {
	Specification Citation `json:"formatSpecificationCitation"`
}

func (Format) QName() string { return "mrd:MD_Format" }

// TransferOptions is mrd:MD_DigitalTransferOptions.
type TransferOptions struct {
	OnLine []OnlineResource `json:"onLine,omitempty"`
}

func (TransferOptions) QName() string { return "mrd:MD_DigitalTransferOptions" }
