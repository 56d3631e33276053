package model

import (
	"path"
	"strings"
)

// Identifier is mcc:MD_Identifier.
type Identifier struct {
	Code        Text      `json:"code"`
	CodeSpace   string    `json:"codeSpace,omitempty"`
	Version     string    `json:"version,omitempty"`
	Description string    `json:"description,omitempty"`
	Authority   *Citation `json:"authority,omitempty"`
}

func (Identifier) QName() string { return "mcc:MD_Identifier" }

// ID returns an identifier with a plain code.
func ID(code, codeSpace string) Identifier {
	return Identifier{Code: String(code), CodeSpace: codeSpace}
}

// Scope is mcc:MD_Scope.
type Scope struct {
	Level            ScopeCode `json:"level" iso:"codelist=mcc:MD_ScopeCode"`
	LevelDescription []string  `json:"levelDescription,omitempty"`
}

func (Scope) QName() string { return "mcc:MD_Scope" }

// BrowseGraphic is mcc:MD_BrowseGraphic.
type BrowseGraphic struct {
	FileName        string           `json:"fileName"`
	FileDescription string           `json:"fileDescription,omitempty"`
	FileType        string           `json:"fileType,omitempty"`
	Linkage         []OnlineResource `json:"linkage,omitempty"`
}

func (BrowseGraphic) QName() string { return "mcc:MD_BrowseGraphic" }

// Image returns a browse graphic named after the URL's base name.
func Image(rawURL string) BrowseGraphic {
	base := path.Base(rawURL)
	ext := path.Ext(base)
	return BrowseGraphic{
		FileName: strings.TrimSuffix(base, ext),
		FileType: ext,
		Linkage:  []OnlineResource{Link(rawURL)},
	}
}
