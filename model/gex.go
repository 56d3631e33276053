package model

// Extent is gex:EX_Extent.
type Extent struct {
	Description        string              `json:"description,omitempty"`
	GeographicElements []GeographicElement `json:"geographicElement"`
	VerticalElements   []VerticalExtent    `json:"verticalElement,omitempty"`
	TemporalElements   []TemporalExtent    `json:"temporalElement,omitempty"`
}

func (Extent) QName() string { return "gex:EX_Extent" }

// GeographicElement is gex:AbstractEX_GeographicExtent, implemented by
// *BoundingBox and *GeographicDescription.
type GeographicElement interface {
	QName() string
	geographic()
}

// BoundingBox is gex:EX_GeographicBoundingBox in WGS84 longitude/latitude.
// IsPoint distinguishes a degenerate box derived from a single point from an
// area box.
type BoundingBox struct {
	West    float64 `json:"westBoundLongitude"`
	East    float64 `json:"eastBoundLongitude"`
	South   float64 `json:"southBoundLatitude"`
	North   float64 `json:"northBoundLatitude"`
	IsPoint bool    `json:"isPoint"`
}

func (*BoundingBox) QName() string { return "gex:EX_GeographicBoundingBox" }
func (*BoundingBox) geographic()   {}

// PointBox returns the degenerate box of a single coordinate.
func PointBox(lon, lat float64) *BoundingBox {
	return &BoundingBox{West: lon, East: lon, South: lat, North: lat, IsPoint: true}
}

// GeographicDescription is gex:EX_GeographicDescription, a named place.
type GeographicDescription struct {
	GeographicIdentifier Identifier `json:"geographicIdentifier"`
}

func (*GeographicDescription) QName() string { return "gex:EX_GeographicDescription" }
func (*GeographicDescription) geographic()   {}

// Place returns a named-place element.
func Place(name string) *GeographicDescription {
	return &GeographicDescription{GeographicIdentifier: Identifier{Code: String(name)}}
}

// VerticalExtent is gex:EX_VerticalExtent.
type VerticalExtent struct {
	MinimumValue float64          `json:"minimumValue"`
	MaximumValue float64          `json:"maximumValue"`
	VerticalCRS  *ReferenceSystem `json:"verticalCRSId,omitempty"`
}

func (VerticalExtent) QName() string { return "gex:EX_VerticalExtent" }

// TemporalExtent is gex:EX_TemporalExtent holding a gml:TimePeriod. Positions
// are kept verbatim.
type TemporalExtent struct {
	BeginPosition string `json:"beginPosition"`
	EndPosition   string `json:"endPosition"`
}

func (TemporalExtent) QName() string { return "gex:EX_TemporalExtent" }
