// Package extent derives the geospatial and temporal extent of a dataset.
package extent

import (
	"errors"
	"math"
	"strconv"
	"strings"

	iso "github.com/auscope/iso19115"
	"github.com/auscope/iso19115/crs"
	"github.com/auscope/iso19115/model"
)

// Kind is the location discriminator of a source record.
type Kind string

const (
	KindNone  Kind = ""
	KindPoint Kind = "point"
	KindArea  Kind = "area"
)

// Input carries the extent-related fields of a source record.
type Input struct {
	Locality  string
	Kind      Kind
	Geometry  any    // GeoJSON text, decoded GeoJSON or a literal-encoded structure
	EPSG      string // numeric code; anything else means "no transform"
	Elevation string
	Start     string
	End       string
}

// MSL is the vertical reference system used for elevations: EPSG:5714.
func MSL() model.ReferenceSystem {
	typ := model.RSTypeVertical
	return model.ReferenceSystem{
		Identifier: &model.Identifier{
			Code:        model.String("5714"),
			CodeSpace:   "EPSG",
			Description: "MSL height",
		},
		Type: &typ,
	}
}

type options struct {
	at     iso.PathRef
	lookup func(int) (crs.Transform, error)
}

// Option configures Build.
type Option func(*options)

// At roots issue paths at p (defaults to the document root).
func At(p iso.PathRef) Option { return func(o *options) { o.at = p } }

// WithLookup replaces the CRS registry lookup.
func WithLookup(fn func(int) (crs.Transform, error)) Option {
	return func(o *options) { o.lookup = fn }
}

// Build derives one Extent. All reported issues are soft: the affected
// element is omitted and the rest of the extent is still produced.
func Build(in Input, opts ...Option) (model.Extent, iso.Issues) {
	o := options{at: iso.Root(), lookup: crs.Lookup}
	for _, fn := range opts {
		fn(&o)
	}
	var (
		ext    = model.Extent{GeographicElements: []model.GeographicElement{}}
		issues iso.Issues
	)

	if loc := strings.TrimSpace(in.Locality); loc != "" {
		ext.GeographicElements = append(ext.GeographicElements, model.Place(loc))
	}

	kind := Kind(strings.ToLower(strings.TrimSpace(string(in.Kind))))
	if kind == KindPoint || kind == KindArea {
		geoPath := o.at.Field("geographicElement").Index(len(ext.GeographicElements))
		tr, err := transform(in.EPSG, o.lookup)
		if err != nil {
			is := geoPath.Issue(iso.CodeTransformUnavailable,
				"no coordinate transform for "+strconv.Quote(in.EPSG), "epsg", in.EPSG)
			is.Cause = err
			issues = append(issues, is)
		} else if box, err := boundingBox(kind, in.Geometry, tr); err != nil {
			is := geoPath.Issue(iso.CodeInvalidGeometry, err.Error(), "kind", string(kind))
			is.Cause = err
			issues = append(issues, is)
		} else {
			ext.GeographicElements = append(ext.GeographicElements, box)
		}

		ext.VerticalElements = append(ext.VerticalElements, vertical(in.Elevation))
	}

	ext.TemporalElements = append(ext.TemporalElements, model.TemporalExtent{
		BeginPosition: in.Start,
		EndPosition:   in.End,
	})
	return ext, issues
}

var errNoCode = errors.New("epsg code is not numeric")

func transform(code string, lookup func(int) (crs.Transform, error)) (crs.Transform, error) {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(strings.ToUpper(strings.TrimSpace(code)), "EPSG:")))
	if err != nil {
		return nil, errNoCode
	}
	return lookup(n)
}

func vertical(elevation string) model.VerticalExtent {
	v, err := strconv.ParseFloat(strings.TrimSpace(elevation), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	rs := MSL()
	return model.VerticalExtent{MinimumValue: v, MaximumValue: v, VerticalCRS: &rs}
}

func boundingBox(kind Kind, payload any, tr crs.Transform) (*model.BoundingBox, error) {
	g, err := decode(payload)
	if err != nil {
		return nil, err
	}
	if kind == KindPoint {
		x, y, err := g.point()
		if err != nil {
			return nil, err
		}
		lon, lat, err := tr.ToWGS84(x, y)
		if err != nil {
			return nil, err
		}
		return model.PointBox(lon, lat), nil
	}

	ring, err := g.ring()
	if err != nil {
		return nil, err
	}
	// Vertices are taken as SW, NW, NE; the ring is not checked for
	// axis alignment or winding.
	var ll [3][2]float64
	for i := range ll {
		lon, lat, err := tr.ToWGS84(ring[i][0], ring[i][1])
		if err != nil {
			return nil, err
		}
		ll[i] = [2]float64{lon, lat}
	}
	return &model.BoundingBox{
		West:  ll[0][0],
		East:  ll[2][0],
		South: ll[0][1],
		North: ll[1][1],
	}, nil
}
