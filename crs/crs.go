// Package crs converts coordinates given in a supported EPSG coordinate
// reference system to WGS84 longitude/latitude.
//
// Codes come from the github.com/wroge/wgs84 EPSG repository, extended with
// the Australian GDA94/GDA2020 geographic, MGA and Albers systems. Geographic
// systems whose datum has no Helmert shift (GDA94, GDA2020, NAD83, ETRS89 ...)
// are WGS84-equivalent and pass coordinates through unchanged; the sub-metre
// datum difference is below metadata precision.
package crs

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/wroge/wgs84"

	"github.com/auscope/iso19115/model"
)

// ErrUnsupportedCRS is returned by Lookup for codes without a transform.
var ErrUnsupportedCRS = errors.New("crs: unsupported coordinate reference system")

// ErrOutOfRange is returned when a coordinate cannot be converted.
var ErrOutOfRange = errors.New("crs: coordinate out of range")

// Kind classifies a coordinate reference system.
type Kind int

const (
	Geographic Kind = iota
	Projected
)

func (k Kind) String() string {
	if k == Projected {
		return "projected"
	}
	return "geographic"
}

// Info describes a registered CRS.
type Info struct {
	Code int
	Name string
	Kind Kind
}

// Transform converts between a CRS and WGS84 longitude/latitude in degrees.
type Transform interface {
	ToWGS84(x, y float64) (lon, lat float64, err error)
	FromWGS84(lon, lat float64) (x, y float64, err error)
	Describe() Info
}

// Lookup returns the transform registered for an EPSG code.
func Lookup(code int) (Transform, error) {
	ref := repository.Code(code)
	if ref == nil {
		return nil, fmt.Errorf("%w: EPSG:%d", ErrUnsupportedCRS, code)
	}
	t := transform{info: Info{Code: code, Name: name(code)}}
	switch r := ref.(type) {
	case wgs84.GeographicReferenceSystem:
		t.identity = r.Datum.Transformation == nil
	case wgs84.ProjectedReferenceSystem:
		t.info.Kind = Projected
	default:
		// Geocentric systems do not carry longitude/latitude pairs.
		return nil, fmt.Errorf("%w: EPSG:%d", ErrUnsupportedCRS, code)
	}
	t.to, t.from = wgs84.To(ref), wgs84.From(ref)
	t.maxLat = 90
	if mercatorCodes[code] {
		t.maxLat = mercatorMaxLat
	}
	return t, nil
}

// Codes lists every supported code, sorted.
func Codes() []int {
	var out []int
	for _, c := range repository.Codes() {
		if _, err := Lookup(c); err == nil {
			out = append(out, c)
		}
	}
	sort.Ints(out)
	return out
}

// ReferenceSystemType maps a CRS kind to its ISO reference system type.
func ReferenceSystemType(k Kind) model.ReferenceSystemTypeCode {
	if k == Projected {
		return model.RSTypeProjected
	}
	return model.RSTypeGeodeticGeographic2D
}

// repository is read-only after init.
var repository = newRepository()

func newRepository() *wgs84.Repository {
	r := wgs84.EPSG()
	world := wgs84.AreaFunc(func(lon, lat float64) bool { return true })
	gda := wgs84.Datum{Spheroid: wgs84.GRS80{}, Area: wgs84.AreaFunc(func(lon, lat float64) bool {
		return lon >= 93 && lon <= 174 && lat >= -60 && lat <= -8
	})}

	r.Add(4283, gda.LonLat())
	r.Add(7844, gda.LonLat())
	r.Add(4167, wgs84.Datum{Spheroid: wgs84.GRS80{}, Area: world}.LonLat())
	r.Add(4148, wgs84.Datum{Spheroid: wgs84.GRS80{}, Area: world}.LonLat())
	r.Add(3785, wgs84.WebMercator())

	for zone := 48; zone <= 58; zone++ {
		r.Add(28300+zone, mga(gda, zone))
	}
	for zone := 46; zone <= 59; zone++ {
		r.Add(7800+zone, mga(gda, zone))
	}
	r.Add(3577, gda.AlbersEqualAreaConic(132, 0, -18, -36, 0, 0))
	r.Add(9473, gda.AlbersEqualAreaConic(132, 0, -18, -36, 0, 0))
	return r
}

// mga is the southern-hemisphere UTM zone on the GDA datum.
func mga(d wgs84.Datum, zone int) wgs84.ProjectedReferenceSystem {
	return d.TransverseMercator(float64(zone*6-183), 0, 0.9996, 500000, 10000000)
}

var mercatorCodes = map[int]bool{3857: true, 900913: true, 3785: true}

var names = map[int]string{
	4326:   "WGS 84",
	4283:   "GDA94",
	7844:   "GDA2020",
	4269:   "NAD83",
	4258:   "ETRS89",
	4167:   "NZGD2000",
	4148:   "Hartebeesthoek94",
	4277:   "OSGB36",
	4314:   "DHDN",
	4171:   "RGF93",
	3857:   "WGS 84 / Pseudo-Mercator",
	900913: "Google Maps Global Mercator",
	3785:   "Popular Visualisation CRS / Mercator",
	3577:   "GDA94 / Australian Albers",
	9473:   "GDA2020 / Australian Albers",
	27700:  "OSGB36 / British National Grid",
	2154:   "RGF93 / Lambert-93",
	3035:   "ETRS89 / LAEA Europe",
}

func name(code int) string {
	if n, ok := names[code]; ok {
		return n
	}
	switch {
	case code > 32600 && code <= 32660:
		return fmt.Sprintf("WGS 84 / UTM zone %dN", code-32600)
	case code > 32700 && code <= 32760:
		return fmt.Sprintf("WGS 84 / UTM zone %dS", code-32700)
	case code >= 28348 && code <= 28358:
		return fmt.Sprintf("GDA94 / MGA zone %d", code-28300)
	case code >= 7846 && code <= 7859:
		return fmt.Sprintf("GDA2020 / MGA zone %d", code-7800)
	case code >= 25828 && code <= 25838:
		return fmt.Sprintf("ETRS89 / UTM zone %dN", code-25800)
	}
	return fmt.Sprintf("EPSG:%d", code)
}

const mercatorMaxLat = 85.0511287798066

type transform struct {
	info     Info
	identity bool
	maxLat   float64
	to, from wgs84.Func
}

func (t transform) Describe() Info { return t.info }

func (t transform) ToWGS84(x, y float64) (float64, float64, error) {
	if !finite(x, y) {
		return 0, 0, ErrOutOfRange
	}
	if t.info.Kind == Geographic && !validLonLat(x, y) {
		return 0, 0, ErrOutOfRange
	}
	if t.identity {
		return x, y, nil
	}
	lon, lat, _ := t.from(x, y, 0)
	return snap(lon, lat)
}

func (t transform) FromWGS84(lon, lat float64) (float64, float64, error) {
	if !validLonLat(lon, lat) || math.Abs(lat) > t.maxLat {
		return 0, 0, ErrOutOfRange
	}
	if t.identity {
		return lon, lat, nil
	}
	x, y, _ := t.to(lon, lat, 0)
	if !finite(x, y) {
		return 0, 0, ErrOutOfRange
	}
	return x, y, nil
}

func validLonLat(lon, lat float64) bool {
	return finite(lon, lat) && lon >= -180 && lon <= 180 && lat >= -90 && lat <= 90
}

// snap pulls values within rounding distance of the valid range back onto
// its boundary.
func snap(lon, lat float64) (float64, float64, error) {
	const eps = 1e-9
	lon = clampNear(lon, 180, eps)
	lat = clampNear(lat, 90, eps)
	if !validLonLat(lon, lat) {
		return 0, 0, ErrOutOfRange
	}
	return lon, lat, nil
}

func clampNear(v, limit, eps float64) float64 {
	if math.Abs(v) > limit && math.Abs(v) <= limit+eps {
		return math.Copysign(limit, v)
	}
	return v
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
