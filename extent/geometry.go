package extent

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	geom "github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/auscope/iso19115/literal"
)

var (
	ErrNoGeometry = errors.New("no geometry")
	ErrNoPoint    = errors.New("geometry holds no point")
	ErrNoPolygon  = errors.New("geometry holds no polygon")
	ErrOpenRing   = errors.New("polygon ring must have at least 4 vertices and be closed")
)

// geometry is the decoded payload: either GeoJSON geometries or bare
// coordinate arrays.
type geometry struct {
	geoms  []geom.T
	coords any
}

func decode(payload any) (geometry, error) {
	raw, err := rawJSON(payload)
	if err != nil {
		return geometry{}, err
	}
	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '[' {
		var coords any
		if err := json.Unmarshal(trimmed, &coords); err != nil {
			return geometry{}, fmt.Errorf("decode coordinates: %w", err)
		}
		return geometry{coords: coords}, nil
	}
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &head); err != nil {
		return geometry{}, fmt.Errorf("decode geometry: %w", err)
	}
	switch head.Type {
	case "FeatureCollection":
		var fc geojson.FeatureCollection
		if err := fc.UnmarshalJSON(raw); err != nil {
			return geometry{}, fmt.Errorf("decode feature collection: %w", err)
		}
		g := geometry{}
		for _, f := range fc.Features {
			if f != nil && f.Geometry != nil {
				g.geoms = append(g.geoms, f.Geometry)
			}
		}
		return g, nil
	case "Feature":
		var f geojson.Feature
		if err := f.UnmarshalJSON(raw); err != nil {
			return geometry{}, fmt.Errorf("decode feature: %w", err)
		}
		if f.Geometry == nil {
			return geometry{}, ErrNoGeometry
		}
		return geometry{geoms: []geom.T{f.Geometry}}, nil
	case "":
		return geometry{}, ErrNoGeometry
	default:
		var t geom.T
		if err := geojson.Unmarshal(raw, &t); err != nil {
			return geometry{}, fmt.Errorf("decode geometry: %w", err)
		}
		return geometry{geoms: []geom.T{t}}, nil
	}
}

// rawJSON normalises the accepted payload shapes into JSON bytes.
func rawJSON(payload any) ([]byte, error) {
	switch p := payload.(type) {
	case nil:
		return nil, ErrNoGeometry
	case []byte:
		return p, nil
	case string:
		s := strings.TrimSpace(p)
		if s == "" {
			return nil, ErrNoGeometry
		}
		if json.Valid([]byte(s)) {
			return []byte(s), nil
		}
		v, ok := literal.Parse(s)
		if !ok {
			return nil, errors.New("geometry is neither JSON nor a literal structure")
		}
		return json.Marshal(v.Any())
	default:
		return json.Marshal(p)
	}
}

func (g geometry) point() (float64, float64, error) {
	if g.geoms == nil {
		c, ok := coordinate(g.coords)
		if !ok {
			return 0, 0, ErrNoPoint
		}
		return c[0], c[1], nil
	}
	for _, t := range flatten(g.geoms) {
		switch v := t.(type) {
		case *geom.Point:
			if !v.Empty() {
				return v.X(), v.Y(), nil
			}
		case *geom.MultiPoint:
			if v.NumPoints() > 0 {
				p := v.Point(0)
				return p.X(), p.Y(), nil
			}
		}
	}
	return 0, 0, ErrNoPoint
}

func (g geometry) ring() ([][2]float64, error) {
	var ring [][2]float64
	if g.geoms == nil {
		ring = bareRing(g.coords)
		if ring == nil {
			return nil, ErrNoPolygon
		}
	} else {
		lr := firstRing(flatten(g.geoms))
		if lr == nil {
			return nil, ErrNoPolygon
		}
		for i := 0; i < lr.NumCoords(); i++ {
			c := lr.Coord(i)
			ring = append(ring, [2]float64{c[0], c[1]})
		}
	}
	if len(ring) < 4 || ring[0] != ring[len(ring)-1] {
		return nil, ErrOpenRing
	}
	return ring, nil
}

func firstRing(ts []geom.T) *geom.LinearRing {
	for _, t := range ts {
		switch v := t.(type) {
		case *geom.Polygon:
			if v.NumLinearRings() > 0 {
				return v.LinearRing(0)
			}
		case *geom.MultiPolygon:
			if v.NumPolygons() > 0 && v.Polygon(0).NumLinearRings() > 0 {
				return v.Polygon(0).LinearRing(0)
			}
		}
	}
	return nil
}

func flatten(ts []geom.T) []geom.T {
	var out []geom.T
	for _, t := range ts {
		if gc, ok := t.(*geom.GeometryCollection); ok {
			out = append(out, flatten(gc.Geoms())...)
			continue
		}
		out = append(out, t)
	}
	return out
}

func coordinate(v any) ([2]float64, bool) {
	arr, ok := v.([]any)
	if !ok || len(arr) < 2 {
		return [2]float64{}, false
	}
	x, okx := arr[0].(float64)
	y, oky := arr[1].(float64)
	return [2]float64{x, y}, okx && oky
}

// bareRing accepts [[x,y],...] or [[[x,y],...], ...] (outer ring first).
func bareRing(v any) [][2]float64 {
	arr, ok := v.([]any)
	if !ok || len(arr) == 0 {
		return nil
	}
	if inner, ok := arr[0].([]any); ok && len(inner) > 0 {
		if _, nested := inner[0].([]any); nested {
			return bareRing(inner)
		}
	}
	ring := make([][2]float64, 0, len(arr))
	for _, it := range arr {
		c, ok := coordinate(it)
		if !ok {
			return nil
		}
		ring = append(ring, c)
	}
	return ring
}
