// Package geo holds the geometry math for the map view: decoding parcel
// GeoJSON, anchor points, bounding boxes and the span-to-zoom heuristic.
package geo

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

var ErrUnsupportedGeometry = errors.New("geo: unsupported geometry type")

// Decode parses a GeoJSON geometry string into an orb Polygon or
// MultiPolygon.  Any other geometry type is rejected.
func Decode(raw string) (orb.Geometry, error) {
	g, err := geojson.UnmarshalGeometry([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("geo: decoding geometry: %w", err)
	}

	geom := g.Geometry()
	switch geom.(type) {
	case orb.Polygon, orb.MultiPolygon:
		return geom, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGeometry, geom.GeoJSONType())
	}
}

// visitPoints walks every coordinate pair in every ring of the geometry.
// All traversal-based helpers below go through here so polygons and
// multipolygons are handled in one place.
func visitPoints(geom orb.Geometry, fn func(orb.Point)) {
	switch g := geom.(type) {
	case orb.Polygon:
		for _, ring := range g {
			for _, pt := range ring {
				fn(pt)
			}
		}
	case orb.MultiPolygon:
		for _, poly := range g {
			for _, ring := range poly {
				for _, pt := range ring {
					fn(pt)
				}
			}
		}
	}
}

// Anchor returns a representative (lat, lon) for a parcel geometry: the
// first vertex of the first ring.  Not a centroid, but deterministic and
// always on the parcel outline.
func Anchor(geom orb.Geometry) (lat, lon float64, ok bool) {
	switch g := geom.(type) {
	case orb.Polygon:
		if len(g) > 0 && len(g[0]) > 0 {
			return g[0][0].Lat(), g[0][0].Lon(), true
		}
	case orb.MultiPolygon:
		if len(g) > 0 && len(g[0]) > 0 && len(g[0][0]) > 0 {
			return g[0][0][0].Lat(), g[0][0][0].Lon(), true
		}
	}
	return 0, 0, false
}

// Bounds returns the bounding box of a geometry, visiting every coordinate
// of every ring.  ok is false when the geometry is nil or has no points.
func Bounds(geom orb.Geometry) (orb.Bound, bool) {
	if geom == nil {
		return orb.Bound{}, false
	}

	var b orb.Bound
	found := false
	visitPoints(geom, func(pt orb.Point) {
		if !found {
			b = orb.Bound{Min: pt, Max: pt}
			found = true
			return
		}
		b = b.Extend(pt)
	})
	return b, found
}

// UnionBounds folds Bounds over a set of geometries.  ok is false when the
// input is empty or no geometry yields a bound.
func UnionBounds(geoms []orb.Geometry) (orb.Bound, bool) {
	var union orb.Bound
	found := false
	for _, geom := range geoms {
		b, ok := Bounds(geom)
		if !ok {
			continue
		}
		if !found {
			union = b
			found = true
			continue
		}
		union = union.Union(b)
	}
	return union, found
}

// zoomBreaks maps a coordinate span (degrees) to a Leaflet zoom level.
// Larger spans mean a wider view and a smaller zoom.  The exact breakpoints
// are visual tuning, not contract.
var zoomBreaks = []struct {
	span float64
	zoom int
}{
	{0.30, 10},
	{0.15, 11},
	{0.08, 12},
	{0.04, 13},
	{0.02, 14},
}

// ZoomForSpan chooses a zoom level for a coordinate span.  Monotonically
// non-increasing in the span, bounded to [10, 15].
func ZoomForSpan(span float64) int {
	for _, bp := range zoomBreaks {
		if span > bp.span {
			return bp.zoom
		}
	}
	return 15
}
