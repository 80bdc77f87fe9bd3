// Package browse holds the shared map/list state: the viewport, the single
// selection, and the top-N ranking of the active parcel subset.  Handlers
// own the long-lived state and round-trip it through cookies; everything
// here is pure computation over explicit state values.
package browse

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/air-rights/explorer/config"
	"github.com/air-rights/explorer/geo"
	"github.com/air-rights/explorer/parcel"
)

// Viewport is the map camera: center and Leaflet zoom level.
type Viewport struct {
	Lat  float64
	Lon  float64
	Zoom int
}

// DefaultViewport returns the initial camera over midtown Manhattan.
func DefaultViewport() Viewport {
	return Viewport{Lat: config.DefaultLat, Lon: config.DefaultLon, Zoom: config.DefaultZoom}
}

// IsDefault reports whether the viewport is still the untouched default.
func (v Viewport) IsDefault() bool {
	return v == DefaultViewport()
}

// FocusOnHighestImpact centers the camera on the parcel with the highest
// impact ratio at the overview zoom.  This is the first-load auto-focus:
// it only applies while the viewport is still at its untouched default, so
// it never fights a camera the user has moved.
func (v *Viewport) FocusOnHighestImpact(parcels []parcel.Parcel) {
	if !v.IsDefault() || len(parcels) == 0 {
		return
	}

	best := -1
	for i, p := range parcels {
		if !p.ImpactRatio.Valid {
			continue
		}
		if best < 0 || p.ImpactRatio.Float64 > parcels[best].ImpactRatio.Float64 {
			best = i
		}
	}
	if best < 0 {
		// No parcel has a metric; first one with an anchor will do.
		best = 0
	}

	if lat, lon, ok := parcels[best].Anchor(); ok {
		v.Lat, v.Lon, v.Zoom = lat, lon, config.OverviewZoom
	}
}

// FocusOnBounds fits the camera to the union bounding box of the parcels'
// geometries.  No-op when no parcel contributes a usable geometry.
func (v *Viewport) FocusOnBounds(parcels []parcel.Parcel) {
	var geoms []orb.Geometry
	for _, p := range parcels {
		if p.Geometry != nil {
			geoms = append(geoms, p.Geometry)
		}
	}

	b, ok := geo.UnionBounds(geoms)
	if !ok {
		return
	}

	lonSpan := b.Max.Lon() - b.Min.Lon()
	latSpan := b.Max.Lat() - b.Min.Lat()
	span := math.Max(lonSpan, latSpan)

	v.Lat = (b.Min.Lat() + b.Max.Lat()) / 2
	v.Lon = (b.Min.Lon() + b.Max.Lon()) / 2
	v.Zoom = geo.ZoomForSpan(span)
}

// FocusOnPoint moves the camera directly.  No-op on unusable coordinates.
func (v *Viewport) FocusOnPoint(lat, lon float64, zoom int) {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return
	}
	v.Lat, v.Lon, v.Zoom = lat, lon, zoom
}
