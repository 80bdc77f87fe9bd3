package ui

import (
	"fmt"

	"github.com/paulmach/orb/geojson"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/air-rights/explorer/browse"
	"github.com/air-rights/explorer/impact"
	"github.com/air-rights/explorer/parcel"
)

// MapPanel renders the interactive map: a Leaflet container, a hidden data
// block with one element per parcel (geometry, color, tooltip fields), and
// the camera init script for the current viewport.
func MapPanel(parcels []parcel.Parcel, sel browse.Selection, vp browse.Viewport) g.Node {
	return Div(
		Class("w-full"),
		H2(Class("text-2xl font-semibold mb-2"), g.Text("Interactive Map")),
		Button(
			Type("button"),
			Class("mb-2 px-3 py-1 border rounded bg-gray-100 hover:bg-gray-200 text-sm"),
			hx.Post("/list/from-view"),
			hx.Include("#map-state"),
			hx.Target("#explorer"),
			hx.Swap("outerHTML"),
			g.Text("Update Top 10 from current map view"),
		),
		// map.js keeps these in sync with the camera on every move.
		Div(
			ID("map-state"),
			Input(Type("hidden"), ID("map-lat"), Name("lat"), Value(fmt.Sprintf("%f", vp.Lat))),
			Input(Type("hidden"), ID("map-lon"), Name("lon"), Value(fmt.Sprintf("%f", vp.Lon))),
			Input(Type("hidden"), ID("map-zoom"), Name("zoom"), Value(fmt.Sprintf("%d", vp.Zoom))),
		),
		Div(
			Class("h-96 w-full rounded border bg-gray-50"),
			Div(
				ID("map-container"),
				Class("h-full w-full"),
				Style("border-radius: inherit; overflow: hidden;"),
			),
			Div(
				ID("map-data"),
				Class("hidden"),
				g.Group(parcelDataElements(parcels, sel)),
			),
			Script(
				Type("text/javascript"),
				g.Raw(fmt.Sprintf("initParcelMap({lat: %f, lon: %f, zoom: %d});", vp.Lat, vp.Lon, vp.Zoom)),
			),
		),
	)
}

// parcelDataElements emits one hidden element per parcel carrying the
// GeoJSON footprint, fill color and tooltip fields for map.js.
func parcelDataElements(parcels []parcel.Parcel, sel browse.Selection) []g.Node {
	var elements []g.Node
	for _, p := range parcels {
		if p.Geometry == nil {
			continue
		}

		raw, err := geojson.NewGeometry(p.Geometry).MarshalJSON()
		if err != nil {
			continue
		}

		category := impact.ForRatio(p.ImpactRatio)
		if sel.BBL != "" && p.BBL == sel.BBL {
			category = impact.Selected
		}
		rgb := category.RGB()

		elements = append(elements,
			Div(
				Class("hidden"),
				g.Attr("data-bbl", p.BBL),
				g.Attr("data-geometry", string(raw)),
				g.Attr("data-color", fmt.Sprintf("%d,%d,%d", rgb[0], rgb[1], rgb[2])),
				g.Attr("data-address", p.Address),
				g.Attr("data-borough", p.Borough),
				g.Attr("data-zip", p.Zip),
				g.Attr("data-impact", FormatPercentFromRatio(p.ImpactRatio)),
				g.Attr("data-new-units", FormatInt(p.NewUnits)),
				g.Attr("data-new-floors", FormatInt(p.NewFloors)),
				g.Attr("data-new-height", FormatHeight(p.NewBuildingHeight)),
				g.Attr("data-existing-floors", FormatInt(p.ExistingFloors)),
				g.Attr("data-owner", FormatText(p.Owner)),
			),
		)
	}
	return elements
}
