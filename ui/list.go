package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/air-rights/explorer/browse"
	"github.com/air-rights/explorer/parcel"
)

// ListPanel renders the ranked property list: Top-10 tiles in list view, a
// single expanded property when one is selected.
func ListPanel(ranked []parcel.Parcel, sel browse.Selection, notices []string) g.Node {
	var children []g.Node

	children = append(children, H2(Class("text-2xl font-semibold mb-2"), g.Text("Property List")))

	if sel.Single {
		children = append(children,
			Button(
				Type("button"),
				Class("mb-2 px-3 py-1 border rounded bg-gray-100 hover:bg-gray-200 text-sm"),
				hx.Post("/list/clear"),
				hx.Target("#explorer"),
				hx.Swap("outerHTML"),
				g.Text("Show Top 10 properties"),
			),
		)
	}

	children = append(children, noticesNode(notices))

	if len(ranked) == 0 {
		children = append(children, NoResultsMessage())
	} else {
		children = append(children,
			P(
				Class("text-sm text-gray-500 mb-2"),
				g.Text(fmt.Sprintf("Top %d properties by %% Impact", len(ranked))),
			),
			Div(
				Class("grid grid-cols-1 md:grid-cols-2 gap-3"),
				g.Group(parcelTiles(ranked)),
			),
		)
	}

	return Div(Class("w-full"), g.Group(children))
}

func parcelTiles(parcels []parcel.Parcel) []g.Node {
	var tiles []g.Node
	for _, p := range parcels {
		tiles = append(tiles, parcelTile(p))
	}
	return tiles
}

func parcelTile(p parcel.Parcel) g.Node {
	return Div(
		Class("border rounded-lg p-3 shadow-sm"),
		Div(
			Class("flex justify-between items-start"),
			Div(
				Div(Class("font-bold"), g.Text(p.Address)),
				Div(Class("text-sm text-gray-600"), g.Text("New York, NY "+p.Zip)),
				Div(Class("text-sm"), g.Text("% Impact: "+FormatPercentFromRatio(p.ImpactRatio))),
			),
			// Locate: same selection operation as clicking the parcel on
			// the map.
			Button(
				Type("button"),
				Class("min-w-8 min-h-8 px-2 py-1 rounded-lg border hover:bg-gray-100"),
				Title("Locate on map"),
				hx.Get("/parcel/select/"+p.BBL),
				hx.Target("#explorer"),
				hx.Swap("outerHTML"),
				g.Text("📍"),
			),
		),
		Details(
			Class("mt-2"),
			Summary(Class("cursor-pointer text-sm text-blue-600"), g.Text("Details")),
			DetailGrid(p),
		),
	)
}
