package ui

import (
	"fmt"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/air-rights/explorer/browse"
	"github.com/air-rights/explorer/parcel"
	"github.com/air-rights/explorer/search"
)

// HomePage is the full explorer page: search bar on top, map and list side
// by side underneath.
func HomePage(mode search.Mode, query string, filtered, ranked []parcel.Parcel,
	sel browse.Selection, vp browse.Viewport, notices []string) g.Node {
	return Page(
		"NYC Air Rights Explorer",
		[]g.Node{
			SearchWidget(mode, query),
			Explorer(filtered, ranked, sel, vp, notices),
		},
	)
}

// Explorer is the swap target for every htmx interaction: the map panel and
// the list panel re-render together so they never disagree about state.
func Explorer(filtered, ranked []parcel.Parcel, sel browse.Selection,
	vp browse.Viewport, notices []string) g.Node {
	return Div(
		ID("explorer"),
		Class("grid grid-cols-1 lg:grid-cols-2 gap-6"),
		MapPanel(filtered, sel, vp),
		ListPanel(ranked, sel, notices),
	)
}

// ErrorPage renders a fatal handler error.
func ErrorPage(code int, message string) g.Node {
	return Page(
		fmt.Sprintf("Error %d", code),
		[]g.Node{
			Div(
				Class("bg-red-50 border border-red-200 text-red-800 rounded p-4"),
				g.Text(message),
			),
		},
	)
}
