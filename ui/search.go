package ui

import (
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/air-rights/explorer/search"
)

// SearchWidget is the global search bar: a mode selector and a text input.
// Every change re-resolves the query and swaps the explorer panel.
func SearchWidget(mode search.Mode, query string) g.Node {
	modeOption := func(m search.Mode, label string) g.Node {
		return Option(
			Value(m.String()),
			g.Text(label),
			g.If(m == mode, Selected()),
		)
	}

	return Form(
		ID("search-form"),
		Class("mb-6"),
		Div(
			Class("flex gap-2 items-center"),
			Select(
				ID("search-mode"),
				Name("mode"),
				Class("border rounded px-2 py-2"),
				hx.Get("/search"),
				hx.Target("#explorer"),
				hx.Swap("outerHTML"),
				hx.Include("#search-form"),
				modeOption(search.ModeAddress, "Address"),
				modeOption(search.ModeZip, "ZIP Code(s)"),
				modeOption(search.ModeBorough, "Borough"),
			),
			Input(
				ID("search-query"),
				Type("search"),
				Name("q"),
				Value(query),
				Placeholder("Type to search…"),
				Class("flex-1 border rounded px-3 py-2"),
				hx.Get("/search"),
				hx.Trigger("keyup changed delay:300ms, search"),
				hx.Target("#explorer"),
				hx.Swap("outerHTML"),
				hx.Include("#search-form"),
			),
		),
		P(
			Class("text-xs text-gray-500 mt-1"),
			g.Text("Tip: Use borough abbreviations for Borough search (MN: Manhattan, BX: Bronx, BK: Brooklyn, QN: Queens)."),
		),
	)
}
