package ui

import (
	g "maragu.dev/gomponents"
	"maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/air-rights/explorer/config"
)

// ---- Page Layout ----

func Page(title string, content []g.Node) g.Node {
	return components.HTML5(components.HTML5Props{
		Title:    title,
		Language: "en",
		Head: []g.Node{
			Link(
				Rel("stylesheet"),
				Href(config.TailwindCSSURL),
			),
			// Leaflet CSS for the parcel map
			Link(
				Rel("stylesheet"),
				Href(config.LeafletCSSURL),
			),
			Script(
				Type("text/javascript"),
				Src(config.HTMXURL),
				Defer(),
			),
			// Leaflet JS for the parcel map
			Script(
				Type("text/javascript"),
				Src(config.LeafletJSURL),
				Defer(),
			),
			// Parcel map glue (layer rendering, click-to-select)
			Script(
				Type("text/javascript"),
				Src("/js/map.js"),
				Defer(),
			),
		},
		Body: []g.Node{
			Div(
				Class("container mx-auto px-4 py-8"),
				pageHeader(title),
				g.Group(content),
			),
		},
	})
}

func pageHeader(text string) g.Node {
	return H1(Class("text-4xl font-bold mb-8"), g.Text(text))
}
