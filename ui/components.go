package ui

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

func infoRow(label, value string) g.Node {
	return Div(
		Class("my-1 mb-3"),
		Div(Class("text-xs text-gray-500"), g.Text(label)),
		Div(Class("text-base font-medium"), g.Text(value)),
	)
}

func NoResultsMessage() g.Node {
	return Div(
		Class("p-4 text-gray-500 italic"),
		g.Text("No properties found."),
	)
}

// noticesNode lists the search fallback notices above the results.
func noticesNode(notices []string) g.Node {
	if len(notices) == 0 {
		return nil
	}
	var items []g.Node
	for _, n := range notices {
		items = append(items,
			Div(
				Class("bg-amber-50 border border-amber-200 text-amber-800 text-sm rounded px-3 py-2 mb-2"),
				g.Text(n),
			),
		)
	}
	return Div(Class("mb-2"), g.Group(items))
}
