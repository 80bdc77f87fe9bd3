package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/air-rights/explorer/browse"
	"github.com/air-rights/explorer/parcel"
	"github.com/air-rights/explorer/search"
	"github.com/air-rights/explorer/ui"
)

// loadParcels fetches the cached record set.  A data source failure is
// fatal for the request: the explorer must never render from a silently
// empty set.
func loadParcels(c *fiber.Ctx) ([]parcel.Parcel, error) {
	parcels, err := parcel.All()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusServiceUnavailable, "property data unavailable: "+err.Error())
	}
	return parcels, nil
}

// currentState restores search/viewport/selection state from cookies.  A
// fresh session starts at the default viewport and gets the one-shot
// auto-focus on the highest-impact parcel.
func currentState(c *fiber.Ctx, parcels []parcel.Parcel) (search.Mode, string, browse.Viewport, browse.Selection) {
	mode, q := getCookieSearch(c)

	vp, found := getCookieViewport(c)
	if !found {
		vp = browse.DefaultViewport()
		vp.FocusOnHighestImpact(parcels)
		saveCookieViewport(c, vp)
	}

	return mode, q, vp, getCookieSelection(c)
}

// renderExplorer runs one full recomputation pass (resolve, rank, render)
// over explicit state.  Both panels always render from the same state, so
// the map and the list cannot disagree.
func renderExplorer(c *fiber.Ctx, fullPage bool, parcels []parcel.Parcel,
	mode search.Mode, q string, vp browse.Viewport, sel browse.Selection,
	extraNotices ...string) error {

	filtered, notices := search.Resolve(mode, q, parcels)
	notices = append(notices, extraNotices...)

	ranked := browse.ActiveList(parcels, filtered, sel, vp)

	if fullPage {
		return render(c, ui.HomePage(mode, q, filtered, ranked, sel, vp, notices))
	}
	return render(c, ui.Explorer(filtered, ranked, sel, vp, notices))
}
