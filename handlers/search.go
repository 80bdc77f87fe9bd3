package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/air-rights/explorer/search"
)

// HandleSearch re-resolves the query on every search box change and swaps
// the explorer panel.  A search that matches parcels with geometry refits
// the viewport to their union bounds.
func HandleSearch(c *fiber.Ctx) error {
	parcels, err := loadParcels(c)
	if err != nil {
		return err
	}

	_, _, vp, sel := currentState(c, parcels)

	mode := search.ParseMode(getQueryParam(c, "mode"))
	q := getQueryParam(c, "q")
	saveCookieSearch(c, mode, q)

	filtered, _ := search.Resolve(mode, q, parcels)
	if strings.TrimSpace(q) != "" && len(filtered) > 0 {
		vp.FocusOnBounds(filtered)
		saveCookieViewport(c, vp)
	}

	return renderExplorer(c, false, parcels, mode, q, vp, sel)
}
