package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/air-rights/explorer/parcel"
)

// HandleClearList leaves single-property view and restores the Top-10
// list.  The viewport stays where the user left it.
func HandleClearList(c *fiber.Ctx) error {
	parcels, err := loadParcels(c)
	if err != nil {
		return err
	}

	mode, q, vp, sel := currentState(c, parcels)
	sel.Clear()
	saveCookieSelection(c, sel)

	return renderExplorer(c, false, parcels, mode, q, vp, sel)
}

// HandleListFromView windows the Top-10 list to the current map view.  The
// map posts its current center and zoom along with the button press.
func HandleListFromView(c *fiber.Ctx) error {
	parcels, err := loadParcels(c)
	if err != nil {
		return err
	}

	mode, q, vp, sel := currentState(c, parcels)

	// The browser map is the source of truth for where the camera is.
	lat, err1 := strconv.ParseFloat(getQueryParam(c, "lat"), 64)
	lon, err2 := strconv.ParseFloat(getQueryParam(c, "lon"), 64)
	zoom, err3 := strconv.Atoi(getQueryParam(c, "zoom"))
	if err1 == nil && err2 == nil && err3 == nil {
		vp.FocusOnPoint(boundLatitude(lat), boundLongitude(lon), boundZoom(zoom))
	}

	sel.RecenterFromMap()
	saveCookieSelection(c, sel)
	saveCookieViewport(c, vp)

	return renderExplorer(c, false, parcels, mode, q, vp, sel)
}

// HandleRefresh drops the cached record set and reloads it from the
// database.
func HandleRefresh(c *fiber.Ctx) error {
	if _, err := parcel.Refresh(); err != nil {
		return fiber.NewError(fiber.StatusServiceUnavailable, "property data unavailable: "+err.Error())
	}
	return c.Redirect("/", fiber.StatusSeeOther)
}
