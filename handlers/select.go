package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/air-rights/explorer/parcel"
)

// HandleLocateParcel selects a parcel from the list's locate button.
func HandleLocateParcel(c *fiber.Ctx) error {
	return selectParcel(c, c.Params("bbl"))
}

// HandleMapSelect selects a parcel from a map click.
func HandleMapSelect(c *fiber.Ctx) error {
	return selectParcel(c, c.Params("bbl"))
}

// selectParcel is the single selection operation behind both input paths:
// map click and list locate go through the same state transition and end
// in identical selection and viewport state.
func selectParcel(c *fiber.Ctx, bbl string) error {
	parcels, err := loadParcels(c)
	if err != nil {
		return err
	}

	mode, q, vp, sel := currentState(c, parcels)

	p, ok := parcel.ByBBL(parcels, bbl)
	if !ok {
		// Selection miss: state unchanged, surfaced as a notice.
		return renderExplorer(c, false, parcels, mode, q, vp, sel,
			fmt.Sprintf("Property %s not found", bbl))
	}

	sel.Select(p, &vp)
	saveCookieSelection(c, sel)
	saveCookieViewport(c, vp)

	return renderExplorer(c, false, parcels, mode, q, vp, sel)
}
