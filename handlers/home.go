package handlers

import (
	"github.com/gofiber/fiber/v2"
)

func HandleHome(c *fiber.Ctx) error {
	parcels, err := loadParcels(c)
	if err != nil {
		return err
	}

	mode, q, vp, sel := currentState(c, parcels)
	return renderExplorer(c, true, parcels, mode, q, vp, sel)
}
