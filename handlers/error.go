package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/air-rights/explorer/ui"
)

// CustomErrorHandler renders application errors as an HTML error page
func CustomErrorHandler(ctx *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	ctx.Status(code)
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTML)
	return ui.ErrorPage(code, err.Error()).Render(ctx)
}
