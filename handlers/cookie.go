package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/air-rights/explorer/browse"
	"github.com/air-rights/explorer/search"
)

// The explorer state (search query, viewport, selection) lives in cookies:
// the browser owns the long-lived session, every handler reads the state,
// runs the controllers, and writes the new state back.

func setCookie(c *fiber.Ctx, name, value string) {
	c.Cookie(&fiber.Cookie{
		Name:     name,
		Value:    value,
		Expires:  time.Now().Add(30 * 24 * time.Hour),
		HTTPOnly: false,
		Path:     "/",
		SameSite: "Strict",
	})
}

func getCookieSearch(c *fiber.Ctx) (search.Mode, string) {
	mode := search.ParseMode(c.Cookies("search_mode", "address"))
	return mode, c.Cookies("search_q", "")
}

func saveCookieSearch(c *fiber.Ctx, mode search.Mode, q string) {
	setCookie(c, "search_mode", mode.String())
	setCookie(c, "search_q", q)
}

// getCookieViewport restores the camera.  found is false when any of the
// three cookies is missing or unparseable; the caller starts from the
// default viewport then.
func getCookieViewport(c *fiber.Ctx) (browse.Viewport, bool) {
	latStr := c.Cookies("vp_lat", "")
	lonStr := c.Cookies("vp_lon", "")
	zoomStr := c.Cookies("vp_zoom", "")
	if latStr == "" || lonStr == "" || zoomStr == "" {
		return browse.Viewport{}, false
	}

	lat, err1 := strconv.ParseFloat(latStr, 64)
	lon, err2 := strconv.ParseFloat(lonStr, 64)
	zoom, err3 := strconv.Atoi(zoomStr)
	if err1 != nil || err2 != nil || err3 != nil {
		return browse.Viewport{}, false
	}

	return browse.Viewport{
		Lat:  boundLatitude(lat),
		Lon:  boundLongitude(lon),
		Zoom: boundZoom(zoom),
	}, true
}

func saveCookieViewport(c *fiber.Ctx, vp browse.Viewport) {
	setCookie(c, "vp_lat", strconv.FormatFloat(vp.Lat, 'f', -1, 64))
	setCookie(c, "vp_lon", strconv.FormatFloat(vp.Lon, 'f', -1, 64))
	setCookie(c, "vp_zoom", strconv.Itoa(vp.Zoom))
}

func getCookieSelection(c *fiber.Ctx) browse.Selection {
	return browse.Selection{
		BBL:       c.Cookies("sel_bbl", ""),
		Single:    c.Cookies("sel_single", "") == "1",
		MapWindow: c.Cookies("sel_window", "") == "1",
	}
}

func saveCookieSelection(c *fiber.Ctx, sel browse.Selection) {
	setCookie(c, "sel_bbl", sel.BBL)
	setCookie(c, "sel_single", boolCookie(sel.Single))
	setCookie(c, "sel_window", boolCookie(sel.MapWindow))
}

func boolCookie(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func boundLatitude(lat float64) float64 {
	if lat < -90 {
		return -90
	}
	if lat > 90 {
		return 90
	}
	return lat
}

func boundLongitude(lon float64) float64 {
	if lon < -180 {
		return -180
	}
	if lon > 180 {
		return 180
	}
	return lon
}

func boundZoom(zoom int) int {
	if zoom < 1 {
		return 1
	}
	if zoom > 19 {
		return 19
	}
	return zoom
}
