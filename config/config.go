package config

import (
	"os"
	"time"
)

// Server settings
var (
	// DatabaseURL is the path to the parcel SQLite database.
	DatabaseURL = envOr("DATABASE_URL", "parcels.db")

	// ServerPort is the port the web server listens on.
	ServerPort = envOr("PORT", "8080")
)

const (
	ServerRateLimitMax = 120
	ServerRateLimitExp = 1 * time.Minute
)

// CDN assets
const (
	TailwindCSSURL = "https://cdn.jsdelivr.net/npm/tailwindcss@2.2.19/dist/tailwind.min.css"
	HTMXURL        = "https://unpkg.com/htmx.org@1.9.12"
	LeafletCSSURL  = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.css"
	LeafletJSURL   = "https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"
)

// Map tuning.  The default center is midtown Manhattan.  Zooms follow the
// Leaflet scale; larger is closer.
const (
	DefaultLat  = 40.7549
	DefaultLon  = -73.9840
	DefaultZoom = 12

	// OverviewZoom is used for the one-shot focus on the highest-impact
	// parcel at first load.
	OverviewZoom = 15

	// CloseUpZoom is used when a single parcel is selected.
	CloseUpZoom = 16

	// MapWindowDelta is the half-width in degrees of the bounding box used
	// by "Update Top 10 from current map view".
	MapWindowDelta = 0.02
)

// List sizes
const (
	TopListSize    = 10
	SingleListSize = 1
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
