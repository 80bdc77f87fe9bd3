package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/air-rights/explorer/config"
	"github.com/air-rights/explorer/db"
	h "github.com/air-rights/explorer/handlers"
	"github.com/air-rights/explorer/parcel"
)

func main() {
	// Initialize database
	if err := db.Init(config.DatabaseURL); err != nil {
		log.Fatalf("error initializing database: %v", err)
	}

	// Initialize parcel cache
	if err := parcel.InitParcelCache(); err != nil {
		log.Fatalf("Failed to initialize parcel cache: %v", err)
	}

	// Warm the record set now.  A data source failure at startup is fatal:
	// the explorer must not come up over an empty set.
	parcels, err := parcel.All()
	if err != nil {
		log.Fatalf("Failed to load parcels: %v", err)
	}
	log.Printf("Loaded %d parcels", len(parcels))

	app := fiber.New(fiber.Config{
		ErrorHandler: h.CustomErrorHandler,
		ReadTimeout:  30 * time.Second, // Prevent long-running requests
		WriteTimeout: 30 * time.Second, // Prevent long-running responses
	})

	// Add rate limiter
	app.Use(limiter.New(limiter.Config{
		Max:        config.ServerRateLimitMax,
		Expiration: config.ServerRateLimitExp,
	}))

	// Add logger middleware
	app.Use(logger.New())

	// Static files
	app.Static("/", "./static")

	// Explorer page and search
	app.Get("/", h.HandleHome)
	app.Get("/search", h.HandleSearch)

	// Selection: the list's locate button and a map click are the same
	// operation on two routes
	app.Get("/parcel/select/:bbl", h.HandleLocateParcel)
	app.Get("/map/select/:bbl", h.HandleMapSelect)

	// List view controls
	app.Post("/list/clear", h.HandleClearList)
	app.Post("/list/from-view", h.HandleListFromView)

	// Manual data reload
	app.Post("/refresh", h.HandleRefresh)

	// Health check
	app.Get("/health", h.HandleHealth)

	fmt.Printf("Starting server on port %s...\n", config.ServerPort)
	log.Fatal(app.Listen(":" + config.ServerPort))
}
