package main

import (
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/Synt4xB4ndit/coffee-shops/internal/adapters/location"
	"github.com/Synt4xB4ndit/coffee-shops/internal/adapters/poi"
	"github.com/Synt4xB4ndit/coffee-shops/internal/api"
	"github.com/Synt4xB4ndit/coffee-shops/internal/config"
	"github.com/Synt4xB4ndit/coffee-shops/internal/platform/metrics"
)

// main is the application composition root.
// It wires concrete adapters (Overpass, ip-api) behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := config.Get("PORT", "8080")
	overpassURL := config.Get("OVERPASS_URL", poi.DefaultOverpassURL)
	geoipURL := config.Get("GEOIP_URL", location.DefaultIPAPIURL)
	defaultRadius := config.GetInt("DEFAULT_RADIUS_M", 1500)
	defaultLimit := config.GetInt("DEFAULT_K", 5)

	source, err := poi.NewOverpassSource(overpassURL)
	if err != nil {
		log.Fatal(err)
	}

	locator, err := location.NewIPAPIProvider(geoipURL)
	if err != nil {
		log.Fatal(err)
	}

	metrics.Register()
	router := api.NewRouter(source, locator, defaultRadius, defaultLimit)

	// Timeouts sized for the slow path: a cold Overpass query on a dense area.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}
