package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/Synt4xB4ndit/coffee-shops/internal/adapters/location"
	"github.com/Synt4xB4ndit/coffee-shops/internal/adapters/poi"
	"github.com/Synt4xB4ndit/coffee-shops/internal/config"
	"github.com/Synt4xB4ndit/coffee-shops/internal/domain"
	"github.com/Synt4xB4ndit/coffee-shops/internal/services"
)

// One-shot lookup: resolve an origin (flags or IP geolocation), query
// Overpass, print the nearest cafés.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	lat := flag.Float64("lat", 91, "origin latitude (omit with -lon to use IP geolocation)")
	lon := flag.Float64("lon", 181, "origin longitude")
	radius := flag.Int("radius", config.GetInt("DEFAULT_RADIUS_M", 1500), "search radius in meters")
	k := flag.Int("k", config.GetInt("DEFAULT_K", 5), "number of results")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	origin := domain.Coordinates{Lat: *lat, Lon: *lon}
	if !origin.Valid() {
		geoipURL := config.Get("GEOIP_URL", location.DefaultIPAPIURL)
		locator, err := location.NewIPAPIProvider(geoipURL)
		if err != nil {
			log.Fatal(err)
		}

		origin, err = locator.Locate(ctx, "")
		if err != nil {
			log.Fatalf("could not determine location: %v", err)
		}
		log.Printf("Using IP-based location lat=%f lon=%f", origin.Lat, origin.Lon)
	}

	overpassURL := config.Get("OVERPASS_URL", poi.DefaultOverpassURL)
	source, err := poi.NewOverpassSource(overpassURL)
	if err != nil {
		log.Fatal(err)
	}

	req := services.FindNearbyRequest{
		Origin:       origin,
		RadiusMeters: *radius,
		Limit:        *k,
	}

	res, err := services.FindNearby(ctx, req, source)
	if err != nil {
		log.Fatalf("cafe lookup failed: %v", err)
	}

	if len(res.Cafes) == 0 {
		fmt.Println("No cafes found nearby.")
		os.Exit(0)
	}

	for i, c := range res.Cafes {
		fmt.Printf("%d. %s (%.2f km)\n", i+1, c.Name, c.DistanceKm)
	}
}
