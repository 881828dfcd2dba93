package ports

import (
	"context"

	"github.com/Synt4xB4ndit/coffee-shops/internal/domain"
)

// Contract for retrieving café points of interest around an origin.
type PoiSource interface {
	// Return all cafés within radiusMeters of origin. An empty slice is a
	// normal "no results" outcome, not an error.
	FindCafes(ctx context.Context, origin domain.Coordinates, radiusMeters int) ([]domain.Cafe, error)
}
