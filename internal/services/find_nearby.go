package services

import (
	"context"
	"fmt"

	"github.com/Synt4xB4ndit/coffee-shops/internal/domain"
	"github.com/Synt4xB4ndit/coffee-shops/internal/platform/obs"
	"github.com/Synt4xB4ndit/coffee-shops/internal/ports"
)

type FindNearbyRequest struct {
	Origin       domain.Coordinates
	RadiusMeters int
	Limit        int
}

type FindNearbyResult struct {
	Origin domain.Coordinates
	Cafes  []domain.RankedCafe
	// Total candidates returned by the source before truncation to Limit.
	CandidateCount int
}

// FindNearby fetches café candidates from the source and ranks the Limit
// closest to the origin. All state lives in the request and result values;
// the service itself holds nothing between calls.
func FindNearby(
	ctx context.Context,
	req FindNearbyRequest,
	source ports.PoiSource,
) (_ *FindNearbyResult, err error) {
	defer obs.Time(ctx, "services.FindNearby")(&err)

	if source == nil {
		return nil, fmt.Errorf("find nearby: poi source is nil")
	}

	cafes, err := source.FindCafes(ctx, req.Origin, req.RadiusMeters)
	if err != nil {
		return nil, fmt.Errorf("find nearby: fetch cafes: %w", err)
	}

	return &FindNearbyResult{
		Origin:         req.Origin,
		Cafes:          Nearest(req.Origin, cafes, req.Limit),
		CandidateCount: len(cafes),
	}, nil
}
