package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Synt4xB4ndit/coffee-shops/internal/adapters/poi"
	"github.com/Synt4xB4ndit/coffee-shops/internal/domain"
)

func TestFindNearbyRanksAndTruncates(t *testing.T) {
	origin := domain.Coordinates{Lat: 40.7128, Lon: -74.006}
	source := &poi.MockSource{
		Cafes: []domain.Cafe{
			{ID: 1, Name: "far", Location: domain.Coordinates{Lat: 40.75, Lon: -74.05}},
			{ID: 2, Name: "near", Location: domain.Coordinates{Lat: 40.713, Lon: -74.0061}},
			{ID: 3, Name: "mid", Location: domain.Coordinates{Lat: 40.72, Lon: -74.01}},
		},
	}

	req := FindNearbyRequest{Origin: origin, RadiusMeters: 2000, Limit: 2}

	res, err := FindNearby(context.Background(), req, source)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.CandidateCount != 3 {
		t.Errorf("CandidateCount = %d, want 3", res.CandidateCount)
	}
	if len(res.Cafes) != 2 {
		t.Fatalf("expected 2 results, got %d", len(res.Cafes))
	}
	if res.Cafes[0].ID != 2 {
		t.Errorf("expected nearest id 2, got %d", res.Cafes[0].ID)
	}
	if res.Cafes[1].ID != 3 {
		t.Errorf("expected second id 3, got %d", res.Cafes[1].ID)
	}
}

func TestFindNearbyEmptySourceIsNotAnError(t *testing.T) {
	req := FindNearbyRequest{
		Origin:       domain.Coordinates{Lat: 0, Lon: 0},
		RadiusMeters: 500,
		Limit:        5,
	}

	res, err := FindNearby(context.Background(), req, &poi.MockSource{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Cafes) != 0 {
		t.Fatalf("expected no results, got %d", len(res.Cafes))
	}
}

func TestFindNearbyWrapsSourceError(t *testing.T) {
	req := FindNearbyRequest{
		Origin:       domain.Coordinates{Lat: 0, Lon: 0},
		RadiusMeters: 500,
		Limit:        5,
	}

	source := &poi.MockSource{Err: context.DeadlineExceeded}

	_, err := FindNearby(context.Background(), req, source)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected wrapped source error, got %v", err)
	}
}
