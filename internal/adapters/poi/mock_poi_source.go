package poi

import (
	"context"

	"github.com/Synt4xB4ndit/coffee-shops/internal/domain"
)

// MockSource serves a fixed candidate list (or error) for tests.
type MockSource struct {
	Cafes []domain.Cafe
	Err   error
}

func (m *MockSource) FindCafes(ctx context.Context, origin domain.Coordinates, radiusMeters int) ([]domain.Cafe, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Cafes, nil
}
