package location

import (
	"context"

	"github.com/Synt4xB4ndit/coffee-shops/internal/domain"
)

// MockProvider returns a fixed coordinate (or error) for tests.
type MockProvider struct {
	Coord domain.Coordinates
	Err   error
}

func (m *MockProvider) Locate(ctx context.Context, ip string) (domain.Coordinates, error) {
	if m.Err != nil {
		return domain.Coordinates{}, m.Err
	}
	return m.Coord, nil
}
