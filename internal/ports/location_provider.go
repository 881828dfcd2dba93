package ports

import (
	"context"

	"github.com/Synt4xB4ndit/coffee-shops/internal/domain"
)

// Contract for resolving a caller's approximate position.
type LocationProvider interface {
	// Resolve coordinates for the given IP address. An empty ip resolves
	// the position of the host making the call.
	Locate(ctx context.Context, ip string) (domain.Coordinates, error)
}
