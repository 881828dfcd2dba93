package services

import (
	"math"
	"sort"

	"github.com/Synt4xB4ndit/coffee-shops/internal/domain"
)

// Mean Earth radius in kilometers. All distances in this package are
// kilometers; callers wanting meters multiply at the boundary.
const earthRadiusKm = 6371.0

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Distance computes the great-circle distance between two coordinates in
// kilometers using the haversine formula.
//
// Inputs are not validated: out-of-range coordinates yield mathematically
// meaningless results, and NaN/Inf propagate per ordinary float rules.
// Distance(a, a) is exactly 0 and Distance(a, b) == Distance(b, a) within
// floating-point tolerance.
func Distance(a, b domain.Coordinates) float64 {
	if a == b {
		return 0
	}

	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLon := toRadians(b.Lon - a.Lon)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// Nearest returns the k candidates closest to origin, ascending by
// great-circle distance. The sort is stable: equidistant candidates keep
// their input order. If k exceeds the candidate count all candidates are
// returned; k <= 0 or an empty candidate list yields an empty slice
// (neither is an error).
//
// Nearest is pure and allocates only its result, so it is safe to call
// from any goroutine without synchronization.
func Nearest(origin domain.Coordinates, candidates []domain.Cafe, k int) []domain.RankedCafe {
	if k <= 0 || len(candidates) == 0 {
		return []domain.RankedCafe{}
	}

	ranked := make([]domain.RankedCafe, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, domain.RankedCafe{
			Cafe:       c,
			DistanceKm: Distance(origin, c.Location),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})

	if k < len(ranked) {
		ranked = ranked[:k]
	}

	return ranked
}
