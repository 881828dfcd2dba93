package handlers

import (
	"log"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Synt4xB4ndit/coffee-shops/internal/api/dto"
	"github.com/Synt4xB4ndit/coffee-shops/internal/domain"
	"github.com/Synt4xB4ndit/coffee-shops/internal/platform/metrics"
	"github.com/Synt4xB4ndit/coffee-shops/internal/ports"
	"github.com/Synt4xB4ndit/coffee-shops/internal/services"
)

const (
	minRadiusMeters = 50
	maxRadiusMeters = 50000
	maxLimit        = 50
)

// CafeHandler serves nearby-café queries. The origin comes from lat/lon
// query parameters, or from IP geolocation of the caller when both are
// absent.
type CafeHandler struct {
	Source        ports.PoiSource
	Locator       ports.LocationProvider
	DefaultRadius int
	DefaultLimit  int
}

func (h *CafeHandler) Nearby(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	metrics.CafeRequestsTotal.Inc()
	start := time.Now()
	defer func() {
		metrics.CafeRequestDurationMs.Observe(float64(time.Since(start).Milliseconds()))
	}()

	q := r.URL.Query()

	origin, ok := h.resolveOrigin(w, r)
	if !ok {
		return
	}

	radius := h.DefaultRadius
	if s := q.Get("radius"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid radius")
			return
		}
		radius = n
	}
	if radius < minRadiusMeters || radius > maxRadiusMeters {
		writeError(w, r, http.StatusBadRequest, "radius must be between 50 and 50000 meters")
		return
	}

	limit := h.DefaultLimit
	if s := q.Get("k"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid k")
			return
		}
		limit = n
	}
	if limit < 1 || limit > maxLimit {
		writeError(w, r, http.StatusBadRequest, "k must be between 1 and 50")
		return
	}

	req := services.FindNearbyRequest{
		Origin:       origin,
		RadiusMeters: radius,
		Limit:        limit,
	}

	res, err := services.FindNearby(r.Context(), req, h.Source)
	if err != nil {
		log.Printf("find nearby failed: %v", err)
		writeError(w, r, http.StatusBadGateway, "cafe lookup failed")
		return
	}

	// No cafés in range is a normal outcome, not an error.
	if len(res.Cafes) == 0 {
		metrics.EmptyResultsTotal.Inc()
	}

	out := dto.NearbyCafesResponse{
		OriginLat:    origin.Lat,
		OriginLon:    origin.Lon,
		RadiusMeters: radius,
		Count:        len(res.Cafes),
		Cafes:        make([]dto.CafeResponse, 0, len(res.Cafes)),
	}
	for _, c := range res.Cafes {
		out.Cafes = append(out.Cafes, dto.CafeResponse{
			ID:         c.ID,
			Name:       c.Name,
			Lat:        c.Location.Lat,
			Lon:        c.Location.Lon,
			DistanceKm: c.DistanceKm,
		})
	}

	writeJSON(w, r, http.StatusOK, out)
}

// resolveOrigin reads lat/lon from the query, falling back to IP
// geolocation of the caller when neither is present. Location failures map
// to a distinct error from café lookup failures so clients can tell them
// apart.
func (h *CafeHandler) resolveOrigin(w http.ResponseWriter, r *http.Request) (domain.Coordinates, bool) {
	q := r.URL.Query()
	latStr := q.Get("lat")
	lonStr := q.Get("lon")

	if latStr == "" && lonStr == "" {
		if h.Locator == nil {
			writeError(w, r, http.StatusBadRequest, "lat and lon are required")
			return domain.Coordinates{}, false
		}

		coord, err := h.Locator.Locate(r.Context(), clientIP(r))
		if err != nil {
			log.Printf("locate caller failed: %v", err)
			writeError(w, r, http.StatusBadGateway, "could not determine location")
			return domain.Coordinates{}, false
		}
		return coord, true
	}

	if latStr == "" || lonStr == "" {
		writeError(w, r, http.StatusBadRequest, "lat and lon must be provided together")
		return domain.Coordinates{}, false
	}

	lat, err := strconv.ParseFloat(latStr, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid lat")
		return domain.Coordinates{}, false
	}

	lon, err := strconv.ParseFloat(lonStr, 64)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid lon")
		return domain.Coordinates{}, false
	}

	coord := domain.Coordinates{Lat: lat, Lon: lon}
	if !coord.Valid() {
		writeError(w, r, http.StatusBadRequest, "lat must be in [-90,90] and lon in [-180,180]")
		return domain.Coordinates{}, false
	}

	return coord, true
}

// clientIP extracts the caller's address, preferring the first
// X-Forwarded-For hop. Loopback addresses map to "" so the geolocation
// service resolves the server's own position for local runs.
func clientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}

	if ip := net.ParseIP(host); ip != nil && ip.IsLoopback() {
		return ""
	}
	return host
}
