package poi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Synt4xB4ndit/coffee-shops/internal/domain"
	"github.com/Synt4xB4ndit/coffee-shops/internal/platform/metrics"
	"github.com/Synt4xB4ndit/coffee-shops/internal/platform/obs"
)

const DefaultOverpassURL = "https://overpass-api.de/api/interpreter"

// Label used when a café carries no name tag upstream.
const unnamedCafe = "Unnamed cafe"

// OverpassSource implements PoiSource against the Overpass API.
// It queries nodes and ways tagged amenity=cafe around an origin and is
// safe for concurrent use.
type OverpassSource struct {
	session *http.Client
	baseURL string
}

func NewOverpassSource(baseURL string) (*OverpassSource, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("overpass base URL is empty")
	}

	return &OverpassSource{
		session: &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
	}, nil
}

type overpassElement struct {
	Type   string            `json:"type"`
	ID     int64             `json:"id"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *overpassCenter   `json:"center"`
	Tags   map[string]string `json:"tags"`
}

type overpassCenter struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// FindCafes returns all cafés within radiusMeters of origin. An empty
// result is not an error. Malformed elements (no usable coordinate) are
// skipped rather than failing the whole response.
func (o *OverpassSource) FindCafes(
	ctx context.Context,
	origin domain.Coordinates,
	radiusMeters int,
) (_ []domain.Cafe, err error) {
	defer obs.Time(ctx, "overpass.FindCafes")(&err)

	if radiusMeters <= 0 {
		return nil, fmt.Errorf("find cafes: radius must be positive, got %d", radiusMeters)
	}

	query := fmt.Sprintf(
		"[out:json][timeout:10];(node[\"amenity\"=\"cafe\"](around:%d,%f,%f);way[\"amenity\"=\"cafe\"](around:%d,%f,%f););out center;",
		radiusMeters, origin.Lat, origin.Lon,
		radiusMeters, origin.Lat, origin.Lon,
	)

	form := url.Values{}
	form.Set("data", query)

	req, err := o.newRequest(ctx, http.MethodPost, o.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("find cafes: %w", err)
	}

	metrics.OverpassRequestsTotal.Inc()
	start := time.Now()

	resp, err := o.do(req)
	if err != nil {
		metrics.OverpassFailTotal.Inc()
		return nil, fmt.Errorf("find cafes: execute request: %w", err)
	}
	defer resp.Body.Close()

	metrics.OverpassDurationMs.Observe(float64(time.Since(start).Milliseconds()))

	var decoded overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		metrics.OverpassFailTotal.Inc()
		return nil, fmt.Errorf("find cafes: decode overpass response: %w", err)
	}

	cafes := make([]domain.Cafe, 0, len(decoded.Elements))
	for _, el := range decoded.Elements {
		coord, ok := elementCoordinates(el)
		if !ok {
			continue
		}

		name := el.Tags["name"]
		if strings.TrimSpace(name) == "" {
			name = unnamedCafe
		}

		cafes = append(cafes, domain.Cafe{
			ID:       el.ID,
			Name:     name,
			Location: coord,
		})
	}

	return cafes, nil
}

// Nodes carry lat/lon directly; ways only expose a computed center.
func elementCoordinates(el overpassElement) (domain.Coordinates, bool) {
	switch el.Type {
	case "node":
		return domain.Coordinates{Lat: el.Lat, Lon: el.Lon}, true
	case "way", "relation":
		if el.Center == nil {
			return domain.Coordinates{}, false
		}
		return domain.Coordinates{Lat: el.Center.Lat, Lon: el.Center.Lon}, true
	default:
		return domain.Coordinates{}, false
	}
}
