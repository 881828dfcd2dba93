package location

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Synt4xB4ndit/coffee-shops/internal/domain"
	"github.com/Synt4xB4ndit/coffee-shops/internal/platform/metrics"
	"github.com/Synt4xB4ndit/coffee-shops/internal/platform/obs"
)

const DefaultIPAPIURL = "http://ip-api.com/json"

// IPAPIProvider implements LocationProvider against the ip-api.com JSON
// endpoint. Accuracy is city-level, which is enough to seed a café search
// when the caller supplies no coordinates of its own.
type IPAPIProvider struct {
	session *http.Client
	baseURL string
}

func NewIPAPIProvider(baseURL string) (*IPAPIProvider, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("ip-api base URL is empty")
	}

	return &IPAPIProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

type ipapiResponse struct {
	Status  string  `json:"status"`
	Message string  `json:"message"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
}

// Locate resolves coordinates for the given IP. An empty ip resolves the
// position of the host making the call.
func (p *IPAPIProvider) Locate(ctx context.Context, ip string) (_ domain.Coordinates, err error) {
	defer obs.Time(ctx, "ipapi.Locate")(&err)

	endpoint := p.baseURL + "/"
	if ip = strings.TrimSpace(ip); ip != "" {
		endpoint += ip
	}
	endpoint += "?fields=status,message,lat,lon"

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.Coordinates{}, fmt.Errorf("locate: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	metrics.GeoIPRequestsTotal.Inc()

	resp, err := p.session.Do(req)
	if err != nil {
		metrics.GeoIPFailTotal.Inc()
		return domain.Coordinates{}, fmt.Errorf("locate: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		metrics.GeoIPFailTotal.Inc()
		b, _ := io.ReadAll(resp.Body)
		return domain.Coordinates{}, fmt.Errorf(
			"locate: unexpected status %d: %s",
			resp.StatusCode, strings.TrimSpace(string(b)),
		)
	}

	var decoded ipapiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		metrics.GeoIPFailTotal.Inc()
		return domain.Coordinates{}, fmt.Errorf("locate: decode response: %w", err)
	}

	if decoded.Status != "success" {
		metrics.GeoIPFailTotal.Inc()
		return domain.Coordinates{}, fmt.Errorf("locate: ip-api lookup failed: %s", decoded.Message)
	}

	coord := domain.Coordinates{Lat: decoded.Lat, Lon: decoded.Lon}
	if !coord.Valid() {
		metrics.GeoIPFailTotal.Inc()
		return domain.Coordinates{}, fmt.Errorf(
			"locate: ip-api returned out-of-range coordinates lat=%f lon=%f",
			coord.Lat, coord.Lon,
		)
	}

	return coord, nil
}
