package domain

import "testing"

func TestCoordinatesValid(t *testing.T) {
	cases := []struct {
		name  string
		coord Coordinates
		want  bool
	}{
		{"origin", Coordinates{Lat: 0, Lon: 0}, true},
		{"poles", Coordinates{Lat: 90, Lon: 0}, true},
		{"antimeridian", Coordinates{Lat: 0, Lon: -180}, true},
		{"lat too high", Coordinates{Lat: 90.0001, Lon: 0}, false},
		{"lat too low", Coordinates{Lat: -91, Lon: 0}, false},
		{"lon too high", Coordinates{Lat: 0, Lon: 180.5}, false},
		{"lon too low", Coordinates{Lat: 0, Lon: -181}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.coord.Valid(); got != tc.want {
				t.Fatalf("Valid(%+v) = %v, want %v", tc.coord, got, tc.want)
			}
		})
	}
}
