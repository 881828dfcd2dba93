package domain

// Immutable geographic coordinates in decimal degrees (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Valid reports whether the coordinates fall inside the WGS84 domain
// (lat in [-90, 90], lon in [-180, 180]). Boundary layers validate with
// this; the distance math itself does not.
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}
