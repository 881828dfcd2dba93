package dto

type CafeResponse struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lon        float64 `json:"lon"`
	DistanceKm float64 `json:"distance_km"`
}

type NearbyCafesResponse struct {
	OriginLat    float64        `json:"origin_lat"`
	OriginLon    float64        `json:"origin_lon"`
	RadiusMeters int            `json:"radius_meters"`
	Count        int            `json:"count"`
	Cafes        []CafeResponse `json:"cafes"`
}
