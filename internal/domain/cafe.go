package domain

// Cafe is a point of interest returned by the external data source.
// Instances are supplied wholesale per query and never persisted.
type Cafe struct {
	ID       int64
	Name     string
	Location Coordinates
}

// RankedCafe annotates a Cafe with its computed distance from the query
// origin. Results live for a single query and are discarded afterwards.
type RankedCafe struct {
	Cafe
	DistanceKm float64
}
