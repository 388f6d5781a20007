package model

import "time"

// Venue is a single place-search result that survived the rating filter.
// This is a pure domain model with no transport or persistence tags beyond JSON;
// it can be used across layers (HTTP, service, templates) without coupling.
type Venue struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Coordinates is a geocoded latitude/longitude pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SearchRecord is one entry in the search query log. It records what was asked
// and how many venues qualified, never the venues themselves.
type SearchRecord struct {
	ID          string    `json:"id"`
	Address     string    `json:"address"`
	Keyword     string    `json:"keyword,omitempty"`
	PlaceType   string    `json:"place_type,omitempty"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	ResultCount int       `json:"result_count"`
	CreatedAt   time.Time `json:"created_at"`
}
