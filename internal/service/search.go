package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"placefinder/internal/config"
	"placefinder/internal/googlemaps"
	"placefinder/internal/model"
	"placefinder/internal/repository"
)

// ErrAddressRequired is returned when a search is submitted with an empty
// address. No network call is made in that case.
var ErrAddressRequired = errors.New("address is required")

// Query is a single user-submitted search. Keyword and PlaceType are optional;
// empty means no filter.
type Query struct {
	Address   string
	Keyword   string
	PlaceType string
}

// Result is the outcome of a successful search. Venues preserves the upstream
// response order among entries that passed the rating filter; every venue
// satisfies rating >= the configured minimum.
type Result struct {
	Center model.Coordinates `json:"center"`
	Venues []model.Venue     `json:"venues"`
}

// PlacesClient is the subset of the Google Maps client the service depends on.
type PlacesClient interface {
	Geocode(ctx context.Context, address string) (model.Coordinates, error)
	NearbySearch(ctx context.Context, q googlemaps.NearbyQuery) ([]googlemaps.Place, error)
}

// SearchService defines the use cases of the venue search pipeline.
type SearchService interface {
	// Search geocodes the address, fetches nearby places, and returns the
	// venues at or above the configured minimum rating.
	Search(ctx context.Context, q Query) (*Result, error)

	// Recent returns the latest entries of the search log. When no history
	// store is configured it returns an empty list.
	Recent(ctx context.Context, limit int) ([]model.SearchRecord, error)
}

type searchService struct {
	places    PlacesClient
	history   repository.SearchHistoryRepository // nil disables the search log
	radius    int
	minRating float64
}

// NewSearchService constructs a SearchService. history may be nil.
func NewSearchService(places PlacesClient, history repository.SearchHistoryRepository, cfg config.SearchConfig) SearchService {
	return &searchService{
		places:    places,
		history:   history,
		radius:    cfg.RadiusMeters,
		minRating: cfg.MinRating,
	}
}

func (s *searchService) Search(ctx context.Context, q Query) (*Result, error) {
	address := strings.TrimSpace(q.Address)
	if address == "" {
		return nil, ErrAddressRequired
	}

	center, err := s.places.Geocode(ctx, address)
	if err != nil {
		return nil, err
	}

	places, err := s.places.NearbySearch(ctx, googlemaps.NearbyQuery{
		Lat:          center.Lat,
		Lng:          center.Lng,
		RadiusMeters: s.radius,
		Keyword:      q.Keyword,
		PlaceType:    q.PlaceType,
	})
	if err != nil {
		return nil, err
	}

	// Stable filter: survivors keep their upstream order.
	venues := make([]model.Venue, 0, len(places))
	for _, p := range places {
		if p.RatingValue() < s.minRating {
			continue
		}
		venues = append(venues, model.Venue{
			Name:    p.Name,
			Rating:  p.RatingValue(),
			Address: p.Vicinity,
			Lat:     p.Geometry.Location.Lat,
			Lng:     p.Geometry.Location.Lng,
		})
	}

	s.logSearch(ctx, address, q, center, len(venues))

	return &Result{Center: center, Venues: venues}, nil
}

func (s *searchService) Recent(ctx context.Context, limit int) ([]model.SearchRecord, error) {
	if s.history == nil {
		return []model.SearchRecord{}, nil
	}
	if limit <= 0 {
		limit = 10
	}
	return s.history.Recent(ctx, limit)
}

// logSearch records the query in the history store. Best effort: a failed
// insert must never fail the search itself.
func (s *searchService) logSearch(ctx context.Context, address string, q Query, center model.Coordinates, count int) {
	if s.history == nil {
		return
	}
	rec := &model.SearchRecord{
		ID:          uuid.NewString(),
		Address:     address,
		Keyword:     q.Keyword,
		PlaceType:   q.PlaceType,
		Lat:         center.Lat,
		Lng:         center.Lng,
		ResultCount: count,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.history.Create(ctx, rec); err != nil {
		log.Printf("search history insert failed: %v", err)
	}
}
