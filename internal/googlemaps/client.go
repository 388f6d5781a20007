package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"placefinder/internal/model"
)

const (
	defaultGeocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"
	defaultNearbyURL  = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"
)

// APIError is a non-success status reported by a Google Maps endpoint.
// It is a distinct error type so callers can separate "the API refused the
// request" from transport-level failures.
type APIError struct {
	Op      string // "geocode" or "nearby_search"
	Status  string // upstream status field, e.g. "REQUEST_DENIED"
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s (status %s)", e.Op, e.Message, e.Status)
}

// NearbyQuery holds the parameters of a nearby-search call. Keyword and
// PlaceType are omitted from the request when empty.
type NearbyQuery struct {
	Lat          float64
	Lng          float64
	RadiusMeters int
	Keyword      string
	PlaceType    string
}

// Client calls the Google Maps geocoding and nearby-search endpoints.
type Client struct {
	apiKey     string
	httpClient *http.Client
	geocodeURL string
	nearbyURL  string
}

// New creates a Client with the given API key and request timeout.
func New(apiKey string, timeout time.Duration) *Client {
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		geocodeURL: defaultGeocodeURL,
		nearbyURL:  defaultNearbyURL,
	}
}

// Geocode resolves a free-text address to coordinates. When the upstream
// returns multiple matches the first one wins; no disambiguation is attempted.
func (c *Client) Geocode(ctx context.Context, address string) (model.Coordinates, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	var body geocodeResponse
	if err := c.getJSON(ctx, c.geocodeURL, params, &body); err != nil {
		return model.Coordinates{}, err
	}

	if body.Status != statusOK || len(body.Results) == 0 {
		return model.Coordinates{}, &APIError{
			Op:      "geocode",
			Status:  body.Status,
			Message: "address could not be resolved",
		}
	}

	loc := body.Results[0].Geometry.Location
	return model.Coordinates{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// NearbySearch fetches places around a point. ZERO_RESULTS and a missing
// results array are both success with an empty list; any other non-OK status
// is an APIError.
func (c *Client) NearbySearch(ctx context.Context, q NearbyQuery) ([]Place, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%.6f,%.6f", q.Lat, q.Lng))
	params.Set("radius", strconv.Itoa(q.RadiusMeters))
	params.Set("key", c.apiKey)
	if q.Keyword != "" {
		params.Set("keyword", q.Keyword)
	}
	if q.PlaceType != "" {
		params.Set("type", q.PlaceType)
	}

	var body nearbyResponse
	if err := c.getJSON(ctx, c.nearbyURL, params, &body); err != nil {
		return nil, err
	}

	switch body.Status {
	case statusOK, statusZeroResults, "":
		if body.Results == nil {
			return []Place{}, nil
		}
		return body.Results, nil
	default:
		msg := body.ErrorMessage
		if msg == "" {
			msg = "nearby search failed"
		}
		return nil, &APIError{Op: "nearby_search", Status: body.Status, Message: msg}
	}
}

// getJSON performs a GET and decodes the JSON body into out.
func (c *Client) getJSON(ctx context.Context, baseURL string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("call Google Maps API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("Google Maps API error (status %d): %s", resp.StatusCode, string(b))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse Google Maps response: %w", err)
	}
	return nil
}
