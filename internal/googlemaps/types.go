package googlemaps

// Response schemas for the two Google Maps Web Service endpoints we call.
// Optional upstream fields are pointers; everything else decodes to its zero
// value when absent.

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"
)

// LatLng mirrors the geometry.location object.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Geometry wraps the location of a geocode or place result.
type Geometry struct {
	Location LatLng `json:"location"`
}

type geocodeResult struct {
	FormattedAddress string   `json:"formatted_address"`
	Geometry         Geometry `json:"geometry"`
}

type geocodeResponse struct {
	Status       string          `json:"status"`
	Results      []geocodeResult `json:"results"`
	ErrorMessage string          `json:"error_message,omitempty"`
}

// Place is one entry of the nearby-search results array. Rating is a pointer
// because the upstream omits the field entirely for unrated places.
type Place struct {
	Name     string   `json:"name"`
	Rating   *float64 `json:"rating,omitempty"`
	Vicinity string   `json:"vicinity"`
	Geometry Geometry `json:"geometry"`
	PlaceID  string   `json:"place_id"`
	Types    []string `json:"types,omitempty"`
}

// RatingValue returns the rating, substituting 0 when the upstream omitted it.
func (p Place) RatingValue() float64 {
	if p.Rating == nil {
		return 0
	}
	return *p.Rating
}

type nearbyResponse struct {
	Status       string  `json:"status"`
	Results      []Place `json:"results"`
	ErrorMessage string  `json:"error_message,omitempty"`
}
