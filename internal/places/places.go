package places

import (
	"context"
	"errors"
)

// ErrNoResults is returned when the upstream API resolves nothing for the
// query (e.g. geocoding an unknown city).
var ErrNoResults = errors.New("no results from places API")

// MaxRadiusMeters is the upstream limit for nearby searches.
const MaxRadiusMeters = 50000

// GeocodeResult is a resolved location for a free-form address.
type GeocodeResult struct {
	Lat              float64 `json:"lat"`
	Lng              float64 `json:"lng"`
	FormattedAddress string  `json:"formatted_address"`
}

// Place is one nearby-search result.
type Place struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity,omitempty"`
	Rating   float64  `json:"rating,omitempty"`
	Types    []string `json:"types,omitempty"`
	PhotoURL string   `json:"photo_url,omitempty"`
	Lat      float64  `json:"lat"`
	Lng      float64  `json:"lng"`
}

// PlaceDetails is the richer record returned by a details lookup.
type PlaceDetails struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	PhoneNumber      string   `json:"phone_number,omitempty"`
	Website          string   `json:"website,omitempty"`
	Rating           float64  `json:"rating,omitempty"`
	UserRatingsTotal int      `json:"user_ratings_total,omitempty"`
	Types            []string `json:"types,omitempty"`
	PhotoURL         string   `json:"photo_url,omitempty"`
	OpeningHours     []string `json:"opening_hours,omitempty"`
}

// Gateway abstracts the external geocoding/places API so the aggregation
// logic can be tested with fakes.
type Gateway interface {
	Geocode(ctx context.Context, address string) (*GeocodeResult, error)
	NearbySearch(ctx context.Context, lat, lng, radius float64, placeType string) ([]Place, error)
	Details(ctx context.Context, placeID string) (*PlaceDetails, error)
}
