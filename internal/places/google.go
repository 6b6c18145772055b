package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Raptors65/hack404/pkg/logger"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// GoogleClient talks to the Google Maps web services.
type GoogleClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewGoogleClient(apiKey string) *GoogleClient {
	return &GoogleClient{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NewGoogleClientWithBaseURL is used by tests to point the client at a
// local server.
func NewGoogleClientWithBaseURL(apiKey, baseURL string) *GoogleClient {
	c := NewGoogleClient(apiKey)
	c.baseURL = baseURL
	return c
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *GoogleClient) Geocode(ctx context.Context, address string) (*GeocodeResult, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	var resp geocodeResponse
	if err := c.get(ctx, "/geocode/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status == "ZERO_RESULTS" || len(resp.Results) == 0 {
		return nil, ErrNoResults
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("geocoding failed with status %s", resp.Status)
	}

	result := resp.Results[0]
	return &GeocodeResult{
		Lat:              result.Geometry.Location.Lat,
		Lng:              result.Geometry.Location.Lng,
		FormattedAddress: result.FormattedAddress,
	}, nil
}

type nearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		PlaceID  string   `json:"place_id"`
		Name     string   `json:"name"`
		Vicinity string   `json:"vicinity"`
		Rating   float64  `json:"rating"`
		Types    []string `json:"types"`
		Photos   []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (c *GoogleClient) NearbySearch(ctx context.Context, lat, lng, radius float64, placeType string) ([]Place, error) {
	if radius <= 0 || radius > MaxRadiusMeters {
		return nil, fmt.Errorf("radius must be in (0, %d] meters", MaxRadiusMeters)
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("coordinates out of range")
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%.0f", radius))
	if placeType != "" {
		params.Set("type", placeType)
	}
	params.Set("key", c.apiKey)

	var resp nearbyResponse
	if err := c.get(ctx, "/place/nearbysearch/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status == "ZERO_RESULTS" {
		return []Place{}, nil
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("nearby search failed with status %s", resp.Status)
	}

	results := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		place := Place{
			PlaceID:  r.PlaceID,
			Name:     r.Name,
			Vicinity: r.Vicinity,
			Rating:   r.Rating,
			Types:    r.Types,
			Lat:      r.Geometry.Location.Lat,
			Lng:      r.Geometry.Location.Lng,
		}
		if len(r.Photos) > 0 {
			place.PhotoURL = c.photoURL(r.Photos[0].PhotoReference)
		}
		results = append(results, place)
	}
	return results, nil
}

type detailsResponse struct {
	Status string `json:"status"`
	Result struct {
		PlaceID          string   `json:"place_id"`
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		PhoneNumber      string   `json:"formatted_phone_number"`
		Website          string   `json:"website"`
		Rating           float64  `json:"rating"`
		UserRatingsTotal int      `json:"user_ratings_total"`
		Types            []string `json:"types"`
		Photos           []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
		OpeningHours struct {
			WeekdayText []string `json:"weekday_text"`
		} `json:"opening_hours"`
	} `json:"result"`
}

func (c *GoogleClient) Details(ctx context.Context, placeID string) (*PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "place_id,name,formatted_address,formatted_phone_number,website,rating,user_ratings_total,types,photos,opening_hours")
	params.Set("key", c.apiKey)

	var resp detailsResponse
	if err := c.get(ctx, "/place/details/json", params, &resp); err != nil {
		return nil, err
	}
	if resp.Status == "NOT_FOUND" || resp.Status == "ZERO_RESULTS" {
		return nil, ErrNoResults
	}
	if resp.Status != "OK" {
		return nil, fmt.Errorf("place details failed with status %s", resp.Status)
	}

	r := resp.Result
	details := &PlaceDetails{
		PlaceID:          r.PlaceID,
		Name:             r.Name,
		FormattedAddress: r.FormattedAddress,
		PhoneNumber:      r.PhoneNumber,
		Website:          r.Website,
		Rating:           r.Rating,
		UserRatingsTotal: r.UserRatingsTotal,
		Types:            r.Types,
		OpeningHours:     r.OpeningHours.WeekdayText,
	}
	if len(r.Photos) > 0 {
		details.PhotoURL = c.photoURL(r.Photos[0].PhotoReference)
	}
	return details, nil
}

func (c *GoogleClient) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Log.WithError(err).Errorf("Places API request to %s failed", path)
		return fmt.Errorf("places API request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("places API returned status %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode places API response: %v", err)
	}
	return nil
}

func (c *GoogleClient) photoURL(photoReference string) string {
	params := url.Values{}
	params.Set("maxwidth", "400")
	params.Set("photo_reference", photoReference)
	params.Set("key", c.apiKey)
	return c.baseURL + "/place/photo?" + params.Encode()
}
