package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Raptors65/hack404/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger()
	os.Exit(m.Run())
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *GoogleClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewGoogleClientWithBaseURL("test-key", server.URL)
}

func TestGeocode_OK(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "Paris", r.URL.Query().Get("address"))
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "Paris, France",
				"geometry": {"location": {"lat": 48.8566, "lng": 2.3522}}
			}]
		}`))
	})

	result, err := client.Geocode(context.Background(), "Paris")
	require.NoError(t, err)
	assert.Equal(t, 48.8566, result.Lat)
	assert.Equal(t, 2.3522, result.Lng)
	assert.Equal(t, "Paris, France", result.FormattedAddress)
}

func TestGeocode_ZeroResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, err := client.Geocode(context.Background(), "Nowhereville")
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestGeocode_UpstreamError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.Geocode(context.Background(), "Paris")
	assert.Error(t, err)
}

func TestNearbySearch_OK(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/nearbysearch/json", r.URL.Path)
		assert.Equal(t, "tourist_attraction", r.URL.Query().Get("type"))
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"place_id": "abc",
				"name": "Louvre",
				"vicinity": "Rue de Rivoli",
				"rating": 4.7,
				"types": ["museum", "tourist_attraction"],
				"photos": [{"photo_reference": "ref-1"}],
				"geometry": {"location": {"lat": 48.86, "lng": 2.33}}
			}]
		}`))
	})

	results, err := client.NearbySearch(context.Background(), 48.85, 2.35, 5000, "tourist_attraction")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "abc", results[0].PlaceID)
	assert.Equal(t, "Louvre", results[0].Name)
	assert.Contains(t, results[0].PhotoURL, "photo_reference=ref-1")
}

func TestNearbySearch_ZeroResultsIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	results, err := client.NearbySearch(context.Background(), 0, 0, 1000, "")
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNearbySearch_RadiusBounds(t *testing.T) {
	client := NewGoogleClient("test-key")

	_, err := client.NearbySearch(context.Background(), 0, 0, 0, "")
	assert.Error(t, err)
	_, err = client.NearbySearch(context.Background(), 0, 0, 50001, "")
	assert.Error(t, err)
	_, err = client.NearbySearch(context.Background(), 91, 0, 1000, "")
	assert.Error(t, err)
}

func TestDetails_OK(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/place/details/json", r.URL.Path)
		assert.Equal(t, "abc", r.URL.Query().Get("place_id"))
		w.Write([]byte(`{
			"status": "OK",
			"result": {
				"place_id": "abc",
				"name": "Louvre",
				"formatted_address": "Rue de Rivoli, Paris",
				"rating": 4.7,
				"user_ratings_total": 250000,
				"opening_hours": {"weekday_text": ["Monday: 9AM-6PM"]}
			}
		}`))
	})

	details, err := client.Details(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, "Louvre", details.Name)
	assert.Equal(t, 250000, details.UserRatingsTotal)
	assert.Equal(t, []string{"Monday: 9AM-6PM"}, details.OpeningHours)
}

func TestDetails_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "NOT_FOUND"}`))
	})

	_, err := client.Details(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoResults)
}
