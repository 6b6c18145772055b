package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Raptors65/hack404/internal/models"
	"github.com/Raptors65/hack404/internal/places"
	"github.com/Raptors65/hack404/pkg/apierror"
	"github.com/Raptors65/hack404/pkg/logger"
)

const (
	// recommendationRadius is the fixed nearby-search radius in meters.
	recommendationRadius = 5000
	// maxRecommendations caps the enriched list.
	maxRecommendations = 10
	// likeThreshold is the minimum rating that counts as a friend "liking"
	// a place.
	likeThreshold = 8
)

// categoryRules classify a place by its type tags. Order matters: the
// first matching rule wins, so a museum that is also a tourist attraction
// is always a Museum.
var categoryRules = []struct {
	category string
	tags     []string
}{
	{"Museum", []string{"museum"}},
	{"Park", []string{"park"}},
	{"Religious Site", []string{"church", "hindu_temple", "mosque", "synagogue", "place_of_worship"}},
	{"Shopping", []string{"shopping_mall", "department_store"}},
	{"Restaurant", []string{"restaurant", "cafe", "food"}},
	{"Landmark", []string{"tourist_attraction", "landmark", "point_of_interest"}},
}

// RecommendationsResponse is the payload for the recommendations endpoint.
type RecommendationsResponse struct {
	Location         string                  `json:"location"`
	FormattedAddress string                  `json:"formatted_address"`
	Recommendations  []models.Recommendation `json:"recommendations"`
}

// RecommendationService produces friend-aware place recommendations for a
// city.
type RecommendationService struct {
	gateway     places.Gateway
	friendships FriendshipStore
	users       UserStore
	reviews     ReviewStore
}

// NewRecommendationService creates a new RecommendationService.
func NewRecommendationService(gateway places.Gateway, friendships FriendshipStore, users UserStore, reviews ReviewStore) *RecommendationService {
	return &RecommendationService{
		gateway:     gateway,
		friendships: friendships,
		users:       users,
		reviews:     reviews,
	}
}

// GetRecommendations geocodes the city, fetches nearby attractions and
// annotates each with the caller's friends who liked it. Gateway failures
// abort the request; friend lookups degrade to empty annotations.
func (s *RecommendationService) GetRecommendations(ctx context.Context, userID, city string) (*RecommendationsResponse, error) {
	location, err := s.gateway.Geocode(ctx, city)
	if err != nil {
		if errors.Is(err, places.ErrNoResults) {
			return nil, apierror.New("NOT_FOUND", fmt.Sprintf("Could not find location: %s", city), http.StatusNotFound)
		}
		return nil, apierror.Wrap(err, "UPSTREAM_ERROR", "Failed to resolve location", http.StatusInternalServerError)
	}

	nearby, err := s.gateway.NearbySearch(ctx, location.Lat, location.Lng, recommendationRadius, "tourist_attraction")
	if err != nil {
		return nil, apierror.Wrap(err, "UPSTREAM_ERROR", "Failed to fetch nearby attractions", http.StatusInternalServerError)
	}
	if len(nearby) > maxRecommendations {
		nearby = nearby[:maxRecommendations]
	}

	friendIDs := s.friendIDs(ctx, userID)
	likesByPlace := s.friendLikes(ctx, nearby, friendIDs)

	recommendations := make([]models.Recommendation, 0, len(nearby))
	for _, place := range nearby {
		likes := likesByPlace[place.PlaceID]
		recommendations = append(recommendations, models.Recommendation{
			PlaceID:         place.PlaceID,
			Name:            place.Name,
			Description:     place.Vicinity,
			Category:        categorize(place.Types),
			Rating:          place.Rating,
			ImageURL:        place.PhotoURL,
			FriendsWhoLiked: likes,
			FriendIndicator: friendIndicator(likes),
		})
	}

	return &RecommendationsResponse{
		Location:         city,
		FormattedAddress: location.FormattedAddress,
		Recommendations:  recommendations,
	}, nil
}

// friendIDs resolves the caller's friend set, degrading to empty on error.
func (s *RecommendationService) friendIDs(ctx context.Context, userID string) []string {
	friendships, err := s.friendships.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.WithError(err).Warnf("Failed to resolve friends for recommendations of user %s", userID)
		return nil
	}
	ids := make([]string, 0, len(friendships))
	for i := range friendships {
		ids = append(ids, friendships[i].Other(userID))
	}
	return ids
}

// friendLikes collects, per candidate place, the friends who rated it at
// or above the like threshold. Display names are resolved in one batch.
// Any failure degrades to no annotation for that place.
func (s *RecommendationService) friendLikes(ctx context.Context, nearby []places.Place, friendIDs []string) map[string][]models.FriendLike {
	likesByPlace := make(map[string][]models.FriendLike)
	if len(friendIDs) == 0 {
		return likesByPlace
	}

	reviewsByPlace := make(map[string][]models.Review)
	likerIDs := make(map[string]bool)
	for _, place := range nearby {
		reviews, err := s.reviews.ListLikedByUsers(ctx, place.PlaceID, friendIDs, likeThreshold)
		if err != nil {
			logger.Log.WithError(err).Warnf("Failed to fetch friend reviews for place %s", place.PlaceID)
			continue
		}
		reviewsByPlace[place.PlaceID] = reviews
		for i := range reviews {
			likerIDs[reviews[i].UserID] = true
		}
	}
	if len(likerIDs) == 0 {
		return likesByPlace
	}

	ids := make([]string, 0, len(likerIDs))
	for id := range likerIDs {
		ids = append(ids, id)
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		logger.Log.WithError(err).Warn("Failed to resolve liker identities")
		return likesByPlace
	}
	byID := make(map[string]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	for placeID, reviews := range reviewsByPlace {
		for i := range reviews {
			user, ok := byID[reviews[i].UserID]
			if !ok {
				continue
			}
			likesByPlace[placeID] = append(likesByPlace[placeID], models.FriendLike{
				UserID: user.ID,
				Name:   DisplayName(user),
				Email:  user.Email,
				Rating: reviews[i].Rating,
			})
		}
	}

	return likesByPlace
}

// categorize maps place-type tags to one coarse category. Rules are
// checked in priority order; unmatched places fall back to "Attraction".
func categorize(types []string) string {
	tagSet := make(map[string]bool, len(types))
	for _, t := range types {
		tagSet[t] = true
	}
	for _, rule := range categoryRules {
		for _, tag := range rule.tags {
			if tagSet[tag] {
				return rule.category
			}
		}
	}
	return "Attraction"
}

// friendIndicator renders the human-readable summary of which friends
// liked a place.
func friendIndicator(likes []models.FriendLike) string {
	switch len(likes) {
	case 0:
		return ""
	case 1:
		return fmt.Sprintf("%s liked this place", likes[0].Name)
	case 2:
		return fmt.Sprintf("%s and %s liked this place", likes[0].Name, likes[1].Name)
	default:
		return fmt.Sprintf("%s and %d others liked this place", likes[0].Name, len(likes)-1)
	}
}
