package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/Raptors65/hack404/internal/models"
	"github.com/Raptors65/hack404/pkg/logger"
)

const (
	// feedWindow is how far back friend activity is surfaced.
	feedWindow = 30 * 24 * time.Hour
	// feedPageSize caps the returned activity list.
	feedPageSize = 15
)

// featuredLists is the static, independently curated set of place
// collections shown at the top of every feed.
var featuredLists = []models.FeaturedList{
	{
		ID:          "hidden-gems",
		Title:       "Hidden Gems",
		Description: "Lesser-known spots loved by locals",
		ImageURL:    "https://images.unsplash.com/photo-1469854523086-cc02fe5d8800?w=400&h=250&fit=crop",
		PlaceCount:  12,
	},
	{
		ID:          "world-wonders",
		Title:       "World Wonders",
		Description: "Iconic landmarks worth the crowds",
		ImageURL:    "https://images.unsplash.com/photo-1526392060635-9d6019884377?w=400&h=250&fit=crop",
		PlaceCount:  8,
	},
	{
		ID:          "foodie-favorites",
		Title:       "Foodie Favorites",
		Description: "Where to eat like you live there",
		ImageURL:    "https://images.unsplash.com/photo-1414235077428-338989a2e8c0?w=400&h=250&fit=crop",
		PlaceCount:  15,
	},
}

// FeedResponse is the payload for the feed endpoint.
type FeedResponse struct {
	FeaturedLists   []models.FeaturedList   `json:"featured_lists"`
	FriendActivity  []models.FriendActivity `json:"friend_activity"`
	TotalActivities int                     `json:"total_activities"`
}

// FeedService builds the social feed from friends' recent reviews and
// completed trips.
type FeedService struct {
	friendships FriendshipStore
	users       UserStore
	reviews     ReviewStore
	trips       TripStore
}

// NewFeedService creates a new FeedService.
func NewFeedService(friendships FriendshipStore, users UserStore, reviews ReviewStore, trips TripStore) *FeedService {
	return &FeedService{
		friendships: friendships,
		users:       users,
		reviews:     reviews,
		trips:       trips,
	}
}

// GetFeed returns the curated featured lists plus the caller's friend
// activity from the trailing 30 days, newest first, capped at 15 items.
// TotalActivities reports the pre-truncation count. A failing friend
// lookup degrades to an empty activity list rather than failing the
// whole feed.
func (s *FeedService) GetFeed(ctx context.Context, userID string) (*FeedResponse, error) {
	response := &FeedResponse{
		FeaturedLists:  featuredLists,
		FriendActivity: []models.FriendActivity{},
	}

	friendships, err := s.friendships.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.WithError(err).Warnf("Failed to resolve friends for feed of user %s", userID)
		return response, nil
	}
	if len(friendships) == 0 {
		return response, nil
	}

	friendIDs := make([]string, 0, len(friendships))
	for i := range friendships {
		friendIDs = append(friendIDs, friendships[i].Other(userID))
	}

	since := time.Now().Add(-feedWindow)
	reviews, err := s.reviews.ListRecentByUsers(ctx, friendIDs, since)
	if err != nil {
		return nil, err
	}
	trips, err := s.trips.ListCompletedByUsers(ctx, friendIDs, since)
	if err != nil {
		return nil, err
	}

	// One batch lookup for every display name in the feed.
	users, err := s.users.GetByIDs(ctx, involvedIDs(reviews, trips))
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.User, len(users))
	for i := range users {
		byID[users[i].ID] = &users[i]
	}

	activities := make([]models.FriendActivity, 0, len(reviews)+len(trips))
	for i := range reviews {
		activities = append(activities, reviewActivity(&reviews[i], byID))
	}
	for i := range trips {
		if trips[i].EndDate == nil {
			continue
		}
		activities = append(activities, tripActivity(&trips[i], byID))
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})

	response.TotalActivities = len(activities)
	if len(activities) > feedPageSize {
		activities = activities[:feedPageSize]
	}
	response.FriendActivity = activities

	return response, nil
}

func involvedIDs(reviews []models.Review, trips []models.Trip) []string {
	seen := make(map[string]bool)
	var ids []string
	for i := range reviews {
		if !seen[reviews[i].UserID] {
			seen[reviews[i].UserID] = true
			ids = append(ids, reviews[i].UserID)
		}
	}
	for i := range trips {
		if !seen[trips[i].UserID] {
			seen[trips[i].UserID] = true
			ids = append(ids, trips[i].UserID)
		}
	}
	return ids
}

// reviewActivity maps a review row to a feed item. The id is synthesized
// from (type, user, place, timestamp) so clients can deduplicate.
func reviewActivity(review *models.Review, users map[string]*models.User) models.FriendActivity {
	activity := models.FriendActivity{
		Type:      models.ActivityTypeReview,
		ID:        fmt.Sprintf("review-%s-%s-%d", review.UserID, review.PlaceID, review.CreatedAt.Unix()),
		UserID:    review.UserID,
		CreatedAt: review.CreatedAt,
		PlaceID:   review.PlaceID,
		PlaceName: review.PlaceName,
		Rating:    review.Rating,
		Comment:   review.Comment,
	}
	if user, ok := users[review.UserID]; ok {
		activity.UserName = DisplayName(user)
		activity.UserEmail = user.Email
	}
	return activity
}

// tripActivity maps a completed trip to a feed item, timestamped by when
// the trip ended.
func tripActivity(trip *models.Trip, users map[string]*models.User) models.FriendActivity {
	activity := models.FriendActivity{
		Type:      models.ActivityTypeTrip,
		ID:        fmt.Sprintf("trip-%s-%s-%d", trip.UserID, trip.ID.Hex(), trip.EndDate.Unix()),
		UserID:    trip.UserID,
		CreatedAt: *trip.EndDate,
		City:      trip.City,
		Country:   trip.Country,
		StartDate: &trip.StartDate,
		EndDate:   trip.EndDate,
	}
	if user, ok := users[trip.UserID]; ok {
		activity.UserName = DisplayName(user)
		activity.UserEmail = user.Email
	}
	return activity
}
