package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/Raptors65/hack404/internal/auth"
	"github.com/Raptors65/hack404/internal/config"
	"github.com/Raptors65/hack404/internal/database"
	"github.com/Raptors65/hack404/internal/handlers"
	"github.com/Raptors65/hack404/internal/places"
	"github.com/Raptors65/hack404/internal/repository"
	"github.com/Raptors65/hack404/internal/services"
	"github.com/Raptors65/hack404/pkg/logger"
	"github.com/Raptors65/hack404/pkg/middleware"
	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
)

func healthCheck(w http.ResponseWriter, r *http.Request) {
	handlers.RespondWithJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "Backend is running",
	})
}

func main() {
	// Load configuration from .env file
	cfg := config.LoadConfig()

	logger.InitLogger()
	logger.Log.Info("Logger initialized")

	// Connect to MongoDB
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("Database connection error: %v", err)
	}

	// Places gateway, with an optional Redis cache in front
	var gateway places.Gateway = places.NewGoogleClient(cfg.GoogleMapsAPIKey)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddr,
			DB:   cfg.RedisDB,
		})
		gateway = places.NewCachedGateway(gateway, redisClient)
		logger.Log.Info("Places cache enabled")
	}

	// Identity provider token validation
	validator := auth.NewJWTValidator(cfg.SupabaseJWTSecret)

	// --- Repositories ---
	userRepo := repository.NewUserRepository(db)
	friendshipRepo := repository.NewFriendshipRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	tripRepo := repository.NewTripRepository(db)

	// --- Services ---
	userService := services.NewUserService(userRepo)
	friendService := services.NewFriendService(friendshipRepo, userRepo)
	reviewService := services.NewReviewService(reviewRepo)
	tripService := services.NewTripService(tripRepo)
	feedService := services.NewFeedService(friendshipRepo, userRepo, reviewRepo, tripRepo)
	recommendationService := services.NewRecommendationService(gateway, friendshipRepo, userRepo, reviewRepo)

	// --- Handlers ---
	friendHandler := handlers.NewFriendHandler(friendService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	tripHandler := handlers.NewTripHandler(tripService, recommendationService)
	feedHandler := handlers.NewFeedHandler(feedService)
	placeHandler := handlers.NewPlaceHandler(gateway)

	// Initialize Gorilla Mux router
	router := mux.NewRouter()
	router.Use(middleware.RecoverMiddleware)
	router.Use(middleware.LoggingMiddleware)

	// Public routes
	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.HandleFunc("/get_reviews", reviewHandler.GetReviewsHandler).Methods("GET")

	// Authenticated routes
	protected := router.NewRoute().Subrouter()
	protected.Use(middleware.AuthMiddleware(validator))
	protected.Use(middleware.SyncIdentityMiddleware(userService))

	protected.HandleFunc("/rate_place", reviewHandler.RatePlaceHandler).Methods("POST")
	protected.HandleFunc("/user/rating", reviewHandler.GetUserRatingHandler).Methods("GET")
	protected.HandleFunc("/user/reviewed-places", reviewHandler.GetReviewedPlacesHandler).Methods("GET")

	protected.HandleFunc("/add_friend", friendHandler.AddFriendHandler).Methods("POST")
	protected.HandleFunc("/remove_friend", friendHandler.RemoveFriendHandler).Methods("DELETE")
	protected.HandleFunc("/friends", friendHandler.GetFriendsHandler).Methods("GET")

	protected.HandleFunc("/trip/current", tripHandler.CurrentTripHandler).Methods("GET")
	protected.HandleFunc("/trip/start", tripHandler.StartTripHandler).Methods("POST")
	protected.HandleFunc("/trip/end", tripHandler.EndTripHandler).Methods("PUT")
	protected.HandleFunc("/trip/past", tripHandler.PastTripsHandler).Methods("GET")
	protected.HandleFunc("/trip/recommendations", tripHandler.RecommendationsHandler).Methods("GET")

	protected.HandleFunc("/feed", feedHandler.GetFeedHandler).Methods("GET")

	protected.HandleFunc("/attractions", placeHandler.GetAttractionsHandler).Methods("GET")
	protected.HandleFunc("/attraction-details", placeHandler.GetAttractionDetailsHandler).Methods("GET")

	// Start the HTTP server
	port := cfg.Port
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	handler := c.Handler(router)

	fmt.Printf("Server running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
