package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all environment-driven settings for the server.
type Config struct {
	Port              string
	MongoURI          string
	DBName            string
	SupabaseJWTSecret string
	GoogleMapsAPIKey  string
	RedisAddr         string
	RedisDB           int
}

// LoadConfig reads configuration from the environment, with .env as a
// fallback for local development.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Port:              getEnv("PORT", "5001"),
		MongoURI:          os.Getenv("MONGODB_URI"),
		DBName:            getEnv("DB_NAME", "hack404"),
		SupabaseJWTSecret: os.Getenv("SUPABASE_JWT_SECRET"),
		GoogleMapsAPIKey:  os.Getenv("GOOGLE_MAPS_API_KEY"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
	}

	if cfg.MongoURI == "" {
		log.Fatal("MONGODB_URI environment variable is not set")
	}
	if cfg.SupabaseJWTSecret == "" {
		log.Fatal("SUPABASE_JWT_SECRET environment variable is not set")
	}
	if cfg.GoogleMapsAPIKey == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY environment variable is not set")
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			log.Fatalf("Invalid REDIS_DB value: %v", err)
		}
		cfg.RedisDB = db
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
