package main

import (
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"qibla-direction-service/internal/adapters/cache"
	"qibla-direction-service/internal/adapters/geocode"
	"qibla-direction-service/internal/api"
	"qibla-direction-service/internal/platform/db"
	"qibla-direction-service/internal/services"
)

// main is the application composition root.
// It wires concrete adapters (Nominatim, Postgres/Redis caches) behind
// ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	port := getEnv("PORT", "8080")
	nominatimURL := getEnv("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	userAgent := getEnv("GEOCODER_USER_AGENT", "qibla-direction-service/1.0")

	geocodeCache, err := buildGeocodeCache()
	if err != nil {
		log.Fatal(err)
	}

	resolver := geocode.NewNominatimResolver(nominatimURL, userAgent, geocodeCache)
	calculator := services.NewGreatCircleCalculator()
	router := api.NewRouter(resolver, calculator)

	// Write timeout covers a cold-cache geocode round trip with retries.
	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

// buildGeocodeCache picks the cache backend from the environment:
// Redis when REDIS_ADDR is set, Postgres when DATABASE_URL is set,
// otherwise no caching (every place name hits the geocoder).
func buildGeocodeCache() (geocode.Cache, error) {
	if addr := strings.TrimSpace(os.Getenv("REDIS_ADDR")); addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASS"),
		})
		log.Printf("geocode cache backend=redis addr=%s", addr)
		return cache.NewRedisGeocodeCache(client, 0), nil
	}

	if databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL")); databaseURL != "" {
		pool, err := db.Open(databaseURL)
		if err != nil {
			return nil, err
		}
		if err := cache.InitSchema(pool); err != nil {
			return nil, err
		}
		log.Println("geocode cache backend=postgres")
		return cache.NewSQLGeocodeCache(pool), nil
	}

	log.Println("geocode cache backend=none")
	return nil, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
