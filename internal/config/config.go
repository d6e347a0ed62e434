package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

// insecureDefaultSecret is only acceptable for local development; Load
// warns loudly when it is in effect.
const insecureDefaultSecret = "your-super-secret-key-change-in-production"

// Config carries every externally tunable parameter of the service.
type Config struct {
	Port      string
	SecretKey string
	TokenTTL  time.Duration

	RateLimitRequests int
	RateLimitWindow   time.Duration

	HistoricalDataFile string
	DatabaseURL        string

	FCMCredentialsFile   string
	FCMCredentialsBase64 string
	FCMAlertTopic        string

	AllowedOrigins []string
}

// Load reads configuration from the environment, applying defaults. The
// .env file (if any) is loaded by main before this runs.
func Load() *Config {
	cfg := &Config{
		Port:                 getEnv("PORT", "8080"),
		SecretKey:            getEnv("APP_SECRET_KEY", insecureDefaultSecret),
		TokenTTL:             time.Duration(getEnvInt("TOKEN_TTL_MINUTES", 60)) * time.Minute,
		RateLimitRequests:    getEnvInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:      time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 3600)) * time.Second,
		HistoricalDataFile:   getEnv("HISTORICAL_DATA_FILE", "daily_waste_data.csv"),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		FCMCredentialsFile:   os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		FCMCredentialsBase64: os.Getenv("FIREBASE_CREDENTIALS_BASE64"),
		FCMAlertTopic:        getEnv("FCM_ALERT_TOPIC", "municipal-alerts"),
	}

	origins := getEnv("ALLOWED_ORIGINS", "http://127.0.0.1:5173,http://localhost:5173,http://127.0.0.1:5500,http://localhost:5500")
	for _, origin := range strings.Split(origins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	if cfg.SecretKey == insecureDefaultSecret {
		log.Println("⚠️  WARNING: APP_SECRET_KEY not set, using insecure default")
		log.Println("   Set APP_SECRET_KEY before deploying to production")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("⚠️  Invalid %s=%q, using default %d", key, value, fallback)
		return fallback
	}
	return parsed
}
