package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                 string
	DatabaseURL          string
	JWTSecret            string
	SessionTTL           time.Duration
	SessionSweepInterval time.Duration
	GoogleAudience       string
	AllowOrigins         []string
	LogstashTCPAddr      string

	MinIOEndpoint     string
	MinIOAccessKey    string
	MinIOSecretKey    string
	MinIOUseSSL       bool
	MinIOBucketImages string
	MinIOPublicURL    string

	RedisAddr          string
	RedisPassword      string
	RedisDB            int
	SuggestionCacheTTL time.Duration

	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIChatModel   string
	OpenAIImageModel  string
	ImageMaxDimension int

	GoogleMapsAPIKey string
	GeoIPBaseURL     string

	BookingTaxiURL   string
	BookingFoodURL   string
	BookingMovieURL  string
	BookingFlightURL string
	BookingTrainURL  string
	BookingBusURL    string

	RateLimitPerMinute int
	RateLimitBurst     int

	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	SMTPUseTLS   bool
	ContactInbox string
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	return Config{
		Port:                 getenv("PORT", "8080"),
		DatabaseURL:          getenv("DATABASE_URL", ""),
		JWTSecret:            must("JWT_SECRET"),
		SessionTTL:           duration("SESSION_TTL", 24*time.Hour),
		SessionSweepInterval: duration("SESSION_SWEEP_INTERVAL", 10*time.Minute),
		GoogleAudience:       getenv("GOOGLE_AUDIENCE", ""),
		AllowOrigins:         splitAndTrim(getenv("ALLOW_ORIGINS", "*")),
		LogstashTCPAddr:      getenv("LOGSTASH_TCP_ADDR", ""),

		MinIOEndpoint:     getenv("MINIO_ENDPOINT", ""),
		MinIOAccessKey:    getenv("MINIO_ACCESS_KEY", ""),
		MinIOSecretKey:    getenv("MINIO_SECRET_KEY", ""),
		MinIOUseSSL:       getenv("MINIO_USE_SSL", "false") == "true",
		MinIOBucketImages: getenv("MINIO_BUCKET_IMAGES", "holiday-images"),
		MinIOPublicURL:    getenv("MINIO_PUBLIC_URL", ""),

		RedisAddr:          getenv("REDIS_ADDR", ""),
		RedisPassword:      getenv("REDIS_PASSWORD", ""),
		RedisDB:            integer("REDIS_DB", 0),
		SuggestionCacheTTL: duration("SUGGESTION_CACHE_TTL", 6*time.Hour),

		OpenAIAPIKey:      getenv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getenv("OPENAI_BASE_URL", ""),
		OpenAIChatModel:   getenv("OPENAI_CHAT_MODEL", ""),
		OpenAIImageModel:  getenv("OPENAI_IMAGE_MODEL", ""),
		ImageMaxDimension: integer("IMAGE_MAX_DIMENSION", 1024),

		GoogleMapsAPIKey: getenv("GOOGLE_MAPS_API_KEY", ""),
		GeoIPBaseURL:     getenv("GEOIP_BASE_URL", ""),

		BookingTaxiURL:   getenv("BOOKING_TAXI_URL", ""),
		BookingFoodURL:   getenv("BOOKING_FOOD_URL", ""),
		BookingMovieURL:  getenv("BOOKING_MOVIE_URL", ""),
		BookingFlightURL: getenv("BOOKING_FLIGHT_URL", ""),
		BookingTrainURL:  getenv("BOOKING_TRAIN_URL", ""),
		BookingBusURL:    getenv("BOOKING_BUS_URL", ""),

		RateLimitPerMinute: integer("RATE_LIMIT_PER_MINUTE", 30),
		RateLimitBurst:     integer("RATE_LIMIT_BURST", 10),

		SMTPHost:     getenv("SMTP_HOST", ""),
		SMTPPort:     getenv("SMTP_PORT", ""),
		SMTPUsername: getenv("SMTP_USERNAME", ""),
		SMTPPassword: getenv("SMTP_PASSWORD", ""),
		SMTPFrom:     getenv("SMTP_FROM", ""),
		SMTPUseTLS:   getenv("SMTP_USE_TLS", "false") == "true",
		ContactInbox: getenv("CONTACT_INBOX", ""),
	}
}

func splitAndTrim(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}

// duration falls back to d when the value is missing, malformed or not positive.
func duration(k string, d time.Duration) time.Duration {
	raw := getenv(k, "")
	if raw == "" {
		return d
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		log.Printf("config: invalid %s=%q, using %s", k, raw, d)
		return d
	}
	return v
}

func integer(k string, d int) int {
	raw := getenv(k, "")
	if raw == "" {
		return d
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		log.Printf("config: invalid %s=%q, using %d", k, raw, d)
		return d
	}
	return v
}
