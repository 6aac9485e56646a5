package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr             string
	CORSAllowedOrigins   []string
	CORSAllowCredentials bool

	JWTSecret string
	LogLevel  string
	SeedFile  string

	FeedPageSize  int
	FeedLoadDelay time.Duration

	AdminUsername   string
	AdminPassword   string
	VisitorUsername string
	VisitorPassword string

	AuthRatePerSec float64
}

// Load reads the environment, after merging a .env file if one exists.
// JWT_SECRET is only checked by RequireSecret since the terminal browser
// does not sign tokens.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := Config{
		HTTPAddr:             getenv("HTTP_ADDR", ":8080"),
		CORSAllowCredentials: getenv("CORS_ALLOW_CREDENTIALS", "false") == "true",
		JWTSecret:            getenv("JWT_SECRET", ""),
		LogLevel:             strings.ToLower(getenv("LOG_LEVEL", "info")),
		SeedFile:             getenv("SEED_FILE", ""),

		AdminUsername:   getenv("ADMIN_USERNAME", "admin"),
		AdminPassword:   getenv("ADMIN_PASSWORD", "lumina123"),
		VisitorUsername: getenv("VISITOR_USERNAME", "visitor"),
		VisitorPassword: getenv("VISITOR_PASSWORD", "visitor123"),
	}

	origins := strings.Split(getenv("CORS_ALLOWED_ORIGINS", ""), ",")
	for _, o := range origins {
		o = strings.TrimSpace(o)
		if o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	var err error
	if cfg.FeedPageSize, err = strconv.Atoi(getenv("FEED_PAGE_SIZE", "12")); err != nil || cfg.FeedPageSize <= 0 {
		return Config{}, fmt.Errorf("invalid FEED_PAGE_SIZE")
	}
	if cfg.FeedLoadDelay, err = time.ParseDuration(getenv("FEED_LOAD_DELAY", "600ms")); err != nil || cfg.FeedLoadDelay < 0 {
		return Config{}, fmt.Errorf("invalid FEED_LOAD_DELAY")
	}
	if cfg.AuthRatePerSec, err = strconv.ParseFloat(getenv("AUTH_RATE_PER_SEC", "5"), 64); err != nil || cfg.AuthRatePerSec <= 0 {
		return Config{}, fmt.Errorf("invalid AUTH_RATE_PER_SEC")
	}

	return cfg, nil
}

// RequireSecret fails when no JWT secret is configured.
func (c Config) RequireSecret() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("missing env: JWT_SECRET")
	}
	return nil
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}
