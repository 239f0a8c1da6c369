package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	CatalogSize     int
	LookupPoolSize  int
	DefaultPageSize int
	SimLatency      bool
	JWTSecret       string
	TokenTTL        time.Duration
}

// Load configuration from env, reading a local .env file first when one
// is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err == nil {
		log.Println("[config] loaded .env file")
	}

	port := getEnvInt("PORT", 8080)
	catalogSize := getEnvInt("CATALOG_SIZE", 50)
	lookupPoolSize := getEnvInt("LOOKUP_POOL_SIZE", 100)
	defaultPageSize := getEnvInt("DEFAULT_PAGE_SIZE", 12)
	simLatency := getEnvBool("SIM_LATENCY", true)
	jwtSecret := getEnv("JWT_SECRET", "cinereview-dev-secret")
	tokenTTL := getEnvDuration("TOKEN_TTL", 24*time.Hour)

	if catalogSize <= 0 {
		return nil, fmt.Errorf("CATALOG_SIZE must be positive, got %d", catalogSize)
	}
	if lookupPoolSize < catalogSize {
		return nil, fmt.Errorf("LOOKUP_POOL_SIZE (%d) must cover CATALOG_SIZE (%d)", lookupPoolSize, catalogSize)
	}

	return &Config{
		Port:            port,
		CatalogSize:     catalogSize,
		LookupPoolSize:  lookupPoolSize,
		DefaultPageSize: defaultPageSize,
		SimLatency:      simLatency,
		JWTSecret:       jwtSecret,
		TokenTTL:        tokenTTL,
	}, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}
