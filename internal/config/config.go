package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultPort       = "3001"
	DefaultAPIVersion = "2024-01"
)

type Config struct {
	Port              string
	ShopifyStore      string
	ShopifyToken      string
	ShopifyAPIVersion string
	ShopifyMaxPages   int
	ShopifyTimeout    time.Duration
	MetricsPort       string
	AllowOrigins      []string
	LogLevel          string
	LogFormat         string
}

func Load() *Config {
	// project root .env when started from cmd/<app>
	_ = godotenv.Load("../../.env")
	_ = godotenv.Load()
	return &Config{
		Port:              getEnv("PORT", DefaultPort),
		ShopifyStore:      strings.TrimSpace(os.Getenv("SHOPIFY_STORE")),
		ShopifyToken:      strings.TrimSpace(os.Getenv("SHOPIFY_ACCESS_TOKEN")),
		ShopifyAPIVersion: getEnv("SHOPIFY_API_VERSION", DefaultAPIVersion),
		ShopifyMaxPages:   getEnvInt("SHOPIFY_MAX_PAGES", 1),
		ShopifyTimeout:    getEnvDuration("SHOPIFY_TIMEOUT", 30*time.Second),
		MetricsPort:       os.Getenv("METRICS_PORT"),
		AllowOrigins:      getEnvList("CORS_ALLOW_ORIGINS", []string{"*"}),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
	}
}

// ShopifyConfigured reports whether both the store host and the access token are set.
func (c *Config) ShopifyConfigured() bool {
	return c.ShopifyStore != "" && c.ShopifyToken != ""
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getEnvInt(k string, d int) int {
	n, err := strconv.Atoi(os.Getenv(k))
	if err != nil || n <= 0 {
		return d
	}
	return n
}

func getEnvDuration(k string, d time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(k))
	if err != nil || v <= 0 {
		return d
	}
	return v
}

func getEnvList(k string, d []string) []string {
	var out []string
	for _, s := range strings.Split(os.Getenv(k), ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	if len(out) == 0 {
		return d
	}
	return out
}
