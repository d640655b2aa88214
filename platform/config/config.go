// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
	GetRateLimitPerSecond() float64
	GetRateLimitBurst() int
}

// NotionConfig provides settings for the remote record store client.
type NotionConfig interface {
	GetNotionToken() string
	GetNotionBaseURL() string
	GetNotionVersion() string
	GetNotionTimeout() time.Duration
	GetNotionRequestsPerSecond() float64
}

// ItineraryConfig provides the collection ids used by the itinerary module.
type ItineraryConfig interface {
	GetSubcontractorsDB() string
	GetSubItineraryDB() string
	GetTaskDB() string
	GetTaskLookupConcurrency() int
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                     string
	HTTPAddr                string
	CORSAllowAll            bool
	CORSOrigins             []string
	CORSAllowCreds          bool
	RateLimitPerSecond      float64
	RateLimitBurst          int
	NotionToken             string
	NotionBaseURL           string
	NotionVersion           string
	NotionTimeout           time.Duration
	NotionRequestsPerSecond float64
	SubcontractorsDB        string
	SubItineraryDB          string
	TaskDB                  string
	TaskLookupConcurrency   int
}

// =============================================================================
// Interface Implementations
// =============================================================================

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string            { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool          { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string       { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool        { return c.CORSAllowCreds }
func (c *Config) GetRateLimitPerSecond() float64 { return c.RateLimitPerSecond }
func (c *Config) GetRateLimitBurst() int         { return c.RateLimitBurst }

// NotionConfig implementation
func (c *Config) GetNotionToken() string              { return c.NotionToken }
func (c *Config) GetNotionBaseURL() string            { return c.NotionBaseURL }
func (c *Config) GetNotionVersion() string            { return c.NotionVersion }
func (c *Config) GetNotionTimeout() time.Duration     { return c.NotionTimeout }
func (c *Config) GetNotionRequestsPerSecond() float64 { return c.NotionRequestsPerSecond }

// ItineraryConfig implementation
func (c *Config) GetSubcontractorsDB() string   { return c.SubcontractorsDB }
func (c *Config) GetSubItineraryDB() string     { return c.SubItineraryDB }
func (c *Config) GetTaskDB() string             { return c.TaskDB }
func (c *Config) GetTaskLookupConcurrency() int { return c.TaskLookupConcurrency }

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                     getEnv("APP_ENV", "development"),
		HTTPAddr:                getEnv("HTTP_ADDR", ":8000"),
		CORSAllowAll:            corsAllowAll,
		CORSOrigins:             corsOrigins,
		CORSAllowCreds:          strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "false"), "true"),
		RateLimitPerSecond:      mustFloat(getEnv("RATE_LIMIT_PER_SECOND", "10")),
		RateLimitBurst:          mustInt(getEnv("RATE_LIMIT_BURST", "20")),
		NotionToken:             getEnvFallback("NOTION_TOKEN", "TOKEN", ""),
		NotionBaseURL:           strings.TrimRight(getEnv("NOTION_BASE_URL", "https://api.notion.com"), "/"),
		NotionVersion:           getEnv("NOTION_VERSION", "2022-06-28"),
		NotionTimeout:           mustDuration(getEnv("NOTION_TIMEOUT", "15s")),
		NotionRequestsPerSecond: mustFloat(getEnv("NOTION_REQUESTS_PER_SECOND", "3")),
		SubcontractorsDB:        getEnvFallback("SUBCONTRACTORS_DB", "SUBCONTRACTORS", ""),
		SubItineraryDB:          getEnvFallback("SUB_ITINERARY_DB", "SUB_ITINERARY", ""),
		TaskDB:                  getEnvFallback("TASK_DB", "TASK", ""),
		TaskLookupConcurrency:   mustInt(getEnv("TASK_LOOKUP_CONCURRENCY", "1")),
	}

	if cfg.NotionToken == "" {
		return nil, fmt.Errorf("NOTION_TOKEN is required")
	}
	if cfg.SubcontractorsDB == "" || cfg.SubItineraryDB == "" || cfg.TaskDB == "" {
		return nil, fmt.Errorf("SUBCONTRACTORS_DB, SUB_ITINERARY_DB and TASK_DB are required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}
	if cfg.TaskLookupConcurrency < 1 {
		cfg.TaskLookupConcurrency = 1
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

// getEnvFallback reads key, then the legacy key, then the default.
func getEnvFallback(key, legacyKey, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return getEnv(legacyKey, fallback)
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
