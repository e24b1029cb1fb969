package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Rule limits requests matching a method and path prefix to Limit requests
// per Window, with Burst as the bucket capacity (defaults to Limit). A
// Prefix ending in "/" matches any path below it; otherwise the match is
// exact.
type Rule struct {
	Prefix string
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds limiter configuration.
type Config struct {
	Enabled       bool
	DefaultLimit  int
	DefaultWindow time.Duration
	EvictInterval time.Duration
	Exempt        map[string]bool // client IDs never limited
	Blocked       map[string]bool // client IDs always rejected
	Rules         []Rule
}

func defaultConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  1000,
		DefaultWindow: time.Minute,
		EvictInterval: 5 * time.Minute,
		Exempt:        make(map[string]bool),
		Blocked:       make(map[string]bool),
		Rules:         DefaultRules(),
	}
}

// LoadConfig builds limiter configuration from environment variables.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:       true,
		DefaultLimit:  getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow: getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		EvictInterval: getEnvDuration("RATE_LIMIT_EVICT_INTERVAL", 5*time.Minute),
		Exempt:        parseIPList(os.Getenv("RATE_LIMIT_EXEMPT")),
		Blocked:       parseIPList(os.Getenv("RATE_LIMIT_BLOCKED")),
		Rules:         DefaultRules(),
	}
}

// DefaultRules returns the built-in per-endpoint limits. Extraction is the
// strictest tier since it may launch a headless browser; session and zone
// writes get a moderate tier; reads fall through to the default limit.
func DefaultRules() []Rule {
	return []Rule{
		{Prefix: "/extract", Method: "POST", Limit: 30, Window: time.Hour, Burst: 5},

		{Prefix: "/sessions", Method: "POST", Limit: 120, Window: time.Minute, Burst: 20},
		{Prefix: "/sessions/", Method: "POST", Limit: 300, Window: time.Minute, Burst: 30},
		{Prefix: "/sessions/", Method: "DELETE", Limit: 300, Window: time.Minute, Burst: 30},
	}
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
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
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func parseIPList(list string) map[string]bool {
	result := make(map[string]bool)
	for _, ip := range strings.Split(list, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			result[ip] = true
		}
	}
	return result
}
