package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"pharmacology-gateway/internal/upstream"
)

// Config holds the process-wide settings. Everything comes from the
// environment; the defaults make a bare `go run` talk to the real reference
// service.
type Config struct {
	Port            int
	UpstreamBaseURL string
	UpstreamTimeout time.Duration
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// Parse reads the configuration from the environment.
func Parse() (*Config, error) {
	portStr := getenv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	baseURL := getenv("UPSTREAM_BASE_URL", upstream.DefaultBaseURL)
	parsed, err := url.ParseRequestURI(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid UPSTREAM_BASE_URL: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid UPSTREAM_BASE_URL: %q must be an absolute http(s) URL", baseURL)
	}

	timeoutStr := getenv("UPSTREAM_TIMEOUT_SECONDS", "20")
	timeoutSecs, err := strconv.Atoi(timeoutStr)
	if err != nil || timeoutSecs <= 0 {
		return nil, fmt.Errorf("invalid UPSTREAM_TIMEOUT_SECONDS: %q", timeoutStr)
	}

	return &Config{
		Port:            port,
		UpstreamBaseURL: baseURL,
		UpstreamTimeout: time.Duration(timeoutSecs) * time.Second,
	}, nil
}
