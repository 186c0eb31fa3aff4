package crossref

import (
	"fmt"
	"os"
	"time"
)

// DefaultBaseURL is the public CrossRef REST API endpoint
const DefaultBaseURL = "https://api.crossref.org"

// Config holds CrossRef API connection settings
type Config struct {
	// BaseURL is the API endpoint (overridable for tests and mirrors)
	BaseURL string

	// Mailto is the contact email for the polite pool (optional)
	Mailto string

	// Timeout for API requests
	Timeout time.Duration

	// UserAgent identifies the client to the provider
	UserAgent string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	baseURL := os.Getenv("CROSSREF_BASE_URL")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	timeout := 30 * time.Second
	if t := os.Getenv("CROSSREF_TIMEOUT"); t != "" {
		d, err := time.ParseDuration(t)
		if err != nil {
			return nil, fmt.Errorf("invalid CROSSREF_TIMEOUT %q: %w", t, err)
		}
		timeout = d
	}

	userAgent := os.Getenv("CROSSREF_USER_AGENT")
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Config{
		BaseURL:   baseURL,
		Mailto:    os.Getenv("CROSSREF_MAILTO"),
		Timeout:   timeout,
		UserAgent: userAgent,
	}, nil
}

// HasMailto returns true if a polite-pool contact email is configured
func (c *Config) HasMailto() bool {
	return c.Mailto != ""
}
