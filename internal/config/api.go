package config

import "time"

// APIConfig holds settings for the remote commit-history API
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// DefaultAPIConfig returns the default API configuration
func DefaultAPIConfig() *APIConfig {
	return &APIConfig{
		BaseURL: "http://localhost:3001",
		Timeout: 30 * time.Second,
	}
}
