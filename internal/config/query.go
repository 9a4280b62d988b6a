package config

import "time"

// QueryConfig holds commit-history query settings
type QueryConfig struct {
	DefaultUsername string
	DefaultRepo     string
	// CacheTTL of zero keeps results fresh until an explicit refetch.
	CacheTTL        time.Duration
	CacheMaxEntries int
	RenderWait      time.Duration
}

// CookieConfig holds settings for the token cookie
type CookieConfig struct {
	Name   string
	MaxAge int
	Secure bool
}

// DefaultQueryConfig returns the default query configuration
func DefaultQueryConfig() *QueryConfig {
	return &QueryConfig{
		DefaultUsername: "brandox02",
		DefaultRepo:     "commit-history-api",
		CacheTTL:        0,
		CacheMaxEntries: 256,
		RenderWait:      2 * time.Second,
	}
}

// DefaultCookieConfig returns the default cookie configuration
func DefaultCookieConfig() *CookieConfig {
	return &CookieConfig{
		Name:   "token",
		MaxAge: 0,
		Secure: false,
	}
}
