package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port     string
	LogLevel string
	API      APIConfig
	Query    QueryConfig
	Cookie   CookieConfig
}

func Load() (*Config, error) {
	api := DefaultAPIConfig()
	query := DefaultQueryConfig()
	cookie := DefaultCookieConfig()

	api.BaseURL = getEnv("API_BASE_URL", api.BaseURL)
	if u, err := url.Parse(api.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid API_BASE_URL %q", api.BaseURL)
	}

	timeout, err := getIntEnv("API_TIMEOUT_SECONDS", int(api.Timeout/time.Second))
	if err != nil {
		return nil, err
	}
	api.Timeout = time.Duration(timeout) * time.Second

	query.DefaultUsername = getEnv("DEFAULT_USERNAME", query.DefaultUsername)
	query.DefaultRepo = getEnv("DEFAULT_REPO", query.DefaultRepo)

	ttl, err := getIntEnv("QUERY_CACHE_TTL_SECONDS", int(query.CacheTTL/time.Second))
	if err != nil {
		return nil, err
	}
	query.CacheTTL = time.Duration(ttl) * time.Second

	if query.CacheMaxEntries, err = getIntEnv("QUERY_CACHE_MAX_ENTRIES", query.CacheMaxEntries); err != nil {
		return nil, err
	}

	wait, err := getIntEnv("RENDER_WAIT_MS", int(query.RenderWait/time.Millisecond))
	if err != nil {
		return nil, err
	}
	query.RenderWait = time.Duration(wait) * time.Millisecond

	cookie.Name = getEnv("TOKEN_COOKIE_NAME", cookie.Name)
	if cookie.MaxAge, err = getIntEnv("COOKIE_MAX_AGE_SECONDS", cookie.MaxAge); err != nil {
		return nil, err
	}
	if cookie.Secure, err = strconv.ParseBool(getEnv("COOKIE_SECURE", strconv.FormatBool(cookie.Secure))); err != nil {
		return nil, fmt.Errorf("invalid COOKIE_SECURE: %w", err)
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		API:      *api,
		Query:    *query,
		Cookie:   *cookie,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) (int, error) {
	n, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return n, nil
}
