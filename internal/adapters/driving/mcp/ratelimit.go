package mcp

import (
	"net/http"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/computor-cli/internal/logger"
)

// RateLimitConfig bounds how fast HTTP clients may call the server.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate. Zero or less disables limiting.
	RequestsPerSecond float64
	// BurstSize is the maximum burst size.
	BurstSize int
}

// DefaultRateLimit applies to the HTTP transport unless overridden.
var DefaultRateLimit = RateLimitConfig{RequestsPerSecond: 20, BurstSize: 40}

// Enabled reports whether the config limits anything.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}

// rateLimited rejects requests over the configured rate with 429.
// One token bucket is shared by all clients.
func rateLimited(next http.Handler, cfg RateLimitConfig) http.Handler {
	if !cfg.Enabled() {
		return next
	}
	burst := cfg.BurstSize
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			logger.Debug("MCP request from %s rate limited", r.RemoteAddr)
			w.Header().Set("Retry-After", "1")
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
