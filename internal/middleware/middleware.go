// Package middleware provides HTTP middleware components for the application.
package middleware

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Config holds middleware configuration.
type Config struct {
	Logger *zap.Logger

	CORS *CORSConfig

	RateLimit      rate.Limit
	RateLimitBurst int
}

// Chain creates a middleware chain with all configured middleware.
//
// No request-timeout middleware is applied: once a call is dispatched to the
// provider its lifecycle belongs to the provider, and the only deadline this
// service honors is the ring timeout passed along with the call itself.
func Chain(config *Config) func(http.Handler) http.Handler {
	rateLimiter := NewRateLimiter(config.RateLimit, config.RateLimitBurst)

	return func(handler http.Handler) http.Handler {
		// Applied in order, outermost first.
		h := handler

		h = rateLimiter.Middleware()(h)

		if config.CORS != nil {
			h = CORS(config.CORS)(h)
		}

		h = Recovery(config.Logger)(h)

		h = RequestID(h)

		h = Logger(config.Logger)(h)

		return h
	}
}
