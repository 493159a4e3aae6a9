// Mercatus - Product Catalog Analytics
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/mercatus

package api

import (
	"net/http"
	"os"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/tomtom215/mercatus/internal/config"
	"github.com/tomtom215/mercatus/internal/logging"
	"github.com/tomtom215/mercatus/internal/metrics"
)

// ChiMiddlewareConfig configures the Chi middleware factories: CORS
// policy and the default rate limiter budget.
type ChiMiddlewareConfig struct {
	CORSAllowedOrigins   []string
	CORSAllowedMethods   []string
	CORSAllowedHeaders   []string
	CORSExposedHeaders   []string
	CORSAllowCredentials bool
	CORSMaxAge           int // preflight cache lifetime, seconds

	RateLimitRequests int
	RateLimitWindow   time.Duration
	RateLimitDisabled bool
	// RateLimitKeyFunc and RateLimitOnLimit override the IP keying and
	// 429 response of the default limiter when set.
	RateLimitKeyFunc httprate.KeyFunc
	RateLimitOnLimit http.HandlerFunc
}

// DefaultChiMiddlewareConfig returns defaults that are safe to deploy:
// no CORS origins until explicitly configured, 100 requests per minute
// per client IP.
func DefaultChiMiddlewareConfig() *ChiMiddlewareConfig {
	return &ChiMiddlewareConfig{
		CORSAllowedOrigins:   []string{},
		CORSAllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		CORSAllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		CORSExposedHeaders:   []string{},
		CORSAllowCredentials: false,
		CORSMaxAge:           86400,

		RateLimitRequests: 100,
		RateLimitWindow:   time.Minute,
		RateLimitDisabled: false,
	}
}

// ChiMiddleware builds the Chi middleware stack from production-hardened
// implementations in the Chi ecosystem (go-chi/cors, go-chi/httprate).
type ChiMiddleware struct {
	config *ChiMiddlewareConfig
	cors   func(http.Handler) http.Handler
}

// NewChiMiddleware creates the middleware factory. A nil config gets the
// secure defaults.
func NewChiMiddleware(cfg *ChiMiddlewareConfig) *ChiMiddleware {
	if cfg == nil {
		cfg = DefaultChiMiddlewareConfig()
	}

	return &ChiMiddleware{
		config: cfg,
		cors: cors.Handler(cors.Options{
			AllowedOrigins:   cfg.CORSAllowedOrigins,
			AllowedMethods:   cfg.CORSAllowedMethods,
			AllowedHeaders:   cfg.CORSAllowedHeaders,
			ExposedHeaders:   cfg.CORSExposedHeaders,
			AllowCredentials: cfg.CORSAllowCredentials,
			MaxAge:           cfg.CORSMaxAge,
		}),
	}
}

// NewChiMiddlewareFromSecurity creates a ChiMiddleware instance from the
// application security config. This bridges the koanf-loaded configuration
// to the Chi middleware factories.
func NewChiMiddlewareFromSecurity(sec config.SecurityConfig) *ChiMiddleware {
	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = sec.CORSOrigins
	cfg.RateLimitRequests = sec.RateLimitReqs
	cfg.RateLimitWindow = sec.RateLimitWindow
	cfg.RateLimitDisabled = sec.RateLimitDisabled
	return NewChiMiddleware(cfg)
}

// CORS returns a Chi-compatible CORS middleware using go-chi/cors.
func (m *ChiMiddleware) CORS() func(http.Handler) http.Handler {
	return m.cors
}

// rateLimitExceeded returns the shared 429 handler for a limiter scope.
// The scope keeps the metric label bounded; labeling by raw path would let
// clients mint unbounded label values.
func rateLimitExceeded(scope string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		metrics.RecordRateLimitHit(scope)
		logging.Warn().
			Str("scope", scope).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Str("remote_addr", r.RemoteAddr).
			Msg("Rate limit exceeded")
		respondError(w, http.StatusTooManyRequests, "TOO_MANY_REQUESTS", "Too many requests", nil)
	}
}

// RateLimit returns the default rate limiting middleware, built on
// go-chi/httprate with the factory's request budget and window. Keys by
// client IP unless the config overrides the key function.
func (m *ChiMiddleware) RateLimit() func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	keyFunc := m.config.RateLimitKeyFunc
	if keyFunc == nil {
		keyFunc = httprate.KeyByIP
	}

	onLimit := m.config.RateLimitOnLimit
	if onLimit == nil {
		onLimit = rateLimitExceeded("api")
	}

	return httprate.Limit(
		m.config.RateLimitRequests,
		m.config.RateLimitWindow,
		httprate.WithKeyFuncs(keyFunc),
		httprate.WithLimitHandler(onLimit),
	)
}

// RequestIDWithLogging wraps chi's RequestID middleware and threads the ID
// through the logging context, so every log line emitted while serving a
// request carries request_id and a fresh correlation_id.
func RequestIDWithLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		chiRequestID := chimiddleware.RequestID(next)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// chi would generate an ID for a bare request, but too late for
			// the logging context, so generate ours first and let chi adopt
			// it from the header.
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = logging.GenerateRequestID()
				r.Header.Set("X-Request-ID", requestID)
			}

			// Echo the ID so clients can correlate failures with server logs
			w.Header().Set("X-Request-ID", requestID)

			ctx := logging.ContextWithRequestID(r.Context(), requestID)
			ctx = logging.ContextWithNewCorrelationID(ctx)

			chiRequestID.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ================================================================================
// Endpoint-Specific Rate Limits
// ================================================================================

// RateLimitConfig defines rate limit parameters for specific endpoint groups.
// Scope labels rate-limit hits in metrics and stays bounded by construction.
type RateLimitConfig struct {
	// Requests is the number of requests allowed in the window
	Requests int
	// Window is the time window for rate limiting
	Window time.Duration
	// Scope names the endpoint group for metrics
	Scope string
}

// Endpoint-specific rate limit configurations, tuned per endpoint class.
var (
	// RateLimitAPI is the default limit for catalog read endpoints. All
	// responses come from the in-memory snapshot, so the budget is generous.
	RateLimitAPI = RateLimitConfig{Requests: 100, Window: time.Minute, Scope: "api"}

	// RateLimitHealth is permissive for health endpoints so monitoring
	// tools can poll frequently without tripping the limiter.
	RateLimitHealth = RateLimitConfig{Requests: 1000, Window: time.Minute, Scope: "health"}

	// RateLimitChat is stricter for the chat endpoint. Each message runs
	// intent extraction over the full snapshot, and conversational clients
	// have no legitimate reason to exceed a message every two seconds.
	RateLimitChat = RateLimitConfig{Requests: 30, Window: time.Minute, Scope: "chat"}
)

// RateLimitCustom returns a rate limiter with custom configuration.
// Enables endpoint-specific rate limiting.
func (m *ChiMiddleware) RateLimitCustom(config RateLimitConfig) func(http.Handler) http.Handler {
	if m.config.RateLimitDisabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	scope := config.Scope
	if scope == "" {
		scope = "api"
	}

	return httprate.Limit(
		config.Requests,
		config.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(rateLimitExceeded(scope)),
	)
}

// RateLimitHealth returns a rate limiter for health endpoints.
// Prevents abuse while allowing frequent monitoring checks.
func (m *ChiMiddleware) RateLimitHealth() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitHealth)
}

// RateLimitChat returns a rate limiter for the chat endpoint.
func (m *ChiMiddleware) RateLimitChat() func(http.Handler) http.Handler {
	return m.RateLimitCustom(RateLimitChat)
}

// ================================================================================
// API Security Headers
// ================================================================================

// APISecurityHeaders returns a middleware that adds security headers to
// API responses: X-Content-Type-Options, X-Frame-Options, and
// Referrer-Policy. Content-Security-Policy is omitted since these
// endpoints never serve HTML.
func APISecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")

			// HSTS only makes sense over TLS. X-Forwarded-Proto covers
			// TLS-terminating reverse proxies.
			if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
				w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ================================================================================
// End-to-End Debug Logging
// ================================================================================

// e2eDebugEnabled is read once at startup; flipping E2E_DEBUG needs a restart.
var e2eDebugEnabled = os.Getenv("E2E_DEBUG") == "true"

// E2EDebugLogging returns a middleware that logs every request with its
// final status and duration. Off unless E2E_DEBUG=true, so production
// traffic never pays for it; CI sets the variable when an end-to-end run
// needs request-level evidence.
func E2EDebugLogging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if !e2eDebugEnabled {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusResponseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(ww, r)

			logging.Info().
				Str("component", "e2e-debug").
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Str("query", sanitizeLogValue(r.URL.RawQuery)).
				Str("remote_addr", r.RemoteAddr).
				Int("status", ww.statusCode).
				Dur("duration", time.Since(start)).
				Msg("Request completed")
		})
	}
}

// statusResponseWriter captures the status code written by downstream handlers.
type statusResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (w *statusResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}
