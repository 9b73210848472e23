// Package kernel assembles the HTTP handler: global middleware stack, the
// process-wide token service, and the API routes.
package kernel

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/pizzeria/app/routes"
	"github.com/shashiranjanraj/pizzeria/config"
	"github.com/shashiranjanraj/pizzeria/pkg/auth"
	"github.com/shashiranjanraj/pizzeria/pkg/cache"
	"github.com/shashiranjanraj/pizzeria/pkg/logger"
	"github.com/shashiranjanraj/pizzeria/pkg/metrics"
	"github.com/shashiranjanraj/pizzeria/pkg/middleware"
	"github.com/shashiranjanraj/pizzeria/pkg/reqid"
	"github.com/shashiranjanraj/pizzeria/pkg/router"
)

// NewTokens builds the process-wide token service. Revocations live in Redis
// when it is reachable (so logouts survive restarts); otherwise in a local
// synchronized set.
func NewTokens() *auth.Tokens {
	var revoked auth.RevocationList
	if cache.Connected() {
		revoked = auth.NewRedisRevocations(cache.Client())
	} else {
		logger.Warn("redis unavailable, token revocations are process-local")
		revoked = auth.NewMemoryRevocations()
	}

	return auth.NewTokens(config.JWTSecret(), config.TokenTTL(), revoked)
}

// Build constructs the full HTTP handler.
func Build(tokens *auth.Tokens) http.Handler {
	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics — outermost for accurate total latency
	//  2. Recovery          — catches panics before they kill the goroutine
	//  3. Request ID        — inject unique ID before anything logs
	//  4. Logger            — logs request_id from context
	//  5. CORS
	//  6. Rate limiter      — reject abusers early
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(middleware.DefaultCORSOptions()))
	r.Use(middleware.RateLimit(200, time.Minute))

	// Prometheus endpoint — no auth, no rate limit exemption needed locally.
	r.Get("/metrics", "metrics", metrics.Handler())

	routes.RegisterAPI(r, tokens)

	return r.Handler()
}
