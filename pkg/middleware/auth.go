// Package middleware provides the HTTP middleware stack for pizzeria.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/shashiranjanraj/pizzeria/pkg/auth"
	"github.com/shashiranjanraj/pizzeria/pkg/metrics"
	"github.com/shashiranjanraj/pizzeria/pkg/response"
)

type claimsKey struct{}
type tokenKey struct{}

// Auth returns middleware that resolves the bearer token through the token
// service. Requests without a valid, unrevoked token fail with
// 401 {"message":"unauthorized"}. On success the claims and the raw token
// (needed again at logout) are stored in the request context.
func Auth(tokens *auth.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			tokenStr := strings.TrimPrefix(header, "Bearer ")
			if tokenStr == "" || tokenStr == header {
				metrics.AuthFailures.WithLabelValues("token").Inc()
				response.Unauthorized(w)
				return
			}

			claims, err := tokens.Validate(tokenStr)
			if err != nil {
				metrics.AuthFailures.WithLabelValues("token").Inc()
				response.Unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey{}, claims)
			ctx = context.WithValue(ctx, tokenKey{}, tokenStr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ClaimsFromCtx returns the authenticated principal's claims, if any.
func ClaimsFromCtx(r *http.Request) (*auth.Claims, bool) {
	claims, ok := r.Context().Value(claimsKey{}).(*auth.Claims)
	return claims, ok
}

// TokenFromCtx returns the raw bearer token the request authenticated with.
func TokenFromCtx(r *http.Request) (string, bool) {
	token, ok := r.Context().Value(tokenKey{}).(string)
	return token, ok
}
