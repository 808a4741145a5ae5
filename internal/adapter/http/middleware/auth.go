package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/iho/takeledger/internal/domain"
	"github.com/iho/takeledger/internal/infrastructure/auth"
)

// ContextKey is the type for context keys
type ContextKey string

const (
	// ClaimsContextKey is the context key for the authenticated participant
	ClaimsContextKey ContextKey = "claims"
)

// AuthFailureFunc is told why a request failed authentication.
type AuthFailureFunc func(reason string)

// AuthMiddleware rejects requests without a valid bearer token.
func AuthMiddleware(jwtManager *auth.JWTManager, onFailure AuthFailureFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, reason := authenticate(jwtManager, r)
			if claims == nil {
				if onFailure != nil {
					onFailure(reason)
				}
				http.Error(w, reason, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// OptionalAuth is a middleware that extracts the participant if present but doesn't require it
func OptionalAuth(jwtManager *auth.JWTManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if claims, _ := authenticate(jwtManager, r); claims != nil {
				ctx := context.WithValue(r.Context(), ClaimsContextKey, claims)
				r = r.WithContext(ctx)
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireAdmin lets only admins through. It must run after AuthMiddleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaimsFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		if !claims.Admin {
			http.Error(w, "insufficient permissions", http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetClaimsFromContext extracts the authenticated participant from context
func GetClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*auth.Claims)
	return claims, ok
}

// WithClaims returns a context carrying claims.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

func authenticate(jwtManager *auth.JWTManager, r *http.Request) (*auth.Claims, string) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, "missing authorization header"
	}

	// Parse Bearer token
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, "invalid authorization header format"
	}

	claims, err := jwtManager.Verify(parts[1])
	if err != nil {
		if errors.Is(err, domain.ErrExpiredToken) {
			return nil, "token expired"
		}
		return nil, "invalid token"
	}

	return claims, ""
}
