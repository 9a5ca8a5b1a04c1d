// Package auth resolves the request's bearer token to an owner ID.
// Token issuance belongs to the identity provider; this side only
// verifies and extracts. Owner identity is always request-scoped, handlers
// never read it from anywhere but the request context.
package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type contextKey struct{}

// Middleware verifies the HS256 bearer token and stores the subject claim,
// the owner's UUID, in the request context.
func Middleware(secret string) func(http.Handler) http.Handler {
	key := []byte(secret)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ownerID, err := ownerFromRequest(r, key)
			if err != nil {
				http.Error(w, "invalid or missing token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(
				context.WithValue(r.Context(), contextKey{}, ownerID),
			))
		})
	}
}

func ownerFromRequest(r *http.Request, key []byte) (uuid.UUID, error) {
	header := r.Header.Get("Authorization")

	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		return uuid.Nil, fmt.Errorf("missing bearer token")
	}

	parsed, err := jwt.Parse(token,
		func(t *jwt.Token) (any, error) { return key, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("parsing token: %w", err)
	}

	sub, err := parsed.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, fmt.Errorf("reading subject: %w", err)
	}

	ownerID, err := uuid.Parse(sub)
	if err != nil {
		return uuid.Nil, fmt.Errorf("subject is not a uuid: %w", err)
	}

	return ownerID, nil
}

// OwnerID returns the authenticated owner stored by Middleware.
func OwnerID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(contextKey{}).(uuid.UUID)
	return id, ok
}
