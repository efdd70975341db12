// Package auth guards the API with HMAC-signed bearer tokens.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/MrJamesThe3rd/ledger/internal/http/respond"
)

type contextKey struct{}

type unauthorizedResponse struct {
	Detail string `json:"detail"`
}

// Middleware rejects requests without a valid bearer token signed with secret. An
// empty secret disables the check.
func Middleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if secret == "" {
			return next
		}

		key := []byte(secret)

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			subject, err := verify(key, r.Header.Get("Authorization"))
			if err != nil {
				w.Header().Set("WWW-Authenticate", "Bearer")
				respond.JSON(w, http.StatusUnauthorized, unauthorizedResponse{Detail: "could not validate credentials"})

				return
			}

			ctx := context.WithValue(r.Context(), contextKey{}, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func verify(key []byte, header string) (string, error) {
	raw, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || raw == "" {
		return "", errors.New("missing bearer token")
	}

	token, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", fmt.Errorf("parsing token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.New("token has no subject")
	}

	return subject, nil
}

// Subject returns the authenticated subject stored by Middleware.
func Subject(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(contextKey{}).(string)
	return s, ok
}

// Issue signs a token for subject that expires after ttl.
func Issue(secret, subject string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}

	return signed, nil
}
