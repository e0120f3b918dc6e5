// Package auth resolves the acting user for cart and order routes. Identity
// is established elsewhere; this package only extracts an opaque user id from
// the request.
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

const HeaderUserID = "X-User-Id"

type ctxKey string

const ctxUserID ctxKey = "user_id"

// UserID returns the user id stored by RequireUser, or "".
func UserID(ctx context.Context) string {
	if v := ctx.Value(ctxUserID); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// Middleware verifies bearer tokens when a secret is configured. With no
// secret it trusts the X-User-Id header, which keeps local development free
// of token plumbing.
type Middleware struct {
	secret []byte
}

func NewMiddleware(secret string) *Middleware {
	var key []byte
	if secret != "" {
		key = []byte(secret)
	}
	return &Middleware{secret: key}
}

func (m *Middleware) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.resolveUser(r)
		if err != nil {
			writeUnauthorized(w, err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), ctxUserID, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) resolveUser(r *http.Request) (string, error) {
	if m.secret == nil {
		uid := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if uid == "" {
			return "", fmt.Errorf("missing required header: %s", HeaderUserID)
		}
		return uid, nil
	}

	raw := strings.TrimSpace(r.Header.Get("Authorization"))
	token, ok := strings.CutPrefix(raw, "Bearer ")
	if !ok || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("missing bearer token")
	}

	return m.verifyToken(strings.TrimSpace(token))
}

func (m *Middleware) verifyToken(raw string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}
	return claims.Subject, nil
}

func writeUnauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
