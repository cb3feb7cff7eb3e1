// internal/httpserver/auth.go
//
// Admin authentication. Admin routes accept an HS256 JWT in the
// Authorization header whose "role" claim is "admin". Tokens are minted
// offline with SignAdminToken (see cmd/wordle-seed -token).

package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminRole = "admin"

type ctxAdminKey struct{}

// SignAdminToken issues an admin JWT for subject valid for ttl.
func SignAdminToken(secret, subject string, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, errors.New("empty admin secret")
	}
	now := time.Now()
	exp := now.Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": adminRole,
		"exp":  exp.Unix(),
		"iat":  now.Unix(),
	})
	ss, err := token.SignedString([]byte(secret))
	return ss, exp, err
}

// parseAdminToken validates tokenStr and returns its subject.
func parseAdminToken(secret, tokenStr string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	if role, _ := claims["role"].(string); role != adminRole {
		return "", errors.New("not an admin token")
	}
	sub, _ := claims.GetSubject()
	return sub, nil
}

// requireAdmin rejects requests without a valid admin bearer token.
// With no secret configured every request is refused.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.opts.AdminSecret == "" {
			writeError(w, http.StatusForbidden, "admin disabled")
			return
		}
		tokenStr := bearer(r)
		if tokenStr == "" {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		sub, err := parseAdminToken(s.opts.AdminSecret, tokenStr)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}
		ctx := context.WithValue(r.Context(), ctxAdminKey{}, sub)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// adminSubject returns the subject of the authenticated admin token, if any.
func adminSubject(r *http.Request) string {
	sub, _ := r.Context().Value(ctxAdminKey{}).(string)
	return sub
}

func bearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
	}
	return ""
}
