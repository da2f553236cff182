package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

// UserIDKey carries the authenticated caller's user id through the context.
const UserIDKey ctxKey = "user_id"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TokenVerifier . TokenVerifier
type TokenVerifier interface {
	Validate(token string) (jwt.MapClaims, error)
}

type AuthMiddleware struct {
	logs     *zap.SugaredLogger
	verifier TokenVerifier
}

func NewAuthMiddleware(logger *zap.SugaredLogger, verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{
		logs:     logger,
		verifier: verifier,
	}
}

// Guard rejects the request with 401 unless a valid bearer token is present,
// and stores the token subject in the request context for handlers.
func (m *AuthMiddleware) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			m.unauthorized(w, r, "missing authorization header")
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			m.unauthorized(w, r, "authorization header format must be Bearer {token}")
			return
		}

		claims, err := m.verifier.Validate(parts[1])
		if err != nil {
			m.unauthorized(w, r, "invalid or expired token")
			return
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			m.unauthorized(w, r, "token subject missing")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, sub)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) unauthorized(w http.ResponseWriter, r *http.Request, reason string) {
	requestId := ""
	if v, ok := r.Context().Value(RequestIDKey).(string); ok {
		requestId = v
	}

	m.logs.Errorw("request rejected",
		"reason", reason,
		"path", r.URL.Path,
		"request_id", requestId)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)

	resp := map[string]string{
		"message": "Unauthorized",
		"error":   reason,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		m.logs.Errorw("failed to encode response", "error", err, "request_id", requestId)
	}
}
