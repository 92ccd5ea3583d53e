package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"loja-sql/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const usernameKey contextKey = "username"

var errMalformedHeader = errors.New("invalid Authorization header format")

// UsernameFromContext returns the username claim of the authenticated caller.
func UsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(usernameKey).(string)
	return username, ok
}

func AuthMiddleware(cfg config.AuthConfig, logger *slog.Logger) func(http.Handler) http.Handler {
	if !cfg.Enabled {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	logger = logger.With("component", "AuthMiddleware")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, err := validateJWT(r, cfg.JWTSecret)
			if err != nil {
				logger.WarnContext(r.Context(), "Rejected request", "path", r.URL.Path, "error", err)
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := r.Context()
			if username, ok := claims["username"].(string); ok {
				ctx = context.WithValue(ctx, usernameKey, username)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validateJWT(r *http.Request, secret string) (jwt.MapClaims, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, errors.New("missing Authorization header")
	}

	scheme, tokenString, found := strings.Cut(authHeader, " ")
	if !found || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
		return nil, errMalformedHeader
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	return claims, nil
}
