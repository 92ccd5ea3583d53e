package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"loja-sql/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	secret := "testsecret"
	cfg := config.AuthConfig{Enabled: true, JWTSecret: secret}

	var seenUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUser, _ = UsernameFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	serve := func(cfg config.AuthConfig, header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/customers", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		AuthMiddleware(cfg, logger)(next).ServeHTTP(rec, req)
		return rec
	}

	t.Run("disabled middleware lets everything through", func(t *testing.T) {
		rec := serve(config.AuthConfig{Enabled: false}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		rec := serve(cfg, "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error":{"message":"Unauthorized"}}`, rec.Body.String())
	})

	t.Run("wrong scheme", func(t *testing.T) {
		rec := serve(cfg, "Basic "+signToken(t, secret, jwt.MapClaims{"username": "ana"}))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := serve(cfg, "Bearer invalidtoken")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		rec := serve(cfg, "Bearer "+signToken(t, "other", jwt.MapClaims{"username": "ana"}))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token := signToken(t, secret, jwt.MapClaims{"username": "ana", "exp": time.Now().Add(-time.Minute).Unix()})
		rec := serve(cfg, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token exposes the username", func(t *testing.T) {
		seenUser = ""
		token := signToken(t, secret, jwt.MapClaims{"username": "ana", "exp": time.Now().Add(time.Hour).Unix()})
		rec := serve(cfg, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ana", seenUser)
	})
}
