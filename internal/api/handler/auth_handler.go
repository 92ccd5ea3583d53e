package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"loja-sql/internal/api/handler/dto"
	"loja-sql/internal/config"
	"loja-sql/internal/pkg/apperrors"

	"github.com/golang-jwt/jwt/v5"
)

const defaultTokenTTL = 24 * time.Hour

type AuthHandler struct {
	cfg    config.AuthConfig
	logger *slog.Logger
	now    func() time.Time
}

func NewAuthHandler(cfg config.AuthConfig, l *slog.Logger) *AuthHandler {
	return &AuthHandler{
		cfg:    cfg,
		logger: l.With("component", "AuthHandler"),
		now:    time.Now,
	}
}

// GenerateBearerToken handles POST /auth/token and signs an HS256 token for the username.
func (h *AuthHandler) GenerateBearerToken(w http.ResponseWriter, r *http.Request) {
	var req dto.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Token request validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}

	ttl := h.cfg.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	now := h.now()
	claims := jwt.MapClaims{
		"username": req.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(h.cfg.JWTSecret))
	if err != nil {
		h.logger.ErrorContext(r.Context(), "Failed to sign token", slog.Any("error", err))
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Bearer token issued", slog.String("username", req.Username))
	respondJSON(w, http.StatusOK, dto.TokenResponse{Token: "Bearer " + tokenString})
}
