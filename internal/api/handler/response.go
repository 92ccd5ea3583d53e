package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"loja-sql/internal/api/handler/dto"
	"loja-sql/internal/pkg/apperrors"

	"github.com/go-chi/chi/v5"
)

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return fmt.Errorf("no request body")
	}
	defer r.Body.Close()
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(v)
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	if payload == nil {
		w.WriteHeader(status)
		return
	}
	response, err := json.Marshal(payload)
	if err != nil {
		slog.Default().Error("Failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":{"message":"Internal server error"}}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(response)
}

func respondError(w http.ResponseWriter, err error) {
	status, code, message, field := http.StatusInternalServerError, "", "An unexpected error occurred.", ""
	var validationError *apperrors.ValidationError
	var appErr *apperrors.AppError

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		status, message = http.StatusNotFound, "Resource not found."
	case errors.As(err, &validationError):
		status, message, field = http.StatusBadRequest, validationError.Message, validationError.Field
	case errors.Is(err, apperrors.ErrInvalidArgument), errors.Is(err, apperrors.ErrValidation):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, apperrors.ErrAlreadyExists):
		status, message = http.StatusConflict, "Resource already exists."
	case errors.Is(err, apperrors.ErrConflict):
		status, message = http.StatusConflict, "Resource is referenced by another record."
	case errors.Is(err, apperrors.ErrUnauthorized):
		status, message = http.StatusUnauthorized, "Unauthorized"
	case errors.As(err, &appErr):
		code, message = appErr.Code, "A data access error occurred."
		slog.Default().Error("Data access error", "error", err)
	default:
		slog.Default().Error("Unhandled internal error", "error", err)
	}

	resp := dto.ErrorResponse{
		Error: dto.ErrorDetail{
			Code:    code,
			Message: message,
			Field:   field,
		},
	}
	respondJSON(w, status, resp)
}

// logServiceError logs client-caused failures at warn and everything else at error.
func logServiceError(ctx context.Context, logger *slog.Logger, msg string, err error) {
	level := slog.LevelError
	if isClientError(err) {
		level = slog.LevelWarn
	}
	logger.Log(ctx, level, msg, slog.Any("error", err))
}

func isClientError(err error) bool {
	for _, target := range []error{
		apperrors.ErrNotFound,
		apperrors.ErrInvalidArgument,
		apperrors.ErrValidation,
		apperrors.ErrAlreadyExists,
		apperrors.ErrConflict,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func getIDFromURL(r *http.Request, param string) (int64, error) {
	idStr := chi.URLParam(r, param)
	if idStr == "" {
		return 0, fmt.Errorf("%w: %s not found in URL path", apperrors.ErrInvalidArgument, param)
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s format in URL path: %s", apperrors.ErrInvalidArgument, param, idStr)
	}
	return id, nil
}
