package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"loja-sql/internal/api/handler/dto"
	"loja-sql/internal/domain/address"
	"loja-sql/internal/pkg/apperrors"
)

type AddressHandler struct {
	service address.Service
	logger  *slog.Logger
}

func NewAddressHandler(s address.Service, l *slog.Logger) *AddressHandler {
	if s == nil {
		panic("address service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &AddressHandler{
		service: s,
		logger:  l.With("component", "AddressHandler"),
	}
}

func (h *AddressHandler) decodeAddress(w http.ResponseWriter, r *http.Request) (*dto.AddressRequest, bool) {
	var req dto.AddressRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return nil, false
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, err)
		return nil, false
	}
	return &req, true
}

// CreateAddress handles POST /addresses
func (h *AddressHandler) CreateAddress(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeAddress(w, r)
	if !ok {
		return
	}

	created, err := h.service.Create(r.Context(), req.ToDomain(0))
	if err != nil {
		logServiceError(r.Context(), h.logger, "Service failed to create address", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Address created successfully", slog.Int64("addressID", created.ID))
	respondJSON(w, http.StatusCreated, dto.NewAddressResponse(created))
}

// ListAddresses handles GET /addresses, or GET /addresses?cep= for a postal code lookup.
func (h *AddressHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query(); q.Has("cep") {
		addr, err := h.service.FindByPostalCode(r.Context(), q.Get("cep"))
		if err != nil {
			logServiceError(r.Context(), h.logger, "Service failed to find address by postal code", err)
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, dto.NewAddressResponse(addr))
		return
	}

	addrs, err := h.service.List(r.Context())
	if err != nil {
		logServiceError(r.Context(), h.logger, "Service failed to list addresses", err)
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewAddressListResponse(addrs))
}

// GetAddress handles GET /addresses/{addressID}
func (h *AddressHandler) GetAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := getIDFromURL(r, "addressID")
	if err != nil {
		respondError(w, err)
		return
	}

	addr, err := h.service.Get(r.Context(), addressID)
	if err != nil {
		logServiceError(r.Context(), h.logger, "Service failed to get address", err)
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewAddressResponse(addr))
}

// UpdateAddress handles PUT /addresses/{addressID}
func (h *AddressHandler) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := getIDFromURL(r, "addressID")
	if err != nil {
		respondError(w, err)
		return
	}
	req, ok := h.decodeAddress(w, r)
	if !ok {
		return
	}

	if err := h.service.Update(r.Context(), req.ToDomain(addressID)); err != nil {
		logServiceError(r.Context(), h.logger, "Service failed to update address", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Address updated successfully", slog.Int64("addressID", addressID))
	respondJSON(w, http.StatusNoContent, nil)
}

// DeleteAddress handles DELETE /addresses/{addressID}. Addresses still referenced by
// a customer are rejected with 409.
func (h *AddressHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	addressID, err := getIDFromURL(r, "addressID")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), addressID); err != nil {
		logServiceError(r.Context(), h.logger, "Service failed to delete address", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Address deleted successfully", slog.Int64("addressID", addressID))
	respondJSON(w, http.StatusNoContent, nil)
}
