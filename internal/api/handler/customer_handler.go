package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"loja-sql/internal/api/handler/dto"
	"loja-sql/internal/domain/customer"
	"loja-sql/internal/pkg/apperrors"
)

type CustomerHandler struct {
	service customer.CustomerService
	logger  *slog.Logger
}

func NewCustomerHandler(s customer.CustomerService, l *slog.Logger) *CustomerHandler {
	if s == nil {
		panic("customer service cannot be nil")
	}
	if l == nil {
		panic("logger cannot be nil")
	}
	return &CustomerHandler{
		service: s,
		logger:  l.With("component", "CustomerHandler"),
	}
}

// CreateCustomer handles POST /customers. The address must already exist.
func (h *CustomerHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer request")

	var req dto.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}
	cust, err := req.ToDomain(0)
	if err != nil {
		respondError(w, err)
		return
	}

	created, err := h.service.Register(r.Context(), cust)
	if err != nil {
		logServiceError(r.Context(), h.logger, "Service failed to register customer", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer created successfully", slog.Int64("customerID", created.ID))
	respondJSON(w, http.StatusCreated, dto.NewCustomerResponse(created))
}

// CreateCustomerWithAddress handles POST /customers/with-address. Both rows are
// written in one transaction.
func (h *CustomerHandler) CreateCustomerWithAddress(w http.ResponseWriter, r *http.Request) {
	h.logger.DebugContext(r.Context(), "Received create customer with address request")

	var req dto.CustomerWithAddressRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}
	cust, addr, err := req.ToDomain()
	if err != nil {
		respondError(w, err)
		return
	}

	created, err := h.service.RegisterWithAddress(r.Context(), cust, addr)
	if err != nil {
		logServiceError(r.Context(), h.logger, "Service failed to register customer with address", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer and address created successfully",
		slog.Int64("customerID", created.ID), slog.Int64("addressID", created.AddressID()))
	respondJSON(w, http.StatusCreated, dto.NewCustomerResponse(created))
}

// ListCustomers handles GET /customers. With one of the cpf, rg or email query
// parameters it returns the single matching customer instead.
func (h *CustomerHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	if lookup, value, ok := h.lookupParam(r); ok {
		h.findCustomer(w, r, lookup, value)
		return
	}

	customers, err := h.service.List(r.Context())
	if err != nil {
		logServiceError(r.Context(), h.logger, "Service failed to list customers", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customers listed successfully", slog.Int("count", len(customers)))
	respondJSON(w, http.StatusOK, dto.NewCustomerListResponse(customers))
}

func (h *CustomerHandler) lookupParam(r *http.Request) (func(context.Context, string) (*customer.Customer, error), string, bool) {
	q := r.URL.Query()
	switch {
	case q.Has("cpf"):
		return h.service.FindByCPF, q.Get("cpf"), true
	case q.Has("rg"):
		return h.service.FindByRG, q.Get("rg"), true
	case q.Has("email"):
		return h.service.FindByEmail, q.Get("email"), true
	}
	return nil, "", false
}

func (h *CustomerHandler) findCustomer(w http.ResponseWriter, r *http.Request, find func(context.Context, string) (*customer.Customer, error), value string) {
	cust, err := find(r.Context(), value)
	if err != nil {
		logServiceError(r.Context(), h.logger, "Service failed to find customer", err)
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(cust))
}

// GetCustomer handles GET /customers/{customerID}
func (h *CustomerHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getIDFromURL(r, "customerID")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	cust, err := h.service.Get(r.Context(), customerID)
	if err != nil {
		logServiceError(r.Context(), h.logger, "Service failed to get customer", err)
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCustomerResponse(cust))
}

// UpdateCustomer handles PUT /customers/{customerID}
func (h *CustomerHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getIDFromURL(r, "customerID")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	var req dto.CustomerRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.WarnContext(r.Context(), "Failed to decode request body", slog.Any("error", err))
		respondError(w, fmt.Errorf("%w: %v", apperrors.ErrInvalidArgument, err))
		return
	}
	if err := req.Validate(); err != nil {
		h.logger.WarnContext(r.Context(), "Request validation failed", slog.Any("error", err))
		respondError(w, err)
		return
	}
	cust, err := req.ToDomain(customerID)
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.service.Update(r.Context(), cust); err != nil {
		logServiceError(r.Context(), h.logger, "Service failed to update customer", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer updated successfully", slog.Int64("customerID", customerID))
	respondJSON(w, http.StatusNoContent, nil)
}

// DeleteCustomer handles DELETE /customers/{customerID}
func (h *CustomerHandler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	customerID, err := getIDFromURL(r, "customerID")
	if err != nil {
		h.logger.WarnContext(r.Context(), "Failed to get customer ID from URL", slog.Any("error", err))
		respondError(w, err)
		return
	}

	if err := h.service.Delete(r.Context(), customerID); err != nil {
		logServiceError(r.Context(), h.logger, "Service failed to delete customer", err)
		respondError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "Customer deleted successfully", slog.Int64("customerID", customerID))
	respondJSON(w, http.StatusNoContent, nil)
}
