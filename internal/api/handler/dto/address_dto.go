package dto

import (
	"loja-sql/internal/domain/address"
)

type AddressRequest struct {
	PostalCode   string `json:"postalCode" validate:"required,max=20"`
	Country      string `json:"country" validate:"required,max=60"`
	State        string `json:"state" validate:"required,max=60"`
	City         string `json:"city" validate:"required,max=100"`
	Neighborhood string `json:"neighborhood" validate:"max=100"`
	Street       string `json:"street" validate:"required,max=150"`
	Number       string `json:"number" validate:"required,max=20"`
}

func (r *AddressRequest) Validate() error {
	return validateStruct(r)
}

func (r *AddressRequest) ToDomain(id int64) *address.Address {
	addr := address.NewAddress(r.PostalCode, r.Country, r.State, r.City, r.Neighborhood, r.Street, r.Number)
	addr.ID = id
	return addr
}

type AddressResponse struct {
	ID           int64  `json:"id"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood,omitempty"`
	Street       string `json:"street"`
	Number       string `json:"number"`
}

func NewAddressResponse(addr *address.Address) AddressResponse {
	if addr == nil {
		return AddressResponse{}
	}
	return AddressResponse{
		ID:           addr.ID,
		PostalCode:   addr.PostalCode,
		Country:      addr.Country,
		State:        addr.State,
		City:         addr.City,
		Neighborhood: addr.Neighborhood,
		Street:       addr.Street,
		Number:       addr.Number,
	}
}

func NewAddressListResponse(addrs []*address.Address) []AddressResponse {
	resp := make([]AddressResponse, len(addrs))
	for i, addr := range addrs {
		resp[i] = NewAddressResponse(addr)
	}
	return resp
}
