package dto

import (
	"fmt"
	"time"

	"loja-sql/internal/domain/address"
	"loja-sql/internal/domain/customer"
	"loja-sql/internal/pkg/apperrors"
)

// CustomerDetails are the customer fields shared by every customer request.
type CustomerDetails struct {
	Name      string `json:"name" validate:"required,max=120"`
	BirthDate string `json:"birthDate" validate:"required,datetime=2006-01-02"`
	CPF       string `json:"cpf" validate:"required,max=14"`
	RG        string `json:"rg" validate:"required,max=20"`
	Email     string `json:"email" validate:"required,email,max=120"`
	Phone     string `json:"phone" validate:"max=20"`
}

func (d CustomerDetails) toDomain(addressID int64) (*customer.Customer, error) {
	birthDate, err := time.Parse(customer.BirthDateLayout, d.BirthDate)
	if err != nil {
		return nil, apperrors.NewValidationError("birthDate", fmt.Sprintf("birthDate must use the %s format", customer.BirthDateLayout))
	}
	return customer.NewCustomer(d.Name, birthDate, d.CPF, d.RG, d.Email, d.Phone, addressID), nil
}

// CustomerRequest creates or replaces a customer that lives at an existing address.
type CustomerRequest struct {
	CustomerDetails
	AddressID int64 `json:"addressId" validate:"gt=0"`
}

func (r *CustomerRequest) Validate() error {
	return validateStruct(r)
}

func (r *CustomerRequest) ToDomain(id int64) (*customer.Customer, error) {
	cust, err := r.CustomerDetails.toDomain(r.AddressID)
	if err != nil {
		return nil, err
	}
	cust.ID = id
	return cust, nil
}

// CustomerWithAddressRequest registers a customer and a new address in one go.
type CustomerWithAddressRequest struct {
	CustomerDetails
	Address AddressRequest `json:"address"`
}

func (r *CustomerWithAddressRequest) Validate() error {
	return validateStruct(r)
}

func (r *CustomerWithAddressRequest) ToDomain() (*customer.Customer, *address.Address, error) {
	cust, err := r.CustomerDetails.toDomain(0)
	if err != nil {
		return nil, nil, err
	}
	return cust, r.Address.ToDomain(0), nil
}

type CustomerResponse struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name"`
	BirthDate string          `json:"birthDate"`
	CPF       string          `json:"cpf"`
	RG        string          `json:"rg"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone,omitempty"`
	Address   AddressResponse `json:"address"`
}

func NewCustomerResponse(cust *customer.Customer) CustomerResponse {
	if cust == nil {
		return CustomerResponse{}
	}

	birthDate := ""
	if !cust.BirthDate.IsZero() {
		birthDate = cust.BirthDate.Format(customer.BirthDateLayout)
	}

	return CustomerResponse{
		ID:        cust.ID,
		Name:      cust.Name,
		BirthDate: birthDate,
		CPF:       cust.CPF,
		RG:        cust.RG,
		Email:     cust.Email,
		Phone:     cust.Phone,
		Address:   NewAddressResponse(&cust.Address),
	}
}

func NewCustomerListResponse(customers []*customer.Customer) []CustomerResponse {
	resp := make([]CustomerResponse, len(customers))
	for i, cust := range customers {
		resp[i] = NewCustomerResponse(cust)
	}
	return resp
}
