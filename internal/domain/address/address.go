package address

import (
	"strings"
)

// Address is a postal address row. Customers reference it by ID.
type Address struct {
	ID           int64  `json:"id"`
	PostalCode   string `json:"postalCode" validate:"required,max=20"`
	Country      string `json:"country" validate:"required,max=60"`
	State        string `json:"state" validate:"required,max=60"`
	City         string `json:"city" validate:"required,max=100"`
	Neighborhood string `json:"neighborhood" validate:"max=100"`
	Street       string `json:"street" validate:"required,max=150"`
	Number       string `json:"number" validate:"required,max=20"`
}

func NewAddress(postalCode, country, state, city, neighborhood, street, number string) *Address {
	a := &Address{
		PostalCode:   postalCode,
		Country:      country,
		State:        state,
		City:         city,
		Neighborhood: neighborhood,
		Street:       street,
		Number:       number,
	}
	a.Normalize()
	return a
}

// Normalize trims surrounding whitespace from every text field.
func (a *Address) Normalize() {
	a.PostalCode = strings.TrimSpace(a.PostalCode)
	a.Country = strings.TrimSpace(a.Country)
	a.State = strings.TrimSpace(a.State)
	a.City = strings.TrimSpace(a.City)
	a.Neighborhood = strings.TrimSpace(a.Neighborhood)
	a.Street = strings.TrimSpace(a.Street)
	a.Number = strings.TrimSpace(a.Number)
}

func (a *Address) IsPersisted() bool {
	return a != nil && a.ID > 0
}
