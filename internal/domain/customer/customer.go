package customer

import (
	"strings"
	"time"

	"loja-sql/internal/domain/address"
)

const BirthDateLayout = "2006-01-02"

// Customer is a store customer. Address is an owned reference: only Address.ID is
// persisted with the customer row, the address row itself is written separately.
type Customer struct {
	ID        int64           `json:"id"`
	Name      string          `json:"name" validate:"required,max=120"`
	BirthDate time.Time       `json:"birthDate" validate:"required"`
	CPF       string          `json:"cpf" validate:"required,max=14"`
	RG        string          `json:"rg" validate:"required,max=20"`
	Email     string          `json:"email" validate:"required,email,max=120"`
	Phone     string          `json:"phone" validate:"max=20"`
	Address   address.Address `json:"address" validate:"-"`
}

func NewCustomer(name string, birthDate time.Time, cpf, rg, email, phone string, addressID int64) *Customer {
	c := &Customer{
		Name:      name,
		BirthDate: birthDate,
		CPF:       cpf,
		RG:        rg,
		Email:     email,
		Phone:     phone,
		Address:   address.Address{ID: addressID},
	}
	c.Normalize()
	return c
}

// Normalize trims text fields, lower-cases the email and truncates the birth date to
// a calendar day in UTC.
func (c *Customer) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.CPF = strings.TrimSpace(c.CPF)
	c.RG = strings.TrimSpace(c.RG)
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	c.Phone = strings.TrimSpace(c.Phone)
	if !c.BirthDate.IsZero() {
		y, m, d := c.BirthDate.Date()
		c.BirthDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
}

func (c *Customer) AddressID() int64 {
	return c.Address.ID
}

func (c *Customer) ChangeEmail(email string) {
	c.Email = strings.ToLower(strings.TrimSpace(email))
}

// MoveTo points the customer at another persisted address.
func (c *Customer) MoveTo(addr address.Address) {
	c.Address = addr
}
