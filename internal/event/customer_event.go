package event

import (
	"context"
	"time"
)

const (
	RoutingKeyCustomerCreated = "customer.created"
	RoutingKeyCustomerUpdated = "customer.updated"
	RoutingKeyCustomerDeleted = "customer.deleted"
)

type AddressPayload struct {
	AddressID    int64  `json:"addressId"`
	PostalCode   string `json:"postalCode"`
	Country      string `json:"country"`
	State        string `json:"state"`
	City         string `json:"city"`
	Neighborhood string `json:"neighborhood"`
	Street       string `json:"street"`
	Number       string `json:"number"`
}

type CustomerEventPayload struct {
	CustomerID int64          `json:"customerId"`
	Name       string         `json:"name"`
	BirthDate  string         `json:"birthDate"`
	CPF        string         `json:"cpf"`
	RG         string         `json:"rg"`
	Email      string         `json:"email"`
	Phone      string         `json:"phone"`
	Address    AddressPayload `json:"address"`
}

type CustomerCreatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerUpdatedEvent struct {
	Timestamp time.Time            `json:"timestamp"`
	Payload   CustomerEventPayload `json:"payload"`
}

type CustomerDeletedEvent struct {
	Timestamp  time.Time `json:"timestamp"`
	CustomerID int64     `json:"customerId"`
}

type EventPublisher interface {
	PublishCustomerCreated(ctx context.Context, event CustomerCreatedEvent) error
	PublishCustomerUpdated(ctx context.Context, event CustomerUpdatedEvent) error
	PublishCustomerDeleted(ctx context.Context, event CustomerDeletedEvent) error
}

// NoopPublisher drops every event. Used when the broker is disabled.
type NoopPublisher struct{}

func (NoopPublisher) PublishCustomerCreated(context.Context, CustomerCreatedEvent) error {
	return nil
}

func (NoopPublisher) PublishCustomerUpdated(context.Context, CustomerUpdatedEvent) error {
	return nil
}

func (NoopPublisher) PublishCustomerDeleted(context.Context, CustomerDeletedEvent) error {
	return nil
}

var _ EventPublisher = NoopPublisher{}
