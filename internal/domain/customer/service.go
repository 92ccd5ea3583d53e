package customer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"loja-sql/internal/domain/address"
	"loja-sql/internal/event"
	"loja-sql/internal/infrastructure/monitoring"
	"loja-sql/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

const (
	inputValidationPassed = "Input validation passed"
	customerNotFound      = "Customer not found by repository"
)

type CustomerService interface {
	Register(ctx context.Context, cust *Customer) (*Customer, error)
	RegisterWithAddress(ctx context.Context, cust *Customer, addr *address.Address) (*Customer, error)
	Get(ctx context.Context, id int64) (*Customer, error)
	List(ctx context.Context) ([]*Customer, error)
	FindByCPF(ctx context.Context, cpf string) (*Customer, error)
	FindByRG(ctx context.Context, rg string) (*Customer, error)
	FindByEmail(ctx context.Context, email string) (*Customer, error)
	Update(ctx context.Context, cust *Customer) error
	Delete(ctx context.Context, id int64) error
}

var _ CustomerService = (*customerService)(nil)

type customerService struct {
	repo      Repository
	addresses address.Repository
	uow       UnitOfWork
	pub       event.EventPublisher
	validate  *validator.Validate
	logger    *slog.Logger
}

func NewCustomerService(repo Repository, addresses address.Repository, uow UnitOfWork, eventPublisher event.EventPublisher, logger *slog.Logger) CustomerService {
	if repo == nil {
		panic("customer repository cannot be nil")
	}
	if addresses == nil {
		panic("address repository cannot be nil")
	}

	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerService, using default stderr handler")
	}

	if eventPublisher == nil {
		logger.Warn("Warning: No event publisher provided to NewCustomerService, events will be dropped")
		eventPublisher = event.NoopPublisher{}
	}

	return &customerService{
		repo:      repo,
		addresses: addresses,
		uow:       uow,
		pub:       eventPublisher,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger.With(slog.String("component", "customerService")),
	}
}

func NewCustomerEventPayload(cust *Customer) event.CustomerEventPayload {
	if cust == nil {
		return event.CustomerEventPayload{}
	}
	return event.CustomerEventPayload{
		CustomerID: cust.ID,
		Name:       cust.Name,
		BirthDate:  cust.BirthDate.Format(BirthDateLayout),
		CPF:        cust.CPF,
		RG:         cust.RG,
		Email:      cust.Email,
		Phone:      cust.Phone,
		Address: event.AddressPayload{
			AddressID:    cust.Address.ID,
			PostalCode:   cust.Address.PostalCode,
			Country:      cust.Address.Country,
			State:        cust.Address.State,
			City:         cust.Address.City,
			Neighborhood: cust.Address.Neighborhood,
			Street:       cust.Address.Street,
			Number:       cust.Address.Number,
		},
	}
}

func (s *customerService) validateCustomer(cust *Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}
	if err := s.validate.Struct(cust); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
		}
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return nil
}

// resolveAddress loads the referenced address. The repository only writes the foreign
// key, so the address row must already exist.
func (s *customerService) resolveAddress(ctx context.Context, cust *Customer) error {
	if !cust.Address.IsPersisted() {
		s.logger.WarnContext(ctx, "Validation failed: customer has no persisted address")
		return apperrors.NewValidationError("Address", "address must be persisted before the customer")
	}

	addr, err := s.addresses.FindByID(ctx, cust.Address.ID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error resolving customer address", slog.Any("error", err))
		return fmt.Errorf("failed to resolve address %d: %w", cust.Address.ID, err)
	}
	if addr == nil {
		s.logger.WarnContext(ctx, "Referenced address does not exist", slog.Int64("addressID", cust.Address.ID))
		return fmt.Errorf("%w: address %d", apperrors.ErrNotFound, cust.Address.ID)
	}
	cust.Address = *addr
	return nil
}

func (s *customerService) Register(ctx context.Context, cust *Customer) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to register new customer")

	if cust != nil {
		cust.Normalize()
	}
	if err := s.validateCustomer(cust); err != nil {
		s.logger.WarnContext(ctx, "Validation failed for new customer", slog.Any("error", err))
		return nil, err
	}
	if err := s.resolveAddress(ctx, cust); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, inputValidationPassed)

	s.logger.InfoContext(ctx, "Calling repository Insert")
	if err := s.repo.Insert(ctx, cust); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to insert new customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new customer: %w", err)
	}

	s.afterCreate(ctx, cust)
	return cust, nil
}

func (s *customerService) RegisterWithAddress(ctx context.Context, cust *Customer, addr *address.Address) (*Customer, error) {
	s.logger.InfoContext(ctx, "Attempting to register new customer together with its address")

	if s.uow == nil {
		return nil, fmt.Errorf("%w: unit of work not configured", apperrors.ErrInvalidArgument)
	}
	if cust != nil {
		cust.Normalize()
	}
	if err := s.validateCustomer(cust); err != nil {
		return nil, err
	}
	if addr != nil {
		addr.Normalize()
	}
	if err := address.Validate(s.validate, addr); err != nil {
		return nil, err
	}
	s.logger.InfoContext(ctx, inputValidationPassed)

	err := s.uow.Do(ctx, func(ctx context.Context, repos TxRepositories) error {
		if err := repos.Addresses.Insert(ctx, addr); err != nil {
			return fmt.Errorf("failed to save address: %w", err)
		}
		cust.MoveTo(*addr)
		if err := repos.Customers.Insert(ctx, cust); err != nil {
			return fmt.Errorf("failed to save customer: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "Unit of work failed to register customer with address", slog.Any("error", err))
		return nil, fmt.Errorf("failed to register customer with address: %w", err)
	}

	monitoring.RecordAddressCreated()
	s.afterCreate(ctx, cust)
	return cust, nil
}

func (s *customerService) afterCreate(ctx context.Context, cust *Customer) {
	monitoring.RecordCustomerCreated()
	logger := s.logger.With(slog.Int64("customerID", cust.ID))
	logger.InfoContext(ctx, "Successfully saved new customer, publishing creation event")

	createdEvent := event.CustomerCreatedEvent{
		Timestamp: time.Now(),
		Payload:   NewCustomerEventPayload(cust),
	}
	if pubErr := s.pub.PublishCustomerCreated(ctx, createdEvent); pubErr != nil {
		logger.ErrorContext(ctx, "Customer created, but FAILED to publish creation event", slog.Any("error", pubErr))
	}
}

func (s *customerService) Get(ctx context.Context, id int64) (*Customer, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: customer ID must be positive", apperrors.ErrInvalidArgument)
	}

	cust, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error finding customer", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get customer %d: %w", id, err)
	}
	if cust == nil {
		s.logger.WarnContext(ctx, customerNotFound, slog.Int64("customerID", id))
		return nil, apperrors.ErrNotFound
	}
	return cust, nil
}

func (s *customerService) List(ctx context.Context) ([]*Customer, error) {
	customers, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing customers", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}
	if customers == nil {
		customers = []*Customer{}
	}

	s.logger.InfoContext(ctx, "Successfully retrieved customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (s *customerService) FindByCPF(ctx context.Context, cpf string) (*Customer, error) {
	return s.findBy(ctx, "cpf", strings.TrimSpace(cpf), s.repo.FindByCPF)
}

func (s *customerService) FindByRG(ctx context.Context, rg string) (*Customer, error) {
	return s.findBy(ctx, "rg", strings.TrimSpace(rg), s.repo.FindByRG)
}

func (s *customerService) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	return s.findBy(ctx, "email", strings.ToLower(strings.TrimSpace(email)), s.repo.FindByEmail)
}

func (s *customerService) findBy(ctx context.Context, field, value string, find func(context.Context, string) (*Customer, error)) (*Customer, error) {
	if value == "" {
		return nil, fmt.Errorf("%w: %s cannot be empty", apperrors.ErrInvalidArgument, field)
	}

	cust, err := find(ctx, value)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error finding customer", slog.String("field", field), slog.Any("error", err))
		return nil, fmt.Errorf("failed to find customer by %s: %w", field, err)
	}
	if cust == nil {
		s.logger.WarnContext(ctx, customerNotFound, slog.String("field", field))
		return nil, apperrors.ErrNotFound
	}
	return cust, nil
}

func (s *customerService) Update(ctx context.Context, cust *Customer) error {
	s.logger.InfoContext(ctx, "Attempting to update customer")

	if cust != nil {
		cust.Normalize()
	}
	if err := s.validateCustomer(cust); err != nil {
		s.logger.WarnContext(ctx, "Validation failed for customer update", slog.Any("error", err))
		return err
	}
	if _, err := s.Get(ctx, cust.ID); err != nil {
		return err
	}
	if err := s.resolveAddress(ctx, cust); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, cust); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to update customer", slog.Any("error", err))
		return fmt.Errorf("failed to update customer %d: %w", cust.ID, err)
	}

	s.logger.InfoContext(ctx, "Successfully updated customer, publishing update event", slog.Int64("customerID", cust.ID))
	updatedEvent := event.CustomerUpdatedEvent{
		Timestamp: time.Now(),
		Payload:   NewCustomerEventPayload(cust),
	}
	if pubErr := s.pub.PublishCustomerUpdated(ctx, updatedEvent); pubErr != nil {
		s.logger.ErrorContext(ctx, "Customer updated, but FAILED to publish update event", slog.Any("error", pubErr))
	}
	return nil
}

func (s *customerService) Delete(ctx context.Context, id int64) error {
	s.logger.InfoContext(ctx, "Attempting to delete customer")

	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to delete customer", slog.Any("error", err))
		return fmt.Errorf("failed to delete customer %d: %w", id, err)
	}
	monitoring.RecordCustomerDeleted()

	deletedEvent := event.CustomerDeletedEvent{Timestamp: time.Now(), CustomerID: id}
	if pubErr := s.pub.PublishCustomerDeleted(ctx, deletedEvent); pubErr != nil {
		s.logger.ErrorContext(ctx, "Customer deleted, but FAILED to publish deletion event", slog.Any("error", pubErr))
	}

	s.logger.InfoContext(ctx, "Successfully deleted customer", slog.Int64("customerID", id))
	return nil
}
