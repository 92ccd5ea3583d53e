package address

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"loja-sql/internal/pkg/apperrors"

	"github.com/go-playground/validator/v10"
)

const addressNotFound = "Address not found by repository"

type Service interface {
	Create(ctx context.Context, addr *Address) (*Address, error)
	Get(ctx context.Context, id int64) (*Address, error)
	List(ctx context.Context) ([]*Address, error)
	FindByPostalCode(ctx context.Context, postalCode string) (*Address, error)
	Update(ctx context.Context, addr *Address) error
	Delete(ctx context.Context, id int64) error
}

var _ Service = (*addressService)(nil)

type addressService struct {
	repo     Repository
	validate *validator.Validate
	logger   *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) Service {
	if repo == nil {
		panic("address repository cannot be nil")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewService, using default stderr handler")
	}
	return &addressService{
		repo:     repo,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger.With(slog.String("component", "addressService")),
	}
}

// Validate checks the address fields with the struct tags on Address.
func Validate(v *validator.Validate, addr *Address) error {
	if addr == nil {
		return fmt.Errorf("%w: address cannot be nil", apperrors.ErrInvalidArgument)
	}
	if err := v.Struct(addr); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return apperrors.NewValidationError(fe.Field(), fmt.Sprintf("failed on the '%s' rule", fe.Tag()))
		}
		return fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
	}
	return nil
}

func (s *addressService) Create(ctx context.Context, addr *Address) (*Address, error) {
	s.logger.InfoContext(ctx, "Attempting to create new address")

	if addr != nil {
		addr.Normalize()
	}
	if err := Validate(s.validate, addr); err != nil {
		s.logger.WarnContext(ctx, "Validation failed for new address", slog.Any("error", err))
		return nil, err
	}

	if err := s.repo.Insert(ctx, addr); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to insert address", slog.Any("error", err))
		return nil, fmt.Errorf("failed to save new address: %w", err)
	}

	s.logger.InfoContext(ctx, "Successfully created new address", slog.Int64("addressID", addr.ID))
	return addr, nil
}

func (s *addressService) Get(ctx context.Context, id int64) (*Address, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: address ID must be positive", apperrors.ErrInvalidArgument)
	}

	addr, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error finding address", slog.Any("error", err))
		return nil, fmt.Errorf("failed to get address %d: %w", id, err)
	}
	if addr == nil {
		s.logger.WarnContext(ctx, addressNotFound, slog.Int64("addressID", id))
		return nil, apperrors.ErrNotFound
	}
	return addr, nil
}

func (s *addressService) List(ctx context.Context) ([]*Address, error) {
	addrs, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error listing addresses", slog.Any("error", err))
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	if addrs == nil {
		addrs = []*Address{}
	}
	s.logger.InfoContext(ctx, "Successfully retrieved addresses", slog.Int("count", len(addrs)))
	return addrs, nil
}

func (s *addressService) FindByPostalCode(ctx context.Context, postalCode string) (*Address, error) {
	postalCode = strings.TrimSpace(postalCode)
	if postalCode == "" {
		return nil, fmt.Errorf("%w: postal code cannot be empty", apperrors.ErrInvalidArgument)
	}

	addr, err := s.repo.FindByPostalCode(ctx, postalCode)
	if err != nil {
		s.logger.ErrorContext(ctx, "Repository error finding address by postal code", slog.Any("error", err))
		return nil, fmt.Errorf("failed to find address by postal code: %w", err)
	}
	if addr == nil {
		s.logger.WarnContext(ctx, addressNotFound)
		return nil, apperrors.ErrNotFound
	}
	return addr, nil
}

func (s *addressService) Update(ctx context.Context, addr *Address) error {
	s.logger.InfoContext(ctx, "Attempting to update address")

	if addr != nil {
		addr.Normalize()
	}
	if err := Validate(s.validate, addr); err != nil {
		return err
	}
	if _, err := s.Get(ctx, addr.ID); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, addr); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to update address", slog.Any("error", err))
		return fmt.Errorf("failed to update address %d: %w", addr.ID, err)
	}

	s.logger.InfoContext(ctx, "Successfully updated address", slog.Int64("addressID", addr.ID))
	return nil
}

func (s *addressService) Delete(ctx context.Context, id int64) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		s.logger.ErrorContext(ctx, "Repository failed to delete address", slog.Any("error", err))
		return fmt.Errorf("failed to delete address %d: %w", id, err)
	}

	s.logger.InfoContext(ctx, "Successfully deleted address", slog.Int64("addressID", id))
	return nil
}
