package address_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"loja-sql/internal/domain/address"
	"loja-sql/internal/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupTest() (*address.MockAddressRepository, address.Service) {
	mockRepo := new(address.MockAddressRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return mockRepo, address.NewService(mockRepo, logger)
}

func validAddress() *address.Address {
	return address.NewAddress(" 01310-100 ", "Brasil", "SP", "São Paulo", "Bela Vista", "Avenida Paulista", "1578")
}

func TestAddressService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, service := setupTest()
		addr := validAddress()

		mockRepo.On("Insert", ctx, addr).Return(func(_ context.Context, a *address.Address) error {
			a.ID = 11
			return nil
		}).Once()

		created, err := service.Create(ctx, addr)

		assert.NoError(t, err)
		assert.Equal(t, int64(11), created.ID)
		assert.Equal(t, "01310-100", created.PostalCode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Error - Missing Street", func(t *testing.T) {
		mockRepo, service := setupTest()
		addr := validAddress()
		addr.Street = "   "

		_, err := service.Create(ctx, addr)

		assert.ErrorIs(t, err, apperrors.ErrValidation)
		assert.Contains(t, err.Error(), "Street")
		mockRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("Error - Nil Address", func(t *testing.T) {
		_, service := setupTest()
		_, err := service.Create(ctx, nil)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("Error - Repository Failure", func(t *testing.T) {
		mockRepo, service := setupTest()
		dbErr := apperrors.WrapDatabaseError("transaction not completed")
		mockRepo.On("Insert", ctx, mock.AnythingOfType("*address.Address")).Return(dbErr).Once()

		created, err := service.Create(ctx, validAddress())

		assert.Nil(t, created)
		assert.ErrorIs(t, err, apperrors.ErrDatabase)
		assert.Contains(t, err.Error(), "failed to save new address")
	})
}

func TestAddressService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		mockRepo, service := setupTest()
		expected := &address.Address{ID: 3, City: "Recife"}
		mockRepo.On("FindByID", ctx, int64(3)).Return(expected, nil).Once()

		addr, err := service.Get(ctx, 3)

		assert.NoError(t, err)
		assert.Equal(t, expected, addr)
	})

	t.Run("Absent maps to ErrNotFound", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("FindByID", ctx, int64(4)).Return(nil, nil).Once()

		addr, err := service.Get(ctx, 4)

		assert.Nil(t, addr)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Invalid ID", func(t *testing.T) {
		mockRepo, service := setupTest()
		_, err := service.Get(ctx, 0)
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
		mockRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})
}

func TestAddressService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo, service := setupTest()
	mockRepo.On("FindAll", ctx).Return(nil, nil).Once()

	addrs, err := service.List(ctx)

	assert.NoError(t, err)
	assert.NotNil(t, addrs)
	assert.Empty(t, addrs)
}

func TestAddressService_FindByPostalCode(t *testing.T) {
	ctx := context.Background()

	t.Run("Trimmed lookup", func(t *testing.T) {
		mockRepo, service := setupTest()
		expected := &address.Address{ID: 5, PostalCode: "50030-230"}
		mockRepo.On("FindByPostalCode", ctx, "50030-230").Return(expected, nil).Once()

		addr, err := service.FindByPostalCode(ctx, " 50030-230 ")

		assert.NoError(t, err)
		assert.Equal(t, expected, addr)
	})

	t.Run("Empty postal code", func(t *testing.T) {
		_, service := setupTest()
		_, err := service.FindByPostalCode(ctx, "  ")
		assert.ErrorIs(t, err, apperrors.ErrInvalidArgument)
	})

	t.Run("Absent", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("FindByPostalCode", ctx, "00000-000").Return(nil, nil).Once()
		_, err := service.FindByPostalCode(ctx, "00000-000")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestAddressService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, service := setupTest()
		addr := validAddress()
		addr.ID = 9
		mockRepo.On("FindByID", ctx, int64(9)).Return(&address.Address{ID: 9}, nil).Once()
		mockRepo.On("Update", ctx, addr).Return(nil).Once()

		assert.NoError(t, service.Update(ctx, addr))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Not found", func(t *testing.T) {
		mockRepo, service := setupTest()
		addr := validAddress()
		addr.ID = 10
		mockRepo.On("FindByID", ctx, int64(10)).Return(nil, nil).Once()

		err := service.Update(ctx, addr)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestAddressService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo, service := setupTest()
		mockRepo.On("FindByID", ctx, int64(2)).Return(&address.Address{ID: 2}, nil).Once()
		mockRepo.On("DeleteByID", ctx, int64(2)).Return(nil).Once()

		assert.NoError(t, service.Delete(ctx, 2))
		mockRepo.AssertExpectations(t)
	})

	t.Run("Repository failure", func(t *testing.T) {
		mockRepo, service := setupTest()
		dbErr := errors.New("foreign key violation")
		mockRepo.On("FindByID", ctx, int64(2)).Return(&address.Address{ID: 2}, nil).Once()
		mockRepo.On("DeleteByID", ctx, int64(2)).Return(dbErr).Once()

		err := service.Delete(ctx, 2)

		assert.ErrorIs(t, err, dbErr)
		assert.Contains(t, err.Error(), "failed to delete address 2")
	})
}
