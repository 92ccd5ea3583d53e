package customer

import (
	"context"

	"loja-sql/internal/domain/address"
	"loja-sql/internal/event"

	"github.com/stretchr/testify/mock"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (_m *MockCustomerRepository) FindAll(ctx context.Context) ([]*Customer, error) {
	ret := _m.Called(ctx)

	var r0 []*Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Customer)
	}

	return r0, ret.Error(1)
}

func (_m *MockCustomerRepository) FindByID(ctx context.Context, id int64) (*Customer, error) {
	ret := _m.Called(ctx, id)
	return customerOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *MockCustomerRepository) FindByCPF(ctx context.Context, cpf string) (*Customer, error) {
	ret := _m.Called(ctx, cpf)
	return customerOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *MockCustomerRepository) FindByRG(ctx context.Context, rg string) (*Customer, error) {
	ret := _m.Called(ctx, rg)
	return customerOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *MockCustomerRepository) FindByEmail(ctx context.Context, email string) (*Customer, error) {
	ret := _m.Called(ctx, email)
	return customerOrNil(ret.Get(0)), ret.Error(1)
}

func (_m *MockCustomerRepository) Insert(ctx context.Context, cust *Customer) error {
	ret := _m.Called(ctx, cust)

	if rf, ok := ret.Get(0).(func(context.Context, *Customer) error); ok {
		return rf(ctx, cust)
	}
	return ret.Error(0)
}

func (_m *MockCustomerRepository) Update(ctx context.Context, cust *Customer) error {
	ret := _m.Called(ctx, cust)
	return ret.Error(0)
}

func (_m *MockCustomerRepository) DeleteByID(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

func customerOrNil(v any) *Customer {
	if v == nil {
		return nil
	}
	return v.(*Customer)
}

var _ Repository = (*MockCustomerRepository)(nil)

type MockAddressRepository struct {
	mock.Mock
}

func (_m *MockAddressRepository) FindAll(ctx context.Context) ([]*address.Address, error) {
	ret := _m.Called(ctx)
	var r0 []*address.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*address.Address)
	}
	return r0, ret.Error(1)
}

func (_m *MockAddressRepository) FindByID(ctx context.Context, id int64) (*address.Address, error) {
	ret := _m.Called(ctx, id)
	var r0 *address.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*address.Address)
	}
	return r0, ret.Error(1)
}

func (_m *MockAddressRepository) FindByPostalCode(ctx context.Context, postalCode string) (*address.Address, error) {
	ret := _m.Called(ctx, postalCode)
	var r0 *address.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*address.Address)
	}
	return r0, ret.Error(1)
}

func (_m *MockAddressRepository) Insert(ctx context.Context, addr *address.Address) error {
	ret := _m.Called(ctx, addr)
	if rf, ok := ret.Get(0).(func(context.Context, *address.Address) error); ok {
		return rf(ctx, addr)
	}
	return ret.Error(0)
}

func (_m *MockAddressRepository) Update(ctx context.Context, addr *address.Address) error {
	return _m.Called(ctx, addr).Error(0)
}

func (_m *MockAddressRepository) DeleteByID(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

var _ address.Repository = (*MockAddressRepository)(nil)

// FakeUnitOfWork hands fn the repositories it was built with and records whether the
// work committed.
type FakeUnitOfWork struct {
	Repos      TxRepositories
	Committed  bool
	RolledBack bool
}

func (u *FakeUnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error {
	if err := fn(ctx, u.Repos); err != nil {
		u.RolledBack = true
		return err
	}
	u.Committed = true
	return nil
}

var _ UnitOfWork = (*FakeUnitOfWork)(nil)

type MockEventPublisher struct {
	mock.Mock
}

func (_m *MockEventPublisher) PublishCustomerCreated(ctx context.Context, evt event.CustomerCreatedEvent) error {
	return _m.Called(ctx, evt).Error(0)
}

func (_m *MockEventPublisher) PublishCustomerUpdated(ctx context.Context, evt event.CustomerUpdatedEvent) error {
	return _m.Called(ctx, evt).Error(0)
}

func (_m *MockEventPublisher) PublishCustomerDeleted(ctx context.Context, evt event.CustomerDeletedEvent) error {
	return _m.Called(ctx, evt).Error(0)
}

var _ event.EventPublisher = (*MockEventPublisher)(nil)
