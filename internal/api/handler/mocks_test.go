package handler_test

import (
	"context"

	"loja-sql/internal/domain/address"
	"loja-sql/internal/domain/customer"

	"github.com/stretchr/testify/mock"
)

type MockCustomerService struct {
	mock.Mock
}

func (_m *MockCustomerService) Register(ctx context.Context, cust *customer.Customer) (*customer.Customer, error) {
	ret := _m.Called(ctx, cust)
	return customerResult(ret.Get(0)), ret.Error(1)
}

func (_m *MockCustomerService) RegisterWithAddress(ctx context.Context, cust *customer.Customer, addr *address.Address) (*customer.Customer, error) {
	ret := _m.Called(ctx, cust, addr)
	return customerResult(ret.Get(0)), ret.Error(1)
}

func (_m *MockCustomerService) Get(ctx context.Context, id int64) (*customer.Customer, error) {
	ret := _m.Called(ctx, id)
	return customerResult(ret.Get(0)), ret.Error(1)
}

func (_m *MockCustomerService) List(ctx context.Context) ([]*customer.Customer, error) {
	ret := _m.Called(ctx)

	var r0 []*customer.Customer
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*customer.Customer)
	}
	return r0, ret.Error(1)
}

func (_m *MockCustomerService) FindByCPF(ctx context.Context, cpf string) (*customer.Customer, error) {
	ret := _m.Called(ctx, cpf)
	return customerResult(ret.Get(0)), ret.Error(1)
}

func (_m *MockCustomerService) FindByRG(ctx context.Context, rg string) (*customer.Customer, error) {
	ret := _m.Called(ctx, rg)
	return customerResult(ret.Get(0)), ret.Error(1)
}

func (_m *MockCustomerService) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	ret := _m.Called(ctx, email)
	return customerResult(ret.Get(0)), ret.Error(1)
}

func (_m *MockCustomerService) Update(ctx context.Context, cust *customer.Customer) error {
	return _m.Called(ctx, cust).Error(0)
}

func (_m *MockCustomerService) Delete(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

func customerResult(v any) *customer.Customer {
	if v == nil {
		return nil
	}
	return v.(*customer.Customer)
}

var _ customer.CustomerService = (*MockCustomerService)(nil)

type MockAddressService struct {
	mock.Mock
}

func (_m *MockAddressService) Create(ctx context.Context, addr *address.Address) (*address.Address, error) {
	ret := _m.Called(ctx, addr)
	return addressResult(ret.Get(0)), ret.Error(1)
}

func (_m *MockAddressService) Get(ctx context.Context, id int64) (*address.Address, error) {
	ret := _m.Called(ctx, id)
	return addressResult(ret.Get(0)), ret.Error(1)
}

func (_m *MockAddressService) List(ctx context.Context) ([]*address.Address, error) {
	ret := _m.Called(ctx)

	var r0 []*address.Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*address.Address)
	}
	return r0, ret.Error(1)
}

func (_m *MockAddressService) FindByPostalCode(ctx context.Context, postalCode string) (*address.Address, error) {
	ret := _m.Called(ctx, postalCode)
	return addressResult(ret.Get(0)), ret.Error(1)
}

func (_m *MockAddressService) Update(ctx context.Context, addr *address.Address) error {
	return _m.Called(ctx, addr).Error(0)
}

func (_m *MockAddressService) Delete(ctx context.Context, id int64) error {
	return _m.Called(ctx, id).Error(0)
}

func addressResult(v any) *address.Address {
	if v == nil {
		return nil
	}
	return v.(*address.Address)
}

var _ address.Service = (*MockAddressService)(nil)
