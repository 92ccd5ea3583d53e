package address

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockAddressRepository struct {
	mock.Mock
}

func (_m *MockAddressRepository) FindAll(ctx context.Context) ([]*Address, error) {
	ret := _m.Called(ctx)

	var r0 []*Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]*Address)
	}

	return r0, ret.Error(1)
}

func (_m *MockAddressRepository) FindByID(ctx context.Context, id int64) (*Address, error) {
	ret := _m.Called(ctx, id)

	var r0 *Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Address)
	}

	return r0, ret.Error(1)
}

func (_m *MockAddressRepository) FindByPostalCode(ctx context.Context, postalCode string) (*Address, error) {
	ret := _m.Called(ctx, postalCode)

	var r0 *Address
	if ret.Get(0) != nil {
		r0 = ret.Get(0).(*Address)
	}

	return r0, ret.Error(1)
}

func (_m *MockAddressRepository) Insert(ctx context.Context, addr *Address) error {
	ret := _m.Called(ctx, addr)

	if rf, ok := ret.Get(0).(func(context.Context, *Address) error); ok {
		return rf(ctx, addr)
	}
	return ret.Error(0)
}

func (_m *MockAddressRepository) Update(ctx context.Context, addr *Address) error {
	ret := _m.Called(ctx, addr)
	return ret.Error(0)
}

func (_m *MockAddressRepository) DeleteByID(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}

var _ Repository = (*MockAddressRepository)(nil)
