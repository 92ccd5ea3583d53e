package postgres

import (
	"context"
	"log/slog"

	"loja-sql/internal/domain/customer"

	"github.com/jackc/pgx/v5"
)

// UnitOfWork runs several repository calls in one transaction on the pool.
type UnitOfWork struct {
	runner    txRunner
	customers *CustomerRepository
	addresses *AddressRepository
}

var _ customer.UnitOfWork = (*UnitOfWork)(nil)

func NewUnitOfWork(db Querier, logger *slog.Logger) *UnitOfWork {
	if db == nil {
		panic("Querier cannot be nil for UnitOfWork")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UnitOfWork{
		runner:    txRunner{db: db, logger: logger.With("component", "UnitOfWork")},
		customers: NewCustomerRepository(db, logger),
		addresses: NewAddressRepository(db, logger),
	}
}

func (u *UnitOfWork) Do(ctx context.Context, fn func(ctx context.Context, repos customer.TxRepositories) error) error {
	return u.runner.inTx(ctx, "UnitOfWork", func(tx pgx.Tx) error {
		return fn(ctx, customer.TxRepositories{
			Customers: u.customers.WithTx(tx),
			Addresses: u.addresses.WithTx(tx),
		})
	})
}
