package customer

import (
	"context"

	"loja-sql/internal/domain/address"
)

// Repository is the customer data-access port. Finders return a nil customer and a
// nil error when no row matches; an error always means the storage call failed.
type Repository interface {
	FindAll(ctx context.Context) ([]*Customer, error)

	FindByID(ctx context.Context, id int64) (*Customer, error)

	FindByCPF(ctx context.Context, cpf string) (*Customer, error)

	FindByRG(ctx context.Context, rg string) (*Customer, error)

	FindByEmail(ctx context.Context, email string) (*Customer, error)

	Insert(ctx context.Context, cust *Customer) error

	Update(ctx context.Context, cust *Customer) error

	DeleteByID(ctx context.Context, id int64) error
}

// TxRepositories are repositories bound to one shared transaction.
type TxRepositories struct {
	Customers Repository
	Addresses address.Repository
}

// UnitOfWork runs fn inside a single transaction, committing when fn returns nil.
type UnitOfWork interface {
	Do(ctx context.Context, fn func(ctx context.Context, repos TxRepositories) error) error
}
