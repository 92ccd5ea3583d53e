package address

import (
	"context"
)

// Repository reads and writes address rows. Finders return a nil result and a nil
// error when nothing matches.
type Repository interface {
	FindAll(ctx context.Context) ([]*Address, error)

	FindByID(ctx context.Context, id int64) (*Address, error)

	FindByPostalCode(ctx context.Context, postalCode string) (*Address, error)

	Insert(ctx context.Context, addr *Address) error

	Update(ctx context.Context, addr *Address) error

	DeleteByID(ctx context.Context, id int64) error
}
