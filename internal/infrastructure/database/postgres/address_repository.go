package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"loja-sql/internal/domain/address"
	"loja-sql/internal/infrastructure/monitoring"
	"loja-sql/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const (
	selectAddressSQL = `SELECT Id, Cep, Pais, Estado, Cidade, Bairro, Rua, Numero FROM endereco`

	findAllAddressesSQL        = selectAddressSQL + ` ORDER BY Id`
	findAddressByIDSQL         = selectAddressSQL + ` WHERE Id = $1`
	findAddressByPostalCodeSQL = selectAddressSQL + ` WHERE Cep = $1 ORDER BY Id LIMIT 1`

	insertAddressSQL = `INSERT INTO endereco (Cep, Pais, Estado, Cidade, Bairro, Rua, Numero)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING Id`

	updateAddressSQL = `UPDATE endereco
SET Cep = $1, Pais = $2, Estado = $3, Cidade = $4, Bairro = $5, Rua = $6, Numero = $7
WHERE Id = $8`

	deleteAddressSQL = `DELETE FROM endereco WHERE Id = $1`
)

type AddressRepository struct {
	tx     txRunner
	logger *slog.Logger
}

var _ address.Repository = (*AddressRepository)(nil)

func NewAddressRepository(db Querier, logger *slog.Logger) *AddressRepository {
	if db == nil {
		panic("Querier cannot be nil for AddressRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}
	logger = logger.With("component", "AddressRepository")
	return &AddressRepository{
		tx:     txRunner{db: db, logger: logger},
		logger: logger,
	}
}

func (r *AddressRepository) WithTx(tx pgx.Tx) *AddressRepository {
	return &AddressRepository{tx: r.tx.bind(tx), logger: r.logger}
}

func scanAddress(row rowScanner) (*address.Address, error) {
	var addr address.Address
	err := row.Scan(
		&addr.ID,
		&addr.PostalCode,
		&addr.Country,
		&addr.State,
		&addr.City,
		&addr.Neighborhood,
		&addr.Street,
		&addr.Number,
	)
	if err != nil {
		return nil, err
	}
	return &addr, nil
}

func (r *AddressRepository) FindAll(ctx context.Context) (addresses []*address.Address, err error) {
	start := time.Now()
	defer func() {
		monitoring.RecordDBQuery("FindAllAddresses", monitoring.QueryStatus(err), time.Since(start))
	}()

	rows, err := r.tx.db.Query(ctx, findAllAddressesSQL)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query addresses", slog.Any("error", err))
		return nil, queryFailed("find all addresses", err)
	}
	defer rows.Close()

	for rows.Next() {
		addr, err := scanAddress(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan address row", slog.Any("error", err))
			return nil, queryFailed("scan address row", err)
		}
		addresses = append(addresses, addr)
	}
	if err = rows.Err(); err != nil {
		return nil, queryFailed("iterate address rows", err)
	}
	return addresses, nil
}

func (r *AddressRepository) FindByID(ctx context.Context, id int64) (*address.Address, error) {
	return r.findOne(ctx, "FindAddressByID", findAddressByIDSQL, id)
}

// FindByPostalCode returns the lowest-ID address with the postal code. Postal codes are
// not unique.
func (r *AddressRepository) FindByPostalCode(ctx context.Context, postalCode string) (*address.Address, error) {
	return r.findOne(ctx, "FindAddressByPostalCode", findAddressByPostalCodeSQL, postalCode)
}

func (r *AddressRepository) findOne(ctx context.Context, op, query string, arg any) (addr *address.Address, err error) {
	start := time.Now()
	defer func() {
		monitoring.RecordDBQuery(op, monitoring.QueryStatus(err), time.Since(start))
	}()

	addr, err = scanAddress(r.tx.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query/scan address", slog.String("operation", op), slog.Any("error", err))
		return nil, queryFailed(op, err)
	}
	return addr, nil
}

func (r *AddressRepository) Insert(ctx context.Context, addr *address.Address) error {
	if addr == nil {
		return fmt.Errorf("%w: address cannot be nil", apperrors.ErrInvalidArgument)
	}

	var id int64
	err := r.tx.run(ctx, "InsertAddress", func(q Querier) error {
		err := q.QueryRow(ctx, insertAddressSQL,
			addr.PostalCode,
			addr.Country,
			addr.State,
			addr.City,
			addr.Neighborhood,
			addr.Street,
			addr.Number,
		).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			return errNoRowsAffected
		}
		return translateDBError(err, r.logger)
	})
	if err != nil {
		return err
	}

	addr.ID = id
	r.logger.InfoContext(ctx, "Address inserted successfully", slog.Int64("addressID", id))
	return nil
}

func (r *AddressRepository) Update(ctx context.Context, addr *address.Address) error {
	if addr == nil {
		return fmt.Errorf("%w: address cannot be nil", apperrors.ErrInvalidArgument)
	}

	return r.tx.run(ctx, "UpdateAddress", func(q Querier) error {
		_, err := q.Exec(ctx, updateAddressSQL,
			addr.PostalCode,
			addr.Country,
			addr.State,
			addr.City,
			addr.Neighborhood,
			addr.Street,
			addr.Number,
			addr.ID,
		)
		return translateDBError(err, r.logger)
	})
}

// DeleteByID fails with a data-access error wrapping ErrConflict while a customer
// still references the address.
func (r *AddressRepository) DeleteByID(ctx context.Context, id int64) error {
	return r.tx.run(ctx, "DeleteAddress", func(q Querier) error {
		_, err := q.Exec(ctx, deleteAddressSQL, id)
		return translateDBError(err, r.logger)
	})
}
