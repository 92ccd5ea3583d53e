package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"loja-sql/internal/domain/customer"
	"loja-sql/internal/infrastructure/monitoring"
	"loja-sql/internal/pkg/apperrors"

	"github.com/jackc/pgx/v5"
)

const (
	selectCustomerSQL = `SELECT c.Id, c.Nome, c.DataNascimento, c.Cpf, c.Rg, c.Email, c.Telefone,
       e.Cep, e.Pais, e.Estado, e.Cidade, e.Bairro, e.Rua, e.Numero, c.id_endereco
FROM cliente c
JOIN endereco e ON c.id_endereco = e.Id`

	findAllCustomersSQL    = selectCustomerSQL + ` ORDER BY c.Id`
	findCustomerByIDSQL    = selectCustomerSQL + ` WHERE c.Id = $1`
	findCustomerByCPFSQL   = selectCustomerSQL + ` WHERE c.Cpf = $1`
	findCustomerByRGSQL    = selectCustomerSQL + ` WHERE c.Rg = $1`
	findCustomerByEmailSQL = selectCustomerSQL + ` WHERE c.Email = $1`

	insertCustomerSQL = `INSERT INTO cliente (Nome, DataNascimento, Cpf, Rg, Email, Telefone, id_endereco)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING Id`

	updateCustomerSQL = `UPDATE cliente
SET Nome = $1, DataNascimento = $2, Cpf = $3, Rg = $4, Email = $5, Telefone = $6, id_endereco = $7
WHERE Id = $8`

	deleteCustomerSQL = `DELETE FROM cliente WHERE Id = $1`
)

type CustomerRepository struct {
	tx     txRunner
	logger *slog.Logger
}

var _ customer.Repository = (*CustomerRepository)(nil)

func NewCustomerRepository(db Querier, logger *slog.Logger) *CustomerRepository {
	if db == nil {
		panic("Querier cannot be nil for CustomerRepository")
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCustomerRepository, using default stderr handler")
	}
	logger = logger.With("component", "CustomerRepository")
	return &CustomerRepository{
		tx:     txRunner{db: db, logger: logger},
		logger: logger,
	}
}

// WithTx returns a repository whose statements run on tx. Writes then skip their own
// begin/commit and the caller decides the outcome.
func (r *CustomerRepository) WithTx(tx pgx.Tx) *CustomerRepository {
	return &CustomerRepository{tx: r.tx.bind(tx), logger: r.logger}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCustomer(row rowScanner) (*customer.Customer, error) {
	var cust customer.Customer
	err := row.Scan(
		&cust.ID,
		&cust.Name,
		&cust.BirthDate,
		&cust.CPF,
		&cust.RG,
		&cust.Email,
		&cust.Phone,
		&cust.Address.PostalCode,
		&cust.Address.Country,
		&cust.Address.State,
		&cust.Address.City,
		&cust.Address.Neighborhood,
		&cust.Address.Street,
		&cust.Address.Number,
		&cust.Address.ID,
	)
	if err != nil {
		return nil, err
	}
	return &cust, nil
}

func (r *CustomerRepository) FindAll(ctx context.Context) (customers []*customer.Customer, err error) {
	start := time.Now()
	defer func() {
		monitoring.RecordDBQuery("FindAllCustomers", monitoring.QueryStatus(err), time.Since(start))
	}()

	rows, err := r.tx.db.Query(ctx, findAllCustomersSQL)
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query customers", slog.Any("error", err))
		return nil, queryFailed("find all customers", err)
	}
	defer rows.Close()

	for rows.Next() {
		cust, err := scanCustomer(rows)
		if err != nil {
			r.logger.ErrorContext(ctx, "Failed to scan customer row", slog.Any("error", err))
			return nil, queryFailed("scan customer row", err)
		}
		customers = append(customers, cust)
	}
	if err = rows.Err(); err != nil {
		r.logger.ErrorContext(ctx, "Error iterating customer rows", slog.Any("error", err))
		return nil, queryFailed("iterate customer rows", err)
	}

	r.logger.DebugContext(ctx, "Finished finding customers", slog.Int("count", len(customers)))
	return customers, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*customer.Customer, error) {
	return r.findOne(ctx, "FindCustomerByID", findCustomerByIDSQL, id)
}

func (r *CustomerRepository) FindByCPF(ctx context.Context, cpf string) (*customer.Customer, error) {
	return r.findOne(ctx, "FindCustomerByCPF", findCustomerByCPFSQL, cpf)
}

func (r *CustomerRepository) FindByRG(ctx context.Context, rg string) (*customer.Customer, error) {
	return r.findOne(ctx, "FindCustomerByRG", findCustomerByRGSQL, rg)
}

func (r *CustomerRepository) FindByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	return r.findOne(ctx, "FindCustomerByEmail", findCustomerByEmailSQL, email)
}

// findOne returns nil, nil when no row matches.
func (r *CustomerRepository) findOne(ctx context.Context, op, query string, arg any) (cust *customer.Customer, err error) {
	start := time.Now()
	defer func() {
		monitoring.RecordDBQuery(op, monitoring.QueryStatus(err), time.Since(start))
	}()

	cust, err = scanCustomer(r.tx.db.QueryRow(ctx, query, arg))
	if errors.Is(err, pgx.ErrNoRows) {
		r.logger.DebugContext(ctx, "Customer not found", slog.String("operation", op))
		return nil, nil
	}
	if err != nil {
		r.logger.ErrorContext(ctx, "Failed to query/scan customer", slog.String("operation", op), slog.Any("error", err))
		return nil, queryFailed(op, err)
	}
	return cust, nil
}

// Insert writes cust and back-fills the generated ID once the transaction commits.
func (r *CustomerRepository) Insert(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	var id int64
	err := r.tx.run(ctx, "InsertCustomer", func(q Querier) error {
		err := q.QueryRow(ctx, insertCustomerSQL,
			cust.Name,
			cust.BirthDate,
			cust.CPF,
			cust.RG,
			cust.Email,
			cust.Phone,
			cust.AddressID(),
		).Scan(&id)
		if errors.Is(err, pgx.ErrNoRows) {
			return errNoRowsAffected
		}
		return translateDBError(err, r.logger)
	})
	if err != nil {
		return err
	}

	cust.ID = id
	r.logger.InfoContext(ctx, "Customer inserted successfully", slog.Int64("customerID", id))
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, cust *customer.Customer) error {
	if cust == nil {
		return fmt.Errorf("%w: customer cannot be nil", apperrors.ErrInvalidArgument)
	}

	err := r.tx.run(ctx, "UpdateCustomer", func(q Querier) error {
		_, err := q.Exec(ctx, updateCustomerSQL,
			cust.Name,
			cust.BirthDate,
			cust.CPF,
			cust.RG,
			cust.Email,
			cust.Phone,
			cust.AddressID(),
			cust.ID,
		)
		return translateDBError(err, r.logger)
	})
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Customer updated successfully", slog.Int64("customerID", cust.ID))
	return nil
}

func (r *CustomerRepository) DeleteByID(ctx context.Context, id int64) error {
	err := r.tx.run(ctx, "DeleteCustomer", func(q Querier) error {
		_, err := q.Exec(ctx, deleteCustomerSQL, id)
		return translateDBError(err, r.logger)
	})
	if err != nil {
		return err
	}

	r.logger.InfoContext(ctx, "Customer deleted successfully", slog.Int64("customerID", id))
	return nil
}
