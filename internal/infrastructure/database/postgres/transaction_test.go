package postgres

import (
	"context"
	"errors"
	"testing"

	"loja-sql/internal/pkg/apperrors"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRunner_PanicRollsBack(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	runner := txRunner{db: mockPool, logger: logger}
	mockPool.ExpectBegin()
	mockPool.ExpectRollback()

	assert.PanicsWithValue(t, "boom", func() {
		_ = runner.run(context.Background(), "Panics", func(Querier) error { panic("boom") })
	})
	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}

func TestTxRunner_BoundRunsOnCallerTx(t *testing.T) {
	ctx := context.Background()
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectBegin()
	tx, err := mockPool.Begin(ctx)
	require.NoError(t, err)

	runner := txRunner{logger: logger}.bind(tx)

	require.NoError(t, runner.run(ctx, "Succeeds", func(Querier) error { return nil }))

	err = runner.run(ctx, "Fails", func(Querier) error { return errors.New("statement failed") })
	require.Error(t, err)
	assert.True(t, apperrors.IsDataAccessError(err))
	assert.Contains(t, err.Error(), "Fails failed: statement failed")

	assert.NoError(t, mockPool.ExpectationsWereMet(), pgxmockExpectationsNotMetMsg)
}
