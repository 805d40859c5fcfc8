package salary

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestRepositoryQueriesRideAttachedTransaction(t *testing.T) {
	base, baseMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { base.Close() })

	gdb, err := gorm.Open(
		postgres.New(postgres.Config{Conn: base}),
		&gorm.Config{SkipDefaultTransaction: true},
	)
	require.NoError(t, err)

	txConn, txMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { txConn.Close() })

	txMock.ExpectBegin()
	tx, err := txConn.Begin()
	require.NoError(t, err)

	txMock.ExpectExec(`DELETE FROM "salary_line_items" WHERE salary_record_id = \$1`).
		WithArgs("rec-1").
		WillReturnResult(sqlmock.NewResult(0, 2))

	repo := NewRepository(gdb)
	require.NoError(t, repo.WithTx(tx).DeleteLineItemsByRecord(context.Background(), "rec-1"))

	// Every statement must ride the attached transaction; nothing may leak
	// onto the shared pool, or a rollback would leave the delete committed.
	require.NoError(t, txMock.ExpectationsWereMet())
	require.NoError(t, baseMock.ExpectationsWereMet())
}

func TestRepositoryQueriesUsePoolWithoutTransaction(t *testing.T) {
	base, baseMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { base.Close() })

	gdb, err := gorm.Open(
		postgres.New(postgres.Config{Conn: base}),
		&gorm.Config{SkipDefaultTransaction: true},
	)
	require.NoError(t, err)

	baseMock.ExpectExec(`DELETE FROM "salary_line_items" WHERE salary_record_id = \$1`).
		WithArgs("rec-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewRepository(gdb)
	require.NoError(t, repo.DeleteLineItemsByRecord(context.Background(), "rec-1"))
	require.NoError(t, baseMock.ExpectationsWereMet())
}
