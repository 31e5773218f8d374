package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunInTransaction(t *testing.T) {
	t.Run("Commit quando fn não falha", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM site_config").WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = FromDB(db).RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			_, err := tx.Exec("DELETE FROM site_config")
			return err
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback quando fn falha", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		boom := errors.New("boom")
		mock.ExpectBegin()
		mock.ExpectRollback()

		err = FromDB(db).RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			return boom
		})

		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rollback e repassa o panic", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Panics(t, func() {
			_ = FromDB(db).RunInTransaction(context.Background(), func(tx *sql.Tx) error {
				panic("falhou")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
