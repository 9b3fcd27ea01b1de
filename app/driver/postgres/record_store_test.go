package postgres

import (
	"context"
	"errors"
	"testing"

	"club-auth/app/utils/logger"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper function to create a test record store with mocked database
func createTestRecordStore(t *testing.T) (*RecordStore, pgxmock.PgxPoolIface) {
	t.Helper()

	mockDB, err := pgxmock.NewPool()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	store := NewRecordStore(mockDB, testLogger).(*RecordStore)

	return store, mockDB
}

func TestRecordStore_Get(t *testing.T) {
	t.Run("present key", func(t *testing.T) {
		store, mockDB := createTestRecordStore(t)
		defer mockDB.Close()

		mockDB.ExpectQuery(`SELECT value FROM session_records WHERE key = \$1`).
			WithArgs("club_session").
			WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(`{"token":"sess_x"}`))

		value, ok, err := store.Get(context.Background(), "club_session")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, `{"token":"sess_x"}`, value)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("absent key is not an error", func(t *testing.T) {
		store, mockDB := createTestRecordStore(t)
		defer mockDB.Close()

		mockDB.ExpectQuery(`SELECT value FROM session_records WHERE key = \$1`).
			WithArgs("club_session").
			WillReturnError(pgx.ErrNoRows)

		value, ok, err := store.Get(context.Background(), "club_session")
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, value)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("query failure", func(t *testing.T) {
		store, mockDB := createTestRecordStore(t)
		defer mockDB.Close()

		mockDB.ExpectQuery(`SELECT value FROM session_records WHERE key = \$1`).
			WithArgs("club_session").
			WillReturnError(errors.New("connection reset"))

		_, _, err := store.Get(context.Background(), "club_session")
		assert.Error(t, err)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}

func TestRecordStore_Set(t *testing.T) {
	store, mockDB := createTestRecordStore(t)
	defer mockDB.Close()

	mockDB.ExpectExec(`INSERT INTO session_records`).
		WithArgs("club_session", `{"token":"sess_x"}`, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := store.Set(context.Background(), "club_session", `{"token":"sess_x"}`)
	require.NoError(t, err)

	assert.NoError(t, mockDB.ExpectationsWereMet())
}

func TestRecordStore_Delete(t *testing.T) {
	t.Run("existing key", func(t *testing.T) {
		store, mockDB := createTestRecordStore(t)
		defer mockDB.Close()

		mockDB.ExpectExec(`DELETE FROM session_records WHERE key = \$1`).
			WithArgs("club_session").
			WillReturnResult(pgxmock.NewResult("DELETE", 1))

		err := store.Delete(context.Background(), "club_session")
		require.NoError(t, err)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("absent key is a no-op", func(t *testing.T) {
		store, mockDB := createTestRecordStore(t)
		defer mockDB.Close()

		mockDB.ExpectExec(`DELETE FROM session_records WHERE key = \$1`).
			WithArgs("club_session").
			WillReturnResult(pgxmock.NewResult("DELETE", 0))

		err := store.Delete(context.Background(), "club_session")
		require.NoError(t, err)

		assert.NoError(t, mockDB.ExpectationsWereMet())
	})
}
