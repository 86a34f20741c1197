package storage_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/501wxrit/TripDiary-PWA/internal/storage"
)

func newMockSQLite(t *testing.T) (*storage.SQLite, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return storage.NewSQLite(db), mock
}

func TestSQLite_GetHit(t *testing.T) {
	backend, mock := newMockSQLite(t)
	mock.ExpectQuery(`SELECT v FROM kv WHERE k = ?`).
		WithArgs("trip-storage").
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow([]byte(`{"version":3}`)))

	value, ok, err := backend.Get(context.Background(), "trip-storage")

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{"version":3}`), value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLite_GetMiss(t *testing.T) {
	backend, mock := newMockSQLite(t)
	mock.ExpectQuery(`SELECT v FROM kv WHERE k = ?`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"v"}))

	_, ok, err := backend.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLite_SetUpserts(t *testing.T) {
	backend, mock := newMockSQLite(t)
	mock.ExpectExec(`INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`).
		WithArgs("trip-storage", []byte("payload")).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := backend.Set(context.Background(), "trip-storage", []byte("payload"))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLite_Remove(t *testing.T) {
	backend, mock := newMockSQLite(t)
	mock.ExpectExec(`DELETE FROM kv WHERE k = ?`).
		WithArgs("trip-storage").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := backend.Remove(context.Background(), "trip-storage")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
