package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/advrk/shortener/internal/storage"
)

// Helper to set up a mock DB and repository
func setupMockDB(t *testing.T) (sqlmock.Sqlmock, *URLRepository) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := CreateURLRepository(db, zap.NewNop())
	return mock, repo
}

func testRecord() storage.URLRecord {
	return storage.URLRecord{
		ID:        "ab12cd3",
		Original:  "https://example.com",
		Short:     "https://advrk.io/ab12cd3",
		State:     storage.Active,
		CreatedAt: time.Date(2024, 5, 1, 12, 30, 0, 0, time.UTC),
	}
}

func TestPut(t *testing.T) {
	mock, repo := setupMockDB(t)
	record := testRecord()

	mock.ExpectExec(`INSERT INTO url_records`).
		WithArgs(record.ID, record.Original, record.Short, false, record.CreatedAt, record.Version).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Put(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPutDuplicateID(t *testing.T) {
	mock, repo := setupMockDB(t)
	record := testRecord()

	mock.ExpectExec(`INSERT INTO url_records`).
		WithArgs(record.ID, record.Original, record.Short, false, record.CreatedAt, record.Version).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	assert.ErrorIs(t, repo.Put(context.Background(), record), storage.ErrDuplicateID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet(t *testing.T) {
	mock, repo := setupMockDB(t)
	record := testRecord()

	rows := sqlmock.NewRows([]string{"id", "original_url", "short_url", "archived", "created_at", "version"}).
		AddRow(record.ID, record.Original, record.Short, true, record.CreatedAt, int64(3))

	mock.ExpectQuery(`SELECT id, original_url, short_url, archived, created_at, version FROM url_records WHERE id`).
		WithArgs(record.ID).
		WillReturnRows(rows)

	got, err := repo.Get(context.Background(), record.ID)
	require.NoError(t, err)
	assert.Equal(t, storage.Archived, got.State)
	assert.Equal(t, int64(3), got.Version)
	assert.Equal(t, record.Original, got.Original)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetNotFound(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectQuery(`SELECT id, original_url, short_url, archived, created_at, version FROM url_records WHERE id`).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdate(t *testing.T) {
	mock, repo := setupMockDB(t)
	record := testRecord()
	record.Version = 2

	mock.ExpectExec(`UPDATE url_records SET`).
		WithArgs(record.ID, record.Original, record.Short, false, record.Version).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(context.Background(), record))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateVersionMismatch(t *testing.T) {
	mock, repo := setupMockDB(t)
	record := testRecord()
	record.Version = 2

	mock.ExpectExec(`UPDATE url_records SET`).
		WithArgs(record.ID, record.Original, record.Short, false, record.Version).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// The record still exists, so the failed update was a lost race.
	rows := sqlmock.NewRows([]string{"id", "original_url", "short_url", "archived", "created_at", "version"}).
		AddRow(record.ID, record.Original, record.Short, false, record.CreatedAt, int64(3))
	mock.ExpectQuery(`SELECT id, original_url, short_url, archived, created_at, version FROM url_records WHERE id`).
		WithArgs(record.ID).
		WillReturnRows(rows)

	assert.ErrorIs(t, repo.Update(context.Background(), record), storage.ErrVersionMismatch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNotFound(t *testing.T) {
	mock, repo := setupMockDB(t)
	record := testRecord()

	mock.ExpectExec(`UPDATE url_records SET`).
		WithArgs(record.ID, record.Original, record.Short, false, record.Version).
		WillReturnResult(sqlmock.NewResult(0, 0))

	mock.ExpectQuery(`SELECT id, original_url, short_url, archived, created_at, version FROM url_records WHERE id`).
		WithArgs(record.ID).
		WillReturnError(sql.ErrNoRows)

	assert.ErrorIs(t, repo.Update(context.Background(), record), storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(`DELETE FROM url_records WHERE id`).
		WithArgs("ab12cd3").
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(context.Background(), "ab12cd3"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNotFound(t *testing.T) {
	mock, repo := setupMockDB(t)

	mock.ExpectExec(`DELETE FROM url_records WHERE id`).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), storage.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestList(t *testing.T) {
	mock, repo := setupMockDB(t)
	record := testRecord()

	rows := sqlmock.NewRows([]string{"id", "original_url", "short_url", "archived", "created_at", "version"}).
		AddRow("id-1", "https://example.com/1", "https://advrk.io/id-1", false, record.CreatedAt, int64(0)).
		AddRow("id-2", "https://example.com/2", "https://advrk.io/id-2", true, record.CreatedAt, int64(1))

	mock.ExpectQuery(`SELECT id, original_url, short_url, archived, created_at, version FROM url_records;`).
		WillReturnRows(rows)

	records, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, storage.Active, records[0].State)
	assert.Equal(t, storage.Archived, records[1].State)
	assert.NoError(t, mock.ExpectationsWereMet())
}
