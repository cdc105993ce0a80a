// Package repository implements the record store on PostgreSQL. Updates are
// guarded by a version column so concurrent writers fail fast instead of
// silently overwriting each other.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"

	"github.com/advrk/shortener/internal/storage"
)

// InitDB opens the database and ensures the url_records table exists.
func InitDB(dsn string, logger *zap.Logger) *sql.DB {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		panic(err)
	}

	if err := db.Ping(); err != nil {
		panic(err)
	}

	createTable := `
		CREATE TABLE IF NOT EXISTS url_records (
		id TEXT PRIMARY KEY,
		original_url TEXT NOT NULL,
		short_url TEXT NOT NULL,
		archived BOOLEAN NOT NULL DEFAULT FALSE,
		created_at TIMESTAMPTZ NOT NULL,
		version BIGINT NOT NULL DEFAULT 0
	);`

	if _, err := db.Exec(createTable); err != nil {
		logger.Fatal("creating url_records table", zap.Error(err))
	}

	return db
}

// URLRepository is the PostgreSQL implementation of storage.Store.
type URLRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// CreateURLRepository wraps an open database handle.
func CreateURLRepository(db *sql.DB, logger *zap.Logger) *URLRepository {
	return &URLRepository{db: db, logger: logger}
}

// Get implements storage.Store.
func (r *URLRepository) Get(ctx context.Context, id string) (storage.URLRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT id, original_url, short_url, archived, created_at, version FROM url_records WHERE id = $1;", id)

	rec, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.URLRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.URLRecord{}, fmt.Errorf("selecting record %s: %w", id, err)
	}
	return rec, nil
}

// Put implements storage.Store. A primary-key violation maps to
// storage.ErrDuplicateID so the caller can mint a fresh id.
func (r *URLRepository) Put(ctx context.Context, rec storage.URLRecord) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO url_records(id, original_url, short_url, archived, created_at, version) VALUES ($1, $2, $3, $4, $5, $6);",
		rec.ID, rec.Original, rec.Short, rec.State == storage.Archived, rec.CreatedAt, rec.Version,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return storage.ErrDuplicateID
		}
		return fmt.Errorf("inserting record %s: %w", rec.ID, err)
	}
	return nil
}

// Update implements storage.Store. The WHERE clause carries the expected
// version; zero affected rows means either a missing record or a lost race.
func (r *URLRepository) Update(ctx context.Context, rec storage.URLRecord) error {
	res, err := r.db.ExecContext(ctx,
		"UPDATE url_records SET original_url = $2, short_url = $3, archived = $4, version = version + 1 WHERE id = $1 AND version = $5;",
		rec.ID, rec.Original, rec.Short, rec.State == storage.Archived, rec.Version,
	)
	if err != nil {
		return fmt.Errorf("updating record %s: %w", rec.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	if _, err := r.Get(ctx, rec.ID); errors.Is(err, storage.ErrNotFound) {
		return storage.ErrNotFound
	}
	return storage.ErrVersionMismatch
}

// Delete implements storage.Store.
func (r *URLRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM url_records WHERE id = $1;", id)
	if err != nil {
		return fmt.Errorf("deleting record %s: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// List implements storage.Store.
func (r *URLRepository) List(ctx context.Context) ([]storage.URLRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, original_url, short_url, archived, created_at, version FROM url_records;")
	if err != nil {
		return nil, fmt.Errorf("listing records: %w", err)
	}
	defer rows.Close()

	records := make([]storage.URLRecord, 0)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// Ping implements storage.Store.
func (r *URLRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close implements storage.Store.
func (r *URLRepository) Close() error {
	return r.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (storage.URLRecord, error) {
	var (
		rec       storage.URLRecord
		archived  bool
		createdAt time.Time
	)
	if err := row.Scan(&rec.ID, &rec.Original, &rec.Short, &archived, &createdAt, &rec.Version); err != nil {
		return storage.URLRecord{}, err
	}
	rec.CreatedAt = createdAt
	rec.State = storage.Active
	if archived {
		rec.State = storage.Archived
	}
	return rec, nil
}
