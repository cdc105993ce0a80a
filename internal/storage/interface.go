// Package storage defines the durable record store contract and its in-process
// implementations. The store is an opaque key-value map with per-record
// compare-and-set semantics; every mutation is keyed on the record version.
package storage

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no record exists under the given id.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateID is returned by Put when the id is already taken.
	ErrDuplicateID = errors.New("record id already exists")

	// ErrVersionMismatch is returned by Update when the record changed
	// between read and write. Callers retry with a fresh read.
	ErrVersionMismatch = errors.New("record version mismatch")
)

// Store is the durable record store.
type Store interface {
	// Get returns the record stored under id.
	Get(ctx context.Context, id string) (URLRecord, error)

	// Put creates a new record. It never overwrites: an existing id
	// yields ErrDuplicateID.
	Put(ctx context.Context, record URLRecord) error

	// Update replaces the record keyed by record.ID if and only if the
	// stored version equals record.Version, then bumps the version.
	Update(ctx context.Context, record URLRecord) error

	// Delete permanently removes the record.
	Delete(ctx context.Context, id string) error

	// List returns every record, active and archived.
	List(ctx context.Context) ([]URLRecord, error)

	// Ping reports storage availability.
	Ping(ctx context.Context) error

	// Close releases underlying resources.
	Close() error
}
