package service

import (
	"context"

	"github.com/advrk/shortener/internal/storage"
)

// ShortenerIface is the record lifecycle surface consumed by handlers.
type ShortenerIface interface {
	Create(ctx context.Context, original string) (storage.URLRecord, error)
	All(ctx context.Context) ([]storage.URLRecord, error)
	AllArchived(ctx context.Context) ([]storage.URLRecord, error)
	Get(ctx context.Context, id string) (storage.URLRecord, error)
	GetByShort(ctx context.Context, short string) (storage.URLRecord, error)
	Update(ctx context.Context, id, newShort string) error
	Archive(ctx context.Context, id string) error
	Restore(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Duplicates(ctx context.Context, shorts []string) ([]string, error)
	IsDuplicateOriginal(ctx context.Context, original string) (bool, error)
	IsDuplicateShort(ctx context.Context, short string) (bool, error)
	Ping(ctx context.Context) error
}

// ResolverIface resolves short-link path segments to destinations.
type ResolverIface interface {
	Resolve(ctx context.Context, segment string) (string, error)
}
