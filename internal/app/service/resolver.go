package service

import (
	"context"
	"errors"

	"github.com/advrk/shortener/internal/storage"
)

// Resolver turns a short-link path segment into the destination URL.
type Resolver struct {
	shortener ShortenerIface
	baseURL   string
}

// NewResolver creates a Resolver on top of the shortener.
func NewResolver(shortener ShortenerIface, baseURL string) *Resolver {
	return &Resolver{
		shortener: shortener,
		baseURL:   baseURL,
	}
}

// Resolve looks the segment up as an identifier first, then falls back to a
// full short-link scan. Archived records resolve as not found so archival
// state never leaks to visitors.
func (r *Resolver) Resolve(ctx context.Context, segment string) (string, error) {
	record, err := r.shortener.Get(ctx, segment)
	if errors.Is(err, storage.ErrNotFound) {
		record, err = r.shortener.GetByShort(ctx, r.baseURL+"/"+segment)
	}
	if err != nil {
		return "", err
	}

	if !record.IsActive() {
		return "", storage.ErrNotFound
	}
	return record.Original, nil
}
