// Package service holds the business logic of the shortener: record
// lifecycle management, short-link resolution and session tokens.
package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/advrk/shortener/internal/generator"
	"github.com/advrk/shortener/internal/storage"
	"github.com/advrk/shortener/internal/worker"
)

// ErrInvalidURL is returned for empty or malformed submissions.
var ErrInvalidURL = errors.New("invalid url")

const (
	// createAttempts bounds id minting retries on key collisions.
	createAttempts = 5

	// casAttempts bounds read-modify-write retries on version conflicts.
	casAttempts = 3

	// casBackoff is the base delay between conflict retries, doubled per
	// attempt.
	casBackoff = 20 * time.Millisecond
)

// Shortener orchestrates creation, lookup and lifecycle transitions of URL
// records against the store.
type Shortener struct {
	store   storage.Store
	gen     *generator.Generator
	logger  *zap.Logger
	baseURL string
	sweep   chan<- string
	sweeper *worker.DuplicateSweeper
}

// NewShortener wires a Shortener and starts its duplicate sweeper. Call Close
// to stop the sweeper goroutine.
func NewShortener(store storage.Store, gen *generator.Generator, logger *zap.Logger, baseURL string) *Shortener {
	sweeper := worker.NewDuplicateSweeper(logger, store)

	s := &Shortener{
		store:   store,
		gen:     gen,
		logger:  logger,
		baseURL: strings.TrimRight(baseURL, "/"),
		sweep:   sweeper.GetInChannel(),
		sweeper: sweeper,
	}

	go sweeper.Run()

	return s
}

// Close stops the duplicate sweeper. Safe to call more than once.
func (s *Shortener) Close() {
	s.sweeper.Stop()
}

// NormalizeURL prepends https:// when the scheme is missing and validates the
// result as an absolute URL.
func NormalizeURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrInvalidURL
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return "", ErrInvalidURL
	}
	return raw, nil
}

// Create mints an identifier for the submitted URL and persists a new active
// record. Duplicate original URLs are allowed; detection is advisory.
func (s *Shortener) Create(ctx context.Context, original string) (storage.URLRecord, error) {
	normalized, err := NormalizeURL(original)
	if err != nil {
		return storage.URLRecord{}, err
	}

	for attempt := 0; attempt < createAttempts; attempt++ {
		id, err := s.gen.NewID()
		if err != nil {
			return storage.URLRecord{}, fmt.Errorf("minting identifier: %w", err)
		}

		record := storage.URLRecord{
			ID:        id,
			Original:  normalized,
			Short:     s.baseURL + "/" + id,
			State:     storage.Active,
			CreatedAt: time.Now().UTC(),
		}

		err = s.store.Put(ctx, record)
		if errors.Is(err, storage.ErrDuplicateID) {
			s.logger.Info("identifier collision, minting again", zap.String("id", id))
			continue
		}
		if err != nil {
			return storage.URLRecord{}, err
		}

		s.notifySweeper(record.Short)
		return record, nil
	}

	return storage.URLRecord{}, fmt.Errorf("identifier space exhausted after %d attempts: %w", createAttempts, storage.ErrDuplicateID)
}

// All returns active records, newest first.
func (s *Shortener) All(ctx context.Context) ([]storage.URLRecord, error) {
	return s.list(ctx, storage.Active)
}

// AllArchived returns archived records, newest first.
func (s *Shortener) AllArchived(ctx context.Context) ([]storage.URLRecord, error) {
	return s.list(ctx, storage.Archived)
}

func (s *Shortener) list(ctx context.Context, state storage.State) ([]storage.URLRecord, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]storage.URLRecord, 0, len(records))
	for _, r := range records {
		if r.State == state {
			filtered = append(filtered, r)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].CreatedAt.Equal(filtered[j].CreatedAt) {
			return filtered[i].ID < filtered[j].ID
		}
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	return filtered, nil
}

// Get returns the record stored under id.
func (s *Shortener) Get(ctx context.Context, id string) (storage.URLRecord, error) {
	return s.store.Get(ctx, id)
}

// GetByShort scans for a record whose short link equals short. Used as the
// resolution fallback after an update changed the path suffix.
func (s *Shortener) GetByShort(ctx context.Context, short string) (storage.URLRecord, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return storage.URLRecord{}, err
	}

	for _, r := range records {
		if r.Short == short {
			return r, nil
		}
	}
	return storage.URLRecord{}, storage.ErrNotFound
}

// Update rewrites the short link of the record keyed by id, preserving
// everything else. Short-link collision checking stays advisory, as in the
// original system.
func (s *Shortener) Update(ctx context.Context, id, newShort string) error {
	return s.mutate(ctx, id, func(r *storage.URLRecord) {
		r.Short = newShort
	})
}

// Archive soft-deletes the record: hidden from active listings and no longer
// resolvable. Archiving an archived record is a no-op success.
func (s *Shortener) Archive(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(r *storage.URLRecord) {
		r.State = storage.Archived
	})
}

// Restore returns an archived record to the active state.
func (s *Shortener) Restore(ctx context.Context, id string) error {
	var short string
	err := s.mutate(ctx, id, func(r *storage.URLRecord) {
		r.State = storage.Active
		short = r.Short
	})
	if err != nil {
		return err
	}

	s.notifySweeper(short)
	return nil
}

// Delete permanently removes the record.
func (s *Shortener) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

// mutate performs a compare-and-set cycle on the record keyed by id, retrying
// on version conflicts with doubling backoff. Unresolved conflicts surface as
// storage.ErrVersionMismatch.
func (s *Shortener) mutate(ctx context.Context, id string, apply func(*storage.URLRecord)) error {
	var lastErr error

	for attempt := 0; attempt < casAttempts; attempt++ {
		record, err := s.store.Get(ctx, id)
		if err != nil {
			return err
		}

		apply(&record)

		err = s.store.Update(ctx, record)
		if err == nil {
			return nil
		}
		if !errors.Is(err, storage.ErrVersionMismatch) {
			return err
		}

		lastErr = err
		s.logger.Info("version conflict, retrying",
			zap.String("id", id),
			zap.Int("attempt", attempt+1),
		)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(casBackoff << attempt):
		}
	}

	return lastErr
}

// Duplicates returns the subset of shorts held by both an archived and an
// active record. These are the archived paths whose reuse the operator is
// warned about.
func (s *Shortener) Duplicates(ctx context.Context, shorts []string) ([]string, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return nil, err
	}

	active := make(map[string]bool)
	archived := make(map[string]bool)
	for _, r := range records {
		if r.IsActive() {
			active[r.Short] = true
		} else {
			archived[r.Short] = true
		}
	}

	duplicates := make([]string, 0)
	for _, short := range shorts {
		if active[short] && archived[short] {
			duplicates = append(duplicates, short)
		}
	}
	return duplicates, nil
}

// IsDuplicateOriginal reports whether an active record already points at the
// given original URL.
func (s *Shortener) IsDuplicateOriginal(ctx context.Context, original string) (bool, error) {
	return s.scanActive(ctx, func(r storage.URLRecord) bool {
		return r.Original == original
	})
}

// IsDuplicateShort reports whether an active record already holds the given
// short link.
func (s *Shortener) IsDuplicateShort(ctx context.Context, short string) (bool, error) {
	return s.scanActive(ctx, func(r storage.URLRecord) bool {
		return r.Short == short
	})
}

func (s *Shortener) scanActive(ctx context.Context, match func(storage.URLRecord) bool) (bool, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return false, err
	}

	for _, r := range records {
		if r.IsActive() && match(r) {
			return true, nil
		}
	}
	return false, nil
}

// Ping reports storage availability.
func (s *Shortener) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

// BaseURL returns the base used when building short links.
func (s *Shortener) BaseURL() string {
	return s.baseURL
}

// notifySweeper hands a short link to the duplicate sweeper without blocking
// the request path.
func (s *Shortener) notifySweeper(short string) {
	select {
	case s.sweep <- short:
	default:
	}
}
