// Package worker runs background maintenance tasks for the shortener.
package worker

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/advrk/shortener/internal/storage"
)

// Repo is the slice of the store the sweeper needs.
type Repo interface {
	List(context.Context) ([]storage.URLRecord, error)
}

const (
	// sweepInterval is how often a periodic sweep runs.
	sweepInterval = 30 * time.Second

	// pendingLimit triggers an early sweep when many short links changed
	// between ticks.
	pendingLimit = 25

	// sweepTimeout bounds the storage scan of one sweep.
	sweepTimeout = 3 * time.Second
)

// DuplicateSweeper watches for archived records whose short link collides
// with an active one. Collisions are not structurally prevented; the sweeper
// surfaces them to the operator through the log. It never mutates records.
type DuplicateSweeper struct {
	in     chan string
	quit   chan struct{}
	once   sync.Once
	logger *zap.Logger
	repo   Repo
}

// NewDuplicateSweeper creates a sweeper over the given store.
func NewDuplicateSweeper(logger *zap.Logger, repo Repo) *DuplicateSweeper {
	return &DuplicateSweeper{
		in:     make(chan string, pendingLimit),
		quit:   make(chan struct{}),
		logger: logger,
		repo:   repo,
	}
}

// GetInChannel returns the channel on which short links are announced after
// a create or restore.
func (s *DuplicateSweeper) GetInChannel() chan<- string {
	return s.in
}

// Stop terminates the Run loop. Safe to call more than once; announcements
// sent after Stop are dropped.
func (s *DuplicateSweeper) Stop() {
	s.once.Do(func() {
		close(s.quit)
	})
}

// Run processes announcements and ticks until Stop is called or the input
// channel is closed. Intended to run in its own goroutine.
func (s *DuplicateSweeper) Run() {
	ticker := time.NewTicker(sweepInterval)
	defer ticker.Stop()

	var pending []string

	for {
		select {
		case <-s.quit:
			return
		case short, ok := <-s.in:
			if !ok {
				return
			}
			pending = append(pending, short)
			if len(pending) >= pendingLimit {
				s.sweep(len(pending))
				pending = pending[:0]
			}
		case <-ticker.C:
			if len(pending) == 0 {
				continue
			}
			s.sweep(len(pending))
			pending = pending[:0]
		}
	}
}

// sweep scans all records and logs every short link held by both an archived
// and an active record.
func (s *DuplicateSweeper) sweep(changed int) {
	ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
	defer cancel()

	records, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("duplicate sweep failed", zap.Error(err))
		return
	}

	active := make(map[string]bool)
	for _, r := range records {
		if r.IsActive() {
			active[r.Short] = true
		}
	}

	var duplicates []string
	for _, r := range records {
		if !r.IsActive() && active[r.Short] {
			duplicates = append(duplicates, r.Short)
		}
	}

	if len(duplicates) == 0 {
		return
	}

	s.logger.Warn("archived short links shadowed by active records",
		zap.Strings("shortURLs", duplicates),
		zap.Int("changed", changed),
	)
}
