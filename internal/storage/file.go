package storage

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// compactThreshold is the number of superseded journal lines tolerated before
// the journal is rewritten as a fresh snapshot.
const compactThreshold = 1024

// maxJournalLine must stay above the HTTP body cap so any record accepted by
// the API can be replayed.
const maxJournalLine = 2 << 20

// journalEntry is one line of the append-only journal. The latest line for an
// id wins on replay; a tombstone removes the record.
type journalEntry struct {
	Record  URLRecord `json:"record"`
	Deleted bool      `json:"deleted,omitempty"`
}

// FileStorage is a Store backed by a JSON-lines journal. All reads are served
// from an in-memory index replayed at open; every mutation appends a line.
type FileStorage struct {
	mu      sync.Mutex
	path    string
	file    *os.File
	records map[string]URLRecord
	stale   int
	logger  *zap.Logger
}

// NewFileStorage opens (creating if needed) the journal at path and replays
// it into memory.
func NewFileStorage(path string, logger *zap.Logger) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0770); err != nil {
		return nil, err
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0660)
	if err != nil {
		return nil, err
	}

	fs := &FileStorage{
		path:    path,
		file:    file,
		records: make(map[string]URLRecord),
		logger:  logger,
	}

	if err := fs.replay(); err != nil {
		file.Close()
		return nil, err
	}

	logger.Info("file storage ready",
		zap.String("path", path),
		zap.Int("records", len(fs.records)),
		zap.Int("stale", fs.stale),
	)

	return fs, nil
}

// replay rebuilds the in-memory index from the journal.
func (fs *FileStorage) replay() error {
	if _, err := fs.file.Seek(0, 0); err != nil {
		return err
	}

	lines := 0
	scanner := bufio.NewScanner(fs.file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxJournalLine)
	for scanner.Scan() {
		var entry journalEntry
		if err := json.Unmarshal(scanner.Bytes(), &entry); err != nil {
			return fmt.Errorf("corrupt journal line %d: %w", lines+1, err)
		}
		if entry.Deleted {
			delete(fs.records, entry.Record.ID)
		} else {
			fs.records[entry.Record.ID] = entry.Record
		}
		lines++
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading journal: %w", err)
	}

	fs.stale = lines - len(fs.records)
	return nil
}

// append writes one journal line. Callers must hold fs.mu.
func (fs *FileStorage) append(entry journalEntry) error {
	b, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	_, err = fs.file.Write(append(b, '\n'))
	return err
}

// maybeCompact rewrites the journal once too many lines are stale. Callers
// must hold fs.mu and have the in-memory index up to date.
func (fs *FileStorage) maybeCompact() {
	if fs.stale <= compactThreshold {
		return
	}
	if err := fs.compact(); err != nil {
		fs.logger.Error("journal compaction failed", zap.Error(err))
	}
}

// compact rewrites the journal as one line per live record. Callers must
// hold fs.mu.
func (fs *FileStorage) compact() error {
	tmp := fs.path + ".tmp"
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0660)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for _, r := range fs.records {
		b, err := json.Marshal(journalEntry{Record: r})
		if err != nil {
			out.Close()
			return err
		}
		if _, err := w.Write(append(b, '\n')); err != nil {
			out.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}

	if err := fs.file.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp, fs.path); err != nil {
		return err
	}

	file, err := os.OpenFile(fs.path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0660)
	if err != nil {
		return err
	}
	fs.file = file
	fs.stale = 0

	fs.logger.Info("journal compacted", zap.Int("records", len(fs.records)))
	return nil
}

// Get implements Store.
func (fs *FileStorage) Get(_ context.Context, id string) (URLRecord, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	r, ok := fs.records[id]
	if !ok {
		return URLRecord{}, ErrNotFound
	}
	return r, nil
}

// Put implements Store.
func (fs *FileStorage) Put(_ context.Context, record URLRecord) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, ok := fs.records[record.ID]; ok {
		return ErrDuplicateID
	}
	if err := fs.append(journalEntry{Record: record}); err != nil {
		return err
	}
	fs.records[record.ID] = record
	return nil
}

// Update implements Store with compare-and-set on the record version.
func (fs *FileStorage) Update(_ context.Context, record URLRecord) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	current, ok := fs.records[record.ID]
	if !ok {
		return ErrNotFound
	}
	if current.Version != record.Version {
		return ErrVersionMismatch
	}
	record.Version++
	if err := fs.append(journalEntry{Record: record}); err != nil {
		return err
	}
	fs.records[record.ID] = record
	// The record's previous line is superseded.
	fs.stale++
	fs.maybeCompact()
	return nil
}

// Delete implements Store.
func (fs *FileStorage) Delete(_ context.Context, id string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	r, ok := fs.records[id]
	if !ok {
		return ErrNotFound
	}
	if err := fs.append(journalEntry{Record: URLRecord{ID: r.ID}, Deleted: true}); err != nil {
		return err
	}
	delete(fs.records, id)
	// Both the tombstone and the record's last line are now stale.
	fs.stale += 2
	fs.maybeCompact()
	return nil
}

// List implements Store.
func (fs *FileStorage) List(_ context.Context) ([]URLRecord, error) {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	records := make([]URLRecord, 0, len(fs.records))
	for _, r := range fs.records {
		records = append(records, r)
	}
	return records, nil
}

// Ping implements Store by statting the journal.
func (fs *FileStorage) Ping(_ context.Context) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	_, err := fs.file.Stat()
	return err
}

// Close flushes nothing (writes are unbuffered) and closes the journal.
func (fs *FileStorage) Close() error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.file.Close()
}
