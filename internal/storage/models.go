package storage

import (
	"encoding/json"
	"time"
)

// State is the lifecycle state of a URL record.
type State int

const (
	// Active records are listed and resolvable.
	Active State = iota
	// Archived records are hidden from listings and resolution but restorable.
	Archived
)

// String returns a human-readable state name.
func (s State) String() string {
	if s == Archived {
		return "archived"
	}
	return "active"
}

// URLRecord is one shortening mapping. ID is the store key and the path
// segment of the short link. Version is the compare-and-set token maintained
// by the store and bumped on every successful update.
type URLRecord struct {
	ID        string
	Original  string
	Short     string
	State     State
	CreatedAt time.Time
	Version   int64
}

// IsActive reports whether the record participates in listings and resolution.
func (r URLRecord) IsActive() bool {
	return r.State == Active
}

// urlRecordJSON is the persisted and wire layout. The lifecycle enum travels
// as the original boolean "archived" field.
type urlRecordJSON struct {
	ID        string    `json:"id"`
	Original  string    `json:"originalUrl"`
	Short     string    `json:"shortUrl"`
	Archived  bool      `json:"archived"`
	Timestamp time.Time `json:"timestamp"`
	Version   int64     `json:"version,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r URLRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(urlRecordJSON{
		ID:        r.ID,
		Original:  r.Original,
		Short:     r.Short,
		Archived:  r.State == Archived,
		Timestamp: r.CreatedAt,
		Version:   r.Version,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *URLRecord) UnmarshalJSON(b []byte) error {
	var j urlRecordJSON
	if err := json.Unmarshal(b, &j); err != nil {
		return err
	}
	r.ID = j.ID
	r.Original = j.Original
	r.Short = j.Short
	r.State = Active
	if j.Archived {
		r.State = Archived
	}
	r.CreatedAt = j.Timestamp
	r.Version = j.Version
	return nil
}
