// Package models defines the request and response bodies of the management
// API. Field names follow the original wire format.
package models

import "github.com/advrk/shortener/internal/storage"

// CreateRequest asks for a URL to be shortened.
type CreateRequest struct {
	// URL is the destination; the scheme is normalized to https:// when
	// missing.
	URL string `json:"url"`
}

// UpdateRequest rewrites the short link of the record keyed by ID.
type UpdateRequest struct {
	ID       string `json:"id"`
	ShortURL string `json:"shortUrl"`
}

// UpdateShortRequest is the body of a single-record update where the id
// travels in the path.
type UpdateShortRequest struct {
	ShortURL string `json:"shortUrl"`
}

// IDRequest carries the record id for archive, restore and delete.
type IDRequest struct {
	ID string `json:"id"`
}

// ListResponse returns the refreshed listing after a read or mutation.
type ListResponse struct {
	URLs []storage.URLRecord `json:"urls"`
}

// CheckDuplicatesRequest is the polling body of the duplicate check.
type CheckDuplicatesRequest struct {
	ShortURLs []string `json:"shortUrls"`
}

// CheckDuplicatesResponse lists the short links shadowed by active records.
type CheckDuplicatesResponse struct {
	Duplicates []string `json:"duplicates"`
}
