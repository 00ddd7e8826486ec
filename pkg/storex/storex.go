// Package storex abstracts the document database behind the two operations
// the portfolio API actually needs: fetch a whole collection, or fetch one
// document by id.
package storex

import "context"

// Snapshot is the raw key/value payload of one stored document, prior to any
// validation or mapping.
type Snapshot struct {
	ID   string         `json:"id"`
	Data map[string]any `json:"data"`
}

// Store is the document-store port. FetchAll preserves store order. FetchByID
// returns (nil, nil) when the document does not exist; absence is not an
// error.
type Store interface {
	FetchAll(ctx context.Context, collection string) ([]Snapshot, error)
	FetchByID(ctx context.Context, collection, id string) (*Snapshot, error)
}
