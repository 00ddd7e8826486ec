// Package storexfirestore implements the storex.Store port on Google Cloud
// Firestore.
package storexfirestore

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Abraxas-365/folio/pkg/storex"
)

// Store reads documents from Firestore collections.
type Store struct {
	client *firestore.Client
}

// New creates a Firestore-backed document store.
func New(client *firestore.Client) *Store {
	return &Store{client: client}
}

// FetchAll returns every document in the collection in store order.
func (s *Store) FetchAll(ctx context.Context, collection string) ([]storex.Snapshot, error) {
	iter := s.client.Collection(collection).Documents(ctx)
	defer iter.Stop()

	var snaps []storex.Snapshot
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("fetch collection %s: %w", collection, err)
		}
		snaps = append(snaps, storex.Snapshot{ID: doc.Ref.ID, Data: doc.Data()})
	}
	return snaps, nil
}

// FetchByID returns one document, or (nil, nil) when it does not exist.
func (s *Store) FetchByID(ctx context.Context, collection, id string) (*storex.Snapshot, error) {
	doc, err := s.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("fetch document %s/%s: %w", collection, id, err)
	}
	return &storex.Snapshot{ID: doc.Ref.ID, Data: doc.Data()}, nil
}
