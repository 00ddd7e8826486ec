package storexredis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/folio/pkg/storex"
)

type fakeStore struct {
	collections   map[string][]storex.Snapshot
	fetchAllCalls int
}

func (f *fakeStore) FetchAll(ctx context.Context, collection string) ([]storex.Snapshot, error) {
	f.fetchAllCalls++
	return f.collections[collection], nil
}

func (f *fakeStore) FetchByID(ctx context.Context, collection, id string) (*storex.Snapshot, error) {
	for _, snap := range f.collections[collection] {
		if snap.ID == id {
			s := snap
			return &s, nil
		}
	}
	return nil, nil
}

func TestCachedStore_NilClientPassesThrough(t *testing.T) {
	inner := &fakeStore{collections: map[string][]storex.Snapshot{
		"projects": {
			{ID: "p1", Data: map[string]any{"name": "folio"}},
		},
	}}
	cached := New(inner, nil, time.Minute)

	snaps, err := cached.FetchAll(context.Background(), "projects")
	require.NoError(t, err)
	require.Len(t, snaps, 1)
	assert.Equal(t, "p1", snaps[0].ID)
	assert.Equal(t, 1, inner.fetchAllCalls)

	snap, err := cached.FetchByID(context.Background(), "projects", "p1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "folio", snap.String("name"))
}

func TestCachedStore_NilClientMissingDocument(t *testing.T) {
	inner := &fakeStore{collections: map[string][]storex.Snapshot{}}
	cached := New(inner, nil, time.Minute)

	snap, err := cached.FetchByID(context.Background(), "projects", "ghost")
	require.NoError(t, err)
	assert.Nil(t, snap)
}
