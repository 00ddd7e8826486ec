package project

import (
	"context"

	"github.com/Abraxas-365/folio/pkg/errx"
	"github.com/Abraxas-365/folio/pkg/kernel"
	"github.com/Abraxas-365/folio/pkg/storex"
)

// Collection is the backing collection for projects.
const Collection = "projects"

// Repository reads projects from the document store with the same
// validate-and-map discipline as the record repository.
type Repository struct {
	store storex.Store
}

// NewRepository creates a project repository over the given store.
func NewRepository(store storex.Store) *Repository {
	return &Repository{store: store}
}

// GetAll fetches every project in store order. One invalid document fails the
// whole call.
func (r *Repository) GetAll(ctx context.Context) ([]Project, error) {
	snaps, err := r.store.FetchAll(ctx, Collection)
	if err != nil {
		return nil, errx.Wrap(err, "failed to fetch projects", errx.TypeExternal)
	}

	projects := make([]Project, 0, len(snaps))
	for _, snap := range snaps {
		p, err := fromSnapshot(snap)
		if err != nil {
			return nil, err
		}
		projects = append(projects, *p)
	}
	return projects, nil
}

// GetByID fetches one project; empty id rejects before any store access and
// an absent document yields (nil, nil).
func (r *Repository) GetByID(ctx context.Context, id kernel.ProjectID) (*Project, error) {
	if id.IsEmpty() {
		return nil, ErrEmptyProjectID()
	}

	snap, err := r.store.FetchByID(ctx, Collection, id.String())
	if err != nil {
		return nil, errx.Wrap(err, "failed to fetch project", errx.TypeExternal)
	}
	if snap == nil {
		return nil, nil
	}
	return fromSnapshot(*snap)
}

func fromSnapshot(snap storex.Snapshot) (*Project, error) {
	p := &Project{
		ID:           kernel.ProjectID(snap.ID),
		Name:         snap.String("name"),
		Description:  snap.String("description"),
		Technologies: snap.StringSlice("technologies"),
		RepoURL:      snap.String("repoUrl"),
		LiveURL:      snap.String("liveUrl"),
		ImageURL:     snap.String("imageUrl"),
		Featured:     snap.Bool("featured"),
		CreatedAt:    snap.OptionalTime("createdAt"),
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}
