package record

import (
	"context"

	"github.com/Abraxas-365/folio/pkg/errx"
	"github.com/Abraxas-365/folio/pkg/kernel"
	"github.com/Abraxas-365/folio/pkg/storex"
)

// Repository reads one kind of record from the document store, validating
// and mapping every snapshot it returns.
type Repository struct {
	kind  Kind
	store storex.Store
}

// NewRepository creates a repository bound to a record kind. Any selector
// outside {experience, education} fails immediately; this is the only
// validation the constructor performs and it guards every later call against
// operating on the wrong collection.
func NewRepository(kind Kind, store storex.Store) (*Repository, error) {
	if !kind.Valid() {
		return nil, ErrInvalidRecordKind().WithDetail("kind", kind.String())
	}
	return &Repository{
		kind:  kind,
		store: store,
	}, nil
}

// Kind returns the configured record kind.
func (r *Repository) Kind() Kind {
	return r.kind
}

// GetAll fetches every document in the collection and maps it into a typed
// record, preserving store order. Mapping is all-or-nothing: one document
// missing its mandatory fields fails the whole call, with the offending id in
// the error.
func (r *Repository) GetAll(ctx context.Context) ([]Record, error) {
	snaps, err := r.store.FetchAll(ctx, r.kind.Collection())
	if err != nil {
		return nil, errx.Wrap(err, "failed to fetch "+r.kind.Collection()+" records", errx.TypeExternal)
	}

	records := make([]Record, 0, len(snaps))
	for _, snap := range snaps {
		rec, err := fromSnapshot(r.kind, snap)
		if err != nil {
			return nil, err
		}
		records = append(records, *rec)
	}
	return records, nil
}

// GetByID fetches a single record. An empty id rejects before any store
// access. A document that does not exist yields (nil, nil); a document
// missing mandatory fields fails the same way a batch entry would.
func (r *Repository) GetByID(ctx context.Context, id kernel.RecordID) (*Record, error) {
	if id.IsEmpty() {
		return nil, ErrEmptyRecordID().WithDetail("kind", r.kind.String())
	}

	snap, err := r.store.FetchByID(ctx, r.kind.Collection(), id.String())
	if err != nil {
		return nil, errx.Wrap(err, "failed to fetch "+r.kind.Collection()+" record", errx.TypeExternal)
	}
	if snap == nil {
		return nil, nil
	}
	return fromSnapshot(r.kind, *snap)
}

// fromSnapshot maps a raw document snapshot into a validated record. The
// education institution lives under the store field "name".
func fromSnapshot(kind Kind, snap storex.Snapshot) (*Record, error) {
	rec := &Record{
		Kind: kind,
		Base: Base{
			ID:          kernel.RecordID(snap.ID),
			StartDate:   snap.Time("startDate"),
			EndDate:     snap.OptionalTime("endDate"),
			Description: snap.String("description"),
			Skills:      skillsFromSnapshot(snap),
		},
	}

	switch kind {
	case KindExperience:
		rec.Experience = &ExperienceFields{
			CompanyName: snap.String("companyName"),
			Title:       snap.String("title"),
			Location:    snap.String("location"),
		}
	case KindEducation:
		rec.Education = &EducationFields{
			InstitutionName: snap.String("name"),
			Degree:          snap.String("degree"),
			Location:        snap.String("location"),
		}
	}

	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

func skillsFromSnapshot(snap storex.Snapshot) []Skill {
	raw := snap.Maps("skills")
	if len(raw) == 0 {
		return nil
	}

	skills := make([]Skill, 0, len(raw))
	for _, m := range raw {
		s := storex.Snapshot{Data: m}
		skills = append(skills, Skill{
			ID:          s.String("id"),
			Name:        s.String("name"),
			Description: s.String("description"),
			Level:       s.Int("level"),
		})
	}
	return skills
}
