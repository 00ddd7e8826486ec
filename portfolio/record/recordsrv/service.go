package recordsrv

import (
	"context"

	"github.com/Abraxas-365/folio/pkg/errx"
	"github.com/Abraxas-365/folio/pkg/kernel"
	"github.com/Abraxas-365/folio/pkg/storex"
	"github.com/Abraxas-365/folio/portfolio/record"
)

// RecordService serves experience and education records, one repository per
// kind.
type RecordService struct {
	repos map[record.Kind]*record.Repository
}

// NewRecordService builds a repository for each supported kind over the given
// store.
func NewRecordService(store storex.Store) (*RecordService, error) {
	repos := make(map[record.Kind]*record.Repository)
	for _, kind := range []record.Kind{record.KindExperience, record.KindEducation} {
		repo, err := record.NewRepository(kind, store)
		if err != nil {
			return nil, err
		}
		repos[kind] = repo
	}
	return &RecordService{repos: repos}, nil
}

func (s *RecordService) repo(kind record.Kind) (*record.Repository, error) {
	repo, ok := s.repos[kind]
	if !ok {
		return nil, record.ErrInvalidRecordKind().WithDetail("kind", kind.String())
	}
	return repo, nil
}

// ListRecords returns every record of the kind, in store order.
func (s *RecordService) ListRecords(ctx context.Context, kind record.Kind) ([]record.RecordResponse, error) {
	repo, err := s.repo(kind)
	if err != nil {
		return nil, err
	}

	records, err := repo.GetAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list records", errx.TypeInternal)
	}

	responses := make([]record.RecordResponse, 0, len(records))
	for i := range records {
		responses = append(responses, record.ToResponse(&records[i]))
	}
	return responses, nil
}

// GetRecord returns one record by id, translating the repository's empty
// sentinel into a not-found error for the HTTP layer.
func (s *RecordService) GetRecord(ctx context.Context, kind record.Kind, id kernel.RecordID) (*record.RecordResponse, error) {
	repo, err := s.repo(kind)
	if err != nil {
		return nil, err
	}

	rec, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get record", errx.TypeInternal)
	}
	if rec == nil {
		return nil, record.ErrRecordNotFound().
			WithDetail("kind", kind.String()).
			WithDetail("record_id", id.String())
	}

	resp := record.ToResponse(rec)
	return &resp, nil
}
