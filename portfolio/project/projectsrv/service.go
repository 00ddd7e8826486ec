package projectsrv

import (
	"context"
	"strings"

	"github.com/Abraxas-365/folio/pkg/errx"
	"github.com/Abraxas-365/folio/pkg/kernel"
	"github.com/Abraxas-365/folio/portfolio/project"
)

// ProjectService translates repository results and errors into the responses
// the HTTP layer returns.
type ProjectService struct {
	repo *project.Repository
}

// NewProjectService creates a new instance of the project service
func NewProjectService(repo *project.Repository) *ProjectService {
	return &ProjectService{repo: repo}
}

// GetAllProjects returns every project in store order.
func (s *ProjectService) GetAllProjects(ctx context.Context) ([]project.ProjectResponse, error) {
	projects, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list projects", errx.TypeInternal)
	}

	responses := make([]project.ProjectResponse, 0, len(projects))
	for i := range projects {
		responses = append(responses, project.ToResponse(&projects[i]))
	}
	return responses, nil
}

// GetProjectByName returns the project with the given name. The store only
// supports get-all and get-by-id, so the match runs over the full collection.
func (s *ProjectService) GetProjectByName(ctx context.Context, name string) (*project.ProjectResponse, error) {
	projects, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get project by name", errx.TypeInternal)
	}

	for i := range projects {
		if strings.EqualFold(projects[i].Name, name) {
			resp := project.ToResponse(&projects[i])
			return &resp, nil
		}
	}
	return nil, project.ErrProjectNotFound().WithDetail("name", name)
}

// GetProjectByID returns one project by id, translating the repository's
// empty sentinel into a not-found error.
func (s *ProjectService) GetProjectByID(ctx context.Context, id kernel.ProjectID) (*project.ProjectResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errx.Wrap(err, "failed to get project", errx.TypeInternal)
	}
	if p == nil {
		return nil, project.ErrProjectNotFound().WithDetail("project_id", id.String())
	}

	resp := project.ToResponse(p)
	return &resp, nil
}
