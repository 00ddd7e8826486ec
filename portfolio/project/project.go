package project

import (
	"time"

	"github.com/Abraxas-365/folio/pkg/kernel"
)

// Project is a portfolio project entry. Projects are read-only projections
// constructed fresh on every fetch from store documents.
type Project struct {
	ID           kernel.ProjectID
	Name         string
	Description  string
	Technologies []string
	RepoURL      string
	LiveURL      string
	ImageURL     string
	Featured     bool
	CreatedAt    *time.Time
}

// Validate enforces the mandatory fields; the error names the document id.
func (p *Project) Validate() error {
	if p.Name == "" {
		return ErrProjectMissingFields().WithDetail("project_id", p.ID.String())
	}
	return nil
}
