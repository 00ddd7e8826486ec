package project

import (
	"time"

	"github.com/Abraxas-365/folio/pkg/kernel"
)

// ProjectResponse - DTO for returning project data
type ProjectResponse struct {
	ID           kernel.ProjectID `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Technologies []string         `json:"technologies"`
	RepoURL      string           `json:"repoUrl,omitempty"`
	LiveURL      string           `json:"liveUrl,omitempty"`
	ImageURL     string           `json:"imageUrl,omitempty"`
	Featured     bool             `json:"featured"`
	CreatedAt    *time.Time       `json:"createdAt,omitempty"`
}

// ToResponse converts a project into its response DTO.
func ToResponse(p *Project) ProjectResponse {
	resp := ProjectResponse{
		ID:           p.ID,
		Name:         p.Name,
		Description:  p.Description,
		Technologies: p.Technologies,
		RepoURL:      p.RepoURL,
		LiveURL:      p.LiveURL,
		ImageURL:     p.ImageURL,
		Featured:     p.Featured,
		CreatedAt:    p.CreatedAt,
	}
	if resp.Technologies == nil {
		resp.Technologies = []string{}
	}
	return resp
}
