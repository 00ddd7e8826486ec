package record

import (
	"time"

	"github.com/Abraxas-365/folio/pkg/kernel"
)

// RecordResponse - DTO for returning record data. Kind-specific fields are
// flattened; only the fields of the record's kind are populated.
type RecordResponse struct {
	ID          kernel.RecordID `json:"id"`
	Kind        Kind            `json:"kind"`
	StartDate   time.Time       `json:"startDate"`
	EndDate     *time.Time      `json:"endDate,omitempty"`
	Description string          `json:"description"`
	Skills      []Skill         `json:"skills"`

	// Experience fields
	CompanyName string `json:"companyName,omitempty"`
	Title       string `json:"title,omitempty"`

	// Education fields
	InstitutionName string `json:"institutionName,omitempty"`
	Degree          string `json:"degree,omitempty"`

	Location string `json:"location,omitempty"`
}

// ToResponse converts a record into its response DTO.
func ToResponse(r *Record) RecordResponse {
	resp := RecordResponse{
		ID:          r.ID,
		Kind:        r.Kind,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Description: r.Description,
		Skills:      r.Skills,
	}
	if r.Skills == nil {
		resp.Skills = []Skill{}
	}

	switch r.Kind {
	case KindExperience:
		resp.CompanyName = r.Experience.CompanyName
		resp.Title = r.Experience.Title
		resp.Location = r.Experience.Location
	case KindEducation:
		resp.InstitutionName = r.Education.InstitutionName
		resp.Degree = r.Education.Degree
		resp.Location = r.Education.Location
	}
	return resp
}
