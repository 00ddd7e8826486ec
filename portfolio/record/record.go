package record

import (
	"time"

	"github.com/Abraxas-365/folio/pkg/errx"
	"github.com/Abraxas-365/folio/pkg/kernel"
)

// Kind selects which record collection a repository operates on.
type Kind string

const (
	KindExperience Kind = "experience"
	KindEducation  Kind = "education"
)

// Valid reports whether the kind is a supported selector.
func (k Kind) Valid() bool {
	return k == KindExperience || k == KindEducation
}

// Collection returns the backing collection name for the kind.
func (k Kind) Collection() string {
	return string(k)
}

func (k Kind) String() string {
	return string(k)
}

// Skill is a leaf value object attached to records.
type Skill struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       int    `json:"level"`
}

// Base holds the fields shared by experience and education entries.
type Base struct {
	ID          kernel.RecordID
	StartDate   time.Time
	EndDate     *time.Time // nil for ongoing entries
	Description string
	Skills      []Skill
}

// ExperienceFields are the experience-specific fields. CompanyName and Title
// are mandatory.
type ExperienceFields struct {
	CompanyName string
	Title       string
	Location    string
}

// EducationFields are the education-specific fields. InstitutionName and
// Degree are mandatory.
type EducationFields struct {
	InstitutionName string
	Degree          string
	Location        string
}

// Record is a tagged variant over the two record kinds. Exactly the field
// matching Kind is set; records are constructed once by the snapshot mapper
// and never mutated.
type Record struct {
	Kind Kind
	Base

	Experience *ExperienceFields
	Education  *EducationFields
}

// Validate enforces the kind-specific mandatory fields. The returned error
// names the record kind and document id.
func (r *Record) Validate() error {
	switch r.Kind {
	case KindExperience:
		if r.Experience == nil || r.Experience.CompanyName == "" || r.Experience.Title == "" {
			return r.invalid()
		}
	case KindEducation:
		if r.Education == nil || r.Education.InstitutionName == "" || r.Education.Degree == "" {
			return r.invalid()
		}
	default:
		return ErrInvalidRecordKind().WithDetail("kind", r.Kind.String())
	}
	return nil
}

func (r *Record) invalid() *errx.Error {
	return ErrRecordMissingFields().
		WithDetail("kind", r.Kind.String()).
		WithDetail("record_id", r.ID.String())
}
