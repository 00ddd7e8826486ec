package contact

import (
	"net/mail"
	"strings"
	"time"

	"github.com/Abraxas-365/folio/pkg/kernel"
)

// SubmitMessageRequest - DTO for submitting a contact message
type SubmitMessageRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject,omitempty"`
	Body    string `json:"body" validate:"required"`
}

// Validate enforces the submission preconditions.
func (r *SubmitMessageRequest) Validate() error {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.Body) == "" {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return ErrInvalidMessage().WithDetail("missing", strings.Join(missing, ", "))
	}

	if _, err := mail.ParseAddress(r.Email); err != nil {
		return ErrInvalidMessage().WithDetail("email", "malformed address")
	}
	return nil
}

// MessageResponse - DTO for returning message data
type MessageResponse struct {
	ID        kernel.MessageID `json:"id"`
	Name      string           `json:"name"`
	Email     string           `json:"email"`
	Subject   string           `json:"subject,omitempty"`
	Body      string           `json:"body"`
	Read      bool             `json:"read"`
	CreatedAt time.Time        `json:"createdAt"`
}

// ToResponse converts a message into its response DTO.
func ToResponse(m *Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Body:      m.Body,
		Read:      m.Read,
		CreatedAt: m.CreatedAt,
	}
}
