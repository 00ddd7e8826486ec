package contactsrv

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Abraxas-365/folio/pkg/errx"
	"github.com/Abraxas-365/folio/pkg/kernel"
	"github.com/Abraxas-365/folio/portfolio/contact"
)

// ContactService provides business operations for contact messages
type ContactService struct {
	repo contact.Repository
}

// NewContactService creates a new instance of the contact service
func NewContactService(repo contact.Repository) *ContactService {
	return &ContactService{repo: repo}
}

// SubmitMessage validates and stores a contact-form submission.
func (s *ContactService) SubmitMessage(ctx context.Context, req contact.SubmitMessageRequest) (*contact.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	message := &contact.Message{
		ID:        kernel.NewMessageID(uuid.NewString()),
		Name:      req.Name,
		Email:     req.Email,
		Subject:   req.Subject,
		Body:      req.Body,
		CreatedAt: time.Now(),
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, errx.Wrap(err, "failed to store message", errx.TypeInternal)
	}

	resp := contact.ToResponse(message)
	return &resp, nil
}

// ListMessages returns every stored message, newest first.
func (s *ContactService) ListMessages(ctx context.Context) ([]contact.MessageResponse, error) {
	messages, err := s.repo.List(ctx)
	if err != nil {
		return nil, errx.Wrap(err, "failed to list messages", errx.TypeInternal)
	}

	responses := make([]contact.MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, contact.ToResponse(&messages[i]))
	}
	return responses, nil
}

// MarkMessageRead flags one message as read.
func (s *ContactService) MarkMessageRead(ctx context.Context, id kernel.MessageID) error {
	if id.IsEmpty() {
		return contact.ErrEmptyMessageID()
	}

	if err := s.repo.MarkRead(ctx, id); err != nil {
		return errx.Wrap(err, "failed to mark message read", errx.TypeInternal)
	}
	return nil
}
