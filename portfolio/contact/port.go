package contact

import (
	"context"

	"github.com/Abraxas-365/folio/pkg/kernel"
)

type Repository interface {
	// Create stores a new message
	Create(ctx context.Context, message *Message) error

	// List retrieves all messages, newest first
	List(ctx context.Context) ([]Message, error)

	// MarkRead flags a message as read
	MarkRead(ctx context.Context, id kernel.MessageID) error
}
