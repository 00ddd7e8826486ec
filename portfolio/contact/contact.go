package contact

import (
	"time"

	"github.com/Abraxas-365/folio/pkg/kernel"
)

// Message is a contact-form submission.
type Message struct {
	ID        kernel.MessageID `db:"id" json:"id"`
	Name      string           `db:"name" json:"name"`
	Email     string           `db:"email" json:"email"`
	Subject   string           `db:"subject" json:"subject"`
	Body      string           `db:"body" json:"body"`
	Read      bool             `db:"is_read" json:"read"`
	CreatedAt time.Time        `db:"created_at" json:"createdAt"`
}

// MarkRead flags the message as read.
func (m *Message) MarkRead() {
	m.Read = true
}
