package contactinfra

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/Abraxas-365/folio/pkg/kernel"
	"github.com/Abraxas-365/folio/portfolio/contact"
)

// PostgresMessageRepository implements contact.Repository using PostgreSQL
type PostgresMessageRepository struct {
	db *sqlx.DB
}

// NewPostgresMessageRepository creates a new PostgreSQL message repository
func NewPostgresMessageRepository(db *sqlx.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{
		db: db,
	}
}

// ============================================================================
// Database Model
// ============================================================================

type messageModel struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	Email     string    `db:"email"`
	Subject   string    `db:"subject"`
	Body      string    `db:"body"`
	IsRead    bool      `db:"is_read"`
	CreatedAt time.Time `db:"created_at"`
}

func (m *messageModel) toEntity() *contact.Message {
	return &contact.Message{
		ID:        kernel.MessageID(m.ID),
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Body:      m.Body,
		Read:      m.IsRead,
		CreatedAt: m.CreatedAt,
	}
}

func fromEntity(msg *contact.Message) *messageModel {
	return &messageModel{
		ID:        string(msg.ID),
		Name:      msg.Name,
		Email:     msg.Email,
		Subject:   msg.Subject,
		Body:      msg.Body,
		IsRead:    msg.Read,
		CreatedAt: msg.CreatedAt,
	}
}

// ============================================================================
// Repository Implementation
// ============================================================================

// Create stores a new message
func (r *PostgresMessageRepository) Create(ctx context.Context, message *contact.Message) error {
	model := fromEntity(message)

	query := `
		INSERT INTO contact_messages (
			id, name, email, subject, body, is_read, created_at
		) VALUES (
			:id, :name, :email, :subject, :body, :is_read, :created_at
		)
	`

	_, err := r.db.NamedExecContext(ctx, query, model)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			if pqErr.Code == "23505" { // unique_violation
				return contact.ErrDuplicateMessage()
			}
		}
		return fmt.Errorf("failed to create message: %w", err)
	}

	return nil
}

// List retrieves all messages, newest first
func (r *PostgresMessageRepository) List(ctx context.Context) ([]contact.Message, error) {
	query := `
		SELECT id, name, email, subject, body, is_read, created_at
		FROM contact_messages
		ORDER BY created_at DESC
	`

	var models []messageModel
	if err := r.db.SelectContext(ctx, &models, query); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]contact.Message, 0, len(models))
	for i := range models {
		messages = append(messages, *models[i].toEntity())
	}
	return messages, nil
}

// MarkRead flags a message as read
func (r *PostgresMessageRepository) MarkRead(ctx context.Context, id kernel.MessageID) error {
	query := `UPDATE contact_messages SET is_read = TRUE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, string(id))
	if err != nil {
		return fmt.Errorf("failed to mark message read: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return contact.ErrMessageNotFound()
	}

	return nil
}
