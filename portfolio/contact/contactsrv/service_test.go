package contactsrv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abraxas-365/folio/pkg/errx"
	"github.com/Abraxas-365/folio/pkg/kernel"
	"github.com/Abraxas-365/folio/portfolio/contact"
)

type fakeRepo struct {
	created  []*contact.Message
	messages []contact.Message
	read     []kernel.MessageID

	createErr   error
	listErr     error
	markReadErr error
}

func (f *fakeRepo) Create(ctx context.Context, message *contact.Message) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.created = append(f.created, message)
	return nil
}

func (f *fakeRepo) List(ctx context.Context) ([]contact.Message, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.messages, nil
}

func (f *fakeRepo) MarkRead(ctx context.Context, id kernel.MessageID) error {
	if f.markReadErr != nil {
		return f.markReadErr
	}
	f.read = append(f.read, id)
	return nil
}

func TestSubmitMessage_AssignsIDAndStores(t *testing.T) {
	repo := &fakeRepo{}
	service := NewContactService(repo)

	resp, err := service.SubmitMessage(context.Background(), contact.SubmitMessageRequest{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hi",
		Body:    "Hello there",
	})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	stored := repo.created[0]
	_, parseErr := uuid.Parse(stored.ID.String())
	assert.NoError(t, parseErr, "message id should be a uuid")
	assert.Equal(t, stored.ID, resp.ID)
	assert.Equal(t, "Ada", resp.Name)
	assert.False(t, resp.Read)
	assert.WithinDuration(t, time.Now(), resp.CreatedAt, 5*time.Second)
}

func TestSubmitMessage_InvalidRequestNeverReachesRepo(t *testing.T) {
	repo := &fakeRepo{}
	service := NewContactService(repo)

	_, err := service.SubmitMessage(context.Background(), contact.SubmitMessageRequest{
		Email: "ada@example.com",
		Body:  "no name",
	})
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "CONTACT_INVALID_MESSAGE", e.Code)
	assert.Empty(t, repo.created)
}

func TestSubmitMessage_RepoFailure(t *testing.T) {
	repo := &fakeRepo{createErr: errors.New("connection reset")}
	service := NewContactService(repo)

	_, err := service.SubmitMessage(context.Background(), contact.SubmitMessageRequest{
		Name:  "Ada",
		Email: "ada@example.com",
		Body:  "Hello",
	})
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, errx.TypeInternal, e.Type)
}

func TestListMessages(t *testing.T) {
	repo := &fakeRepo{messages: []contact.Message{
		{ID: kernel.NewMessageID("m2"), Name: "Bea", CreatedAt: time.Now()},
		{ID: kernel.NewMessageID("m1"), Name: "Ada", CreatedAt: time.Now().Add(-time.Hour)},
	}}
	service := NewContactService(repo)

	responses, err := service.ListMessages(context.Background())
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "Bea", responses[0].Name, "repository order is preserved")
}

func TestListMessages_Empty(t *testing.T) {
	service := NewContactService(&fakeRepo{})

	responses, err := service.ListMessages(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, responses)
	assert.Empty(t, responses)
}

func TestMarkMessageRead(t *testing.T) {
	repo := &fakeRepo{}
	service := NewContactService(repo)

	require.NoError(t, service.MarkMessageRead(context.Background(), kernel.NewMessageID("m1")))
	assert.Equal(t, []kernel.MessageID{kernel.NewMessageID("m1")}, repo.read)
}

func TestMarkMessageRead_EmptyID(t *testing.T) {
	repo := &fakeRepo{}
	service := NewContactService(repo)

	err := service.MarkMessageRead(context.Background(), kernel.NewMessageID(""))
	require.Error(t, err)

	var e *errx.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "CONTACT_EMPTY_ID", e.Code)
	assert.Empty(t, repo.read)
}
