package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"doctors-portal-server/internal/delivery/dto"
	"doctors-portal-server/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockContactRepo struct {
	messages []entity.ContactMessage
	err      error
}

func (m *mockContactRepo) Insert(_ context.Context, message *entity.ContactMessage) error {
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, *message)
	return nil
}

func TestSubmitContact_StoresMessageWithTimestamp(t *testing.T) {
	repo := &mockContactRepo{}
	uc := NewContactUsecase(logrus.New(), repo)

	before := time.Now().UTC()
	message, err := uc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Subject: "Opening hours",
		Message: "Are you open Saturdays?",
	})
	require.NoError(t, err)

	assert.Equal(t, "jane@x.com", message.Email)
	assert.Equal(t, "Are you open Saturdays?", message.Message)
	assert.False(t, message.CreatedAt.Before(before))
	require.Len(t, repo.messages, 1)
	assert.Equal(t, "Jane Doe", repo.messages[0].Name)
}

func TestSubmitContact_RepoFailure(t *testing.T) {
	uc := NewContactUsecase(logrus.New(), &mockContactRepo{err: errors.New("write failed")})

	message, err := uc.Submit(context.Background(), &dto.ContactRequest{
		Name:    "Jane Doe",
		Email:   "jane@x.com",
		Message: "hello",
	})
	assert.Nil(t, message)
	assert.Error(t, err)
}
