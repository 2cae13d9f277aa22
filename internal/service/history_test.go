package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rrens/focusbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHistoryService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockChatRepository)
	svc := NewHistoryService(repo)

	turns := []domain.ChatTurn{
		{ID: "2", Subject: "Math", Message: "q2", Reply: "a2", Timestamp: time.Date(2025, 3, 7, 15, 4, 0, 0, time.UTC)},
		{ID: "1", Subject: "Math", Message: "q1", Reply: "a1", Timestamp: time.Date(2025, 3, 6, 9, 30, 0, 0, time.UTC)},
	}
	repo.On("ListByUser", ctx, "a@b.com", "Math", domain.HistoryLimit).Return(turns, nil)

	entries, err := svc.List(ctx, "a@b.com", " Math ")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2", entries[0].ID)
	assert.Equal(t, "Mar 07, 2025 at 03:04 PM", entries[0].FormattedTime)
	assert.Equal(t, "2025-03-06T09:30:00Z", entries[1].Timestamp)
	assert.False(t, entries[1].Rejected)
}

func TestHistoryService_ListEmpty(t *testing.T) {
	ctx := context.Background()
	repo := new(MockChatRepository)
	svc := NewHistoryService(repo)

	repo.On("ListByUser", ctx, "guest", "", domain.HistoryLimit).Return([]domain.ChatTurn{}, nil)

	entries, err := svc.List(ctx, "guest", "")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestHistoryService_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name     string
		repoErr  error
		wantErr  error
		wantText string
	}{
		{"deleted", nil, nil, ""},
		{"not found", domain.ErrNotFound, domain.ErrNotFound, "Chat not found."},
		{"invalid id", domain.ErrInvalidID, domain.ErrValidation, "Invalid chat ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockChatRepository)
			svc := NewHistoryService(repo)
			repo.On("Delete", ctx, "abc", "a@b.com").Return(tt.repoErr)

			err := svc.Delete(ctx, "abc", "a@b.com")
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.EqualError(t, err, tt.wantText)
		})
	}

	t.Run("store failure", func(t *testing.T) {
		repo := new(MockChatRepository)
		svc := NewHistoryService(repo)
		repo.On("Delete", ctx, "abc", "a@b.com").Return(errors.New("timeout"))

		err := svc.Delete(ctx, "abc", "a@b.com")
		require.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestHistoryService_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := new(MockChatRepository)
	svc := NewHistoryService(repo)

	repo.On("DeleteAllByUser", ctx, "a@b.com").Return(int64(3), nil)
	repo.On("DeleteAllByUser", ctx, "nobody").Return(int64(0), nil)

	n, err := svc.DeleteAll(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	n, err = svc.DeleteAll(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, n)
}
