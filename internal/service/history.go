package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Rrens/focusbot/internal/domain"
)

// HistoryService lists and deletes stored chat turns
type HistoryService struct {
	chatRepo domain.ChatRepository
}

// NewHistoryService creates a new history service
func NewHistoryService(chatRepo domain.ChatRepository) *HistoryService {
	return &HistoryService{chatRepo: chatRepo}
}

// List returns up to domain.HistoryLimit accepted turns, newest first
func (s *HistoryService) List(ctx context.Context, user, subject string) ([]domain.HistoryEntry, error) {
	turns, err := s.chatRepo.ListByUser(ctx, user, strings.TrimSpace(subject), domain.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	entries := make([]domain.HistoryEntry, 0, len(turns))
	for _, t := range turns {
		entries = append(entries, domain.NewHistoryEntry(t))
	}
	return entries, nil
}

// Delete removes one turn owned by user
func (s *HistoryService) Delete(ctx context.Context, id, user string) error {
	err := s.chatRepo.Delete(ctx, id, user)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.NewPublicError(domain.ErrNotFound, "Chat not found.")
	case errors.Is(err, domain.ErrValidation):
		return err
	default:
		return fmt.Errorf("failed to delete chat: %w", err)
	}
}

// DeleteAll removes every turn owned by user and returns how many were removed
func (s *HistoryService) DeleteAll(ctx context.Context, user string) (int64, error) {
	n, err := s.chatRepo.DeleteAllByUser(ctx, user)
	if err != nil {
		return 0, fmt.Errorf("failed to delete history: %w", err)
	}
	return n, nil
}
