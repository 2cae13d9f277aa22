package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rrens/focusbot/internal/domain"
)

// SubjectService manages per-user custom subjects on top of the defaults
type SubjectService struct {
	subjectRepo domain.SubjectRepository
	now         func() time.Time
}

// NewSubjectService creates a new subject service
func NewSubjectService(subjectRepo domain.SubjectRepository) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		now:         time.Now,
	}
}

// Add stores a custom subject for user
func (s *SubjectService) Add(ctx context.Context, user, subject string) error {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return domain.NewValidationError("subject", "Subject name is required.")
	}
	if domain.IsDefaultSubject(subject) {
		return domain.NewValidationError("subject", "Subject already exists.")
	}

	err := s.subjectRepo.Create(ctx, &domain.SubjectEntry{
		User:      user,
		Subject:   subject,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateSubject) {
			return domain.NewPublicError(domain.ErrDuplicateSubject, "Subject already exists.")
		}
		return fmt.Errorf("failed to add subject: %w", err)
	}
	return nil
}

// List returns the default subjects followed by user's custom subjects
func (s *SubjectService) List(ctx context.Context, user string) ([]string, error) {
	entries, err := s.subjectRepo.ListByUser(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}

	subjects := make([]string, 0, len(domain.DefaultSubjects)+len(entries))
	subjects = append(subjects, domain.DefaultSubjects...)
	for _, e := range entries {
		subjects = append(subjects, e.Subject)
	}
	return subjects, nil
}

// Remove deletes a custom subject. Default subjects cannot be removed.
func (s *SubjectService) Remove(ctx context.Context, user, subject string) error {
	if domain.IsDefaultSubject(subject) {
		return domain.NewPublicError(domain.ErrForbidden, "Cannot delete default subjects.")
	}

	err := s.subjectRepo.Delete(ctx, user, subject)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrNotFound):
		return domain.NewPublicError(domain.ErrNotFound, "Subject not found.")
	default:
		return fmt.Errorf("failed to delete subject: %w", err)
	}
}
