package service

import (
	"context"
	"testing"

	"github.com/Rrens/focusbot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSubjectService_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("success trims name", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		svc := NewSubjectService(repo)
		repo.On("Create", ctx, mock.MatchedBy(func(e *domain.SubjectEntry) bool {
			return e.User == "a@b.com" && e.Subject == "Chemistry" && !e.CreatedAt.IsZero()
		})).Return(nil)

		require.NoError(t, svc.Add(ctx, "a@b.com", "  Chemistry "))
		repo.AssertExpectations(t)
	})

	t.Run("empty name", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		svc := NewSubjectService(repo)

		err := svc.Add(ctx, "a@b.com", "   ")
		assert.ErrorIs(t, err, domain.ErrValidation)
		assert.EqualError(t, err, "Subject name is required.")
	})

	t.Run("default subject cannot be stored", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		svc := NewSubjectService(repo)

		err := svc.Add(ctx, "a@b.com", "Math")
		assert.ErrorIs(t, err, domain.ErrValidation)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("duplicate", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		svc := NewSubjectService(repo)
		repo.On("Create", ctx, mock.Anything).Return(domain.ErrDuplicateSubject)

		err := svc.Add(ctx, "a@b.com", "Chemistry")
		assert.ErrorIs(t, err, domain.ErrDuplicateSubject)
		assert.EqualError(t, err, "Subject already exists.")
	})
}

func TestSubjectService_List(t *testing.T) {
	ctx := context.Background()
	repo := new(MockSubjectRepository)
	svc := NewSubjectService(repo)

	repo.On("ListByUser", ctx, "a@b.com").Return([]domain.SubjectEntry{
		{Subject: "Chemistry"},
		{Subject: "Art"},
	}, nil)
	repo.On("ListByUser", ctx, "guest").Return([]domain.SubjectEntry{}, nil)

	subjects, err := svc.List(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"Math", "History", "Science", "Literature", "Chemistry", "Art"}, subjects)

	subjects, err = svc.List(ctx, "guest")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSubjects, subjects)
}

func TestSubjectService_Remove(t *testing.T) {
	ctx := context.Background()

	t.Run("default subject is forbidden", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		svc := NewSubjectService(repo)

		err := svc.Remove(ctx, "a@b.com", "History")
		assert.ErrorIs(t, err, domain.ErrForbidden)
		assert.EqualError(t, err, "Cannot delete default subjects.")
		repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		svc := NewSubjectService(repo)
		repo.On("Delete", ctx, "a@b.com", "Art").Return(domain.ErrNotFound)

		err := svc.Remove(ctx, "a@b.com", "Art")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.EqualError(t, err, "Subject not found.")
	})

	t.Run("success", func(t *testing.T) {
		repo := new(MockSubjectRepository)
		svc := NewSubjectService(repo)
		repo.On("Delete", ctx, "a@b.com", "Art").Return(nil)

		assert.NoError(t, svc.Remove(ctx, "a@b.com", "Art"))
	})
}
