package service

import (
	"context"

	"github.com/Rrens/focusbot/internal/domain"
	"github.com/Rrens/focusbot/internal/llm"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockChatRepository mocks the ChatRepository interface
type MockChatRepository struct {
	mock.Mock
}

func (m *MockChatRepository) Create(ctx context.Context, turn *domain.ChatTurn) error {
	args := m.Called(ctx, turn)
	return args.Error(0)
}

func (m *MockChatRepository) ListByUser(ctx context.Context, user, subject string, limit int) ([]domain.ChatTurn, error) {
	args := m.Called(ctx, user, subject, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChatTurn), args.Error(1)
}

func (m *MockChatRepository) Delete(ctx context.Context, id, user string) error {
	args := m.Called(ctx, id, user)
	return args.Error(0)
}

func (m *MockChatRepository) DeleteAllByUser(ctx context.Context, user string) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

// MockSubjectRepository mocks the SubjectRepository interface
type MockSubjectRepository struct {
	mock.Mock
}

func (m *MockSubjectRepository) Create(ctx context.Context, entry *domain.SubjectEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockSubjectRepository) ListByUser(ctx context.Context, user string) ([]domain.SubjectEntry, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SubjectEntry), args.Error(1)
}

func (m *MockSubjectRepository) Delete(ctx context.Context, user, subject string) error {
	args := m.Called(ctx, user, subject)
	return args.Error(0)
}

// MockLLMProvider mocks the LLM Provider interface
type MockLLMProvider struct {
	mock.Mock
}

func (m *MockLLMProvider) Name() string {
	return "mock"
}

func (m *MockLLMProvider) AvailableModels() []string {
	return []string{"mock-model"}
}

func (m *MockLLMProvider) DefaultModel() string {
	return "mock-model"
}

func (m *MockLLMProvider) IsConfigured() bool {
	return true
}

func (m *MockLLMProvider) Complete(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	args := m.Called(ctx, req, model)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*llm.Response), args.Error(1)
}
