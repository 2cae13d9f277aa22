package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Rrens/focusbot/internal/domain"
	"github.com/Rrens/focusbot/internal/llm"
	"github.com/rs/zerolog/log"
)

// ChatService answers tutoring messages and keeps accepted turns
type ChatService struct {
	llmRouter  *llm.Router
	chatRepo   domain.ChatRepository
	classifier ReplyClassifier
	now        func() time.Time
}

// NewChatService creates a new chat service. A nil classifier uses the default phrase list.
func NewChatService(llmRouter *llm.Router, chatRepo domain.ChatRepository, classifier ReplyClassifier) *ChatService {
	if classifier == nil {
		classifier = NewPhraseClassifier()
	}
	return &ChatService{
		llmRouter:  llmRouter,
		chatRepo:   chatRepo,
		classifier: classifier,
		now:        time.Now,
	}
}

// Chat sends the message to the default provider under a subject-scoped
// system prompt. The cleaned reply is always returned; it is stored only
// when it is not a redirect.
func (s *ChatService) Chat(ctx context.Context, identity string, req domain.ChatRequest) (*domain.ChatResponse, error) {
	message := strings.TrimSpace(req.Message)
	subject := strings.TrimSpace(req.Subject)
	if message == "" || subject == "" {
		return nil, domain.NewValidationError("message", "Both message and subject are required.")
	}
	if identity == "" {
		identity = domain.GuestUser
	}

	provider, err := s.llmRouter.GetProvider("")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrNotConfigured, err)
	}

	completion, err := provider.Complete(ctx, llm.Request{
		SystemPrompt: llm.BuildTutorPrompt(subject, req.ConversationStarted),
		UserMessage:  message,
	}, "")
	if err != nil {
		var perr *llm.ProviderError
		if errors.As(err, &perr) {
			log.Error().
				Err(err).
				Str("provider", perr.Provider).
				Int("status", perr.StatusCode).
				Msg("tutor request failed")
		}
		return nil, err
	}

	reply := llm.StripReasoning(completion.Content)
	redirect := s.classifier.IsRedirect(reply)

	log.Info().
		Str("subject", subject).
		Str("user", identity).
		Str("provider", provider.Name()).
		Str("model", completion.Model).
		Int64("latency_ms", completion.LatencyMs).
		Int("tokens", completion.TokensUsed).
		Bool("redirect", redirect).
		Msg("tutor reply")

	if !redirect {
		turn := &domain.ChatTurn{
			User:      identity,
			Subject:   subject,
			Message:   message,
			Reply:     reply,
			Timestamp: s.now().UTC(),
			Rejected:  false,
		}
		if err := s.chatRepo.Create(ctx, turn); err != nil {
			return nil, fmt.Errorf("failed to save chat: %w", err)
		}
	}

	return &domain.ChatResponse{Reply: reply}, nil
}
