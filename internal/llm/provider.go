package llm

import "context"

// Role names used in chat completion messages
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is one entry of a chat completion conversation
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request contains a single-turn completion: a system prompt and the user's message.
// No earlier conversation is ever included.
type Request struct {
	SystemPrompt string
	UserMessage  string
}

// Messages returns the request as the two chat messages sent upstream
func (r Request) Messages() []Message {
	return []Message{
		{Role: RoleSystem, Content: r.SystemPrompt},
		{Role: RoleUser, Content: r.UserMessage},
	}
}

// Response contains LLM generation result
type Response struct {
	Content    string
	Model      string
	TokensUsed int
	LatencyMs  int64
}

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// AvailableModels returns list of supported models
	AvailableModels() []string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Complete sends the request and returns the raw reply text
	Complete(ctx context.Context, req Request, model string) (*Response, error)
}
