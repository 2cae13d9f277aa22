package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Rrens/focusbot/internal/llm"
)

// maxErrorBody bounds how much of a failed upstream body is kept
const maxErrorBody = 64 << 10

// Options configures an OpenAI-compatible chat completion provider
type Options struct {
	Name         string
	APIKey       string
	BaseURL      string
	DefaultModel string
	Models       []string
	Timeout      time.Duration
	// SetupHint is reported when the provider is used without an API key
	SetupHint    string
}

// Provider implements llm.Provider for OpenAI-compatible chat completion APIs
type Provider struct {
	name         string
	apiKey       string
	defaultModel string
	models       []string
	client       *http.Client
	baseURL      string
	setupHint    string
}

// New creates a provider for any endpoint speaking the /chat/completions protocol
func New(opts Options) *Provider {
	if opts.Timeout <= 0 {
		opts.Timeout = 120 * time.Second
	}
	return &Provider{
		name:         opts.Name,
		apiKey:       opts.APIKey,
		defaultModel: opts.DefaultModel,
		models:       opts.Models,
		client:       &http.Client{Timeout: opts.Timeout},
		baseURL:      strings.TrimRight(opts.BaseURL, "/"),
		setupHint:    opts.SetupHint,
	}
}

// NewProvider creates a new OpenAI provider
func NewProvider(apiKey, baseURL, defaultModel string, timeout time.Duration) llm.Provider {
	if defaultModel == "" {
		defaultModel = "gpt-4o-mini"
	}
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	return New(Options{
		Name:         "openai",
		APIKey:       apiKey,
		BaseURL:      baseURL,
		DefaultModel: defaultModel,
		Models: []string{
			"gpt-4o",
			"gpt-4o-mini",
			"gpt-4-turbo",
			"gpt-3.5-turbo",
		},
		Timeout:   timeout,
		SetupHint: "OPENAI_API_KEY is not set",
	})
}

// Name returns the provider identifier
func (p *Provider) Name() string {
	return p.name
}

// AvailableModels returns list of supported models
func (p *Provider) AvailableModels() []string {
	return p.models
}

// DefaultModel returns the default model
func (p *Provider) DefaultModel() string {
	return p.defaultModel
}

// IsConfigured checks if provider has valid credentials
func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

// SetupHint names the missing setting of an unconfigured provider
func (p *Provider) SetupHint() string {
	return p.setupHint
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []llm.Message `json:"messages"`
}

type chatResponse struct {
	Model   string `json:"model"`
	Choices []struct {
		Message struct {
			Content *string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Usage struct {
		TotalTokens int `json:"total_tokens"`
	} `json:"usage"`
}

// Complete sends the system prompt and user message to /chat/completions
func (p *Provider) Complete(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	if model == "" {
		model = p.defaultModel
	}

	body, err := json.Marshal(chatRequest{
		Model:    model,
		Messages: req.Messages(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	start := time.Now()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, &llm.ProviderError{Provider: p.name, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &llm.ProviderError{
			Provider:   p.name,
			StatusCode: resp.StatusCode,
			Body:       string(errBody),
		}
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return nil, llm.NewParseError(err)
	}

	if len(chatResp.Choices) == 0 {
		return nil, llm.NewParseError(errors.New("no choices in response"))
	}

	content := chatResp.Choices[0].Message.Content
	if content == nil {
		return nil, llm.NewParseError(errors.New("choice has no message content"))
	}

	if chatResp.Model != "" {
		model = chatResp.Model
	}

	return &llm.Response{
		Content:    *content,
		Model:      model,
		TokensUsed: chatResp.Usage.TotalTokens,
		LatencyMs:  time.Since(start).Milliseconds(),
	}, nil
}
