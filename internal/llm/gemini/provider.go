package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Rrens/focusbot/internal/config"
	"github.com/Rrens/focusbot/internal/llm"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

type Provider struct {
	apiKey string
	model  string
}

func NewProvider(cfg config.GeminiConfig) *Provider {
	return &Provider{
		apiKey: cfg.APIKey,
		model:  cfg.Model,
	}
}

func (p *Provider) Name() string {
	return "gemini"
}

func (p *Provider) AvailableModels() []string {
	return []string{
		"gemini-2.5-flash",
		"gemini-1.5-flash",
		"gemini-1.5-pro",
	}
}

func (p *Provider) DefaultModel() string {
	if p.model != "" {
		return p.model
	}
	return "gemini-2.5-flash"
}

func (p *Provider) IsConfigured() bool {
	return p.apiKey != ""
}

func (p *Provider) Complete(ctx context.Context, req llm.Request, model string) (*llm.Response, error) {
	if !p.IsConfigured() {
		return nil, fmt.Errorf("%w: gemini (missing API key)", llm.ErrProviderNotConfigured)
	}

	if model == "" {
		model = p.DefaultModel()
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(p.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	generativeModel := client.GenerativeModel(model)
	generativeModel.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(req.SystemPrompt)},
	}

	start := time.Now()
	resp, err := generativeModel.GenerateContent(ctx, genai.Text(req.UserMessage))
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return nil, providerError(err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, llm.NewParseError(errors.New("empty response from gemini"))
	}

	var output string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			output += string(text)
		}
	}

	tokensUsed := 0
	if resp.UsageMetadata != nil {
		tokensUsed = int(resp.UsageMetadata.TotalTokenCount)
	}

	return &llm.Response{
		Content:    output,
		Model:      model,
		TokensUsed: tokensUsed,
		LatencyMs:  latency,
	}, nil
}

// providerError keeps the HTTP status and body of Google API failures
func providerError(err error) *llm.ProviderError {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return &llm.ProviderError{
			Provider:   "gemini",
			StatusCode: apiErr.Code,
			Body:       apiErr.Body,
			Err:        err,
		}
	}
	return &llm.ProviderError{Provider: "gemini", Err: err}
}
