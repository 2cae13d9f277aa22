package deepseek

import (
	"time"

	"github.com/Rrens/focusbot/internal/llm"
	"github.com/Rrens/focusbot/internal/llm/openai"
)

// NewProvider creates a new DeepSeek provider
func NewProvider(apiKey, defaultModel string, timeout time.Duration) llm.Provider {
	if defaultModel == "" {
		defaultModel = "deepseek-chat"
	}
	return openai.New(openai.Options{
		Name:         "deepseek",
		APIKey:       apiKey,
		BaseURL:      "https://api.deepseek.com/v1",
		DefaultModel: defaultModel,
		Models: []string{
			"deepseek-chat",
			"deepseek-reasoner",
		},
		Timeout:   timeout,
		SetupHint: "DEEPSEEK_API_KEY is not set",
	})
}
