package huggingface

import (
	"time"

	"github.com/Rrens/focusbot/internal/llm"
	"github.com/Rrens/focusbot/internal/llm/openai"
)

// DefaultBaseURL is the Hugging Face router endpoint for Novita-hosted models
const DefaultBaseURL = "https://router.huggingface.co/novita/v3/openai"

// NewProvider creates a provider for the Hugging Face inference router.
// The router speaks the OpenAI chat completion protocol.
func NewProvider(apiKey, baseURL, defaultModel string, timeout time.Duration) llm.Provider {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if defaultModel == "" {
		defaultModel = "deepseek/deepseek-r1-turbo"
	}
	return openai.New(openai.Options{
		Name:         "huggingface",
		APIKey:       apiKey,
		BaseURL:      baseURL,
		DefaultModel: defaultModel,
		Models: []string{
			"deepseek/deepseek-r1-turbo",
			"deepseek/deepseek-v3-0324",
			"meta-llama/llama-3.1-8b-instruct",
			"qwen/qwen2.5-7b-instruct",
		},
		Timeout:   timeout,
		SetupHint: "HF_API_KEY/HF_TOKEN is not set",
	})
}
