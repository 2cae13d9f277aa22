package huggingface_test

import (
	"testing"
	"time"

	"github.com/Rrens/focusbot/internal/llm/deepseek"
	"github.com/Rrens/focusbot/internal/llm/huggingface"
	"github.com/stretchr/testify/assert"
)

func TestNewProvider_Defaults(t *testing.T) {
	p := huggingface.NewProvider("hf-key", "", "", time.Minute)
	assert.Equal(t, "huggingface", p.Name())
	assert.Equal(t, "deepseek/deepseek-r1-turbo", p.DefaultModel())
	assert.True(t, p.IsConfigured())

	unconfigured := huggingface.NewProvider("", "", "custom/model", time.Minute)
	assert.False(t, unconfigured.IsConfigured())
	assert.Equal(t, "custom/model", unconfigured.DefaultModel())
}

func TestDeepSeekProvider_Defaults(t *testing.T) {
	p := deepseek.NewProvider("ds-key", "", time.Minute)
	assert.Equal(t, "deepseek", p.Name())
	assert.Equal(t, "deepseek-chat", p.DefaultModel())
	assert.Contains(t, p.AvailableModels(), "deepseek-reasoner")
}
