package llm_test

import (
	"strings"
	"testing"

	"github.com/Rrens/focusbot/internal/llm"
)

func TestBuildTutorPrompt_FirstTurn(t *testing.T) {
	prompt := llm.BuildTutorPrompt("Chemistry", false)

	mustContain := []string{
		"You are a helpful tutor for Chemistry.",
		"introducing yourself as their Chemistry tutor",
		"how you can help them with Chemistry today",
	}
	for _, s := range mustContain {
		if !strings.Contains(prompt, s) {
			t.Errorf("prompt should contain %q, got %q", s, prompt)
		}
	}

	if strings.Contains(prompt, "redirect") {
		t.Errorf("first-turn prompt should not contain redirect instructions: %q", prompt)
	}
}

func TestBuildTutorPrompt_LaterTurn(t *testing.T) {
	prompt := llm.BuildTutorPrompt("History", true)

	mustContain := []string{
		"tutor specialized in History",
		"help students with History-related topics",
		"unrelated to History, politely redirect them to History topics",
		"Answer History questions clearly and briefly.",
	}
	for _, s := range mustContain {
		if !strings.Contains(prompt, s) {
			t.Errorf("prompt should contain %q, got %q", s, prompt)
		}
	}

	if strings.Contains(prompt, "introducing yourself") {
		t.Errorf("later-turn prompt should not ask for an introduction: %q", prompt)
	}
}

func TestBuildTutorPrompt_Deterministic(t *testing.T) {
	if llm.BuildTutorPrompt("Math", true) != llm.BuildTutorPrompt("Math", true) {
		t.Error("prompt should be deterministic")
	}
}

func TestStripReasoning(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{
			"no trace",
			"4, the sum of 2 and 2.",
			"4, the sum of 2 and 2.",
		},
		{
			"leading trace",
			"<think>calc</think>4, the sum of 2 and 2.",
			"4, the sum of 2 and 2.",
		},
		{
			"multiline trace",
			"<think>\nfirst\nsecond\n</think>\n\nPhotosynthesis makes sugar.",
			"Photosynthesis makes sugar.",
		},
		{
			"non-greedy between traces",
			"<think>a</think>Keep this<think>b</think> and this",
			"Keep this and this",
		},
		{
			"unterminated trace is kept",
			"<think>never closed",
			"<think>never closed",
		},
		{
			"only whitespace left",
			"  <think>x</think>  ",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := llm.StripReasoning(tt.content)
			if result != tt.expected {
				t.Errorf("StripReasoning() = %q, want %q", result, tt.expected)
			}
		})
	}
}
