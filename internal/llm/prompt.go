package llm

import (
	"fmt"
	"regexp"
	"strings"
)

// reasoningPattern matches <think>...</think> traces emitted by reasoning models
var reasoningPattern = regexp.MustCompile(`(?s)<think>.*?</think>`)

// BuildTutorPrompt creates the system prompt for a subject tutor.
// The first turn asks for an introduction; later turns keep the model on subject.
func BuildTutorPrompt(subject string, conversationStarted bool) string {
	if !conversationStarted {
		return fmt.Sprintf(
			"You are a helpful tutor for %[1]s. Start by greeting the user warmly and briefly "+
				"introducing yourself as their %[1]s tutor. Then ask how you can help them with %[1]s today. "+
				"Keep it friendly and encouraging.",
			subject,
		)
	}

	return fmt.Sprintf(
		"You are a helpful tutor specialized in %[1]s. Your role is to help students with %[1]s-related topics. "+
			"If a student asks about topics unrelated to %[1]s, politely redirect them to %[1]s topics "+
			"and suggest relevant %[1]s questions they could ask instead. "+
			"Always be encouraging and helpful, even when redirecting. "+
			"Answer %[1]s questions clearly and briefly.",
		subject,
	)
}

// StripReasoning removes every <think>...</think> span and trims the rest
func StripReasoning(content string) string {
	return strings.TrimSpace(reasoningPattern.ReplaceAllString(content, ""))
}
