package service

import "strings"

// ReplyClassifier decides whether a reply redirects the student off-topic.
// Redirect replies are returned to the caller but never persisted.
type ReplyClassifier interface {
	IsRedirect(reply string) bool
}

// DefaultRedirectPhrases mark a reply as a redirect when any appears in it
var DefaultRedirectPhrases = []string{
	"apologize",
	"sorry",
	"currently focused",
	"unrelated",
	"redirect",
	"instead",
	"related to",
	"focused on",
}

// PhraseClassifier flags replies containing any trigger phrase, case-insensitively
type PhraseClassifier struct {
	phrases []string
}

// NewPhraseClassifier lowercases phrases once. With no phrases it uses DefaultRedirectPhrases.
func NewPhraseClassifier(phrases ...string) *PhraseClassifier {
	if len(phrases) == 0 {
		phrases = DefaultRedirectPhrases
	}
	lowered := make([]string, len(phrases))
	for i, p := range phrases {
		lowered[i] = strings.ToLower(p)
	}
	return &PhraseClassifier{phrases: lowered}
}

func (c *PhraseClassifier) IsRedirect(reply string) bool {
	lower := strings.ToLower(reply)
	for _, p := range c.phrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
