package domain

import (
	"context"
	"time"
)

// GuestUser is the identity of callers without a valid token
const GuestUser = "guest"

// HistoryLimit caps the number of turns returned by a history listing
const HistoryLimit = 50

// HistoryTimeLayout renders timestamps as "Jan 02, 2006 at 03:04 PM"
const HistoryTimeLayout = "Jan 02, 2006 at 03:04 PM"

// ChatTurn is one accepted question/answer exchange
type ChatTurn struct {
	ID        string    `json:"id"`
	User      string    `json:"user"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Reply     string    `json:"reply"`
	Timestamp time.Time `json:"timestamp"`
	Rejected  bool      `json:"rejected"`
}

// ChatRequest represents a tutoring message from the client
type ChatRequest struct {
	Message             string `json:"message"`
	Subject             string `json:"subject"`
	ConversationStarted bool   `json:"conversation_started"`
}

// ChatResponse carries the cleaned model reply
type ChatResponse struct {
	Reply string `json:"reply"`
}

// HistoryEntry is a ChatTurn shaped for the history listing
type HistoryEntry struct {
	ID            string `json:"id"`
	Subject       string `json:"subject"`
	Message       string `json:"message"`
	Reply         string `json:"reply"`
	Timestamp     string `json:"timestamp"`
	FormattedTime string `json:"formatted_time"`
	Rejected      bool   `json:"rejected"`
}

// NewHistoryEntry formats a stored turn for display
func NewHistoryEntry(turn ChatTurn) HistoryEntry {
	entry := HistoryEntry{
		ID:       turn.ID,
		Subject:  turn.Subject,
		Message:  turn.Message,
		Reply:    turn.Reply,
		Rejected: turn.Rejected,
	}
	if !turn.Timestamp.IsZero() {
		ts := turn.Timestamp.UTC()
		entry.Timestamp = ts.Format(time.RFC3339)
		entry.FormattedTime = ts.Format(HistoryTimeLayout)
	}
	return entry
}

// ChatRepository defines the interface for chat turn storage
type ChatRepository interface {
	Create(ctx context.Context, turn *ChatTurn) error
	// ListByUser returns non-rejected turns, newest first. An empty subject matches all.
	ListByUser(ctx context.Context, user, subject string, limit int) ([]ChatTurn, error)
	// Delete removes the turn matching both id and user.
	// Returns ErrInvalidID for malformed ids and ErrNotFound when nothing matched.
	Delete(ctx context.Context, id, user string) error
	DeleteAllByUser(ctx context.Context, user string) (int64, error)
}
