package domain

import (
	"context"
	"time"
)

// DefaultSubjects are available to every user and can never be stored or deleted
var DefaultSubjects = []string{"Math", "History", "Science", "Literature"}

// IsDefaultSubject reports whether name is one of DefaultSubjects (exact match)
func IsDefaultSubject(name string) bool {
	for _, s := range DefaultSubjects {
		if s == name {
			return true
		}
	}
	return false
}

// SubjectEntry is a user-added subject
type SubjectEntry struct {
	User      string    `json:"user"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

// SubjectCreate represents the add-subject request body
type SubjectCreate struct {
	Subject string `json:"subject"`
	User    string `json:"user"`
}

// SubjectRepository defines the interface for custom subject storage
type SubjectRepository interface {
	// Create returns ErrDuplicateSubject if (user, subject) already exists
	Create(ctx context.Context, entry *SubjectEntry) error
	// ListByUser returns entries in insertion order
	ListByUser(ctx context.Context, user string) ([]SubjectEntry, error)
	// Delete returns ErrNotFound when no entry matched
	Delete(ctx context.Context, user, subject string) error
}
