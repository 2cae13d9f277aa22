package postgres

import (
	"context"
	"fmt"

	"github.com/Rrens/focusbot/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubjectRepository implements domain.SubjectRepository
type SubjectRepository struct {
	pool *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(pool *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{pool: pool}
}

func (r *SubjectRepository) Create(ctx context.Context, entry *domain.SubjectEntry) error {
	query := `
		INSERT INTO user_subjects (user_id, subject, created_at)
		VALUES ($1, $2, $3)
	`
	_, err := r.pool.Exec(ctx, query, entry.User, entry.Subject, entry.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateSubject
		}
		return fmt.Errorf("failed to create subject: %w", err)
	}
	return nil
}

func (r *SubjectRepository) ListByUser(ctx context.Context, user string) ([]domain.SubjectEntry, error) {
	query := `
		SELECT user_id, subject, created_at
		FROM user_subjects
		WHERE user_id = $1
		ORDER BY id ASC
	`
	rows, err := r.pool.Query(ctx, query, user)
	if err != nil {
		return nil, fmt.Errorf("failed to list subjects: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.SubjectEntry, 0)
	for rows.Next() {
		var e domain.SubjectEntry
		if err := rows.Scan(&e.User, &e.Subject, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan subject: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *SubjectRepository) Delete(ctx context.Context, user, subject string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM user_subjects WHERE user_id = $1 AND subject = $2`, user, subject)
	if err != nil {
		return fmt.Errorf("failed to delete subject: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
