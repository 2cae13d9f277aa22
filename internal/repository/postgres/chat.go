package postgres

import (
	"context"
	"fmt"

	"github.com/Rrens/focusbot/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ChatRepository implements domain.ChatRepository
type ChatRepository struct {
	pool *pgxpool.Pool
}

// NewChatRepository creates a new chat repository
func NewChatRepository(pool *pgxpool.Pool) *ChatRepository {
	return &ChatRepository{pool: pool}
}

func (r *ChatRepository) Create(ctx context.Context, turn *domain.ChatTurn) error {
	id := uuid.New()
	query := `
		INSERT INTO chat_turns (id, user_id, subject, message, reply, timestamp, rejected)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := r.pool.Exec(ctx, query,
		id,
		turn.User,
		turn.Subject,
		turn.Message,
		turn.Reply,
		turn.Timestamp,
		turn.Rejected,
	)
	if err != nil {
		return fmt.Errorf("failed to create chat turn: %w", err)
	}
	turn.ID = id.String()
	return nil
}

func (r *ChatRepository) ListByUser(ctx context.Context, user, subject string, limit int) ([]domain.ChatTurn, error) {
	query := `
		SELECT id, user_id, subject, message, reply, timestamp, rejected
		FROM chat_turns
		WHERE user_id = $1 AND rejected = FALSE AND ($2 = '' OR subject = $2)
		ORDER BY timestamp DESC
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, user, subject, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list chat turns: %w", err)
	}
	defer rows.Close()

	turns := make([]domain.ChatTurn, 0)
	for rows.Next() {
		var t domain.ChatTurn
		var id uuid.UUID
		if err := rows.Scan(
			&id,
			&t.User,
			&t.Subject,
			&t.Message,
			&t.Reply,
			&t.Timestamp,
			&t.Rejected,
		); err != nil {
			return nil, fmt.Errorf("failed to scan chat turn: %w", err)
		}
		t.ID = id.String()
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate chat turns: %w", err)
	}
	return turns, nil
}

func (r *ChatRepository) Delete(ctx context.Context, id, user string) error {
	turnID, err := uuid.Parse(id)
	if err != nil {
		return domain.ErrInvalidID
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM chat_turns WHERE id = $1 AND user_id = $2`, turnID, user)
	if err != nil {
		return fmt.Errorf("failed to delete chat turn: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ChatRepository) DeleteAllByUser(ctx context.Context, user string) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM chat_turns WHERE user_id = $1`, user)
	if err != nil {
		return 0, fmt.Errorf("failed to delete chat turns: %w", err)
	}
	return tag.RowsAffected(), nil
}
