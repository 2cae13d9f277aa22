package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/Rrens/focusbot/internal/domain"
	"github.com/rs/zerolog/log"
)

const (
	subjectListPrefix = "subjects:list:"
	subjectGenPrefix  = "subjects:gen:"
	defaultSubjectTTL = 10 * time.Minute
)

// KV is the subset of cache operations the subject cache needs
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Incr(ctx context.Context, key string) (int64, error)
}

// SubjectCache is a read-through cache in front of a SubjectRepository.
// Cached lists are keyed by a per-user generation that every write bumps,
// so a list loaded before a write can never be served after it.
// Cache failures are logged and never fail the request.
type SubjectCache struct {
	next domain.SubjectRepository
	kv   KV
	ttl  time.Duration
}

// NewSubjectCache wraps next with a cache stored in kv
func NewSubjectCache(next domain.SubjectRepository, kv KV, ttl time.Duration) *SubjectCache {
	if ttl <= 0 {
		ttl = defaultSubjectTTL
	}
	return &SubjectCache{next: next, kv: kv, ttl: ttl}
}

func generationKey(user string) string {
	return subjectGenPrefix + user
}

func listKey(user string, gen int64) string {
	return fmt.Sprintf("%s%s:%d", subjectListPrefix, user, gen)
}

func (c *SubjectCache) generation(ctx context.Context, user string) (int64, error) {
	data, err := c.kv.Get(ctx, generationKey(user))
	if err != nil || data == nil {
		return 0, err
	}
	return strconv.ParseInt(string(data), 10, 64)
}

func (c *SubjectCache) Create(ctx context.Context, entry *domain.SubjectEntry) error {
	if err := c.next.Create(ctx, entry); err != nil {
		return err
	}
	c.invalidate(ctx, entry.User)
	return nil
}

func (c *SubjectCache) ListByUser(ctx context.Context, user string) ([]domain.SubjectEntry, error) {
	// The generation is read before the store so a concurrent write moves
	// readers to a new key even if this list is stored late.
	gen, err := c.generation(ctx, user)
	if err != nil {
		log.Warn().Err(err).Str("user", user).Msg("subject cache read failed")
		return c.next.ListByUser(ctx, user)
	}
	key := listKey(user, gen)

	data, err := c.kv.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("subject cache read failed")
	} else if data != nil {
		var entries []domain.SubjectEntry
		if err := json.Unmarshal(data, &entries); err == nil {
			return entries, nil
		}
	}

	entries, err := c.next.ListByUser(ctx, user)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(entries); err == nil {
		if err := c.kv.Set(ctx, key, data, c.ttl); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("subject cache write failed")
		}
	}
	return entries, nil
}

func (c *SubjectCache) Delete(ctx context.Context, user, subject string) error {
	if err := c.next.Delete(ctx, user, subject); err != nil {
		return err
	}
	c.invalidate(ctx, user)
	return nil
}

func (c *SubjectCache) invalidate(ctx context.Context, user string) {
	if _, err := c.kv.Incr(ctx, generationKey(user)); err != nil {
		log.Warn().Err(err).Str("user", user).Msg("subject cache invalidation failed")
	}
}
