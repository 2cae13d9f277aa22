package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Rrens/focusbot/internal/domain"
	"github.com/Rrens/focusbot/internal/repository/redis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	pingErr error
	closed  bool
}

func (f *fakeCache) Get(context.Context, string) ([]byte, error)              { return nil, nil }
func (f *fakeCache) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (f *fakeCache) Incr(context.Context, string) (int64, error)              { return 1, nil }
func (f *fakeCache) Ping(context.Context) error                               { return f.pingErr }

func (f *fakeCache) Close() error {
	f.closed = true
	return nil
}

type noSubjects struct{}

func (noSubjects) Create(context.Context, *domain.SubjectEntry) error { return nil }
func (noSubjects) ListByUser(context.Context, string) ([]domain.SubjectEntry, error) {
	return []domain.SubjectEntry{}, nil
}
func (noSubjects) Delete(context.Context, string, string) error { return nil }

func TestStore_AttachCache(t *testing.T) {
	ctx := context.Background()
	storeClosed := false
	store := &Store{
		Subjects: noSubjects{},
		ping:     func(context.Context) error { return nil },
		close: func(context.Context) error {
			storeClosed = true
			return nil
		},
	}
	cache := &fakeCache{}

	store.attachCache(cache, time.Minute)

	_, ok := store.Subjects.(*redis.SubjectCache)
	assert.True(t, ok)
	require.NoError(t, store.Ping(ctx))

	cache.pingErr = errors.New("connection refused")
	err := store.Ping(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "redis")

	require.NoError(t, store.Close(ctx))
	assert.True(t, cache.closed)
	assert.True(t, storeClosed)
}

func TestStore_NilHooks(t *testing.T) {
	store := &Store{}
	assert.NoError(t, store.Ping(context.Background()))
	assert.NoError(t, store.Close(context.Background()))
}
