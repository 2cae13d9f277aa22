package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Rrens/focusbot/internal/config"
	"github.com/Rrens/focusbot/internal/domain"
	"github.com/Rrens/focusbot/internal/repository/mongo"
	"github.com/Rrens/focusbot/internal/repository/postgres"
	"github.com/Rrens/focusbot/internal/repository/redis"
	"github.com/rs/zerolog/log"
)

// Store bundles the repositories of the configured storage driver
type Store struct {
	Driver   string
	Users    domain.UserRepository
	Chats    domain.ChatRepository
	Subjects domain.SubjectRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Open connects to the configured backend and builds its repositories.
// When Redis is configured the subject list is cached in front of the store.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	var (
		store *Store
		err   error
	)

	switch cfg.Storage.Driver {
	case config.DriverMongo, "":
		store, err = openMongo(ctx, cfg.Mongo)
	case config.DriverPostgres:
		store, err = openPostgres(ctx, cfg.Database)
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Redis.Enabled() {
		store.withSubjectCache(ctx, cfg.Redis)
	}
	return store, nil
}

// cacheClient is the Redis connection backing the subject cache
type cacheClient interface {
	redis.KV
	Ping(ctx context.Context) error
	Close() error
}

// withSubjectCache falls back to the uncached store when Redis is unreachable
func (s *Store) withSubjectCache(ctx context.Context, cfg config.RedisConfig) {
	client, err := redis.NewClient(ctx, cfg)
	if err != nil {
		log.Warn().Err(err).Str("addr", cfg.Addr()).Msg("Redis unavailable, subject cache disabled")
		return
	}

	s.attachCache(client, cfg.SubjectTTL)

	log.Info().Str("addr", cfg.Addr()).Dur("ttl", cfg.SubjectTTL).Msg("Subject cache enabled")
}

// attachCache puts the subject cache in front of the store and makes
// readiness and shutdown cover the cache connection too.
func (s *Store) attachCache(client cacheClient, ttl time.Duration) {
	s.Subjects = redis.NewSubjectCache(s.Subjects, client, ttl)

	pingStore := s.ping
	s.ping = func(ctx context.Context) error {
		if pingStore != nil {
			if err := pingStore(ctx); err != nil {
				return err
			}
		}
		if err := client.Ping(ctx); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		return nil
	}

	closeStore := s.close
	s.close = func(ctx context.Context) error {
		if err := client.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
		if closeStore == nil {
			return nil
		}
		return closeStore(ctx)
	}
}

func openMongo(ctx context.Context, cfg config.MongoConfig) (*Store, error) {
	db, err := mongo.NewDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongo: %w", err)
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		// Queries still work without indexes; only duplicate detection degrades
		log.Warn().Err(err).Msg("Failed to ensure mongo indexes")
	}

	log.Info().Str("database", cfg.Database).Msg("Connected to MongoDB")

	return &Store{
		Driver:   config.DriverMongo,
		Users:    mongo.NewUserRepository(db),
		Chats:    mongo.NewChatRepository(db),
		Subjects: mongo.NewSubjectRepository(db),
		ping:     db.Ping,
		close:    db.Close,
	}, nil
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	if cfg.AutoMigrate {
		if err := postgres.RunMigrations(cfg.DSN()); err != nil {
			return nil, err
		}
	}

	db, err := postgres.NewDB(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	log.Info().Msg("Connected to PostgreSQL")

	return &Store{
		Driver:   config.DriverPostgres,
		Users:    postgres.NewUserRepository(db.Pool),
		Chats:    postgres.NewChatRepository(db.Pool),
		Subjects: postgres.NewSubjectRepository(db.Pool),
		ping:     db.Ping,
		close: func(context.Context) error {
			db.Close()
			return nil
		},
	}, nil
}

// Ping verifies the backend is reachable
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

// Close releases the backend connection
func (s *Store) Close(ctx context.Context) error {
	if s.close == nil {
		return nil
	}
	return s.close(ctx)
}
