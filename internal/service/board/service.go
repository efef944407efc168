// Package board is the write-path consistency engine of the discussion
// board. Every check-and-mutate sequence on a topic runs inside one
// transaction that holds the topic's row lock, so the capacity limit,
// the lock transition and the denormalized post counter stay consistent
// under concurrent callers. The service itself keeps no state between
// calls.
package board

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadboard/internal/domain"
)

type topicRepo interface {
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
	GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	GetForUpdate(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	List(ctx context.Context) ([]*domain.Topic, error)
	Count(ctx context.Context) (int, error)
	UpdateCounters(ctx context.Context, topicID uuid.UUID, postsCount int, locked bool) (*domain.Topic, error)
	UpdateDetails(ctx context.Context, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error)
	Lock(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	Purge(ctx context.Context, topicID uuid.UUID) error
	SoftDelete(ctx context.Context, topicID uuid.UUID) error
	ReconcileCounts(ctx context.Context) (int64, error)
}

type postRepo interface {
	GetByID(ctx context.Context, topicID, postID uuid.UUID) (*domain.Post, error)
	CountLive(ctx context.Context, topicID uuid.UUID) (int, error)
	List(ctx context.Context, topicID uuid.UUID, limit, offset int) ([]*domain.Post, int, error)
	Insert(ctx context.Context, topicID uuid.UUID, body string, isSystem bool) (*domain.Post, error)
	SoftDelete(ctx context.Context, topicID, postID uuid.UUID) error
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)
}

type topicCache interface {
	// GetTopics returns nil topics on a miss, plus the generation to pass
	// to SetTopics.
	GetTopics(ctx context.Context) ([]*domain.Topic, int64, error)
	SetTopics(ctx context.Context, gen int64, topics []*domain.Topic) error
	Invalidate(ctx context.Context) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Config holds the engine-wide rules.
type Config struct {
	CapacityLimit    int
	MaxBodyLength    int
	MaxTitleLength   int
	MaxSummaryLength int
	LimitNotice      string
	MaxPageSize      int
}

// Service implements topic and post operations.
type Service struct {
	topics   topicRepo
	posts    postRepo
	cache    topicCache
	tx       txManager
	cfg      Config
	capacity domain.Capacity
	now      func() time.Time
	log      *slog.Logger
}

// NewService creates a new board service.
func NewService(
	log *slog.Logger,
	cfg Config,
	topics topicRepo,
	posts postRepo,
	cache topicCache,
	tx txManager,
) *Service {
	return &Service{
		topics:   topics,
		posts:    posts,
		cache:    cache,
		tx:       tx,
		cfg:      cfg,
		capacity: domain.Capacity{Limit: cfg.CapacityLimit},
		now:      time.Now,
		log:      log.With("service", "board"),
	}
}

// invalidateTopics drops the cached topic list after a committed mutation.
// A failure only means the cache serves stale data until its TTL expires.
func (s *Service) invalidateTopics(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.WarnContext(ctx, "invalidate topic cache", slog.String("error", err.Error()))
	}
}

// clampPage bounds limit to [1, maxSize] and offset to >= 0.
func clampPage(limit, offset, maxSize int) (int, int) {
	limit = max(1, min(limit, maxSize))
	offset = max(0, offset)
	return limit, offset
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
