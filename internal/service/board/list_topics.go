package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/threadboard/internal/domain"
)

// ListTopics returns all live topics, newest first. The result is served
// from the topic cache when it holds a copy; on a miss the database result
// is stored under the cache generation read before the query, so a write
// committed in between makes the fill a no-op.
func (s *Service) ListTopics(ctx context.Context) ([]*domain.Topic, error) {
	cached, gen, cacheErr := s.cache.GetTopics(ctx)
	if cacheErr != nil {
		s.log.WarnContext(ctx, "read topic cache", slog.String("error", cacheErr.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	topics, err := s.topics.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}

	if cacheErr == nil {
		if err := s.cache.SetTopics(ctx, gen, topics); err != nil {
			s.log.WarnContext(ctx, "write topic cache", slog.String("error", err.Error()))
		}
	}
	return topics, nil
}
