package board

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteTopic soft-deletes a topic. Its posts stay in place and disappear
// from listings with their parent. Deleting twice returns domain.ErrNotFound.
func (s *Service) DeleteTopic(ctx context.Context, input DeleteTopicInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.topics.SoftDelete(ctx, input.TopicID); err != nil {
		return fmt.Errorf("delete topic: %w", err)
	}

	s.invalidateTopics(ctx)

	s.log.InfoContext(ctx, "topic deleted",
		slog.String("topic_id", input.TopicID.String()),
	)

	return nil
}

// PurgeTopic removes a topic and all of its posts for good. It exists for
// maintenance callers undoing their own writes; the request layer only
// soft-deletes.
func (s *Service) PurgeTopic(ctx context.Context, input DeleteTopicInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.topics.Purge(ctx, input.TopicID); err != nil {
		return fmt.Errorf("purge topic: %w", err)
	}

	s.invalidateTopics(ctx)

	s.log.InfoContext(ctx, "topic purged",
		slog.String("topic_id", input.TopicID.String()),
	)

	return nil
}
