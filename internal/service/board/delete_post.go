package board

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/threadboard/internal/domain"
)

// DeletePost soft-deletes a post and recounts the topic's live posts.
// The recount replaces the stored counter rather than decrementing it, so a
// drifted counter heals on the next delete. The lock flag is left as is.
func (s *Service) DeletePost(ctx context.Context, input DeletePostInput) (*domain.Topic, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var updated *domain.Topic
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		topic, err := s.topics.GetForUpdate(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("lock topic: %w", err)
		}
		if topic.IsDeleted() {
			return fmt.Errorf("topic %s: %w", topic.ID, domain.ErrNotFound)
		}

		if err := s.posts.SoftDelete(txCtx, topic.ID, input.PostID); err != nil {
			return fmt.Errorf("delete post: %w", err)
		}

		count, err := s.posts.CountLive(txCtx, topic.ID)
		if err != nil {
			return fmt.Errorf("count posts: %w", err)
		}

		updated, err = s.topics.UpdateCounters(txCtx, topic.ID, count, topic.Locked)
		if err != nil {
			return fmt.Errorf("update topic counters: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateTopics(ctx)

	s.log.InfoContext(ctx, "post deleted",
		slog.String("topic_id", input.TopicID.String()),
		slog.String("post_id", input.PostID.String()),
		slog.Int("posts_count", updated.PostsCount),
	)

	return updated, nil
}
