package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/threadboard/internal/domain"
)

// UpdateTopic changes the title or summary of a live topic, or locks it.
// It runs under the topic row lock so it serializes with post creation.
func (s *Service) UpdateTopic(ctx context.Context, input UpdateTopicInput) (*domain.Topic, error) {
	if err := input.Validate(s.cfg); err != nil {
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
		updated = topic

		if input.Title != nil || input.Summary != nil {
			params := domain.TopicUpdateParams{Summary: input.Summary}
			if input.Title != nil {
				title := strings.TrimSpace(*input.Title)
				params.Title = &title
			}
			if params.Summary != nil {
				summary := strings.TrimSpace(*params.Summary)
				params.Summary = &summary
			}
			updated, err = s.topics.UpdateDetails(txCtx, topic.ID, params)
			if err != nil {
				return fmt.Errorf("update topic: %w", err)
			}
		}

		if input.Locked != nil && !updated.Locked {
			updated, err = s.topics.Lock(txCtx, topic.ID)
			if err != nil {
				return fmt.Errorf("lock topic: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateTopics(ctx)

	s.log.InfoContext(ctx, "topic updated",
		slog.String("topic_id", updated.ID.String()),
		slog.Bool("locked", updated.Locked),
	)

	return updated, nil
}
