package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/threadboard/internal/domain"
)

// CreateTopic creates an empty, open topic.
func (s *Service) CreateTopic(ctx context.Context, input CreateTopicInput) (*domain.Topic, error) {
	if err := input.Validate(s.cfg); err != nil {
		return nil, err
	}

	topic, err := s.topics.Create(ctx, &domain.Topic{
		Title:   strings.TrimSpace(input.Title),
		Summary: trimOrNil(input.Summary),
	})
	if err != nil {
		return nil, fmt.Errorf("create topic: %w", err)
	}

	s.invalidateTopics(ctx)

	s.log.InfoContext(ctx, "topic created",
		slog.String("topic_id", topic.ID.String()),
		slog.String("title", topic.Title),
	)

	return topic, nil
}
