package board

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadboard/internal/domain"
)

// GetTopic returns a live topic. Soft-deleted topics are reported as
// domain.ErrNotFound.
func (s *Service) GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if topicID == uuid.Nil {
		return nil, domain.NewValidationError("topic_id", "required")
	}

	topic, err := s.topics.GetByID(ctx, topicID)
	if err != nil {
		return nil, fmt.Errorf("get topic: %w", err)
	}
	if topic.IsDeleted() {
		return nil, fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}
	return topic, nil
}

// GetPost returns a live post of a live topic.
func (s *Service) GetPost(ctx context.Context, topicID, postID uuid.UUID) (*domain.Post, error) {
	if postID == uuid.Nil {
		return nil, domain.NewValidationError("post_id", "required")
	}
	if _, err := s.GetTopic(ctx, topicID); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, topicID, postID)
	if err != nil {
		return nil, fmt.Errorf("get post: %w", err)
	}
	return post, nil
}
