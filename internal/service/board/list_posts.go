package board

import (
	"context"
	"fmt"
)

// ListPosts returns one page of a topic's live posts in creation order and
// the total number of live posts.
func (s *Service) ListPosts(ctx context.Context, input ListPostsInput) (*ListPostsResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.GetTopic(ctx, input.TopicID); err != nil {
		return nil, err
	}

	limit, offset := clampPage(input.Limit, input.Offset, s.cfg.MaxPageSize)

	items, total, err := s.posts.List(ctx, input.TopicID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	return &ListPostsResult{
		Items:  items,
		Total:  total,
		Limit:  limit,
		Offset: offset,
	}, nil
}
