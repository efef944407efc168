package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/threadboard/internal/domain"
)

// CreatePost appends a post to a topic.
//
// The topic row is locked for the whole check-and-mutate sequence. The post
// that brings the live count to the capacity limit also inserts the limit
// notice and locks the topic, all in the same transaction. Any failure rolls
// back every change, the notice included.
func (s *Service) CreatePost(ctx context.Context, input CreatePostInput) (*CreatePostResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var result *CreatePostResult
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		topic, err := s.topics.GetForUpdate(txCtx, input.TopicID)
		if err != nil {
			return fmt.Errorf("lock topic: %w", err)
		}

		if err := s.capacity.Admit(topic, input.System); err != nil {
			return fmt.Errorf("topic %s: %w", topic.ID, err)
		}

		body := input.Body
		if !input.System {
			body = strings.TrimSpace(body)
			if err := validateBody(body, s.cfg.MaxBodyLength); err != nil {
				return err
			}
		}

		post, err := s.posts.Insert(txCtx, topic.ID, body, input.System)
		if err != nil {
			return fmt.Errorf("insert post: %w", err)
		}

		count := topic.PostsCount + 1
		locked := topic.Locked

		var notice *domain.Post
		if s.capacity.Crossed(count, input.System) {
			notice, err = s.posts.Insert(txCtx, topic.ID, s.cfg.LimitNotice, true)
			if err != nil {
				return fmt.Errorf("insert limit notice: %w", err)
			}
			count++
			locked = true
		}

		updated, err := s.topics.UpdateCounters(txCtx, topic.ID, count, locked)
		if err != nil {
			return fmt.Errorf("update topic counters: %w", err)
		}

		result = &CreatePostResult{Post: post, Notice: notice, Topic: updated}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidateTopics(ctx)

	s.log.InfoContext(ctx, "post created",
		slog.String("topic_id", result.Topic.ID.String()),
		slog.String("post_id", result.Post.ID.String()),
		slog.Bool("system", input.System),
		slog.Int("posts_count", result.Topic.PostsCount),
	)
	if result.Notice != nil {
		s.log.InfoContext(ctx, "topic reached capacity",
			slog.String("topic_id", result.Topic.ID.String()),
			slog.Int("limit", s.cfg.CapacityLimit),
		)
	}

	return result, nil
}
