// Package seeder writes sample data into an empty board. Everything goes
// through the board service, so the sample posts obey the same capacity
// and validation rules as user posts. A run that fails after creating its
// topic removes it again, so the next run still sees an empty board.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/threadboard/internal/domain"
	"github.com/heartmarshall/threadboard/internal/service/board"
)

type boardService interface {
	CreateTopic(ctx context.Context, input board.CreateTopicInput) (*domain.Topic, error)
	CreatePost(ctx context.Context, input board.CreatePostInput) (*board.CreatePostResult, error)
	PurgeTopic(ctx context.Context, input board.DeleteTopicInput) error
}

type topicCounter interface {
	Count(ctx context.Context) (int, error)
}

// Result holds the outcome of a seeding run.
type Result struct {
	Skipped bool
	Topic   *domain.Topic
	Posts   int
}

// Seeder creates one sample topic with a few posts when no topics exist.
type Seeder struct {
	log    *slog.Logger
	board  boardService
	topics topicCounter
	cfg    Config
}

// New creates a new Seeder.
func New(log *slog.Logger, board boardService, topics topicCounter, cfg Config) *Seeder {
	return &Seeder{
		log:    log.With("component", "seeder"),
		board:  board,
		topics: topics,
		cfg:    cfg,
	}
}

// Run seeds the board. Any existing topic, deleted ones included, means
// the board is in use and nothing is written.
func (s *Seeder) Run(ctx context.Context) (Result, error) {
	count, err := s.topics.Count(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("count topics: %w", err)
	}
	if count > 0 {
		s.log.InfoContext(ctx, "board not empty, skipping seed", slog.Int("topics", count))
		return Result{Skipped: true}, nil
	}

	if s.cfg.DryRun {
		s.log.InfoContext(ctx, "dry run, nothing written",
			slog.String("title", s.cfg.TopicTitle),
			slog.Int("posts", len(s.cfg.Posts)),
		)
		return Result{}, nil
	}

	summary := s.cfg.TopicSummary
	topic, err := s.board.CreateTopic(ctx, board.CreateTopicInput{
		Title:   s.cfg.TopicTitle,
		Summary: &summary,
	})
	if err != nil {
		return Result{}, fmt.Errorf("create sample topic: %w", err)
	}

	result := Result{Topic: topic}
	for _, body := range s.cfg.Posts {
		res, err := s.board.CreatePost(ctx, board.CreatePostInput{TopicID: topic.ID, Body: body})
		if err != nil {
			err = fmt.Errorf("create sample post %d: %w", result.Posts+1, err)
			return Result{}, s.discard(ctx, topic, err)
		}
		result.Topic = res.Topic
		result.Posts++
	}

	s.log.InfoContext(ctx, "sample data seeded",
		slog.String("topic_id", topic.ID.String()),
		slog.Int("posts", result.Posts),
	)
	return result, nil
}

// discard removes a half-seeded topic so the next run starts from an empty
// board again. The returned error always wraps cause.
func (s *Seeder) discard(ctx context.Context, topic *domain.Topic, cause error) error {
	if err := s.board.PurgeTopic(ctx, board.DeleteTopicInput{TopicID: topic.ID}); err != nil {
		s.log.ErrorContext(ctx, "remove partial sample topic",
			slog.String("topic_id", topic.ID.String()),
			slog.String("error", err.Error()),
		)
		return errors.Join(cause, fmt.Errorf("remove partial sample topic: %w", err))
	}
	s.log.WarnContext(ctx, "seed failed, sample topic removed", slog.String("topic_id", topic.ID.String()))
	return cause
}
