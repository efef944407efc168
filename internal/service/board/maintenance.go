package board

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/threadboard/internal/domain"
)

// ReconcileCounts recomputes posts_count of every live topic from its live
// posts and returns how many topics were corrected.
func (s *Service) ReconcileCounts(ctx context.Context) (int64, error) {
	fixed, err := s.topics.ReconcileCounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("reconcile counts: %w", err)
	}

	if fixed > 0 {
		s.invalidateTopics(ctx)
	}

	s.log.InfoContext(ctx, "post counters reconciled", slog.Int64("fixed", fixed))
	return fixed, nil
}

// PurgeDeletedPosts hard-deletes posts soft-deleted more than retention ago.
// Only dead rows are removed, so topic counters are unaffected.
func (s *Service) PurgeDeletedPosts(ctx context.Context, retention time.Duration) (int64, error) {
	if retention <= 0 {
		return 0, domain.NewValidationError("retention", "must be positive")
	}

	before := s.now().Add(-retention)
	purged, err := s.posts.PurgeDeleted(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("purge deleted posts: %w", err)
	}

	s.log.InfoContext(ctx, "deleted posts purged",
		slog.Int64("purged", purged),
		slog.Time("before", before),
	)
	return purged, nil
}
