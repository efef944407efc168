// Package post implements the Post repository using PostgreSQL.
// Posts are soft-deleted; every count and listing here sees live posts only.
package post

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/threadboard/internal/adapter/postgres"
	"github.com/heartmarshall/threadboard/internal/domain"
)

// Repo provides post persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new post repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const tableName = "posts"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	columns   = []string{"id", "topic_id", "body", "is_system", "deleted_at", "created_at"}
	returning = "RETURNING id, topic_id, body, is_system, deleted_at, created_at"

	live = sq.Eq{"deleted_at": nil}
)

// row mirrors the posts table for pgxscan.
type row struct {
	ID        uuid.UUID  `db:"id"`
	TopicID   uuid.UUID  `db:"topic_id"`
	Body      string     `db:"body"`
	IsSystem  bool       `db:"is_system"`
	DeletedAt *time.Time `db:"deleted_at"`
	CreatedAt time.Time  `db:"created_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a live post that belongs to topicID.
// Returns domain.ErrNotFound if the post is missing, deleted, or owned by
// another topic.
func (r *Repo) GetByID(ctx context.Context, topicID, postID uuid.UUID) (*domain.Post, error) {
	sqlStr, args, err := psql.Select(columns...).
		From(tableName).
		Where(sq.Eq{"id": postID, "topic_id": topicID}).
		Where(live).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get post: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sqlStr, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, "post", postID)
	}
	return toDomain(dst), nil
}

// CountLive returns the authoritative number of live posts in a topic.
func (r *Repo) CountLive(ctx context.Context, topicID uuid.UUID) (int, error) {
	sqlStr, args, err := psql.Select("count(*)").
		From(tableName).
		Where(sq.Eq{"topic_id": topicID}).
		Where(live).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count posts: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "posts of topic", topicID)
	}
	return count, nil
}

// List returns one page of live posts in creation order together with the
// total number of live posts. Returns an empty slice (not nil) for an empty page.
func (r *Repo) List(ctx context.Context, topicID uuid.UUID, limit, offset int) ([]*domain.Post, int, error) {
	total, err := r.CountLive(ctx, topicID)
	if err != nil {
		return nil, 0, fmt.Errorf("count posts: %w", err)
	}

	sqlStr, args, err := psql.Select(columns...).
		From(tableName).
		Where(sq.Eq{"topic_id": topicID}).
		Where(live).
		OrderBy("seq ASC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list posts: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sqlStr, args...); err != nil {
		return nil, 0, fmt.Errorf("list posts: %w", postgres.MapError(err, "posts of topic", topicID))
	}

	posts := make([]*domain.Post, len(rows))
	for i := range rows {
		posts[i] = toDomain(rows[i])
	}
	return posts, total, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Insert appends a post to a topic. The caller is responsible for the
// topic's counter; this only writes the post row.
func (r *Repo) Insert(ctx context.Context, topicID uuid.UUID, body string, isSystem bool) (*domain.Post, error) {
	sqlStr, args, err := psql.Insert(tableName).
		Columns("topic_id", "body", "is_system").
		Values(topicID, body, isSystem).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build insert post: %w", err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, "post in topic", topicID)
	}
	return toDomain(dst), nil
}

// SoftDelete marks a live post of topicID as deleted.
// Returns domain.ErrNotFound if no such live post exists under that topic.
func (r *Repo) SoftDelete(ctx context.Context, topicID, postID uuid.UUID) error {
	sqlStr, args, err := psql.Update(tableName).
		Set("deleted_at", sq.Expr("now()")).
		Where(sq.Eq{"id": postID, "topic_id": topicID}).
		Where(live).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete post: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "post", postID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("post %s: %w", postID, domain.ErrNotFound)
	}
	return nil
}

// PurgeDeleted physically removes posts soft-deleted before the threshold.
// Live posts are never touched, so topic counters stay valid.
func (r *Repo) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	sqlStr, args, err := psql.Delete(tableName).
		Where(sq.NotEq{"deleted_at": nil}).
		Where(sq.Lt{"deleted_at": before}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build purge posts: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sqlStr, args...)
	if err != nil {
		return 0, fmt.Errorf("purge posts: %w", postgres.MapError(err, "posts", nil))
	}
	return tag.RowsAffected(), nil
}

// toDomain converts a scanned row into a domain.Post.
func toDomain(r row) *domain.Post {
	return &domain.Post{
		ID:        r.ID,
		TopicID:   r.TopicID,
		Body:      r.Body,
		IsSystem:  r.IsSystem,
		DeletedAt: r.DeletedAt,
		CreatedAt: r.CreatedAt,
	}
}
