// Package topic implements the Topic repository using PostgreSQL.
// It provides creation, row-locked reads, counter/lock updates, soft
// deletion, and the live-topic listing.
package topic

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

// Repo provides topic persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new topic repository. db is normally a *pgxpool.Pool;
// inside TxManager.RunInTx the transaction from the context is used instead.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

const tableName = "topics"

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	columns = []string{
		"id", "title", "summary", "locked", "posts_count",
		"deleted_at", "created_at", "updated_at",
	}
	returning = "RETURNING id, title, summary, locked, posts_count, deleted_at, created_at, updated_at"
)

// row mirrors the topics table for pgxscan.
type row struct {
	ID         uuid.UUID  `db:"id"`
	Title      string     `db:"title"`
	Summary    *string    `db:"summary"`
	Locked     bool       `db:"locked"`
	PostsCount int        `db:"posts_count"`
	DeletedAt  *time.Time `db:"deleted_at"`
	CreatedAt  time.Time  `db:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at"`
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a topic by primary key, including soft-deleted topics.
// Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) GetByID(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	query := psql.Select(columns...).From(tableName).Where(sq.Eq{"id": topicID})
	return r.getOne(ctx, query, "topic", topicID)
}

// GetForUpdate returns a topic and holds an exclusive row lock on it until
// the surrounding transaction ends. It must be called inside RunInTx;
// outside a transaction the lock would be released immediately.
func (r *Repo) GetForUpdate(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	if !postgres.InTx(ctx) {
		return nil, fmt.Errorf("topic %s: get for update outside transaction", topicID)
	}
	query := psql.Select(columns...).From(tableName).Where(sq.Eq{"id": topicID}).Suffix("FOR UPDATE")
	return r.getOne(ctx, query, "topic", topicID)
}

// List returns all live (not soft-deleted) topics, newest first.
// Returns an empty slice (not nil) when there are none.
func (r *Repo) List(ctx context.Context) ([]*domain.Topic, error) {
	sqlStr, args, err := psql.Select(columns...).
		From(tableName).
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("seq DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list topics: %w", err)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, sqlStr, args...); err != nil {
		return nil, fmt.Errorf("list topics: %w", postgres.MapError(err, "topics", nil))
	}

	topics := make([]*domain.Topic, len(rows))
	for i := range rows {
		topics[i] = toDomain(rows[i])
	}
	return topics, nil
}

// Count returns the number of topics, including soft-deleted ones.
func (r *Repo) Count(ctx context.Context) (int, error) {
	sqlStr, args, err := psql.Select("count(*)").From(tableName).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build count topics: %w", err)
	}

	var count int
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, sqlStr, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("count topics: %w", err)
	}
	return count, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new empty, open topic and returns the persisted row.
func (r *Repo) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	query := psql.Insert(tableName).
		Columns("title", "summary").
		Values(topic.Title, topic.Summary).
		Suffix(returning)
	return r.getOne(ctx, query, "create topic", nil)
}

// UpdateCounters writes the denormalized post counter and the lock flag.
// Callers hold the row lock from GetForUpdate.
func (r *Repo) UpdateCounters(ctx context.Context, topicID uuid.UUID, postsCount int, locked bool) (*domain.Topic, error) {
	query := psql.Update(tableName).
		Set("posts_count", postsCount).
		Set("locked", locked).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": topicID}).
		Suffix(returning)
	return r.getOne(ctx, query, "topic", topicID)
}

// UpdateDetails applies a partial update of title and summary.
// A Summary of ptr("") clears it. Returns domain.ErrNotFound for a missing
// or soft-deleted topic.
func (r *Repo) UpdateDetails(ctx context.Context, topicID uuid.UUID, params domain.TopicUpdateParams) (*domain.Topic, error) {
	query := psql.Update(tableName).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": topicID, "deleted_at": nil}).
		Suffix(returning)

	if params.Title != nil {
		query = query.Set("title", *params.Title)
	}
	if params.Summary != nil {
		if *params.Summary == "" {
			query = query.Set("summary", nil)
		} else {
			query = query.Set("summary", *params.Summary)
		}
	}

	return r.getOne(ctx, query, "topic", topicID)
}

// Lock sets locked = true. There is no inverse operation.
func (r *Repo) Lock(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error) {
	query := psql.Update(tableName).
		Set("locked", true).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": topicID}).
		Suffix(returning)
	return r.getOne(ctx, query, "topic", topicID)
}

// SoftDelete sets deleted_at on a live topic. Posts are left untouched;
// they become invisible through their parent.
// Returns domain.ErrNotFound if the topic is missing or already deleted.
func (r *Repo) SoftDelete(ctx context.Context, topicID uuid.UUID) error {
	sqlStr, args, err := psql.Update(tableName).
		Set("deleted_at", sq.Expr("now()")).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": topicID, "deleted_at": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build soft delete topic: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "topic", topicID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}
	return nil
}

// Purge hard-deletes a topic; its posts go with it through the foreign key
// cascade. Returns domain.ErrNotFound if no row was removed.
func (r *Repo) Purge(ctx context.Context, topicID uuid.UUID) error {
	sqlStr, args, err := psql.Delete(tableName).Where(sq.Eq{"id": topicID}).ToSql()
	if err != nil {
		return fmt.Errorf("build purge topic: %w", err)
	}

	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, sqlStr, args...)
	if err != nil {
		return postgres.MapError(err, "topic", topicID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("topic %s: %w", topicID, domain.ErrNotFound)
	}
	return nil
}

// reconcileSQL recomputes posts_count of every live topic from its live
// posts. Row locks are taken by the UPDATE itself, so it serializes with
// concurrent post creation and deletion on the same topic.
const reconcileSQL = `
UPDATE topics AS t
SET posts_count = c.live, updated_at = now()
FROM (
    SELECT tt.id, count(p.id) FILTER (WHERE p.deleted_at IS NULL) AS live
    FROM topics tt
    LEFT JOIN posts p ON p.topic_id = tt.id
    WHERE tt.deleted_at IS NULL
    GROUP BY tt.id
) AS c
WHERE t.id = c.id AND t.posts_count <> c.live`

// ReconcileCounts fixes drifted counters and returns how many topics changed.
func (r *Repo) ReconcileCounts(ctx context.Context) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, reconcileSQL)
	if err != nil {
		return 0, fmt.Errorf("reconcile counts: %w", postgres.MapError(err, "topics", nil))
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// getOne runs a single-row query. entity and id label errors; id may be
// nil when the row has no id yet.
func (r *Repo) getOne(ctx context.Context, query sq.Sqlizer, entity string, id fmt.Stringer) (*domain.Topic, error) {
	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", entity, err)
	}

	var dst row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &dst, sqlStr, args...); err != nil {
		return nil, postgres.MapError(err, entity, id)
	}
	return toDomain(dst), nil
}

// toDomain converts a scanned row into a domain.Topic.
func toDomain(r row) *domain.Topic {
	return &domain.Topic{
		ID:         r.ID,
		Title:      r.Title,
		Summary:    r.Summary,
		Locked:     r.Locked,
		PostsCount: r.PostsCount,
		DeletedAt:  r.DeletedAt,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
}
