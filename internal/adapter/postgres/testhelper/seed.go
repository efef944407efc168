package testhelper

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/threadboard/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedTopic inserts an empty, open topic and returns it.
func SeedTopic(t *testing.T, pool *pgxpool.Pool) domain.Topic {
	t.Helper()
	ctx := context.Background()

	topic := domain.Topic{Title: "Topic " + uniqueSuffix()}
	err := pool.QueryRow(ctx,
		`INSERT INTO topics (title) VALUES ($1)
		 RETURNING id, created_at, updated_at`,
		topic.Title,
	).Scan(&topic.ID, &topic.CreatedAt, &topic.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}

	return topic
}

// SeedPosts inserts n live user posts into topicID, bumps posts_count to
// match, and returns the posts in creation order.
func SeedPosts(t *testing.T, pool *pgxpool.Pool, topicID uuid.UUID, n int) []domain.Post {
	t.Helper()
	ctx := context.Background()

	posts := make([]domain.Post, 0, n)
	for i := range n {
		p := domain.Post{TopicID: topicID, Body: fmt.Sprintf("post %d", i+1)}
		err := pool.QueryRow(ctx,
			`INSERT INTO posts (topic_id, body) VALUES ($1, $2)
			 RETURNING id, created_at`,
			topicID, p.Body,
		).Scan(&p.ID, &p.CreatedAt)
		if err != nil {
			t.Fatalf("testhelper: SeedPosts insert: %v", err)
		}
		posts = append(posts, p)
	}

	_, err := pool.Exec(ctx,
		`UPDATE topics SET posts_count = posts_count + $2 WHERE id = $1`,
		topicID, n,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedPosts update count: %v", err)
	}

	return posts
}

// LivePostCount counts live posts of a topic directly, bypassing repositories.
func LivePostCount(t *testing.T, pool *pgxpool.Pool, topicID uuid.UUID) int {
	t.Helper()
	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM posts WHERE topic_id = $1 AND deleted_at IS NULL`, topicID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: LivePostCount: %v", err)
	}
	return n
}

// StoredCounter reads the denormalized posts_count and locked flag.
func StoredCounter(t *testing.T, pool *pgxpool.Pool, topicID uuid.UUID) (int, bool) {
	t.Helper()
	var (
		n      int
		locked bool
	)
	err := pool.QueryRow(context.Background(),
		`SELECT posts_count, locked FROM topics WHERE id = $1`, topicID,
	).Scan(&n, &locked)
	if err != nil {
		t.Fatalf("testhelper: StoredCounter: %v", err)
	}
	return n, locked
}

// BackdatePostDeletion moves a post's deleted_at into the past.
func BackdatePostDeletion(t *testing.T, pool *pgxpool.Pool, postID uuid.UUID, at time.Time) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`UPDATE posts SET deleted_at = $2 WHERE id = $1`, postID, at,
	)
	if err != nil {
		t.Fatalf("testhelper: BackdatePostDeletion: %v", err)
	}
}
