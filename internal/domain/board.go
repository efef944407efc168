package domain

import (
	"time"

	"github.com/google/uuid"
)

// Topic is a capacity-bounded thread of posts.
// PostsCount is a denormalized cache of the number of live posts.
type Topic struct {
	ID         uuid.UUID
	Title      string
	Summary    *string
	Locked     bool
	PostsCount int
	DeletedAt  *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// IsDeleted reports whether the topic has been soft-deleted.
func (t *Topic) IsDeleted() bool {
	return t.DeletedAt != nil
}

// Post is a single message in a topic. System posts are generated by the
// board itself (the capacity notice) and bypass body validation.
type Post struct {
	ID        uuid.UUID
	TopicID   uuid.UUID
	Body      string
	IsSystem  bool
	DeletedAt *time.Time
	CreatedAt time.Time
}

// IsDeleted reports whether the post has been soft-deleted.
func (p *Post) IsDeleted() bool {
	return p.DeletedAt != nil
}

// TopicUpdateParams holds a partial update of a topic's descriptive fields.
// nil means "leave unchanged"; Summary set to ptr("") clears it.
type TopicUpdateParams struct {
	Title   *string
	Summary *string
}
