package board

import "github.com/heartmarshall/threadboard/internal/domain"

// CreatePostResult is the outcome of a successful CreatePost.
// Notice is set only when this post filled the topic.
type CreatePostResult struct {
	Post   *domain.Post
	Notice *domain.Post
	Topic  *domain.Topic
}

// ListPostsResult is one page of posts plus the live total.
// Limit and Offset are the clamped values actually used.
type ListPostsResult struct {
	Items  []*domain.Post
	Total  int
	Limit  int
	Offset int
}
