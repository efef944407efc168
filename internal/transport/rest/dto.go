package rest

import (
	"time"

	"github.com/heartmarshall/threadboard/internal/domain"
	"github.com/heartmarshall/threadboard/internal/service/board"
)

type topicResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Summary    *string   `json:"summary,omitempty"`
	Locked     bool      `json:"locked"`
	State      string    `json:"state"`
	PostsCount int       `json:"postsCount"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

type postResponse struct {
	ID        string    `json:"id"`
	TopicID   string    `json:"topicId"`
	Body      string    `json:"body"`
	BodyHTML  string    `json:"bodyHtml"`
	IsSystem  bool      `json:"isSystem"`
	CreatedAt time.Time `json:"createdAt"`
}

type listTopicsResponse struct {
	Items []topicResponse `json:"items"`
}

type listPostsResponse struct {
	Items  []postResponse `json:"items"`
	Total  int            `json:"total"`
	Limit  int            `json:"limit"`
	Offset int            `json:"offset"`
}

type createPostResponse struct {
	Post   postResponse  `json:"post"`
	Notice *postResponse `json:"notice,omitempty"`
	Topic  topicResponse `json:"topic"`
}

type createTopicRequest struct {
	Title   string  `json:"title"`
	Summary *string `json:"summary"`
}

type updateTopicRequest struct {
	Title   *string `json:"title"`
	Summary *string `json:"summary"`
	Locked  *bool   `json:"locked"`
}

type createPostRequest struct {
	Body string `json:"body"`
}

func toTopicResponse(t *domain.Topic) topicResponse {
	return topicResponse{
		ID:         t.ID.String(),
		Title:      t.Title,
		Summary:    t.Summary,
		Locked:     t.Locked,
		State:      t.State().String(),
		PostsCount: t.PostsCount,
		CreatedAt:  t.CreatedAt,
		UpdatedAt:  t.UpdatedAt,
	}
}

func (h *BoardHandler) toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:        p.ID.String(),
		TopicID:   p.TopicID.String(),
		Body:      p.Body,
		BodyHTML:  h.render.Render(p.Body),
		IsSystem:  p.IsSystem,
		CreatedAt: p.CreatedAt,
	}
}

func (h *BoardHandler) toCreatePostResponse(res *board.CreatePostResult) createPostResponse {
	resp := createPostResponse{
		Post:  h.toPostResponse(res.Post),
		Topic: toTopicResponse(res.Topic),
	}
	if res.Notice != nil {
		notice := h.toPostResponse(res.Notice)
		resp.Notice = &notice
	}
	return resp
}
