package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/threadboard/internal/domain"
	"github.com/heartmarshall/threadboard/internal/service/board"
)

// boardService defines the operations BoardHandler needs.
type boardService interface {
	CreateTopic(ctx context.Context, input board.CreateTopicInput) (*domain.Topic, error)
	UpdateTopic(ctx context.Context, input board.UpdateTopicInput) (*domain.Topic, error)
	DeleteTopic(ctx context.Context, input board.DeleteTopicInput) error
	GetTopic(ctx context.Context, topicID uuid.UUID) (*domain.Topic, error)
	ListTopics(ctx context.Context) ([]*domain.Topic, error)
	CreatePost(ctx context.Context, input board.CreatePostInput) (*board.CreatePostResult, error)
	DeletePost(ctx context.Context, input board.DeletePostInput) (*domain.Topic, error)
	GetPost(ctx context.Context, topicID, postID uuid.UUID) (*domain.Post, error)
	ListPosts(ctx context.Context, input board.ListPostsInput) (*board.ListPostsResult, error)
}

type bodyRenderer interface {
	Render(source string) string
}

// BoardHandler serves the topic and post REST endpoints.
type BoardHandler struct {
	svc             boardService
	render          bodyRenderer
	defaultPageSize int
	log             *slog.Logger
}

// NewBoardHandler creates a BoardHandler. defaultPageSize is used when a
// listing request carries no limit.
func NewBoardHandler(svc boardService, render bodyRenderer, defaultPageSize int, logger *slog.Logger) *BoardHandler {
	return &BoardHandler{
		svc:             svc,
		render:          render,
		defaultPageSize: defaultPageSize,
		log:             logger.With("handler", "board"),
	}
}

// ListTopics handles GET /api/topics.
func (h *BoardHandler) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := h.svc.ListTopics(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listTopicsResponse{Items: make([]topicResponse, len(topics))}
	for i, t := range topics {
		resp.Items[i] = toTopicResponse(t)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateTopic handles POST /api/topics.
func (h *BoardHandler) CreateTopic(w http.ResponseWriter, r *http.Request) {
	var req createTopicRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	topic, err := h.svc.CreateTopic(r.Context(), board.CreateTopicInput{
		Title:   req.Title,
		Summary: req.Summary,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTopicResponse(topic))
}

// GetTopic handles GET /api/topics/{id}.
func (h *BoardHandler) GetTopic(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	topic, err := h.svc.GetTopic(r.Context(), topicID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(topic))
}

// UpdateTopic handles PATCH /api/topics/{id}.
func (h *BoardHandler) UpdateTopic(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req updateTopicRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	topic, err := h.svc.UpdateTopic(r.Context(), board.UpdateTopicInput{
		TopicID: topicID,
		Title:   req.Title,
		Summary: req.Summary,
		Locked:  req.Locked,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(topic))
}

// DeleteTopic handles DELETE /api/topics/{id}.
func (h *BoardHandler) DeleteTopic(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteTopic(r.Context(), board.DeleteTopicInput{TopicID: topicID}); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPosts handles GET /api/topics/{id}/posts?limit=&offset=.
func (h *BoardHandler) ListPosts(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	limit, ok := queryInt(w, r, "limit", h.defaultPageSize)
	if !ok {
		return
	}
	offset, ok := queryInt(w, r, "offset", 0)
	if !ok {
		return
	}

	page, err := h.svc.ListPosts(r.Context(), board.ListPostsInput{
		TopicID: topicID,
		Limit:   limit,
		Offset:  offset,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := listPostsResponse{
		Items:  make([]postResponse, len(page.Items)),
		Total:  page.Total,
		Limit:  page.Limit,
		Offset: page.Offset,
	}
	for i, p := range page.Items {
		resp.Items[i] = h.toPostResponse(p)
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreatePost handles POST /api/topics/{id}/posts.
func (h *BoardHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req createPostRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.CreatePost(r.Context(), board.CreatePostInput{
		TopicID: topicID,
		Body:    req.Body,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, h.toCreatePostResponse(res))
}

// GetPost handles GET /api/topics/{id}/posts/{postId}.
func (h *BoardHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}

	post, err := h.svc.GetPost(r.Context(), topicID, postID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, h.toPostResponse(post))
}

// DeletePost handles DELETE /api/topics/{id}/posts/{postId}.
// The response carries the topic with its recounted postsCount.
func (h *BoardHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	topicID, ok := pathID(w, r, "id")
	if !ok {
		return
	}
	postID, ok := pathID(w, r, "postId")
	if !ok {
		return
	}

	topic, err := h.svc.DeletePost(r.Context(), board.DeletePostInput{TopicID: topicID, PostID: postID})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTopicResponse(topic))
}

// pathID parses a uuid path parameter. Malformed ids answer 404, the same
// as ids that do not exist.
func pathID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusNotFound, "not found")
		return uuid.Nil, false
	}
	return id, true
}

// queryInt reads an integer query parameter, using def when it is absent.
func queryInt(w http.ResponseWriter, r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  "validation failed",
			Fields: []fieldError{{Field: name, Message: "must be an integer"}},
		})
		return 0, false
	}
	return v, true
}
