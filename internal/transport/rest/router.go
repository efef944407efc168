package rest

import "net/http"

// NewRouter registers the health probes and the board API on a new mux.
func NewRouter(health *HealthHandler, board *BoardHandler) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", health.Live)
	mux.HandleFunc("GET /ready", health.Ready)
	mux.HandleFunc("GET /health", health.Health)

	mux.HandleFunc("GET /api/topics", board.ListTopics)
	mux.HandleFunc("POST /api/topics", board.CreateTopic)
	mux.HandleFunc("GET /api/topics/{id}", board.GetTopic)
	mux.HandleFunc("PATCH /api/topics/{id}", board.UpdateTopic)
	mux.HandleFunc("DELETE /api/topics/{id}", board.DeleteTopic)

	mux.HandleFunc("GET /api/topics/{id}/posts", board.ListPosts)
	mux.HandleFunc("POST /api/topics/{id}/posts", board.CreatePost)
	mux.HandleFunc("GET /api/topics/{id}/posts/{postId}", board.GetPost)
	mux.HandleFunc("DELETE /api/topics/{id}/posts/{postId}", board.DeletePost)

	return mux
}
