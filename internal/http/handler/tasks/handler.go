package tasks

import (
	"net/http"
	"time"

	"github.com/averlon/taskboard/internal/core/port"
)

type Handler struct {
	store     port.TaskStore
	mux       *http.ServeMux
	startedAt time.Time
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store port.TaskStore) *Handler {
	h := &Handler{
		store:     store,
		mux:       &http.ServeMux{},
		startedAt: time.Now(),
	}

	h.mux.Handle("GET /health", http.HandlerFunc(h.handleHealth))
	h.mux.Handle("GET /tasks", http.HandlerFunc(h.handleListTasks))
	h.mux.Handle("POST /tasks", http.HandlerFunc(h.handleCreateTask))
	h.mux.Handle("DELETE /tasks", http.HandlerFunc(h.handleDeleteAllTasks))
	h.mux.Handle("GET /tasks/{taskID}", http.HandlerFunc(h.handleGetTask))
	h.mux.Handle("PUT /tasks/{taskID}", http.HandlerFunc(h.handleUpdateTask))
	h.mux.Handle("DELETE /tasks/{taskID}", http.HandlerFunc(h.handleDeleteTask))
	h.mux.Handle("/", http.HandlerFunc(h.handleRouteNotFound))

	return h
}

var _ http.Handler = &Handler{}
