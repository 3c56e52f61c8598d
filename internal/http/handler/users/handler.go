package users

import (
	"net/http"

	"github.com/averlon/taskboard/internal/core/port"
)

type Handler struct {
	store port.UserStore
	mux   *http.ServeMux
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func NewHandler(store port.UserStore) *Handler {
	h := &Handler{
		store: store,
		mux:   &http.ServeMux{},
	}

	h.mux.Handle("GET /health", http.HandlerFunc(h.handleHealth))
	h.mux.Handle("GET /users", http.HandlerFunc(h.handleListUsers))
	h.mux.Handle("POST /users", http.HandlerFunc(h.handleCreateUser))
	h.mux.Handle("GET /users/{userID}", http.HandlerFunc(h.handleGetUser))
	h.mux.Handle("PUT /users/{userID}", http.HandlerFunc(h.handleUpdateUser))
	h.mux.Handle("DELETE /users/{userID}", http.HandlerFunc(h.handleDeleteUser))
	h.mux.Handle("/", http.HandlerFunc(h.handleRouteNotFound))

	return h
}

var _ http.Handler = &Handler{}
