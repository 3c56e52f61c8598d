package users

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/averlon/taskboard/internal/core/model"
	"github.com/averlon/taskboard/internal/core/port"
	"github.com/averlon/taskboard/internal/core/validate"
	"github.com/averlon/taskboard/internal/metrics"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type ListUsersResponse struct {
	Users []*model.User `json:"users"`
	Count int           `json:"count"`
}

func (h *Handler) handleListUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.store.ListUsers(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not list users", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Failed to fetch users")
		return
	}

	if users == nil {
		users = make([]*model.User, 0)
	}

	writeJSON(ctx, w, http.StatusOK, ListUsersResponse{
		Users: users,
		Count: len(users),
	})
}

func (h *Handler) handleGetUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := pathUserID(r)
	if !ok {
		writeError(ctx, w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	user, err := h.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(ctx, w, http.StatusNotFound, "User not found")
			return
		}

		slog.ErrorContext(ctx, "could not get user", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Failed to fetch user")
		return
	}

	writeJSON(ctx, w, http.StatusOK, user)
}

func (h *Handler) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var candidate validate.UserCandidate

	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if violations := validate.User(candidate); len(violations) > 0 {
		metrics.ValidationFailures.With(prometheus.Labels{
			metrics.LabelCollection: metrics.CollectionUsers,
		}).Inc()

		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: violations,
		})
		return
	}

	user, err := h.store.CreateUser(ctx, port.UserFields{
		Name:  candidate.Name,
		Email: candidate.Email,
		Age:   candidate.Age,
	})
	if err != nil {
		if errors.Is(err, port.ErrEmailConflict) {
			writeError(ctx, w, http.StatusConflict, "Email already exists")
			return
		}

		slog.ErrorContext(ctx, "could not create user", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, user)
}

func (h *Handler) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := pathUserID(r)
	if !ok {
		writeError(ctx, w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var candidate validate.UserCandidate

	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		writeError(ctx, w, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if violations := validate.User(candidate); len(violations) > 0 {
		metrics.ValidationFailures.With(prometheus.Labels{
			metrics.LabelCollection: metrics.CollectionUsers,
		}).Inc()

		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: violations,
		})
		return
	}

	user, err := h.store.UpdateUser(ctx, userID, port.UserFields{
		Name:  candidate.Name,
		Email: candidate.Email,
		Age:   candidate.Age,
	})
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(ctx, w, http.StatusNotFound, "User not found")
			return
		}

		if errors.Is(err, port.ErrEmailConflict) {
			writeError(ctx, w, http.StatusConflict, "Email already exists")
			return
		}

		slog.ErrorContext(ctx, "could not update user", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	writeJSON(ctx, w, http.StatusOK, user)
}

func (h *Handler) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := pathUserID(r)
	if !ok {
		writeError(ctx, w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	if err := h.store.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(ctx, w, http.StatusNotFound, "User not found")
			return
		}

		slog.ErrorContext(ctx, "could not delete user", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	writeJSON(ctx, w, http.StatusOK, SuccessResponse{
		Message: "User deleted successfully",
	})
}

func (h *Handler) handleRouteNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(r.Context(), w, http.StatusNotFound, "Route not found")
}

func pathUserID(r *http.Request) (model.UserID, bool) {
	raw := r.PathValue("userID")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return model.UserID(id), true
}
