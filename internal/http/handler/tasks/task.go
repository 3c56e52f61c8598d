package tasks

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/averlon/taskboard/internal/core/model"
	"github.com/averlon/taskboard/internal/core/port"
	"github.com/averlon/taskboard/internal/core/query"
	"github.com/averlon/taskboard/internal/core/validate"
	"github.com/averlon/taskboard/internal/metrics"
	"github.com/bornholm/go-x/slogx"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

type ListTasksResponse struct {
	Tasks      []*model.Task    `json:"tasks"`
	Pagination query.Pagination `json:"pagination"`
}

func (h *Handler) handleListTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := h.store.ListTasks(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "could not list tasks", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Internal server error")
		return
	}

	page, pagination := query.Run(tasks, query.ParamsFromQuery(r.URL.Query()))
	if page == nil {
		page = make([]*model.Task, 0)
	}

	writeJSON(ctx, w, http.StatusOK, ListTasksResponse{
		Tasks:      page,
		Pagination: pagination,
	})
}

func (h *Handler) handleGetTask(w http.ResponseWriter, r *http.Request) {
	taskID := model.TaskID(r.PathValue("taskID"))

	ctx := r.Context()

	task, err := h.store.GetTaskByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(ctx, w, http.StatusNotFound, "Task not found")
			return
		}

		slog.ErrorContext(ctx, "could not get task", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(ctx, w, http.StatusOK, task)
}

func (h *Handler) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var candidate validate.TaskCandidate

	// Decoding only fails on malformed bodies here: the candidate fields
	// are any-typed, so type mismatches surface as validation messages.
	// The reference service answers malformed bodies with a 500.
	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		slog.ErrorContext(ctx, "could not decode request body", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if violations := validate.Task(candidate); len(violations) > 0 {
		metrics.ValidationFailures.With(prometheus.Labels{
			metrics.LabelCollection: metrics.CollectionTasks,
		}).Inc()

		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: violations,
		})
		return
	}

	task, err := h.store.CreateTask(ctx, createFieldsFromCandidate(candidate))
	if err != nil {
		slog.ErrorContext(ctx, "could not create task", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(ctx, w, http.StatusCreated, task)
}

func (h *Handler) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := model.TaskID(r.PathValue("taskID"))

	ctx := r.Context()

	if _, err := h.store.GetTaskByID(ctx, taskID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(ctx, w, http.StatusNotFound, "Task not found")
			return
		}

		slog.ErrorContext(ctx, "could not get task", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Internal server error")
		return
	}

	var candidate validate.TaskCandidate

	if err := json.NewDecoder(r.Body).Decode(&candidate); err != nil {
		slog.ErrorContext(ctx, "could not decode request body", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if violations := validate.TaskUpdate(candidate); len(violations) > 0 {
		metrics.ValidationFailures.With(prometheus.Labels{
			metrics.LabelCollection: metrics.CollectionTasks,
		}).Inc()

		writeJSON(ctx, w, http.StatusBadRequest, ErrorResponse{
			Error:   "Validation failed",
			Details: violations,
		})
		return
	}

	task, err := h.store.UpdateTask(ctx, taskID, updateFieldsFromCandidate(candidate))
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(ctx, w, http.StatusNotFound, "Task not found")
			return
		}

		slog.ErrorContext(ctx, "could not update task", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Internal server error")
		return
	}

	writeJSON(ctx, w, http.StatusOK, task)
}

func (h *Handler) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := model.TaskID(r.PathValue("taskID"))

	ctx := r.Context()

	if err := h.store.DeleteTask(ctx, taskID); err != nil {
		if errors.Is(err, port.ErrNotFound) {
			writeError(ctx, w, http.StatusNotFound, "Task not found")
			return
		}

		slog.ErrorContext(ctx, "could not delete task", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleDeleteAllTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.store.DeleteAllTasks(ctx); err != nil {
		slog.ErrorContext(ctx, "could not delete tasks", slogx.Error(errors.WithStack(err)))
		writeError(ctx, w, http.StatusInternalServerError, "Internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRouteNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(r.Context(), w, http.StatusNotFound, "Route not found")
}

func createFieldsFromCandidate(candidate validate.TaskCandidate) port.CreateTaskFields {
	fields := port.CreateTaskFields{
		Priority: model.PriorityMedium,
	}

	if title, ok := candidate.Title.(string); ok {
		fields.Title = strings.TrimSpace(title)
	}

	if description, ok := candidate.Description.(string); ok {
		fields.Description = description
	}

	if completed, ok := candidate.Completed.(bool); ok {
		fields.Completed = completed
	}

	if priority, ok := candidate.Priority.(string); ok {
		fields.Priority = model.Priority(priority)
	}

	return fields
}

func updateFieldsFromCandidate(candidate validate.TaskCandidate) port.UpdateTaskFields {
	fields := port.UpdateTaskFields{}

	if title, ok := candidate.Title.(string); ok {
		trimmed := strings.TrimSpace(title)
		fields.Title = &trimmed
	}

	if description, ok := candidate.Description.(string); ok {
		fields.Description = &description
	}

	if completed, ok := candidate.Completed.(bool); ok {
		fields.Completed = &completed
	}

	if priority, ok := candidate.Priority.(string); ok {
		priority := model.Priority(priority)
		fields.Priority = &priority
	}

	return fields
}
