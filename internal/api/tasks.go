package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/pacerlabs/pacer/internal/domain"
	"github.com/pacerlabs/pacer/internal/view"
)

// AddTaskRequest is the POST /api/tasks body.
type AddTaskRequest struct {
	Name            string `json:"name"`
	DurationSeconds int64  `json:"duration_seconds"`
}

// TodayResponse carries the today projection plus its aggregate counts.
type TodayResponse struct {
	Tasks     []domain.Task `json:"tasks"`
	Running   int           `json:"running"`
	Completed int           `json:"completed"`
}

func (s *Server) handleAddTask(w http.ResponseWriter, r *http.Request) {
	var req AddTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DurationSeconds < 0 {
		writeError(w, http.StatusBadRequest, "duration must be non-negative")
		return
	}

	task, ok := s.store.AddTask(req.Name, req.DurationSeconds)
	if !ok {
		// The store rejects empty names silently; surface it to HTTP
		// clients as a validation error.
		writeError(w, http.StatusBadRequest, "task name is required")
		return
	}
	writeJSON(w, http.StatusCreated, task)
}

func (s *Server) handleAllTasks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Tasks())
}

func (s *Server) handleToday(w http.ResponseWriter, r *http.Request) {
	// Counts are computed over the same snapshot as the task list, so a
	// tick landing mid-request cannot make them disagree.
	tasks := s.store.TodayTasks()
	running, completed := view.Counts(tasks)
	writeJSON(w, http.StatusOK, TodayResponse{
		Tasks:     tasks,
		Running:   running,
		Completed: completed,
	})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.TasksByDate())
}

func (s *Server) handleTogglePause(w http.ResponseWriter, r *http.Request) {
	task, found := s.store.TogglePause(chi.URLParam(r, "id"))
	if !found {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handleStop(w http.ResponseWriter, r *http.Request) {
	task, found := s.store.StopTask(chi.URLParam(r, "id"))
	if !found {
		writeError(w, http.StatusNotFound, "task not found")
		return
	}
	writeJSON(w, http.StatusOK, task)
}

func (s *Server) handlePendingNotifications(w http.ResponseWriter, r *http.Request) {
	limit := 50
	if q := r.URL.Query().Get("limit"); q != "" {
		if n, err := strconv.Atoi(q); err == nil && n > 0 {
			limit = n
		}
	}
	pending, err := s.hub.Pending(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if pending == nil {
		pending = []domain.Notification{}
	}
	writeJSON(w, http.StatusOK, pending)
}

func (s *Server) handleNotificationShown(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid notification id")
		return
	}
	if err := s.hub.MarkShown(id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
