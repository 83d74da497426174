package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/HillyAttic/taskboard/internal/api/dto"
	"github.com/HillyAttic/taskboard/internal/model"
	"github.com/HillyAttic/taskboard/internal/recurrence"
	"github.com/HillyAttic/taskboard/internal/service"
)

type RecurringTaskService interface {
	Create(ctx context.Context, input service.TaskInput) (*model.RecurringTask, error)
	GetByID(ctx context.Context, id string) (*model.RecurringTask, error)
	Update(ctx context.Context, id string, patch model.RecurringTaskUpdate) (*model.RecurringTask, error)
	Pause(ctx context.Context, id string) (*model.RecurringTask, error)
	Resume(ctx context.Context, id string) (*model.RecurringTask, error)
	CompleteCycle(ctx context.Context, id, completedBy string) (*model.RecurringTask, error)
	Delete(ctx context.Context, id string, mode service.DeleteMode) error
}

type TaskHandler struct {
	tasks RecurringTaskService
}

func NewTaskHandler(tasks RecurringTaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

// POST /tasks
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.tasks.Create(r.Context(), service.TaskInput{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
		TeamID:      req.TeamID,
		AssigneeIDs: req.AssigneeIDs,
		Pattern:     req.Pattern,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		writeTaskError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, taskResponse(task))
}

// GET /tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	task, err := h.tasks.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		writeTaskError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse(task))
}

// PATCH /tasks/{id}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	patch := model.RecurringTaskUpdate{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		CategoryID:  req.CategoryID,
		TeamID:      req.TeamID,
		AssigneeIDs: req.AssigneeIDs,
		EndDate:     req.EndDate,
		IsPaused:    req.IsPaused,
	}
	if req.Pattern != nil {
		pattern, err := recurrence.ParsePattern(*req.Pattern)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		patch.Pattern = &pattern
	}

	task, err := h.tasks.Update(r.Context(), r.PathValue("id"), patch)
	if err != nil {
		writeTaskError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse(task))
}

// POST /tasks/{id}/pause
func (h *TaskHandler) Pause(w http.ResponseWriter, r *http.Request) {
	task, err := h.tasks.Pause(r.Context(), r.PathValue("id"))
	if err != nil {
		writeTaskError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse(task))
}

// POST /tasks/{id}/resume
func (h *TaskHandler) Resume(w http.ResponseWriter, r *http.Request) {
	task, err := h.tasks.Resume(r.Context(), r.PathValue("id"))
	if err != nil {
		writeTaskError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse(task))
}

// POST /tasks/{id}/complete
func (h *TaskHandler) Complete(w http.ResponseWriter, r *http.Request) {
	var req dto.CompleteCycleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	task, err := h.tasks.CompleteCycle(r.Context(), r.PathValue("id"), req.CompletedBy)
	if err != nil {
		writeTaskError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, taskResponse(task))
}

// DELETE /tasks/{id}?mode=all|stop
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var mode service.DeleteMode
	switch r.URL.Query().Get("mode") {
	case "all", "":
		mode = service.DeleteAll
	case "stop":
		mode = service.DeleteStop
	default:
		writeError(w, http.StatusBadRequest, "mode must be \"all\" or \"stop\"")
		return
	}

	if err := h.tasks.Delete(r.Context(), r.PathValue("id"), mode); err != nil {
		writeTaskError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func writeTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrTaskNotFound):
		writeError(w, http.StatusNotFound, service.ErrTaskNotFound.Error())
	case errors.Is(err, service.ErrTaskPaused):
		writeError(w, http.StatusConflict, service.ErrTaskPaused.Error())
	case errors.Is(err, service.ErrTaskEnded):
		writeError(w, http.StatusConflict, service.ErrTaskEnded.Error())
	case errors.Is(err, service.ErrConflict):
		writeError(w, http.StatusConflict, service.ErrConflict.Error())
	case errors.Is(err, service.ErrInvalidPattern),
		errors.Is(err, service.ErrInvalidInput),
		errors.Is(err, service.ErrEndBeforeStart):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func taskResponse(task *model.RecurringTask) dto.TaskResponse {
	resp := dto.TaskResponse{
		ID:             task.ID,
		Title:          task.Title,
		Description:    task.Description,
		Priority:       task.Priority,
		CategoryID:     task.CategoryID,
		TeamID:         task.TeamID,
		Pattern:        task.Pattern.String(),
		StartDate:      task.StartDate,
		EndDate:        task.EndDate,
		NextOccurrence: task.NextOccurrence,
		IsPaused:       task.IsPaused,
		History:        make([]dto.CompletionRecordResponse, 0, len(task.History)),
	}
	for _, assignee := range task.Assignees {
		resp.AssigneeIDs = append(resp.AssigneeIDs, assignee.ID)
	}
	for _, rec := range task.History {
		resp.History = append(resp.History, dto.CompletionRecordResponse{
			OccurredAt:  rec.OccurredAt,
			CompletedBy: rec.CompletedBy,
		})
	}
	return resp
}
