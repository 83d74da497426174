package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/HillyAttic/taskboard/internal/api/dto"
	"github.com/HillyAttic/taskboard/internal/model"
	"github.com/HillyAttic/taskboard/internal/recurrence"
	"github.com/HillyAttic/taskboard/internal/service"
)

// --- fake ---

type fakeTaskService struct {
	createFn   func(service.TaskInput) (*model.RecurringTask, error)
	getFn      func(string) (*model.RecurringTask, error)
	updateFn   func(string, model.RecurringTaskUpdate) (*model.RecurringTask, error)
	pauseFn    func(string) (*model.RecurringTask, error)
	resumeFn   func(string) (*model.RecurringTask, error)
	completeFn func(string, string) (*model.RecurringTask, error)
	deleteFn   func(string, service.DeleteMode) error
}

func (f *fakeTaskService) Create(_ context.Context, input service.TaskInput) (*model.RecurringTask, error) {
	return f.createFn(input)
}
func (f *fakeTaskService) GetByID(_ context.Context, id string) (*model.RecurringTask, error) {
	return f.getFn(id)
}
func (f *fakeTaskService) Update(_ context.Context, id string, patch model.RecurringTaskUpdate) (*model.RecurringTask, error) {
	return f.updateFn(id, patch)
}
func (f *fakeTaskService) Pause(_ context.Context, id string) (*model.RecurringTask, error) {
	return f.pauseFn(id)
}
func (f *fakeTaskService) Resume(_ context.Context, id string) (*model.RecurringTask, error) {
	return f.resumeFn(id)
}
func (f *fakeTaskService) CompleteCycle(_ context.Context, id, completedBy string) (*model.RecurringTask, error) {
	return f.completeFn(id, completedBy)
}
func (f *fakeTaskService) Delete(_ context.Context, id string, mode service.DeleteMode) error {
	return f.deleteFn(id, mode)
}

func sampleTask() *model.RecurringTask {
	start := time.Date(2024, time.January, 31, 9, 0, 0, 0, time.UTC)
	return &model.RecurringTask{
		ID:             "task-1",
		Title:          "Invoice run",
		Pattern:        recurrence.Monthly,
		StartDate:      start,
		NextOccurrence: recurrence.NextMonthly(start),
	}
}

// --- tests ---

func TestCreateTaskHandler(t *testing.T) {
	handler := NewTaskHandler(&fakeTaskService{
		createFn: func(input service.TaskInput) (*model.RecurringTask, error) {
			if input.Pattern != "monthly" {
				t.Errorf("pattern %q reached service", input.Pattern)
			}
			return sampleTask(), nil
		},
	})

	body := `{"title":"Invoice run","pattern":"monthly","start_date":"2024-01-31T09:00:00Z"}`
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status=%d, want 201", rec.Code)
	}
	var resp dto.TaskResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.ID != "task-1" || resp.Pattern != "monthly" {
		t.Errorf("response %+v", resp)
	}
}

func TestCreateTaskHandlerRejectsBadPattern(t *testing.T) {
	handler := NewTaskHandler(&fakeTaskService{
		createFn: func(service.TaskInput) (*model.RecurringTask, error) {
			return nil, service.ErrInvalidPattern
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(`{"title":"x","pattern":"yearly"}`))
	rec := httptest.NewRecorder()
	handler.Create(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status=%d, want 400", rec.Code)
	}
}

func TestGetTaskHandlerNotFound(t *testing.T) {
	handler := NewTaskHandler(&fakeTaskService{
		getFn: func(string) (*model.RecurringTask, error) {
			return nil, service.ErrTaskNotFound
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/tasks/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status=%d, want 404", rec.Code)
	}
}

func TestCompleteHandlerPausedConflict(t *testing.T) {
	handler := NewTaskHandler(&fakeTaskService{
		completeFn: func(string, string) (*model.RecurringTask, error) {
			return nil, service.ErrTaskPaused
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/tasks/task-1/complete", strings.NewReader(`{"completed_by":"emp-1"}`))
	req.SetPathValue("id", "task-1")
	rec := httptest.NewRecorder()
	handler.Complete(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status=%d, want 409", rec.Code)
	}
}

func TestDeleteHandlerModeParsing(t *testing.T) {
	tests := []struct {
		query      string
		wantStatus int
		wantMode   service.DeleteMode
	}{
		{"?mode=all", http.StatusNoContent, service.DeleteAll},
		{"", http.StatusNoContent, service.DeleteAll},
		{"?mode=stop", http.StatusNoContent, service.DeleteStop},
		{"?mode=archive", http.StatusBadRequest, 0},
	}

	for _, tt := range tests {
		var gotMode service.DeleteMode
		handler := NewTaskHandler(&fakeTaskService{
			deleteFn: func(_ string, mode service.DeleteMode) error {
				gotMode = mode
				return nil
			},
		})

		req := httptest.NewRequest(http.MethodDelete, "/tasks/task-1"+tt.query, nil)
		req.SetPathValue("id", "task-1")
		rec := httptest.NewRecorder()
		handler.Delete(rec, req)

		if rec.Code != tt.wantStatus {
			t.Errorf("%q: status=%d, want %d", tt.query, rec.Code, tt.wantStatus)
			continue
		}
		if tt.wantStatus == http.StatusNoContent && gotMode != tt.wantMode {
			t.Errorf("%q: mode=%v, want %v", tt.query, gotMode, tt.wantMode)
		}
	}
}
