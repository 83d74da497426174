package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/HillyAttic/taskboard/internal/model"
	"github.com/HillyAttic/taskboard/internal/recurrence"
)

// RecurringTaskStore is the persistence capability the lifecycle manager
// depends on. The gorm-backed repository implements it; tests substitute
// fakes.
type RecurringTaskStore interface {
	Create(ctx context.Context, task *model.RecurringTask) error
	Get(ctx context.Context, id string) (*model.RecurringTask, bool, error)
	Update(ctx context.Context, id string, patch model.RecurringTaskUpdate) error
	SetPaused(ctx context.Context, id string, paused bool) error
	AppendCompletion(ctx context.Context, taskID string, rec model.CompletionRecord, next time.Time) error
	Delete(ctx context.Context, id string) error
	ListDue(ctx context.Context, now time.Time) ([]model.RecurringTask, error)
}

// CategoryStore resolves category names to records at task creation time.
type CategoryStore interface {
	GetOrCreate(ctx context.Context, name string) (*model.Category, error)
}

// DeleteMode selects between the two mutually exclusive delete semantics.
type DeleteMode uint8

const (
	// DeleteAll removes the task and its history entirely.
	DeleteAll DeleteMode = iota + 1
	// DeleteStop keeps the task and its history but halts future
	// scheduling by setting the end date to now and pausing the task.
	DeleteStop
)

func (m DeleteMode) String() string {
	switch m {
	case DeleteAll:
		return "all"
	case DeleteStop:
		return "stop"
	}
	return fmt.Sprintf("DeleteMode(%d)", uint8(m))
}

// TaskInput carries the data required to create a recurring task.
type TaskInput struct {
	Title       string
	Description string
	Priority    string
	Category    string
	TeamID      *string
	AssigneeIDs []string
	Pattern     string
	StartDate   time.Time
	EndDate     *time.Time
}

// RecurringTaskService mediates every state transition of a recurring task.
// Mutating operations are serialized per task id, so two concurrent cycle
// completions can never double-advance the schedule.
type RecurringTaskService struct {
	store      RecurringTaskStore
	categories CategoryStore
	locks      *lockTable
	now        func() time.Time
	log        zerolog.Logger
}

func NewRecurringTaskService(store RecurringTaskStore, categories CategoryStore, log zerolog.Logger) *RecurringTaskService {
	return &RecurringTaskService{
		store:      store,
		categories: categories,
		locks:      newLockTable(),
		now:        time.Now,
		log:        log,
	}
}

// Create validates the input and stores a new task with an empty history,
// unpaused, with the next occurrence computed from the start date.
func (s *RecurringTaskService) Create(ctx context.Context, input TaskInput) (*model.RecurringTask, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}

	pattern, err := recurrence.ParsePattern(input.Pattern)
	if err != nil {
		return nil, err
	}

	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return nil, ErrEndBeforeStart
	}

	var categoryID *uint
	if input.Category != "" && s.categories != nil {
		category, err := s.categories.GetOrCreate(ctx, input.Category)
		if err != nil {
			return nil, err
		}
		if category != nil {
			categoryID = &category.ID
		}
	}

	next, err := recurrence.Next(input.StartDate, pattern)
	if err != nil {
		return nil, err
	}

	task := &model.RecurringTask{
		ID:             uuid.NewString(),
		Title:          title,
		Description:    strings.TrimSpace(input.Description),
		Priority:       input.Priority,
		CategoryID:     categoryID,
		TeamID:         input.TeamID,
		Pattern:        pattern,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		NextOccurrence: next,
		IsPaused:       false,
	}
	for _, employeeID := range input.AssigneeIDs {
		task.Assignees = append(task.Assignees, model.Employee{ID: employeeID})
	}

	if err := s.store.Create(ctx, task); err != nil {
		return nil, err
	}

	s.log.Info().Str("task", task.ID).Str("pattern", pattern.String()).
		Time("next", next).Msg("recurring task created")
	return task, nil
}

// GetByID is a read-only lookup and takes no per-task lock.
func (s *RecurringTaskService) GetByID(ctx context.Context, id string) (*model.RecurringTask, error) {
	task, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// Update applies field-level edits. Completion history and the next
// occurrence are never touched here; the start date is immutable.
func (s *RecurringTaskService) Update(ctx context.Context, id string, patch model.RecurringTaskUpdate) (*model.RecurringTask, error) {
	release, err := s.locks.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	task, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTaskNotFound
	}

	if patch.Pattern != nil && !patch.Pattern.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, *patch.Pattern)
	}
	if patch.EndDate != nil && patch.EndDate.Before(task.StartDate) {
		return nil, ErrEndBeforeStart
	}

	if err := s.store.Update(ctx, id, patch); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Pause freezes the task: no cycle completions and no schedule movement
// until resumed. Pausing an already-paused task is a no-op success.
func (s *RecurringTaskService) Pause(ctx context.Context, id string) (*model.RecurringTask, error) {
	return s.setPaused(ctx, id, true)
}

// Resume clears the paused flag. The next occurrence keeps the value it had
// when the task was paused, even if that is now in the past; the schedule
// only moves again on the next cycle completion.
func (s *RecurringTaskService) Resume(ctx context.Context, id string) (*model.RecurringTask, error) {
	return s.setPaused(ctx, id, false)
}

func (s *RecurringTaskService) setPaused(ctx context.Context, id string, paused bool) (*model.RecurringTask, error) {
	release, err := s.locks.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	task, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTaskNotFound
	}
	if task.IsPaused == paused {
		return task, nil
	}

	if err := s.store.SetPaused(ctx, id, paused); err != nil {
		return nil, err
	}
	task.IsPaused = paused
	return task, nil
}

// CompleteCycle marks the current occurrence done: it appends exactly one
// completion record and advances the next occurrence by the task's pattern.
// Paused and ended tasks are refused with no state change.
func (s *RecurringTaskService) CompleteCycle(ctx context.Context, id, completedBy string) (*model.RecurringTask, error) {
	completedBy = strings.TrimSpace(completedBy)
	if completedBy == "" {
		return nil, fmt.Errorf("%w: completedBy is required", ErrInvalidInput)
	}

	release, err := s.locks.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer release()

	task, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTaskNotFound
	}
	if task.IsPaused {
		return nil, ErrTaskPaused
	}

	now := s.now()
	if task.Ended(now) {
		return nil, ErrTaskEnded
	}

	next, err := recurrence.Next(task.NextOccurrence, task.Pattern)
	if err != nil {
		return nil, err
	}

	rec := model.CompletionRecord{
		ID:          uuid.NewString(),
		OccurredAt:  now,
		CompletedBy: completedBy,
	}
	if err := s.store.AppendCompletion(ctx, id, rec, next); err != nil {
		return nil, err
	}

	s.log.Info().Str("task", id).Str("by", completedBy).
		Time("next", next).Msg("cycle completed")

	task, ok, err = s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

// Delete removes the task entirely (DeleteAll) or halts future scheduling
// while keeping the record and its history (DeleteStop).
func (s *RecurringTaskService) Delete(ctx context.Context, id string, mode DeleteMode) error {
	release, err := s.locks.acquire(ctx, id)
	if err != nil {
		return err
	}
	defer release()

	_, ok, err := s.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrTaskNotFound
	}

	switch mode {
	case DeleteAll:
		if err := s.store.Delete(ctx, id); err != nil {
			return err
		}
		s.log.Info().Str("task", id).Msg("recurring task deleted")
		return nil
	case DeleteStop:
		now := s.now()
		paused := true
		patch := model.RecurringTaskUpdate{EndDate: &now, IsPaused: &paused}
		if err := s.store.Update(ctx, id, patch); err != nil {
			return err
		}
		s.log.Info().Str("task", id).Time("end", now).Msg("recurring task stopped")
		return nil
	default:
		return fmt.Errorf("%w: unknown delete mode %v", ErrInvalidInput, mode)
	}
}

// ListDue returns unpaused tasks whose next occurrence has arrived.
func (s *RecurringTaskService) ListDue(ctx context.Context, now time.Time) ([]model.RecurringTask, error) {
	return s.store.ListDue(ctx, now)
}
