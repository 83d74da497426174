package service

import (
	"errors"

	"github.com/HillyAttic/taskboard/internal/recurrence"
)

var (
	// ErrTaskNotFound is returned when an operation references a task id
	// that does not exist (or was fully deleted).
	ErrTaskNotFound = errors.New("recurring task not found")

	// ErrTaskPaused is returned by CompleteCycle on a paused task. The
	// caller may resume the task and retry.
	ErrTaskPaused = errors.New("recurring task is paused")

	// ErrTaskEnded is returned by CompleteCycle once the task's end date
	// has passed. No further occurrences are scheduled after that point.
	ErrTaskEnded = errors.New("recurring task has ended")

	// ErrConflict signals a lost per-task serialization race. The whole
	// operation may be retried after re-reading current state.
	ErrConflict = errors.New("concurrent modification of recurring task")

	// ErrInvalidInput covers empty titles, empty actor ids, and similar
	// rejected fields.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEndBeforeStart rejects an end date earlier than the start date.
	ErrEndBeforeStart = errors.New("end date is before start date")

	// ErrInvalidPattern mirrors the calculator's sentinel so callers can
	// match it without importing the recurrence package.
	ErrInvalidPattern = recurrence.ErrInvalidPattern
)
