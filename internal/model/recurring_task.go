package model

import (
	"time"

	"github.com/HillyAttic/taskboard/internal/recurrence"
)

// RecurringTask is a task that repeats on a fixed pattern. NextOccurrence is
// advanced only by a successful cycle completion and is frozen while the task
// is paused.
type RecurringTask struct {
	ID          string `gorm:"primaryKey"`
	Title       string
	Description string
	Priority    string
	CategoryID  *uint      `gorm:"index"`
	TeamID      *string    `gorm:"index"`
	Assignees   []Employee `gorm:"many2many:task_assignees"`

	Pattern        recurrence.Pattern `gorm:"type:text"`
	StartDate      time.Time
	EndDate        *time.Time
	NextOccurrence time.Time `gorm:"index"`
	IsPaused       bool      `gorm:"default:false"`

	History []CompletionRecord `gorm:"foreignKey:TaskID"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Ended reports whether the task's end date has been set and passed, after
// which no further occurrences are scheduled.
func (t *RecurringTask) Ended(now time.Time) bool {
	return t.EndDate != nil && !now.Before(*t.EndDate)
}
