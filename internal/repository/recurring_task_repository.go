package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/HillyAttic/taskboard/internal/model"
)

// RecurringTaskRepository persists recurring tasks and their completion
// history.
type RecurringTaskRepository struct {
	db *gorm.DB
}

func NewRecurringTaskRepository(db *gorm.DB) *RecurringTaskRepository {
	return &RecurringTaskRepository{db: db}
}

func (r *RecurringTaskRepository) Create(ctx context.Context, task *model.RecurringTask) error {
	// Assignees reference existing employees; only the join rows are written.
	if err := r.db.WithContext(ctx).Omit("Assignees.*").Create(task).Error; err != nil {
		return fmt.Errorf("create recurring task: %w", err)
	}
	return nil
}

// Get loads a task with its assignees and completion history in insertion
// order. The bool reports whether the task exists.
func (r *RecurringTaskRepository) Get(ctx context.Context, id string) (*model.RecurringTask, bool, error) {
	var task model.RecurringTask
	err := r.db.WithContext(ctx).
		Preload("Assignees").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("seq ASC")
		}).
		Where("id = ?", id).
		First(&task).Error
	switch {
	case err == nil:
		return &task, true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, false, nil
	default:
		return nil, false, fmt.Errorf("find recurring task: %w", err)
	}
}

// Update applies a partial edit. Completion history is never touched here.
func (r *RecurringTaskRepository) Update(ctx context.Context, id string, patch model.RecurringTaskUpdate) error {
	updates := map[string]interface{}{}
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Priority != nil {
		updates["priority"] = *patch.Priority
	}
	if patch.CategoryID != nil {
		updates["category_id"] = *patch.CategoryID
	}
	if patch.TeamID != nil {
		updates["team_id"] = *patch.TeamID
	}
	if patch.Pattern != nil {
		updates["pattern"] = *patch.Pattern
	}
	if patch.EndDate != nil {
		updates["end_date"] = *patch.EndDate
	}
	if patch.IsPaused != nil {
		updates["is_paused"] = *patch.IsPaused
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&model.RecurringTask{ID: id}).Updates(updates).Error; err != nil {
				return fmt.Errorf("update recurring task: %w", err)
			}
		}
		if patch.AssigneeIDs != nil {
			assignees := make([]model.Employee, 0, len(patch.AssigneeIDs))
			for _, employeeID := range patch.AssigneeIDs {
				assignees = append(assignees, model.Employee{ID: employeeID})
			}
			if err := tx.Model(&model.RecurringTask{ID: id}).
				Association("Assignees").Replace(assignees); err != nil {
				return fmt.Errorf("replace assignees: %w", err)
			}
		}
		return nil
	})
}

func (r *RecurringTaskRepository) SetPaused(ctx context.Context, id string, paused bool) error {
	if err := r.db.WithContext(ctx).Model(&model.RecurringTask{ID: id}).
		Update("is_paused", paused).Error; err != nil {
		return fmt.Errorf("set paused: %w", err)
	}
	return nil
}

// AppendCompletion inserts one completion record and advances the task's
// next occurrence in a single transaction, so a crash between the two
// writes can never leave history and schedule out of step.
func (r *RecurringTaskRepository) AppendCompletion(ctx context.Context, taskID string, rec model.CompletionRecord, next time.Time) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.CompletionRecord{}).
			Where("task_id = ?", taskID).Count(&count).Error; err != nil {
			return fmt.Errorf("count history: %w", err)
		}

		rec.TaskID = taskID
		rec.Seq = int(count) + 1
		if err := tx.Create(&rec).Error; err != nil {
			return fmt.Errorf("append completion: %w", err)
		}

		if err := tx.Model(&model.RecurringTask{ID: taskID}).
			Update("next_occurrence", next).Error; err != nil {
			return fmt.Errorf("advance next occurrence: %w", err)
		}
		return nil
	})
}

// Delete removes a task, its history, and its assignee links entirely.
func (r *RecurringTaskRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.CompletionRecord{}).Error; err != nil {
			return fmt.Errorf("delete history: %w", err)
		}
		task := model.RecurringTask{ID: id}
		if err := tx.Model(&task).Association("Assignees").Clear(); err != nil {
			return fmt.Errorf("clear assignees: %w", err)
		}
		if err := tx.Delete(&task).Error; err != nil {
			return fmt.Errorf("delete recurring task: %w", err)
		}
		return nil
	})
}

// ListDue returns unpaused tasks whose next occurrence is at or before now
// and whose end date, if any, has not passed.
func (r *RecurringTaskRepository) ListDue(ctx context.Context, now time.Time) ([]model.RecurringTask, error) {
	var tasks []model.RecurringTask
	if err := r.db.WithContext(ctx).
		Where("is_paused = ? AND next_occurrence <= ? AND (end_date IS NULL OR end_date > ?)", false, now, now).
		Order("next_occurrence ASC").
		Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("list due tasks: %w", err)
	}
	return tasks, nil
}
