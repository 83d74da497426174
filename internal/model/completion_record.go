package model

import "time"

// CompletionRecord is one completed occurrence of a recurring task. Records
// are append-only: created once per successful cycle completion and never
// updated or reordered. Seq fixes the insertion order per task.
type CompletionRecord struct {
	ID          string `gorm:"primaryKey"`
	TaskID      string `gorm:"index:idx_task_seq,unique"`
	Seq         int    `gorm:"index:idx_task_seq,unique"`
	OccurredAt  time.Time
	CompletedBy string
	CreatedAt   time.Time
}
