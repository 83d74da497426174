package model

import "time"

// Category groups tasks by area (operations, finance, maintenance, etc.).
type Category struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Tasks     []RecurringTask `gorm:"foreignKey:CategoryID"`
}
