package model

import "time"

// Employee is a staff member that can be assigned to recurring tasks.
type Employee struct {
	ID        string `gorm:"primaryKey"`
	FirstName string
	LastName  string
	Email     string `gorm:"uniqueIndex"`
	Role      string
	TeamID    *string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
