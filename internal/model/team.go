package model

import "time"

// Team is a group of employees tasks can be assigned to.
type Team struct {
	ID        string  `gorm:"primaryKey"`
	Name      string  `gorm:"uniqueIndex"`
	ClientID  *string `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Members   []Employee `gorm:"foreignKey:TeamID"`
}
