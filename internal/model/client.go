package model

import "time"

// Client is an external customer served by teams.
type Client struct {
	ID           string `gorm:"primaryKey"`
	Name         string
	ContactEmail string
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
