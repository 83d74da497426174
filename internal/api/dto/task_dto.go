package dto

import "time"

type CreateTaskRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	Category    string     `json:"category"`
	TeamID      *string    `json:"team_id"`
	AssigneeIDs []string   `json:"assignee_ids"`
	Pattern     string     `json:"pattern"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type UpdateTaskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Priority    *string    `json:"priority"`
	CategoryID  *uint      `json:"category_id"`
	TeamID      *string    `json:"team_id"`
	AssigneeIDs []string   `json:"assignee_ids"`
	Pattern     *string    `json:"pattern"`
	EndDate     *time.Time `json:"end_date"`
	IsPaused    *bool      `json:"is_paused"`
}

type CompleteCycleRequest struct {
	CompletedBy string `json:"completed_by"`
}

type CompletionRecordResponse struct {
	OccurredAt  time.Time `json:"occurred_at"`
	CompletedBy string    `json:"completed_by"`
}

type TaskResponse struct {
	ID             string                     `json:"id"`
	Title          string                     `json:"title"`
	Description    string                     `json:"description,omitempty"`
	Priority       string                     `json:"priority,omitempty"`
	CategoryID     *uint                      `json:"category_id,omitempty"`
	TeamID         *string                    `json:"team_id,omitempty"`
	AssigneeIDs    []string                   `json:"assignee_ids,omitempty"`
	Pattern        string                     `json:"pattern"`
	StartDate      time.Time                  `json:"start_date"`
	EndDate        *time.Time                 `json:"end_date,omitempty"`
	NextOccurrence time.Time                  `json:"next_occurrence"`
	IsPaused       bool                       `json:"is_paused"`
	History        []CompletionRecordResponse `json:"history"`
}
