package model

import (
	"time"

	"github.com/HillyAttic/taskboard/internal/recurrence"
)

// RecurringTaskUpdate is a partial edit of a recurring task. Nil fields are
// left unchanged; AssigneeIDs nil means keep the current assignees, an empty
// slice clears them. StartDate, NextOccurrence, and History are deliberately
// absent: the first is immutable and the latter two only move through cycle
// completion.
type RecurringTaskUpdate struct {
	Title       *string
	Description *string
	Priority    *string
	CategoryID  *uint
	TeamID      *string
	AssigneeIDs []string
	Pattern     *recurrence.Pattern
	EndDate     *time.Time
	IsPaused    *bool
}
