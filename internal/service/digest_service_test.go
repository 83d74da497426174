package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/HillyAttic/taskboard/internal/model"
	"github.com/HillyAttic/taskboard/internal/recurrence"
)

type staticTeams struct{ teams []model.Team }

func (s staticTeams) ListAll(context.Context) ([]model.Team, error) { return s.teams, nil }

func TestDueDigestEmptyWhenNothingDue(t *testing.T) {
	store := newMemStore()
	svc := NewDigestService(store, staticTeams{}, nil)

	text, err := svc.DueDigest(context.Background(), time.Now())
	if err != nil {
		t.Fatalf("DueDigest() err=%v", err)
	}
	if text != "" {
		t.Fatalf("digest %q, want empty", text)
	}
}

func TestDueDigestGroupsByTeam(t *testing.T) {
	store := newMemStore()
	now := time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC)
	teamID := "team-ops"

	store.tasks["t1"] = &model.RecurringTask{
		ID:             "t1",
		Title:          "Backup audit",
		TeamID:         &teamID,
		Pattern:        recurrence.Weekly,
		NextOccurrence: now.Add(-2 * time.Hour),
	}
	store.tasks["t2"] = &model.RecurringTask{
		ID:             "t2",
		Title:          "Licence review",
		Pattern:        recurrence.Monthly,
		NextOccurrence: now.Add(-72 * time.Hour),
	}
	store.tasks["not-due"] = &model.RecurringTask{
		ID:             "not-due",
		Title:          "Future work",
		Pattern:        recurrence.Daily,
		NextOccurrence: now.Add(time.Hour),
	}

	svc := NewDigestService(store, staticTeams{teams: []model.Team{{ID: teamID, Name: "Operations"}}}, nil)
	text, err := svc.DueDigest(context.Background(), now)
	if err != nil {
		t.Fatalf("DueDigest() err=%v", err)
	}

	if !strings.Contains(text, "Operations") {
		t.Errorf("digest missing team name:\n%s", text)
	}
	if !strings.Contains(text, "Backup audit") || !strings.Contains(text, "Licence review") {
		t.Errorf("digest missing due tasks:\n%s", text)
	}
	if strings.Contains(text, "Future work") {
		t.Errorf("digest contains task that is not due:\n%s", text)
	}
	if !strings.Contains(text, "Unassigned") {
		t.Errorf("digest missing unassigned group:\n%s", text)
	}
	// More than a day late gets the warning icon.
	if !strings.Contains(text, "⚠️ Licence review") {
		t.Errorf("overdue task not flagged:\n%s", text)
	}
}
