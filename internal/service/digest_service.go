package service

import (
	"context"
	"fmt"
	"html"
	"strings"
	"time"

	"github.com/HillyAttic/taskboard/internal/model"
)

// TeamLister provides team names for digest grouping.
type TeamLister interface {
	ListAll(ctx context.Context) ([]model.Team, error)
}

// CategoryLister provides category names for digest lines.
type CategoryLister interface {
	ListAll(ctx context.Context) ([]model.Category, error)
}

// DigestService builds human-readable summaries of due recurring tasks for
// the ops notification channel.
type DigestService struct {
	tasks      RecurringTaskStore
	teams      TeamLister
	categories CategoryLister
}

func NewDigestService(tasks RecurringTaskStore, teams TeamLister, categories CategoryLister) *DigestService {
	return &DigestService{tasks: tasks, teams: teams, categories: categories}
}

// DueDigest renders the tasks due at or before now, grouped by team.
// The returned string is Telegram-flavored HTML; it is empty when nothing
// is due, so callers can skip sending.
func (s *DigestService) DueDigest(ctx context.Context, now time.Time) (string, error) {
	due, err := s.tasks.ListDue(ctx, now)
	if err != nil {
		return "", err
	}
	if len(due) == 0 {
		return "", nil
	}

	teamNames := make(map[string]string)
	if s.teams != nil {
		teams, err := s.teams.ListAll(ctx)
		if err != nil {
			return "", err
		}
		for _, team := range teams {
			teamNames[team.ID] = team.Name
		}
	}

	catNames := make(map[uint]string)
	if s.categories != nil {
		categories, err := s.categories.ListAll(ctx)
		if err != nil {
			return "", err
		}
		for _, cat := range categories {
			catNames[cat.ID] = cat.Name
		}
	}

	byTeam := make(map[string][]model.RecurringTask)
	var order []string
	for _, task := range due {
		key := ""
		if task.TeamID != nil {
			key = *task.TeamID
		}
		if _, seen := byTeam[key]; !seen {
			order = append(order, key)
		}
		byTeam[key] = append(byTeam[key], task)
	}

	var builder strings.Builder
	builder.WriteString("📋 <b>Recurring tasks due</b>\n")
	builder.WriteString(fmt.Sprintf("🗓 %s\n", now.Format("2006-01-02")))

	for _, key := range order {
		name := "Unassigned"
		if key != "" {
			if n, ok := teamNames[key]; ok && n != "" {
				name = n
			} else {
				name = key
			}
		}
		builder.WriteString(fmt.Sprintf("\n👥 <b>%s</b>\n", html.EscapeString(name)))
		for _, task := range byTeam[key] {
			builder.WriteString(formatDueTask(task, catNames, now))
		}
	}

	return strings.TrimSpace(builder.String()), nil
}

func formatDueTask(task model.RecurringTask, catNames map[uint]string, now time.Time) string {
	var sb strings.Builder

	icon := "⏳"
	if now.Sub(task.NextOccurrence) > 24*time.Hour {
		icon = "⚠️"
	}

	title := html.EscapeString(strings.TrimSpace(task.Title))
	sb.WriteString(fmt.Sprintf("%s %s", icon, title))

	if task.CategoryID != nil {
		if name, ok := catNames[*task.CategoryID]; ok {
			trimmed := strings.TrimSpace(name)
			if trimmed != "" {
				sb.WriteString(fmt.Sprintf(" <i>(%s)</i>", html.EscapeString(trimmed)))
			}
		}
	}

	sb.WriteString(fmt.Sprintf("\n   ♻️ %s · due %s",
		task.Pattern, task.NextOccurrence.In(now.Location()).Format("2006-01-02")))

	sb.WriteByte('\n')
	return sb.String()
}
