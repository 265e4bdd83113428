package view

import (
	"testing"
	"time"

	"github.com/pacerlabs/pacer/internal/domain"
)

var now = time.Date(2025, 6, 10, 14, 0, 0, 0, time.Local)

func taskOn(id string, status domain.Status, created time.Time) domain.Task {
	return domain.Task{ID: id, Name: id, Status: status, CreatedAt: created}
}

// ─── Today View ─────────────────────────────────────────────────────────────

func TestToday_FiltersToCurrentDay(t *testing.T) {
	tasks := []domain.Task{
		taskOn("today", domain.StatusRunning, now.Add(-time.Hour)),
		taskOn("yesterday", domain.StatusRunning, now.Add(-24*time.Hour)),
		taskOn("midnight", domain.StatusPaused, domain.StartOfDay(now)),
	}
	got := Today(tasks, now)
	if len(got) != 2 {
		t.Fatalf("Today() = %d tasks, want 2", len(got))
	}
	for _, task := range got {
		if task.ID == "yesterday" {
			t.Error("Today() included a task from yesterday")
		}
	}
}

func TestToday_ActiveBeforeCompleted(t *testing.T) {
	tasks := []domain.Task{
		taskOn("done-new", domain.StatusCompleted, now.Add(-10*time.Minute)),
		taskOn("run-old", domain.StatusRunning, now.Add(-3*time.Hour)),
		taskOn("done-old", domain.StatusCompleted, now.Add(-2*time.Hour)),
		taskOn("paused-new", domain.StatusPaused, now.Add(-5*time.Minute)),
	}
	got := Today(tasks, now)

	wantOrder := []string{"paused-new", "run-old", "done-new", "done-old"}
	if len(got) != len(wantOrder) {
		t.Fatalf("Today() = %d tasks, want %d", len(got), len(wantOrder))
	}
	for i, id := range wantOrder {
		if got[i].ID != id {
			t.Errorf("position %d = %q, want %q", i, got[i].ID, id)
		}
	}
}

// ─── History View ───────────────────────────────────────────────────────────

func TestHistory_GroupsByDay(t *testing.T) {
	tasks := []domain.Task{
		taskOn("b", domain.StatusCompleted, now.Add(-time.Hour)),
		taskOn("a", domain.StatusCompleted, now.Add(-2*time.Hour)),
		taskOn("old", domain.StatusCompleted, now.Add(-25*time.Hour)),
	}
	got := History(tasks, now)

	if len(got) != 2 {
		t.Fatalf("History() = %d groups, want 2", len(got))
	}
	if got[0].Label != "Today" {
		t.Errorf("group 0 label = %q, want %q", got[0].Label, "Today")
	}
	if got[1].Label != "Yesterday" {
		t.Errorf("group 1 label = %q, want %q", got[1].Label, "Yesterday")
	}
	if len(got[0].Tasks) != 2 || len(got[1].Tasks) != 1 {
		t.Errorf("group sizes = %d/%d, want 2/1", len(got[0].Tasks), len(got[1].Tasks))
	}
	// Stable collection order within a group.
	if got[0].Tasks[0].ID != "b" || got[0].Tasks[1].ID != "a" {
		t.Errorf("group 0 order = %q,%q, want b,a", got[0].Tasks[0].ID, got[0].Tasks[1].ID)
	}
}

func TestHistory_DaysDescending(t *testing.T) {
	tasks := []domain.Task{
		taskOn("ancient", domain.StatusCompleted, now.Add(-31*24*time.Hour)),
		taskOn("recent", domain.StatusCompleted, now),
		taskOn("middle", domain.StatusCompleted, now.Add(-7*24*time.Hour)),
	}
	got := History(tasks, now)
	if len(got) != 3 {
		t.Fatalf("History() = %d groups, want 3", len(got))
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Day.After(got[i].Day) {
			t.Errorf("groups not in descending day order: %v before %v", got[i-1].Day, got[i].Day)
		}
	}
}

// ─── Day Labels ─────────────────────────────────────────────────────────────

func TestDayLabel(t *testing.T) {
	today := domain.StartOfDay(now)
	tests := []struct {
		name string
		day  time.Time
		want string
	}{
		{"today", today, "Today"},
		{"yesterday", today.AddDate(0, 0, -1), "Yesterday"},
		{"older", today.AddDate(0, 0, -5), today.AddDate(0, 0, -5).Format("Monday, January 2, 2006")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DayLabel(tt.day, now); got != tt.want {
				t.Errorf("DayLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

// ─── Counts ─────────────────────────────────────────────────────────────────

func TestCounts(t *testing.T) {
	tasks := []domain.Task{
		{Status: domain.StatusRunning},
		{Status: domain.StatusRunning},
		{Status: domain.StatusPaused},
		{Status: domain.StatusCompleted},
	}
	running, completed := Counts(tasks)
	if running != 2 {
		t.Errorf("running = %d, want 2", running)
	}
	if completed != 1 {
		t.Errorf("completed = %d, want 1", completed)
	}
}
