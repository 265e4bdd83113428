// Package domain holds the core task-timer types.
// A Task is a single timed unit of attention: created running, advanced by
// clock ticks, paused/resumed/stopped by the user, and retained forever as
// history once completed.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Status tracks the task timer lifecycle.
type Status string

const (
	StatusRunning   Status = "RUNNING"
	StatusPaused    Status = "PAUSED"
	StatusCompleted Status = "COMPLETED"
)

// Task is one timer entry. Completed is terminal: once set, neither status
// nor elapsed may change again.
type Task struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	DurationSeconds int64     `json:"duration_seconds"` // 0 means open-ended
	ElapsedSeconds  int64     `json:"elapsed_seconds"`
	Status          Status    `json:"status"`
	Timed           bool      `json:"timed"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewTask builds a running task with a fresh ID. The name is trimmed; an
// empty result returns ok=false and the caller must not insert the task.
func NewTask(name string, durationSeconds int64, now time.Time) (Task, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Task{}, false
	}
	return Task{
		ID:              uuid.NewString(),
		Name:            name,
		DurationSeconds: durationSeconds,
		Status:          StatusRunning,
		Timed:           durationSeconds > 0,
		CreatedAt:       now,
	}, true
}

// IsTerminal returns true once the task can no longer change.
func (t *Task) IsTerminal() bool {
	return t.Status == StatusCompleted
}

// IsActive returns true while the task still occupies the user's attention
// (running or paused). Active tasks sort ahead of completed ones in the
// today view.
func (t *Task) IsActive() bool {
	return t.Status == StatusRunning || t.Status == StatusPaused
}

// RemainingSeconds returns how far a timed task is from its target,
// and 0 for open-ended tasks.
func (t *Task) RemainingSeconds() int64 {
	if !t.Timed {
		return 0
	}
	if t.ElapsedSeconds >= t.DurationSeconds {
		return 0
	}
	return t.DurationSeconds - t.ElapsedSeconds
}

// Day returns the start of the task's local calendar day, the grouping key
// for the history view.
func (t *Task) Day() time.Time {
	return StartOfDay(t.CreatedAt)
}

// StartOfDay truncates a timestamp to local midnight.
func StartOfDay(ts time.Time) time.Time {
	ts = ts.Local()
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}
