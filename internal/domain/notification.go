package domain

import "time"

// Notification is a pending completion notice. The daemon records one per
// task completion; the presentation layer polls, displays, and acks it.
type Notification struct {
	ID        int64     `json:"id"`
	TaskName  string    `json:"task_name"`
	CreatedAt time.Time `json:"created_at"`
	Shown     bool      `json:"shown"`
}
