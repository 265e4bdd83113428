// Package view computes the read-only projections over the task collection:
// the today view, the day-grouped history, and their aggregate counts.
// Everything here is a pure function over a snapshot — nothing is cached.
package view

import (
	"sort"
	"time"

	"github.com/pacerlabs/pacer/internal/domain"
)

// Today filters the collection to tasks created on the same local calendar
// day as now, then orders them: running and paused tasks first, completed
// tasks after, newest first within each bucket.
func Today(tasks []domain.Task, now time.Time) []domain.Task {
	day := domain.StartOfDay(now)
	out := make([]domain.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Day().Equal(day) {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.IsActive() != b.IsActive() {
			return a.IsActive()
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
	return out
}

// DayGroup is one history bucket: every task created on Day, in stable
// collection order (which is newest-first by construction).
type DayGroup struct {
	Day   time.Time     `json:"day"`
	Label string        `json:"label"`
	Tasks []domain.Task `json:"tasks"`
}

// History groups the whole collection by local calendar day, newest day
// first. Within a group, collection order is preserved.
func History(tasks []domain.Task, now time.Time) []DayGroup {
	byDay := make(map[time.Time]*DayGroup)
	var order []time.Time
	for _, t := range tasks {
		day := t.Day()
		g, ok := byDay[day]
		if !ok {
			g = &DayGroup{Day: day, Label: DayLabel(day, now)}
			byDay[day] = g
			order = append(order, day)
		}
		g.Tasks = append(g.Tasks, t)
	}
	sort.Slice(order, func(i, j int) bool { return order[i].After(order[j]) })

	out := make([]DayGroup, 0, len(order))
	for _, day := range order {
		out = append(out, *byDay[day])
	}
	return out
}

// DayLabel renders a group heading: "Today" and "Yesterday" for the two most
// recent calendar days relative to now, a full date otherwise.
func DayLabel(day, now time.Time) string {
	today := domain.StartOfDay(now)
	switch {
	case day.Equal(today):
		return "Today"
	case day.Equal(today.AddDate(0, 0, -1)):
		return "Yesterday"
	default:
		return day.Format("Monday, January 2, 2006")
	}
}

// Counts returns the running and completed task counts over a today-view
// snapshot. Recomputed on every call.
func Counts(tasks []domain.Task) (running, completed int) {
	for _, t := range tasks {
		switch t.Status {
		case domain.StatusRunning:
			running++
		case domain.StatusCompleted:
			completed++
		}
	}
	return running, completed
}
