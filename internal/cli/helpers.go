package cli

import (
	"fmt"
	"net/http"

	"github.com/pacerlabs/pacer/internal/domain"
)

// shortID trims a task id for display. Commands accept the short form back.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// resolveID expands a possibly-shortened task id to the full one by prefix
// match against the live collection.
func (c *client) resolveID(arg string) (string, error) {
	var tasks []domain.Task
	if err := c.do(http.MethodGet, "/api/tasks", nil, &tasks); err != nil {
		return "", err
	}

	var match string
	for _, t := range tasks {
		if t.ID == arg {
			return t.ID, nil
		}
		if len(arg) >= 4 && len(t.ID) >= len(arg) && t.ID[:len(arg)] == arg {
			if match != "" {
				return "", fmt.Errorf("task id %q is ambiguous", arg)
			}
			match = t.ID
		}
	}
	if match == "" {
		return "", fmt.Errorf("no task with id %q", arg)
	}
	return match, nil
}

// formatSeconds renders a second count as H:MM:SS, or MM:SS under an hour.
func formatSeconds(s int64) string {
	h := s / 3600
	m := (s % 3600) / 60
	sec := s % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%02d:%02d", m, sec)
}

// formatTarget renders the target column for the task tables.
func formatTarget(t domain.Task) string {
	if !t.Timed {
		return "—"
	}
	return formatSeconds(t.DurationSeconds)
}
