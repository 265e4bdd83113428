// Package notify implements the completion-notice gateway. The store calls
// it fire-and-forget when a timed task finishes; the Hub queues the notice
// in SQLite for the presentation layer to poll and acknowledge.
package notify

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/pacerlabs/pacer/internal/domain"
	"github.com/pacerlabs/pacer/internal/infra/sqlite"
)

// Hub records completion notices durably and serves the pending queue.
type Hub struct {
	db  *sqlite.DB
	log *zap.Logger
}

// NewHub creates a hub over the given database.
func NewHub(db *sqlite.DB, log *zap.Logger) *Hub {
	return &Hub{db: db, log: log}
}

// NotifyCompletion queues one notice for the finished task.
func (h *Hub) NotifyCompletion(taskName string) error {
	_, err := h.db.InsertNotification(domain.Notification{
		TaskName:  taskName,
		CreatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("queue completion notice: %w", err)
	}
	h.log.Info("task completed", zap.String("task", taskName))
	return nil
}

// Pending returns notices not yet shown to the user, oldest first.
func (h *Hub) Pending(limit int) ([]domain.Notification, error) {
	return h.db.ListPendingNotifications(limit)
}

// MarkShown acknowledges a notice after the presentation layer displayed it.
func (h *Hub) MarkShown(id int64) error {
	return h.db.MarkNotificationShown(id)
}

// LogNotifier is a Notifier that only logs. Used when the daemon runs
// without a database-backed hub (tests, embedding).
type LogNotifier struct {
	Log *zap.Logger
}

// NotifyCompletion logs the completion and always succeeds.
func (l LogNotifier) NotifyCompletion(taskName string) error {
	l.Log.Info("task completed", zap.String("task", taskName))
	return nil
}
