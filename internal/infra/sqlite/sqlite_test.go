package sqlite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pacerlabs/pacer/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// ─── Database Lifecycle ─────────────────────────────────────────────────────

func TestOpen_CreatesDatabase(t *testing.T) {
	dir := t.TempDir()
	db, err := Open(dir)
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer db.Close()

	if _, err := os.Stat(filepath.Join(dir, "state.db")); os.IsNotExist(err) {
		t.Error("state.db should exist")
	}
}

func TestOpen_Ping(t *testing.T) {
	db := newTestDB(t)
	if err := db.Ping(); err != nil {
		t.Fatalf("Ping() error: %v", err)
	}
}

// ─── Blob Store ─────────────────────────────────────────────────────────────

func TestReadBlob_Missing(t *testing.T) {
	db := newTestDB(t)
	_, err := db.ReadBlob("tasks")
	if !errors.Is(err, domain.ErrBlobNotFound) {
		t.Errorf("ReadBlob(missing) error = %v, want ErrBlobNotFound", err)
	}
}

func TestWriteBlob_RoundTrip(t *testing.T) {
	db := newTestDB(t)
	want := []byte(`{"version":1,"tasks":[]}`)

	if err := db.WriteBlob("tasks", want); err != nil {
		t.Fatalf("WriteBlob() error: %v", err)
	}
	got, err := db.ReadBlob("tasks")
	if err != nil {
		t.Fatalf("ReadBlob() error: %v", err)
	}
	if string(got) != string(want) {
		t.Errorf("ReadBlob() = %q, want %q", got, want)
	}
}

func TestWriteBlob_Replaces(t *testing.T) {
	db := newTestDB(t)
	if err := db.WriteBlob("tasks", []byte("v1")); err != nil {
		t.Fatalf("WriteBlob() error: %v", err)
	}
	if err := db.WriteBlob("tasks", []byte("v2")); err != nil {
		t.Fatalf("WriteBlob() second error: %v", err)
	}
	got, err := db.ReadBlob("tasks")
	if err != nil {
		t.Fatalf("ReadBlob() error: %v", err)
	}
	if string(got) != "v2" {
		t.Errorf("ReadBlob() = %q, want %q", got, "v2")
	}
}

// ─── Notifications ──────────────────────────────────────────────────────────

func TestNotifications_PendingAndShown(t *testing.T) {
	db := newTestDB(t)

	id1, err := db.InsertNotification(domain.Notification{TaskName: "Pomodoro", CreatedAt: time.Now()})
	if err != nil {
		t.Fatalf("InsertNotification() error: %v", err)
	}
	if _, err := db.InsertNotification(domain.Notification{TaskName: "Stretch", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("InsertNotification() error: %v", err)
	}

	pending, err := db.ListPendingNotifications(10)
	if err != nil {
		t.Fatalf("ListPendingNotifications() error: %v", err)
	}
	if len(pending) != 2 {
		t.Fatalf("pending = %d, want 2", len(pending))
	}
	if pending[0].TaskName != "Pomodoro" {
		t.Errorf("oldest pending = %q, want %q", pending[0].TaskName, "Pomodoro")
	}

	if err := db.MarkNotificationShown(id1); err != nil {
		t.Fatalf("MarkNotificationShown() error: %v", err)
	}
	pending, err = db.ListPendingNotifications(10)
	if err != nil {
		t.Fatalf("ListPendingNotifications() error: %v", err)
	}
	if len(pending) != 1 || pending[0].TaskName != "Stretch" {
		t.Errorf("pending after ack = %v, want only Stretch", pending)
	}
}
