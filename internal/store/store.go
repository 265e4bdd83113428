// Package store owns the task collection and its timer state machine.
//
// All mutation — user actions and clock ticks — is serialized through one
// mutex, and the persistence write happens synchronously inside the same
// critical section, so a later save can never be overtaken by an earlier
// stale one. The in-memory collection stays authoritative when a save
// fails: the error is logged and the next successful save reconciles.
package store

import (
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/pacerlabs/pacer/internal/domain"
	"github.com/pacerlabs/pacer/internal/infra/metrics"
	"github.com/pacerlabs/pacer/internal/persist"
	"github.com/pacerlabs/pacer/internal/view"
)

// Options tune the store. Zero values select production defaults.
type Options struct {
	TickSeconds int64            // seconds accrued per tick (default 1)
	Now         func() time.Time // clock override for tests (default time.Now)
}

// Store is the single owner of all task state.
type Store struct {
	mu       sync.Mutex
	tasks    []domain.Task // newest first
	gateway  *persist.Gateway
	notifier domain.Notifier
	log      *zap.Logger

	tickSeconds int64
	now         func() time.Time

	subs []func()
}

// New creates a store and loads the persisted collection through the
// gateway. A corrupt or missing collection starts empty.
func New(gateway *persist.Gateway, notifier domain.Notifier, log *zap.Logger, opts Options) *Store {
	if opts.TickSeconds <= 0 {
		opts.TickSeconds = 1
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Store{
		tasks:       gateway.Load(),
		gateway:     gateway,
		notifier:    notifier,
		log:         log,
		tickSeconds: opts.TickSeconds,
		now:         opts.Now,
	}
	s.updateRunningGauge()
	return s
}

// Subscribe registers a callback invoked after every mutation that changed
// task state. The presentation layer uses it to decide when to re-render.
func (s *Store) Subscribe(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// ─── Mutations ──────────────────────────────────────────────────────────────

// AddTask creates a running task at the head of the collection. A name that
// is empty after trimming is silently rejected (ok=false, nothing changes).
// durationSeconds == 0 creates an open-ended task.
func (s *Store) AddTask(name string, durationSeconds int64) (domain.Task, bool) {
	s.mu.Lock()

	task, ok := domain.NewTask(name, durationSeconds, s.now())
	if !ok {
		s.mu.Unlock()
		return domain.Task{}, false
	}

	s.tasks = slices.Insert(s.tasks, 0, task)
	s.persistLocked()

	kind := "open_ended"
	if task.Timed {
		kind = "timed"
	}
	metrics.TasksCreated.WithLabelValues(kind).Inc()
	s.updateRunningGauge()
	s.mu.Unlock()

	s.changed()
	return task, true
}

// TogglePause flips a task between RUNNING and PAUSED. Unknown ids and
// COMPLETED tasks are silent no-ops — the presentation layer may race with
// completions, so neither case is an error.
func (s *Store) TogglePause(id string) (domain.Task, bool) {
	s.mu.Lock()

	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.Task{}, false
	}
	t := &s.tasks[i]
	if t.IsTerminal() {
		snap := *t
		s.mu.Unlock()
		return snap, true
	}

	if t.Status == domain.StatusRunning {
		t.Status = domain.StatusPaused
	} else {
		t.Status = domain.StatusRunning
	}
	s.persistLocked()
	s.updateRunningGauge()
	snap := *t
	s.mu.Unlock()

	s.changed()
	return snap, true
}

// StopTask forces a task to COMPLETED regardless of prior state. Elapsed is
// never rewound. A timed task stopped at or past its target duration fires
// the completion notification; stopping early does not.
func (s *Store) StopTask(id string) (domain.Task, bool) {
	s.mu.Lock()

	i := s.indexOf(id)
	if i < 0 {
		s.mu.Unlock()
		return domain.Task{}, false
	}
	t := &s.tasks[i]
	if t.IsTerminal() {
		snap := *t
		s.mu.Unlock()
		return snap, true
	}

	t.Status = domain.StatusCompleted
	notify := t.Timed && t.ElapsedSeconds >= t.DurationSeconds
	s.persistLocked()

	metrics.TasksCompleted.WithLabelValues("manual").Inc()
	s.updateRunningGauge()
	snap := *t
	s.mu.Unlock()

	if notify {
		s.notifyCompletion(snap.Name)
	}
	s.changed()
	return snap, true
}

// OnTick advances every RUNNING task by one interval. Timed tasks that reach
// their target are clamped to it and transition to COMPLETED; a single tick
// may complete several tasks, each firing one notification. The collection
// is persisted only when at least one task changed.
func (s *Store) OnTick() {
	s.mu.Lock()
	metrics.TicksTotal.Inc()

	changed := false
	var completions []string
	for i := range s.tasks {
		t := &s.tasks[i]
		if t.Status != domain.StatusRunning {
			continue
		}
		t.ElapsedSeconds += s.tickSeconds
		changed = true

		if t.Timed && t.ElapsedSeconds >= t.DurationSeconds {
			t.ElapsedSeconds = t.DurationSeconds
			t.Status = domain.StatusCompleted
			completions = append(completions, t.Name)
			metrics.TasksCompleted.WithLabelValues("timeout").Inc()
		}
	}

	if changed {
		s.persistLocked()
		s.updateRunningGauge()
	}
	s.mu.Unlock()

	for _, name := range completions {
		s.notifyCompletion(name)
	}
	if changed {
		s.changed()
	}
}

// ─── Projections ────────────────────────────────────────────────────────────

// Tasks returns a snapshot of the whole collection, newest first.
func (s *Store) Tasks() []domain.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks)
}

// TodayTasks returns tasks created on the current local day, active tasks
// before completed ones, newest first within each bucket.
func (s *Store) TodayTasks() []domain.Task {
	return view.Today(s.Tasks(), s.now())
}

// TasksByDate returns the full history grouped by local day, newest day
// first.
func (s *Store) TasksByDate() []view.DayGroup {
	return view.History(s.Tasks(), s.now())
}

// ─── Internals ──────────────────────────────────────────────────────────────

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// persistLocked rewrites the whole collection. Failures are logged, never
// propagated: in-memory state is authoritative.
func (s *Store) persistLocked() {
	start := time.Now()
	if err := s.gateway.Save(slices.Clone(s.tasks)); err != nil {
		metrics.SaveFailures.Inc()
		s.log.Error("persist tasks failed", zap.Error(err))
		return
	}
	metrics.SaveLatency.Observe(time.Since(start).Seconds())
}

// notifyCompletion is fire-and-forget: the notifier's failure never touches
// task state.
func (s *Store) notifyCompletion(name string) {
	metrics.NotificationsSent.Inc()
	if err := s.notifier.NotifyCompletion(name); err != nil {
		s.log.Warn("completion notification failed", zap.String("task", name), zap.Error(err))
	}
}

func (s *Store) changed() {
	s.mu.Lock()
	subs := slices.Clone(s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

func (s *Store) updateRunningGauge() {
	n := 0
	for i := range s.tasks {
		if s.tasks[i].Status == domain.StatusRunning {
			n++
		}
	}
	metrics.TasksRunning.Set(float64(n))
}
