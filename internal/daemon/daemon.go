package daemon

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/pacerlabs/pacer/internal/api"
	"github.com/pacerlabs/pacer/internal/infra/clock"
	_ "github.com/pacerlabs/pacer/internal/infra/metrics" // Register Prometheus metrics
	"github.com/pacerlabs/pacer/internal/infra/sqlite"
	"github.com/pacerlabs/pacer/internal/notify"
	"github.com/pacerlabs/pacer/internal/persist"
	"github.com/pacerlabs/pacer/internal/store"
	"github.com/pacerlabs/pacer/pkg/logger"
)

// Daemon is the core pacer runtime. It wires together the SQLite blob
// store, the persistence gateway, the notification hub, the task store,
// the clock driver, and the HTTP API.
type Daemon struct {
	Config Config
	Log    *zap.Logger
	DB     *sqlite.DB
	Store  *store.Store
	Hub    *notify.Hub
	Server *api.Server
	Clock  *clock.Driver
	cancel context.CancelFunc
}

// New creates and initializes a Daemon with all services wired.
func New(version string) (*Daemon, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return NewWithConfig(cfg, version)
}

// NewWithConfig creates a Daemon with the given configuration.
func NewWithConfig(cfg Config, version string) (*Daemon, error) {
	log := logger.New(logger.Config{
		Level:    cfg.Logging.Level,
		Encoding: cfg.Logging.Encoding,
	})

	db, err := sqlite.Open(cfg.Storage.Dir)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	hub := notify.NewHub(db, log)
	gateway := persist.NewGateway(db, log)

	// One value drives both the ticker cadence and the per-tick accrual,
	// so elapsed time tracks wall clock for every configured interval.
	interval := cfg.TickInterval()
	st := store.New(gateway, hub, log, store.Options{
		TickSeconds: int64(interval / time.Second),
	})

	srv := api.NewServer(st, version)
	srv.SetHub(hub)
	if cfg.Telemetry.Prometheus {
		srv.EnableMetrics()
	}

	d := &Daemon{
		Config: cfg,
		Log:    log,
		DB:     db,
		Store:  st,
		Hub:    hub,
		Server: srv,
		Clock:  clock.NewDriver(interval, st.OnTick),
	}
	return d, nil
}

// Serve starts the clock driver and the HTTP server, blocking until
// shutdown.
func (d *Daemon) Serve(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	// The tick engine runs for the life of the daemon.
	go d.Clock.Run(ctx)

	addr := fmt.Sprintf("%s:%d", d.Config.API.Host, d.Config.API.Port)
	httpServer := &http.Server{
		Addr:         addr,
		Handler:      d.Server.Handler(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  2 * time.Minute,
	}

	// Graceful shutdown on signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-sigCh:
		case <-ctx.Done():
		}
		cancel() // stops the clock driver

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()

		_ = httpServer.Shutdown(shutdownCtx)
		_ = d.DB.Close()
	}()

	d.Log.Info("pacer serving",
		zap.String("addr", addr),
		zap.Duration("tick_interval", d.Clock.Interval()),
		zap.Bool("metrics", d.Config.Telemetry.Prometheus),
	)

	if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Close shuts down all daemon resources.
func (d *Daemon) Close() {
	if d.cancel != nil {
		d.cancel()
	}
	if d.DB != nil {
		_ = d.DB.Close()
	}
	if d.Log != nil {
		_ = d.Log.Sync()
	}
}
