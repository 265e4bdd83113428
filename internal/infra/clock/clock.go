// Package clock drives the task store's tick handler at a fixed cadence.
// The contract is deliberately small: one handler invocation per interval,
// no payload, stop on context cancellation. The handler runs to completion
// before the next tick is taken from the ticker, so ticks never interleave.
package clock

import (
	"context"
	"time"
)

// Driver invokes a handler once per interval.
type Driver struct {
	interval time.Duration
	handler  func()
}

// NewDriver creates a driver. Intervals below 1ms are raised to the 1s
// default; the production cadence is one second.
func NewDriver(interval time.Duration, handler func()) *Driver {
	if interval < time.Millisecond {
		interval = time.Second
	}
	return &Driver{interval: interval, handler: handler}
}

// Interval returns the configured tick cadence.
func (d *Driver) Interval() time.Duration { return d.interval }

// Run blocks, invoking the handler every interval until ctx is cancelled.
func (d *Driver) Run(ctx context.Context) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.handler()
		}
	}
}
