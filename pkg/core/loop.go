package core

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"calloutgo/pkg/sim"
)

// DefaultInterval is used when no tick interval is configured.
const DefaultInterval = 50 * time.Millisecond

// Loop plays the host engine: it polls the telemetry client on a ticker and
// drives the Machine's lifecycle hooks.
type Loop struct {
	interval time.Duration
	sim      sim.Client
	machine  *Machine
}

// NewLoop creates a Loop.
func NewLoop(interval time.Duration, client sim.Client, m *Machine) *Loop {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Loop{interval: interval, sim: client, machine: m}
}

// Run blocks until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(l.interval)
	defer ticker.Stop()

	slog.Info("Loop started", "interval", l.interval)

	for {
		select {
		case <-ctx.Done():
			l.machine.Detach()
			slog.Info("Loop stopped")
			return
		case <-ticker.C:
			l.Step(ctx)
		}
	}
}

// Step performs one tick: fetch a snapshot, attach or re-attach as needed, evaluate.
func (l *Loop) Step(ctx context.Context) {
	snap, err := l.sim.GetSnapshot(ctx)
	if err != nil {
		if errors.Is(err, sim.ErrNotConnected) {
			if l.machine.Attached() {
				slog.Info("Loop: Telemetry lost, detaching")
				l.machine.Detach()
			}
			return
		}
		slog.Debug("Loop: Failed to read snapshot", "error", err)
		return
	}

	if !l.machine.Attached() || l.machine.VesselID() != snap.VesselID {
		if l.machine.Attached() {
			slog.Info("Loop: Vessel changed", "from", l.machine.VesselID(), "to", snap.VesselID)
		}
		l.machine.OnAttach(snap)
	}

	l.machine.OnTick(snap)
}
