// Package core binds the telemetry watcher and the alert player to a vehicle
// and drives them from the host tick.
package core

import (
	"log/slog"

	"github.com/google/uuid"

	"calloutgo/pkg/cue"
	"calloutgo/pkg/logging"
	"calloutgo/pkg/sim"
	"calloutgo/pkg/watcher"
)

// Machine is one callout instance bound to one vehicle.
type Machine struct {
	watcher *watcher.Watcher
	player  CuePlayer

	attached bool
	instance string
	vesselID string
	state    watcher.State
	log      *slog.Logger
}

// NewMachine creates an unattached Machine.
func NewMachine(w *watcher.Watcher, p CuePlayer) *Machine {
	return &Machine{
		watcher: w,
		player:  p,
		log:     slog.Default(),
	}
}

// OnAttach binds the machine to the vehicle in snap, resets the watcher state
// and queues the welcome cue.
func (m *Machine) OnAttach(snap sim.Snapshot) {
	if m.attached {
		m.player.Clear()
	}

	m.attached = true
	m.instance = uuid.NewString()
	m.vesselID = snap.VesselID
	m.state = watcher.Initial()
	m.log = slog.Default().With("instance", m.instance, "vessel", m.vesselID)

	m.log.Info("Machine: Attached", "situation", snap.Situation)
	m.request(cue.Welcome)
}

// OnTick evaluates snap, queues any raised cues and advances playback.
// It returns the cues raised this tick.
func (m *Machine) OnTick(snap sim.Snapshot) []cue.ID {
	if !m.attached {
		return nil
	}

	logging.Trace(m.log, "Machine: Snapshot",
		"situation", snap.Situation,
		"radio_alt", snap.RadioAltitude(),
		"speed", snap.SurfaceSpeed,
		"g", snap.GForce,
	)

	if !snap.Situation.Known() {
		m.log.Debug("Machine: Unrecognized situation", "situation", snap.Situation)
	}

	next, cues := m.watcher.Evaluate(m.state, snap)
	m.state = next

	for _, id := range cues {
		m.log.Info("Machine: Callout", "cue", id, "situation", snap.Situation, "radio_alt", next.RadioAltitude)
		m.request(id)
	}

	m.player.Tick()
	return cues
}

func (m *Machine) request(id cue.ID) {
	if err := m.player.RequestCue(id); err != nil {
		m.log.Warn("Machine: Cue request dropped", "cue", id, "error", err)
	}
}

// Detach unbinds the machine and discards pending cues.
func (m *Machine) Detach() {
	if !m.attached {
		return
	}
	m.log.Info("Machine: Detached")
	m.player.Clear()
	m.attached = false
	m.vesselID = ""
	m.instance = ""
	m.state = watcher.State{}
	m.log = slog.Default()
}

// Attached reports whether the machine is bound to a vehicle.
func (m *Machine) Attached() bool { return m.attached }

// VesselID returns the attached vehicle, or "".
func (m *Machine) VesselID() string { return m.vesselID }

// Instance returns the ID assigned at the last attach.
func (m *Machine) Instance() string { return m.instance }

// State returns a copy of the current watcher state.
func (m *Machine) State() watcher.State { return m.state }
