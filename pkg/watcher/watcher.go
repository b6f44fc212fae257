// Package watcher turns per-tick vehicle snapshots into callout cues.
//
// Evaluate is a pure function of (State, Snapshot): all memory lives in the
// returned State, so the caller owns it and tests can replay sequences
// deterministically.
package watcher

import (
	"fmt"
	"math"

	"calloutgo/pkg/cue"
	"calloutgo/pkg/sim"
)

// DefaultLandingSpeedSquared is the surface speed squared (m²/s²) below which
// a landed vehicle counts as stopped.
const DefaultLandingSpeedSquared = 20.0

// SplashReset controls when the splashdown alert is re-armed.
type SplashReset string

const (
	// SplashResetNever fires the splashdown alert at most once per vehicle.
	SplashResetNever SplashReset = "never"
	// SplashResetOnExit re-arms when the vehicle leaves the water.
	SplashResetOnExit SplashReset = "on_exit"
	// SplashResetOnLaunch re-arms when the next launch is detected.
	SplashResetOnLaunch SplashReset = "on_launch"
)

// ParseSplashReset validates a policy name. Empty means SplashResetNever.
func ParseSplashReset(s string) (SplashReset, error) {
	switch p := SplashReset(s); p {
	case "":
		return SplashResetNever, nil
	case SplashResetNever, SplashResetOnExit, SplashResetOnLaunch:
		return p, nil
	}
	return "", fmt.Errorf("unknown splash reset policy %q", s)
}

// Options selects the optional rules.
type Options struct {
	GForce              bool
	GearWarning         bool
	SplashReset         SplashReset
	LandingSpeedSquared float64
	// RearmBrakeWarning lets each new flight warn about braking again.
	// Off, the brake warning fires at most once per vehicle.
	RearmBrakeWarning bool
}

// DefaultOptions mirrors the stock behaviour: g-force and gear calls off,
// splashdown never re-armed.
func DefaultOptions() Options {
	return Options{
		SplashReset:         SplashResetNever,
		LandingSpeedSquared: DefaultLandingSpeedSquared,
	}
}

// Watcher evaluates snapshots against the configured rules.
type Watcher struct {
	opts Options
}

// New creates a Watcher. Zero option values fall back to defaults.
func New(opts Options) *Watcher {
	if opts.LandingSpeedSquared <= 0 {
		opts.LandingSpeedSquared = DefaultLandingSpeedSquared
	}
	if opts.SplashReset == "" {
		opts.SplashReset = SplashResetNever
	}
	return &Watcher{opts: opts}
}

// Options returns the effective options.
func (w *Watcher) Options() Options {
	return w.opts
}

// Evaluate applies every rule to snap and returns the next state plus the cues
// raised this tick, in emission order.
func (w *Watcher) Evaluate(st State, snap sim.Snapshot) (State, []cue.ID) {
	var cues []cue.ID

	cues = w.flightState(&st, &snap, cues)

	altCue, hasAlt := w.altitude(&st, &snap)
	if hasAlt {
		cues = append(cues, altCue)
		if w.opts.GearWarning && altCue == "alt/200" && snap.Gear == sim.GearUp && !st.GearWarned {
			cues = append(cues, cue.Gear)
			st.GearWarned = true
		}
	}

	if c, ok := w.gForce(&st, &snap); ok {
		cues = append(cues, c)
	}

	return st, cues
}

func (w *Watcher) flightState(st *State, snap *sim.Snapshot, cues []cue.ID) []cue.ID {
	sit := snap.Situation

	// Launch
	if sit == sim.SituationFlying && !st.Launched {
		st.Launched = true
		st.Landed = false
		st.GearWarned = false
		if w.opts.RearmBrakeWarning {
			st.BrakeWarned = false
		}
		if w.opts.SplashReset == SplashResetOnLaunch {
			st.Splash.Reset()
		}
	}

	if st.Escape.Step(sit == sim.SituationEscaping) {
		cues = append(cues, cue.Escape)
	}
	if st.Orbit.Step(sit == sim.SituationOrbiting) {
		cues = append(cues, cue.Orbit)
	}
	if st.Dock.Step(sit == sim.SituationDocked) {
		cues = append(cues, cue.Dock)
	}

	switch {
	case sit == sim.SituationSplashed:
		if st.Splash.Enter() {
			cues = append(cues, cue.Splash)
			st.Launched = false
		}
	case w.opts.SplashReset == SplashResetOnExit:
		st.Splash.Reset()
	}

	if sit == sim.SituationLanded && !st.Landed {
		switch {
		case snap.SpeedSquared() < w.opts.LandingSpeedSquared:
			cues = append(cues, cue.Touch)
			st.Landed = true
			st.Launched = false
		case !st.BrakeWarned:
			cues = append(cues, cue.Brake)
			st.BrakeWarned = true
		}
	}

	return cues
}

func (w *Watcher) altitude(st *State, snap *sim.Snapshot) (cue.ID, bool) {
	height := snap.RadioAltitude()
	r, ok := Descending(AltitudeLadder, st.RadioAltitude, height)
	st.RadioAltitude = height
	return r.Cue, ok
}

func (w *Watcher) gForce(st *State, snap *sim.Snapshot) (cue.ID, bool) {
	g := math.Abs(snap.GForce)
	prev := st.GForce
	st.GForce = g
	if !w.opts.GForce {
		return "", false
	}
	r, ok := Ascending(GForceLadder, prev, g)
	return r.Cue, ok
}

// Cues lists every cue Evaluate can raise with the current options.
func (w *Watcher) Cues() []cue.ID {
	ids := []cue.ID{cue.Escape, cue.Orbit, cue.Dock, cue.Splash, cue.Touch, cue.Brake}
	if w.opts.GearWarning {
		ids = append(ids, cue.Gear)
	}
	for _, r := range AltitudeLadder {
		ids = append(ids, r.Cue)
	}
	if w.opts.GForce {
		for _, r := range GForceLadder {
			ids = append(ids, r.Cue)
		}
	}
	return ids
}
