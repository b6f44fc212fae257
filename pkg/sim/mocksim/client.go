// Package mocksim provides a scripted flight that stands in for a live simulator.
package mocksim

import (
	"context"
	"sync"

	"calloutgo/pkg/config"
	"calloutgo/pkg/sim"
)

// Flight stages, in the order the profile runs through them.
const (
	StagePrelaunch = "PRELAUNCH"
	StageClimb     = "CLIMB"
	StageOrbit     = "ORBIT"
	StageDescent   = "DESCENT"
	StageRollout   = "ROLLOUT"
	StageParked    = "PARKED"
)

// subOrbitalFraction of the apoapsis above which the vessel reports SUB_ORBITAL.
const subOrbitalFraction = 0.7

// Config shapes the scripted flight. Rates are per tick, not per second.
type Config struct {
	VesselID       string
	PrelaunchTicks int
	ClimbRate      float64 // m per tick
	Apoapsis       float64 // m above terrain
	OrbitTicks     int
	DescentRate    float64 // m per tick
	TerrainHeight  float64 // m ASL
	TouchdownSpeed float64 // m/s
	RolloutDecel   float64 // m/s lost per tick
	Splashdown     bool
	LaunchG        float64 // g reported on the first climb tick
}

// DefaultConfig returns the profile used by the CLI when nothing is configured.
func DefaultConfig() Config {
	return FromConfig(&config.DefaultConfig().Sim.Mock)
}

// FromConfig converts the YAML mock section into a Config.
func FromConfig(c *config.MockSimConfig) Config {
	return Config{
		VesselID:       c.VesselID,
		PrelaunchTicks: c.PrelaunchTicks,
		ClimbRate:      c.ClimbRate,
		Apoapsis:       c.Apoapsis.Meters(),
		OrbitTicks:     c.OrbitTicks,
		DescentRate:    c.DescentRate,
		TerrainHeight:  c.TerrainHeight.Meters(),
		TouchdownSpeed: c.TouchdownSpeed,
		RolloutDecel:   c.RolloutDecel,
		Splashdown:     c.Splashdown,
		LaunchG:        3.2,
	}
}

// MockClient implements sim.Client. Every GetSnapshot advances the flight by one tick.
type MockClient struct {
	mu         sync.Mutex
	config     Config
	stage      string
	stageTicks int
	height     float64
	snap       sim.Snapshot
	closed     bool
}

// NewClient creates a mock vessel sitting on the pad.
func NewClient(cfg Config) *MockClient {
	if cfg.VesselID == "" {
		cfg.VesselID = "mock-1"
	}
	if cfg.ClimbRate <= 0 {
		cfg.ClimbRate = 1
	}
	if cfg.DescentRate <= 0 {
		cfg.DescentRate = 1
	}
	if cfg.RolloutDecel <= 0 {
		cfg.RolloutDecel = cfg.TouchdownSpeed
	}

	m := &MockClient{
		config: cfg,
		stage:  StagePrelaunch,
	}
	m.snap = sim.Snapshot{
		VesselID:    cfg.VesselID,
		Situation:   sim.SituationPreLaunch,
		AltitudeASL: cfg.TerrainHeight,
		GForce:      1,
		Gear:        sim.GearDown,
	}
	return m
}

// GetSnapshot returns the vessel state for the current tick and then advances the profile.
func (m *MockClient) GetSnapshot(ctx context.Context) (sim.Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return sim.Snapshot{}, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return sim.Snapshot{}, sim.ErrNotConnected
	}

	out := m.snap
	m.update()
	return out, nil
}

// Stage returns the stage the next snapshot will be taken from.
func (m *MockClient) Stage() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stage
}

// Close disconnects the mock. Later GetSnapshot calls return sim.ErrNotConnected.
func (m *MockClient) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *MockClient) setStage(stage string) {
	m.stage = stage
	m.stageTicks = 0
}
