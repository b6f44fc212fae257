package sim

import (
	"context"
	"errors"
)

var (
	// ErrNotConnected is returned when no vehicle telemetry is available.
	ErrNotConnected = errors.New("simulator not connected")
)

// Client defines the interface for the host telemetry provider.
type Client interface {
	// GetSnapshot returns the current state of the active vehicle.
	GetSnapshot(ctx context.Context) (Snapshot, error)
	// Close cleans up resources associated with the client.
	Close() error
}

// Snapshot is one tick's worth of vehicle telemetry.
type Snapshot struct {
	VesselID  string
	Situation Situation

	AltitudeASL       float64 // Meters above sea level
	HeightFromTerrain float64 // Meters above terrain
	HeightFromSurface float64 // Meters above terrain or water, whichever is higher

	SurfaceSpeed  float64 // m/s, surface-relative velocity magnitude
	VerticalSpeed float64 // m/s
	GForce        float64 // g

	Gear GearState
}

// SpeedSquared returns the squared surface speed.
func (s *Snapshot) SpeedSquared() float64 {
	return s.SurfaceSpeed * s.SurfaceSpeed
}

// RadioAltitude is the lower of terrain height and sea-level altitude.
func (s *Snapshot) RadioAltitude() float64 {
	return min(s.HeightFromTerrain, s.AltitudeASL)
}
