package watcher

// State is everything the watcher remembers between ticks for one vehicle.
type State struct {
	Launched    bool
	Landed      bool
	GearWarned  bool
	BrakeWarned bool

	Escape Latch
	Orbit  Latch
	Dock   Latch
	Splash Latch

	RadioAltitude float64
	GForce        float64
}

// Initial returns the state for a freshly attached vehicle, which is assumed
// to be sitting on the ground.
func Initial() State {
	return State{Landed: true}
}
