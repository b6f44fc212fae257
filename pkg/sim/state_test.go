package sim

import "testing"

func TestSituation(t *testing.T) {
	tests := []struct {
		name      string
		situation Situation
		known     bool
	}{
		{"prelaunch", SituationPreLaunch, true},
		{"landed", SituationLanded, true},
		{"splashed", SituationSplashed, true},
		{"flying", SituationFlying, true},
		{"orbiting", SituationOrbiting, true},
		{"escaping", SituationEscaping, true},
		{"docked", SituationDocked, true},
		{"unknown", Situation("WARPING"), false},
		{"empty", Situation(""), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.situation.Known(); got != tt.known {
				t.Errorf("Known() = %v, want %v", got, tt.known)
			}
		})
	}
}

func TestSnapshot_Derived(t *testing.T) {
	s := Snapshot{AltitudeASL: 80, HeightFromTerrain: 120, SurfaceSpeed: 3}
	if got := s.RadioAltitude(); got != 80 {
		t.Errorf("RadioAltitude() = %v, want 80", got)
	}
	s.AltitudeASL = 500
	if got := s.RadioAltitude(); got != 120 {
		t.Errorf("RadioAltitude() = %v, want 120", got)
	}
	if got := s.SpeedSquared(); got != 9 {
		t.Errorf("SpeedSquared() = %v, want 9", got)
	}
}

func TestGearState_String(t *testing.T) {
	if GearUp.String() != "up" || GearDown.String() != "down" || GearUnknown.String() != "unknown" {
		t.Error("unexpected GearState strings")
	}
}
