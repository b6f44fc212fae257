// Package sim provides telemetry provider interfaces and vehicle snapshot types.
package sim

// Situation is the host's flight-phase classification of a vehicle.
type Situation string

const (
	SituationPreLaunch  Situation = "PRELAUNCH"
	SituationLanded     Situation = "LANDED"
	SituationSplashed   Situation = "SPLASHED"
	SituationFlying     Situation = "FLYING"
	SituationSubOrbital Situation = "SUB_ORBITAL"
	SituationOrbiting   Situation = "ORBITING"
	SituationEscaping   Situation = "ESCAPING"
	SituationDocked     Situation = "DOCKED"
)

var knownSituations = map[Situation]bool{
	SituationPreLaunch:  true,
	SituationLanded:     true,
	SituationSplashed:   true,
	SituationFlying:     true,
	SituationSubOrbital: true,
	SituationOrbiting:   true,
	SituationEscaping:   true,
	SituationDocked:     true,
}

// Known reports whether s is one of the situations the host is expected to send.
// Unknown values are still valid input; they just never match a rule.
func (s Situation) Known() bool {
	return knownSituations[s]
}

// GearState is the landing gear position, when the host reports it.
type GearState int

const (
	GearUnknown GearState = iota
	GearUp
	GearDown
)

func (g GearState) String() string {
	switch g {
	case GearUp:
		return "up"
	case GearDown:
		return "down"
	}
	return "unknown"
}
