package mocksim

import "calloutgo/pkg/sim"

// gearRetractHeight is where the mock raises the gear on the way up and lowers it on the way down.
const gearRetractHeight = 300.0

func (m *MockClient) update() {
	m.stageTicks++

	switch m.stage {
	case StagePrelaunch:
		if m.stageTicks >= m.config.PrelaunchTicks {
			m.setStage(StageClimb)
			m.updateClimb()
		}

	case StageClimb:
		m.updateClimb()

	case StageOrbit:
		m.snap.GForce = 0
		if m.stageTicks >= m.config.OrbitTicks {
			m.setStage(StageDescent)
			m.updateDescent()
		}

	case StageDescent:
		m.updateDescent()

	case StageRollout:
		m.updateRollout()

	case StageParked:
		// Stays put until closed.
	}
}

func (m *MockClient) updateClimb() {
	first := m.stageTicks == 0
	m.height += m.config.ClimbRate
	if m.height >= m.config.Apoapsis {
		m.height = m.config.Apoapsis
	}

	m.setHeight(m.height)
	m.snap.VerticalSpeed = m.config.ClimbRate
	m.snap.SurfaceSpeed = m.config.ClimbRate
	m.snap.GForce = 1.5
	if first {
		m.snap.GForce = m.config.LaunchG
	}
	if m.height > gearRetractHeight {
		m.snap.Gear = sim.GearUp
	}
	m.snap.Situation = m.airborneSituation()

	if m.height >= m.config.Apoapsis {
		m.setStage(StageOrbit)
		m.snap.Situation = sim.SituationOrbiting
		m.snap.VerticalSpeed = 0
	}
}

func (m *MockClient) updateDescent() {
	m.height -= m.config.DescentRate
	if m.height <= 0 {
		m.touchdown()
		return
	}

	m.setHeight(m.height)
	m.snap.VerticalSpeed = -m.config.DescentRate
	m.snap.SurfaceSpeed = m.config.DescentRate
	m.snap.GForce = 1
	if m.height <= gearRetractHeight {
		m.snap.Gear = sim.GearDown
	}
	m.snap.Situation = m.airborneSituation()
}

func (m *MockClient) touchdown() {
	m.height = 0
	m.setHeight(0)
	m.snap.VerticalSpeed = 0
	m.snap.GForce = 1

	if m.config.Splashdown {
		m.snap.Situation = sim.SituationSplashed
		m.snap.SurfaceSpeed = 0
		m.setStage(StageParked)
		return
	}

	m.snap.Situation = sim.SituationLanded
	m.snap.SurfaceSpeed = m.config.TouchdownSpeed
	m.setStage(StageRollout)
	if m.snap.SurfaceSpeed <= 0 {
		m.snap.SurfaceSpeed = 0
		m.setStage(StageParked)
	}
}

func (m *MockClient) updateRollout() {
	m.snap.SurfaceSpeed -= m.config.RolloutDecel
	if m.snap.SurfaceSpeed <= 0 {
		m.snap.SurfaceSpeed = 0
		m.setStage(StageParked)
	}
}

func (m *MockClient) setHeight(h float64) {
	m.snap.HeightFromTerrain = h
	m.snap.HeightFromSurface = h
	m.snap.AltitudeASL = m.config.TerrainHeight + h
}

func (m *MockClient) airborneSituation() sim.Situation {
	if m.height >= m.config.Apoapsis*subOrbitalFraction {
		return sim.SituationSubOrbital
	}
	return sim.SituationFlying
}
