package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calloutgo/pkg/cue"
	"calloutgo/pkg/sim"
	"calloutgo/pkg/watcher"
)

// recordingPlayer implements CuePlayer
type recordingPlayer struct {
	requested []cue.ID
	ticks     int
	clears    int
	err       error
}

func (p *recordingPlayer) RequestCue(id cue.ID) error {
	p.requested = append(p.requested, id)
	return p.err
}

func (p *recordingPlayer) Tick()  { p.ticks++ }
func (p *recordingPlayer) Clear() { p.clears++ }

func newTestMachine() (*Machine, *recordingPlayer) {
	p := &recordingPlayer{}
	return NewMachine(watcher.New(watcher.DefaultOptions()), p), p
}

func TestMachine_AttachQueuesWelcome(t *testing.T) {
	m, p := newTestMachine()

	m.OnAttach(sim.Snapshot{VesselID: "v1", Situation: sim.SituationPreLaunch})

	require.True(t, m.Attached())
	assert.Equal(t, "v1", m.VesselID())
	assert.NotEmpty(t, m.Instance())
	assert.Equal(t, []cue.ID{cue.Welcome}, p.requested)
	assert.Equal(t, watcher.Initial(), m.State())
	assert.Zero(t, p.clears, "first attach must not clear the queue")
}

func TestMachine_TickBeforeAttach(t *testing.T) {
	m, p := newTestMachine()

	cues := m.OnTick(sim.Snapshot{Situation: sim.SituationOrbiting})

	assert.Nil(t, cues)
	assert.Empty(t, p.requested)
	assert.Zero(t, p.ticks)
}

func TestMachine_TickPipeline(t *testing.T) {
	m, p := newTestMachine()
	m.OnAttach(sim.Snapshot{VesselID: "v1"})
	p.requested = nil

	steps := []struct {
		snap sim.Snapshot
		want []cue.ID
	}{
		{sim.Snapshot{Situation: sim.SituationFlying, HeightFromTerrain: 150, AltitudeASL: 150}, nil},
		{sim.Snapshot{Situation: sim.SituationFlying, HeightFromTerrain: 95, AltitudeASL: 95}, []cue.ID{"alt/100"}},
		{sim.Snapshot{Situation: sim.SituationOrbiting, HeightFromTerrain: 95, AltitudeASL: 95}, []cue.ID{cue.Orbit}},
		{sim.Snapshot{Situation: sim.SituationOrbiting, HeightFromTerrain: 95, AltitudeASL: 95}, nil},
	}

	var all []cue.ID
	for i, s := range steps {
		got := m.OnTick(s.snap)
		assert.Equal(t, s.want, got, "step %d", i)
		all = append(all, got...)
	}

	assert.Equal(t, all, p.requested, "every raised cue is requested in order")
	assert.Equal(t, len(steps), p.ticks, "player ticks once per machine tick")
	assert.True(t, m.State().Launched)
	assert.InDelta(t, 95, m.State().RadioAltitude, 1e-9)
}

func TestMachine_RequestErrorsAreSwallowed(t *testing.T) {
	m, p := newTestMachine()
	p.err = errors.New("boom")

	m.OnAttach(sim.Snapshot{VesselID: "v1"})
	cues := m.OnTick(sim.Snapshot{Situation: sim.SituationDocked})

	assert.Equal(t, []cue.ID{cue.Dock}, cues)
	assert.Equal(t, 1, p.ticks, "tick still advances playback after a failed request")
}

func TestMachine_ReattachResetsState(t *testing.T) {
	m, p := newTestMachine()
	m.OnAttach(sim.Snapshot{VesselID: "v1"})
	m.OnTick(sim.Snapshot{Situation: sim.SituationFlying, HeightFromTerrain: 500, AltitudeASL: 500})
	require.True(t, m.State().Launched)
	first := m.Instance()

	m.OnAttach(sim.Snapshot{VesselID: "v2"})

	assert.Equal(t, 1, p.clears)
	assert.Equal(t, "v2", m.VesselID())
	assert.NotEqual(t, first, m.Instance())
	assert.Equal(t, watcher.Initial(), m.State())
	assert.Equal(t, cue.Welcome, p.requested[len(p.requested)-1])
}

func TestMachine_Detach(t *testing.T) {
	m, p := newTestMachine()

	m.Detach()
	assert.Zero(t, p.clears, "detach while unattached is a no-op")

	m.OnAttach(sim.Snapshot{VesselID: "v1"})
	m.Detach()

	assert.False(t, m.Attached())
	assert.Empty(t, m.VesselID())
	assert.Empty(t, m.Instance())
	assert.Equal(t, 1, p.clears)
	assert.Nil(t, m.OnTick(sim.Snapshot{Situation: sim.SituationOrbiting}))
}
