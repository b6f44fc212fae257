package core

import "calloutgo/pkg/cue"

// CuePlayer is the alert player as seen by the Machine.
type CuePlayer interface {
	RequestCue(id cue.ID) error
	Tick()
	Clear()
}
