// Package audio resolves cue sounds from disk and plays them through a single speaker slot.
package audio

import (
	"errors"
	"time"

	"github.com/gopxl/beep/v2"

	"calloutgo/pkg/cue"
)

var (
	// ErrNotFound is returned when no sound file backs a cue.
	ErrNotFound = errors.New("sound not found")
	// ErrPending is returned while an asynchronous load is still in progress.
	ErrPending = errors.New("sound load pending")
	// ErrBusy is returned when a clip is started while another is in flight.
	ErrBusy = errors.New("audio output busy")
)

// Clip is a decoded, immutable cue sound.
type Clip struct {
	ID     cue.ID
	Path   string
	Buffer *beep.Buffer
}

// Duration returns the playback length of the clip.
func (c *Clip) Duration() time.Duration {
	if c == nil || c.Buffer == nil {
		return 0
	}
	return c.Buffer.Format().SampleRate.D(c.Buffer.Len())
}

// Streamer returns a fresh streamer over the whole clip.
func (c *Clip) Streamer() beep.StreamSeeker {
	return c.Buffer.Streamer(0, c.Buffer.Len())
}
