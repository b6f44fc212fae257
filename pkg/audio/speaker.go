package audio

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"

	"calloutgo/pkg/config"
	"calloutgo/pkg/cue"
)

// Speaker is a single-slot audio output. At most one clip is in flight;
// completion is flagged from the speaker's callback and observed by polling IsPlaying.
type Speaker struct {
	mu          sync.Mutex
	cfg         config.PlaybackConfig
	sampleRate  beep.SampleRate
	initialized bool
	volume      float64

	playing  bool
	current  cue.ID
	gen      uint64 // bumps on every Play/Stop so stale callbacks are ignored
	ctrl     *beep.Ctrl
	streamer *effects.Volume
}

// NewSpeaker creates a Speaker. The device is opened lazily on the first Play.
func NewSpeaker(cfg *config.PlaybackConfig, sampleRate int) *Speaker {
	s := &Speaker{
		sampleRate: beep.SampleRate(sampleRate),
		volume:     1.0,
	}
	if cfg != nil {
		s.cfg = *cfg
		s.volume = clampVolume(cfg.Volume)
	}
	return s
}

// Play starts clip. It returns ErrBusy if a clip is still in flight.
func (s *Speaker) Play(clip *Clip) error {
	if clip == nil || clip.Buffer == nil {
		return errors.New("audio: nil clip")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.playing {
		return ErrBusy
	}
	if err := s.ensureInitialized(); err != nil {
		return err
	}

	var stream beep.Streamer = clip.Streamer()
	if clip.Buffer.Format().SampleRate != s.sampleRate {
		stream = beep.Resample(4, clip.Buffer.Format().SampleRate, s.sampleRate, stream)
	}

	if s.cfg.AudioEffects.Headset {
		stream = NewHeadsetFilter(stream, float64(s.sampleRate), s.cfg.AudioEffects.LowCutoff, s.cfg.AudioEffects.HighCutoff)
	}

	s.streamer = &effects.Volume{
		Streamer: stream,
		Base:     2,
		Volume:   volumeToPower(s.volume),
		Silent:   s.volume <= 0.01,
	}
	s.ctrl = &beep.Ctrl{Streamer: s.streamer}

	s.gen++
	gen := s.gen
	s.playing = true
	s.current = clip.ID

	speaker.Play(beep.Seq(s.ctrl, beep.Callback(func() {
		// Runs under the speaker lock; hop off it before touching s.mu.
		go s.finished(gen)
	})))

	slog.Debug("Speaker: Playing cue", "cue", clip.ID, "duration", clip.Duration())
	return nil
}

func (s *Speaker) finished(gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return
	}
	s.playing = false
	s.current = ""
	s.ctrl = nil
	s.streamer = nil
}

func (s *Speaker) ensureInitialized() error {
	if s.initialized {
		return nil
	}
	if err := speaker.Init(s.sampleRate, s.sampleRate.N(time.Second/10)); err != nil {
		slog.Error("Failed to initialize speaker", "error", err)
		return err
	}
	s.initialized = true
	slog.Debug("Speaker: Initialized", "sample_rate", s.sampleRate)
	return nil
}

// IsPlaying reports whether a clip is in flight.
func (s *Speaker) IsPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// Current returns the cue in flight, or "" when idle.
func (s *Speaker) Current() cue.ID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Stop cuts the current clip and returns the output to idle.
func (s *Speaker) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	if s.initialized && s.ctrl != nil {
		speaker.Clear()
	}
	s.playing = false
	s.current = ""
	s.ctrl = nil
	s.streamer = nil
}

// Volume returns the clamped volume level applied to every clip.
func (s *Speaker) Volume() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.volume
}

// Shutdown stops playback and releases the device.
func (s *Speaker) Shutdown() {
	s.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.initialized {
		speaker.Close()
		s.initialized = false
	}
}

func clampVolume(vol float64) float64 {
	if vol < 0 {
		return 0
	}
	if vol > 1 {
		return 1
	}
	return vol
}
