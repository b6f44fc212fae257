package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep/v2"

	"calloutgo/pkg/config"
)

func TestNewSpeaker(t *testing.T) {
	s := NewSpeaker(&config.PlaybackConfig{Volume: 0.8}, 44100)
	if s.Volume() != 0.8 {
		t.Errorf("expected volume 0.8, got %f", s.Volume())
	}
	if s.IsPlaying() {
		t.Error("new speaker should be idle")
	}
	if s.Current() != "" {
		t.Errorf("expected no current cue, got %q", s.Current())
	}

	if NewSpeaker(nil, 44100).Volume() != 1.0 {
		t.Error("nil config should default to full volume")
	}
}

func TestSpeaker_VolumeClamped(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.5, 0.5},
		{-0.5, 0},
		{1.5, 1.0},
	}
	for _, tt := range tests {
		s := NewSpeaker(&config.PlaybackConfig{Volume: tt.in}, 44100)
		if s.Volume() != tt.want {
			t.Errorf("Volume %v -> %v, want %v", tt.in, s.Volume(), tt.want)
		}
	}
}

func TestSpeaker_PlayRejects(t *testing.T) {
	s := NewSpeaker(nil, 44100)
	if err := s.Play(nil); err == nil {
		t.Error("expected error for nil clip")
	}
	if err := s.Play(&Clip{ID: "alt/10"}); err == nil {
		t.Error("expected error for clip without buffer")
	}
}

func TestSpeaker_BusyAndCompletion(t *testing.T) {
	s := NewSpeaker(nil, 44100)

	// Simulate a clip in flight without opening the device.
	s.mu.Lock()
	s.playing = true
	s.current = "alt/100"
	s.gen = 3
	s.mu.Unlock()

	clip := &Clip{ID: "alt/50", Buffer: nil}
	if err := s.Play(clip); err == nil {
		t.Error("expected error while playing")
	}

	// A callback from an earlier generation is ignored.
	s.finished(2)
	if !s.IsPlaying() {
		t.Fatal("stale completion should not clear the slot")
	}

	s.finished(3)
	if s.IsPlaying() || s.Current() != "" {
		t.Fatal("completion should return the speaker to idle")
	}
}

func TestSpeaker_BusyError(t *testing.T) {
	s := NewSpeaker(nil, 44100)
	s.mu.Lock()
	s.playing = true
	s.mu.Unlock()

	// Needs a non-nil buffer to get past argument validation.
	clip := &Clip{ID: "alt/50", Buffer: newTestBuffer()}
	if err := s.Play(clip); !errors.Is(err, ErrBusy) {
		t.Errorf("expected ErrBusy, got %v", err)
	}

	s.Stop()
	if s.IsPlaying() {
		t.Error("Stop should leave the speaker idle")
	}
}

func newTestBuffer() *beep.Buffer {
	b := beep.NewBuffer(beep.Format{SampleRate: 44100, NumChannels: 2, Precision: 2})
	b.Append(&dummyStreamer{samples: make([][2]float64, 10)})
	return b
}
