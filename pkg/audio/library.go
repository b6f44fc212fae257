package audio

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"

	"calloutgo/pkg/cue"
)

// extensions are tried in order when resolving a cue to a file.
var extensions = []string{".wav", ".ogg", ".mp3"}

// Library resolves cue IDs to sound files under a base directory.
// "alt/100" maps to <dir>/alt/100.wav (or .ogg, .mp3).
type Library struct {
	dir        string
	sampleRate beep.SampleRate
}

// NewLibrary creates a Library that decodes clips at the given sample rate.
func NewLibrary(dir string, sampleRate int) *Library {
	if sampleRate <= 0 {
		sampleRate = 44100
	}
	return &Library{dir: dir, sampleRate: beep.SampleRate(sampleRate)}
}

// Dir returns the base directory.
func (l *Library) Dir() string { return l.dir }

// SampleRate returns the rate every loaded clip is resampled to.
func (l *Library) SampleRate() beep.SampleRate { return l.sampleRate }

func (l *Library) find(id cue.ID) (string, bool) {
	base := filepath.Join(l.dir, filepath.FromSlash(string(id)))
	for _, ext := range extensions {
		p := base + ext
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, true
		}
	}
	return "", false
}

// Exists reports whether a sound file backs id.
func (l *Library) Exists(id cue.ID) bool {
	_, ok := l.find(id)
	return ok
}

// Load decodes the sound for id into memory.
func (l *Library) Load(id cue.ID) (*Clip, error) {
	path, ok := l.find(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	streamer, format, err := decode(path)
	if err != nil {
		slog.Error("Audio: Failed to decode sound", "cue", id, "path", path, "error", err)
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer streamer.Close()

	var src beep.Streamer = streamer
	if format.SampleRate != l.sampleRate {
		src = beep.Resample(4, format.SampleRate, l.sampleRate, streamer)
	}

	buffer := beep.NewBuffer(beep.Format{SampleRate: l.sampleRate, NumChannels: 2, Precision: 2})
	buffer.Append(src)

	slog.Debug("Audio: Loaded sound", "cue", id, "path", path, "samples", buffer.Len())
	return &Clip{ID: id, Path: path, Buffer: buffer}, nil
}

func decode(path string) (beep.StreamSeekCloser, beep.Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, beep.Format{}, err
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	default:
		err = fmt.Errorf("unsupported audio format: %s", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, beep.Format{}, err
	}
	return streamer, format, nil
}

// IDs lists every cue the directory can serve, sorted.
func (l *Library) IDs() ([]cue.ID, error) {
	seen := make(map[cue.ID]bool)
	err := filepath.WalkDir(l.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if !isKnownExt(ext) {
			return nil
		}
		rel, err := filepath.Rel(l.dir, strings.TrimSuffix(path, filepath.Ext(path)))
		if err != nil {
			return err
		}
		id, err := cue.Parse(filepath.ToSlash(rel))
		if err != nil {
			slog.Debug("Audio: Skipping file with invalid cue name", "path", path)
			return nil
		}
		seen[id] = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	ids := make([]cue.ID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

func isKnownExt(ext string) bool {
	for _, e := range extensions {
		if e == ext {
			return true
		}
	}
	return false
}
