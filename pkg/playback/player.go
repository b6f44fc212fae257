// Package playback queues resolved cue sounds and feeds them to a single audio output.
package playback

import (
	"errors"
	"fmt"
	"log/slog"

	"calloutgo/pkg/audio"
	"calloutgo/pkg/cue"
)

var (
	// ErrCueNotFound is returned when no sound resource backs a requested cue.
	ErrCueNotFound = errors.New("cue not found")
	// ErrQueueFull is returned when a request is rejected by the drop-newest policy.
	ErrQueueFull = errors.New("playback queue full")
)

// Resolver is the sound-resource collaborator.
type Resolver interface {
	Exists(id cue.ID) bool
	Load(id cue.ID) (*audio.Clip, error)
}

// Output is the single audio channel. Completion is observed by polling IsPlaying.
type Output interface {
	IsPlaying() bool
	Play(clip *audio.Clip) error
}

// Overflow decides what to drop when the queue is at capacity.
type Overflow string

const (
	DropNewest Overflow = "drop_newest"
	DropOldest Overflow = "drop_oldest"
)

// DefaultCapacity bounds the queue during alert storms.
const DefaultCapacity = 16

// Options configures a Player.
type Options struct {
	Capacity int
	Overflow Overflow
}

// Stats counts what happened to requested cues.
type Stats struct {
	Requested int
	Played    int
	NotFound  int
	Dropped   int
}

type entry struct {
	id   cue.ID
	clip *audio.Clip // nil until an async load completes
}

// Player is the alert player. It is not safe for concurrent use; every call
// is expected on the simulation tick.
type Player struct {
	res   Resolver
	out   Output
	opts  Options
	cache map[cue.ID]*audio.Clip
	queue []entry
	stats Stats
}

// NewPlayer creates a Player with an empty queue and cache.
func NewPlayer(res Resolver, out Output, opts Options) *Player {
	if opts.Capacity <= 0 {
		opts.Capacity = DefaultCapacity
	}
	if opts.Overflow == "" {
		opts.Overflow = DropNewest
	}
	return &Player{
		res:   res,
		out:   out,
		opts:  opts,
		cache: make(map[cue.ID]*audio.Clip),
		queue: make([]entry, 0, opts.Capacity),
	}
}

// RequestCue resolves id and appends it to the queue.
func (p *Player) RequestCue(id cue.ID) error {
	p.stats.Requested++

	if clip, ok := p.cache[id]; ok {
		return p.enqueue(entry{id: id, clip: clip})
	}

	if !p.res.Exists(id) {
		p.stats.NotFound++
		slog.Warn("Player: Cue not found", "cue", id)
		return fmt.Errorf("%w: %s", ErrCueNotFound, id)
	}

	clip, err := p.res.Load(id)
	switch {
	case errors.Is(err, audio.ErrPending):
		slog.Debug("Player: Cue resolving in background", "cue", id)
		return p.enqueue(entry{id: id})
	case errors.Is(err, audio.ErrNotFound):
		p.stats.NotFound++
		slog.Warn("Player: Cue not found", "cue", id)
		return fmt.Errorf("%w: %s", ErrCueNotFound, id)
	case err != nil:
		p.stats.Dropped++
		slog.Warn("Player: Failed to load cue", "cue", id, "error", err)
		return fmt.Errorf("load %s: %w", id, err)
	}

	p.cache[id] = clip
	return p.enqueue(entry{id: id, clip: clip})
}

func (p *Player) enqueue(e entry) error {
	if len(p.queue) >= p.opts.Capacity {
		p.stats.Dropped++
		if p.opts.Overflow == DropOldest {
			dropped := p.queue[0]
			p.queue = p.queue[1:]
			slog.Warn("Player: Queue full, dropping oldest cue", "dropped", dropped.id, "cue", e.id, "capacity", p.opts.Capacity)
		} else {
			slog.Warn("Player: Queue full, dropping cue", "cue", e.id, "capacity", p.opts.Capacity)
			return fmt.Errorf("%w: %s", ErrQueueFull, e.id)
		}
	}
	p.queue = append(p.queue, e)
	slog.Debug("Player: Enqueued cue", "cue", e.id, "queue_len", len(p.queue))
	return nil
}

// Tick starts the head cue if the output is idle. It never blocks.
func (p *Player) Tick() {
	if len(p.queue) == 0 || p.out.IsPlaying() {
		return
	}

	head := &p.queue[0]
	if head.clip == nil {
		if cached, ok := p.cache[head.id]; ok {
			head.clip = cached
		} else {
			clip, err := p.res.Load(head.id)
			if errors.Is(err, audio.ErrPending) {
				return
			}
			if err != nil {
				p.stats.Dropped++
				slog.Warn("Player: Dropping unresolved cue", "cue", head.id, "error", err)
				p.queue = p.queue[1:]
				return
			}
			p.cache[head.id] = clip
			head.clip = clip
		}
	}

	e := p.queue[0]
	p.queue = p.queue[1:]
	if err := p.out.Play(e.clip); err != nil {
		p.stats.Dropped++
		slog.Warn("Player: Failed to start cue", "cue", e.id, "error", err)
		return
	}
	p.stats.Played++
	slog.Debug("Player: Started cue", "cue", e.id, "remaining", len(p.queue))
}

// Len returns the number of queued cues.
func (p *Player) Len() int {
	return len(p.queue)
}

// Queued returns the queued cue IDs in playback order.
func (p *Player) Queued() []cue.ID {
	ids := make([]cue.ID, len(p.queue))
	for i, e := range p.queue {
		ids[i] = e.id
	}
	return ids
}

// Cached reports whether id has been resolved.
func (p *Player) Cached(id cue.ID) bool {
	_, ok := p.cache[id]
	return ok
}

// Clear empties the queue. The cache is kept.
func (p *Player) Clear() {
	p.queue = p.queue[:0]
}

// Stats returns the counters since creation.
func (p *Player) Stats() Stats {
	return p.stats
}

// ParseOverflow validates a policy name. Empty means DropNewest.
func ParseOverflow(s string) (Overflow, error) {
	switch o := Overflow(s); o {
	case "":
		return DropNewest, nil
	case DropNewest, DropOldest:
		return o, nil
	}
	return "", fmt.Errorf("unknown overflow policy %q", s)
}
