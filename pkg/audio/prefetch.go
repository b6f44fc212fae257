package audio

import (
	"context"
	"log/slog"
	"sync"

	"calloutgo/pkg/cue"
)

// Source is anything that can check for and decode cue sounds.
type Source interface {
	Exists(id cue.ID) bool
	Load(id cue.ID) (*Clip, error)
}

// Prefetcher decodes clips on background goroutines so the caller never blocks.
// Load returns ErrPending until the clip is ready. A failed decode is reported
// once and then forgotten, so the next Load starts a fresh attempt.
type Prefetcher struct {
	src    Source
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu       sync.Mutex
	ready    map[cue.ID]*Clip
	failed   map[cue.ID]error
	inflight map[cue.ID]bool
}

// NewPrefetcher wraps src. Cancelling ctx or calling Close abandons in-flight loads.
func NewPrefetcher(ctx context.Context, src Source) *Prefetcher {
	ctx, cancel := context.WithCancel(ctx)
	return &Prefetcher{
		src:      src,
		ctx:      ctx,
		cancel:   cancel,
		ready:    make(map[cue.ID]*Clip),
		failed:   make(map[cue.ID]error),
		inflight: make(map[cue.ID]bool),
	}
}

// Exists delegates to the wrapped source.
func (p *Prefetcher) Exists(id cue.ID) bool {
	return p.src.Exists(id)
}

// Load returns the clip if it is ready, otherwise starts or continues a background load.
func (p *Prefetcher) Load(id cue.ID) (*Clip, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if c, ok := p.ready[id]; ok {
		return c, nil
	}
	if err, ok := p.failed[id]; ok {
		delete(p.failed, id)
		return nil, err
	}
	if p.inflight[id] {
		return nil, ErrPending
	}
	if err := p.ctx.Err(); err != nil {
		return nil, err
	}

	p.inflight[id] = true
	p.wg.Add(1)
	go p.resolve(id)
	return nil, ErrPending
}

func (p *Prefetcher) resolve(id cue.ID) {
	defer p.wg.Done()

	clip, err := p.src.Load(id)

	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.inflight, id)

	if p.ctx.Err() != nil {
		return
	}
	if err != nil {
		slog.Warn("Prefetcher: Load failed", "cue", id, "error", err)
		p.failed[id] = err
		return
	}
	p.ready[id] = clip
}

// Warm starts background loads for ids without waiting for them.
func (p *Prefetcher) Warm(ids ...cue.ID) {
	for _, id := range ids {
		if !p.src.Exists(id) {
			continue
		}
		_, _ = p.Load(id)
	}
}

// Close cancels outstanding loads and waits for their goroutines to exit.
func (p *Prefetcher) Close() {
	p.cancel()
	p.wg.Wait()
}
