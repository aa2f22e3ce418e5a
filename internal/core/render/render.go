// Copyright (c) 2026 Dicefaces. All rights reserved.
// Author: dev@dicefaces.app

/*
Package render drives the per-instance load lifecycle of one die image.

A [Renderer] owns a tri-state machine:

	Loading ──▶ Success
	   │
	   └──────▶ Error

Every committed input change starts a new generation: the machine re-enters
Loading, validation runs synchronously (short-circuiting to Error), and an
asynchronous load begins against the resolved locator. A failed SVG load
retries once as PNG before the generation settles in Error.

# Races

Loads are never aborted, only superseded. Every asynchronous resumption
compares its generation against the current one and discards its effect when
stale, so the most recently committed generation always wins regardless of
wall-clock settlement order.
*/
package render

import (
	"context"
	"log/slog"
	"sync"

	"github.com/dicewright/dicefaces/internal/core/die"
	"github.com/dicewright/dicefaces/internal/platform/apperr"
	"github.com/dicewright/dicefaces/internal/platform/ctxutil"
)

// CodeAssetLoadFailed is surfaced when both the primary fetch and the
// format-downgrade retry are exhausted.
const CodeAssetLoadFailed = "ASSET_LOAD_FAILED"

// State is the render lifecycle state.
type State string

const (
	StateLoading State = "loading"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Loader fetches a single asset locator, reporting only success or failure.
type Loader interface {
	Load(ctx context.Context, locator string) error
}

// Props are the tracked inputs of a renderer. Committing any change restarts
// the lifecycle from Loading.
type Props struct {
	DieType  string
	Face     die.Face
	Theme    any
	Format   string
	Variant  string
	BasePath string
}

// Snapshot is an observable copy of the renderer's state at one instant.
type Snapshot struct {
	Generation uint64           `json:"-"`
	State      State            `json:"state"`
	Src        string           `json:"src,omitempty"`
	Alt        string           `json:"alt,omitempty"`
	Warnings   []string         `json:"warnings,omitempty"`
	Retried    bool             `json:"retried"`
	Err        *apperr.AppError `json:"error,omitempty"`
}

// Renderer is the lifecycle controller for a single die image.
//
// All methods are safe for concurrent use; state is owned exclusively by the
// renderer and only observed through snapshots.
type Renderer struct {
	resolver *die.Service
	loader   Loader

	mu   sync.Mutex
	gen  uint64
	snap Snapshot
	done chan struct{} // closed when the current generation settles or is superseded
}

// NewRenderer creates an idle renderer. Nothing happens until [Renderer.Update].
func NewRenderer(resolver *die.Service, loader Loader) *Renderer {
	return &Renderer{resolver: resolver, loader: loader}
}

// Update commits a new input generation and returns the immediate snapshot:
// Loading when an asynchronous load is now in flight, or Error when
// validation short-circuited. Any in-flight work from the previous
// generation is discarded.
func (r *Renderer) Update(ctx context.Context, props Props) Snapshot {
	r.mu.Lock()
	r.gen++
	gen := r.gen

	// Release waiters of the superseded generation; its eventual settlement
	// will fail the generation check and change nothing.
	if r.done != nil {
		select {
		case <-r.done:
		default:
			close(r.done)
		}
	}
	r.done = make(chan struct{})
	r.snap = Snapshot{Generation: gen, State: StateLoading}
	r.mu.Unlock()

	out, err := r.resolver.Resolve(ctx, die.ResolveInput{
		DieType:  props.DieType,
		Face:     props.Face,
		Theme:    props.Theme,
		Format:   props.Format,
		Variant:  props.Variant,
		BasePath: props.BasePath,
	})
	if err != nil {
		// Deterministic failure: no image element is ever created.
		r.settle(gen, func(s *Snapshot) {
			s.State = StateError
			s.Err = asAppError(err)
		})
		return r.Snapshot()
	}

	r.apply(gen, func(s *Snapshot) {
		s.Src = out.Src
		s.Alt = out.Alt
		s.Warnings = out.Warnings
	})

	go r.load(ctx, gen, out.Src, out.Format)
	return r.Snapshot()
}

// Snapshot returns a copy of the current state.
func (r *Renderer) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.snap
}

// Wait blocks until the current generation settles (or is superseded), or
// until the context expires, then returns the latest snapshot.
func (r *Renderer) Wait(ctx context.Context) Snapshot {
	r.mu.Lock()
	done := r.done
	r.mu.Unlock()

	if done != nil {
		select {
		case <-ctx.Done():
		case <-done:
		}
	}
	return r.Snapshot()
}

// load performs the asynchronous fetch for one generation, with the single
// vector-to-raster downgrade retry.
func (r *Renderer) load(ctx context.Context, gen uint64, src string, format die.Format) {
	err := r.loader.Load(ctx, src)
	if err == nil {
		r.settle(gen, func(s *Snapshot) { s.State = StateSuccess })
		return
	}

	if format == die.FormatSVG {
		retrySrc := die.WithFormat(src, die.FormatPNG)

		// Conceptually still Loading, but the retry budget is now spent.
		if !r.apply(gen, func(s *Snapshot) {
			s.Retried = true
			s.Src = retrySrc
		}) {
			return // superseded mid-retry
		}

		ctxutil.GetLogger(ctx).WarnContext(ctx, "asset_load_retrying_png",
			slog.String("src", src),
			slog.Any("error", err),
		)

		if retryErr := r.loader.Load(ctx, retrySrc); retryErr == nil {
			r.settle(gen, func(s *Snapshot) { s.State = StateSuccess })
			return
		} else {
			err = retryErr
		}
	}

	r.settle(gen, func(s *Snapshot) {
		s.State = StateError
		s.Err = apperr.UpstreamFailed(CodeAssetLoadFailed, "Failed to load die asset", err)
	})
}

// apply mutates the snapshot iff gen is still current. Reports whether the
// mutation happened.
func (r *Renderer) apply(gen uint64, fn func(*Snapshot)) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return false
	}
	fn(&r.snap)
	return true
}

// settle finalizes the generation (iff still current) and releases waiters.
func (r *Renderer) settle(gen uint64, fn func(*Snapshot)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		return
	}
	fn(&r.snap)
	select {
	case <-r.done:
	default:
		close(r.done)
	}
}

// asAppError coerces any error into an [*apperr.AppError] payload.
func asAppError(err error) *apperr.AppError {
	if ae := apperr.As(err); ae != nil {
		return ae
	}
	return apperr.Internal(err)
}
