// Package reactive is a fine-grained dependency tracking runtime. Wrapped
// state records reads as dependencies of the running effect, and writes
// re-run every effect that read the changed location.
//
// Go cannot intercept field access on arbitrary values, so the package ships
// its own value universe (Object, Array, Map, Set, WeakMap, WeakSet) and the
// wrappers over it (Proxy, CollectionProxy).
package reactive

import (
	"fmt"
	"log/slog"
	"sync/atomic"
)

// OnErrorFunc receives errors returned by effect bodies that were started by
// a trigger rather than by a direct call to Run.
type OnErrorFunc func(e *Effect, err error)

// Runtime owns the tracking state. It is not safe for concurrent use; keep
// each Runtime on one goroutine.
type Runtime struct {
	activeEffect *Effect
	effectStack  []*Effect

	shouldTrack bool
	trackStack  []bool

	uid      uint64
	counters counters

	debug   bool
	logger  *slog.Logger
	onError OnErrorFunc
	onWarn  func(error)
}

// counters may be read from other goroutines, e.g. by a metrics scrape.
type counters struct {
	effectsCreated atomic.Uint64
	effectRuns     atomic.Uint64
	tracks         atomic.Uint64
	triggers       atomic.Uint64
	scheduled      atomic.Uint64
	warnings       atomic.Uint64
}

// Stats are monotonic counters describing the work a Runtime has done.
type Stats struct {
	EffectsCreated uint64
	EffectRuns     uint64
	Tracks         uint64
	Triggers       uint64
	Scheduled      uint64
	Warnings       uint64
}

type Option func(*Runtime)

func WithLogger(logger *slog.Logger) Option {
	return func(rt *Runtime) {
		if logger != nil {
			rt.logger = logger
		}
	}
}

// WithDebug enables warning delivery and clear snapshots in debug events.
func WithDebug(debug bool) Option {
	return func(rt *Runtime) {
		rt.debug = debug
	}
}

func WithErrorHandler(fn OnErrorFunc) Option {
	return func(rt *Runtime) {
		rt.onError = fn
	}
}

// WithWarningHandler receives warnings in debug mode, in addition to the log.
func WithWarningHandler(fn func(error)) Option {
	return func(rt *Runtime) {
		rt.onWarn = fn
	}
}

func NewRuntime(opts ...Option) *Runtime {
	rt := &Runtime{
		shouldTrack: true,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Stats is safe to call from any goroutine.
func (rt *Runtime) Stats() Stats {
	c := &rt.counters
	return Stats{
		EffectsCreated: c.effectsCreated.Load(),
		EffectRuns:     c.effectRuns.Load(),
		Tracks:         c.tracks.Load(),
		Triggers:       c.triggers.Load(),
		Scheduled:      c.scheduled.Load(),
		Warnings:       c.warnings.Load(),
	}
}

func (rt *Runtime) Debug() bool {
	return rt.debug
}

// ActiveEffect returns the effect currently collecting dependencies, if any.
func (rt *Runtime) ActiveEffect() *Effect {
	return rt.activeEffect
}

func (rt *Runtime) PauseTracking() {
	rt.trackStack = append(rt.trackStack, rt.shouldTrack)
	rt.shouldTrack = false
}

func (rt *Runtime) EnableTracking() {
	rt.trackStack = append(rt.trackStack, rt.shouldTrack)
	rt.shouldTrack = true
}

// ResetTracking restores the switch saved by the matching Pause or Enable.
// An unbalanced reset leaves tracking enabled.
func (rt *Runtime) ResetTracking() {
	n := len(rt.trackStack)
	if n == 0 {
		rt.shouldTrack = true
		return
	}
	rt.shouldTrack = rt.trackStack[n-1]
	rt.trackStack = rt.trackStack[:n-1]
}

// Untracked runs fn with tracking paused.
func (rt *Runtime) Untracked(fn func()) {
	rt.PauseTracking()
	defer rt.ResetTracking()
	fn()
}

func (rt *Runtime) warnf(kind error, format string, args ...any) {
	rt.counters.warnings.Add(1)
	if !rt.debug {
		return
	}
	err := fmt.Errorf("%w: "+format, append([]any{kind}, args...)...)
	if rt.onWarn != nil {
		rt.onWarn(err)
	}
	rt.logger.Warn("reactive warning", "err", err)
}

func (rt *Runtime) reportError(e *Effect, err error) {
	if err == nil {
		return
	}
	if rt.onError != nil {
		rt.onError(e, err)
		return
	}
	rt.logger.Error("effect failed", "effect", e.id, "err", err)
}
