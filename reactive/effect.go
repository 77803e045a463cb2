package reactive

import "slices"

// DebuggerEvent describes one track or trigger, delivered to the OnTrack and
// OnTrigger hooks of the effect involved.
type DebuggerEvent struct {
	Effect    *Effect
	Target    Trackable
	Op        OpType
	Key       any
	NewValue  any
	OldValue  any
	OldTarget any
}

// Effect is a subscriber: a body that is re-run whenever a location it read
// during its last run changes.
type Effect struct {
	id     uint64
	rt     *Runtime
	fn     func() error
	active bool
	deps   []*dep

	lazy         bool
	allowRecurse bool
	scheduler    func(*Effect)
	onTrack      func(DebuggerEvent)
	onTrigger    func(DebuggerEvent)
	onStop       func()
}

type EffectOption func(*Effect)

// DeferFirstRun skips the run normally performed at construction.
func DeferFirstRun() EffectOption {
	return func(e *Effect) { e.lazy = true }
}

// WithScheduler routes triggered runs to fn instead of running the effect.
func WithScheduler(fn func(*Effect)) EffectOption {
	return func(e *Effect) { e.scheduler = fn }
}

// AllowRecurse lets a trigger raised by the effect's own run select it.
// Direct re-entry of a running effect is still refused.
func AllowRecurse() EffectOption {
	return func(e *Effect) { e.allowRecurse = true }
}

func OnTrack(fn func(DebuggerEvent)) EffectOption {
	return func(e *Effect) { e.onTrack = fn }
}

func OnTrigger(fn func(DebuggerEvent)) EffectOption {
	return func(e *Effect) { e.onTrigger = fn }
}

func OnStop(fn func()) EffectOption {
	return func(e *Effect) { e.onStop = fn }
}

// Effect creates a subscriber over fn and, unless DeferFirstRun is given,
// runs it once. An error from that first run goes to the error handler.
func (rt *Runtime) Effect(fn func() error, opts ...EffectOption) *Effect {
	e := &Effect{
		id:     rt.uid,
		rt:     rt,
		fn:     fn,
		active: true,
	}
	rt.uid++
	for _, opt := range opts {
		opt(e)
	}
	rt.counters.effectsCreated.Add(1)

	if !e.lazy {
		rt.reportError(e, e.Run())
	}
	return e
}

func (e *Effect) ID() uint64 { return e.id }

func (e *Effect) Active() bool { return e.active }

// Raw returns the body the effect was built over.
func (e *Effect) Raw() func() error { return e.fn }

// DepCount is the number of dependency sets the effect currently sits in.
func (e *Effect) DepCount() int { return len(e.deps) }

// Run invokes the effect. A stopped effect without a scheduler runs its body
// untracked; a stopped effect with a scheduler does nothing. An effect that
// is already on the run stack is not re-entered.
func (e *Effect) Run() error {
	rt := e.rt
	if !e.active {
		if e.scheduler != nil {
			return nil
		}
		return e.fn()
	}
	if slices.Contains(rt.effectStack, e) {
		return nil
	}

	e.cleanup()
	rt.EnableTracking()
	rt.effectStack = append(rt.effectStack, e)
	rt.activeEffect = e
	rt.counters.effectRuns.Add(1)
	defer func() {
		rt.effectStack = rt.effectStack[:len(rt.effectStack)-1]
		rt.ResetTracking()
		if n := len(rt.effectStack); n > 0 {
			rt.activeEffect = rt.effectStack[n-1]
		} else {
			rt.activeEffect = nil
		}
	}()
	return e.fn()
}

// Stop detaches the effect from every dependency and deactivates it for good.
func (e *Effect) Stop() {
	if !e.active {
		return
	}
	e.cleanup()
	if e.onStop != nil {
		e.onStop()
	}
	e.active = false
}

func (rt *Runtime) Stop(e *Effect) {
	e.Stop()
}

func (e *Effect) cleanup() {
	for _, d := range e.deps {
		d.remove(e)
	}
	clear(e.deps)
	e.deps = e.deps[:0]
}
