package reactive

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// dep is the subscriber set of one (target, key) location. subs keeps
// insertion order so triggers run effects in the order they subscribed.
type dep struct {
	subs    []*Effect
	members mapset.Set[*Effect]
}

func newDep() *dep {
	return &dep{members: mapset.NewThreadUnsafeSet[*Effect]()}
}

func (d *dep) add(e *Effect) bool {
	if !d.members.Add(e) {
		return false
	}
	d.subs = append(d.subs, e)
	return true
}

func (d *dep) remove(e *Effect) {
	if !d.members.Contains(e) {
		return
	}
	d.members.Remove(e)
	if i := slices.Index(d.subs, e); i >= 0 {
		d.subs = slices.Delete(d.subs, i, i+1)
	}
}

// depsMap is the key to dep table of one target, in first-tracked order.
type depsMap struct {
	keys []any
	deps map[any]*dep
}

func (m *depsMap) get(key any) *dep {
	if m == nil {
		return nil
	}
	return m.deps[key]
}

func (m *depsMap) getOrCreate(key any) *dep {
	if d, ok := m.deps[key]; ok {
		return d
	}
	if m.deps == nil {
		m.deps = map[any]*dep{}
	}
	d := newDep()
	m.deps[key] = d
	m.keys = append(m.keys, key)
	return d
}

// Track records that the active effect read key on target. It does nothing
// when tracking is paused, no effect is running, or the running effect was
// stopped during its own run.
func (rt *Runtime) Track(target Trackable, op OpType, key any) {
	if !rt.shouldTrack || rt.activeEffect == nil || !rt.activeEffect.active || !hashable(key) {
		return
	}
	s := target.header().slotFor(rt)
	if s.deps == nil {
		s.deps = &depsMap{}
	}
	d := s.deps.getOrCreate(key)
	e := rt.activeEffect
	if !d.add(e) {
		return
	}
	e.deps = append(e.deps, d)
	rt.counters.tracks.Add(1)
	if e.onTrack != nil {
		e.onTrack(DebuggerEvent{
			Effect: e,
			Target: target,
			Op:     op,
			Key:    key,
		})
	}
}

// Trigger re-runs, or hands to their schedulers, the effects depending on
// the location described by op and key.
func (rt *Runtime) Trigger(target Trackable, op OpType, key, newValue, oldValue any) {
	rt.trigger(target, op, key, newValue, oldValue, nil)
}

func (rt *Runtime) trigger(target Trackable, op OpType, key, newValue, oldValue, oldTarget any) {
	s := target.header().lookup(rt)
	if s == nil || s.deps == nil {
		return
	}
	deps := s.deps
	rt.counters.triggers.Add(1)

	seen := mapset.NewThreadUnsafeSet[*Effect]()
	var run []*Effect
	add := func(d *dep) {
		if d == nil {
			return
		}
		for _, e := range d.subs {
			if e == rt.activeEffect && !e.allowRecurse {
				continue
			}
			if seen.Add(e) {
				run = append(run, e)
			}
		}
	}

	kind := targetKind(target)
	switch {
	case op == OpClear:
		for _, k := range deps.keys {
			add(deps.deps[k])
		}
	case key == LengthKey && kind == KindArray:
		newLength, _ := toLength(newValue)
		for _, k := range deps.keys {
			if k == LengthKey {
				add(deps.deps[k])
			} else if i, ok := isIntegerKey(k); ok && i >= newLength {
				add(deps.deps[k])
			}
		}
	default:
		if key != nil && hashable(key) {
			add(deps.get(key))
		}
		switch op {
		case OpAdd:
			if kind != KindArray {
				add(deps.get(IterateKey))
				if kind.isMapLike() {
					add(deps.get(MapKeyIterateKey))
				}
			} else if _, ok := isIntegerKey(key); ok {
				add(deps.get(LengthKey))
			}
		case OpDelete:
			if kind != KindArray {
				add(deps.get(IterateKey))
				if kind.isMapLike() {
					add(deps.get(MapKeyIterateKey))
				}
			}
		case OpSet:
			if kind.isMapLike() {
				add(deps.get(IterateKey))
			}
		}
	}

	for _, e := range run {
		if e.onTrigger != nil {
			e.onTrigger(DebuggerEvent{
				Effect:    e,
				Target:    target,
				Op:        op,
				Key:       key,
				NewValue:  newValue,
				OldValue:  oldValue,
				OldTarget: oldTarget,
			})
		}
		if e.scheduler != nil {
			rt.counters.scheduled.Add(1)
			e.scheduler(e)
			continue
		}
		rt.reportError(e, e.Run())
	}
}

func targetKind(t Trackable) Kind {
	if k, ok := t.(Target); ok {
		return k.Kind()
	}
	return KindInvalid
}
