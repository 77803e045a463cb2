package reactive

// Trackable is implemented by every value a Runtime can hang dependencies
// on. Embed Header in a struct to make it Trackable.
type Trackable interface {
	header() *Header
}

// Header is the per-object bookkeeping block. It holds, for each Runtime
// that has seen the object, the dependency bucket and the wrappers built
// over it. Keeping this on the object ties its lifetime to the object, so the
// registries never keep otherwise unreachable targets alive.
type Header struct {
	skip bool

	// single runtime fast path, more is only allocated for the rare
	// object shared between runtimes
	owner *Runtime
	first *slot
	more  map[*Runtime]*slot

	// entries of weak collections keyed by this object, indexed by the
	// owning *WeakMap / *WeakSet
	weakRefs map[any]any
}

type slot struct {
	deps     *depsMap
	reactive any
	readonly any
}

func (h *Header) header() *Header { return h }

func (h *Header) lookup(rt *Runtime) *slot {
	if h.owner == rt {
		return h.first
	}
	return h.more[rt]
}

func (h *Header) slotFor(rt *Runtime) *slot {
	if s := h.lookup(rt); s != nil {
		return s
	}
	s := &slot{}
	if h.owner == nil {
		h.owner, h.first = rt, s
		return s
	}
	if h.more == nil {
		h.more = map[*Runtime]*slot{}
	}
	h.more[rt] = s
	return s
}

func (s *slot) wrapper(readonly bool) any {
	if readonly {
		return s.readonly
	}
	return s.reactive
}

func (s *slot) setWrapper(readonly bool, w any) {
	if readonly {
		s.readonly = w
	} else {
		s.reactive = w
	}
}

func (h *Header) weakGet(owner any) (any, bool) {
	v, ok := h.weakRefs[owner]
	return v, ok
}

func (h *Header) weakSet(owner, value any) {
	if h.weakRefs == nil {
		h.weakRefs = map[any]any{}
	}
	h.weakRefs[owner] = value
}

func (h *Header) weakDelete(owner any) bool {
	if _, ok := h.weakRefs[owner]; !ok {
		return false
	}
	delete(h.weakRefs, owner)
	return true
}

// MarkRaw permanently opts v out of wrapping and returns it.
func MarkRaw[T Trackable](v T) T {
	v.header().skip = true
	return v
}
