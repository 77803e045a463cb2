package reactive

// Mode selects the flavour of wrapper built by Wrap.
type Mode uint8

const (
	ModeReactive Mode = iota
	ModeShallowReactive
	ModeReadonly
	ModeShallowReadonly
)

func (m Mode) IsReadonly() bool { return m == ModeReadonly || m == ModeShallowReadonly }

func (m Mode) IsShallow() bool { return m == ModeShallowReactive || m == ModeShallowReadonly }

func (m Mode) String() string {
	switch m {
	case ModeReactive:
		return "reactive"
	case ModeShallowReactive:
		return "shallowReactive"
	case ModeReadonly:
		return "readonly"
	case ModeShallowReadonly:
		return "shallowReadonly"
	default:
		return "unknown"
	}
}

// dispatch tables, indexed by Mode and filled in init to break the
// reference cycle through Wrap
var (
	proxyHandlers      [4]*proxyHandler
	collectionHandlers [4]*instrumentations
)

type targetType uint8

const (
	targetInvalid targetType = iota
	targetCommon
	targetCollection
)

func getTargetType(v any) targetType {
	t, ok := v.(Target)
	if !ok || t.header().skip || !isExtensible(v) {
		return targetInvalid
	}
	switch t.(type) {
	case propertyTarget:
		return targetCommon
	case collection:
		return targetCollection
	}
	return targetInvalid
}

func (rt *Runtime) Reactive(target any) any { return rt.Wrap(target, ModeReactive) }

func (rt *Runtime) ShallowReactive(target any) any { return rt.Wrap(target, ModeShallowReactive) }

func (rt *Runtime) Readonly(target any) any { return rt.Wrap(target, ModeReadonly) }

func (rt *Runtime) ShallowReadonly(target any) any { return rt.Wrap(target, ModeShallowReadonly) }

// Wrap returns the wrapper of target for mode, creating it on first use.
// Wrapping a readonly wrapper as mutable returns it unchanged, a mutable
// wrapper may be layered under a readonly one. Values that cannot be wrapped
// come back unchanged.
func (rt *Runtime) Wrap(target any, mode Mode) any {
	readonly := mode.IsReadonly()
	if !readonly && IsReadonly(target) {
		return target
	}
	if !isObject(target) {
		rt.warnf(ErrInvalidTarget, "%v (%T)", target, target)
		return target
	}
	if isWrapper(target) && !(readonly && IsReactive(target)) {
		return target
	}

	h := target.(Trackable).header()
	if s := h.lookup(rt); s != nil {
		if existing := s.wrapper(readonly); existing != nil {
			return existing
		}
	}

	var w any
	switch getTargetType(target) {
	case targetCommon:
		w = &Proxy{rt: rt, target: target.(propertyTarget), h: proxyHandlers[mode]}
	case targetCollection:
		w = &CollectionProxy{rt: rt, target: target.(collection), ins: collectionHandlers[mode]}
	default:
		return target
	}
	h.slotFor(rt).setWrapper(readonly, w)
	return w
}

func (rt *Runtime) toReactive(v any) any {
	if isObject(v) {
		return rt.Reactive(v)
	}
	return v
}

func (rt *Runtime) toReadonly(v any) any {
	if isObject(v) {
		return rt.Readonly(v)
	}
	return v
}

func isWrapper(v any) bool {
	switch v.(type) {
	case *Proxy, *CollectionProxy:
		return true
	}
	return false
}

// ToRaw strips every wrapper layer off v.
func ToRaw(v any) any {
	switch w := v.(type) {
	case *Proxy:
		return ToRaw(w.target)
	case *CollectionProxy:
		return ToRaw(w.target)
	}
	return v
}

// IsReactive reports whether v is a mutable wrapper, or a readonly wrapper
// layered over one.
func IsReactive(v any) bool {
	switch w := v.(type) {
	case *Proxy:
		if w.h.readonly {
			return IsReactive(w.target)
		}
		return true
	case *CollectionProxy:
		if w.ins.readonly {
			return IsReactive(w.target)
		}
		return true
	}
	return false
}

func IsReadonly(v any) bool {
	switch w := v.(type) {
	case *Proxy:
		return w.h.readonly
	case *CollectionProxy:
		return w.ins.readonly
	}
	return false
}

func IsProxy(v any) bool {
	return IsReactive(v) || IsReadonly(v)
}
