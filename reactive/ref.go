package reactive

type cellKind uint8

const (
	cellValue cellKind = iota + 1
	cellCustom
	cellProperty
	cellComputed
)

// Cell is a boxed value read and written through its "value" key. The
// implementations are *Ref, *CustomRef, *PropertyRef and *ComputedRef.
type Cell interface {
	Trackable
	Value() any
	SetValue(v any)
	cellKind() cellKind
}

func IsRef(v any) bool {
	_, ok := v.(Cell)
	return ok
}

// Unref returns the content of a cell, or v itself.
func Unref(v any) any {
	if c, ok := v.(Cell); ok {
		return c.Value()
	}
	return v
}

// Ref is a standalone cell. A deep ref wraps object content on the way in;
// a shallow one stores it as is.
type Ref struct {
	Header

	rt       *Runtime
	rawValue any
	value    any
	shallow  bool
}

func (rt *Runtime) Ref(value any) Cell { return rt.createRef(value, false) }

func (rt *Runtime) ShallowRef(value any) Cell { return rt.createRef(value, true) }

func (rt *Runtime) createRef(value any, shallow bool) Cell {
	if c, ok := value.(Cell); ok {
		return c
	}
	r := &Ref{rt: rt, shallow: shallow}
	if shallow {
		r.rawValue, r.value = value, value
	} else {
		r.rawValue, r.value = ToRaw(value), rt.toReactive(value)
	}
	return r
}

func (r *Ref) cellKind() cellKind { return cellValue }

func (r *Ref) IsShallow() bool { return r.shallow }

func (r *Ref) Value() any {
	r.rt.Track(r, OpGet, RefValueKey)
	return r.value
}

// SetValue stores v and triggers when it differs from the stored raw value.
func (r *Ref) SetValue(v any) {
	if !r.shallow {
		v = ToRaw(v)
	}
	if !hasChanged(v, r.rawValue) {
		return
	}
	old := r.rawValue
	r.rawValue = v
	if r.shallow {
		r.value = v
	} else {
		r.value = r.rt.toReactive(v)
	}
	r.rt.trigger(r, OpSet, RefValueKey, v, old, nil)
}

// TriggerRef forces the subscribers of c to run, for use after mutating the
// content of a shallow ref in place.
func (rt *Runtime) TriggerRef(c Cell) {
	var v any
	if rt.debug {
		rt.Untracked(func() { v = c.Value() })
	}
	rt.trigger(c, OpSet, RefValueKey, v, nil, nil)
}

// CustomRefFactory receives the cell's track and trigger callbacks and
// returns its accessors.
type CustomRefFactory func(track, trigger func()) (get func() any, set func(any))

// CustomRef delegates reads and writes to user accessors that decide when to
// track and trigger.
type CustomRef struct {
	Header

	get func() any
	set func(any)
}

func (rt *Runtime) CustomRef(factory CustomRefFactory) *CustomRef {
	r := &CustomRef{}
	r.get, r.set = factory(
		func() { rt.Track(r, OpGet, RefValueKey) },
		func() { rt.trigger(r, OpSet, RefValueKey, nil, nil, nil) },
	)
	return r
}

func (r *CustomRef) cellKind() cellKind { return cellCustom }

func (r *CustomRef) Value() any { return r.get() }

func (r *CustomRef) SetValue(v any) { r.set(v) }

// PropertyRef is a cell over one key of a host. It tracks nothing itself;
// dependencies come from the host.
type PropertyRef struct {
	Header

	host PropertyHost
	key  any
}

func (r *PropertyRef) cellKind() cellKind { return cellProperty }

func (r *PropertyRef) Value() any { return r.host.Get(r.key) }

func (r *PropertyRef) SetValue(v any) { r.host.Set(r.key, v) }

func (r *PropertyRef) Key() any { return r.key }

// ToRef returns a cell over host[key], or the cell already stored there.
func (rt *Runtime) ToRef(host PropertyHost, key any) Cell {
	if c, ok := host.Get(key).(Cell); ok {
		return c
	}
	return &PropertyRef{host: host, key: key}
}

// KeyedHost is a PropertyHost that can list its keys.
type KeyedHost interface {
	PropertyHost
	Kind() Kind
	OwnKeys() []any
}

// ToRefs converts every key of host into a PropertyRef, returned as an
// *Array for arrays and an *Object otherwise.
func (rt *Runtime) ToRefs(host KeyedHost) Target {
	if !IsProxy(host) {
		rt.warnf(ErrInvalidTarget, "ToRefs expects a wrapper, got %T", host)
	}
	isArray := host.Kind() == KindArray
	var out interface {
		Target
		defineOwn(key, value any) bool
	}
	if isArray {
		out = NewArray()
	} else {
		out = NewObject()
	}
	for _, key := range host.OwnKeys() {
		if _, isSym := key.(*Symbol); isSym || (isArray && key == LengthKey) {
			continue
		}
		out.defineOwn(key, rt.ToRef(host, key))
	}
	return out
}

// RefsView reads through to an object, unwrapping cells, and writes into
// existing cells instead of replacing them.
type RefsView struct {
	Header

	target propertyTarget
}

// ProxyRefs returns a RefsView over obj, or obj itself when it is already a
// mutable wrapper, which unwraps cells on its own.
func (rt *Runtime) ProxyRefs(obj PropertyHost) PropertyHost {
	if IsReactive(obj) {
		return obj
	}
	t, ok := obj.(propertyTarget)
	if !ok {
		return obj
	}
	return &RefsView{target: t}
}

func (v *RefsView) Kind() Kind { return v.target.Kind() }

func (v *RefsView) Get(key any) any {
	key = normalizeKey(v.Kind(), key)
	return Unref(v.target.reflectGet(key, v.target))
}

func (v *RefsView) Set(key, value any) bool {
	key = normalizeKey(v.Kind(), key)
	if old, ok := v.target.reflectGet(key, v.target).(Cell); ok {
		if _, isCell := value.(Cell); !isCell {
			old.SetValue(value)
			return true
		}
	}
	return v.target.reflectSet(key, value, v.target)
}

func (v *RefsView) Has(key any) bool {
	return v.target.reflectHas(normalizeKey(v.Kind(), key))
}

func (v *RefsView) Delete(key any) bool {
	return v.target.reflectDelete(normalizeKey(v.Kind(), key))
}

func (v *RefsView) OwnKeys() []any { return v.target.reflectOwnKeys() }
