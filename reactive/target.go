package reactive

// Target is a value that can be wrapped: one of the raw types of this
// package, or a wrapper over one.
type Target interface {
	Trackable
	Kind() Kind
}

// PropertyHost is anything with keyed property access.
type PropertyHost interface {
	Get(key any) any
	Set(key, value any) bool
}

// propertyTarget is the reflective surface shared by raw objects, raw arrays
// and the proxies over them. Keys are already normalized. receiver is the
// object the access started on and decides where a write finally lands.
type propertyTarget interface {
	Target
	PropertyHost
	getOwn(key any) (any, bool)
	reflectGet(key any, receiver propertyTarget) any
	reflectSet(key, value any, receiver propertyTarget) bool
	reflectHas(key any) bool
	reflectDelete(key any) bool
	reflectOwnKeys() []any
}

// definer stores an own property without consulting any prototype.
type definer interface {
	defineOwn(key, value any) bool
}

func defineOn(receiver propertyTarget, key, value any) bool {
	d, ok := ToRaw(receiver).(definer)
	if !ok {
		return false
	}
	return d.defineOwn(key, value)
}

func lengthOf(t propertyTarget) int {
	if a, ok := t.(*Array); ok {
		return len(a.items)
	}
	n, _ := toLength(t.reflectGet(LengthKey, t))
	return n
}

func isExtensible(t any) bool {
	switch v := t.(type) {
	case *Object:
		return !v.frozen
	case *Proxy:
		return isExtensible(v.target)
	}
	return true
}

func isObject(v any) bool {
	_, ok := v.(Trackable)
	return ok
}
