package reactive

import "slices"

// Object is an insertion ordered property bag with an optional prototype.
// Keys are strings or *Symbol; int keys are stored as their decimal string.
type Object struct {
	Header

	keys   []any
	props  map[any]any
	proto  propertyTarget
	frozen bool
}

// NewObject builds an object from alternating key, value arguments.
func NewObject(kv ...any) *Object {
	o := &Object{props: make(map[any]any, len(kv)/2)}
	for i := 0; i+1 < len(kv); i += 2 {
		o.defineOwn(normalizeKey(KindObject, kv[i]), kv[i+1])
	}
	return o
}

func (o *Object) Kind() Kind { return KindObject }

func (o *Object) Get(key any) any {
	return o.reflectGet(normalizeKey(KindObject, key), o)
}

func (o *Object) Set(key, value any) bool {
	return o.reflectSet(normalizeKey(KindObject, key), value, o)
}

func (o *Object) Delete(key any) bool {
	return o.reflectDelete(normalizeKey(KindObject, key))
}

func (o *Object) Has(key any) bool {
	return o.reflectHas(normalizeKey(KindObject, key))
}

func (o *Object) OwnKeys() []any {
	return o.reflectOwnKeys()
}

func (o *Object) Len() int {
	return len(o.keys)
}

// Proto returns the prototype, or nil.
func (o *Object) Proto() PropertyHost {
	if o.proto == nil {
		return nil
	}
	return o.proto
}

// SetProto installs proto, which must be an *Object, an *Array or a *Proxy,
// as the fallback for missing keys. It refuses cycles.
func (o *Object) SetProto(proto PropertyHost) bool {
	if proto == nil {
		o.proto = nil
		return true
	}
	p, ok := proto.(propertyTarget)
	if !ok {
		return false
	}
	for cur := p; cur != nil; {
		raw, _ := ToRaw(cur).(*Object)
		if raw == nil {
			break
		}
		if raw == o {
			return false
		}
		cur = raw.proto
	}
	o.proto = p
	return true
}

// PreventExtensions stops new keys from being added. Such an object can no
// longer be wrapped.
func (o *Object) PreventExtensions() {
	o.frozen = true
}

func (o *Object) IsExtensible() bool {
	return !o.frozen
}

func (o *Object) getOwn(key any) (any, bool) {
	v, ok := o.props[key]
	return v, ok
}

func (o *Object) reflectGet(key any, receiver propertyTarget) any {
	if v, ok := o.props[key]; ok {
		return v
	}
	if key == protoKey {
		return o.Proto()
	}
	if o.proto != nil {
		return o.proto.reflectGet(key, receiver)
	}
	return nil
}

func (o *Object) reflectSet(key, value any, receiver propertyTarget) bool {
	if _, own := o.props[key]; !own && o.proto != nil {
		return o.proto.reflectSet(key, value, receiver)
	}
	return defineOn(receiver, key, value)
}

func (o *Object) reflectHas(key any) bool {
	if _, ok := o.props[key]; ok {
		return true
	}
	return o.proto != nil && o.proto.reflectHas(key)
}

func (o *Object) reflectDelete(key any) bool {
	if _, ok := o.props[key]; !ok {
		return true
	}
	delete(o.props, key)
	if i := slices.Index(o.keys, key); i >= 0 {
		o.keys = slices.Delete(o.keys, i, i+1)
	}
	return true
}

func (o *Object) reflectOwnKeys() []any {
	return slices.Clone(o.keys)
}

func (o *Object) defineOwn(key, value any) bool {
	if _, ok := o.props[key]; !ok {
		if o.frozen {
			return false
		}
		if o.props == nil {
			o.props = map[any]any{}
		}
		o.keys = append(o.keys, key)
	}
	o.props[key] = value
	return true
}
