package reactive

// Array is a dense list with JS array semantics: writing past the end grows
// it, deleting an index leaves a hole, and "length" can be written to grow or
// truncate.
type Array struct {
	Header

	items []any
}

type holeType struct{}

var hole any = holeType{}

func NewArray(items ...any) *Array {
	a := &Array{items: make([]any, len(items))}
	copy(a.items, items)
	return a
}

func (a *Array) Kind() Kind { return KindArray }

func (a *Array) Len() int { return len(a.items) }

// Items returns a copy of the elements, holes reported as nil.
func (a *Array) Items() []any {
	out := make([]any, len(a.items))
	for i, v := range a.items {
		if v != hole {
			out[i] = v
		}
	}
	return out
}

func (a *Array) Get(key any) any {
	return a.reflectGet(normalizeKey(KindArray, key), a)
}

func (a *Array) Set(key, value any) bool {
	return a.reflectSet(normalizeKey(KindArray, key), value, a)
}

func (a *Array) Delete(key any) bool {
	return a.reflectDelete(normalizeKey(KindArray, key))
}

func (a *Array) Has(key any) bool {
	return a.reflectHas(normalizeKey(KindArray, key))
}

func (a *Array) OwnKeys() []any {
	return a.reflectOwnKeys()
}

func (a *Array) getOwn(key any) (any, bool) {
	if key == LengthKey {
		return len(a.items), true
	}
	i, ok := key.(int)
	if !ok || i < 0 || i >= len(a.items) || a.items[i] == hole {
		return nil, false
	}
	return a.items[i], true
}

func (a *Array) reflectGet(key any, _ propertyTarget) any {
	v, _ := a.getOwn(key)
	return v
}

func (a *Array) reflectSet(key, value any, receiver propertyTarget) bool {
	return defineOn(receiver, key, value)
}

func (a *Array) reflectHas(key any) bool {
	_, ok := a.getOwn(key)
	return ok
}

func (a *Array) reflectDelete(key any) bool {
	if key == LengthKey {
		return false
	}
	if i, ok := key.(int); ok && i >= 0 && i < len(a.items) {
		a.items[i] = hole
	}
	return true
}

func (a *Array) reflectOwnKeys() []any {
	keys := make([]any, 0, len(a.items)+1)
	for i, v := range a.items {
		if v != hole {
			keys = append(keys, i)
		}
	}
	return append(keys, LengthKey)
}

func (a *Array) defineOwn(key, value any) bool {
	if key == LengthKey {
		n, ok := toLength(value)
		if !ok {
			return false
		}
		a.setLength(n)
		return true
	}
	i, ok := key.(int)
	if !ok || i < 0 {
		return false
	}
	if i >= len(a.items) {
		a.setLength(i + 1)
	}
	a.items[i] = value
	return true
}

func (a *Array) setLength(n int) {
	if n <= len(a.items) {
		clear(a.items[n:])
		a.items = a.items[:n]
		return
	}
	for len(a.items) < n {
		a.items = append(a.items, hole)
	}
}
