package reactive

// Proxy is the wrapper over an *Object or *Array, or over another Proxy when
// a readonly layer sits on a mutable one. Every access goes through the
// handler table chosen when it was created.
type Proxy struct {
	Header

	rt     *Runtime
	target propertyTarget
	h      *proxyHandler
}

func (p *Proxy) Kind() Kind { return p.target.Kind() }

func (p *Proxy) Runtime() *Runtime { return p.rt }

func (p *Proxy) Mode() Mode {
	switch {
	case p.h.readonly && p.h.shallow:
		return ModeShallowReadonly
	case p.h.readonly:
		return ModeReadonly
	case p.h.shallow:
		return ModeShallowReactive
	}
	return ModeReactive
}

func (p *Proxy) key(key any) any { return normalizeKey(p.Kind(), key) }

func (p *Proxy) Get(key any) any { return p.h.get(p, p.key(key), p) }

func (p *Proxy) Set(key, value any) bool { return p.h.set(p, p.key(key), value, p) }

func (p *Proxy) Delete(key any) bool { return p.h.deleteProperty(p, p.key(key)) }

func (p *Proxy) Has(key any) bool { return p.h.has(p, p.key(key)) }

func (p *Proxy) OwnKeys() []any { return p.h.ownKeys(p) }

// Len reads "length", so on arrays it subscribes to length changes.
func (p *Proxy) Len() int {
	n, _ := toLength(p.Get(LengthKey))
	return n
}

func (p *Proxy) getOwn(key any) (any, bool) { return p.target.getOwn(key) }

func (p *Proxy) reflectGet(key any, receiver propertyTarget) any {
	return p.h.get(p, key, receiver)
}

func (p *Proxy) reflectSet(key, value any, receiver propertyTarget) bool {
	return p.h.set(p, key, value, receiver)
}

func (p *Proxy) reflectHas(key any) bool { return p.h.has(p, key) }

func (p *Proxy) reflectDelete(key any) bool { return p.h.deleteProperty(p, key) }

func (p *Proxy) reflectOwnKeys() []any { return p.h.ownKeys(p) }

// Includes reports whether the array holds v, matching both the wrapped and
// the raw form of v. An optional from index may follow.
func (p *Proxy) Includes(v any, from ...int) bool {
	res, _ := p.call("includes", append([]any{v}, intsToAny(from)...)...).(bool)
	return res
}

func (p *Proxy) IndexOf(v any, from ...int) int {
	res, ok := p.call("indexOf", append([]any{v}, intsToAny(from)...)...).(int)
	if !ok {
		return -1
	}
	return res
}

func (p *Proxy) LastIndexOf(v any, from ...int) int {
	res, ok := p.call("lastIndexOf", append([]any{v}, intsToAny(from)...)...).(int)
	if !ok {
		return -1
	}
	return res
}

// Push appends values and returns the new length.
func (p *Proxy) Push(values ...any) int {
	n, _ := p.call("push", values...).(int)
	return n
}

func (p *Proxy) Pop() any { return p.call("pop") }

func (p *Proxy) Shift() any { return p.call("shift") }

// Unshift prepends values and returns the new length.
func (p *Proxy) Unshift(values ...any) int {
	n, _ := p.call("unshift", values...).(int)
	return n
}

// Splice removes deleteCount elements at start, inserts items in their place
// and returns the removed elements. A negative start counts from the end.
func (p *Proxy) Splice(start, deleteCount int, items ...any) []any {
	removed, _ := p.call("splice", append([]any{start, deleteCount}, items...)...).([]any)
	return removed
}

func (p *Proxy) call(name string, args ...any) any {
	m, ok := p.Get(name).(ArrayMethod)
	if !ok {
		p.rt.warnf(ErrUnsupported, "%s on %s", name, p.Kind())
		return nil
	}
	return m(args...)
}

func intsToAny(in []int) []any {
	out := make([]any, len(in))
	for i, v := range in {
		out[i] = v
	}
	return out
}
