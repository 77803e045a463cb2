package reactive

// proxyHandler is the trap table of a Proxy.
type proxyHandler struct {
	readonly bool
	shallow  bool

	get            func(p *Proxy, key any, receiver propertyTarget) any
	set            func(p *Proxy, key, value any, receiver propertyTarget) bool
	deleteProperty func(p *Proxy, key any) bool
	has            func(p *Proxy, key any) bool
	ownKeys        func(p *Proxy) []any
}

func init() {
	proxyHandlers[ModeReactive] = &proxyHandler{
		get:            createGetter(false, false),
		set:            createSetter(false),
		deleteProperty: deleteProperty,
		has:            has,
		ownKeys:        ownKeys,
	}
	proxyHandlers[ModeShallowReactive] = &proxyHandler{
		shallow:        true,
		get:            createGetter(false, true),
		set:            createSetter(true),
		deleteProperty: deleteProperty,
		has:            has,
		ownKeys:        ownKeys,
	}
	// readonly wrappers trap only what they must; has and ownKeys pass
	// straight through without tracking
	proxyHandlers[ModeReadonly] = &proxyHandler{
		readonly:       true,
		get:            createGetter(true, false),
		set:            readonlySet,
		deleteProperty: readonlyDelete,
		has:            passHas,
		ownKeys:        passOwnKeys,
	}
	proxyHandlers[ModeShallowReadonly] = &proxyHandler{
		readonly:       true,
		shallow:        true,
		get:            createGetter(true, true),
		set:            readonlySet,
		deleteProperty: readonlyDelete,
		has:            passHas,
		ownKeys:        passOwnKeys,
	}
}

func createGetter(readonly, shallow bool) func(p *Proxy, key any, receiver propertyTarget) any {
	return func(p *Proxy, key any, receiver propertyTarget) any {
		target := p.target
		switch key {
		case FlagIsReactive:
			return !readonly
		case FlagIsReadonly:
			return readonly
		case FlagRaw:
			if s := target.header().lookup(p.rt); s != nil && any(receiver) == s.wrapper(readonly) {
				return target
			}
		}

		targetIsArray := target.Kind() == KindArray
		if targetIsArray {
			if name, ok := key.(string); ok {
				if m, ok := arrayInstrumentations[name]; ok {
					rt := p.rt
					return ArrayMethod(func(args ...any) any {
						return m(rt, receiver, args...)
					})
				}
			}
		}

		res := target.reflectGet(key, receiver)
		if isNonTrackableKey(key) {
			return res
		}
		if !readonly {
			p.rt.Track(target, OpGet, key)
		}
		if shallow {
			return res
		}
		if c, ok := res.(Cell); ok {
			// cells at array indices stay boxed
			if _, isIndex := isIntegerKey(key); !targetIsArray || !isIndex {
				return c.Value()
			}
			return res
		}
		if isObject(res) {
			if readonly {
				return p.rt.Readonly(res)
			}
			return p.rt.Reactive(res)
		}
		return res
	}
}

func createSetter(shallow bool) func(p *Proxy, key, value any, receiver propertyTarget) bool {
	return func(p *Proxy, key, value any, receiver propertyTarget) bool {
		target := p.target
		oldValue := target.reflectGet(key, target)
		targetIsArray := target.Kind() == KindArray
		if !shallow {
			value = ToRaw(value)
			if oldCell, ok := oldValue.(Cell); ok && !targetIsArray {
				if _, isCell := value.(Cell); !isCell {
					oldCell.SetValue(value)
					return true
				}
			}
		}

		var hadKey bool
		if i, ok := isIntegerKey(key); ok && targetIsArray {
			hadKey = i < lengthOf(target)
		} else {
			_, hadKey = target.getOwn(key)
		}
		result := target.reflectSet(key, value, receiver)
		// writes that landed further down a prototype chain belong to the
		// receiver's own proxy
		if result && any(target) == ToRaw(receiver) {
			if !hadKey {
				p.rt.trigger(target, OpAdd, key, value, nil, nil)
			} else if hasChanged(value, oldValue) {
				p.rt.trigger(target, OpSet, key, value, oldValue, nil)
			}
		}
		return result
	}
}

func deleteProperty(p *Proxy, key any) bool {
	target := p.target
	_, hadKey := target.getOwn(key)
	oldValue := target.reflectGet(key, target)
	result := target.reflectDelete(key)
	if result && hadKey {
		p.rt.trigger(target, OpDelete, key, nil, oldValue, nil)
	}
	return result
}

func has(p *Proxy, key any) bool {
	result := p.target.reflectHas(key)
	if !isBuiltInSymbol(key) {
		p.rt.Track(p.target, OpHas, key)
	}
	return result
}

func ownKeys(p *Proxy) []any {
	var key any = IterateKey
	if p.target.Kind() == KindArray {
		key = LengthKey
	}
	p.rt.Track(p.target, OpIterate, key)
	return p.target.reflectOwnKeys()
}

func readonlySet(p *Proxy, key, _ any, _ propertyTarget) bool {
	p.rt.warnf(ErrReadonly, "set operation on key %v failed", key)
	return true
}

func readonlyDelete(p *Proxy, key any) bool {
	p.rt.warnf(ErrReadonly, "delete operation on key %v failed", key)
	return true
}

func passHas(p *Proxy, key any) bool { return p.target.reflectHas(key) }

func passOwnKeys(p *Proxy) []any { return p.target.reflectOwnKeys() }
