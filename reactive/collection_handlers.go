package reactive

// instrumentations is the method table of a CollectionProxy.
type instrumentations struct {
	readonly bool
	shallow  bool

	get     func(c *CollectionProxy, key any) any
	has     func(c *CollectionProxy, key any) bool
	size    func(c *CollectionProxy) int
	add     func(c *CollectionProxy, value any)
	set     func(c *CollectionProxy, key, value any)
	delete  func(c *CollectionProxy, key any) bool
	clear   func(c *CollectionProxy)
	forEach func(c *CollectionProxy, fn func(value, key any, c *CollectionProxy))
	iterate func(c *CollectionProxy, m iterMethod) func() (any, bool)
}

func init() {
	for _, mode := range []Mode{ModeReactive, ModeShallowReactive, ModeReadonly, ModeShallowReadonly} {
		readonly, shallow := mode.IsReadonly(), mode.IsShallow()
		ins := &instrumentations{
			readonly: readonly,
			shallow:  shallow,
			get:      collectionGet(readonly, shallow),
			has:      collectionHas(readonly),
			size:     collectionSize(readonly),
			forEach:  collectionForEach(readonly, shallow),
			iterate:  collectionIterate(readonly, shallow),
		}
		if readonly {
			ins.add = func(c *CollectionProxy, value any) {
				c.rt.warnf(ErrReadonly, "add operation on key %v failed", value)
			}
			ins.set = func(c *CollectionProxy, key, _ any) {
				c.rt.warnf(ErrReadonly, "set operation on key %v failed", key)
			}
			ins.delete = func(c *CollectionProxy, key any) bool {
				c.rt.warnf(ErrReadonly, "delete operation on key %v failed", key)
				return false
			}
			ins.clear = func(c *CollectionProxy) {
				c.rt.warnf(ErrReadonly, "clear operation failed")
			}
		} else {
			ins.add = collectionAdd
			ins.set = collectionSet
			ins.delete = collectionDelete
			ins.clear = collectionClear
		}
		collectionHandlers[mode] = ins
	}
}

// valueTransform is applied to every value read out of a collection.
func (rt *Runtime) valueTransform(readonly, shallow bool) func(any) any {
	switch {
	case shallow:
		return func(v any) any { return v }
	case readonly:
		return rt.toReadonly
	default:
		return rt.toReactive
	}
}

func rawCollection(c *CollectionProxy) collection {
	return ToRaw(c).(collection)
}

func collectionGet(readonly, shallow bool) func(c *CollectionProxy, key any) any {
	return func(c *CollectionProxy, key any) any {
		target := c.target
		rawTarget := rawCollection(c)
		rawKey := ToRaw(key)
		if !readonly {
			if isWrapper(key) {
				c.rt.Track(rawTarget, OpGet, key)
			}
			c.rt.Track(rawTarget, OpGet, rawKey)
		}
		wrap := c.rt.valueTransform(readonly, shallow)
		if rawTarget.collHas(key) {
			return wrap(target.collGet(key))
		}
		if rawTarget.collHas(rawKey) {
			return wrap(target.collGet(rawKey))
		}
		return nil
	}
}

func collectionHas(readonly bool) func(c *CollectionProxy, key any) bool {
	return func(c *CollectionProxy, key any) bool {
		target := c.target
		rawTarget := rawCollection(c)
		rawKey := ToRaw(key)
		wrapped := isWrapper(key)
		if !readonly {
			if wrapped {
				c.rt.Track(rawTarget, OpHas, key)
			}
			c.rt.Track(rawTarget, OpHas, rawKey)
		}
		if !wrapped {
			return target.collHas(key)
		}
		return target.collHas(key) || target.collHas(rawKey)
	}
}

func collectionSize(readonly bool) func(c *CollectionProxy) int {
	return func(c *CollectionProxy) int {
		if !readonly {
			c.rt.Track(rawCollection(c), OpIterate, IterateKey)
		}
		return c.target.collSize()
	}
}

func collectionAdd(c *CollectionProxy, value any) {
	value = ToRaw(value)
	if !hashable(value) {
		return
	}
	target := rawCollection(c)
	hadKey := target.collHas(value)
	target.collAdd(value)
	if !hadKey {
		c.rt.trigger(target, OpAdd, value, value, nil, nil)
	}
}

func collectionSet(c *CollectionProxy, key, value any) {
	if !hashable(key) {
		return
	}
	value = ToRaw(value)
	target := rawCollection(c)
	hadKey := target.collHas(key)
	if !hadKey {
		key = ToRaw(key)
		hadKey = target.collHas(key)
	} else {
		c.rt.checkIdentityKeys(target, key)
	}
	oldValue := target.collGet(key)
	target.collSet(key, value)
	if !hadKey {
		c.rt.trigger(target, OpAdd, key, value, nil, nil)
	} else if hasChanged(value, oldValue) {
		c.rt.trigger(target, OpSet, key, value, oldValue, nil)
	}
}

func collectionDelete(c *CollectionProxy, key any) bool {
	target := rawCollection(c)
	hadKey := target.collHas(key)
	if !hadKey {
		key = ToRaw(key)
		hadKey = target.collHas(key)
	} else {
		c.rt.checkIdentityKeys(target, key)
	}
	var oldValue any
	if target.Kind().isMapLike() {
		oldValue = target.collGet(key)
	}
	result := target.collDelete(key)
	if hadKey {
		c.rt.trigger(target, OpDelete, key, nil, oldValue, nil)
	}
	return result
}

func collectionClear(c *CollectionProxy) {
	target := rawCollection(c)
	hadItems := target.collSize() != 0
	var oldTarget any
	if c.rt.debug {
		oldTarget = snapshot(target)
	}
	target.collClear()
	if hadItems {
		c.rt.trigger(target, OpClear, nil, nil, nil, oldTarget)
	}
}

func collectionForEach(readonly, shallow bool) func(c *CollectionProxy, fn func(value, key any, c *CollectionProxy)) {
	return func(c *CollectionProxy, fn func(value, key any, c *CollectionProxy)) {
		target := c.target
		if !readonly {
			c.rt.Track(rawCollection(c), OpIterate, IterateKey)
		}
		wrap := c.rt.valueTransform(readonly, shallow)
		target.collForEach(func(value, key any) {
			fn(wrap(value), wrap(key), c)
		})
	}
}

func collectionIterate(readonly, shallow bool) func(c *CollectionProxy, m iterMethod) func() (any, bool) {
	return func(c *CollectionProxy, m iterMethod) func() (any, bool) {
		target := c.target
		rawTarget := rawCollection(c)
		targetIsMap := rawTarget.Kind() == KindMap
		isPair := m == iterEntries || (m == iterDefault && targetIsMap)
		isKeyOnly := m == iterKeys && targetIsMap
		inner := target.collIter(m)
		wrap := c.rt.valueTransform(readonly, shallow)
		if !readonly {
			key := IterateKey
			if isKeyOnly {
				key = MapKeyIterateKey
			}
			c.rt.Track(rawTarget, OpIterate, key)
		}
		return func() (any, bool) {
			v, ok := inner()
			if !ok {
				return nil, false
			}
			if isPair {
				e := v.(Entry)
				return Entry{Key: wrap(e.Key), Value: wrap(e.Value)}, true
			}
			return wrap(v), true
		}
	}
}

func (rt *Runtime) checkIdentityKeys(target collection, key any) {
	if !rt.debug || !isWrapper(key) {
		return
	}
	if target.collHas(ToRaw(key)) {
		rt.warnf(ErrIdentityAmbiguity, "%s holds both forms of the same key", target.Kind())
	}
}
