package reactive

// ComputedRef is a lazily evaluated cell. Its getter runs inside an effect;
// when a dependency changes the value is only marked dirty and subscribers
// of the cell are triggered. The next read recomputes.
type ComputedRef struct {
	Header

	rt     *Runtime
	effect *Effect
	getter func() any
	setter func(any)
	value  any
	dirty  bool
}

func (rt *Runtime) Computed(getter func() any) *ComputedRef {
	return rt.WritableComputed(getter, nil)
}

// WritableComputed is a computed whose writes go to setter.
func (rt *Runtime) WritableComputed(getter func() any, setter func(any)) *ComputedRef {
	c := &ComputedRef{
		rt:     rt,
		getter: getter,
		setter: setter,
		dirty:  true,
	}
	c.effect = rt.Effect(
		func() error {
			c.value = c.getter()
			return nil
		},
		DeferFirstRun(),
		WithScheduler(func(*Effect) {
			if !c.dirty {
				c.dirty = true
				rt.trigger(c, OpSet, RefValueKey, nil, nil, nil)
			}
		}),
	)
	return c
}

func (c *ComputedRef) cellKind() cellKind { return cellComputed }

func (c *ComputedRef) Value() any {
	if c.dirty {
		c.rt.reportError(c.effect, c.effect.Run())
		c.dirty = false
	}
	c.rt.Track(c, OpGet, RefValueKey)
	return c.value
}

func (c *ComputedRef) SetValue(v any) {
	if c.setter == nil {
		c.rt.warnf(ErrReadonly, "write to computed value %v failed", v)
		return
	}
	c.setter(v)
}

func (c *ComputedRef) Readonly() bool { return c.setter == nil }

func (c *ComputedRef) Effect() *Effect { return c.effect }

// Stop detaches the computed from its dependencies. The last value stays
// readable.
func (c *ComputedRef) Stop() { c.effect.Stop() }
