package reactive_test

import (
	"testing"

	"github.com/delaneyj/proxyparty/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRef(t *testing.T) {
	t.Run("tracks and triggers value", func(t *testing.T) {
		rt := reactive.NewRuntime()
		count := rt.Ref(1)

		var seen []any
		rt.Effect(func() error {
			seen = append(seen, count.Value())
			return nil
		})
		count.SetValue(2)
		count.SetValue(2)
		assert.Equal(t, []any{1, 2}, seen)
	})

	t.Run("ref of a ref is itself", func(t *testing.T) {
		rt := reactive.NewRuntime()
		r := rt.Ref(1)
		assert.Same(t, r, rt.Ref(r))
		assert.Same(t, r, rt.ShallowRef(r))
		assert.True(t, reactive.IsRef(r))
		assert.False(t, reactive.IsRef(1))
		assert.Equal(t, 1, reactive.Unref(r))
		assert.Equal(t, 2, reactive.Unref(2))
	})

	t.Run("deep refs wrap objects", func(t *testing.T) {
		rt := reactive.NewRuntime()
		obj := reactive.NewObject("n", 1)
		r := rt.Ref(obj)
		require.True(t, reactive.IsReactive(r.Value()))

		var seen []any
		rt.Effect(func() error {
			seen = append(seen, r.Value().(*reactive.Proxy).Get("n"))
			return nil
		})
		r.Value().(*reactive.Proxy).Set("n", 2)
		assert.Equal(t, []any{1, 2}, seen)

		// writing the wrapper of the stored object is not a change
		callCount := 0
		rt.Effect(func() error {
			callCount++
			r.Value()
			return nil
		})
		r.SetValue(rt.Reactive(obj))
		assert.Equal(t, 1, callCount)
	})

	t.Run("shallow refs store as is", func(t *testing.T) {
		rt := reactive.NewRuntime()
		obj := reactive.NewObject("n", 1)
		r := rt.ShallowRef(obj)
		assert.Same(t, obj, r.Value())
		assert.True(t, r.(*reactive.Ref).IsShallow())

		callCount := 0
		rt.Effect(func() error {
			callCount++
			r.Value()
			return nil
		})
		obj.Set("n", 2)
		assert.Equal(t, 1, callCount)
		rt.TriggerRef(r)
		assert.Equal(t, 2, callCount)
	})
}

func TestCustomRef(t *testing.T) {
	rt := reactive.NewRuntime()
	var pending any
	var flush func()
	debounced := rt.CustomRef(func(track, trigger func()) (func() any, func(any)) {
		value := any("initial")
		flush = func() {
			value = pending
			trigger()
		}
		get := func() any {
			track()
			return value
		}
		set := func(v any) {
			pending = v
		}
		return get, set
	})

	var seen []any
	rt.Effect(func() error {
		seen = append(seen, debounced.Value())
		return nil
	})
	debounced.SetValue("next")
	assert.Equal(t, []any{"initial"}, seen)
	flush()
	assert.Equal(t, []any{"initial", "next"}, seen)
	assert.True(t, reactive.IsRef(debounced))
}

func TestPropertyRefs(t *testing.T) {
	t.Run("to ref delegates to the host", func(t *testing.T) {
		rt := reactive.NewRuntime()
		state := rt.Reactive(reactive.NewObject("foo", 1)).(*reactive.Proxy)
		foo := rt.ToRef(state, "foo")

		var seen []any
		rt.Effect(func() error {
			seen = append(seen, foo.Value())
			return nil
		})
		foo.SetValue(2)
		assert.Equal(t, 2, state.Get("foo"))
		state.Set("foo", 3)
		assert.Equal(t, 3, foo.Value())
		assert.Equal(t, []any{1, 2, 3}, seen)
		assert.Equal(t, "foo", foo.(*reactive.PropertyRef).Key())
	})

	t.Run("to ref returns an existing cell", func(t *testing.T) {
		rt := reactive.NewRuntime()
		cell := rt.Ref(1)
		raw := reactive.NewObject("c", cell)
		assert.Same(t, cell, rt.ToRef(raw, "c"))
	})

	t.Run("to refs", func(t *testing.T) {
		rt := reactive.NewRuntime()
		state := rt.Reactive(reactive.NewObject("a", 1, "b", 2)).(*reactive.Proxy)
		refs := rt.ToRefs(state).(*reactive.Object)

		assert.Equal(t, []any{"a", "b"}, refs.OwnKeys())
		a := refs.Get("a").(reactive.Cell)
		a.SetValue(10)
		assert.Equal(t, 10, state.Get("a"))

		arr := rt.Reactive(reactive.NewArray("x", "y")).(*reactive.Proxy)
		arrRefs := rt.ToRefs(arr).(*reactive.Array)
		require.Equal(t, 2, arrRefs.Len())
		assert.Equal(t, "y", arrRefs.Get(1).(reactive.Cell).Value())
	})

	t.Run("to refs warns on plain objects", func(t *testing.T) {
		rt := reactive.NewRuntime()
		rt.ToRefs(reactive.NewObject("a", 1))
		assert.Equal(t, uint64(1), rt.Stats().Warnings)
	})
}

func TestProxyRefs(t *testing.T) {
	rt := reactive.NewRuntime()
	count := rt.Ref(1)
	raw := reactive.NewObject("count", count, "plain", "x")
	view := rt.ProxyRefs(raw)

	assert.Equal(t, 1, view.Get("count"))
	assert.Equal(t, "x", view.Get("plain"))

	// writes go into the cell
	view.Set("count", 2)
	assert.Equal(t, 2, count.Value())
	assert.Same(t, count, raw.Get("count"))

	// a cell replaces the cell
	next := rt.Ref(5)
	view.Set("count", next)
	assert.Same(t, next, raw.Get("count"))

	state := rt.Reactive(reactive.NewObject())
	assert.Same(t, state, rt.ProxyRefs(state.(*reactive.Proxy)))
}
