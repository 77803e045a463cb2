package reactive_test

import (
	"testing"

	"github.com/delaneyj/proxyparty/reactive"
	"github.com/stretchr/testify/assert"
)

/*
   a  b
   | /
   c
*/
func TestComputed(t *testing.T) {
	t.Run("lazy and cached", func(t *testing.T) {
		rt := reactive.NewRuntime()
		state := rt.Reactive(reactive.NewObject("a", 7, "b", 1)).(*reactive.Proxy)

		callCount := 0
		c := rt.Computed(func() any {
			callCount++
			return state.Get("a").(int) * state.Get("b").(int)
		})
		assert.Equal(t, 0, callCount)

		assert.Equal(t, 7, c.Value())
		assert.Equal(t, 7, c.Value())
		assert.Equal(t, 1, callCount)

		state.Set("a", 2)
		assert.Equal(t, 1, callCount)
		assert.Equal(t, 2, c.Value())
		assert.Equal(t, 2, callCount)
	})

	/*
	   a
	   |
	   c
	   |
	   d
	*/
	t.Run("chained", func(t *testing.T) {
		rt := reactive.NewRuntime()
		a := rt.Ref(1)
		c := rt.Computed(func() any { return a.Value().(int) * 2 })
		d := rt.Computed(func() any { return c.Value().(int) + 1 })

		var seen []any
		rt.Effect(func() error {
			seen = append(seen, d.Value())
			return nil
		})
		a.SetValue(2)
		assert.Equal(t, []any{3, 5}, seen)
	})

	t.Run("writable", func(t *testing.T) {
		rt := reactive.NewRuntime()
		first := rt.Ref("John")
		full := rt.WritableComputed(
			func() any { return first.Value().(string) + " Doe" },
			func(v any) { first.SetValue(v) },
		)
		assert.False(t, full.Readonly())
		full.SetValue("Jane")
		assert.Equal(t, "Jane Doe", full.Value())
	})

	t.Run("readonly write warns", func(t *testing.T) {
		var warnings []error
		rt := reactive.NewRuntime(
			reactive.WithDebug(true),
			reactive.WithWarningHandler(func(err error) { warnings = append(warnings, err) }),
		)
		c := rt.Computed(func() any { return 1 })
		c.SetValue(2)
		assert.Equal(t, 1, c.Value())
		assert.Len(t, warnings, 1)
		assert.ErrorIs(t, warnings[0], reactive.ErrReadonly)
	})

	t.Run("stop keeps the last value", func(t *testing.T) {
		rt := reactive.NewRuntime()
		a := rt.Ref(1)
		callCount := 0
		c := rt.Computed(func() any {
			callCount++
			return a.Value()
		})
		assert.Equal(t, 1, c.Value())
		c.Stop()
		assert.False(t, c.Effect().Active())
		a.SetValue(2)
		assert.Equal(t, 1, c.Value())
		assert.Equal(t, 1, callCount)
	})

	t.Run("unwrapped inside reactive objects", func(t *testing.T) {
		rt := reactive.NewRuntime()
		a := rt.Ref(2)
		state := rt.Reactive(reactive.NewObject("double", rt.Computed(func() any {
			return a.Value().(int) * 2
		}))).(*reactive.Proxy)
		assert.Equal(t, 4, state.Get("double"))
		a.SetValue(3)
		assert.Equal(t, 6, state.Get("double"))
	})
}
