package reactive_test

import (
	"testing"

	"github.com/delaneyj/proxyparty/reactive"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArrayLength(t *testing.T) {
	t.Run("shrinking length triggers truncated indices", func(t *testing.T) {
		rt := reactive.NewRuntime()
		arr := rt.Reactive(reactive.NewArray(1, 2, 3)).(*reactive.Proxy)

		var last []any
		rt.Effect(func() error {
			last = append(last, arr.Get(2))
			return nil
		})
		var firsts []any
		rt.Effect(func() error {
			firsts = append(firsts, arr.Get(0))
			return nil
		})

		arr.Set(reactive.LengthKey, 1)
		assert.Equal(t, []any{3, nil}, last)
		assert.Equal(t, []any{1}, firsts, "index below the new length is untouched")
		assert.Equal(t, 1, arr.Len())
	})

	t.Run("adding an index triggers length", func(t *testing.T) {
		rt := reactive.NewRuntime()
		arr := rt.Reactive(reactive.NewArray(1)).(*reactive.Proxy)

		var lens []int
		rt.Effect(func() error {
			lens = append(lens, arr.Len())
			return nil
		})
		arr.Set(1, 2)
		arr.Set(1, 3)
		arr.Set("5", 6)
		assert.Equal(t, []int{1, 2, 6}, lens)
		assert.Nil(t, arr.Get(3), "holes read as nil")
		assert.False(t, arr.Has(3))
	})

	t.Run("own keys track length", func(t *testing.T) {
		rt := reactive.NewRuntime()
		arr := rt.Reactive(reactive.NewArray("a")).(*reactive.Proxy)

		callCount := 0
		rt.Effect(func() error {
			callCount++
			arr.OwnKeys()
			return nil
		})
		arr.Push("b")
		assert.Equal(t, 2, callCount)
		arr.Set(0, "z")
		assert.Equal(t, 2, callCount)
	})
}

func TestArraySearch(t *testing.T) {
	rt := reactive.NewRuntime()
	item := reactive.NewObject("id", 1)
	raw := reactive.NewArray(item, 2, 3, 2)
	arr := rt.Reactive(raw).(*reactive.Proxy)

	wrapped := arr.Get(0)
	require.True(t, reactive.IsReactive(wrapped))

	assert.True(t, arr.Includes(wrapped), "wrapped argument matches raw element")
	assert.True(t, arr.Includes(item))
	assert.Equal(t, 0, arr.IndexOf(wrapped))
	assert.Equal(t, 1, arr.IndexOf(2))
	assert.Equal(t, 3, arr.LastIndexOf(2))
	assert.Equal(t, 3, arr.IndexOf(2, 2))
	assert.Equal(t, 1, arr.LastIndexOf(2, -2))
	assert.Equal(t, -1, arr.IndexOf(99))
	assert.False(t, arr.Includes(99))

	var found []bool
	rt.Effect(func() error {
		found = append(found, arr.Includes(4))
		return nil
	})
	arr.Set(2, 4)
	assert.Equal(t, []bool{false, true}, found)
	arr.Push(5)
	assert.Equal(t, []bool{false, true, true}, found)

	method, ok := arr.Get("indexOf").(reactive.ArrayMethod)
	require.True(t, ok)
	assert.Equal(t, 2, method(4))
}

func TestArrayMutators(t *testing.T) {
	t.Run("push does not subscribe the caller to length", func(t *testing.T) {
		rt := reactive.NewRuntime()
		arr := rt.Reactive(reactive.NewArray()).(*reactive.Proxy)

		callCount := 0
		e := rt.Effect(func() error {
			callCount++
			arr.Push(1)
			return nil
		})
		assert.Equal(t, 0, e.DepCount())

		// two pushing effects would loop forever if push tracked length
		rt.Effect(func() error {
			arr.Push(2)
			return nil
		})
		assert.Equal(t, 1, callCount)
		assert.Equal(t, []any{1, 2}, reactive.ToRaw(arr).(*reactive.Array).Items())
	})

	t.Run("push triggers readers", func(t *testing.T) {
		rt := reactive.NewRuntime()
		arr := rt.Reactive(reactive.NewArray(1)).(*reactive.Proxy)

		var lens []int
		rt.Effect(func() error {
			lens = append(lens, arr.Len())
			return nil
		})
		assert.Equal(t, 3, arr.Push(2, 3))
		assert.Equal(t, []int{1, 2, 3}, lens)
	})

	t.Run("pop and shift", func(t *testing.T) {
		rt := reactive.NewRuntime()
		raw := reactive.NewArray(1, 2, 3)
		arr := rt.Reactive(raw).(*reactive.Proxy)

		var heads []any
		rt.Effect(func() error {
			heads = append(heads, arr.Get(0))
			return nil
		})

		assert.Equal(t, 3, arr.Pop())
		assert.Equal(t, []any{1, 2}, raw.Items())
		assert.Equal(t, []any{1}, heads)

		assert.Equal(t, 1, arr.Shift())
		assert.Equal(t, []any{2}, raw.Items())
		assert.Equal(t, []any{1, 2}, heads)

		assert.Equal(t, 2, arr.Pop())
		assert.Nil(t, arr.Pop())
		assert.Nil(t, arr.Shift())
		assert.Equal(t, 0, raw.Len())
	})

	t.Run("unshift", func(t *testing.T) {
		rt := reactive.NewRuntime()
		raw := reactive.NewArray(3)
		arr := rt.Reactive(raw).(*reactive.Proxy)

		assert.Equal(t, 3, arr.Unshift(1, 2))
		assert.Equal(t, []any{1, 2, 3}, raw.Items())
	})

	t.Run("splice", func(t *testing.T) {
		rt := reactive.NewRuntime()
		raw := reactive.NewArray(1, 2, 3, 4, 5)
		arr := rt.Reactive(raw).(*reactive.Proxy)

		assert.Equal(t, []any{2, 3}, arr.Splice(1, 2))
		assert.Equal(t, []any{1, 4, 5}, raw.Items())

		assert.Equal(t, []any{}, arr.Splice(1, 0, "a", "b"))
		assert.Equal(t, []any{1, "a", "b", 4, 5}, raw.Items())

		assert.Equal(t, []any{4}, arr.Splice(-2, 1, "x", "y", "z"))
		assert.Equal(t, []any{1, "a", "b", "x", "y", "z", 5}, raw.Items())

		method := arr.Get("splice").(reactive.ArrayMethod)
		assert.Equal(t, []any{"z", 5}, method(5))
		assert.Equal(t, 5, raw.Len())
	})

	t.Run("readonly arrays refuse mutators", func(t *testing.T) {
		rt := reactive.NewRuntime()
		raw := reactive.NewArray(1, 2)
		ro := rt.Readonly(raw).(*reactive.Proxy)

		ro.Push(3)
		ro.Pop()
		assert.Equal(t, []any{1, 2}, raw.Items())
		assert.Positive(t, rt.Stats().Warnings)
	})

	t.Run("cells at indices stay boxed", func(t *testing.T) {
		rt := reactive.NewRuntime()
		cell := rt.Ref(1)
		arr := rt.Reactive(reactive.NewArray(cell)).(*reactive.Proxy)

		assert.Same(t, cell, arr.Get(0))
		arr.Set(0, 2)
		assert.Equal(t, 2, arr.Get(0))
		assert.Equal(t, 1, cell.Value())
	})
}

func TestObjectMethodsOnArrayOnly(t *testing.T) {
	rt := reactive.NewRuntime()
	obj := rt.Reactive(reactive.NewObject()).(*reactive.Proxy)
	assert.Equal(t, 0, obj.Push(1))
	assert.Equal(t, -1, obj.IndexOf(1))
	assert.Nil(t, obj.Get("push"))
}
