package reactive

import "slices"

// ArrayMethod is an instrumented array method bound to the wrapper it was
// read from.
type ArrayMethod func(args ...any) any

type arrayMethodImpl func(rt *Runtime, this propertyTarget, args ...any) any

var arrayInstrumentations map[string]arrayMethodImpl

func init() {
	arrayInstrumentations = map[string]arrayMethodImpl{
		// identity sensitive searches run on the raw array, so a wrapped
		// argument is retried in raw form on a miss
		"includes":    searchMethod(includes),
		"indexOf":     searchMethod(indexOf),
		"lastIndexOf": searchMethod(lastIndexOf),

		// length altering mutators read length as part of their write; run
		// untracked so an effect calling them does not subscribe to it
		"push":    untracked(push),
		"pop":     untracked(pop),
		"shift":   untracked(shift),
		"unshift": untracked(unshift),
		"splice":  untracked(splice),
	}
}

func searchMethod(search func(arr *Array, args []any) any) arrayMethodImpl {
	return func(rt *Runtime, this propertyTarget, args ...any) any {
		arr, ok := ToRaw(this).(*Array)
		if !ok {
			return nil
		}
		for i, n := 0, lengthOf(this); i < n; i++ {
			rt.Track(arr, OpGet, i)
		}
		res := search(arr, args)
		if res == -1 || res == false {
			rawArgs := make([]any, len(args))
			for i, a := range args {
				rawArgs[i] = ToRaw(a)
			}
			return search(arr, rawArgs)
		}
		return res
	}
}

func untracked(impl arrayMethodImpl) arrayMethodImpl {
	return func(rt *Runtime, this propertyTarget, args ...any) any {
		rt.PauseTracking()
		defer rt.ResetTracking()
		return impl(rt, this, args...)
	}
}

func argAt(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func relativeIndex(v any, n, fallback int) int {
	i, ok := toInt(v)
	if !ok {
		return fallback
	}
	if i < 0 {
		i += n
	}
	return i
}

func includes(arr *Array, args []any) any {
	target := argAt(args, 0)
	n := len(arr.items)
	for i := max(relativeIndex(argAt(args, 1), n, 0), 0); i < n; i++ {
		v := arr.items[i]
		if v == hole {
			v = nil
		}
		if sameValue(v, target) {
			return true
		}
	}
	return false
}

func indexOf(arr *Array, args []any) any {
	target := argAt(args, 0)
	n := len(arr.items)
	for i := max(relativeIndex(argAt(args, 1), n, 0), 0); i < n; i++ {
		if v := arr.items[i]; v != hole && strictEquals(v, target) {
			return i
		}
	}
	return -1
}

func lastIndexOf(arr *Array, args []any) any {
	target := argAt(args, 0)
	n := len(arr.items)
	for i := min(relativeIndex(argAt(args, 1), n, n-1), n-1); i >= 0; i-- {
		if v := arr.items[i]; v != hole && strictEquals(v, target) {
			return i
		}
	}
	return -1
}

func push(_ *Runtime, this propertyTarget, args ...any) any {
	n := lengthOf(this)
	for i, v := range args {
		this.reflectSet(n+i, v, this)
	}
	this.reflectSet(LengthKey, n+len(args), this)
	return n + len(args)
}

func pop(_ *Runtime, this propertyTarget, _ ...any) any {
	n := lengthOf(this)
	if n == 0 {
		this.reflectSet(LengthKey, 0, this)
		return nil
	}
	v := this.reflectGet(n-1, this)
	this.reflectDelete(n - 1)
	this.reflectSet(LengthKey, n-1, this)
	return v
}

func shift(_ *Runtime, this propertyTarget, _ ...any) any {
	n := lengthOf(this)
	if n == 0 {
		this.reflectSet(LengthKey, 0, this)
		return nil
	}
	first := this.reflectGet(0, this)
	for k := 1; k < n; k++ {
		move(this, k, k-1)
	}
	this.reflectDelete(n - 1)
	this.reflectSet(LengthKey, n-1, this)
	return first
}

func unshift(_ *Runtime, this propertyTarget, args ...any) any {
	n := lengthOf(this)
	if argc := len(args); argc > 0 {
		for k := n; k > 0; k-- {
			move(this, k-1, k+argc-1)
		}
		for j, v := range args {
			this.reflectSet(j, v, this)
		}
	}
	this.reflectSet(LengthKey, n+len(args), this)
	return n + len(args)
}

func splice(_ *Runtime, this propertyTarget, args ...any) any {
	n := lengthOf(this)
	start := min(max(relativeIndex(argAt(args, 0), n, 0), 0), n)
	deleteCount := 0
	switch len(args) {
	case 0:
	case 1:
		deleteCount = n - start
	default:
		dc, _ := toInt(args[1])
		deleteCount = min(max(dc, 0), n-start)
	}
	var items []any
	if len(args) > 2 {
		items = args[2:]
	}

	removed := make([]any, 0, deleteCount)
	for k := 0; k < deleteCount; k++ {
		if this.reflectHas(start + k) {
			removed = append(removed, this.reflectGet(start+k, this))
		}
	}

	itemCount := len(items)
	switch {
	case itemCount < deleteCount:
		for k := start; k < n-deleteCount; k++ {
			move(this, k+deleteCount, k+itemCount)
		}
		for k := n; k > n-deleteCount+itemCount; k-- {
			this.reflectDelete(k - 1)
		}
	case itemCount > deleteCount:
		for k := n - deleteCount; k > start; k-- {
			move(this, k+deleteCount-1, k+itemCount-1)
		}
	}
	for k, v := range slices.Clone(items) {
		this.reflectSet(start+k, v, this)
	}
	this.reflectSet(LengthKey, n-deleteCount+itemCount, this)
	return removed
}

func move(this propertyTarget, from, to int) {
	if this.reflectHas(from) {
		this.reflectSet(to, this.reflectGet(from, this), this)
	} else {
		this.reflectDelete(to)
	}
}
