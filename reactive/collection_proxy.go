package reactive

import "iter"

// CollectionProxy is the wrapper over a Map, Set, WeakMap or WeakSet. Its
// methods are the instrumented versions of the collection's own; a method
// the wrapped kind does not have does nothing and reports ErrUnsupported.
type CollectionProxy struct {
	Header

	rt     *Runtime
	target collection
	ins    *instrumentations
}

func (c *CollectionProxy) Kind() Kind { return c.target.Kind() }

func (c *CollectionProxy) Runtime() *Runtime { return c.rt }

func (c *CollectionProxy) supports(method string) bool {
	if supports(c.Kind(), method) {
		return true
	}
	c.rt.warnf(ErrUnsupported, "%s on %s", method, c.Kind())
	return false
}

func (c *CollectionProxy) Get(key any) any {
	if !c.supports("get") {
		return nil
	}
	return c.ins.get(c, key)
}

func (c *CollectionProxy) Has(key any) bool {
	return c.ins.has(c, key)
}

func (c *CollectionProxy) Size() int {
	if !c.supports("size") {
		return 0
	}
	return c.ins.size(c)
}

// Add inserts value into a set and returns the wrapper.
func (c *CollectionProxy) Add(value any) *CollectionProxy {
	if c.supports("add") {
		c.ins.add(c, value)
	}
	return c
}

// Set stores value under key in a map and returns the wrapper.
func (c *CollectionProxy) Set(key, value any) *CollectionProxy {
	if c.supports("set") {
		c.ins.set(c, key, value)
	}
	return c
}

func (c *CollectionProxy) Delete(key any) bool {
	return c.ins.delete(c, key)
}

func (c *CollectionProxy) Clear() {
	if c.supports("clear") {
		c.ins.clear(c)
	}
}

// ForEach calls fn for every entry. Sets pass each value as its own key.
func (c *CollectionProxy) ForEach(fn func(value, key any, c *CollectionProxy)) {
	if c.supports("forEach") {
		c.ins.forEach(c, fn)
	}
}

func (c *CollectionProxy) Keys() *Iterator { return c.iterator(iterKeys) }

func (c *CollectionProxy) Values() *Iterator { return c.iterator(iterValues) }

func (c *CollectionProxy) Entries() *Iterator { return c.iterator(iterEntries) }

// Iterator is the default iteration: entries for maps, values for sets.
func (c *CollectionProxy) Iterator() *Iterator { return c.iterator(iterDefault) }

// All ranges over key, value pairs. Sets yield each value twice.
func (c *CollectionProxy) All() iter.Seq2[any, any] {
	if !c.supports("entries") {
		return func(func(any, any) bool) {}
	}
	return seqPairs(c.ins.iterate(c, iterEntries))
}

func (c *CollectionProxy) iterator(m iterMethod) *Iterator {
	if !c.supports(m.String()) {
		return newIterator(emptyIter)
	}
	return newIterator(c.ins.iterate(c, m))
}

func (c *CollectionProxy) collSize() int           { return c.Size() }
func (c *CollectionProxy) collHas(key any) bool    { return c.Has(key) }
func (c *CollectionProxy) collGet(key any) any     { return c.Get(key) }
func (c *CollectionProxy) collSet(key, value any)  { c.Set(key, value) }
func (c *CollectionProxy) collAdd(value any)       { c.Add(value) }
func (c *CollectionProxy) collDelete(key any) bool { return c.Delete(key) }
func (c *CollectionProxy) collClear()              { c.Clear() }

func (c *CollectionProxy) collForEach(fn func(value, key any)) {
	c.ForEach(func(value, key any, _ *CollectionProxy) { fn(value, key) })
}

func (c *CollectionProxy) collIter(m iterMethod) func() (any, bool) {
	return c.iterator(m).Next
}
