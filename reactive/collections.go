package reactive

import "iter"

type storeNode struct {
	key, value any
	prev, next *storeNode
	deleted    bool
}

// orderedStore is an insertion ordered hash table kept as a doubly linked
// list. A deleted node is unlinked but keeps its own links, so an iterator
// parked on it walks back to the nearest live node and carries on from there.
// Deleted nodes are freed once no iterator holds them.
type orderedStore struct {
	head  storeNode // sentinel, never deleted
	tail  *storeNode
	index map[any]*storeNode
	// bumped on clear; iterators restart from the top
	gen uint64
}

func (s *orderedStore) last() *storeNode {
	if s.tail == nil {
		return &s.head
	}
	return s.tail
}

func (s *orderedStore) size() int { return len(s.index) }

func (s *orderedStore) get(key any) (any, bool) {
	if !hashable(key) {
		return nil, false
	}
	n, ok := s.index[normalizeNaN(key)]
	if !ok {
		return nil, false
	}
	return n.value, true
}

func (s *orderedStore) has(key any) bool {
	_, ok := s.get(key)
	return ok
}

func (s *orderedStore) set(key, value any) bool {
	if !hashable(key) {
		return false
	}
	k := normalizeNaN(key)
	if n, ok := s.index[k]; ok {
		n.value = value
		return true
	}
	if s.index == nil {
		s.index = map[any]*storeNode{}
	}
	tail := s.last()
	n := &storeNode{key: key, value: value, prev: tail}
	tail.next = n
	s.tail = n
	s.index[k] = n
	return true
}

func (s *orderedStore) delete(key any) bool {
	if !hashable(key) {
		return false
	}
	k := normalizeNaN(key)
	n, ok := s.index[k]
	if !ok {
		return false
	}
	delete(s.index, k)
	n.deleted = true
	n.prev.next = n.next
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		s.tail = n.prev
	}
	return true
}

func (s *orderedStore) clear() {
	if s.head.next == nil {
		return
	}
	for n := s.head.next; n != nil; n = n.next {
		n.deleted = true
	}
	s.head.next = nil
	s.tail = nil
	s.index = nil
	s.gen++
}

// each visits live entries in order, including ones added during the walk.
func (s *orderedStore) each(fn func(key, value any)) {
	it := s.iter(func(n *storeNode) any { return n })
	for {
		v, ok := it()
		if !ok {
			return
		}
		n := v.(*storeNode)
		fn(n.key, n.value)
	}
}

func (s *orderedStore) iter(project func(*storeNode) any) func() (any, bool) {
	cur, gen := &s.head, s.gen
	return func() (any, bool) {
		if gen != s.gen {
			cur, gen = &s.head, s.gen
		}
		// the nearest live predecessor's successor is the next unvisited entry
		for cur.deleted {
			cur = cur.prev
		}
		if cur.next == nil {
			return nil, false
		}
		cur = cur.next
		return project(cur), true
	}
}

// all NaNs are one key, as in SameValueZero
type nanKey struct{}

func normalizeNaN(key any) any {
	if isNaN(key) {
		return nanKey{}
	}
	return key
}

// collection is the method surface shared by raw collections and the
// proxies over them. Methods a kind does not have are no-ops.
type collection interface {
	Target
	collSize() int
	collHas(key any) bool
	collGet(key any) any
	collSet(key, value any)
	collAdd(value any)
	collDelete(key any) bool
	collClear()
	collForEach(fn func(value, key any))
	collIter(m iterMethod) func() (any, bool)
}

// Map is an insertion ordered map accepting any comparable key.
type Map struct {
	Header
	store orderedStore
}

func NewMap(entries ...Entry) *Map {
	m := &Map{}
	for _, e := range entries {
		m.store.set(e.Key, e.Value)
	}
	return m
}

func (m *Map) Kind() Kind { return KindMap }

func (m *Map) Get(key any) any {
	v, _ := m.store.get(key)
	return v
}

func (m *Map) Has(key any) bool { return m.store.has(key) }

func (m *Map) Set(key, value any) *Map {
	m.store.set(key, value)
	return m
}

func (m *Map) Delete(key any) bool { return m.store.delete(key) }

func (m *Map) Clear() { m.store.clear() }

func (m *Map) Size() int { return m.store.size() }

func (m *Map) ForEach(fn func(value, key any)) {
	m.store.each(func(k, v any) { fn(v, k) })
}

func (m *Map) Keys() *Iterator { return newIterator(m.collIter(iterKeys)) }

func (m *Map) Values() *Iterator { return newIterator(m.collIter(iterValues)) }

func (m *Map) Entries() *Iterator { return newIterator(m.collIter(iterEntries)) }

func (m *Map) All() iter.Seq2[any, any] { return seqPairs(m.collIter(iterEntries)) }

func (m *Map) collSize() int                       { return m.store.size() }
func (m *Map) collHas(key any) bool                { return m.store.has(key) }
func (m *Map) collGet(key any) any                 { return m.Get(key) }
func (m *Map) collSet(key, value any)              { m.store.set(key, value) }
func (m *Map) collAdd(any)                         {}
func (m *Map) collDelete(key any) bool             { return m.store.delete(key) }
func (m *Map) collClear()                          { m.store.clear() }
func (m *Map) collForEach(fn func(value, key any)) { m.ForEach(fn) }

func (m *Map) collIter(method iterMethod) func() (any, bool) {
	switch method {
	case iterKeys:
		return m.store.iter(func(e *storeNode) any { return e.key })
	case iterValues:
		return m.store.iter(func(e *storeNode) any { return e.value })
	default:
		return m.store.iter(func(e *storeNode) any { return Entry{Key: e.key, Value: e.value} })
	}
}

// Set is an insertion ordered set of comparable values.
type Set struct {
	Header
	store orderedStore
}

func NewSet(values ...any) *Set {
	s := &Set{}
	for _, v := range values {
		s.store.set(v, v)
	}
	return s
}

func (s *Set) Kind() Kind { return KindSet }

func (s *Set) Add(value any) *Set {
	s.store.set(value, value)
	return s
}

func (s *Set) Has(value any) bool { return s.store.has(value) }

func (s *Set) Delete(value any) bool { return s.store.delete(value) }

func (s *Set) Clear() { s.store.clear() }

func (s *Set) Size() int { return s.store.size() }

func (s *Set) ForEach(fn func(value, key any)) {
	s.store.each(func(k, v any) { fn(v, k) })
}

func (s *Set) Values() *Iterator { return newIterator(s.collIter(iterValues)) }

func (s *Set) Keys() *Iterator { return newIterator(s.collIter(iterKeys)) }

func (s *Set) Entries() *Iterator { return newIterator(s.collIter(iterEntries)) }

func (s *Set) All() iter.Seq2[any, any] { return seqPairs(s.collIter(iterEntries)) }

func (s *Set) collSize() int                       { return s.store.size() }
func (s *Set) collHas(key any) bool                { return s.store.has(key) }
func (s *Set) collGet(any) any                     { return nil }
func (s *Set) collSet(any, any)                    {}
func (s *Set) collAdd(value any)                   { s.store.set(value, value) }
func (s *Set) collDelete(key any) bool             { return s.store.delete(key) }
func (s *Set) collClear()                          { s.store.clear() }
func (s *Set) collForEach(fn func(value, key any)) { s.ForEach(fn) }

func (s *Set) collIter(method iterMethod) func() (any, bool) {
	if method == iterEntries {
		return s.store.iter(func(e *storeNode) any { return Entry{Key: e.key, Value: e.value} })
	}
	return s.store.iter(func(e *storeNode) any { return e.key })
}

// WeakMap associates values with Trackable keys without keeping the keys
// alive. Entries live on the key itself, so they go away with it. Keys that
// are not Trackable are ignored.
type WeakMap struct {
	Header
}

func NewWeakMap() *WeakMap { return &WeakMap{} }

func (m *WeakMap) Kind() Kind { return KindWeakMap }

func (m *WeakMap) Get(key any) any {
	t, ok := key.(Trackable)
	if !ok {
		return nil
	}
	v, _ := t.header().weakGet(m)
	return v
}

func (m *WeakMap) Has(key any) bool {
	t, ok := key.(Trackable)
	if !ok {
		return false
	}
	_, found := t.header().weakGet(m)
	return found
}

func (m *WeakMap) Set(key, value any) *WeakMap {
	if t, ok := key.(Trackable); ok {
		t.header().weakSet(m, value)
	}
	return m
}

func (m *WeakMap) Delete(key any) bool {
	t, ok := key.(Trackable)
	return ok && t.header().weakDelete(m)
}

func (m *WeakMap) collSize() int                    { return 0 }
func (m *WeakMap) collHas(key any) bool             { return m.Has(key) }
func (m *WeakMap) collGet(key any) any              { return m.Get(key) }
func (m *WeakMap) collSet(key, value any)           { m.Set(key, value) }
func (m *WeakMap) collAdd(any)                      {}
func (m *WeakMap) collDelete(key any) bool          { return m.Delete(key) }
func (m *WeakMap) collClear()                       {}
func (m *WeakMap) collForEach(func(value, key any)) {}

func (m *WeakMap) collIter(iterMethod) func() (any, bool) { return emptyIter }

// WeakSet is the set counterpart of WeakMap.
type WeakSet struct {
	Header
}

func NewWeakSet() *WeakSet { return &WeakSet{} }

func (s *WeakSet) Kind() Kind { return KindWeakSet }

func (s *WeakSet) Add(value any) *WeakSet {
	if t, ok := value.(Trackable); ok {
		t.header().weakSet(s, struct{}{})
	}
	return s
}

func (s *WeakSet) Has(value any) bool {
	t, ok := value.(Trackable)
	if !ok {
		return false
	}
	_, found := t.header().weakGet(s)
	return found
}

func (s *WeakSet) Delete(value any) bool {
	t, ok := value.(Trackable)
	return ok && t.header().weakDelete(s)
}

func (s *WeakSet) collSize() int                    { return 0 }
func (s *WeakSet) collHas(key any) bool             { return s.Has(key) }
func (s *WeakSet) collGet(any) any                  { return nil }
func (s *WeakSet) collSet(any, any)                 {}
func (s *WeakSet) collAdd(value any)                { s.Add(value) }
func (s *WeakSet) collDelete(key any) bool          { return s.Delete(key) }
func (s *WeakSet) collClear()                       {}
func (s *WeakSet) collForEach(func(value, key any)) {}

func (s *WeakSet) collIter(iterMethod) func() (any, bool) { return emptyIter }

func seqPairs(next func() (any, bool)) iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for {
			v, ok := next()
			if !ok {
				return
			}
			e := v.(Entry)
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// snapshot copies a raw map or set, for debug events describing a clear.
func snapshot(c collection) any {
	switch v := c.(type) {
	case *Map:
		out := NewMap()
		v.store.each(func(k, val any) { out.store.set(k, val) })
		return out
	case *Set:
		out := NewSet()
		v.store.each(func(k, val any) { out.store.set(k, val) })
		return out
	}
	return nil
}

// supports reports whether a collection of kind k has the named method.
func supports(k Kind, method string) bool {
	switch method {
	case "has", "delete":
		return true
	case "get", "set":
		return k.isMapLike()
	case "add":
		return k == KindSet || k == KindWeakSet
	}
	// size, clear, forEach and the iterators
	return k == KindMap || k == KindSet
}
