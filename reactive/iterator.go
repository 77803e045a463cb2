package reactive

import "iter"

// Entry is a key/value pair produced by Entries iterators.
type Entry struct {
	Key   any
	Value any
}

// Iterator is a lazy single pass cursor.
type Iterator struct {
	next func() (any, bool)
}

func newIterator(next func() (any, bool)) *Iterator {
	return &Iterator{next: next}
}

// Next returns the next value, or false once the iterator is exhausted.
func (it *Iterator) Next() (any, bool) {
	if it == nil || it.next == nil {
		return nil, false
	}
	v, ok := it.next()
	if !ok {
		it.next = nil
		return nil, false
	}
	return v, true
}

func (it *Iterator) Seq() iter.Seq[any] {
	return func(yield func(any) bool) {
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

type iterMethod uint8

const (
	iterDefault iterMethod = iota
	iterKeys
	iterValues
	iterEntries
)

func (m iterMethod) String() string {
	switch m {
	case iterKeys:
		return "keys"
	case iterValues:
		return "values"
	case iterEntries:
		return "entries"
	default:
		return "iterator"
	}
}

func emptyIter() (any, bool) { return nil, false }
