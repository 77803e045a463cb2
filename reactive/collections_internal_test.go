package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func linkedNodes(s *orderedStore) int {
	n := 0
	for cur := s.head.next; cur != nil; cur = cur.next {
		n++
	}
	return n
}

func TestOrderedStoreChurnIsBounded(t *testing.T) {
	m := NewMap(Entry{Key: "kept", Value: 0})
	for i := 0; i < 100_000; i++ {
		m.Set(i, i)
		m.Delete(i)
	}
	assert.Equal(t, 1, m.Size())
	assert.Equal(t, 1, linkedNodes(&m.store))
	assert.Len(t, m.store.index, 1)

	m.Delete("kept")
	assert.Equal(t, 0, linkedNodes(&m.store))
	assert.Same(t, &m.store.head, m.store.last())
}

func TestHashable(t *testing.T) {
	type wrapper struct{ V any }

	assert.True(t, hashable(nil))
	assert.True(t, hashable("k"))
	assert.True(t, hashable(wrapper{V: 1}))
	assert.True(t, hashable([2]any{1, "x"}))
	assert.False(t, hashable([]int{1}))
	assert.False(t, hashable(wrapper{V: []int{1}}))
	assert.False(t, hashable([2]any{1, map[string]int{}}))
	assert.False(t, hashable(wrapper{V: wrapper{V: func() {}}}))
}
