package cellstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternAndLookup(t *testing.T) {
	s := New[string]()
	a, fresh := s.Intern("a")
	require.True(t, fresh)
	assert.Equal(t, 0, a)

	b, fresh := s.Intern("b")
	require.True(t, fresh)
	assert.Equal(t, 1, b)

	again, fresh := s.Intern("a")
	assert.False(t, fresh)
	assert.Equal(t, a, again)

	idx, ok := s.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, b, idx)
	_, ok = s.Lookup("c")
	assert.False(t, ok)

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, s.Cap())
}

func TestReleaseRecyclesSlots(t *testing.T) {
	s := New[int]()
	s.Intern(10)
	idx, _ := s.Intern(20)
	s.Intern(30)

	assert.Equal(t, idx, s.Release(20))
	assert.Equal(t, 2, s.Len())
	_, ok := s.Lookup(20)
	assert.False(t, ok)

	// The freed slot is reused before the store grows.
	reused, fresh := s.Intern(40)
	assert.True(t, fresh)
	assert.Equal(t, idx, reused)
	assert.Equal(t, 3, s.Cap())
}

func TestReleaseUnknownPanics(t *testing.T) {
	s := New[int]()
	assert.Panics(t, func() { s.Release(1) })
}

func TestAll(t *testing.T) {
	s := New[int]()
	s.Intern(1)
	s.Intern(2)
	s.Intern(3)
	s.Release(2)
	var keys []int
	for k := range s.All() {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []int{1, 3}, keys)
}
