package eulerforest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddVertex(t *testing.T) {
	f := New()
	assert.False(t, f.Seen(1))
	assert.False(t, f.Seen(2))
	f.EnsureVertex(1)
	f.EnsureVertex(2)
	f.EnsureVertex(3)
	assert.True(t, f.Seen(1))
	assert.True(t, f.Seen(2))
	assert.False(t, f.Seen(0))
	assert.False(t, f.Seen(4))

	assert.True(t, f.Connected(2, 2))
	assert.False(t, f.Connected(1, 2))
	assert.False(t, f.Connected(2, 3))
	assert.False(t, f.Connected(3, 1))
}

func TestQueryNonexistentPanics(t *testing.T) {
	f := New()
	assert.Panics(t, func() { f.Connected(1, 1) })
	assert.Panics(t, func() { f.Connected(1, 2) })
}

func TestLinkNonexistentPanics(t *testing.T) {
	f := New()
	f.EnsureVertex(1)
	assert.Panics(t, func() { f.Link(1, 2) })
	assert.Panics(t, func() { f.Link(2, 1) })
}

func TestTwoVertices(t *testing.T) {
	f := New()
	f.EnsureVertex(1)
	f.EnsureVertex(2)
	f.Link(1, 2)
	assert.True(t, f.Connected(1, 2))
	assert.True(t, f.Connected(2, 1))
}

func TestLinkTwicePanics(t *testing.T) {
	f := New()
	f.EnsureVertex(1)
	f.EnsureVertex(2)
	f.Link(1, 2)
	assert.Panics(t, func() { f.Link(1, 2) })
}

func TestLinkSelfPanics(t *testing.T) {
	f := New()
	f.EnsureVertex(1)
	assert.Panics(t, func() { f.Link(1, 1) })
}

func TestLinks(t *testing.T) {
	f := New()
	f.EnsureVertex(1)
	f.EnsureVertex(2)
	f.EnsureVertex(3)
	f.Link(1, 2)
	assert.True(t, f.Connected(1, 2))
	assert.False(t, f.Connected(1, 3))
	assert.False(t, f.Connected(2, 3))
	f.Link(3, 2)
	assert.True(t, f.Connected(1, 2))
	assert.True(t, f.Connected(2, 3))
}

func TestLinksComplicated(t *testing.T) {
	f := New()
	for i := 0; i < 10; i++ {
		f.EnsureVertex(i)
	}
	f.Link(0, 1)
	f.Link(2, 3)
	f.Link(1, 3)
	f.Link(6, 5)
	f.Link(5, 4)
	f.Link(4, 7)
	f.Link(3, 8)
	f.Link(9, 2)

	assert.True(t, f.Connected(0, 1))
	assert.True(t, f.Connected(1, 2))
	assert.True(t, f.Connected(2, 3))
	assert.True(t, f.Connected(3, 8))
	assert.True(t, f.Connected(8, 9))

	assert.True(t, f.Connected(4, 5))
	assert.True(t, f.Connected(5, 6))
	assert.True(t, f.Connected(6, 7))

	assert.False(t, f.Connected(3, 4))
	assert.False(t, f.Connected(7, 8))
}

func TestLinkCyclePanics(t *testing.T) {
	f := New()
	for i := 1; i <= 4; i++ {
		f.EnsureVertex(i)
	}
	f.Link(1, 2)
	assert.Panics(t, func() { f.Link(2, 1) })
	f.Link(2, 3)
	assert.Panics(t, func() { f.Link(3, 1) })
	f.Link(3, 4)
	assert.Panics(t, func() { f.Link(4, 1) })
}

func TestTwoParents(t *testing.T) {
	f := New()
	f.EnsureVertex(1)
	f.EnsureVertex(2)
	f.EnsureVertex(3)
	f.Link(3, 1)
	assert.True(t, f.Connected(1, 3))
	assert.False(t, f.Connected(1, 2))
	f.Link(3, 2)
	assert.True(t, f.Connected(1, 2))
	assert.True(t, f.Connected(2, 3))
}

func TestCutChain(t *testing.T) {
	f := New()
	for i := 1; i <= 4; i++ {
		f.EnsureVertex(i)
	}
	f.Link(1, 2)
	f.Link(2, 3)
	f.Link(3, 4)
	assert.True(t, f.Connected(1, 4))
	f.Cut(2, 3)
	assert.True(t, f.Connected(1, 2))
	assert.True(t, f.Connected(3, 4))
	assert.False(t, f.Connected(2, 3))
}

func TestCutOutOfOrder(t *testing.T) {
	f := New()
	for i := 1; i <= 4; i++ {
		f.EnsureVertex(i)
	}
	f.Link(3, 4)
	f.Link(1, 2)
	f.Link(2, 3)
	assert.True(t, f.Connected(1, 4))
	f.Cut(1, 2)
	assert.False(t, f.Connected(1, 2))
	assert.True(t, f.Connected(2, 3))
	assert.True(t, f.Connected(3, 4))
	f.Cut(2, 3)
	assert.False(t, f.Connected(1, 2))
	assert.False(t, f.Connected(1, 3))
	assert.False(t, f.Connected(2, 3))
	assert.True(t, f.Connected(3, 4))
}

func TestCutAbsentEdgePanics(t *testing.T) {
	f := New()
	f.EnsureVertex(1)
	f.EnsureVertex(2)
	assert.Panics(t, func() { f.Cut(1, 2) })
}

// Link then cut restores both components, including their representatives.
func TestLinkCutRoundTrip(t *testing.T) {
	f := New()
	f.EnsureVertex(1)
	f.EnsureVertex(2)
	rep1 := f.Representative(1)
	rep2 := f.Representative(2)

	f.Link(1, 2)
	assert.True(t, f.Connected(1, 2))
	assert.Equal(t, f.Representative(1), f.Representative(2))

	f.Cut(1, 2)
	assert.False(t, f.Connected(1, 2))
	assert.Equal(t, rep1, f.Representative(1))
	assert.Equal(t, rep2, f.Representative(2))
}

// A cut edge can be re-linked: the half-edge occurrences are freed on Cut
// and recreated on Link.
func TestRelinkAfterCut(t *testing.T) {
	f := New()
	for i := 1; i <= 3; i++ {
		f.EnsureVertex(i)
	}
	f.Link(1, 2)
	f.Link(2, 3)
	f.Cut(1, 2)
	assert.False(t, f.Connected(1, 2))
	f.Link(1, 2)
	assert.True(t, f.Connected(1, 2))
	assert.True(t, f.Connected(1, 3))
	f.Cut(1, 2)
	assert.False(t, f.Connected(1, 2))
	assert.True(t, f.Connected(2, 3))
}

// A tree with k vertices has a tour of 2k-1 vertex visits, stored as
// k anchors plus two half-edges per tree edge.
func TestTourLength(t *testing.T) {
	f := New()
	for i := 0; i < 6; i++ {
		f.EnsureVertex(i)
	}
	f.Link(0, 1)
	f.Link(1, 2)
	f.Link(1, 3)
	f.Link(3, 4)

	k := f.Order(0)
	require.Equal(t, 5, k)
	assert.Equal(t, 3*k-2, f.OccCount(0))
	visits := (f.OccCount(0) + k) / 2
	assert.Equal(t, 2*k-1, visits)

	assert.Equal(t, 1, f.Order(5))
	assert.Equal(t, 1, f.OccCount(5))

	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, f.Vertices(0))
}
