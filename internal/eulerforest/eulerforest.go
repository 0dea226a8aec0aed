package eulerforest

import (
	"github.com/vk/gidgo/internal/avlforest"
	"github.com/vk/gidgo/internal/opcount"
)

// Occ identifies one occurrence in an Euler tour: the anchor of vertex v is
// Occ{v, v}, and the half-edge from u to v is Occ{u, v} with u != v.
type Occ struct {
	U, V int
}

func vert(v int) Occ { return Occ{v, v} }

func halfEdge(u, v int) Occ {
	if u == v {
		panic("eulerforest: self-loop half-edge")
	}
	return Occ{u, v}
}

// Forest maintains a dynamic forest over integer vertices. The zero value
// is not usable; call New.
type Forest struct {
	seq  *avlforest.Forest[Occ]
	work opcount.Counter
}

// New returns an empty forest.
func New() *Forest {
	return &Forest{seq: avlforest.New[Occ]()}
}

// EnsureVertex adds v as a new single-vertex tree if it is not present.
func (f *Forest) EnsureVertex(v int) {
	f.work.Inc()
	f.seq.Ensure(vert(v))
}

// Seen reports whether v has been added.
func (f *Forest) Seen(v int) bool {
	return f.seq.Seen(vert(v))
}

// Connected reports whether u and v are in the same tree. Both vertices
// must have been added.
func (f *Forest) Connected(u, v int) bool {
	f.work.Inc()
	return f.seq.SameSeq(vert(u), vert(v))
}

// Representative returns the occurrence at the root of v's tour sequence.
// Two vertices are in the same tree exactly when their representatives are
// equal; the value itself changes as the tree is relinked.
func (f *Forest) Representative(v int) Occ {
	return f.seq.Root(vert(v))
}

// Link joins the trees containing u and v by adding the edge (u, v). It
// panics if u and v are already connected: the caller maintains the forest
// invariant, and a cycle means that invariant is broken.
func (f *Forest) Link(u, v int) {
	f.work.Inc()
	if f.Connected(u, v) {
		panic("eulerforest: link would close a cycle")
	}
	a1, a2 := vert(u), vert(v)
	e12 := halfEdge(u, v)
	e21 := halfEdge(v, u)
	f.seq.Ensure(e12)
	f.seq.Ensure(e21)

	// Neighbors of the two anchors before any splitting.
	u1, hasU1 := f.seq.Prev(a1)
	w1, hasW1 := f.seq.Next(a1)
	u2, hasU2 := f.seq.Prev(a2)
	w2, hasW2 := f.seq.Next(a2)
	f.seq.SplitAfter(a1)
	f.seq.SplitAfter(a2)

	// Reassemble the pieces into one tour: enter v's tree right after u's
	// anchor and return on the matching half-edge.
	for _, p := range []struct {
		occ Occ
		ok  bool
	}{
		{e12, true},
		{a2, true},
		{w2, hasW2},
		{u2, hasU2},
		{e21, true},
		{w1, hasW1},
		{u1, hasU1},
	} {
		if p.ok {
			f.seq.Concat(a1, p.occ)
		}
	}
}

// Cut removes the edge (u, v), splitting one tree into two, and frees both
// half-edge occurrences. It panics if the edge is not present in the
// forest.
func (f *Forest) Cut(u, v int) {
	f.work.Inc()
	e12 := halfEdge(u, v)
	e21 := halfEdge(v, u)
	if !f.seq.Seen(e12) || !f.seq.Seen(e21) {
		panic("eulerforest: cut of edge not in forest")
	}

	u1, hasU1 := f.seq.Prev(e12)
	u2, hasU2 := f.seq.Next(e12)
	u3, hasU3 := f.seq.Prev(e21)
	u4, hasU4 := f.seq.Next(e21)

	f.seq.SplitAfter(e12)
	f.seq.SplitAfter(e21)
	f.seq.Remove(e12)
	f.seq.Remove(e21)

	// Reconnect the pieces outside the removed edge. Exactly one of these
	// joins distinct pieces; the other is a no-op on a shared piece,
	// whichever way around the two half-edges appeared in the tour.
	if hasU2 && hasU3 {
		f.seq.Concat(u2, u3)
	}
	if hasU4 && hasU1 {
		f.seq.Concat(u4, u1)
	}
}

// Order returns the number of vertices in v's tree. It walks the tour, so
// the cost is linear in the tree size.
func (f *Forest) Order(v int) int {
	return len(f.Vertices(v))
}

// Vertices returns the vertices of v's tree in tour order.
func (f *Forest) Vertices(v int) []int {
	var out []int
	for _, occ := range f.seq.Seq(vert(v)) {
		f.work.Inc()
		if occ.U == occ.V {
			out = append(out, occ.U)
		}
	}
	return out
}

// OccCount returns the number of sequence occurrences in v's tour: one
// anchor per vertex plus two half-edges per tree edge.
func (f *Forest) OccCount(v int) int {
	return f.seq.Count(vert(v))
}

// Work returns the abstract work counter.
func (f *Forest) Work() int { return f.work.Get() }
