package algorithm

import (
	"math"

	"github.com/vk/gidgo/internal/digraph"
	"github.com/vk/gidgo/internal/opcount"
	"github.com/vk/gidgo/internal/stategraph"
)

// bfgtLabel carries the classification plus the pseudo-topological level
// that drives the bounded two-way search.
type bfgtLabel struct {
	status stategraph.Status
	level  int
}

// BFGT maintains strongly connected components of the closed subgraph
// incrementally, following section 4.1 of Bender, Fineman, Gilbert and
// Tarjan (TALG 2015). Forward edges out of a vertex are buffered until the
// vertex closes, so levels only ever describe closed vertices; backward
// edges are recorded eagerly for liveness propagation.
type BFGT struct {
	g       *digraph.Graph[bfgtLabel]
	pending map[int][]int
	edges   int
	extra   opcount.Counter
}

// NewBFGT returns an empty BFGT detector.
func NewBFGT() *BFGT {
	return &BFGT{
		g:       digraph.New[bfgtLabel](),
		pending: make(map[int][]int),
	}
}

func (b *BFGT) AddEdgeUnchecked(u, v int) {
	b.g.Ensure(u)
	b.g.Ensure(v)
	b.pending[u] = append(b.pending[u], v)
	b.g.EnsureEdgeBck(u, v)
	b.edges++
	b.markNewLive(v)
}

func (b *BFGT) MarkClosedUnchecked(v int) {
	b.g.Ensure(v)
	b.setStatus(v, stategraph.Unknown)
	toAdd := b.pending[v]
	delete(b.pending, v)
	for _, w := range toAdd {
		b.g.EnsureEdgeFwd(v, w)
		b.updateLevels(v, w)
	}
	b.checkDead(v)
}

func (b *BFGT) MarkLiveUnchecked(v int) {
	b.g.Ensure(v)
	b.setStatus(v, stategraph.Live)
	b.markNewLive(v)
}

func (b *BFGT) Status(v int) (stategraph.Status, bool) {
	if l := b.g.Label(v); l != nil {
		return l.status, true
	}
	return stategraph.Open, false
}

func (b *BFGT) States() []int { return b.g.AllVertices() }
func (b *BFGT) Work() int     { return b.g.Work() + b.extra.Get() }
func (b *BFGT) Space() int    { return b.g.Space() + b.edges }

// delta bounds the backward search: sqrt of the edge count.
func (b *BFGT) delta() int {
	b.extra.Inc()
	return int(math.Sqrt(float64(b.edges)))
}

// updateLevels restores the level invariant after the edge (v1, v2)
// becomes visible, merging any strongly connected component it closes.
// Differences from the paper, inherited from the reference strategy: the
// searches are depth-first, and no edge cleaning pass deduplicates
// multi-edges, so the backward search may stop after delta edge visits
// rather than delta distinct vertices.
func (b *BFGT) updateLevels(v1, v2 int) {
	b.extra.Inc()

	// Step 1: test order.
	level1 := b.level(v1)
	level2 := b.level(v2)
	if b.g.Same(v1, v2) || level1 < level2 {
		return
	}

	// Step 2: bounded search backward from v1 within level1.
	foundCycle := false
	setBck := map[int]bool{b.g.Canon(v1): true}
	visited := b.g.DFSBckLimit([]int{v1}, func(u int) bool {
		return b.isUnknown(u) && b.level(u) == level1
	}, b.delta())
	for _, u := range visited {
		if b.g.Same(u, v2) {
			foundCycle = true
		}
		setBck[u] = true
	}
	count := len(visited)

	// Step 3: raise levels forward from v2 when the backward search was
	// truncated or v2 sits below v1.
	if count == b.delta() || level2 < level1 {
		b.extra.Inc()
		newLevel := level1
		if count == b.delta() {
			newLevel = level1 + 1
		}
		b.setLevel(v2, newLevel)
		raise := b.g.DFSFwd([]int{v2}, func(w int) bool {
			return setBck[w] || b.level(w) < newLevel
		})
		for _, w := range raise {
			if setBck[w] {
				foundCycle = true
			}
			b.setLevel(w, newLevel)
		}
	}
	level1 = b.level(v1)

	// Step 4: form the new component.
	if foundCycle {
		b.extra.Inc()
		c1 := b.g.Canon(v1)
		c2 := b.g.Canon(v2)
		fwdReach := map[int]bool{c2: true}
		for _, w := range b.g.DFSFwd([]int{c2}, func(w int) bool { return b.level(w) == level1 }) {
			fwdReach[w] = true
		}
		biReach := b.g.DFSBck([]int{c1}, func(u int) bool { return fwdReach[u] })
		for _, u := range biReach {
			if !b.g.Same(u, c1) {
				b.g.Merge(u, c1, func(l1, _ *bfgtLabel) *bfgtLabel { return l1 })
			}
		}
	}
}

func (b *BFGT) checkDead(v int) {
	newDead := b.g.TopoSearchBck(v, b.isUndecided, func(w int) bool { return !b.isDead(w) })
	for _, u := range newDead {
		b.setStatus(u, stategraph.Dead)
	}
}

func (b *BFGT) markNewLive(v int) {
	if !b.isLive(v) {
		return
	}
	newLive := b.g.DFSBck([]int{v}, func(u int) bool { return !b.isLive(u) })
	for _, u := range newLive {
		b.setStatus(u, stategraph.Live)
	}
}

func (b *BFGT) setStatus(v int, st stategraph.Status) { b.g.Label(v).status = st }

func (b *BFGT) level(v int) int { return b.g.Label(v).level }

func (b *BFGT) setLevel(v, level int) { b.g.Label(v).level = level }

func (b *BFGT) isLive(v int) bool {
	l := b.g.Label(v)
	return l != nil && l.status == stategraph.Live
}

func (b *BFGT) isDead(v int) bool {
	l := b.g.Label(v)
	return l != nil && l.status == stategraph.Dead
}

func (b *BFGT) isUnknown(v int) bool {
	l := b.g.Label(v)
	return l != nil && l.status == stategraph.Unknown
}

func (b *BFGT) isUndecided(v int) bool {
	l := b.g.Label(v)
	return l != nil && (l.status == stategraph.Unknown || l.status == stategraph.Dead)
}
