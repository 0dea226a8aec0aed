package algorithm

import (
	"github.com/vk/gidgo/internal/digraph"
	"github.com/vk/gidgo/internal/stategraph"
)

// Naive is the baseline detector: it stores the graph and recomputes the
// dead set with a full backward search after every close. Correctness is
// immediate from the definitions; the cost is linear in the graph per
// update.
type Naive struct {
	g *digraph.Graph[stategraph.Status]
}

// NewNaive returns an empty naive detector.
func NewNaive() *Naive {
	return &Naive{g: digraph.New[stategraph.Status]()}
}

func (n *Naive) AddEdgeUnchecked(u, v int) {
	n.g.EnsureEdge(u, v)
	n.markNewLive(v)
}

func (n *Naive) MarkClosedUnchecked(v int) {
	n.g.SetLabel(v, stategraph.Unknown)
	n.recalcDead()
}

func (n *Naive) MarkLiveUnchecked(v int) {
	n.g.SetLabel(v, stategraph.Live)
	n.markNewLive(v)
}

func (n *Naive) Status(v int) (stategraph.Status, bool) {
	if l := n.g.Label(v); l != nil {
		return *l, true
	}
	return stategraph.Open, false
}

func (n *Naive) States() []int { return n.g.AllVertices() }
func (n *Naive) Work() int     { return n.g.Work() }
func (n *Naive) Space() int    { return n.g.Space() }

// markNewLive propagates liveness backward from v, if v is live.
func (n *Naive) markNewLive(v int) {
	if !n.isLive(v) {
		return
	}
	newLive := n.g.DFSBck([]int{v}, func(u int) bool { return !n.isLive(u) })
	for _, u := range newLive {
		n.g.SetLabel(u, stategraph.Live)
	}
}

// recalcDead recomputes which closed vertices are dead: those that cannot
// reach any open or live vertex.
func (n *Naive) recalcDead() {
	undecided := make(map[int]bool)
	var alive []int
	for _, v := range n.g.Vertices() {
		switch st := *n.g.Label(v); st {
		case stategraph.Unknown, stategraph.Dead:
			undecided[v] = true
		default:
			alive = append(alive, v)
		}
	}
	notDead := make(map[int]bool)
	for _, v := range n.g.DFSBck(alive, func(u int) bool { return undecided[u] }) {
		notDead[v] = true
	}
	for v := range undecided {
		if !notDead[v] {
			n.g.SetLabel(v, stategraph.Dead)
		}
	}
}

func (n *Naive) isLive(v int) bool {
	l := n.g.Label(v)
	return l != nil && *l == stategraph.Live
}
