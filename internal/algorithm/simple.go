package algorithm

import (
	"github.com/vk/gidgo/internal/digraph"
	"github.com/vk/gidgo/internal/stategraph"
)

// Simple improves on Naive by merging strongly connected closed vertices
// into one vertex when they are discovered, so that deadness only has to
// propagate backward over an acyclic structure. It parallels the state
// graph maintained inside Z3's regex solver (z3/src/util/state_graph.h).
type Simple struct {
	g *digraph.Graph[stategraph.Status]
}

// NewSimple returns an empty simple detector.
func NewSimple() *Simple {
	return &Simple{g: digraph.New[stategraph.Status]()}
}

func (s *Simple) AddEdgeUnchecked(u, v int) {
	s.g.EnsureEdge(u, v)
	s.markNewLive(v)
}

func (s *Simple) MarkClosedUnchecked(v int) {
	s.g.SetLabel(v, stategraph.Unknown)
	s.mergeAllCycles(v)
	s.checkDead(v)
}

func (s *Simple) MarkLiveUnchecked(v int) {
	s.g.SetLabel(v, stategraph.Live)
	s.markNewLive(v)
}

func (s *Simple) Status(v int) (stategraph.Status, bool) {
	if l := s.g.Label(v); l != nil {
		return *l, true
	}
	return stategraph.Open, false
}

func (s *Simple) States() []int { return s.g.AllVertices() }
func (s *Simple) Work() int     { return s.g.Work() }
func (s *Simple) Space() int    { return s.g.Space() }

// mergeAllCycles collapses every cycle of closed vertices through v.
// Closed vertices gain no new out-edges, so cycles among them can only
// appear at the moment one of their members closes.
func (s *Simple) mergeAllCycles(v int) {
	fwd := make(map[int]bool)
	for _, w := range s.g.DFSFwd([]int{v}, s.isUndecided) {
		fwd[w] = true
	}
	for _, u := range s.g.DFSBck([]int{v}, func(u int) bool { return fwd[u] }) {
		s.g.Merge(u, v, func(l1, _ *stategraph.Status) *stategraph.Status { return l1 })
	}
}

// checkDead marks v dead if every out-neighbor is dead, then retries its
// closed predecessors, walking backward in topological order.
func (s *Simple) checkDead(v int) {
	newDead := s.g.TopoSearchBck(v, s.isUndecided, func(w int) bool { return !s.isDead(w) })
	for _, u := range newDead {
		s.g.SetLabel(u, stategraph.Dead)
	}
}

func (s *Simple) markNewLive(v int) {
	if !s.isLive(v) {
		return
	}
	newLive := s.g.DFSBck([]int{v}, func(u int) bool { return !s.isLive(u) })
	for _, u := range newLive {
		s.g.SetLabel(u, stategraph.Live)
	}
}

func (s *Simple) isLive(v int) bool {
	l := s.g.Label(v)
	return l != nil && *l == stategraph.Live
}

func (s *Simple) isDead(v int) bool {
	l := s.g.Label(v)
	return l != nil && *l == stategraph.Dead
}

func (s *Simple) isUndecided(v int) bool {
	l := s.g.Label(v)
	return l != nil && (*l == stategraph.Unknown || *l == stategraph.Dead)
}
