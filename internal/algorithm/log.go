package algorithm

import (
	"github.com/vk/gidgo/internal/digraph"
	"github.com/vk/gidgo/internal/eulerforest"
	"github.com/vk/gidgo/internal/opcount"
	"github.com/vk/gidgo/internal/stategraph"
)

// logNode is the per-vertex state of the Log detector.
type logNode struct {
	// reserve holds forward edges not yet added to the graph, most recent
	// last. An undecided vertex draws its next canonical edge from here.
	reserve []int

	// next is the canonical out-edge, stored with its original endpoint
	// keys so the Euler forest edge can be removed after vertex merges.
	next *[2]int

	status stategraph.Status
}

// mergeLogNodes combines the labels of two vertices collapsing into one.
// The merged vertex is open again: it has no canonical edge and will be
// reprocessed from the combined reserve list.
func mergeLogNodes(n1, n2 *logNode) *logNode {
	return &logNode{reserve: append(n1.reserve, n2.reserve...)}
}

// Log is the amortized O(log n) detector. Every undecided vertex keeps one
// canonical out-edge to a vertex that is not known dead; the canonical
// edges form a forest whose roots are open vertices, maintained in an
// Euler-tour structure so that "does this chain end at vertex end" is a
// connectivity query. When a vertex dies, the canonical in-edges pointing
// at it are cut and their sources pick a new escape route, or die in turn.
type Log struct {
	g     *digraph.Graph[logNode]
	ef    *eulerforest.Forest
	extra opcount.Counter
}

// NewLog returns an empty log detector.
func NewLog() *Log {
	return &Log{
		g:  digraph.New[logNode](),
		ef: eulerforest.New(),
	}
}

func (l *Log) AddEdgeUnchecked(u, v int) {
	l.g.EnsureEdgeBck(u, v)
	l.ef.EnsureVertex(u)
	l.ef.EnsureVertex(v)
	l.markNewLive(v)
	if !l.isLive(u) {
		l.pushReserve(u, v)
	}
}

func (l *Log) MarkClosedUnchecked(v int) {
	l.g.Ensure(v)
	l.ef.EnsureVertex(v)
	l.checkDead(v)
}

func (l *Log) MarkLiveUnchecked(v int) {
	l.g.Ensure(v)
	l.ef.EnsureVertex(v)
	l.setStatus(v, stategraph.Live)
	l.markNewLive(v)
}

func (l *Log) Status(v int) (stategraph.Status, bool) {
	if n := l.g.Label(v); n != nil {
		return n.status, true
	}
	return stategraph.Open, false
}

func (l *Log) States() []int { return l.g.AllVertices() }
func (l *Log) Work() int     { return l.g.Work() + l.ef.Work() }
func (l *Log) Space() int    { return l.g.Space() + l.extra.Get() }

// isRoot reports whether the open root of v's canonical chain is end.
// With the canonical forest mirrored in the Euler-tour structure, this is
// a single connectivity query.
func (l *Log) isRoot(v, end int) bool {
	return l.ef.Connected(v, end)
}

// checkDead processes a vertex whose canonical edge is missing: a freshly
// closed vertex, or one whose escape route just died. Each processed
// vertex either finds a new canonical edge, collapses a cycle, or dies and
// sends its own canonical predecessors through the same work stack.
func (l *Log) checkDead(v int) {
	stack := []int{v}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = l.checkDeadStep(stack, x)
	}
}

func (l *Log) checkDeadStep(stack []int, v int) []int {
	for {
		w, ok := l.popReserve(v)
		if !ok {
			break
		}
		if l.isDead(w) {
			continue
		}
		if l.isRoot(w, v) {
			// The edge closes a cycle back to v; collapse the whole chain.
			l.mergePathFrom(w)
			continue
		}
		l.setStatus(v, stategraph.Unknown)
		l.setSucc(v, w)
		l.ef.Link(v, w)
		return stack
	}

	// Out of candidate edges: v is dead. Its canonical predecessors lose
	// their escape route and are reprocessed. The isUnknown guard also
	// skips duplicate entries from multi-edges: a cleared predecessor is
	// open on the second encounter.
	l.setStatus(v, stategraph.Dead)
	first := true
	for _, u := range l.g.Bck(v) {
		if !l.isUnknown(u) || !l.isSucc(u, v) {
			continue
		}
		ou, ov := l.clearSucc(u)
		l.setStatus(u, stategraph.Open)
		stack = append(stack, u)
		// The first in-edge can stay in the forest: v keeps no canonical
		// out-edge of its own, so it hangs off one tree as a leaf and
		// never joins two trees.
		if first {
			first = false
		} else {
			l.ef.Cut(ou, ov)
		}
	}
	return stack
}

// mergePathFrom collapses the canonical chain starting at v, up to and
// including its open root, into a single open vertex.
func (l *Log) mergePathFrom(v int) {
	chain := []int{v}
	for cur := v; l.isClosed(cur); {
		next, ok := l.succ(cur)
		if !ok {
			panic("algorithm: closed vertex without canonical edge on merge path")
		}
		chain = append(chain, next)
		cur = next
	}
	for _, w := range chain[1:] {
		l.g.Merge(v, w, mergeLogNodes)
	}
}

func (l *Log) markNewLive(v int) {
	if !l.isLive(v) {
		return
	}
	newLive := l.g.DFSBck([]int{v}, func(u int) bool { return !l.isLive(u) })
	for _, u := range newLive {
		l.setStatus(u, stategraph.Live)
	}
}

/* Node label accessors. */

func (l *Log) node(v int) *logNode { return l.g.Label(v) }

func (l *Log) setStatus(v int, st stategraph.Status) {
	n := l.node(v)
	n.status = st
	if st == stategraph.Live {
		n.reserve = nil
	}
}

func (l *Log) pushReserve(v, w int) {
	l.extra.Inc()
	n := l.node(v)
	n.reserve = append(n.reserve, w)
}

func (l *Log) popReserve(v int) (int, bool) {
	n := l.node(v)
	if len(n.reserve) == 0 {
		return 0, false
	}
	w := n.reserve[len(n.reserve)-1]
	n.reserve = n.reserve[:len(n.reserve)-1]
	return w, true
}

func (l *Log) succ(v int) (int, bool) {
	n := l.node(v)
	if n.next == nil {
		return 0, false
	}
	return n.next[1], true
}

func (l *Log) setSucc(v, w int) {
	n := l.node(v)
	if n.next != nil {
		panic("algorithm: canonical edge already set")
	}
	n.next = &[2]int{v, w}
}

func (l *Log) clearSucc(v int) (int, int) {
	n := l.node(v)
	if n.next == nil {
		panic("algorithm: canonical edge already cleared")
	}
	e := *n.next
	n.next = nil
	return e[0], e[1]
}

func (l *Log) isSucc(u, v int) bool {
	w, ok := l.succ(u)
	return ok && l.g.Same(w, v)
}

func (l *Log) isLive(v int) bool {
	n := l.node(v)
	return n != nil && n.status == stategraph.Live
}

func (l *Log) isDead(v int) bool {
	n := l.node(v)
	return n != nil && n.status == stategraph.Dead
}

func (l *Log) isUnknown(v int) bool {
	n := l.node(v)
	return n != nil && n.status == stategraph.Unknown
}

func (l *Log) isClosed(v int) bool {
	n := l.node(v)
	return n != nil && n.status != stategraph.Open
}
