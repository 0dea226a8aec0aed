package algorithm

import (
	"github.com/vk/gidgo/internal/digraph"
	"github.com/vk/gidgo/internal/opcount"
	"github.com/vk/gidgo/internal/stategraph"
)

// jumpNode is the per-vertex state of the Jump detector.
type jumpNode struct {
	// jumps is nonempty for undecided vertices. The first entry is a real
	// edge; the i-th entry is roughly 2^i edges further along the chain.
	jumps []int

	// reserve holds forward edges not yet added to the graph, most recent
	// last.
	reserve []int

	status stategraph.Status
}

func mergeJumpNodes(n1, n2 *jumpNode) *jumpNode {
	return &jumpNode{reserve: append(n1.reserve, n2.reserve...)}
}

// Jump is the practical fast detector. Like Log it keeps one canonical
// out-edge per undecided vertex, but instead of an Euler-tour forest it
// stores a doubling list of jump pointers per vertex, repaired lazily
// while queries chase the chain to its open root. Stale pointers to dead
// vertices are popped on the way; successful queries extend the list so
// the next chase is shorter.
type Jump struct {
	g     *digraph.Graph[jumpNode]
	extra opcount.Counter
}

// NewJump returns an empty jump detector.
func NewJump() *Jump {
	return &Jump{g: digraph.New[jumpNode]()}
}

func (j *Jump) AddEdgeUnchecked(u, v int) {
	j.g.EnsureEdgeBck(u, v)
	j.markNewLive(v)
	if !j.isLive(u) {
		j.pushReserve(u, v)
	}
}

func (j *Jump) MarkClosedUnchecked(v int) {
	j.g.Ensure(v)
	j.initializeJumps(v)
}

func (j *Jump) MarkLiveUnchecked(v int) {
	j.g.Ensure(v)
	j.setStatus(v, stategraph.Live)
	j.markNewLive(v)
}

func (j *Jump) Status(v int) (stategraph.Status, bool) {
	if n := j.g.Label(v); n != nil {
		return n.status, true
	}
	return stategraph.Open, false
}

func (j *Jump) States() []int { return j.g.AllVertices() }
func (j *Jump) Work() int     { return j.g.Work() }
func (j *Jump) Space() int    { return j.g.Space() + j.extra.Get() }

// isRoot reports whether the open root of v's canonical chain is end,
// chasing and repairing jump pointers on the way. Stale entries point at
// dead vertices and are discarded; the first entry is a real edge into the
// canonical forest and is always valid for an undecided vertex.
func (j *Jump) isRoot(v, end int) bool {
	if j.isOpen(v) {
		return j.g.Same(v, end)
	}
	for j.isDead(j.lastJump(v)) {
		j.popLastJump(v)
	}
	w := j.lastJump(v)
	result := j.isRoot(w, end)
	if nv, nw := j.numJumps(v), j.numJumps(w); nv <= nw {
		j.pushJump(v, j.nthJump(w, nv-1))
	}
	return result
}

// initializeJumps finds an escape route for a vertex with no jump list: a
// freshly closed vertex, or one whose route died. As in Log, each
// processed vertex finds a new first jump, collapses a cycle, or dies.
func (j *Jump) initializeJumps(v int) {
	stack := []int{v}
	for len(stack) > 0 {
		x := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		stack = j.initializeJumpsStep(stack, x)
	}
}

func (j *Jump) initializeJumpsStep(stack []int, v int) []int {
	for {
		w, ok := j.popReserve(v)
		if !ok {
			break
		}
		if j.isDead(w) {
			continue
		}
		if j.isRoot(w, v) {
			j.mergePathFrom(w)
			continue
		}
		j.setStatus(v, stategraph.Unknown)
		j.g.EnsureEdgeFwd(v, w)
		j.pushJump(v, w)
		return stack
	}

	j.setStatus(v, stategraph.Dead)
	for _, u := range j.g.Bck(v) {
		if j.isUnknown(u) && j.g.Same(j.firstJump(u), v) {
			j.clearJumps(u)
			j.setStatus(u, stategraph.Open)
			stack = append(stack, u)
		}
	}
	return stack
}

// mergePathFrom collapses the canonical chain from v through its first
// jumps, up to and including its open root, into a single open vertex.
func (j *Jump) mergePathFrom(v int) {
	chain := []int{v}
	for cur := v; j.isClosed(cur); {
		next := j.firstJump(cur)
		chain = append(chain, next)
		cur = next
	}
	for _, w := range chain[1:] {
		j.g.Merge(v, w, mergeJumpNodes)
	}
}

func (j *Jump) markNewLive(v int) {
	if !j.isLive(v) {
		return
	}
	newLive := j.g.DFSBck([]int{v}, func(u int) bool { return !j.isLive(u) })
	for _, u := range newLive {
		j.setStatus(u, stategraph.Live)
	}
}

/* Node label accessors. */

func (j *Jump) node(v int) *jumpNode { return j.g.Label(v) }

func (j *Jump) setStatus(v int, st stategraph.Status) {
	n := j.node(v)
	n.status = st
	if st == stategraph.Live {
		n.jumps = nil
		n.reserve = nil
	}
}

func (j *Jump) pushReserve(v, w int) {
	j.extra.Inc()
	n := j.node(v)
	n.reserve = append(n.reserve, w)
}

func (j *Jump) popReserve(v int) (int, bool) {
	n := j.node(v)
	if len(n.reserve) == 0 {
		return 0, false
	}
	w := n.reserve[len(n.reserve)-1]
	n.reserve = n.reserve[:len(n.reserve)-1]
	return w, true
}

func (j *Jump) numJumps(v int) int {
	if j.isOpen(v) {
		return 0
	}
	return len(j.node(v).jumps)
}

func (j *Jump) nthJump(v, i int) int { return j.node(v).jumps[i] }

func (j *Jump) firstJump(v int) int { return j.nthJump(v, 0) }

func (j *Jump) lastJump(v int) int {
	jumps := j.node(v).jumps
	return jumps[len(jumps)-1]
}

func (j *Jump) popLastJump(v int) {
	n := j.node(v)
	n.jumps = n.jumps[:len(n.jumps)-1]
}

func (j *Jump) pushJump(v, w int) {
	j.extra.Inc()
	n := j.node(v)
	n.jumps = append(n.jumps, w)
}

func (j *Jump) clearJumps(v int) { j.node(v).jumps = nil }

func (j *Jump) isOpen(v int) bool {
	n := j.node(v)
	return n == nil || n.status == stategraph.Open
}

func (j *Jump) isClosed(v int) bool { return !j.isOpen(v) }

func (j *Jump) isLive(v int) bool {
	n := j.node(v)
	return n != nil && n.status == stategraph.Live
}

func (j *Jump) isDead(v int) bool {
	n := j.node(v)
	return n != nil && n.status == stategraph.Dead
}

func (j *Jump) isUnknown(v int) bool {
	n := j.node(v)
	return n != nil && n.status == stategraph.Unknown
}
