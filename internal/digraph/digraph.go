package digraph

import (
	"github.com/vk/gidgo/internal/cellstore"
	"github.com/vk/gidgo/internal/opcount"
)

// Graph is a labeled directed multigraph over integer vertex keys with O(1)
// vertex merging. The zero value is not usable; call New.
type Graph[T any] struct {
	ids    *cellstore.Store[int] // vertex key -> unique id
	keys   []int                 // unique id -> vertex key
	uf     unionFind
	labels map[int]*T // canonical id -> label
	fwd    map[int]*edgeList
	bck    map[int]*edgeList

	work  opcount.Counter
	space opcount.Counter
}

// New returns an empty graph.
func New[T any]() *Graph[T] {
	return &Graph[T]{
		ids:    cellstore.New[int](),
		labels: make(map[int]*T),
		fwd:    make(map[int]*edgeList),
		bck:    make(map[int]*edgeList),
	}
}

// Seen reports whether v has ever been added.
func (g *Graph[T]) Seen(v int) bool {
	g.work.Inc()
	_, ok := g.ids.Lookup(v)
	return ok
}

// Ensure adds v with a zero label if it has not been seen.
func (g *Graph[T]) Ensure(v int) {
	g.work.Inc()
	if !g.Seen(v) {
		var zero T
		g.addVertex(v, &zero)
	}
}

// Label returns the label of v's canonical vertex, or nil if v is unseen.
// The pointer aliases the stored label; mutations are visible to the graph.
func (g *Graph[T]) Label(v int) *T {
	g.work.Inc()
	id, ok := g.canonID(v)
	if !ok {
		return nil
	}
	return g.labels[id]
}

// SetLabel overwrites the label of v's canonical vertex, creating v if it
// has not been seen.
func (g *Graph[T]) SetLabel(v int, label T) {
	g.work.Inc()
	if id, ok := g.canonID(v); ok {
		g.labels[id] = &label
		return
	}
	g.addVertex(v, &label)
}

// Same reports whether v1 and v2 name the same (possibly merged) vertex.
func (g *Graph[T]) Same(v1, v2 int) bool {
	g.work.Inc()
	if v1 == v2 {
		return true
	}
	id1, ok1 := g.canonID(v1)
	id2, ok2 := g.canonID(v2)
	return ok1 && ok2 && id1 == id2
}

// Canon returns the canonical representative key for v. Unseen keys are
// their own representatives.
func (g *Graph[T]) Canon(v int) int {
	if id, ok := g.canonID(v); ok {
		return g.keys[id]
	}
	return v
}

// Vertices returns one key per canonical vertex class.
func (g *Graph[T]) Vertices() []int {
	out := make([]int, 0, len(g.labels))
	for id := range g.labels {
		g.work.Inc()
		out = append(out, g.keys[id])
	}
	return out
}

// AllVertices returns every key ever seen, including merged aliases.
func (g *Graph[T]) AllVertices() []int {
	out := make([]int, len(g.keys))
	copy(out, g.keys)
	return out
}

// Fwd returns the forward neighbors of v as canonical keys. Self-loops
// (including those created by merging) are filtered; duplicates are not.
func (g *Graph[T]) Fwd(v int) []int {
	return g.neighbors(v, g.fwd)
}

// Bck returns the backward neighbors of v as canonical keys, with the same
// filtering as Fwd.
func (g *Graph[T]) Bck(v int) []int {
	return g.neighbors(v, g.bck)
}

// EnsureEdge records the edge v1 -> v2 in both directions, creating the
// endpoints as needed.
func (g *Graph[T]) EnsureEdge(v1, v2 int) {
	g.Ensure(v1)
	g.Ensure(v2)
	g.addEdgeFwd(v1, v2)
	g.addEdgeBck(v1, v2)
}

// EnsureEdgeFwd records only the forward direction of v1 -> v2.
func (g *Graph[T]) EnsureEdgeFwd(v1, v2 int) {
	g.Ensure(v1)
	g.Ensure(v2)
	g.addEdgeFwd(v1, v2)
}

// EnsureEdgeBck records only the backward direction of v1 -> v2.
func (g *Graph[T]) EnsureEdgeBck(v1, v2 int) {
	g.Ensure(v1)
	g.Ensure(v2)
	g.addEdgeBck(v1, v2)
}

// Merge unifies v1 and v2 into one vertex. The labels are combined with
// merge, called as merge(label1, label2). Edge lists are spliced in O(1).
// Merge panics if either vertex is unseen.
func (g *Graph[T]) Merge(v1, v2 int, merge func(l1, l2 *T) *T) {
	g.work.Inc()
	id1 := g.mustCanonID(v1)
	id2 := g.mustCanonID(v2)
	if id1 == id2 {
		return
	}
	winner := g.uf.union(id1, id2)
	loser := id1
	if loser == winner {
		loser = id2
	}
	g.labels[winner] = merge(g.labels[id1], g.labels[id2])
	delete(g.labels, loser)
	g.fwd[winner].splice(g.fwd[loser])
	g.bck[winner].splice(g.bck[loser])
	delete(g.fwd, loser)
	delete(g.bck, loser)
}

// Work returns the abstract work counter (loop iterations, up to a constant).
func (g *Graph[T]) Work() int { return g.work.Get() }

// Space returns the abstract space counter (cells stored, up to a constant).
func (g *Graph[T]) Space() int { return g.space.Get() }

func (g *Graph[T]) addVertex(v int, label *T) {
	id, fresh := g.ids.Intern(v)
	if !fresh {
		panic("digraph: vertex added twice")
	}
	g.keys = append(g.keys, v)
	g.uf.alloc()
	g.labels[id] = label
	g.fwd[id] = &edgeList{}
	g.bck[id] = &edgeList{}
	g.work.Inc()
	g.space.Inc()
}

func (g *Graph[T]) addEdgeFwd(v1, v2 int) {
	id1 := g.mustCanonID(v1)
	id2 := g.mustCanonID(v2)
	g.work.Inc()
	if id1 == id2 {
		return
	}
	g.fwd[id1].push(id2)
	g.space.Inc()
}

func (g *Graph[T]) addEdgeBck(v1, v2 int) {
	id1 := g.mustCanonID(v1)
	id2 := g.mustCanonID(v2)
	g.work.Inc()
	if id1 == id2 {
		return
	}
	g.bck[id2].push(id1)
	g.space.Inc()
}

func (g *Graph[T]) neighbors(v int, dir map[int]*edgeList) []int {
	id := g.mustCanonID(v)
	list := dir[id]
	out := make([]int, 0, list.size)
	for n := list.head; n != nil; n = n.next {
		g.work.Inc()
		c := g.uf.find(n.id)
		if c == id {
			continue
		}
		out = append(out, g.keys[c])
	}
	return out
}

func (g *Graph[T]) canonID(v int) (int, bool) {
	id, ok := g.ids.Lookup(v)
	if !ok {
		return 0, false
	}
	return g.uf.find(id), true
}

func (g *Graph[T]) mustCanonID(v int) int {
	id, ok := g.canonID(v)
	if !ok {
		panic("digraph: vertex not seen")
	}
	return id
}

// edgeList is a singly-linked adjacency list with O(1) push and splice.
// Entries hold unique ids as of insertion time; callers re-canonicalize on
// iteration.
type edgeList struct {
	head, tail *edgeNode
	size       int
}

type edgeNode struct {
	id   int
	next *edgeNode
}

func (l *edgeList) push(id int) {
	n := &edgeNode{id: id}
	if l.tail == nil {
		l.head = n
	} else {
		l.tail.next = n
	}
	l.tail = n
	l.size++
}

func (l *edgeList) splice(o *edgeList) {
	if o.head == nil {
		return
	}
	if l.tail == nil {
		l.head = o.head
	} else {
		l.tail.next = o.head
	}
	l.tail = o.tail
	l.size += o.size
	o.head, o.tail, o.size = nil, nil, 0
}

// unionFind is a minimal union-by-rank structure over sequentially
// allocated ids with path halving.
type unionFind struct {
	parent []int
	rank   []int
}

func (u *unionFind) alloc() int {
	id := len(u.parent)
	u.parent = append(u.parent, id)
	u.rank = append(u.rank, 0)
	return id
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) int {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return ra
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
	return ra
}
