package avlforest

import (
	"github.com/vk/gidgo/internal/cellstore"
)

const none = -1

// Forest is a collection of AVL trees, each representing one ordered
// sequence of keys. The zero value is not usable; call New.
type Forest[K comparable] struct {
	index *cellstore.Store[K]
	nodes []slot[K]
}

type slot[K comparable] struct {
	key    K
	parent int
	left   int
	right  int
	height int
	size   int
}

// New returns an empty forest.
func New[K comparable]() *Forest[K] {
	return &Forest[K]{index: cellstore.New[K]()}
}

// Seen reports whether k is an element of some sequence.
func (f *Forest[K]) Seen(k K) bool {
	_, ok := f.index.Lookup(k)
	return ok
}

// Ensure adds k as a new singleton sequence if it is not already present.
func (f *Forest[K]) Ensure(k K) {
	if f.Seen(k) {
		return
	}
	idx, _ := f.index.Intern(k)
	s := slot[K]{key: k, parent: none, left: none, right: none, height: 0, size: 1}
	if idx == len(f.nodes) {
		f.nodes = append(f.nodes, s)
	} else {
		f.nodes[idx] = s
	}
}

// Root returns the key stored at the root of k's tree. Two keys are in the
// same sequence exactly when their Root results coincide.
func (f *Forest[K]) Root(k K) K {
	return f.nodes[f.rootIdx(f.mustIdx(k))].key
}

// SameSeq reports whether k1 and k2 belong to the same sequence.
func (f *Forest[K]) SameSeq(k1, k2 K) bool {
	return f.rootIdx(f.mustIdx(k1)) == f.rootIdx(f.mustIdx(k2))
}

// Count returns the length of the sequence containing k.
func (f *Forest[K]) Count(k K) int {
	return f.nodes[f.rootIdx(f.mustIdx(k))].size
}

// First returns the first element of k's sequence.
func (f *Forest[K]) First(k K) K {
	return f.nodes[f.leftmost(f.rootIdx(f.mustIdx(k)))].key
}

// Position returns the zero-based rank of k within its sequence.
func (f *Forest[K]) Position(k K) int {
	x := f.mustIdx(k)
	rank := f.sz(f.nodes[x].left)
	for p := f.nodes[x].parent; p != none; x, p = p, f.nodes[p].parent {
		if f.nodes[p].right == x {
			rank += f.sz(f.nodes[p].left) + 1
		}
	}
	return rank
}

// Next returns the element following k in its sequence.
func (f *Forest[K]) Next(k K) (K, bool) {
	x := f.mustIdx(k)
	if r := f.nodes[x].right; r != none {
		return f.nodes[f.leftmost(r)].key, true
	}
	for p := f.nodes[x].parent; p != none; x, p = p, f.nodes[p].parent {
		if f.nodes[p].left == x {
			return f.nodes[p].key, true
		}
	}
	var zero K
	return zero, false
}

// Prev returns the element preceding k in its sequence.
func (f *Forest[K]) Prev(k K) (K, bool) {
	x := f.mustIdx(k)
	if l := f.nodes[x].left; l != none {
		return f.nodes[f.rightmost(l)].key, true
	}
	for p := f.nodes[x].parent; p != none; x, p = p, f.nodes[p].parent {
		if f.nodes[p].right == x {
			return f.nodes[p].key, true
		}
	}
	var zero K
	return zero, false
}

// Seq returns the sequence containing k, in order.
func (f *Forest[K]) Seq(k K) []K {
	out := make([]K, 0, f.Count(k))
	cur := f.First(k)
	for {
		out = append(out, cur)
		next, ok := f.Next(cur)
		if !ok {
			return out
		}
		cur = next
	}
}

// Concat appends k2's sequence after k1's sequence. It reports false when
// the two keys already share a sequence, in which case nothing changes.
func (f *Forest[K]) Concat(k1, k2 K) bool {
	r1 := f.rootIdx(f.mustIdx(k1))
	r2 := f.rootIdx(f.mustIdx(k2))
	if r1 == r2 {
		return false
	}
	m, rest := f.detachMin(r2)
	f.join3(r1, m, rest)
	return true
}

// SplitAfter splits the sequence containing k so that k becomes the last
// element of its sequence; the elements after k form a separate sequence.
func (f *Forest[K]) SplitAfter(k K) {
	x := f.mustIdx(k)

	l := f.nodes[x].left
	r := f.nodes[x].right
	if l != none {
		f.nodes[l].parent = none
	}
	if r != none {
		f.nodes[r].parent = none
	}
	p := f.nodes[x].parent
	cur := x
	f.nodes[x].left, f.nodes[x].right, f.nodes[x].parent = none, none, none
	lroot := f.join3(l, x, none)
	rroot := r

	for p != none {
		pp := f.nodes[p].parent
		wasRight := f.nodes[p].right == cur
		if wasRight {
			sib := f.nodes[p].left
			if sib != none {
				f.nodes[sib].parent = none
			}
			f.nodes[p].left, f.nodes[p].right, f.nodes[p].parent = none, none, none
			lroot = f.join3(sib, p, lroot)
		} else {
			sib := f.nodes[p].right
			if sib != none {
				f.nodes[sib].parent = none
			}
			f.nodes[p].left, f.nodes[p].right, f.nodes[p].parent = none, none, none
			rroot = f.join3(rroot, p, sib)
		}
		cur, p = p, pp
	}
}

// Remove detaches k from its sequence, reconnecting the elements before and
// after k into nothing (the prefix and suffix stay separate sequences), and
// frees k's slot for reuse. Callers that need the prefix and suffix joined
// concatenate them afterwards.
func (f *Forest[K]) Remove(k K) {
	f.SplitAfter(k)
	if pk, ok := f.Prev(k); ok {
		f.SplitAfter(pk)
	}
	idx := f.index.Release(k)
	var zero K
	f.nodes[idx] = slot[K]{key: zero, parent: none, left: none, right: none}
}

/*
	Internal tree plumbing. All helpers operate on arena indices; none is
	the absent index.
*/

func (f *Forest[K]) mustIdx(k K) int {
	idx, ok := f.index.Lookup(k)
	if !ok {
		panic("avlforest: key not present")
	}
	return idx
}

func (f *Forest[K]) rootIdx(x int) int {
	for f.nodes[x].parent != none {
		x = f.nodes[x].parent
	}
	return x
}

func (f *Forest[K]) leftmost(x int) int {
	for f.nodes[x].left != none {
		x = f.nodes[x].left
	}
	return x
}

func (f *Forest[K]) rightmost(x int) int {
	for f.nodes[x].right != none {
		x = f.nodes[x].right
	}
	return x
}

func (f *Forest[K]) h(x int) int {
	if x == none {
		return -1
	}
	return f.nodes[x].height
}

func (f *Forest[K]) sz(x int) int {
	if x == none {
		return 0
	}
	return f.nodes[x].size
}

func (f *Forest[K]) update(x int) {
	l, r := f.nodes[x].left, f.nodes[x].right
	hl, hr := f.h(l), f.h(r)
	if hl < hr {
		hl = hr
	}
	f.nodes[x].height = hl + 1
	f.nodes[x].size = f.sz(l) + f.sz(r) + 1
}

func (f *Forest[K]) setLeft(p, c int) {
	f.nodes[p].left = c
	if c != none {
		f.nodes[c].parent = p
	}
}

func (f *Forest[K]) setRight(p, c int) {
	f.nodes[p].right = c
	if c != none {
		f.nodes[c].parent = p
	}
}

// replaceInParent points x's parent at y instead of x.
func (f *Forest[K]) replaceInParent(x, y int) {
	p := f.nodes[x].parent
	f.nodes[y].parent = p
	if p == none {
		return
	}
	if f.nodes[p].left == x {
		f.nodes[p].left = y
	} else {
		f.nodes[p].right = y
	}
}

func (f *Forest[K]) rotateLeft(x int) int {
	y := f.nodes[x].right
	f.replaceInParent(x, y)
	f.setRight(x, f.nodes[y].left)
	f.nodes[y].left = x
	f.nodes[x].parent = y
	f.update(x)
	f.update(y)
	return y
}

func (f *Forest[K]) rotateRight(x int) int {
	y := f.nodes[x].left
	f.replaceInParent(x, y)
	f.setLeft(x, f.nodes[y].right)
	f.nodes[y].right = x
	f.nodes[x].parent = y
	f.update(x)
	f.update(y)
	return y
}

// rebalance restores the AVL invariant at x, assuming both subtrees of x
// are valid AVL trees whose heights differ by at most two. It returns the
// root of the rebalanced subtree.
func (f *Forest[K]) rebalance(x int) int {
	f.update(x)
	l, r := f.nodes[x].left, f.nodes[x].right
	switch bf := f.h(l) - f.h(r); {
	case bf > 1:
		if f.h(f.nodes[l].left) < f.h(f.nodes[l].right) {
			f.rotateLeft(l)
		}
		return f.rotateRight(x)
	case bf < -1:
		if f.h(f.nodes[r].right) < f.h(f.nodes[r].left) {
			f.rotateRight(r)
		}
		return f.rotateLeft(x)
	default:
		return x
	}
}

// rebalanceUp rebalances from x to the root and returns the root index.
func (f *Forest[K]) rebalanceUp(x int) int {
	top := x
	for x != none {
		x = f.rebalance(x)
		top = x
		x = f.nodes[x].parent
	}
	return top
}

// join3 concatenates the sequences l, m, r where m is a single detached
// node (children and parent cleared). All three arguments are roots; l and
// r may be none. The joined root is returned with its parent cleared.
func (f *Forest[K]) join3(l, m, r int) int {
	hl, hr := f.h(l), f.h(r)
	switch {
	case hl > hr+1:
		c := f.nodes[l].right
		if c != none {
			f.nodes[c].parent = none
		}
		f.nodes[l].right = none
		sub := f.join3(c, m, r)
		f.setRight(l, sub)
		return f.rebalance(l)
	case hr > hl+1:
		c := f.nodes[r].left
		if c != none {
			f.nodes[c].parent = none
		}
		f.nodes[r].left = none
		sub := f.join3(l, m, c)
		f.setLeft(r, sub)
		return f.rebalance(r)
	default:
		f.setLeft(m, l)
		f.setRight(m, r)
		f.nodes[m].parent = none
		f.update(m)
		return m
	}
}

// detachMin removes the first element of the tree rooted at t, returning
// the detached node and the root of the remaining tree (none if t was a
// singleton).
func (f *Forest[K]) detachMin(t int) (m, rest int) {
	m = f.leftmost(t)
	p := f.nodes[m].parent
	r := f.nodes[m].right
	if r != none {
		f.nodes[r].parent = none
	}
	f.nodes[m].right = none
	f.nodes[m].parent = none
	f.update(m)
	if p == none {
		return m, r
	}
	f.setLeft(p, r)
	return m, f.rebalanceUp(p)
}
