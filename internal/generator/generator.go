package generator

import (
	"fmt"
	"math/rand"

	"github.com/vk/gidgo/internal/example"
	"github.com/vk/gidgo/internal/stategraph"
)

func rangeInts(lo, hi int) []int {
	out := make([]int, 0, hi-lo)
	for i := lo; i < hi; i++ {
		out = append(out, i)
	}
	return out
}

func named(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// Line is a path 0 -> 1 -> ... -> n, fully closed: everything is dead.
func Line(n int) *example.Example {
	var in example.Input
	for i := 0; i < n; i++ {
		in = append(in, stategraph.AddEdgeUpdate(i, i+1), stategraph.CloseUpdate(i))
	}
	in = append(in, stategraph.CloseUpdate(n))
	return &example.Example{
		Name:  named("line_%d", n),
		Input: in,
		Expected: &example.Output{
			Live: []int{}, Dead: rangeInts(0, n+1), Unknown: []int{}, Open: []int{},
		},
	}
}

// UnkLine is Line with the last vertex left open: nothing is decided.
func UnkLine(n int) *example.Example {
	var in example.Input
	for i := 0; i < n; i++ {
		in = append(in, stategraph.AddEdgeUpdate(i, i+1), stategraph.CloseUpdate(i))
	}
	return &example.Example{
		Name:  named("unkline_%d", n),
		Input: in,
		Expected: &example.Output{
			Live: []int{}, Dead: []int{}, Unknown: rangeInts(0, n), Open: []int{n},
		},
	}
}

// ReverseLine builds the path from the far end first, so every close
// arrives before the closed vertex's successor exists.
func ReverseLine(n int) *example.Example {
	var in example.Input
	for i := n - 1; i >= 0; i-- {
		in = append(in, stategraph.AddEdgeUpdate(i, i+1), stategraph.CloseUpdate(i))
	}
	in = append(in, stategraph.CloseUpdate(n))
	return &example.Example{
		Name:  named("reverseline_%d", n),
		Input: in,
		Expected: &example.Output{
			Live: []int{}, Dead: rangeInts(0, n+1), Unknown: []int{}, Open: []int{},
		},
	}
}

// LiveLine is a closed path whose head is accepting: everything is live.
func LiveLine(n int) *example.Example {
	var in example.Input
	for i := 0; i < n; i++ {
		in = append(in, stategraph.AddEdgeUpdate(i, i+1))
	}
	in = append(in, stategraph.LiveUpdate(n))
	for i := n - 1; i >= 0; i-- {
		in = append(in, stategraph.CloseUpdate(i))
	}
	return &example.Example{
		Name:  named("liveline_%d", n),
		Input: in,
		Expected: &example.Output{
			Live: rangeInts(0, n+1), Dead: []int{}, Unknown: []int{}, Open: []int{},
		},
	}
}

// Loop is a closed cycle of n vertices: one dead component.
func Loop(n int) *example.Example {
	var in example.Input
	for i := 0; i < n; i++ {
		in = append(in, stategraph.AddEdgeUpdate(i, (i+1)%n), stategraph.CloseUpdate(i))
	}
	return &example.Example{
		Name:  named("loop_%d", n),
		Input: in,
		Expected: &example.Output{
			Live: []int{}, Dead: rangeInts(0, n), Unknown: []int{}, Open: []int{},
		},
	}
}

// UnkLoop is Loop with an extra escape edge to an open vertex: the whole
// cycle stays unknown.
func UnkLoop(n int) *example.Example {
	var in example.Input
	for i := 0; i < n; i++ {
		in = append(in, stategraph.AddEdgeUpdate(i, (i+1)%n))
		if i == 0 {
			in = append(in, stategraph.AddEdgeUpdate(i, n))
		}
		in = append(in, stategraph.CloseUpdate(i))
	}
	return &example.Example{
		Name:  named("unkloop_%d", n),
		Input: in,
		Expected: &example.Output{
			Live: []int{}, Dead: []int{}, Unknown: rangeInts(0, n), Open: []int{n},
		},
	}
}

// Complete is the complete digraph on n closed vertices: one dead clique.
func Complete(n int) *example.Example {
	var in example.Input
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				in = append(in, stategraph.AddEdgeUpdate(i, j))
			}
		}
		in = append(in, stategraph.CloseUpdate(i))
	}
	return &example.Example{
		Name:  named("complete_%d", n),
		Input: in,
		Expected: &example.Output{
			Live: []int{}, Dead: rangeInts(0, n), Unknown: []int{}, Open: []int{},
		},
	}
}

// UnkComplete adds edges from every clique member to an open vertex n.
func UnkComplete(n int) *example.Example {
	var in example.Input
	for i := 0; i < n; i++ {
		for j := 0; j <= n; j++ {
			if i != j {
				in = append(in, stategraph.AddEdgeUpdate(i, j))
			}
		}
		in = append(in, stategraph.CloseUpdate(i))
	}
	return &example.Example{
		Name:  named("unkcomplete_%d", n),
		Input: in,
		Expected: &example.Output{
			Live: []int{}, Dead: []int{}, Unknown: rangeInts(0, n), Open: []int{n},
		},
	}
}

// CompleteAcyclic orients the complete graph by vertex order, so the
// closed subgraph never contains a cycle.
func CompleteAcyclic(n int) *example.Example {
	var in example.Input
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			in = append(in, stategraph.AddEdgeUpdate(i, j))
		}
		in = append(in, stategraph.CloseUpdate(i))
	}
	return &example.Example{
		Name:  named("completeacyclic_%d", n),
		Input: in,
		Expected: &example.Output{
			Live: []int{}, Dead: rangeInts(0, n), Unknown: []int{}, Open: []int{},
		},
	}
}

// Bipartite connects every left vertex to every right vertex and closes
// both sides: all dead.
func Bipartite(m, n int) *example.Example {
	var in example.Input
	for i := 0; i < m; i++ {
		for j := m; j < m+n; j++ {
			in = append(in, stategraph.AddEdgeUpdate(i, j))
		}
		in = append(in, stategraph.CloseUpdate(i))
	}
	for j := m; j < m+n; j++ {
		in = append(in, stategraph.CloseUpdate(j))
	}
	return &example.Example{
		Name:  named("bipartite_%d_%d", m, n),
		Input: in,
		Expected: &example.Output{
			Live: []int{}, Dead: rangeInts(0, m+n), Unknown: []int{}, Open: []int{},
		},
	}
}

// LiveBipartite marks the whole right side accepting: all live.
func LiveBipartite(m, n int) *example.Example {
	var in example.Input
	for i := 0; i < m; i++ {
		for j := m; j < m+n; j++ {
			in = append(in, stategraph.AddEdgeUpdate(i, j))
		}
		in = append(in, stategraph.CloseUpdate(i))
	}
	for j := m; j < m+n; j++ {
		in = append(in, stategraph.LiveUpdate(j))
	}
	return &example.Example{
		Name:  named("livebipartite_%d_%d", m, n),
		Input: in,
		Expected: &example.Output{
			Live: rangeInts(0, m+n), Dead: []int{}, Unknown: []int{}, Open: []int{},
		},
	}
}

// UnkBipartite leaves one extra right-side vertex open, keeping the left
// side undecided while the closed right side dies.
func UnkBipartite(m, n int) *example.Example {
	var in example.Input
	for i := 0; i < m; i++ {
		for j := m; j <= m+n; j++ {
			in = append(in, stategraph.AddEdgeUpdate(i, j))
		}
		in = append(in, stategraph.CloseUpdate(i))
	}
	for j := m; j < m+n; j++ {
		in = append(in, stategraph.CloseUpdate(j))
	}
	return &example.Example{
		Name:  named("unkbipartite_%d_%d", m, n),
		Input: in,
		Expected: &example.Output{
			Live: []int{}, Dead: rangeInts(m, m+n), Unknown: rangeInts(0, m), Open: []int{m + n},
		},
	}
}

// Sparse generates a graph with constant out-degree: vertices 0..n-1 each
// get deg random out-edges into 0..n and close; vertex n stays open. No
// expectation is attached; the detectors are checked against each other.
func Sparse(n, deg int, seed int64) *example.Example {
	rng := rand.New(rand.NewSource(seed))
	var in example.Input
	for u := 0; u < n; u++ {
		for k := 0; k < deg; k++ {
			in = append(in, stategraph.AddEdgeUpdate(u, rng.Intn(n+1)))
		}
		in = append(in, stategraph.CloseUpdate(u))
	}
	return &example.Example{
		Name:  named("sparse_%d_%d_%d", n, deg, seed),
		Input: in,
	}
}

// Dense generates an Erdős–Rényi–Gilbert graph: each ordered pair gets an
// edge independently with the given percent probability.
func Dense(n, percent int, seed int64) *example.Example {
	rng := rand.New(rand.NewSource(seed))
	var in example.Input
	for u := 0; u < n; u++ {
		for v := 0; v <= n; v++ {
			if rng.Intn(100) < percent {
				in = append(in, stategraph.AddEdgeUpdate(u, v))
			}
		}
		in = append(in, stategraph.CloseUpdate(u))
	}
	return &example.Example{
		Name:  named("dense_%d_%d_%d", n, percent, seed),
		Input: in,
	}
}
