package stategraph

import (
	"slices"
	"sort"
)

// Detector is the contract implemented by every detector.
//
// The mutating methods are unchecked: AddEdgeUnchecked may assume the
// source is open and the edge is not a self-loop, and the two mark methods
// may assume their vertex is open. Callers go through the guarded
// package-level functions, which enforce those preconditions and drop
// redundant updates, so that all detectors agree on which updates take
// effect.
type Detector interface {
	AddEdgeUnchecked(u, v int)
	MarkClosedUnchecked(v int)
	MarkLiveUnchecked(v int)

	// Status returns the classification of v; ok is false if v has never
	// been part of an update that took effect.
	Status(v int) (st Status, ok bool)

	// States returns every vertex key the detector has seen, including
	// aliases merged into another vertex.
	States() []int

	// Work and Space return abstract cost counters: loop iterations and
	// retained cells, each up to a constant.
	Work() int
	Space() int
}

// StatusOrOpen returns v's status, defaulting unseen vertices to Open.
func StatusOrOpen(d Detector, v int) Status {
	st, ok := d.Status(v)
	if !ok {
		return Open
	}
	return st
}

// IsOpen reports whether v is open. Unseen vertices count as open.
func IsOpen(d Detector, v int) bool { return StatusOrOpen(d, v) == Open }

// IsClosed reports whether v is closed (unknown, live or dead).
func IsClosed(d Detector, v int) bool { return !IsOpen(d, v) }

// IsLive reports whether v is live.
func IsLive(d Detector, v int) bool { return StatusOrOpen(d, v) == Live }

// IsDead reports whether v is dead.
func IsDead(d Detector, v int) bool { return StatusOrOpen(d, v) == Dead }

// IsUnknown reports whether v is closed but undecided.
func IsUnknown(d Detector, v int) bool { return StatusOrOpen(d, v) == Unknown }

// AddEdge adds the edge u -> v if u is still open and the edge is not a
// self-loop. Edges out of closed vertices are dropped: a closed vertex has
// committed to its outgoing edges.
func AddEdge(d Detector, u, v int) {
	if IsOpen(d, u) && u != v {
		d.AddEdgeUnchecked(u, v)
	}
}

// MarkClosed closes v. Closing an already closed (or live) vertex is a
// no-op.
func MarkClosed(d Detector, v int) {
	if IsOpen(d, v) {
		d.MarkClosedUnchecked(v)
	}
}

// MarkLive marks v accepting and closes it. Marking a closed vertex is a
// no-op.
func MarkLive(d Detector, v int) {
	if IsOpen(d, v) {
		d.MarkLiveUnchecked(v)
	}
}

// Apply dispatches one update record through the guarded operations.
func Apply(d Detector, u Update) {
	switch u.Op {
	case OpAdd:
		AddEdge(d, u.U, u.V)
	case OpClose:
		MarkClosed(d, u.U)
	case OpLive:
		MarkLive(d, u.U)
	}
}

// Snapshot partitions a set of vertices by classification. Each slice is
// sorted ascending; the JSON form is the result document of the driver.
type Snapshot struct {
	Live    []int `json:"live"`
	Dead    []int `json:"dead"`
	Unknown []int `json:"unknown"`
	Open    []int `json:"open"`
}

// Collect classifies every vertex in states, defaulting unseen vertices to
// Open. Duplicates in states are collapsed.
func Collect(d Detector, states []int) *Snapshot {
	states = slices.Clone(states)
	sort.Ints(states)
	states = slices.Compact(states)
	out := &Snapshot{
		Live:    []int{},
		Dead:    []int{},
		Unknown: []int{},
		Open:    []int{},
	}
	for _, v := range states {
		switch StatusOrOpen(d, v) {
		case Live:
			out.Live = append(out.Live, v)
		case Dead:
			out.Dead = append(out.Dead, v)
		case Unknown:
			out.Unknown = append(out.Unknown, v)
		case Open:
			out.Open = append(out.Open, v)
		}
	}
	return out
}

// Take partitions everything the detector has seen.
func Take(d Detector) *Snapshot {
	return Collect(d, d.States())
}

// Equal reports whether two snapshots contain the same partition.
func (s *Snapshot) Equal(o *Snapshot) bool {
	return slices.Equal(s.Live, o.Live) &&
		slices.Equal(s.Dead, o.Dead) &&
		slices.Equal(s.Unknown, o.Unknown) &&
		slices.Equal(s.Open, o.Open)
}
