package algorithm

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/gidgo/internal/stategraph"
)

var detectors = []struct {
	name string
	make func() stategraph.Detector
}{
	{"naive", func() stategraph.Detector { return NewNaive() }},
	{"simple", func() stategraph.Detector { return NewSimple() }},
	{"bfgt", func() stategraph.Detector { return NewBFGT() }},
	{"log", func() stategraph.Detector { return NewLog() }},
	{"jump", func() stategraph.Detector { return NewJump() }},
}

func apply(d stategraph.Detector, updates []stategraph.Update) {
	for _, u := range updates {
		stategraph.Apply(d, u)
	}
}

func states(updates []stategraph.Update) []int {
	seen := map[int]bool{}
	var out []int
	for _, u := range updates {
		for _, v := range u.Touches() {
			if !seen[v] {
				seen[v] = true
				out = append(out, v)
			}
		}
	}
	return out
}

func run(d stategraph.Detector, updates []stategraph.Update) *stategraph.Snapshot {
	apply(d, updates)
	return stategraph.Collect(d, states(updates))
}

func add(u, v int) stategraph.Update { return stategraph.AddEdgeUpdate(u, v) }
func cls(u int) stategraph.Update    { return stategraph.CloseUpdate(u) }
func live(u int) stategraph.Update   { return stategraph.LiveUpdate(u) }

func TestScenarios(t *testing.T) {
	scenarios := []struct {
		name    string
		updates []stategraph.Update
		want    stategraph.Snapshot
	}{
		{
			name:    "dead chain behind open vertex",
			updates: []stategraph.Update{add(0, 1), add(1, 2), cls(1), cls(2)},
			want:    stategraph.Snapshot{Live: []int{}, Dead: []int{1, 2}, Unknown: []int{}, Open: []int{0}},
		},
		{
			name: "mixed partition",
			updates: []stategraph.Update{
				add(2, 3), cls(2), live(1), add(0, 1), add(1, 2), cls(1), add(3, 4), cls(4),
			},
			want: stategraph.Snapshot{Live: []int{0, 1}, Dead: []int{4}, Unknown: []int{2}, Open: []int{3}},
		},
		{
			name: "line with accepting head",
			updates: []stategraph.Update{
				add(0, 1), add(1, 2), add(2, 3), live(3), cls(2), cls(1), cls(0),
			},
			want: stategraph.Snapshot{Live: []int{0, 1, 2, 3}, Dead: []int{}, Unknown: []int{}, Open: []int{}},
		},
		{
			name:    "closed two-cycle dies",
			updates: []stategraph.Update{add(0, 1), add(1, 0), cls(0), cls(1)},
			want:    stategraph.Snapshot{Live: []int{}, Dead: []int{0, 1}, Unknown: []int{}, Open: []int{}},
		},
		{
			name: "cycle with escape to accepting vertex",
			updates: []stategraph.Update{
				add(0, 1), add(1, 0), add(1, 2), live(2), cls(0), cls(1),
			},
			want: stategraph.Snapshot{Live: []int{0, 1, 2}, Dead: []int{}, Unknown: []int{}, Open: []int{}},
		},
		{
			name: "complete bipartite with accepting right side",
			updates: func() []stategraph.Update {
				var u []stategraph.Update
				for i := 0; i < 3; i++ {
					for j := 3; j < 6; j++ {
						u = append(u, add(i, j))
					}
				}
				for j := 3; j < 6; j++ {
					u = append(u, live(j))
				}
				return u
			}(),
			want: stategraph.Snapshot{Live: []int{0, 1, 2, 3, 4, 5}, Dead: []int{}, Unknown: []int{}, Open: []int{}},
		},
		{
			name:    "isolated close is dead",
			updates: []stategraph.Update{cls(5)},
			want:    stategraph.Snapshot{Live: []int{}, Dead: []int{5}, Unknown: []int{}, Open: []int{}},
		},
		{
			name:    "self-loops and duplicates are inert",
			updates: []stategraph.Update{add(0, 0), add(0, 1), add(0, 1), cls(0), cls(0), cls(1), cls(1)},
			want:    stategraph.Snapshot{Live: []int{}, Dead: []int{0, 1}, Unknown: []int{}, Open: []int{}},
		},
		{
			name: "nested cycles collapse and die",
			updates: []stategraph.Update{
				add(0, 1), add(1, 2), add(2, 0), add(2, 3), add(3, 2),
				cls(0), cls(1), cls(2), cls(3),
			},
			want: stategraph.Snapshot{Live: []int{}, Dead: []int{0, 1, 2, 3}, Unknown: []int{}, Open: []int{}},
		},
		{
			name: "liveness reaches a closed cycle",
			updates: []stategraph.Update{
				add(0, 1), add(1, 0), add(1, 2), cls(0), cls(1), live(2),
			},
			want: stategraph.Snapshot{Live: []int{0, 1, 2}, Dead: []int{}, Unknown: []int{}, Open: []int{}},
		},
	}

	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			for _, d := range detectors {
				got := run(d.make(), sc.updates)
				assert.True(t, sc.want.Equal(got),
					"%s: got %+v, want %+v", d.name, got, sc.want)
			}
		})
	}
}

func TestStatusOfUnseenVertex(t *testing.T) {
	for _, d := range detectors {
		t.Run(d.name, func(t *testing.T) {
			det := d.make()
			_, ok := det.Status(42)
			assert.False(t, ok)
			assert.Equal(t, stategraph.Open, stategraph.StatusOrOpen(det, 42))
		})
	}
}

func TestLiveAndDeadAreFinal(t *testing.T) {
	// Monotonicity: once a detector reports Live or Dead for a vertex, no
	// later update may change that report.
	updates := randomStream(400, 40, 7)
	for _, d := range detectors {
		t.Run(d.name, func(t *testing.T) {
			det := d.make()
			final := map[int]stategraph.Status{}
			for _, u := range updates {
				stategraph.Apply(det, u)
				for _, v := range det.States() {
					now := stategraph.StatusOrOpen(det, v)
					if prev, ok := final[v]; ok {
						require.Equal(t, prev, now, "vertex %d flipped from %s to %s", v, prev, now)
					} else if now == stategraph.Live || now == stategraph.Dead {
						final[v] = now
					}
				}
			}
		})
	}
}

func TestClosedNeverReopens(t *testing.T) {
	updates := randomStream(300, 30, 11)
	for _, d := range detectors {
		t.Run(d.name, func(t *testing.T) {
			det := d.make()
			closed := map[int]bool{}
			for _, u := range updates {
				stategraph.Apply(det, u)
				for _, v := range det.States() {
					if stategraph.IsClosed(det, v) {
						closed[v] = true
					} else {
						require.False(t, closed[v], "vertex %d reopened", v)
					}
				}
			}
		})
	}
}

// randomStream builds a deterministic update stream over n vertices.
func randomStream(length, n int, seed int64) []stategraph.Update {
	rng := rand.New(rand.NewSource(seed))
	var out []stategraph.Update
	for i := 0; i < length; i++ {
		switch r := rng.Intn(10); {
		case r < 6:
			out = append(out, add(rng.Intn(n), rng.Intn(n)))
		case r < 9:
			out = append(out, cls(rng.Intn(n)))
		default:
			out = append(out, live(rng.Intn(n)))
		}
	}
	return out
}

func TestAgreementOnRandomStreams(t *testing.T) {
	// All five detectors produce identical partitions on the same stream.
	for seed := int64(1); seed <= 20; seed++ {
		seed := seed
		t.Run(fmt.Sprintf("seed_%d", seed), func(t *testing.T) {
			updates := randomStream(500, 25, seed)
			want := run(NewNaive(), updates)
			for _, d := range detectors[1:] {
				got := run(d.make(), updates)
				require.True(t, want.Equal(got),
					"%s disagrees with naive on seed %d:\n naive: %+v\n %s: %+v",
					d.name, seed, want, d.name, got)
			}
		})
	}
}

func TestAgreementDenseStreams(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		updates := randomStream(1200, 12, seed+100)
		want := run(NewNaive(), updates)
		for _, d := range detectors[1:] {
			got := run(d.make(), updates)
			require.True(t, want.Equal(got), "%s disagrees on dense seed %d", d.name, seed)
		}
	}
}

func TestCommutingAddsReorder(t *testing.T) {
	// Reordering two adds with disjoint endpoints leaves the final
	// partition unchanged.
	base := []stategraph.Update{
		add(0, 1), add(2, 3), add(1, 2), cls(1), live(3), cls(0), cls(2),
	}
	swapped := append([]stategraph.Update{}, base...)
	swapped[0], swapped[1] = swapped[1], swapped[0]

	for _, d := range detectors {
		t.Run(d.name, func(t *testing.T) {
			a := run(d.make(), base)
			b := run(d.make(), swapped)
			assert.True(t, a.Equal(b), "reordered adds changed the partition")
		})
	}
}

func TestIdempotentUpdates(t *testing.T) {
	// Repeating any update leaves the final partition unchanged.
	base := []stategraph.Update{
		add(0, 1), add(1, 2), live(2), cls(1), cls(0), add(3, 0), cls(3),
	}
	var tripled []stategraph.Update
	for _, u := range base {
		tripled = append(tripled, u, u, u)
	}
	for _, d := range detectors {
		t.Run(d.name, func(t *testing.T) {
			a := run(d.make(), base)
			b := run(d.make(), tripled)
			assert.True(t, a.Equal(b), "repeated updates changed the partition")
		})
	}
}

func TestWorkAndSpaceCountersAdvance(t *testing.T) {
	for _, d := range detectors {
		det := d.make()
		apply(det, []stategraph.Update{add(0, 1), cls(0), cls(1)})
		assert.Positive(t, det.Work(), "%s work counter", d.name)
		assert.Positive(t, det.Space(), "%s space counter", d.name)
	}
}
