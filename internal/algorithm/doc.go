// Package algorithm contains the detector implementations behind the
// stategraph contract.
//
// Five detectors share the interface and differ in strategy:
//
//   - Naive recomputes the dead set from scratch after every close and
//     propagates liveness backward when a vertex becomes live.
//   - Simple merges cycles with the digraph's union-find when a vertex
//     closes and propagates liveness and deadness along reverse edges.
//   - BFGT maintains strongly connected components incrementally with
//     topological level labels, after Bender, Fineman, Gilbert and Tarjan,
//     "A new approach to incremental cycle detection and related problems"
//     (TALG 2015), section 4.1.
//   - Log keeps one canonical out-edge per undecided vertex; the canonical
//     edges form a forest maintained in an Euler-tour structure, giving
//     amortized O(log n) per update.
//   - Jump replaces the Euler-tour forest with lazily repaired jump lists,
//     trading the worst-case bound for better constants.
//
// All detectors classify identically on every update stream; the tests
// compare them against each other, and the run_compare binary checks each
// one against an example's expected partition.
package algorithm
