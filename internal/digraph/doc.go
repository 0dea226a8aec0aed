// Package digraph implements the labeled directed multigraph shared by all
// detector implementations.
//
// Vertices are identified by caller-supplied integer keys and labeled with a
// per-detector value. Edges can be recorded in the forward direction, the
// backward direction, or both; the directions are kept separately because
// some detectors (jump, bfgt) defer forward edges while recording backward
// edges eagerly. Two vertices can be merged in O(1): keys map to canonical
// identifiers through a union-find, and adjacency lists are linked lists
// whose merge is a tail splice. Self-loops produced by merging are filtered
// out at iteration time; duplicate edges are retained.
package digraph
