// Package avlforest maintains a forest of balanced AVL trees over ordered
// sequences. Unlike a keyed AVL tree, nodes are ordered by position only;
// the forest supports splitting a sequence after an element, concatenating
// two sequences, and rank queries, all in O(log n).
//
// Nodes live in an arena of slots addressed by integer indices; a
// hash-indexed cell store interns element keys to slots and recycles slots
// through a free list. This keeps the parent/child pointer cycles of the
// tree out of the ownership graph.
//
// The structure is the sequence layer behind Euler-tour trees in the style
// of Henzinger and King (JACM 1999).
package avlforest
