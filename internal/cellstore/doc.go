// Package cellstore provides a hash-indexed cell store: a mapping from
// logical identifiers to dense slot indices. Slots are handed out in order;
// a released slot goes on a free list and is reused before the store
// grows. It backs arena
// allocation in the AVL sequence forest and identifier interning in the
// digraph substrate, so that cyclic pointer structures can be expressed
// with integer indices instead of references.
package cellstore
