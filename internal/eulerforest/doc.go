// Package eulerforest implements O(log n) connectivity for a dynamic
// forest, following Henzinger and King's Euler tour trees.
//
// Every tree in the forest is represented by a balanced sequence of
// occurrences: one anchor occurrence per vertex and two directed half-edge
// occurrences per tree edge. Linking splices one tour into another at the
// anchors; cutting splits the tour at the two half-edges of the removed
// edge, frees their occurrences, and reconnects the outer pieces. Two
// vertices are connected exactly when their anchors share a sequence.
package eulerforest
