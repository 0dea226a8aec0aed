// Package stategraph defines the contract shared by the dead-state
// detectors: the vertex status lattice, the update records of the input
// stream, the detector interface, and the guarded operations that validate
// an update stream before handing it to an implementation.
//
// A detector tracks a growing directed graph in which some vertices are
// closed (they will receive no further outgoing edges) and some are live
// (accepting, and implicitly closed). After every update each vertex is
// classified: Live if it can reach a live vertex, Dead if everything
// reachable from it is closed and not live, Unknown if it is closed but not
// yet decided, and Open otherwise. Live and Dead are final.
package stategraph
