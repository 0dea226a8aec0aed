// Package generator produces the benchmark corpus: structured example
// families (lines, loops, complete and bipartite graphs, each with a
// variant that leaves one reachable vertex open) and seeded random graphs.
// Structured families carry their expected partition; random ones do not,
// and are checked by detector agreement instead.
//
// Which families and sizes to emit is declared in an HCL suite file; a
// built-in default suite is used when no file is given.
package generator
