// Package driver runs update streams against the detectors: it selects an
// algorithm by name, feeds an example through it under a wall-clock
// timeout, and compares the resulting partition with the expectation.
// The CLI binaries are thin wrappers around this package.
package driver
