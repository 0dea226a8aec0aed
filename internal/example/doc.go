// Package example models one test case for the detectors: an ordered
// update stream, optionally paired with the expected final partition. It
// owns the on-disk JSON layout (<name>_in.json and <name>_expect.json) and
// the deadline-bounded run loop used by the driver.
package example
