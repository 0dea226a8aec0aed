// Package stream exposes a detector over a live update feed. Each
// websocket connection gets its own detector; every inbound text frame is
// one update record in the wire format of the JSON update stream, and is
// answered with the status transitions the update caused plus the current
// partition sizes. A Prometheus registry counts updates and transitions.
//
// The response scan is linear in the number of vertices seen so far, which
// is fine for the interactive use this endpoint exists for; bulk runs go
// through the driver binaries instead.
package stream
