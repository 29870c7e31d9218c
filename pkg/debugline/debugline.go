// Package debugline declares the contract for emitting debug geometry from
// the simulation — muzzle traces, radar cones, and the like. The actual
// renderer/collector is an external collaborator; this package states the
// call shape and a no-op default.
package debugline

import "github.com/opd-ai/shipcore/pkg/physics"

// Color is an RGBA color in [0,1].
type Color struct {
	R, G, B, A float64
}

// Emitter receives debug line segments. Calls are synchronous and
// infallible.
type Emitter interface {
	Line(from, to physics.Vector2D, color Color)
}

// NoopEmitter discards every line. It is the default for simulations that
// don't need visual debugging.
type NoopEmitter struct{}

// Line is a no-op.
func (NoopEmitter) Line(from, to physics.Vector2D, color Color) {}
