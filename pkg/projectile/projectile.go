// Package projectile declares the contract the ship core uses to spawn
// bullets and debris. The projectile subsystem itself — flight, collision,
// damage application — is an external collaborator; this package only
// states the shape of a creation call and provides an in-memory Factory
// suitable for tests and the bundled demo.
package projectile

import "github.com/opd-ai/shipcore/pkg/physics"

// Color is an RGBA color in [0,1], used only for the bundled demo's visual
// feedback; it has no effect on simulation state.
type Color struct {
	R, G, B, A float64
}

// Spec describes a single projectile at the moment of creation.
type Spec struct {
	Damage float64
	Team   int
	Color  Color
	TTL    float64
}

// Factory creates a projectile. Create is synchronous and infallible, per
// the external-interface contract: callers never branch on its result.
type Factory interface {
	Create(world *physics.World, x, y, vx, vy float64, spec Spec)
}

// Record is one projectile creation captured by InMemoryFactory.
type Record struct {
	Position physics.Vector2D
	Velocity physics.Vector2D
	Spec     Spec
}

// InMemoryFactory accumulates creation records instead of handing them to a
// real projectile subsystem. It is the default Factory used by the bundled
// simulation runner and by tests that assert on emitted projectiles.
type InMemoryFactory struct {
	Created []Record
}

// NewInMemoryFactory creates an empty InMemoryFactory.
func NewInMemoryFactory() *InMemoryFactory {
	return &InMemoryFactory{}
}

// Create appends a Record. world is accepted to match the real factory's
// signature (a production implementation would insert a body for the
// projectile) but is unused by this in-memory stand-in.
func (f *InMemoryFactory) Create(world *physics.World, x, y, vx, vy float64, spec Spec) {
	f.Created = append(f.Created, Record{
		Position: physics.Vector2D{X: x, Y: y},
		Velocity: physics.Vector2D{X: vx, Y: vy},
		Spec:     spec,
	})
}

// Reset clears the recorded creations, useful between ticks in tests that
// assert per-tick emission counts.
func (f *InMemoryFactory) Reset() {
	f.Created = f.Created[:0]
}
