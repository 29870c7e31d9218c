// pkg/simulation/actuator.go
package simulation

import (
	"github.com/opd-ai/shipcore/pkg/physics"
	"github.com/opd-ai/shipcore/pkg/ship"
)

// Actuator is the sole read/write facade onto one ship for the duration of
// its actuator-phase step. At most one Actuator per ship is live at a time,
// which is what prevents simultaneous mutable aliasing of the same ship's
// data through disjoint code paths in a single-threaded tick.
type Actuator struct {
	sim    *Simulation
	handle ship.Handle
}

// Actuator returns a facade for handle, or false if the handle does not
// resolve to a live body and data entry.
func (s *Simulation) Actuator(handle ship.Handle) (*Actuator, bool) {
	if _, ok := s.World.Body(handle); !ok {
		return nil, false
	}
	if _, ok := s.Store.Get(handle); !ok {
		return nil, false
	}
	return &Actuator{sim: s, handle: handle}, true
}

// Handle returns the ship handle this accessor was built for.
func (a *Actuator) Handle() ship.Handle { return a.handle }

// Body returns the backing rigid body.
func (a *Actuator) Body() *physics.Body {
	b, _ := a.sim.World.Body(a.handle)
	return b
}

// Position returns the body's world position.
func (a *Actuator) Position() physics.Vector2D { return a.Body().Position }

// Velocity returns the body's linear velocity.
func (a *Actuator) Velocity() physics.Vector2D { return a.Body().Velocity }

// Heading returns the body's rotation normalized to [0, 2*pi).
func (a *Actuator) Heading() float64 { return physics.NormalizeAngle(a.Body().Rotation) }

// AngularVelocity returns the body's angular velocity.
func (a *Actuator) AngularVelocity() float64 { return a.Body().AngularVelocity }

// Data returns the ship's data-store entry.
func (a *Actuator) Data() *ship.Data {
	d, _ := a.sim.Store.Get(a.handle)
	return d
}

// Radar returns the ship's radar configuration, or nil if it has none.
func (a *Actuator) Radar() *ship.Radar {
	return a.Data().Radar
}

// Accelerate clamps v component-wise to the ship's max acceleration (body
// frame) and stores it as the pending acceleration for the next integrator
// pass.
func (a *Actuator) Accelerate(v physics.Vector2D) {
	max := a.Data().MaxAcceleration
	a.Data().Acceleration = physics.Vector2D{
		X: clamp(v.X, -max.X, max.X),
		Y: clamp(v.Y, -max.Y, max.Y),
	}
}

// Torque clamps a to the ship's max angular acceleration and stores it as
// the pending angular acceleration for the next integrator pass.
func (a *Actuator) Torque(angularAcceleration float64) {
	max := a.Data().MaxAngularAcceleration
	a.Data().AngularAcceleration = clamp(angularAcceleration, -max, max)
}

// AimGun sets the aim angle of gun i, relative to ship heading. An
// out-of-range index is a silent no-op, since control programs must
// tolerate class-dependent armaments.
func (a *Actuator) AimGun(i int, angle float64) {
	guns := a.Data().Guns
	if i < 0 || i >= len(guns) {
		return
	}
	guns[i].Angle = angle
}

// FireGun fires gun i. See fireGun in gunfire.go for the full algorithm.
func (a *Actuator) FireGun(i int) {
	a.sim.fireGun(a, i)
}

// LaunchMissile launches from missile/torpedo bay i with the given orders
// payload. See launchMissile in missile.go for the full algorithm.
func (a *Actuator) LaunchMissile(i int, orders []byte) (ship.Handle, error) {
	return a.sim.launchMissile(a, i, orders)
}

// Explode marks the ship destroyed and emits its debris fan. See explode.go.
func (a *Actuator) Explode() {
	a.sim.explode(a)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
