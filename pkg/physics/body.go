// pkg/physics/body.go
package physics

import "math"

// Body is a dynamic rigid body: a point mass with orientation, tracking
// accumulated force and torque for the next integration step. Rotation is
// stored unnormalized; callers that need a heading in [0, 2*pi) should use
// NormalizeAngle on read rather than normalizing the stored value, since
// normalizing in place would discontinuously jump the angle and corrupt
// angular velocity semantics.
type Body struct {
	Position                Vector2D
	Velocity                Vector2D
	Rotation                float64
	AngularVelocity         float64
	Mass                    float64
	InvPrincipalInertiaSqrt float64
	CCD                     bool

	Force  Vector2D
	Torque float64
}

// Inertia returns the body's principal moment of inertia. A body with an
// InvPrincipalInertiaSqrt of 0 is treated as having infinite inertia
// (never rotates under applied torque), matching asteroids and targets.
func (b *Body) Inertia() float64 {
	if b.InvPrincipalInertiaSqrt == 0 {
		return math.Inf(1)
	}
	return 1 / (b.InvPrincipalInertiaSqrt * b.InvPrincipalInertiaSqrt)
}

// ResetForce zeroes the force accumulator.
func (b *Body) ResetForce() { b.Force = Vector2D{} }

// AddForce accumulates a world-frame force.
func (b *Body) AddForce(f Vector2D) { b.Force = b.Force.Add(f) }

// ResetTorque zeroes the torque accumulator.
func (b *Body) ResetTorque() { b.Torque = 0 }

// AddTorque accumulates a scalar torque.
func (b *Body) AddTorque(t float64) { b.Torque += t }

// NormalizeAngle wraps an angle (radians) into [0, 2*pi).
func NormalizeAngle(a float64) float64 {
	const twoPi = 2 * math.Pi
	a = math.Mod(a, twoPi)
	if a < 0 {
		a += twoPi
	}
	return a
}
