// pkg/simulation/integrator.go
package simulation

import (
	"math"

	"github.com/opd-ai/shipcore/pkg/event"
	"github.com/opd-ai/shipcore/pkg/physics"
	"github.com/opd-ai/shipcore/pkg/ship"
)

// Step advances the simulation by one tick: an actuator phase that runs
// every live ship's Controller, followed by the per-tick integrator, a
// single batched physics step, and a registry flush that admits ships
// spawned during this tick into the next one's iteration.
//
// The whole call executes on one logical thread with no suspension points,
// matching the single-threaded cooperative scheduling model: there is no
// locking anywhere in this path because there is no parallelism to guard
// against.
func (s *Simulation) Step() {
	s.tickRunning = true
	defer func() { s.tickRunning = false }()

	snapshot := s.Registry.Snapshot()

	for _, handle := range snapshot {
		controller, ok := s.controllers[handle]
		if !ok {
			continue
		}
		actuator, ok := s.Actuator(handle)
		if !ok {
			continue
		}
		controller.Step(actuator)
	}

	dt := s.tickLength()
	for _, handle := range snapshot {
		s.integrateOne(handle, dt)
	}

	s.World.Step(dt)
	s.Registry.Flush()
	s.tick++

	s.Events.Publish(event.NewTickEvent(s, s.tick))
}

// integrateOne runs the five per-tick integrator sub-steps, in the exact
// order the determinism contract requires, for a single ship.
func (s *Simulation) integrateOne(handle ship.Handle, dt float64) {
	data, ok := s.Store.Get(handle)
	if !ok {
		return
	}
	body, ok := s.World.Body(handle)
	if !ok {
		return
	}

	// 1. Reload decay.
	for i := range data.Guns {
		g := &data.Guns[i]
		g.ReloadTimeRemaining = maxFloat(0, g.ReloadTimeRemaining-dt)
	}
	for i := range data.MissileLaunchers {
		l := &data.MissileLaunchers[i]
		l.ReloadTimeRemaining = maxFloat(0, l.ReloadTimeRemaining-dt)
	}

	// 2. Linear force.
	worldForce := data.Acceleration.Rotate(body.Rotation).Scale(body.Mass)
	body.ResetForce()
	body.AddForce(worldForce)
	data.Acceleration = physics.Vector2D{}

	// 3. Torque.
	inertia := body.Inertia()
	var torque float64
	if !math.IsInf(inertia, 1) {
		torque = data.AngularAcceleration * inertia
	}
	body.ResetTorque()
	body.AddTorque(torque)
	data.AngularAcceleration = 0

	// 4. TTL.
	if data.TTL != nil {
		*data.TTL--
		if *data.TTL == 0 {
			if actuator, ok := s.Actuator(handle); ok {
				s.explode(actuator)
			}
		}
	}

	// 5. Destruction sweep.
	if data.Destroyed {
		s.Registry.Remove(handle)
		s.World.RemoveBody(handle)
		s.Store.Delete(handle)
		delete(s.controllers, handle)
		s.Events.Publish(event.NewShipEvent(event.ShipDestroyed, s, handle.AsU64(), data.Team))
	}
}

func maxFloat(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
