// pkg/simulation/spawn.go
package simulation

import (
	"fmt"

	"github.com/opd-ai/shipcore/pkg/event"
	"github.com/opd-ai/shipcore/pkg/model"
	"github.com/opd-ai/shipcore/pkg/physics"
	"github.com/opd-ai/shipcore/pkg/ship"
)

// Spawn creates a ship with no orders payload. It is a thin convenience
// wrapper over SpawnWithOrders for scenario setup code that has nothing to
// pass a control program.
func (s *Simulation) Spawn(x, y, vx, vy, heading float64, data *ship.Data) (ship.Handle, error) {
	return s.SpawnWithOrders(x, y, vx, vy, heading, data, nil)
}

// SpawnWithOrders runs the spawn pipeline: it inserts a rigid body, derives
// a convex-hull collider from the class's polygon model, installs
// collision-interaction groups for data.Team, allocates the ship's handle,
// registers it, and — if a controller factory is registered for the team —
// asks it to build a per-ship controller. A controller construction failure
// is recorded on the error queue but does not prevent the ship from being
// spawned; an invalid hull is a fatal precondition and aborts the spawn.
func (s *Simulation) SpawnWithOrders(x, y, vx, vy, heading float64, data *ship.Data, orders []byte) (ship.Handle, error) {
	restitution := 0.1
	if data.Class.Kind == ship.KindMissile {
		restitution = 0.0
	}

	handle := s.World.InsertBody(
		physics.Vector2D{X: x, Y: y},
		physics.Vector2D{X: vx, Y: vy},
		heading, 0,
		data.Mass, data.InvPrincipalInertiaSqrt,
		true,
	)

	verts, err := s.Model.Load(data.Class)
	if err != nil {
		s.World.RemoveBody(handle)
		return ship.Handle{}, fmt.Errorf("simulation: spawn: %w", err)
	}
	hull, err := model.ConvexHull(verts)
	if err != nil {
		s.World.RemoveBody(handle)
		return ship.Handle{}, ship.ErrInvalidModel
	}

	groups := s.Groups(data.Team)
	if err := s.World.InsertCollider(handle, physics.ConvexPolygon{Vertices: hull}, restitution, groups); err != nil {
		s.World.RemoveBody(handle)
		return ship.Handle{}, fmt.Errorf("simulation: spawn: %w", err)
	}

	s.Registry.Queue(handle)
	s.Store.Insert(handle, data)

	if factory, ok := s.factories[data.Team]; ok {
		controller, err := factory.CreateShipController(handle, s, orders)
		if err != nil {
			s.pushError(handle, err)
		} else {
			s.controllers[handle] = controller
		}
	}

	s.Events.Publish(event.NewShipEvent(event.ShipSpawned, s, handle.AsU64(), data.Team))
	return handle, nil
}
