// pkg/simulation/explode.go
package simulation

import (
	"github.com/opd-ai/shipcore/pkg/event"
	"github.com/opd-ai/shipcore/pkg/physics"
	"github.com/opd-ai/shipcore/pkg/projectile"
	"github.com/opd-ai/shipcore/pkg/rng"
	"github.com/opd-ai/shipcore/pkg/ship"
)

// explode implements the explosion algorithm: idempotent once a ship is
// already destroyed, otherwise it marks the ship destroyed and emits a
// debris fan whose count and damage depend on class. Destruction cleanup
// itself (registry removal, body removal) happens in the integrator's
// destruction sweep, not here.
//
// The debris fan's RNG is seeded with a fixed constant so every explosion
// draws the same sequence of angles; this determinism property is required
// by the simulation's reproducibility contract, not a performance shortcut.
func (s *Simulation) explode(a *Actuator) {
	data := a.Data()
	if data.Destroyed {
		return
	}
	data.Destroyed = true

	damage, count := 20.0, 25
	switch data.Class.Kind {
	case ship.KindMissile:
		damage, count = 20.0, 25
	case ship.KindTorpedo:
		damage, count = 50.0, 50
	}

	const speed = 1000.0
	const ttl = 1.0
	color := projectile.Color{R: 0.5, G: 0.5, B: 0.5, A: 0.30}

	body := a.Body()
	team := data.Team
	r := rng.New(rng.DebrisSeed)

	for i := 0; i < count; i++ {
		angle := r.Float64() * ship.Tau
		velocity := body.Velocity.Add(physics.FromAngle(angle, speed))
		s.Bullets.Create(s.World, body.Position.X, body.Position.Y, velocity.X, velocity.Y, projectile.Spec{
			Damage: damage,
			Team:   team,
			Color:  color,
			TTL:    ttl,
		})
	}

	s.Events.Publish(event.NewShipEvent(event.ShipExploded, s, a.handle.AsU64(), team))
}
