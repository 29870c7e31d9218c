// pkg/simulation/gunfire.go
package simulation

import (
	"math"

	"github.com/opd-ai/shipcore/pkg/event"
	"github.com/opd-ai/shipcore/pkg/physics"
	"github.com/opd-ai/shipcore/pkg/projectile"
	"github.com/opd-ai/shipcore/pkg/rng"
)

// fireGun implements the gun-firing algorithm: a no-op if the index is out
// of range or the gun is still reloading, otherwise it consumes one reload
// cycle and emits burst_size projectiles through the projectile factory.
// Burst particles share the single reload consumption taken at the start.
func (s *Simulation) fireGun(a *Actuator, index int) {
	data := a.Data()
	if index < 0 || index >= len(data.Guns) {
		return
	}
	gun := &data.Guns[index]
	if gun.ReloadTimeRemaining > 0 {
		return
	}
	gun.ReloadTimeRemaining += gun.ReloadTime

	seed := rng.FireSeed(s.tick, a.handle.Index, index)
	r := rng.New(seed)

	alpha := clamp(math.Log10(gun.Damage)/3, 0.5, 1.0)
	color := projectile.Color{R: 1.00, G: 0.63, B: 0.00, A: alpha}
	const ttl = 5.0

	body := a.Body()
	team := data.Team

	for i := 0; i < gun.BurstSize; i++ {
		angle := gun.Angle
		if gun.Inaccuracy > 0 {
			angle += (r.Float64()*2 - 1) * gun.Inaccuracy
		}
		rot := body.Rotation + angle
		muzzleOffset := gun.Offset.Rotate(body.Rotation)
		position := body.Position.Add(muzzleOffset)
		muzzleVelocity := physics.FromAngle(rot, gun.Speed)
		velocity := body.Velocity.Add(muzzleVelocity)

		s.Bullets.Create(s.World, position.X, position.Y, velocity.X, velocity.Y, projectile.Spec{
			Damage: gun.Damage,
			Team:   team,
			Color:  color,
			TTL:    ttl,
		})
	}

	s.Events.Publish(event.NewWeaponEvent(event.GunFired, s, a.handle.AsU64(), team, index))
}
