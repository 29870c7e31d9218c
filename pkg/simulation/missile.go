// pkg/simulation/missile.go
package simulation

import (
	"github.com/opd-ai/shipcore/pkg/event"
	"github.com/opd-ai/shipcore/pkg/physics"
	"github.com/opd-ai/shipcore/pkg/ship"
)

// launchMissile implements missile/torpedo launching: a no-op if the index
// is out of range or the bay is still reloading, otherwise it consumes one
// reload cycle and recursively invokes the spawn pipeline for the new
// munition, which inherits the launching ship's team.
//
// A launcher configured with any class other than Missile or Torpedo is a
// programming error, not a runtime condition a control program can trigger
// through valid inputs; it panics with ship.ProgrammingError rather than
// returning a normal error.
func (s *Simulation) launchMissile(a *Actuator, index int, orders []byte) (ship.Handle, error) {
	data := a.Data()
	if index < 0 || index >= len(data.MissileLaunchers) {
		return ship.Handle{}, nil
	}
	launcher := &data.MissileLaunchers[index]
	if launcher.ReloadTimeRemaining > 0 {
		return ship.Handle{}, nil
	}
	launcher.ReloadTimeRemaining += launcher.ReloadTime

	var template func(team int) *ship.Data
	switch launcher.Class.Kind {
	case ship.KindMissile:
		template = ship.Missile
	case ship.KindTorpedo:
		template = ship.Torpedo
	default:
		panic(&ship.ProgrammingError{Msg: "missile launcher configured with non-missile, non-torpedo class " + launcher.Class.String()})
	}

	body := a.Body()
	spawnPosition := body.Position.Add(launcher.Offset.Rotate(body.Rotation))
	spawnRotation := body.Rotation + launcher.Angle
	spawnVelocity := body.Velocity.Add(physics.FromAngle(spawnRotation, launcher.InitialSpeed))

	team := data.Team
	handle, err := s.SpawnWithOrders(spawnPosition.X, spawnPosition.Y, spawnVelocity.X, spawnVelocity.Y, spawnRotation, template(team), orders)
	if err != nil {
		return ship.Handle{}, err
	}

	s.Events.Publish(event.NewWeaponEvent(event.MissileLaunched, s, a.handle.AsU64(), team, index))
	return handle, nil
}
