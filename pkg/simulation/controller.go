// pkg/simulation/controller.go
package simulation

import "github.com/opd-ai/shipcore/pkg/ship"

// Controller is a per-ship control program. Step runs once per tick, during
// the actuator phase that precedes integration, and issues pending intents
// through the Actuator it receives.
type Controller interface {
	Step(actuator *Actuator)
}

// ControllerFactory builds a Controller for a newly spawned ship belonging
// to one team. orders is an opaque payload handed down from whatever spawned
// the ship (a scenario file, a recursive missile launch); the factory
// interprets it however its control language requires.
type ControllerFactory interface {
	CreateShipController(handle ship.Handle, sim *Simulation, orders []byte) (Controller, error)
}

// ControllerFactoryFunc adapts a plain function to ControllerFactory.
type ControllerFactoryFunc func(handle ship.Handle, sim *Simulation, orders []byte) (Controller, error)

// CreateShipController calls f.
func (f ControllerFactoryFunc) CreateShipController(handle ship.Handle, sim *Simulation, orders []byte) (Controller, error) {
	return f(handle, sim, orders)
}
