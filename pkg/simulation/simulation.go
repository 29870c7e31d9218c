// Package simulation wires the ship catalog, registry, data store, and
// physics world into a runnable tick loop: spawn pipeline, actuator
// accessor, gun/missile firing, and the per-tick integrator.
package simulation

import (
	"context"
	"fmt"

	"github.com/opd-ai/shipcore/pkg/config"
	"github.com/opd-ai/shipcore/pkg/debugline"
	"github.com/opd-ai/shipcore/pkg/event"
	"github.com/opd-ai/shipcore/pkg/logging"
	"github.com/opd-ai/shipcore/pkg/model"
	"github.com/opd-ai/shipcore/pkg/physics"
	"github.com/opd-ai/shipcore/pkg/projectile"
	"github.com/opd-ai/shipcore/pkg/radar"
	"github.com/opd-ai/shipcore/pkg/resource"
	"github.com/opd-ai/shipcore/pkg/ship"
)

// SpawnError records a non-fatal failure encountered while spawning a ship,
// most commonly a controller factory rejecting its orders payload. Spawning
// continues regardless; the ship is left inert but physically present.
type SpawnError struct {
	Handle ship.Handle
	Err    error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("simulation: spawn error for %s: %v", e.Handle, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// Simulation owns every collaborator the ship-lifecycle core depends on and
// drives the per-tick loop over them. It is not safe for concurrent use:
// the whole tick executes on one logical thread by design, matching the
// single-threaded cooperative scheduling model.
type Simulation struct {
	Config *config.SimConfig

	World     *physics.World
	Store     *ship.Store
	Registry  *ship.Registry
	Model     model.Loader
	Groups    ship.InteractionGroupsFunc
	Bullets   projectile.Factory
	Radar     radar.Sensor
	DebugLine debugline.Emitter
	Events    *event.Bus

	Log       *logging.Logger
	Resources *resource.ResourceManager

	tick         uint64
	controllers  map[ship.Handle]Controller
	factories    map[int]ControllerFactory
	errors       []*SpawnError
	tickRunning  bool
}

// New creates a Simulation wired to in-memory defaults for every optional
// collaborator. Callers override Bullets, Radar, DebugLine, or Groups before
// the first tick to plug in real implementations.
func New(cfg *config.SimConfig) *Simulation {
	return &Simulation{
		Config:      cfg,
		World:       physics.NewWorld(),
		Store:       ship.NewStore(),
		Registry:    ship.NewRegistry(),
		Model:       model.NewStaticLoader(),
		Groups:      ship.DefaultInteractionGroups,
		Bullets:     projectile.NewInMemoryFactory(),
		Radar:       radar.NoopSensor{},
		DebugLine:   debugline.NoopEmitter{},
		Events:      event.NewEventBus(),
		Log:         logging.NewLogger(),
		controllers: make(map[ship.Handle]Controller),
		factories:   make(map[int]ControllerFactory),
	}
}

// Tick returns the number of ticks completed so far.
func (s *Simulation) Tick() uint64 { return s.tick }

// IsRunning reports whether the tick loop is presently inside Step. It
// backs a readiness health check for a supervised long-running process.
func (s *Simulation) IsRunning() bool { return s.tickRunning }

// RegisterTeamController installs the control-program factory for a team.
// Ships spawned for that team invoke it during Spawn.
func (s *Simulation) RegisterTeamController(team int, factory ControllerFactory) {
	s.factories[team] = factory
}

// TeamController returns the factory registered for a team, if any.
func (s *Simulation) TeamController(team int) (ControllerFactory, bool) {
	f, ok := s.factories[team]
	return f, ok
}

// Errors returns the queue of non-fatal spawn errors accumulated so far.
// The queue is not cleared automatically; callers that want per-tick
// batches should call DrainErrors.
func (s *Simulation) Errors() []*SpawnError { return s.errors }

// DrainErrors returns and clears the accumulated spawn error queue.
func (s *Simulation) DrainErrors() []*SpawnError {
	out := s.errors
	s.errors = nil
	return out
}

// InitializeResourceManager builds and starts a ResourceManager from
// environment configuration. Separate from New so that tests building a
// Simulation directly never spin up the background monitoring goroutine.
func (s *Simulation) InitializeResourceManager() error {
	envConfig, err := config.LoadConfigFromEnv()
	if err != nil {
		envConfig = config.DefaultEnvironmentConfig()
	}
	s.Resources = resource.NewResourceManager(envConfig)
	return s.Resources.Start()
}

func (s *Simulation) pushError(handle ship.Handle, err error) {
	se := &SpawnError{Handle: handle, Err: err}
	s.errors = append(s.errors, se)
	s.Log.Warn(context.Background(), "ship spawn error", "handle", handle.String(), "error", err.Error())
	s.Events.Publish(event.NewControllerErrorEvent(s, handle.AsU64(), err.Error()))
}

// tickLength returns the per-tick decrement step, falling back to a 60Hz
// default when no config is attached (unit tests that build ships directly
// without a SimConfig).
func (s *Simulation) tickLength() float64 {
	if s.Config != nil && s.Config.TickLength > 0 {
		return s.Config.TickLength
	}
	return 1.0 / 60.0
}
