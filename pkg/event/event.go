// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event.
type Type string

// Event types raised during a simulation run.
const (
	ShipSpawned           Type = "ship_spawned"
	ShipDestroyed         Type = "ship_destroyed"
	GunFired              Type = "gun_fired"
	MissileLaunched       Type = "missile_launched"
	ShipExploded          Type = "ship_exploded"
	ControllerSpawnFailed Type = "controller_spawn_failed"
	TickCompleted         Type = "tick_completed"
	SimulationStarted     Type = "simulation_started"
	SimulationStopped     Type = "simulation_stopped"
)

// Event is the base interface for all events.
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events.
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type.
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source.
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events.
type Handler func(Event)

// Bus manages event subscriptions and dispatching.
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus.
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type.
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers. Handlers run
// synchronously, in subscription order, on the calling goroutine.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// ShipEvent carries information about a single ship's lifecycle: spawn,
// destruction, or explosion.
type ShipEvent struct {
	BaseEvent
	ShipID uint64
	Team   int
}

// NewShipEvent creates a new ship lifecycle event.
func NewShipEvent(eventType Type, source interface{}, shipID uint64, team int) *ShipEvent {
	return &ShipEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ShipID: shipID,
		Team:   team,
	}
}

// WeaponEvent carries information about a gun firing or a missile launching.
type WeaponEvent struct {
	BaseEvent
	ShipID uint64
	Team   int
	Index  int
}

// NewWeaponEvent creates a new weapon-discharge event.
func NewWeaponEvent(eventType Type, source interface{}, shipID uint64, team, index int) *WeaponEvent {
	return &WeaponEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		ShipID: shipID,
		Team:   team,
		Index:  index,
	}
}

// ControllerErrorEvent reports a non-fatal failure constructing a ship's
// control program, either at spawn time or on recursive missile launch.
type ControllerErrorEvent struct {
	BaseEvent
	ShipID uint64
	Reason string
}

// NewControllerErrorEvent creates a new controller-spawn-failure event.
func NewControllerErrorEvent(source interface{}, shipID uint64, reason string) *ControllerErrorEvent {
	return &ControllerErrorEvent{
		BaseEvent: BaseEvent{
			EventType: ControllerSpawnFailed,
			Source:    source,
		},
		ShipID: shipID,
		Reason: reason,
	}
}

// TickEvent reports that the simulation advanced by one tick.
type TickEvent struct {
	BaseEvent
	Tick uint64
}

// NewTickEvent creates a new tick-completed event.
func NewTickEvent(source interface{}, tick uint64) *TickEvent {
	return &TickEvent{
		BaseEvent: BaseEvent{
			EventType: TickCompleted,
			Source:    source,
		},
		Tick: tick,
	}
}
