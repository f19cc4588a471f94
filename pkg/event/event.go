// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Simulation event types
const (
	AsteroidSpawned  Type = "asteroid_spawned"
	FuelSpawned      Type = "fuel_spawned"
	EntityDespawned  Type = "entity_despawned"
	FuelCollected    Type = "fuel_collected"
	PlayerBounced    Type = "player_bounced"
	ThrustChanged    Type = "thrust_changed"
	ScoreChanged     Type = "score_changed"
	GameStarted      Type = "game_started"
	GameEnded        Type = "game_ended"
	PopulationSeeded Type = "population_seeded"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Subscription identifies a registered handler. Cancel removes it.
type Subscription struct {
	ID     uint64
	Type   Type
	Cancel func()
}

type registered struct {
	id      uint64
	handler Handler
}

// Bus manages event subscriptions and dispatching. Handlers run
// synchronously on the publishing goroutine in subscription order.
type Bus struct {
	handlers map[Type][]registered
	nextID   uint64
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]registered),
		nextID:   1,
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], registered{id: id, handler: handler})

	return &Subscription{
		ID:     id,
		Type:   eventType,
		Cancel: func() { b.Unsubscribe(eventType, id) },
	}
}

// Unsubscribe removes the handler with the given subscription id
func (b *Bus) Unsubscribe(eventType Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers := b.handlers[eventType]
	for i, h := range handlers {
		if h.id == id {
			b.handlers[eventType] = append(handlers[:i:i], handlers[i+1:]...)
			return
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers := b.handlers[event.GetType()]
	b.mu.RUnlock()

	for _, h := range handlers {
		h.handler(event)
	}
}

// Specific event implementations

// EntityEvent reports an entity entering or leaving the simulation
type EntityEvent struct {
	BaseEvent
	EntityID uint64
	Kind     string
	X, Y     float32
}

// NewEntityEvent creates a new entity event
func NewEntityEvent(eventType Type, source interface{}, entityID uint64, kind string, x, y float32) *EntityEvent {
	return &EntityEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		EntityID: entityID,
		Kind:     kind,
		X:        x,
		Y:        y,
	}
}

// FuelEvent reports the player collecting a fuel can
type FuelEvent struct {
	BaseEvent
	CanID  uint64
	Amount float32
	Fuel   float32
}

// NewFuelEvent creates a new fuel event
func NewFuelEvent(source interface{}, canID uint64, amount, fuel float32) *FuelEvent {
	return &FuelEvent{
		BaseEvent: BaseEvent{
			EventType: FuelCollected,
			Source:    source,
		},
		CanID:  canID,
		Amount: amount,
		Fuel:   fuel,
	}
}

// BounceEvent reports the player bouncing off the viewport edge
type BounceEvent struct {
	BaseEvent
	AxisX bool
	AxisY bool
}

// NewBounceEvent creates a new bounce event
func NewBounceEvent(source interface{}, axisX, axisY bool) *BounceEvent {
	return &BounceEvent{
		BaseEvent: BaseEvent{
			EventType: PlayerBounced,
			Source:    source,
		},
		AxisX: axisX,
		AxisY: axisY,
	}
}

// ThrustEvent reports the player's engine turning on or off
type ThrustEvent struct {
	BaseEvent
	Thrusting bool
	Fuel      float32
}

// NewThrustEvent creates a new thrust event
func NewThrustEvent(source interface{}, thrusting bool, fuel float32) *ThrustEvent {
	return &ThrustEvent{
		BaseEvent: BaseEvent{
			EventType: ThrustChanged,
			Source:    source,
		},
		Thrusting: thrusting,
		Fuel:      fuel,
	}
}

// ScoreEvent reports points awarded during a tick
type ScoreEvent struct {
	BaseEvent
	Gained uint64
	Points uint64
}

// NewScoreEvent creates a new score event
func NewScoreEvent(source interface{}, gained, points uint64) *ScoreEvent {
	return &ScoreEvent{
		BaseEvent: BaseEvent{
			EventType: ScoreChanged,
			Source:    source,
		},
		Gained: gained,
		Points: points,
	}
}
