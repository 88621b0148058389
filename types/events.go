package types

import (
	abci "github.com/tendermint/tendermint/abci/types"
)

// Common event types and attribute keys
const (
	EventTypeMessage = "message"

	AttributeKeyModule = "module"
)

type (
	// Event is a type alias for an ABCI Event
	Event abci.Event

	// Events defines a slice of Event objects
	Events []Event

	// Attribute is a type alias for an ABCI EventAttribute
	Attribute = abci.EventAttribute
)

// NewEvent creates a new Event object with a given type and slice of one or
// more attributes.
func NewEvent(ty string, attrs ...Attribute) Event {
	e := Event{Type: ty}
	e.Attributes = append(e.Attributes, attrs...)

	return e
}

// NewAttribute returns a new key/value Attribute object.
func NewAttribute(k, v string) Attribute {
	return Attribute{Key: []byte(k), Value: []byte(v)}
}

// EventManager implements a simple wrapper around a slice of Event objects
// that can be emitted from. Handlers run against a branched context, so a
// failed operation discards its manager and surfaces no events.
type EventManager struct {
	events Events
}

// NewEventManager returns a new empty EventManager.
func NewEventManager() *EventManager {
	return &EventManager{EmptyEvents()}
}

// Events returns all emitted events.
func (em *EventManager) Events() Events { return em.events }

// EmitEvent stores a single Event object.
func (em *EventManager) EmitEvent(event Event) {
	em.events = em.events.AppendEvent(event)
}

// EmitEvents stores a series of Event objects.
func (em *EventManager) EmitEvents(events Events) {
	em.events = em.events.AppendEvents(events)
}

// EmptyEvents returns an empty slice of events.
func EmptyEvents() Events {
	return make(Events, 0)
}

// AppendEvent adds an Event to a slice of events.
func (e Events) AppendEvent(event Event) Events {
	return append(e, event)
}

// AppendEvents adds a slice of Event objects to an exist slice of Event objects.
func (e Events) AppendEvents(events Events) Events {
	return append(e, events...)
}

// ToABCIEvents converts a slice of Event objects to a slice of abci.Event
// objects for handing back to the host's transaction result.
func (e Events) ToABCIEvents() []abci.Event {
	res := make([]abci.Event, len(e))
	for i, ev := range e {
		res[i] = abci.Event{Type: ev.Type, Attributes: ev.Attributes}
	}

	return res
}
