package events

import "time"

// Kind names an event type within this package's closed vocabulary.
type Kind string

// Event is the contract every typed event satisfies.
type Event interface {
	Kind() Kind
	Timestamp() time.Time
}

// Base carries the kind tag and classification time shared by all events.
// Embed it and construct through NewBase.
type Base struct {
	kind     Kind
	observed time.Time
}

// NewBase stamps a base for the given kind at the current time.
func NewBase(kind Kind) Base {
	return Base{kind: kind, observed: time.Now()}
}

// Kind returns the event's kind tag.
func (b Base) Kind() Kind {
	return b.kind
}

// Timestamp returns when the event was classified.
func (b Base) Timestamp() time.Time {
	return b.observed
}
