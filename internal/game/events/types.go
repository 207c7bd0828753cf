package events

// Event is the closed set of state-changing game actions. Every event kind
// maps one-to-one onto a line discriminator in the game log.
type Event interface {
	// Kind returns the log discriminator for this event
	Kind() string
	// sealed keeps the set of event kinds closed to this package
	sealed()
}

// Handler is a function that processes events
type Handler func(Event)

// Subscriber represents an entity that can receive events
type Subscriber interface {
	// ID returns a unique identifier for this subscriber
	ID() string
	// HandleEvent processes an event
	HandleEvent(Event)
	// InterestedIn returns true if the subscriber wants to receive this event kind
	InterestedIn(kind string) bool
}

// Publisher is the interface for publishing events
type Publisher interface {
	Publish(Event)
}
