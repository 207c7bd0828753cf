package events

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EventBus is a synchronous event bus. Subscribers are notified in
// registration order so that consumers which record events (the game log
// writer in particular) observe a deterministic stream.
type EventBus struct {
	subscribers []Subscriber
	logger      zerolog.Logger
}

// NewEventBus creates a new event bus instance
func NewEventBus() *EventBus {
	return &EventBus{
		logger: log.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a new subscriber to the event bus
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	for _, s := range eb.subscribers {
		if s.ID() == subscriber.ID() {
			eb.logger.Warn().
				Str("subscriber_id", subscriber.ID()).
				Msg("Duplicate subscriber ID ignored")
			return
		}
	}
	eb.subscribers = append(eb.subscribers, subscriber)
	eb.logger.Debug().
		Str("subscriber_id", subscriber.ID()).
		Msg("Subscriber added to event bus")
}

// Unsubscribe removes a subscriber from the event bus
func (eb *EventBus) Unsubscribe(subscriberID string) {
	for i, s := range eb.subscribers {
		if s.ID() == subscriberID {
			eb.subscribers = append(eb.subscribers[:i], eb.subscribers[i+1:]...)
			eb.logger.Debug().
				Str("subscriber_id", subscriberID).
				Msg("Subscriber removed from event bus")
			return
		}
	}
}

// Publish sends an event to all interested subscribers synchronously
func (eb *EventBus) Publish(event Event) {
	for _, subscriber := range eb.subscribers {
		if !subscriber.InterestedIn(event.Kind()) {
			continue
		}
		// Catch panics so one subscriber cannot break the others
		func() {
			defer func() {
				if r := recover(); r != nil {
					eb.logger.Error().
						Str("subscriber_id", subscriber.ID()).
						Str("event_kind", event.Kind()).
						Str("panic", fmt.Sprintf("%v", r)).
						Msg("Subscriber panicked handling event")
				}
			}()
			subscriber.HandleEvent(event)
		}()
	}
}

// funcSubscriber adapts a Handler function to the Subscriber interface
type funcSubscriber struct {
	id      string
	kind    string
	handler Handler
}

func (fs *funcSubscriber) ID() string { return fs.id }

func (fs *funcSubscriber) HandleEvent(event Event) { fs.handler(event) }

func (fs *funcSubscriber) InterestedIn(kind string) bool {
	return fs.kind == "" || fs.kind == kind
}

// SubscribeFunc adds a function handler for a specific event kind. An empty
// kind subscribes to every event. Returns the generated subscriber ID.
func (eb *EventBus) SubscribeFunc(kind string, handler Handler) string {
	id := fmt.Sprintf("func_%s_%d", kind, len(eb.subscribers))
	eb.Subscribe(&funcSubscriber{id: id, kind: kind, handler: handler})
	return id
}
