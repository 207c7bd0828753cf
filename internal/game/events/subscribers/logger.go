package subscribers

import (
	"github.com/rs/zerolog"

	"ludo/internal/game/events"
)

// LoggerSubscriber mirrors the event stream into structured diagnostic logs.
// It never touches the game log artifact itself.
type LoggerSubscriber struct {
	id         string
	logger     zerolog.Logger
	kindFilter map[string]bool // if non-nil, only log these kinds
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:     id,
		logger: logger.With().Str("subscriber", "event_logger").Logger(),
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetKindFilter sets which event kinds to log (empty means log all)
func (ls *LoggerSubscriber) SetKindFilter(kinds []string) {
	if len(kinds) == 0 {
		ls.kindFilter = nil
		return
	}
	ls.kindFilter = make(map[string]bool, len(kinds))
	for _, k := range kinds {
		ls.kindFilter[k] = true
	}
}

// InterestedIn returns true if the subscriber wants to receive this event kind
func (ls *LoggerSubscriber) InterestedIn(kind string) bool {
	if ls.kindFilter == nil {
		return true
	}
	return ls.kindFilter[kind]
}

// HandleEvent logs an event with its typed fields
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	le := ls.logger.Debug().Str("event_kind", event.Kind())

	switch ev := event.(type) {
	case events.TurnStarted:
		le = le.Int("player", ev.Player)
	case events.Rolled:
		le = le.Int("player", ev.Player).Int("face", ev.Face)
	case events.Entered:
		le = le.Int("piece", ev.Piece).Int("cell", ev.Cell)
	case events.Moved:
		le = le.Int("piece", ev.Piece).Int("from", ev.From).Int("to", ev.To)
	case events.Captured:
		le = le.Int("piece", ev.Piece)
	case events.Finished:
		le = le.Int("piece", ev.Piece)
	case events.Skipped:
		le = le.Int("player", ev.Player)
	case events.GameEnded:
		le = le.Int("winner", ev.Winner).Bool("draw", ev.Draw)
	}

	le.Msg("Game event")
}
