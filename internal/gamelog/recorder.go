package gamelog

import (
	"strings"

	"ludo/internal/game/events"
)

// Recorder is an event-bus subscriber that builds the log text as the game
// runs. Append-only; entry order is publication order.
type Recorder struct {
	lines []string
}

// NewRecorder starts a log with the header block for meta
func NewRecorder(meta Metadata) *Recorder {
	return &Recorder{lines: EncodeHeader(meta)}
}

// ID implements events.Subscriber
func (r *Recorder) ID() string {
	return "gamelog_recorder"
}

// InterestedIn implements events.Subscriber: every event becomes a log entry
func (r *Recorder) InterestedIn(string) bool {
	return true
}

// HandleEvent appends the entry for one event
func (r *Recorder) HandleEvent(ev events.Event) {
	r.lines = append(r.lines, EncodeLine(ev))
}

// Text returns the full log, one entry per line, trailing newline included
func (r *Recorder) Text() string {
	return strings.Join(r.lines, "\n") + "\n"
}

// Len returns the number of lines recorded so far
func (r *Recorder) Len() int {
	return len(r.lines)
}
