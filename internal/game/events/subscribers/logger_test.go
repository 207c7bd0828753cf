package subscribers

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludo/internal/game/events"
)

func newBufferLogger() (*bytes.Buffer, zerolog.Logger) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf).Level(zerolog.DebugLevel)
	return buf, logger
}

func TestHandleEventLogsTypedFields(t *testing.T) {
	buf, logger := newBufferLogger()
	ls := NewLoggerSubscriber("test", logger)

	ls.HandleEvent(events.Moved{Piece: 3, From: 9, To: 13})

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, `"event_kind":"MOVE"`)
	assert.Contains(t, out, `"piece":3`)
	assert.Contains(t, out, `"from":9`)
	assert.Contains(t, out, `"to":13`)
}

func TestHandleEventEnd(t *testing.T) {
	buf, logger := newBufferLogger()
	ls := NewLoggerSubscriber("test", logger)

	ls.HandleEvent(events.GameEnded{Winner: -1, Draw: true})

	out := buf.String()
	assert.Contains(t, out, `"event_kind":"END"`)
	assert.Contains(t, out, `"draw":true`)
}

func TestKindFilter(t *testing.T) {
	_, logger := newBufferLogger()
	ls := NewLoggerSubscriber("test", logger)

	assert.True(t, ls.InterestedIn(events.KindRoll))

	ls.SetKindFilter([]string{events.KindCapture})
	assert.True(t, ls.InterestedIn(events.KindCapture))
	assert.False(t, ls.InterestedIn(events.KindRoll))

	ls.SetKindFilter(nil)
	assert.True(t, ls.InterestedIn(events.KindRoll))
}
