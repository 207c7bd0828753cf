package gamelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludo/internal/game/events"
	"ludo/internal/testutil"
)

func TestReplaySampleLog(t *testing.T) {
	meta, evs, err := ParseGame(testutil.SampleLog())
	require.NoError(t, err)

	snaps, err := Replay(meta, evs, 4)
	require.NoError(t, err)
	require.Len(t, snaps, len(evs))

	// After alice's first entry her piece 0 sits on cell 0, the rest at home
	entered := snaps[2]
	require.IsType(t, events.Entered{}, entered.Event)
	assert.Equal(t, 0, entered.Positions[0])
	for id := 1; id < 8; id++ {
		assert.Equal(t, events.PosHome, entered.Positions[id])
	}

	// Bob's piece 4 is captured late in the log and ends back home
	final := snaps[len(snaps)-1]
	assert.Equal(t, events.PosHome, final.Positions[4])
	assert.Equal(t, 17, final.Positions[0])
}

func TestReplayTracksCurrentPlayer(t *testing.T) {
	meta, evs, err := ParseGame(testutil.SampleLog())
	require.NoError(t, err)
	snaps, err := Replay(meta, evs, 4)
	require.NoError(t, err)

	assert.Equal(t, 0, snaps[0].Current)
	// Find bob's TURN entry and check the group after it is attributed to him
	for i, s := range snaps {
		if ts, ok := s.Event.(events.TurnStarted); ok && ts.Player == 1 {
			assert.Equal(t, 1, snaps[i+1].Current)
			return
		}
	}
	t.Fatal("no TURN entry for bob in the sample log")
}

func TestReplaySnapshotsAreIndependent(t *testing.T) {
	meta := Metadata{Players: []PlayerInfo{{0, "a"}, {1, "b"}}}
	evs := []events.Event{
		events.Entered{Piece: 0, Cell: 0},
		events.Moved{Piece: 0, From: 0, To: 5},
	}
	snaps, err := Replay(meta, evs, 1)
	require.NoError(t, err)
	require.Len(t, snaps, 2)
	assert.Equal(t, 0, snaps[0].Positions[0])
	assert.Equal(t, 5, snaps[1].Positions[0])
}

func TestReplayRejectsUnknownPiece(t *testing.T) {
	meta := Metadata{Players: []PlayerInfo{{0, "a"}, {1, "b"}}}
	evs := []events.Event{events.Moved{Piece: 99, From: 0, To: 5}}
	_, err := Replay(meta, evs, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "piece 99")
}

func TestReplayNeedsRoster(t *testing.T) {
	_, err := Replay(Metadata{}, nil, 4)
	assert.Error(t, err)

	_, err = Replay(Metadata{Players: []PlayerInfo{{0, "a"}}}, nil, 0)
	assert.Error(t, err)
}
