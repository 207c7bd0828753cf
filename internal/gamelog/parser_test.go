package gamelog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludo/internal/game/events"
	"ludo/internal/testutil"
)

func TestParseGameSampleLog(t *testing.T) {
	meta, evs, err := ParseGame(testutil.SampleLog())
	require.NoError(t, err)

	assert.Equal(t, "7c9f6f6e-8a3b-4c0e-9f6e-1d2c3b4a5968", meta.GameID)
	assert.Equal(t, int64(42), meta.Seed)
	require.Len(t, meta.Players, 2)
	assert.Equal(t, PlayerInfo{ID: 0, Name: "alice"}, meta.Players[0])
	assert.Equal(t, PlayerInfo{ID: 1, Name: "bob"}, meta.Players[1])

	require.NotEmpty(t, evs)
	assert.Equal(t, events.TurnStarted{Player: 0}, evs[0])
	assert.Equal(t, events.GameEnded{Winner: 0}, evs[len(evs)-1])
}

func TestParseGameIsIdempotent(t *testing.T) {
	text := testutil.SampleLog()
	meta1, evs1, err1 := ParseGame(text)
	meta2, evs2, err2 := ParseGame(text)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, meta1, meta2)
	assert.Equal(t, evs1, evs2)
}

func TestParseGameZeroTurns(t *testing.T) {
	text := "GAME abc 7\nPLAYER 0 alice\nPLAYER 1 bob\nEND DRAW\n"
	meta, evs, err := ParseGame(text)
	require.NoError(t, err)

	assert.Equal(t, "abc", meta.GameID)
	require.Len(t, evs, 1)
	assert.Equal(t, events.GameEnded{Winner: -1, Draw: true}, evs[0])
}

func TestParseGameSkipsBlankLines(t *testing.T) {
	text := "\nGAME abc 1\n\nPLAYER 0 alice\nPLAYER 1 bob\n\n\nTURN 0\nROLL 0 2\nSKIP 0\n\nEND DRAW\n\n"
	_, evs, err := ParseGame(text)
	require.NoError(t, err)
	assert.Len(t, evs, 4)
}

func TestParseGameHeaderless(t *testing.T) {
	// No header block at all is still parseable; roster checks are skipped
	_, evs, err := ParseGame("TURN 1\nMOVE 1 9 13\n")
	require.NoError(t, err)
	require.Len(t, evs, 2)
	assert.Equal(t, events.Moved{Piece: 1, From: 9, To: 13}, evs[1])
}

func TestParseGameMalformedLine(t *testing.T) {
	_, _, err := ParseGame("TURN 1\nMOVE 1 9 13\nBOGUS\n")
	require.Error(t, err)

	var malformed *MalformedLogError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, 3, malformed.Line)
	assert.Equal(t, "BOGUS", malformed.Content)
}

func TestParseGameErrors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantLine int
	}{
		{"unknown discriminator", "JUMP 1 2\n", 1},
		{"roll missing face", "ROLL 0\n", 1},
		{"move with extra field", "MOVE 1 9 13 7\n", 1},
		{"non-integer field", "ROLL zero 6\n", 1},
		{"game seed not integer", "GAME abc xyz\n", 1},
		{"player without name", "PLAYER 0\n", 1},
		{"player out of seat order", "PLAYER 1 bob\n", 1},
		{"header after entries", "TURN 0\nPLAYER 0 alice\n", 2},
		{"second game line", "GAME a 1\nGAME b 2\n", 2},
		{"entry after end", "END DRAW\nTURN 0\n", 2},
		{"end without result", "END\n", 1},
		{"end with bogus result", "END LOSE 1\n", 1},
		{"end win without player", "END WIN\n", 1},
		{"blank lines still counted", "TURN 0\n\n\nBOGUS\n", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseGame(tt.text)
			var malformed *MalformedLogError
			require.ErrorAs(t, err, &malformed, "input %q", tt.text)
			assert.Equal(t, tt.wantLine, malformed.Line)
			assert.NotEmpty(t, malformed.Content)
			assert.Contains(t, err.Error(), malformed.Content)
		})
	}
}

func TestParseGameRosterValidation(t *testing.T) {
	header := "GAME abc 1\nPLAYER 0 alice\nPLAYER 1 bob\n"

	tests := []struct {
		name    string
		entry   string
		wantErr bool
	}{
		{"seat in roster", "TURN 1\n", false},
		{"seat not in roster", "TURN 2\n", true},
		{"roll by unknown seat", "ROLL 5 6\n", true},
		{"skip by unknown seat", "SKIP 3\n", true},
		{"winner not in roster", "END WIN 4\n", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ParseGame(header + tt.entry)
			if tt.wantErr {
				var malformed *MalformedLogError
				assert.ErrorAs(t, err, &malformed)
				assert.Equal(t, 4, malformed.Line)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParseGameNameWithSpaces(t *testing.T) {
	meta, _, err := ParseGame("PLAYER 0 grand duchess\nPLAYER 1 bob\nEND DRAW\n")
	require.NoError(t, err)
	assert.Equal(t, "grand duchess", meta.Players[0].Name)
}
