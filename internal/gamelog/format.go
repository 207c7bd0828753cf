// Package gamelog defines the textual game log: the only persisted artifact
// and the contract between the simulator and every downstream consumer.
//
// The grammar is line-oriented, space-delimited, forward-parseable with no
// lookahead beyond the current line:
//
//	GAME <uuid> <seed>
//	PLAYER <playerID> <name>
//	TURN <playerID>
//	ROLL <playerID> <face>
//	ENTER <pieceID> <cell>
//	MOVE <pieceID> <from> <to>
//	CAPTURE <pieceID>
//	FINISH <pieceID>
//	SKIP <playerID>
//	END WIN <playerID> | END DRAW
//
// The header (GAME, PLAYER lines) precedes all entries; END is last. Changing
// this grammar breaks independently written parsers: version it instead.
package gamelog

import (
	"fmt"

	"ludo/internal/game/events"
)

// PlayerInfo is one roster line of the log header
type PlayerInfo struct {
	ID   int
	Name string
}

// Metadata is the parsed header: everything needed to replay the entries
type Metadata struct {
	GameID  string
	Seed    int64
	Players []PlayerInfo
}

// EncodeLine serializes one event as its log line. The switch is exhaustive
// over the closed event set.
func EncodeLine(ev events.Event) string {
	switch e := ev.(type) {
	case events.TurnStarted:
		return fmt.Sprintf("TURN %d", e.Player)
	case events.Rolled:
		return fmt.Sprintf("ROLL %d %d", e.Player, e.Face)
	case events.Entered:
		return fmt.Sprintf("ENTER %d %d", e.Piece, e.Cell)
	case events.Moved:
		return fmt.Sprintf("MOVE %d %d %d", e.Piece, e.From, e.To)
	case events.Captured:
		return fmt.Sprintf("CAPTURE %d", e.Piece)
	case events.Finished:
		return fmt.Sprintf("FINISH %d", e.Piece)
	case events.Skipped:
		return fmt.Sprintf("SKIP %d", e.Player)
	case events.GameEnded:
		if e.Draw {
			return "END DRAW"
		}
		return fmt.Sprintf("END WIN %d", e.Winner)
	default:
		panic(fmt.Sprintf("unencodable event kind %q", ev.Kind()))
	}
}

// EncodeHeader serializes the metadata block that leads the log
func EncodeHeader(meta Metadata) []string {
	lines := make([]string, 0, len(meta.Players)+1)
	lines = append(lines, fmt.Sprintf("GAME %s %d", meta.GameID, meta.Seed))
	for _, p := range meta.Players {
		lines = append(lines, fmt.Sprintf("PLAYER %d %s", p.ID, p.Name))
	}
	return lines
}
