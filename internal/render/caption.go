package render

import (
	"fmt"

	"ludo/internal/game/events"
	"ludo/internal/gamelog"
)

func headerCaption(meta gamelog.Metadata) string {
	return fmt.Sprintf("game %s  seed %d  players %d", meta.GameID, meta.Seed, len(meta.Players))
}

func playerName(meta gamelog.Metadata, seat int) string {
	if seat >= 0 && seat < len(meta.Players) {
		return meta.Players[seat].Name
	}
	return fmt.Sprintf("player %d", seat)
}

func pieceLabel(meta gamelog.Metadata, piece, perSeat int) string {
	return fmt.Sprintf("%s/%d", playerName(meta, piece/perSeat), piece%perSeat)
}

// eventCaption turns one event into the frame's human-readable line
func eventCaption(meta gamelog.Metadata, ev events.Event, turn, perSeat int) string {
	switch e := ev.(type) {
	case events.TurnStarted:
		return fmt.Sprintf("turn %d: %s", turn, playerName(meta, e.Player))
	case events.Rolled:
		return fmt.Sprintf("turn %d: %s rolls %d", turn, playerName(meta, e.Player), e.Face)
	case events.Entered:
		return fmt.Sprintf("turn %d: %s enters on cell %d", turn, pieceLabel(meta, e.Piece, perSeat), e.Cell)
	case events.Moved:
		return fmt.Sprintf("turn %d: %s moves %d -> %d", turn, pieceLabel(meta, e.Piece, perSeat), e.From, e.To)
	case events.Captured:
		return fmt.Sprintf("turn %d: %s is sent home", turn, pieceLabel(meta, e.Piece, perSeat))
	case events.Finished:
		return fmt.Sprintf("turn %d: %s finishes", turn, pieceLabel(meta, e.Piece, perSeat))
	case events.Skipped:
		return fmt.Sprintf("turn %d: %s cannot move", turn, playerName(meta, e.Player))
	case events.GameEnded:
		if e.Draw {
			return "game over: draw at the turn cap"
		}
		return fmt.Sprintf("game over: %s wins", playerName(meta, e.Winner))
	default:
		return ev.Kind()
	}
}
