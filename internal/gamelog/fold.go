package gamelog

import (
	"fmt"

	"ludo/internal/common"
	"ludo/internal/game/events"
)

// Snapshot is the full piece placement after one event was applied.
// Positions are indexed by global piece ID and use the absolute encoding,
// events.PosHome / events.PosFinished for the off-board states.
type Snapshot struct {
	Event     events.Event
	Current   int // seat whose turn group the event belongs to
	Positions []int
}

// Replay folds a parsed event sequence over the initial placement derived
// from the metadata, yielding one snapshot per event. It reconstructs
// exactly the state sequence the engine produced while writing the log.
func Replay(meta Metadata, evs []events.Event, piecesPerPlayer int) ([]Snapshot, error) {
	n := len(meta.Players)
	if n == 0 {
		return nil, fmt.Errorf("replay needs a roster in the metadata")
	}
	if piecesPerPlayer < 1 {
		return nil, fmt.Errorf("replay needs a positive piece count, got %d", piecesPerPlayer)
	}

	positions := make([]int, n*piecesPerPlayer)
	for i := range positions {
		positions[i] = events.PosHome
	}

	checkPiece := func(id int) error {
		if !common.IsValidPieceID(id, n, piecesPerPlayer) {
			return fmt.Errorf("piece %d not established at initialization", id)
		}
		return nil
	}

	snapshots := make([]Snapshot, 0, len(evs))
	current := 0
	for _, ev := range evs {
		switch e := ev.(type) {
		case events.TurnStarted:
			current = e.Player
		case events.Rolled, events.Skipped, events.GameEnded:
			// no placement change
		case events.Entered:
			if err := checkPiece(e.Piece); err != nil {
				return nil, err
			}
			positions[e.Piece] = e.Cell
		case events.Moved:
			if err := checkPiece(e.Piece); err != nil {
				return nil, err
			}
			positions[e.Piece] = e.To
		case events.Captured:
			if err := checkPiece(e.Piece); err != nil {
				return nil, err
			}
			positions[e.Piece] = events.PosHome
		case events.Finished:
			if err := checkPiece(e.Piece); err != nil {
				return nil, err
			}
			positions[e.Piece] = events.PosFinished
		}

		snapshots = append(snapshots, Snapshot{
			Event:     ev,
			Current:   current,
			Positions: append([]int(nil), positions...),
		})
	}
	return snapshots, nil
}
