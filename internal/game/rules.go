package game

import (
	"ludo/internal/config"
)

// Rules holds the board geometry and movement parameters for one game.
type Rules struct {
	PiecesPerPlayer int
	DieFaces        int
	TrackLength     int
	HomeColumn      int
	MaxTurns        int
	SafeCells       []int
}

// DefaultRules returns the standard four-seat board
func DefaultRules() Rules {
	return Rules{
		PiecesPerPlayer: 4,
		DieFaces:        6,
		TrackLength:     40,
		HomeColumn:      4,
		MaxTurns:        2000,
		SafeCells:       []int{0, 8, 10, 18, 20, 28, 30, 38},
	}
}

// RulesFromConfig builds Rules from the loaded configuration
func RulesFromConfig() Rules {
	rc := config.Get().Game.Rules
	return Rules{
		PiecesPerPlayer: rc.PiecesPerPlayer,
		DieFaces:        rc.DieFaces,
		TrackLength:     rc.TrackLength,
		HomeColumn:      rc.HomeColumn,
		MaxTurns:        rc.MaxTurns,
		SafeCells:       append([]int(nil), rc.SafeCells...),
	}
}

// MaxFace is the highest die face: it alone allows entry from home and
// grants an extra turn.
func (r Rules) MaxFace() int {
	return r.DieFaces
}

// FinishProgress is the exact progress a piece must reach to finish
func (r Rules) FinishProgress() int {
	return r.TrackLength + r.HomeColumn
}
