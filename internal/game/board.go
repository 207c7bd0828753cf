package game

import (
	"ludo/internal/common"
	"ludo/internal/game/events"
)

// Board is the fixed topology: a shared ring of track cells plus a private
// home column per seat. The board is always laid out for four quadrants;
// games with fewer players simply leave quadrants unused.
type Board struct {
	TrackLen int
	HomeLen  int
	safe     map[int]bool
}

// NewBoard builds the board for the given rules
func NewBoard(r Rules) *Board {
	safe := make(map[int]bool, len(r.SafeCells))
	for _, c := range r.SafeCells {
		safe[c] = true
	}
	return &Board{
		TrackLen: r.TrackLength,
		HomeLen:  r.HomeColumn,
		safe:     safe,
	}
}

// Start returns the entry cell for a seat
func (b *Board) Start(seat int) int {
	return seat * b.TrackLen / common.MaxPlayers
}

// IsSafe reports whether capture is disabled on a shared track cell
func (b *Board) IsSafe(cell int) bool {
	return b.safe[cell]
}

// AbsCell maps a piece's progress to the absolute position encoding:
// shared track cells 0..TrackLen-1, then home-column slots
// TrackLen + seat*HomeLen + slot.
func (b *Board) AbsCell(seat, progress int) int {
	if progress < b.TrackLen {
		return common.Mod(b.Start(seat)+progress, b.TrackLen)
	}
	return b.TrackLen + seat*b.HomeLen + (progress - b.TrackLen)
}

// IsColumnCell reports whether an absolute position is inside a home column
func (b *Board) IsColumnCell(pos int) bool {
	return pos >= b.TrackLen
}

// Position returns the encoded position of a piece
func (b *Board) Position(p *Piece) int {
	switch p.State {
	case AtHome:
		return events.PosHome
	case Done:
		return events.PosFinished
	default:
		return b.AbsCell(p.Seat, p.Progress)
	}
}
