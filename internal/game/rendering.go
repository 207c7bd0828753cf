package game

import (
	"fmt"
	"strings"

	"ludo/internal/common"
)

// This file contains the terminal rendering for the engine state.

const colorReset = "\033[0m"

// BoardString returns an ANSI-colored snapshot of the board: the shared ring
// as one line of cells, then one line per seat with its column, home and
// finished pieces.
func (e *Engine) BoardString() string {
	const (
		emptySymbol = "·"
		safeSymbol  = "◦"
	)

	gs := e.gs
	b := gs.Board

	// Each ring cell is one symbol plus up to ~10 chars of ANSI codes
	var sb strings.Builder
	sb.Grow((b.TrackLen+len(gs.Players)*b.HomeLen)*12 + 128)

	sb.WriteString("ring  ")
	for cell := 0; cell < b.TrackLen; cell++ {
		occupant := gs.OccupantAt(cell)
		switch {
		case occupant >= 0:
			p := gs.Pieces[occupant]
			sb.WriteString(common.PlayerANSIColors[p.Seat])
			sb.WriteString(fmt.Sprintf("%d", p.Index))
			sb.WriteString(colorReset)
		case b.IsSafe(cell):
			sb.WriteString(safeSymbol)
		default:
			sb.WriteString(emptySymbol)
		}
	}
	sb.WriteString("\n")

	for seat := range gs.Players {
		sb.WriteString(common.PlayerANSIColors[seat])
		sb.WriteString(fmt.Sprintf("%-6s", gs.Players[seat].Name))
		sb.WriteString(colorReset)

		sb.WriteString("col ")
		for slot := 0; slot < b.HomeLen; slot++ {
			occupant := gs.OccupantAt(b.TrackLen + seat*b.HomeLen + slot)
			if occupant >= 0 {
				sb.WriteString(fmt.Sprintf("%d", gs.Pieces[occupant].Index))
			} else {
				sb.WriteString(emptySymbol)
			}
		}

		home, done := 0, 0
		for _, id := range gs.PiecesOf(seat) {
			switch gs.Pieces[id].State {
			case AtHome:
				home++
			case Done:
				done++
			}
		}
		sb.WriteString(fmt.Sprintf("  home %d  done %d\n", home, done))
	}
	return sb.String()
}
