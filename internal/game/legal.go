package game

import (
	"ludo/internal/game/events"
)

// legalActions enumerates every legal way the seat can spend the rolled face.
// An empty result means the roll is forfeited.
func (e *Engine) legalActions(seat, face int) []action {
	var actions []action
	gs := e.gs

	for _, id := range gs.PiecesOf(seat) {
		p := &gs.Pieces[id]
		switch p.State {
		case AtHome:
			if a, ok := e.entryAction(p, face); ok {
				actions = append(actions, a)
			}
		case OnTrack:
			if a, ok := e.advanceAction(p, face); ok {
				actions = append(actions, a)
			}
		}
	}
	return actions
}

// entryAction checks whether a home piece may enter on its start cell.
// Entry needs the maximum face and an enterable start cell.
func (e *Engine) entryAction(p *Piece, face int) (action, bool) {
	if face != e.rules.MaxFace() {
		return action{}, false
	}
	start := e.gs.Board.Start(p.Seat)
	captures, ok := e.landing(p.Seat, start)
	if !ok {
		return action{}, false
	}
	return action{
		kind:         actEnter,
		piece:        p.ID,
		from:         events.PosHome,
		to:           start,
		fromProgress: -1,
		captures:     captures,
	}, true
}

// advanceAction checks whether an on-track piece may advance by face cells.
// Overshooting the finish bars the piece for this roll.
func (e *Engine) advanceAction(p *Piece, face int) (action, bool) {
	b := e.gs.Board
	np := p.Progress + face
	finish := e.rules.FinishProgress()
	if np > finish {
		return action{}, false
	}

	a := action{
		kind:         actAdvance,
		piece:        p.ID,
		from:         b.Position(p),
		fromProgress: p.Progress,
		toProgress:   np,
		captures:     -1,
	}

	if np == finish {
		a.to = events.PosFinished
		a.finishes = true
		return a, true
	}

	to := b.AbsCell(p.Seat, np)
	captures, ok := e.landing(p.Seat, to)
	if !ok {
		return action{}, false
	}
	a.to = to
	a.captures = captures
	return a, true
}

// landing resolves arrival on an absolute position: (captured piece or -1, legal).
// Own pieces block everywhere; opponents block on safe cells and are captured
// elsewhere. Column cells only ever hold the owner's pieces.
func (e *Engine) landing(seat, pos int) (int, bool) {
	occupant := e.gs.OccupantAt(pos)
	if occupant < 0 {
		return -1, true
	}
	if e.gs.Pieces[occupant].Seat == seat {
		return -1, false
	}
	if e.gs.Board.IsSafe(pos) {
		return -1, false
	}
	return occupant, true
}
