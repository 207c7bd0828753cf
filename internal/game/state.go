package game

type Player struct {
	ID       int
	Name     string
	Finished int // pieces that completed the path, cached as they finish
}

type GameState struct {
	Turn    int // turns taken so far, counting extra turns
	Current int // seat whose turn it is
	Board   *Board
	Players []Player
	Pieces  []Piece // indexed by global piece ID
}

// PiecesOf returns the global piece IDs owned by a seat, in index order
func (gs *GameState) PiecesOf(seat int) []int {
	per := len(gs.Pieces) / len(gs.Players)
	ids := make([]int, per)
	for i := range ids {
		ids[i] = seat*per + i
	}
	return ids
}

// OccupantAt returns the global ID of the piece on an absolute position, or
// -1 when the cell is empty. Home and finished pieces occupy nothing.
func (gs *GameState) OccupantAt(pos int) int {
	for i := range gs.Pieces {
		p := &gs.Pieces[i]
		if p.State == OnTrack && gs.Board.Position(p) == pos {
			return p.ID
		}
	}
	return -1
}

// TotalProgress sums the progress of a seat's pieces, counting finished
// pieces at full path length. Used for ranking.
func (gs *GameState) TotalProgress(seat int) int {
	full := gs.Board.TrackLen + gs.Board.HomeLen
	total := 0
	for _, id := range gs.PiecesOf(seat) {
		switch p := gs.Pieces[id]; p.State {
		case Done:
			total += full
		case OnTrack:
			total += p.Progress
		}
	}
	return total
}
