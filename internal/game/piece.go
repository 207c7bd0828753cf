package game

// PieceState is where a piece is in its life cycle
type PieceState int

const (
	// AtHome is the off-board holding state, before entry or after capture
	AtHome PieceState = iota
	// OnTrack covers the shared ring and the private home column
	OnTrack
	// Done is terminal: the piece completed the full path
	Done
)

// Piece is one token on the board. Pieces are created at game start and only
// ever relocated, never destroyed.
type Piece struct {
	ID       int // global: Seat*PiecesPerPlayer + Index
	Seat     int
	Index    int
	State    PieceState
	Progress int // cells advanced since entry; meaningful only while OnTrack
}
