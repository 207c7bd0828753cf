package events

// Position sentinels used by the absolute position encoding shared between
// the engine, the log format, and every consumer folding the event stream.
// Non-negative values are board cells: shared track cells 0..L-1, then the
// per-player home-column slots L + seat*H + slot.
const (
	PosHome     = -1
	PosFinished = -2
)

// Log discriminators, one per event kind
const (
	KindTurn    = "TURN"
	KindRoll    = "ROLL"
	KindEnter   = "ENTER"
	KindMove    = "MOVE"
	KindCapture = "CAPTURE"
	KindFinish  = "FINISH"
	KindSkip    = "SKIP"
	KindEnd     = "END"
)

// TurnStarted marks the turn passing to a new player. It is not emitted for
// an extra turn earned by rolling the maximum face.
type TurnStarted struct {
	Player int
}

// Rolled records a die roll by a player, legal move or not.
type Rolled struct {
	Player int
	Face   int
}

// Entered records a piece leaving home for its start cell.
type Entered struct {
	Piece int
	Cell  int
}

// Moved records a piece advancing from one position to another. Positions use
// the board's absolute encoding: shared track cells first, then per-player
// home-column slots.
type Moved struct {
	Piece int
	From  int
	To    int
}

// Captured records a piece being sent back home by an opponent landing on it.
type Captured struct {
	Piece int
}

// Finished records a piece completing the full path.
type Finished struct {
	Piece int
}

// Skipped records a roll for which no legal action existed.
type Skipped struct {
	Player int
}

// GameEnded terminates the event stream: either a win or a max-turn draw.
type GameEnded struct {
	Winner int // seat of the winner, -1 on a draw
	Draw   bool
}

func (TurnStarted) Kind() string { return KindTurn }
func (Rolled) Kind() string      { return KindRoll }
func (Entered) Kind() string     { return KindEnter }
func (Moved) Kind() string       { return KindMove }
func (Captured) Kind() string    { return KindCapture }
func (Finished) Kind() string    { return KindFinish }
func (Skipped) Kind() string     { return KindSkip }
func (GameEnded) Kind() string   { return KindEnd }

func (TurnStarted) sealed() {}
func (Rolled) sealed()      {}
func (Entered) sealed()     {}
func (Moved) sealed()       {}
func (Captured) sealed()    {}
func (Finished) sealed()    {}
func (Skipped) sealed()     {}
func (GameEnded) sealed()   {}
