package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"ludo/internal/common"
	"ludo/internal/game/events"
)

// Engine owns the game state and advances it one legal action at a time.
// Every state change is published on the event bus before PlayTurn returns,
// in the order it occurred; the log recorder subscribes there.
type Engine struct {
	rules   Rules
	gs      *GameState
	rng     *rand.Rand
	roll    func() int
	bus     events.Publisher
	newTurn bool
	over    bool
	result  *Result
	logger  zerolog.Logger
}

// NewEngine seats the named players with all pieces at home. Fails with
// ConfigurationError for fewer than 2 or more than 4 players.
func NewEngine(gameID string, names []string, rules Rules, rng *rand.Rand, bus events.Publisher) (*Engine, error) {
	if !common.IsValidPlayerCount(len(names)) {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("need %d to %d players, got %d", common.MinPlayers, common.MaxPlayers, len(names)),
		}
	}
	for i, name := range names {
		if name == "" {
			return nil, &ConfigurationError{Reason: fmt.Sprintf("player %d has an empty name", i)}
		}
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	players := make([]Player, len(names))
	for i, name := range names {
		players[i] = Player{ID: i, Name: name}
	}

	pieces := make([]Piece, len(names)*rules.PiecesPerPlayer)
	for seat := range names {
		for idx := 0; idx < rules.PiecesPerPlayer; idx++ {
			id := seat*rules.PiecesPerPlayer + idx
			pieces[id] = Piece{ID: id, Seat: seat, Index: idx, State: AtHome}
		}
	}

	e := &Engine{
		rules: rules,
		gs: &GameState{
			Board:   NewBoard(rules),
			Players: players,
			Pieces:  pieces,
		},
		rng:     rng,
		bus:     bus,
		newTurn: true,
		logger:  log.With().Str("component", "engine").Str("game_id", gameID).Logger(),
	}
	e.roll = func() int { return e.rng.Intn(e.rules.DieFaces) + 1 }
	return e, nil
}

// GameState exposes the current state for inspection
func (e *Engine) GameState() *GameState {
	return e.gs
}

// Positions returns the encoded position of every piece, indexed by global
// piece ID. Consumers folding the log reproduce exactly this slice.
func (e *Engine) Positions() []int {
	out := make([]int, len(e.gs.Pieces))
	for i := range e.gs.Pieces {
		out[i] = e.gs.Board.Position(&e.gs.Pieces[i])
	}
	return out
}

// IsFinished reports whether a terminal condition holds
func (e *Engine) IsFinished() bool {
	return e.over
}

// Result returns the terminal ranking, nil until the game is over
func (e *Engine) Result() *Result {
	return e.result
}

// PlayTurn performs exactly one player's turn: rolls, picks the best legal
// action (capture > finish > advance > entry), applies it and publishes the
// resulting events. Rolls with no legal action publish an explicit skip.
func (e *Engine) PlayTurn() error {
	if e.over {
		return ErrGameOver
	}

	e.gs.Turn++
	seat := e.gs.Current
	if e.newTurn {
		e.publish(events.TurnStarted{Player: seat})
		e.newTurn = false
	}

	face := e.roll()
	e.publish(events.Rolled{Player: seat, Face: face})
	e.logger.Debug().Int("turn", e.gs.Turn).Int("player", seat).Int("face", face).Msg("Rolled")

	actions := e.legalActions(seat, face)
	if len(actions) == 0 {
		e.publish(events.Skipped{Player: seat})
	} else if err := e.apply(selectAction(actions)); err != nil {
		return err
	}

	if e.gs.Players[seat].Finished == e.rules.PiecesPerPlayer {
		e.finish(seat)
		return nil
	}
	if e.gs.Turn >= e.rules.MaxTurns {
		e.finish(-1)
		return nil
	}

	// Maximum face earns an extra turn; no TURN entry separates the groups
	if face == e.rules.MaxFace() {
		return nil
	}
	e.gs.Current = (seat + 1) % len(e.gs.Players)
	e.newTurn = true
	return nil
}

// Run plays turns until the game terminates and returns the result
func (e *Engine) Run() (*Result, error) {
	for !e.IsFinished() {
		if err := e.PlayTurn(); err != nil {
			return nil, err
		}
	}
	e.logger.Info().
		Int("turns", e.result.Turns).
		Int("winner", e.result.Winner).
		Bool("draw", e.result.Draw).
		Msg("Game finished")
	return e.result, nil
}

// apply mutates state for one selected action and publishes its events.
// The mover's event always precedes the victim's capture event.
func (e *Engine) apply(a action) error {
	p := &e.gs.Pieces[a.piece]
	if p.State == Done {
		return fmt.Errorf("%w: selected finished piece %d", ErrInvariant, a.piece)
	}

	switch {
	case a.kind == actEnter:
		if p.State != AtHome {
			return fmt.Errorf("%w: entry for piece %d not at home", ErrInvariant, a.piece)
		}
		p.State = OnTrack
		p.Progress = 0
		e.publish(events.Entered{Piece: p.ID, Cell: a.to})
	case a.finishes:
		p.State = Done
		e.gs.Players[p.Seat].Finished++
		e.publish(events.Finished{Piece: p.ID})
	default:
		p.Progress = a.toProgress
		e.publish(events.Moved{Piece: p.ID, From: a.from, To: a.to})
	}

	if a.captures >= 0 {
		victim := &e.gs.Pieces[a.captures]
		if victim.State != OnTrack || victim.Seat == p.Seat {
			return fmt.Errorf("%w: capture of piece %d", ErrInvariant, a.captures)
		}
		victim.State = AtHome
		victim.Progress = 0
		e.publish(events.Captured{Piece: victim.ID})
	}
	return nil
}

// finish records the terminal result and publishes the END event
func (e *Engine) finish(winner int) {
	e.over = true
	e.result = &Result{
		Winner:  winner,
		Draw:    winner < 0,
		Turns:   e.gs.Turn,
		Ranking: e.ranking(winner),
	}
	e.publish(events.GameEnded{Winner: winner, Draw: winner < 0})
}

func (e *Engine) publish(ev events.Event) {
	if e.bus != nil {
		e.bus.Publish(ev)
	}
}
