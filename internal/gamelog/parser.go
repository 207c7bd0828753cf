package gamelog

import (
	"fmt"
	"strconv"
	"strings"

	"ludo/internal/common"
	"ludo/internal/game/events"
)

// MalformedLogError reports the first grammar violation in a log, carrying
// the offending line for diagnosis. A parse either succeeds completely or
// fails with one of these; nothing partial is returned.
type MalformedLogError struct {
	Line    int // 1-based, counting raw lines including blanks
	Content string
	Reason  string
}

func (e *MalformedLogError) Error() string {
	return fmt.Sprintf("malformed log line %d: %s (%q)", e.Line, e.Reason, e.Content)
}

// ParseGame parses the complete log text into its metadata header and the
// ordered event sequence. It is a pure function: no state survives the call,
// and identical input always yields identical output.
func ParseGame(text string) (Metadata, []events.Event, error) {
	var (
		meta   Metadata
		evs    []events.Event
		seen   bool // any entry parsed yet, closing the header
		ended  bool
		roster = -1 // player count once the header closes, -1 while unknown
	)

	fail := func(lineno int, content, reason string) (Metadata, []events.Event, error) {
		return Metadata{}, nil, &MalformedLogError{Line: lineno, Content: content, Reason: reason}
	}

	for lineno, raw := range strings.Split(text, "\n") {
		lineno++ // 1-based
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if ended {
			return fail(lineno, line, "entry after END")
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "GAME":
			if seen || len(meta.Players) > 0 || meta.GameID != "" {
				return fail(lineno, line, "GAME line outside the leading header")
			}
			if len(fields) != 3 {
				return fail(lineno, line, "GAME wants 2 fields")
			}
			seed, err := strconv.ParseInt(fields[2], 10, 64)
			if err != nil {
				return fail(lineno, line, "GAME seed is not an integer")
			}
			meta.GameID = fields[1]
			meta.Seed = seed
			continue

		case "PLAYER":
			if seen {
				return fail(lineno, line, "PLAYER line outside the leading header")
			}
			if len(fields) < 3 {
				return fail(lineno, line, "PLAYER wants an ID and a name")
			}
			id, err := strconv.Atoi(fields[1])
			if err != nil {
				return fail(lineno, line, "PLAYER ID is not an integer")
			}
			if id != len(meta.Players) {
				return fail(lineno, line, fmt.Sprintf("PLAYER ID %d out of seat order", id))
			}
			meta.Players = append(meta.Players, PlayerInfo{
				ID:   id,
				Name: strings.Join(fields[2:], " "),
			})
			continue
		}

		// First non-header line closes the header for good
		if !seen {
			seen = true
			if len(meta.Players) > 0 {
				roster = len(meta.Players)
			}
		}

		ev, reason := parseEntry(fields, roster)
		if reason != "" {
			return fail(lineno, line, reason)
		}
		evs = append(evs, ev)
		if _, ok := ev.(events.GameEnded); ok {
			ended = true
		}
	}

	return meta, evs, nil
}

// parseEntry decodes one non-header line. The switch is exhaustive over the
// grammar's discriminators; anything else is malformed.
func parseEntry(fields []string, roster int) (events.Event, string) {
	p := &lineParser{fields: fields, roster: roster}

	var ev events.Event
	switch fields[0] {
	case events.KindTurn:
		ev = events.TurnStarted{Player: p.playerID()}
	case events.KindRoll:
		ev = events.Rolled{Player: p.playerID(), Face: p.intField()}
	case events.KindEnter:
		ev = events.Entered{Piece: p.intField(), Cell: p.intField()}
	case events.KindMove:
		ev = events.Moved{Piece: p.intField(), From: p.intField(), To: p.intField()}
	case events.KindCapture:
		ev = events.Captured{Piece: p.intField()}
	case events.KindFinish:
		ev = events.Finished{Piece: p.intField()}
	case events.KindSkip:
		ev = events.Skipped{Player: p.playerID()}
	case events.KindEnd:
		return parseEnd(fields, roster)
	default:
		return nil, fmt.Sprintf("unknown discriminator %q", fields[0])
	}

	if p.err == "" && p.next != len(fields)-1 {
		p.err = fmt.Sprintf("%s wants %d fields, got %d", fields[0], p.next, len(fields)-1)
	}
	if p.err != "" {
		return nil, p.err
	}
	return ev, ""
}

// lineParser consumes the integer fields of one entry, collecting the first
// error instead of aborting so callers check once per line.
type lineParser struct {
	fields []string
	roster int
	next   int // fields consumed after the discriminator
	err    string
}

func (p *lineParser) intField() int {
	if p.err != "" {
		return 0
	}
	idx := 1 + p.next
	if idx >= len(p.fields) {
		p.err = fmt.Sprintf("%s wants at least %d fields", p.fields[0], p.next+1)
		return 0
	}
	v, err := strconv.Atoi(p.fields[idx])
	if err != nil {
		p.err = fmt.Sprintf("%s field %d is not an integer", p.fields[0], p.next+1)
		return 0
	}
	p.next++
	return v
}

// playerID reads an integer field and range-checks it when the roster is known
func (p *lineParser) playerID() int {
	v := p.intField()
	if p.err == "" && p.roster > 0 && !common.IsValidSeat(v, p.roster) {
		p.err = fmt.Sprintf("player %d not in the roster", v)
	}
	return v
}

func parseEnd(fields []string, roster int) (events.Event, string) {
	if len(fields) < 2 {
		return nil, "END wants WIN or DRAW"
	}
	switch fields[1] {
	case "DRAW":
		if len(fields) != 2 {
			return nil, "END DRAW takes no fields"
		}
		return events.GameEnded{Winner: -1, Draw: true}, ""
	case "WIN":
		if len(fields) != 3 {
			return nil, "END WIN wants a player ID"
		}
		winner, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, "END WIN player ID is not an integer"
		}
		if roster > 0 && !common.IsValidSeat(winner, roster) {
			return nil, fmt.Sprintf("winner %d not in the roster", winner)
		}
		return events.GameEnded{Winner: winner}, ""
	default:
		return nil, fmt.Sprintf("END result %q is not WIN or DRAW", fields[1])
	}
}
