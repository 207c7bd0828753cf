package game

// actionKind discriminates the two ways a roll can be spent
type actionKind int

const (
	actEnter actionKind = iota
	actAdvance
)

// action is one legal way the active player can spend a roll. Positions use
// the absolute encoding; from is PosHome for an entry.
type action struct {
	kind         actionKind
	piece        int // global piece ID
	from, to     int
	fromProgress int // -1 for an entry; tie-break key
	toProgress   int
	captures     int // global ID of the piece sent home, -1 for none
	finishes     bool
}

// selectAction picks one action deterministically:
// capture > finish > advance > entry, ties broken by highest progress.
func selectAction(actions []action) action {
	best := actions[0]
	for _, a := range actions[1:] {
		if better(a, best) {
			best = a
		}
	}
	return best
}

func better(a, b action) bool {
	ar, br := rank(a), rank(b)
	if ar != br {
		return ar < br
	}
	return a.fromProgress > b.fromProgress
}

func rank(a action) int {
	switch {
	case a.captures >= 0:
		return 0
	case a.finishes:
		return 1
	case a.kind == actAdvance:
		return 2
	default:
		return 3
	}
}
