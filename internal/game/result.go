package game

import (
	"sort"
)

// Result is the terminal outcome of one simulation, immutable once computed.
type Result struct {
	Winner  int // seat of the winner, -1 on a max-turn draw
	Draw    bool
	Turns   int
	Ranking []int // seats, best first
}

// ranking orders seats by finished pieces, then total progress, then seat.
// A winner always ranks first.
func (e *Engine) ranking(winner int) []int {
	gs := e.gs
	seats := make([]int, len(gs.Players))
	for i := range seats {
		seats[i] = i
	}
	sort.SliceStable(seats, func(i, j int) bool {
		a, b := seats[i], seats[j]
		if a == winner || b == winner {
			return a == winner
		}
		if gs.Players[a].Finished != gs.Players[b].Finished {
			return gs.Players[a].Finished > gs.Players[b].Finished
		}
		if pa, pb := gs.TotalProgress(a), gs.TotalProgress(b); pa != pb {
			return pa > pb
		}
		return a < b
	})
	return seats
}
