package testutil

// SamplePlayers is a roster usable by any test needing a 2-seat game
func SamplePlayers() []string {
	return []string{"alice", "bob"}
}

// SampleLog returns a small, hand-checked game log: two players, one entry,
// one move, a capture and a win. Useful wherever a syntactically complete
// log is needed without running a simulation.
func SampleLog() string {
	return `GAME 7c9f6f6e-8a3b-4c0e-9f6e-1d2c3b4a5968 42
PLAYER 0 alice
PLAYER 1 bob
TURN 0
ROLL 0 6
ENTER 0 0
ROLL 0 3
MOVE 0 0 3
TURN 1
ROLL 1 6
ENTER 4 10
ROLL 1 5
MOVE 4 10 15
TURN 0
ROLL 0 6
MOVE 0 3 9
ROLL 0 6
MOVE 0 9 15
CAPTURE 4
ROLL 0 2
MOVE 0 15 17
END WIN 0
`
}
