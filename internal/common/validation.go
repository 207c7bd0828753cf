package common

// Player count limits for a single game
const (
	MinPlayers = 2
	MaxPlayers = 4
)

// IsValidPlayerCount checks if n players can sit at one board
func IsValidPlayerCount(n int) bool {
	return n >= MinPlayers && n <= MaxPlayers
}

// IsValidSeat checks if a player ID is a seat in a game of n players
func IsValidSeat(id, n int) bool {
	return id >= 0 && id < n
}

// IsValidPieceID checks if a global piece ID belongs to a game of n players
// with perPlayer pieces each
func IsValidPieceID(id, n, perPlayer int) bool {
	return id >= 0 && id < n*perPlayer
}
