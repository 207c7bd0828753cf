package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPlayerCount(t *testing.T) {
	tests := []struct {
		name     string
		n        int
		expected bool
	}{
		{"zero players", 0, false},
		{"one player", 1, false},
		{"two players", 2, true},
		{"three players", 3, true},
		{"four players", 4, true},
		{"five players", 5, false},
		{"negative", -1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidPlayerCount(tt.n))
		})
	}
}

func TestIsValidSeat(t *testing.T) {
	assert.True(t, IsValidSeat(0, 2))
	assert.True(t, IsValidSeat(1, 2))
	assert.False(t, IsValidSeat(2, 2))
	assert.False(t, IsValidSeat(-1, 2))
}

func TestIsValidPieceID(t *testing.T) {
	// 2 players with 4 pieces each: piece IDs 0..7
	assert.True(t, IsValidPieceID(0, 2, 4))
	assert.True(t, IsValidPieceID(7, 2, 4))
	assert.False(t, IsValidPieceID(8, 2, 4))
	assert.False(t, IsValidPieceID(-1, 2, 4))
}
