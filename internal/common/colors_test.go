package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerColorsDistinct(t *testing.T) {
	seen := make(map[[4]uint32]int)
	for id := 0; id < MaxPlayers; id++ {
		c, ok := PlayerColors[id]
		require.True(t, ok, "seat %d should have a color", id)
		r, g, b, a := c.RGBA()
		key := [4]uint32{r, g, b, a}
		prev, dup := seen[key]
		assert.False(t, dup, "seat %d shares a color with seat %d", id, prev)
		seen[key] = id
	}
}

func TestPlayerColorFallback(t *testing.T) {
	// Off-board IDs get the neutral gray, not a seat color
	neutral := PlayerColor(99)
	for id := 0; id < MaxPlayers; id++ {
		assert.NotEqual(t, PlayerColors[id], neutral)
	}
}

func TestPlayerANSIColorsCoverAllSeats(t *testing.T) {
	for id := 0; id < MaxPlayers; id++ {
		assert.Contains(t, PlayerANSIColors, id)
	}
}
