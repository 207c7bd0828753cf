package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ludo/internal/game/events"
)

func testLayout() *Layout {
	return NewLayout(28, 40, 4, 4)
}

func inBoard(l *Layout, pt image.Point) bool {
	return pt.X >= 0 && pt.X < l.W && pt.Y >= 0 && pt.Y < l.W
}

func TestLayoutDimensions(t *testing.T) {
	l := testLayout()
	assert.Greater(t, l.W, 0)
	assert.Greater(t, l.H, l.W, "caption band extends below the board")
	assert.Less(t, l.Caption.Y, l.H)
}

func TestTrackPointsInsideAndDistinct(t *testing.T) {
	l := testLayout()
	seen := make(map[image.Point]int)
	for cell := 0; cell < l.TrackLen; cell++ {
		pt := l.TrackPoint(cell)
		require.True(t, inBoard(l, pt), "cell %d at %v is off the image", cell, pt)
		prev, dup := seen[pt]
		require.False(t, dup, "cells %d and %d collapse to %v", prev, cell, pt)
		seen[pt] = cell
	}
}

func TestColumnPointsInsideRing(t *testing.T) {
	l := testLayout()
	for seat := 0; seat < 4; seat++ {
		for slot := 0; slot < l.HomeLen; slot++ {
			pt := l.ColumnPoint(seat, slot)
			assert.True(t, inBoard(l, pt), "seat %d slot %d at %v", seat, slot, pt)
		}
	}
}

func TestHomePointsPerSeatDistinct(t *testing.T) {
	l := testLayout()
	seen := make(map[image.Point]bool)
	for seat := 0; seat < 4; seat++ {
		for idx := 0; idx < l.PerSeat; idx++ {
			pt := l.HomePoint(seat, idx)
			assert.True(t, inBoard(l, pt))
			assert.False(t, seen[pt], "home slot collision at %v", pt)
			seen[pt] = true
		}
	}
}

func TestPiecePointDispatch(t *testing.T) {
	l := testLayout()

	// piece 5 is seat 1, index 1
	assert.Equal(t, l.HomePoint(1, 1), l.PiecePoint(5, events.PosHome))
	assert.Equal(t, l.FinishPoint(5), l.PiecePoint(5, events.PosFinished))
	assert.Equal(t, l.TrackPoint(13), l.PiecePoint(5, 13))
	// position 45 is seat 1's column slot 1
	assert.Equal(t, l.ColumnPoint(1, 1), l.PiecePoint(5, 45))
}
