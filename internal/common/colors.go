package common

import (
	"image/color"
)

// PlayerColors defines the color scheme for each seat
var PlayerColors = map[int]color.Color{
	0: color.RGBA{200, 50, 50, 255},  // Red
	1: color.RGBA{50, 100, 200, 255}, // Blue
	2: color.RGBA{50, 200, 50, 255},  // Green
	3: color.RGBA{200, 200, 50, 255}, // Yellow
}

// PlayerANSIColors maps seats to ANSI foreground codes for terminal output
var PlayerANSIColors = map[int]string{
	0: "\033[31m",
	1: "\033[34m",
	2: "\033[32m",
	3: "\033[33m",
}

// Board colors
var (
	TrackCellColor   = color.RGBA{235, 235, 235, 255}
	SafeCellColor    = color.RGBA{190, 190, 190, 255}
	HomeBoxColor     = color.RGBA{215, 215, 215, 255}
	CellOutlineColor = color.RGBA{60, 60, 60, 255}
	PieceLabelColor  = color.White
)

// UI colors
var (
	BackgroundColor = color.RGBA{250, 250, 245, 255}
	CaptionColor    = color.Black
)

// PlayerColor returns the color for a seat, gray for anything off the board.
func PlayerColor(id int) color.Color {
	if c, ok := PlayerColors[id]; ok {
		return c
	}
	return color.RGBA{120, 120, 120, 255}
}
