package render

import (
	"image"
	"math"

	"ludo/internal/common"
	"ludo/internal/game/events"
)

// Layout places every board location on the output image: the shared ring of
// track cells, the home columns pointing inward from each start cell, the
// four home boxes in the corners, and a finish cluster in the center.
type Layout struct {
	Cell     int // cell diameter in pixels
	TrackLen int
	HomeLen  int
	PerSeat  int // pieces per player

	W, H    int // full image size, caption band included
	Caption image.Point

	center image.Point
	radius float64
}

// NewLayout computes the geometry for one board
func NewLayout(cellSize, trackLen, homeLen, perSeat int) *Layout {
	// Ring circumference leaves a gap of ~35% of a cell between neighbors
	radius := float64(trackLen) * float64(cellSize) * 1.35 / (2 * math.Pi)
	radius = math.Max(radius, float64(cellSize)*4)

	side := 2 * (int(radius) + 2*cellSize)
	band := 3 * cellSize

	return &Layout{
		Cell:     cellSize,
		TrackLen: trackLen,
		HomeLen:  homeLen,
		PerSeat:  perSeat,
		W:        side,
		H:        side + band,
		Caption:  image.Point{X: cellSize / 2, Y: side + cellSize/2},
		center:   image.Point{X: side / 2, Y: side / 2},
		radius:   radius,
	}
}

// trackAngle returns the ring angle of a track cell, cell 0 at twelve o'clock
func (l *Layout) trackAngle(cell int) float64 {
	return 2*math.Pi*float64(cell)/float64(l.TrackLen) - math.Pi/2
}

func (l *Layout) ringPoint(angle, radius float64) image.Point {
	return image.Point{
		X: l.center.X + int(radius*math.Cos(angle)),
		Y: l.center.Y + int(radius*math.Sin(angle)),
	}
}

// TrackPoint is the center of a shared track cell
func (l *Layout) TrackPoint(cell int) image.Point {
	return l.ringPoint(l.trackAngle(cell), l.radius)
}

// ColumnPoint is the center of a home-column slot, stepping inward from the
// seat's start cell
func (l *Layout) ColumnPoint(seat, slot int) image.Point {
	start := seat * l.TrackLen / common.MaxPlayers
	inset := float64((slot+1)*l.Cell) * 1.15
	return l.ringPoint(l.trackAngle(start), l.radius-inset)
}

// HomePoint is where a piece waits before entry, a small grid in the seat's
// corner of the image
func (l *Layout) HomePoint(seat, index int) image.Point {
	half := l.Cell / 2
	cols := 2
	gx, gy := index%cols, index/cols

	var corner image.Point
	switch seat {
	case 0:
		corner = image.Point{X: half, Y: half}
	case 1:
		corner = image.Point{X: l.W - half - cols*l.Cell, Y: half}
	case 2:
		corner = image.Point{X: l.W - half - cols*l.Cell, Y: l.W - half - cols*l.Cell}
	default:
		corner = image.Point{X: half, Y: l.W - half - cols*l.Cell}
	}
	return image.Point{
		X: corner.X + gx*l.Cell + half,
		Y: corner.Y + gy*l.Cell + half,
	}
}

// FinishPoint clusters finished pieces around the board center
func (l *Layout) FinishPoint(pieceID int) image.Point {
	cols := common.MaxPlayers
	gx, gy := pieceID%cols, pieceID/cols
	off := l.Cell * 3 / 4
	return image.Point{
		X: l.center.X + (gx-cols/2)*off,
		Y: l.center.Y + (gy-cols/2)*off,
	}
}

// PiecePoint maps a piece's encoded position to its pixel center
func (l *Layout) PiecePoint(pieceID, pos int) image.Point {
	seat := pieceID / l.PerSeat
	switch {
	case pos == events.PosHome:
		return l.HomePoint(seat, pieceID%l.PerSeat)
	case pos == events.PosFinished:
		return l.FinishPoint(pieceID)
	case pos < l.TrackLen:
		return l.TrackPoint(pos)
	default:
		return l.ColumnPoint((pos-l.TrackLen)/l.HomeLen, (pos-l.TrackLen)%l.HomeLen)
	}
}
