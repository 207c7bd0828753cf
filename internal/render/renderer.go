// Package render turns a parsed game log into an animated GIF: one frame per
// log entry, pieces moving around the ring as the events replay.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"

	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"ludo/internal/common"
	"ludo/internal/config"
	"ludo/internal/game/events"
	"ludo/internal/gamelog"
)

// Options holds everything the renderer needs besides the log itself
type Options struct {
	CellSize        int
	FrameMillis     int
	TrackLength     int
	HomeColumn      int
	PiecesPerPlayer int
	SafeCells       []int
}

// OptionsFromConfig builds Options from the loaded configuration
func OptionsFromConfig() Options {
	c := config.Get()
	return Options{
		CellSize:        c.Render.CellSize,
		FrameMillis:     c.Render.FrameMillis,
		TrackLength:     c.Game.Rules.TrackLength,
		HomeColumn:      c.Game.Rules.HomeColumn,
		PiecesPerPlayer: c.Game.Rules.PiecesPerPlayer,
		SafeCells:       append([]int(nil), c.Game.Rules.SafeCells...),
	}
}

// GIF renders the full animation: an initial frame with every piece at home,
// then one frame per event.
func GIF(meta gamelog.Metadata, evs []events.Event, opts Options) (*gif.GIF, error) {
	snapshots, err := gamelog.Replay(meta, evs, opts.PiecesPerPlayer)
	if err != nil {
		return nil, fmt.Errorf("replaying log for rendering: %w", err)
	}

	layout := NewLayout(opts.CellSize, opts.TrackLength, opts.HomeColumn, opts.PiecesPerPlayer)
	safe := make(map[int]bool, len(opts.SafeCells))
	for _, c := range opts.SafeCells {
		safe[c] = true
	}
	fr := &framer{layout: layout, safe: safe}

	log.Debug().
		Str("component", "render").
		Int("events", len(evs)).
		Int("width", layout.W).
		Int("height", layout.H).
		Msg("Rendering frames")

	delay := opts.FrameMillis / 10 // GIF delays are in centiseconds
	out := &gif.GIF{}

	initial := make([]int, len(meta.Players)*opts.PiecesPerPlayer)
	for i := range initial {
		initial[i] = events.PosHome
	}
	out.Image = append(out.Image, fr.frame(initial, headerCaption(meta)))
	out.Delay = append(out.Delay, delay)

	turn := 0
	for _, snap := range snapshots {
		if _, ok := snap.Event.(events.TurnStarted); ok {
			turn++
		}
		out.Image = append(out.Image, fr.frame(snap.Positions, eventCaption(meta, snap.Event, turn, opts.PiecesPerPlayer)))
		out.Delay = append(out.Delay, delay)
	}

	return out, nil
}

// framer draws individual frames onto a fixed palette
type framer struct {
	layout *Layout
	safe   map[int]bool
}

func boardPalette() color.Palette {
	p := color.Palette{
		common.BackgroundColor,
		common.TrackCellColor,
		common.SafeCellColor,
		common.HomeBoxColor,
		common.CellOutlineColor,
		common.CaptionColor,
		color.White,
	}
	for seat := 0; seat < common.MaxPlayers; seat++ {
		p = append(p, common.PlayerColor(seat))
	}
	return p
}

func (fr *framer) frame(positions []int, caption string) *image.Paletted {
	l := fr.layout
	img := image.NewRGBA(image.Rect(0, 0, l.W, l.H))
	draw.Draw(img, img.Bounds(), image.NewUniform(common.BackgroundColor), image.Point{}, draw.Src)

	// Ring cells
	for cell := 0; cell < l.TrackLen; cell++ {
		fill := common.TrackCellColor
		if fr.safe[cell] {
			fill = common.SafeCellColor
		}
		drawCell(img, l.TrackPoint(cell), l.Cell/2, fill)
	}

	// Home columns and corner boxes
	for seat := 0; seat < common.MaxPlayers; seat++ {
		for slot := 0; slot < l.HomeLen; slot++ {
			drawCell(img, l.ColumnPoint(seat, slot), l.Cell/2-2, common.HomeBoxColor)
		}
		for idx := 0; idx < l.PerSeat; idx++ {
			drawCell(img, l.HomePoint(seat, idx), l.Cell/2-2, common.HomeBoxColor)
		}
	}

	// Pieces
	for id, pos := range positions {
		seat := id / l.PerSeat
		pt := l.PiecePoint(id, pos)
		fillCircle(img, pt, l.Cell/2-3, common.PlayerColor(seat))
		label := fmt.Sprintf("%d", id%l.PerSeat)
		drawText(img, pt.X-3, pt.Y+4, label, common.PieceLabelColor)
	}

	// Caption band
	drawText(img, l.Caption.X, l.Caption.Y+13, caption, common.CaptionColor)

	pal := image.NewPaletted(img.Bounds(), boardPalette())
	draw.FloydSteinberg.Draw(pal, img.Bounds(), img, image.Point{})
	return pal
}

// drawCell draws an outlined board cell
func drawCell(img *image.RGBA, center image.Point, r int, fill color.Color) {
	fillCircle(img, center, r, common.CellOutlineColor)
	fillCircle(img, center, r-1, fill)
}

// fillCircle rasterizes a filled disc
func fillCircle(img *image.RGBA, center image.Point, r int, c color.Color) {
	if r < 1 {
		r = 1
	}
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r*r {
				img.Set(center.X+dx, center.Y+dy, c)
			}
		}
	}
}

// drawText renders one line with the fixed basic font
func drawText(img *image.RGBA, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
