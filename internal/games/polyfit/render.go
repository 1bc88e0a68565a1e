package polyfit

import (
	"fmt"

	"github.com/vovakirdan/polyfit/internal/core"
	"github.com/vovakirdan/polyfit/internal/placement"
	"github.com/vovakirdan/polyfit/internal/polyomino"
	"github.com/vovakirdan/polyfit/internal/puzzle"
)

const (
	cellWidth = 2 // characters per grid column
	hudHeight = 2
	gap       = 1
	groupGap  = 3
)

const (
	glyphFilled   = '█'
	glyphOutline  = '░'
	colorSelected = core.ColorYellow
	colorIdle     = core.ColorGray
)

// boxSize is the outer size of one outline or piece box.
func (g *Game) boxSize() (w, h int) {
	k := g.cfg.PieceSize
	return k*cellWidth + 2, k + 2
}

// outlineColumns is how many outline boxes fit side by side.
func (g *Game) outlineColumns() int {
	w, _ := g.boxSize()
	return max((g.screenW+gap)/(w+gap), 1)
}

// layoutSize returns the smallest canvas the board fits on.
func (g *Game) layoutSize() (w, h int) {
	bw, bh := g.boxSize()
	cols := g.outlineColumns()
	rows := (len(g.outlines) + cols - 1) / cols

	pieces := g.tray.Cap() + g.parking.Cap()
	w = max(bw, pieces*(bw+gap)+groupGap)
	h = hudHeight + rows*bh + 1 + bh + 1
	return w, h
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		w, h := g.layoutSize()
		dst.DrawTextCentered(g.screenH/2-1, "Window too small")
		dst.DrawTextCentered(g.screenH/2, fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	g.renderHUD(dst)
	trayY := g.renderOutlines(dst)
	g.renderPieces(dst, trayY)
	g.renderOverlays(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColor(0, 0, g.Title(), core.ColorCyan)
	dst.DrawText(len(g.Title())+2, 0, fmt.Sprintf("Score: %d  Solved: %d", g.score, g.solved))

	if g.mode == ModeTimed {
		next := fmt.Sprintf("Next piece: %d", g.countdown)
		dst.DrawTextColor(dst.Width()-len(next), 0, next, colorIdle)
	}
	if g.message != "" {
		dst.DrawTextColor(0, 1, g.message, core.ColorGreen)
	}
}

// renderOutlines draws the board and returns the first row below it.
func (g *Game) renderOutlines(dst *core.Screen) int {
	bw, bh := g.boxSize()
	cols := g.outlineColumns()

	y := hudHeight
	for i, s := range g.outlines {
		col, row := i%cols, i/cols
		box := core.NewRect(col*(bw+gap), hudHeight+row*bh, bw, bh)
		y = box.Bottom()

		color := colorIdle
		if i == g.selOutline {
			color = colorSelected
		}
		dst.DrawBoxColor(box, color)
		dst.DrawTextColor(box.X+1, box.Y, fmt.Sprint(i+1), color)

		if s == nil {
			dst.DrawTextColor(box.X+1, box.Y+1, "...", colorIdle)
			continue
		}
		drawRegion(dst, box.Inset(1), s)
	}
	return y
}

func drawRegion(dst *core.Screen, area core.Rect, s *puzzle.Session) {
	region := s.Region()
	heldColor := core.ColorWhite
	if id, _, ok := s.Held(); ok {
		heldColor = core.PieceColor(id)
	}

	for r := range region.Rows() {
		for c := range region.Cols() {
			var (
				glyph rune
				color core.Color
			)
			switch region.Get(r, c) {
			case placement.Unused:
				continue
			case placement.Reserved:
				glyph, color = glyphOutline, colorIdle
			case puzzle.TagFirst:
				glyph, color = glyphFilled, heldColor
			default:
				glyph, color = glyphFilled, core.ColorWhite
			}
			x := area.X + c*cellWidth
			dst.SetColor(x, area.Y+r, glyph, color)
			dst.SetColor(x+1, area.Y+r, glyph, color)
		}
	}
}

func (g *Game) renderPieces(dst *core.Screen, top int) {
	y := top + 1

	dst.DrawText(0, top, "Tray")
	x := g.renderLot(dst, g.tray, 0, y, g.focus == PanelTray, g.selTray)

	x += groupGap - gap
	dst.DrawText(x, top, "Parking")
	g.renderLot(dst, g.parking, x, y, g.focus == PanelParking, g.selParking)
}

// renderLot draws one box per slot starting at x and returns the column
// after the last box.
func (g *Game) renderLot(dst *core.Screen, lot *puzzle.ParkingLot, x, y int, focused bool, sel int) int {
	bw, bh := g.boxSize()
	for slot := range lot.Cap() {
		box := core.NewRect(x, y, bw, bh)
		color := colorIdle
		if focused && slot == sel {
			color = colorSelected
		}
		dst.DrawBoxColor(box, color)
		if p, ok := lot.Get(slot); ok {
			drawPiece(dst, box.Inset(1), p.Shape, core.PieceColor(p.ID))
		}
		x += bw + gap
	}
	return x
}

func drawPiece(dst *core.Screen, area core.Rect, p polyomino.Polyomino, color core.Color) {
	for _, cell := range p.Cells() {
		x := area.X + cell.Col*cellWidth
		dst.SetColor(x, area.Y+cell.Row, glyphFilled, color)
		dst.SetColor(x+1, area.Y+cell.Row, glyphFilled, color)
	}
}

func (g *Game) renderOverlays(dst *core.Screen) {
	mid := dst.Height() / 2
	switch {
	case g.gameOver:
		dst.DrawTextCenteredColor(mid-1, " GAME OVER ", core.ColorRed)
		dst.DrawTextCentered(mid, fmt.Sprintf(" Final score: %d ", g.score))
		dst.DrawTextCentered(mid+1, " R to restart, Q to quit ")
	case g.paused:
		dst.DrawTextCenteredColor(mid, " PAUSED ", core.ColorYellow)
	}
}
