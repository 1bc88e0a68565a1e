package polyfit

import (
	"fmt"

	"github.com/vovakirdan/polyfit/internal/core"
	"github.com/vovakirdan/polyfit/internal/engine"
	"github.com/vovakirdan/polyfit/internal/puzzle"
)

var transformActions = map[core.Action]engine.Op{
	core.ActionRotateRight:      engine.OpRotateRight,
	core.ActionRotateLeft:       engine.OpRotateLeft,
	core.ActionMirrorHorizontal: engine.OpMirrorHorizontal,
	core.ActionMirrorVertical:   engine.OpMirrorVertical,
}

// handleInput applies at most one action per kind in a fixed order.
func (g *Game) handleInput(in core.InputFrame) {
	if in.Empty() {
		return
	}

	if in.Has(core.ActionNextPanel) {
		g.focus = 1 - g.focus
	}
	switch {
	case in.Has(core.ActionLeft):
		g.moveCursor(-1)
	case in.Has(core.ActionRight):
		g.moveCursor(1)
	}
	switch {
	case in.Has(core.ActionUp):
		g.selOutline = core.Wrap(g.selOutline-1, len(g.outlines))
	case in.Has(core.ActionDown):
		g.selOutline = core.Wrap(g.selOutline+1, len(g.outlines))
	}

	for _, a := range []core.Action{
		core.ActionRotateRight, core.ActionRotateLeft,
		core.ActionMirrorHorizontal, core.ActionMirrorVertical,
	} {
		if in.Has(a) {
			g.transformSelected(transformActions[a])
		}
	}

	switch {
	case in.Has(core.ActionConfirm):
		g.commit()
	case in.Has(core.ActionOtherPosition):
		g.otherPosition()
	case in.Has(core.ActionPark):
		g.park()
	case in.Has(core.ActionUnpark):
		g.unpark()
	case in.Has(core.ActionRelease):
		g.release()
	}
}

func (g *Game) lot() (*puzzle.ParkingLot, *int) {
	if g.focus == PanelParking {
		return g.parking, &g.selParking
	}
	return g.tray, &g.selTray
}

func (g *Game) moveCursor(delta int) {
	lot, sel := g.lot()
	*sel = core.Wrap(*sel+delta, lot.Cap())
}

// selectedPiece returns the piece under the cursor of the focused panel.
func (g *Game) selectedPiece() (puzzle.Piece, bool) {
	lot, sel := g.lot()
	return lot.Get(*sel)
}

func (g *Game) transformSelected(op engine.Op) {
	lot, sel := g.lot()
	p, ok := lot.Get(*sel)
	if !ok {
		return
	}
	shape, err := g.eng.Transform(p.Shape, op)
	if err != nil {
		g.log.Error("transform", "op", op, "err", err)
		return
	}
	lot.Replace(*sel, shape)
}

// commit inserts the selected piece into the selected outline.
func (g *Game) commit() {
	p, ok := g.selectedPiece()
	if !ok {
		g.message = "No piece selected"
		return
	}
	s := g.selectedOutline()
	if s == nil {
		g.message = "Outline not ready"
		return
	}

	res, err := s.Insert(p.ID, p.Shape)
	if err != nil {
		g.log.Error("insert", "outline", g.selOutline, "piece", p.ID, "err", err)
		return
	}
	if !res.Placed {
		g.message = "Piece does not fit"
		return
	}

	lot, sel := g.lot()
	lot.Free(*sel)

	if !res.Solved {
		g.message = fmt.Sprintf("Placed, %d position(s)", res.Choices)
		return
	}

	points := puzzle.Points(g.cfg)
	g.score += points
	g.solved++
	g.message = fmt.Sprintf("Outline solved +%d", points)
	g.log.Debug("outline solved", "outline", g.selOutline, "points", points, "score", g.score)
	g.composeOutline(g.selOutline)
}

func (g *Game) otherPosition() {
	s := g.selectedOutline()
	if s == nil {
		return
	}
	if !s.ChooseOtherPosition() {
		g.message = "No other position"
	}
}

// park moves the selected tray piece into the first free parking slot.
func (g *Game) park() {
	p, ok := g.tray.Get(g.selTray)
	if !ok {
		return
	}
	if _, ok := g.parking.Park(p); !ok {
		g.message = "Parking full"
		return
	}
	g.tray.Free(g.selTray)
}

// unpark moves the selected parked piece back to the tray.
func (g *Game) unpark() {
	p, ok := g.parking.Get(g.selParking)
	if !ok {
		return
	}
	if _, ok := g.tray.Park(p); !ok {
		g.message = "Tray full"
		return
	}
	g.parking.Free(g.selParking)
}

// release takes the held piece out of the selected outline, back to the
// tray or, failing that, to parking.
func (g *Game) release() {
	s := g.selectedOutline()
	if s == nil {
		return
	}
	id, shape, ok := s.Held()
	if !ok {
		return
	}
	p := puzzle.Piece{ID: id, Shape: shape}
	if _, ok := g.tray.Park(p); !ok {
		if _, ok := g.parking.Park(p); !ok {
			g.message = "No room to release"
			return
		}
	}
	s.Release()
}

func (g *Game) selectedOutline() *puzzle.Session {
	if g.selOutline < 0 || g.selOutline >= len(g.outlines) {
		return nil
	}
	return g.outlines[g.selOutline]
}
