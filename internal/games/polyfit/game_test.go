package polyfit

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/polyfit/internal/config"
	"github.com/vovakirdan/polyfit/internal/core"
	"github.com/vovakirdan/polyfit/internal/engine"
	"github.com/vovakirdan/polyfit/internal/puzzle"
	"github.com/vovakirdan/polyfit/internal/registry"
)

// Dominoes always pair up into a 2x2 square, which keeps outlines
// predictable.
const testConfig = `
game:
  piece_size: 2
  appearing_pieces: 4
  parking_slots: 2
  outlines: 2
  pace: normal
  pace_increasing: false
  spawn_ticks:
    relaxed: 10
    normal: 5
    fast: 2
`

func useTestConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "polyfit.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })
}

func newGame(t *testing.T, g *Game, seed int64) *Game {
	t.Helper()
	useTestConfig(t)
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	return g.Step(core.Frame(actions...))
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"polyfit", "polyfit_relaxed"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) error: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, want %q", g.ID(), id)
		}
	}
}

func TestResetDealsBoard(t *testing.T) {
	g := newGame(t, New(), 1)

	if got := g.tray.Len(); got != 1 {
		t.Errorf("timed game starts with %d pieces, want 1", got)
	}
	if len(g.outlines) != 2 {
		t.Fatalf("outlines = %d, want 2", len(g.outlines))
	}
	for i, s := range g.outlines {
		if s == nil {
			t.Fatalf("outline %d was not composed", i)
		}
		if s.Outline().Cells() != 4 {
			t.Errorf("outline %d has %d cells, want 4", i, s.Outline().Cells())
		}
	}
	if g.countdown != 5 {
		t.Errorf("countdown = %d, want 5", g.countdown)
	}

	relaxed := newGame(t, NewRelaxed(), 1)
	if !relaxed.tray.Full() {
		t.Errorf("relaxed game should start with a full tray, got %d", relaxed.tray.Len())
	}
}

func TestTimedDealUntilOverflow(t *testing.T) {
	g := newGame(t, New(), 2)

	for i := 0; i < 5; i++ {
		step(g)
	}
	if got := g.tray.Len(); got != 2 {
		t.Fatalf("after one interval tray has %d pieces, want 2", got)
	}

	for i := 0; i < 10; i++ {
		step(g)
	}
	if !g.tray.Full() || g.State().GameOver {
		t.Fatalf("tray len %d, game over %v", g.tray.Len(), g.State().GameOver)
	}

	var res core.StepResult
	for i := 0; i < 5; i++ {
		res = step(g)
	}
	if !res.State.GameOver {
		t.Fatal("dealing into a full tray should end the game")
	}
	if g.Snapshot().State != StateGameOver {
		t.Errorf("snapshot state = %q", g.Snapshot().State)
	}

	// Nothing moves after game over.
	before := g.Snapshot()
	step(g, core.ActionConfirm)
	after := g.Snapshot()
	if !reflect.DeepEqual(before.Tray, after.Tray) {
		t.Error("tray changed after game over")
	}
}

func TestPauseStopsDealing(t *testing.T) {
	g := newGame(t, New(), 3)

	step(g, core.ActionPause)
	for i := 0; i < 20; i++ {
		step(g)
	}
	if !g.State().Paused || g.tray.Len() != 1 {
		t.Errorf("paused game dealt pieces: len %d", g.tray.Len())
	}

	step(g, core.ActionPause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestSolveOutline(t *testing.T) {
	g := newGame(t, NewRelaxed(), 4)

	first := g.outlines[0]
	outline := first.Outline()
	g.tray.Replace(0, outline.PieceA)
	g.tray.Replace(1, outline.PieceB)

	res := step(g, core.ActionConfirm)
	if first.Placed() != 1 {
		t.Fatalf("first commit did not place: %q", res.Message)
	}
	if _, ok := g.tray.Get(0); ok {
		t.Error("committed piece should leave the tray")
	}

	step(g, core.ActionRight)
	res = step(g, core.ActionConfirm)

	want := puzzle.Points(g.cfg)
	if res.State.Score != want || res.State.Solved != 1 {
		t.Fatalf("after solve score %d solved %d, want %d and 1 (%q)", res.State.Score, res.State.Solved, want, res.Message)
	}
	if g.outlines[0] == first {
		t.Error("solved outline should be replaced")
	}
	if g.outlines[0] != nil && g.outlines[0].Placed() != 0 {
		t.Error("replacement outline should be empty")
	}
}

func TestCommitMisfitKeepsPiece(t *testing.T) {
	g := newGame(t, NewRelaxed(), 5)
	outline := g.outlines[0].Outline()

	g.tray.Replace(0, outline.PieceA)
	step(g, core.ActionConfirm)

	// The rest of a 2x2 square cannot take a domino turned the other way.
	turned, err := engine.Apply(outline.PieceB, engine.OpRotateRight)
	if err != nil {
		t.Fatalf("Apply() error: %v", err)
	}
	g.tray.Replace(1, turned)
	step(g, core.ActionRight)
	res := step(g, core.ActionConfirm)

	if res.Message != "Piece does not fit" {
		t.Errorf("message = %q", res.Message)
	}
	if _, ok := g.tray.Get(1); !ok {
		t.Error("a piece that does not fit should stay in the tray")
	}
	if res.State.Solved != 0 {
		t.Error("nothing should be solved")
	}
}

func TestTransformSelectedPiece(t *testing.T) {
	g := newGame(t, NewRelaxed(), 6)
	p, _ := g.tray.Get(0)

	step(g, core.ActionRotateRight)
	got, _ := g.tray.Get(0)
	want, _ := engine.Apply(p.Shape, engine.OpRotateRight)
	if !got.Shape.Equal(want) || got.ID != p.ID {
		t.Errorf("rotated piece =\n%s\nwant\n%s", got.Shape, want)
	}

	step(g, core.ActionRotateLeft)
	back, _ := g.tray.Get(0)
	if !back.Shape.Equal(p.Shape) {
		t.Error("rotating back should restore the piece")
	}
}

func TestParkAndUnpark(t *testing.T) {
	g := newGame(t, NewRelaxed(), 7)
	p, _ := g.tray.Get(0)

	step(g, core.ActionPark)
	if _, ok := g.tray.Get(0); ok {
		t.Fatal("parked piece should leave the tray")
	}
	parked, ok := g.parking.Get(0)
	if !ok || parked.ID != p.ID {
		t.Fatalf("parking slot 0 = %+v, %v", parked, ok)
	}

	// Parked pieces can be turned too.
	step(g, core.ActionNextPanel, core.ActionMirrorVertical)
	if g.focus != PanelParking {
		t.Fatal("focus should move to parking")
	}

	step(g, core.ActionUnpark)
	if g.parking.Len() != 0 || !g.tray.Full() {
		t.Errorf("unpark: parking %d tray %d", g.parking.Len(), g.tray.Len())
	}
}

func TestReleaseReturnsPiece(t *testing.T) {
	g := newGame(t, NewRelaxed(), 8)
	outline := g.outlines[0].Outline()
	g.tray.Replace(0, outline.PieceA)
	p, _ := g.tray.Get(0)

	step(g, core.ActionConfirm)
	step(g, core.ActionOtherPosition)
	step(g, core.ActionRelease)

	if g.outlines[0].Placed() != 0 {
		t.Error("release should empty the outline")
	}
	back, ok := g.tray.Get(0)
	if !ok || back.ID != p.ID {
		t.Errorf("released piece = %+v, %v", back, ok)
	}
}

func TestOutlineCursorWraps(t *testing.T) {
	g := newGame(t, NewRelaxed(), 9)

	step(g, core.ActionUp)
	if g.selOutline != 1 {
		t.Errorf("up from the first outline = %d, want 1", g.selOutline)
	}
	step(g, core.ActionDown)
	if g.selOutline != 0 {
		t.Errorf("down = %d, want 0", g.selOutline)
	}

	step(g, core.ActionLeft)
	if g.selTray != g.tray.Cap()-1 {
		t.Errorf("left from the first slot = %d", g.selTray)
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	a := newGame(t, New(), 42)
	b := newGame(t, New(), 42)

	for i := 0; i < 12; i++ {
		step(a)
		step(b)
	}
	if !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Errorf("same seed diverged:\n%+v\n%+v", a.Snapshot(), b.Snapshot())
	}
}

func TestDifficultyPreset(t *testing.T) {
	SetDifficultyPreset("hard")
	t.Cleanup(func() { SetDifficultyPreset("") })

	g := newGame(t, New(), 1)
	if g.cfg.PieceSize != 5 || g.cfg.Pace != config.PaceFast {
		t.Errorf("hard preset not applied: %+v", g.cfg)
	}

	SetDifficultyPreset("bogus")
	if difficultyPreset != "" {
		t.Error("unknown preset should be cleared")
	}
}

func TestRender(t *testing.T) {
	g := newGame(t, New(), 1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if !strings.HasPrefix(screen.Row(0), "Polyfit") {
		t.Errorf("row 0 = %q", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "Tray") || !strings.Contains(screen.String(), "Parking") {
		t.Error("tray and parking labels missing")
	}

	small := New()
	useTestConfig(t)
	small.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 6, TickRate: 60, Seed: 1})
	if !small.State().Paused {
		t.Error("a tiny screen should pause the game")
	}
	tiny := core.NewScreen(20, 6)
	small.Render(tiny)
	if !strings.Contains(tiny.String(), "Window too small") {
		t.Errorf("tiny screen render:\n%s", tiny)
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := newGame(t, NewRelaxed(), 10)
	before := g.Snapshot()

	g.Resize(20, 6)
	if !g.State().Paused {
		t.Error("shrinking below the board should pause")
	}
	g.Resize(80, 24)
	if g.State().Paused {
		t.Error("growing back should resume")
	}
	if !reflect.DeepEqual(before.Tray, g.Snapshot().Tray) {
		t.Error("resize should not deal a new board")
	}
	if g.PieceSize() != 2 {
		t.Errorf("PieceSize() = %d", g.PieceSize())
	}
}
