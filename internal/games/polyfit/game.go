// Package polyfit is the puzzle game: pieces are dealt into a tray and the
// player rotates, mirrors and commits them so that two pieces fill each
// outline on the board.
package polyfit

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/polyfit/internal/compose"
	"github.com/vovakirdan/polyfit/internal/config"
	"github.com/vovakirdan/polyfit/internal/core"
	"github.com/vovakirdan/polyfit/internal/engine"
	"github.com/vovakirdan/polyfit/internal/puzzle"
	"github.com/vovakirdan/polyfit/internal/registry"
)

// Mode selects how pieces are dealt.
type Mode int

const (
	ModeTimed   Mode = iota // a piece every interval, shorter as outlines get solved
	ModeRelaxed             // the tray is refilled only once it is empty
)

// Panel is the piece row the cursor works on.
type Panel int

const (
	PanelTray Panel = iota
	PanelParking
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

var (
	sharedEngine *engine.Engine
	logger       = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	switch p := config.DifficultyPreset(preset); p {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		difficultyPreset = p
	default:
		difficultyPreset = ""
	}
}

// SetEngine makes every new game share e and its shape caches.
func SetEngine(e *engine.Engine) {
	sharedEngine = e
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register("polyfit", func() registry.Game { return New() })
	registry.Register("polyfit_relaxed", func() registry.Game { return NewRelaxed() })
}

// Game implements registry.Game.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	cfg  config.GameConfig
	eng  *engine.Engine
	log  *log.Logger
	pace *config.PaceManager

	outlines []*puzzle.Session // nil while an outline could not be composed
	tray     *puzzle.ParkingLot
	parking  *puzzle.ParkingLot
	nextID   int

	selOutline int
	selTray    int
	selParking int
	focus      Panel

	countdown int // ticks until the next deal in timed mode
	score     int
	solved    int
	message   string

	screenW, screenH int
	tooSmall         bool
	gameOver         bool
	paused           bool
}

// New creates a timed game.
func New() *Game {
	return &Game{mode: ModeTimed}
}

// NewRelaxed creates a game without a deal timer.
func NewRelaxed() *Game {
	return &Game{mode: ModeRelaxed}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeRelaxed {
		return "polyfit_relaxed"
	}
	return "polyfit"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRelaxed {
		return "Polyfit (Relaxed)"
	}
	return "Polyfit"
}

// Reset loads the configuration and deals a fresh board.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.log = logger.With("game", g.ID())

	cfg, err := config.Load(configPath)
	if err != nil {
		g.log.Warn("falling back to default config", "err", err)
		cfg = config.DefaultConfig()
	}
	if err := config.ApplyPreset(&cfg.Game, difficultyPreset); err != nil {
		g.log.Warn("ignoring difficulty preset", "err", err)
	}
	g.cfg = cfg.Game

	g.eng = sharedEngine
	if g.eng == nil {
		g.eng = engine.New(cfg.Engine, g.log)
	}

	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.tick = 0
	g.pace = config.NewPaceManager(g.cfg)
	g.screenW, g.screenH = rt.ScreenW, rt.ScreenH

	g.tray = puzzle.NewParkingLot(g.cfg.AppearingPieces)
	g.parking = puzzle.NewParkingLot(g.cfg.ParkingSlots)
	g.nextID = 0
	g.selOutline, g.selTray, g.selParking = 0, 0, 0
	g.focus = PanelTray
	g.score, g.solved = 0, 0
	g.message = ""
	g.gameOver, g.paused = false, false

	g.outlines = make([]*puzzle.Session, g.cfg.Outlines)
	for i := range g.outlines {
		g.composeOutline(i)
	}

	if g.mode == ModeRelaxed {
		g.refillTray()
	} else {
		g.deal()
		g.countdown = g.pace.Interval(0)
	}

	g.checkScreenSize()
	g.log.Debug("game reset", "piece_size", g.cfg.PieceSize, "outlines", g.cfg.Outlines, "seed", rt.Seed)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.gameOver {
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.retryOutlines()
	g.handleInput(in)

	switch g.mode {
	case ModeTimed:
		g.countdown--
		if g.countdown <= 0 {
			g.deal()
			g.countdown = g.pace.Interval(g.solved)
		}
	case ModeRelaxed:
		if g.tray.Len() == 0 {
			g.refillTray()
		}
	}

	return g.result()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Message: g.message}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Solved:   g.solved,
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}

// deal puts one new piece into the tray. A full tray ends the game.
func (g *Game) deal() {
	piece, err := g.eng.RandomPiece(g.cfg.PieceSize, g.rng)
	if err != nil {
		g.log.Error("cannot deal piece", "err", err)
		return
	}
	if _, ok := g.tray.Park(puzzle.Piece{ID: g.nextID, Shape: piece}); !ok {
		g.gameOver = true
		g.message = "Tray overflow"
		g.log.Info("game over", "score", g.score, "solved", g.solved, "ticks", g.tick)
		return
	}
	g.nextID++
}

func (g *Game) refillTray() {
	for !g.tray.Full() {
		before := g.nextID
		g.deal()
		if g.nextID == before {
			return
		}
	}
}

func (g *Game) composeOutline(i int) {
	outline, err := g.eng.ComposeOutline(g.cfg.PieceSize, g.rng)
	if err != nil {
		g.outlines[i] = nil
		if !errors.Is(err, compose.ErrNoComposablePair) {
			g.log.Error("compose outline", "slot", i, "err", err)
		}
		return
	}
	g.outlines[i] = puzzle.NewSession(outline, g.rng)
}

func (g *Game) retryOutlines() {
	for i, s := range g.outlines {
		if s == nil {
			g.composeOutline(i)
		}
	}
}

// Resize follows a terminal resize without restarting the run.
func (g *Game) Resize(width, height int) {
	g.screenW, g.screenH = width, height
	g.checkScreenSize()
}

// PieceSize returns the cell count of the pieces in play.
func (g *Game) PieceSize() int {
	return g.cfg.PieceSize
}

// checkScreenSize flags terminals too small for the board.
func (g *Game) checkScreenSize() {
	w, h := g.layoutSize()
	g.tooSmall = g.screenW < w || g.screenH < h
}
