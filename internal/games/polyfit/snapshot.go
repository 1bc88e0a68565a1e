package polyfit

import "github.com/vovakirdan/polyfit/internal/puzzle"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the game state for determinism tests.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Score     int
	Solved    int
	Countdown int
	Tray      []string // shape of each slot, empty when free
	Parking   []string
	Outlines  []string // current outline regions, empty while composing
	State     GameStateType
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	mode := "timed"
	if g.mode == ModeRelaxed {
		mode = "relaxed"
	}

	outlines := make([]string, len(g.outlines))
	for i, s := range g.outlines {
		if s != nil {
			outlines[i] = s.Region().String()
		}
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      mode,
		Score:     g.score,
		Solved:    g.solved,
		Countdown: g.countdown,
		Tray:      lotShapes(g.tray),
		Parking:   lotShapes(g.parking),
		Outlines:  outlines,
		State:     state,
	}
}

func lotShapes(lot *puzzle.ParkingLot) []string {
	out := make([]string, lot.Cap())
	for slot := range out {
		if p, ok := lot.Get(slot); ok {
			out[slot] = p.Shape.String()
		}
	}
	return out
}
