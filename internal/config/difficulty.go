package config

import (
	"fmt"
	"math"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplyPreset adjusts piece size and pace for a preset.
// An empty preset leaves the game settings untouched.
func ApplyPreset(g *GameConfig, preset DifficultyPreset) error {
	switch preset {
	case "":
	case DifficultyEasy:
		g.PieceSize = 3
		g.Pace = PaceRelaxed
		g.PaceIncreasing = false
	case DifficultyNormal:
		g.PieceSize = 4
		g.Pace = PaceNormal
		g.PaceIncreasing = true
	case DifficultyHard:
		g.PieceSize = 5
		g.Pace = PaceFast
		g.PaceIncreasing = true
	case DifficultyFixed:
		g.PaceIncreasing = false
	default:
		return fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, preset)
	}
	return nil
}

// PaceManager computes the deal interval as outlines get solved.
type PaceManager struct {
	cfg GameConfig
}

// NewPaceManager creates a new pace manager.
func NewPaceManager(cfg GameConfig) *PaceManager {
	return &PaceManager{cfg: cfg}
}

// BaseInterval returns the deal interval in ticks for the configured pace.
func (p *PaceManager) BaseInterval() int {
	switch p.cfg.Pace {
	case PaceRelaxed:
		return p.cfg.SpawnTicks.Relaxed
	case PaceFast:
		return p.cfg.SpawnTicks.Fast
	default:
		return p.cfg.SpawnTicks.Normal
	}
}

// Interval returns the deal interval after solved outlines. With an
// increasing pace every solved outline shortens it by 5%, down to
// MinSpawnTicks.
func (p *PaceManager) Interval(solved int) int {
	base := p.BaseInterval()
	if !p.cfg.PaceIncreasing || solved <= 0 {
		return base
	}

	interval := float64(base)
	for i := 0; i < solved; i++ {
		interval *= 0.95
	}

	floor := p.cfg.MinSpawnTicks
	if floor <= 0 {
		floor = 1
	}
	return max(int(math.Round(interval)), min(floor, base))
}
