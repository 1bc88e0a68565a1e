// Package config provides YAML-based configuration loading for the puzzle
// engine and the game, including difficulty presets and pace progression.
package config

import (
	"errors"
	"fmt"
)

// Config is the full polyfit configuration.
type Config struct {
	LogLevel string       `yaml:"log_level"`
	Engine   EngineConfig `yaml:"engine"`
	Game     GameConfig   `yaml:"game"`
}

// EngineConfig tunes shape enumeration and outline composition.
type EngineConfig struct {
	MaxSize            int  `yaml:"max_size"`             // largest supported piece size
	HoleFilterSize     int  `yaml:"hole_filter_size"`     // drop holed shapes of this size only, 0 disables
	MaxComposeAttempts int  `yaml:"max_compose_attempts"` // second-piece draws per outline
	AdjacentPieces     bool `yaml:"adjacent_pieces"`      // outline pieces must share an edge
}

// GameConfig defines the rules of one game.
type GameConfig struct {
	PieceSize       int        `yaml:"piece_size"`       // cells per piece
	AppearingPieces int        `yaml:"appearing_pieces"` // tray capacity
	ParkingSlots    int        `yaml:"parking_slots"`
	Outlines        int        `yaml:"outlines"` // outlines shown at once
	Pace            Pace       `yaml:"pace"`
	PaceIncreasing  bool       `yaml:"pace_increasing"`
	SpawnTicks      SpawnTicks `yaml:"spawn_ticks"`
	MinSpawnTicks   int        `yaml:"min_spawn_ticks"`
}

// SpawnTicks holds the deal interval in ticks for each pace.
type SpawnTicks struct {
	Relaxed int `yaml:"relaxed"`
	Normal  int `yaml:"normal"`
	Fast    int `yaml:"fast"`
}

// Pace is how quickly new pieces are dealt.
type Pace string

const (
	PaceRelaxed Pace = "relaxed"
	PaceNormal  Pace = "normal"
	PaceFast    Pace = "fast"
)

// Limits on game settings.
const (
	MaxOutlines        = 9
	MaxAppearingPieces = 5
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks the configuration for values the engine cannot serve.
func (c Config) Validate() error {
	e := c.Engine
	if e.MaxSize < 1 || e.MaxSize > 9 {
		return fmt.Errorf("%w: engine.max_size %d not in 1..9", ErrInvalidConfig, e.MaxSize)
	}
	if e.MaxComposeAttempts <= 0 {
		return fmt.Errorf("%w: engine.max_compose_attempts must be positive", ErrInvalidConfig)
	}

	g := c.Game
	if g.PieceSize < 2 || g.PieceSize > e.MaxSize {
		return fmt.Errorf("%w: game.piece_size %d not in 2..%d", ErrInvalidConfig, g.PieceSize, e.MaxSize)
	}
	if g.AppearingPieces < 1 || g.AppearingPieces > MaxAppearingPieces {
		return fmt.Errorf("%w: game.appearing_pieces %d not in 1..%d", ErrInvalidConfig, g.AppearingPieces, MaxAppearingPieces)
	}
	if g.ParkingSlots < 0 {
		return fmt.Errorf("%w: game.parking_slots must not be negative", ErrInvalidConfig)
	}
	if g.Outlines < 1 || g.Outlines > MaxOutlines {
		return fmt.Errorf("%w: game.outlines %d not in 1..%d", ErrInvalidConfig, g.Outlines, MaxOutlines)
	}
	switch g.Pace {
	case PaceRelaxed, PaceNormal, PaceFast:
	default:
		return fmt.Errorf("%w: game.pace %q", ErrInvalidConfig, g.Pace)
	}
	if g.SpawnTicks.Relaxed <= 0 || g.SpawnTicks.Normal <= 0 || g.SpawnTicks.Fast <= 0 {
		return fmt.Errorf("%w: game.spawn_ticks must be positive", ErrInvalidConfig)
	}
	return nil
}
