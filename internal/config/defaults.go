package config

import (
	_ "embed"
)

//go:embed defaults/polyfit.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Engine: EngineConfig{
			MaxSize:            9,
			HoleFilterSize:     7,
			MaxComposeAttempts: 500,
			AdjacentPieces:     true,
		},
		Game: GameConfig{
			PieceSize:       4,
			AppearingPieces: 4,
			ParkingSlots:    2,
			Outlines:        8,
			Pace:            PaceNormal,
			PaceIncreasing:  false,
			SpawnTicks: SpawnTicks{
				Relaxed: 600, // 10s at 60fps
				Normal:  360,
				Fast:    180,
			},
			MinSpawnTicks: 90,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
