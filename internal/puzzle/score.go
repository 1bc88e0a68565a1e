package puzzle

import "github.com/vovakirdan/polyfit/internal/config"

// Points returns the score for one solved outline under the given rules.
// Every harder setting adds to it.
func Points(g config.GameConfig) int {
	points := 0

	switch {
	case g.PieceSize <= 2:
	case g.PieceSize == 3:
		points += 5
	case g.PieceSize == 4:
		points += 10
	default:
		points += 20 + (g.PieceSize-5)*10
	}

	switch {
	case g.AppearingPieces <= 2:
	case g.AppearingPieces == 3:
		points += 5
	case g.AppearingPieces == 4:
		points += 10
	default:
		points += 15
	}

	if g.Outlines >= 1 && g.Outlines <= config.MaxOutlines {
		points += (config.MaxOutlines - g.Outlines) * 5
	}

	switch g.Pace {
	case config.PaceNormal:
		points += 5
	case config.PaceFast:
		points += 15
	}
	if g.PaceIncreasing {
		points += 10
	}

	return points
}
