package placement

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/polyfit/internal/polyomino"
)

var (
	// ErrNilRegion is returned when no region is given.
	ErrNilRegion = errors.New("placement: nil region")
	// ErrEmptyPiece is returned for a piece without occupied cells.
	ErrEmptyPiece = errors.New("placement: empty piece")
	// ErrInvalidFillable is returned for a negative fillable value.
	ErrInvalidFillable = errors.New("placement: invalid fillable value")
	// ErrOutOfBounds is returned when a footprint leaves the region.
	ErrOutOfBounds = errors.New("placement: footprint out of bounds")
)

// Anchor is the region cell that receives a piece's reference cell, the
// first occupied cell of its minimal embedding in row-major order.
type Anchor struct {
	Row int
	Col int
}

// Options controls a placement search.
type Options struct {
	// Fillable is the cell value a footprint may cover.
	Fillable int
	// WantAll returns every valid anchor instead of the first one.
	WantAll bool
	// RequireConnectedRemainder rejects anchors that split the remaining
	// Fillable cells into more than one component.
	RequireConnectedRemainder bool
}

// Offsets returns the piece's occupied cells relative to its reference cell.
func Offsets(piece polyomino.Polyomino) ([]polyomino.Cell, error) {
	cells := piece.MoveToMinimalEmbedding().Cells()
	if len(cells) == 0 {
		return nil, ErrEmptyPiece
	}
	ref := cells[0]
	offsets := make([]polyomino.Cell, len(cells))
	for i, c := range cells {
		offsets[i] = polyomino.Cell{Row: c.Row - ref.Row, Col: c.Col - ref.Col}
	}
	return offsets, nil
}

// Footprint returns the region cells covered by piece at anchor.
// Cells may lie outside the region.
func Footprint(piece polyomino.Polyomino, at Anchor) ([]polyomino.Cell, error) {
	offsets, err := Offsets(piece)
	if err != nil {
		return nil, err
	}
	out := make([]polyomino.Cell, len(offsets))
	for i, o := range offsets {
		out[i] = polyomino.Cell{Row: at.Row + o.Row, Col: at.Col + o.Col}
	}
	return out, nil
}

// Find scans the region in row-major order and returns the anchors at which
// every cell of piece lands on a Fillable cell. An empty result means the
// piece does not fit and is not an error.
func Find(piece polyomino.Polyomino, region *Region, opts Options) ([]Anchor, error) {
	if region == nil {
		return nil, ErrNilRegion
	}
	if opts.Fillable < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidFillable, opts.Fillable)
	}
	offsets, err := Offsets(piece)
	if err != nil {
		return nil, err
	}

	var anchors []Anchor
	for row := 0; row < region.rows; row++ {
		for col := 0; col < region.cols; col++ {
			if region.cells[row*region.cols+col] != opts.Fillable {
				continue
			}
			at := Anchor{Row: row, Col: col}
			if !covers(region, offsets, at, opts.Fillable) {
				continue
			}
			if opts.RequireConnectedRemainder && !remainderConnected(region, offsets, at, opts.Fillable) {
				continue
			}
			anchors = append(anchors, at)
			if !opts.WantAll {
				return anchors, nil
			}
		}
	}
	return anchors, nil
}

// covers reports whether every offset from at lands on a fillable cell.
func covers(region *Region, offsets []polyomino.Cell, at Anchor, fillable int) bool {
	for _, o := range offsets {
		r, c := at.Row+o.Row, at.Col+o.Col
		if !region.InBounds(r, c) || region.cells[r*region.cols+c] != fillable {
			return false
		}
	}
	return true
}

// remainderConnected simulates the placement on a copy and checks that the
// untouched fillable cells stay in one piece.
func remainderConnected(region *Region, offsets []polyomino.Cell, at Anchor, fillable int) bool {
	sim := region.Clone()
	for _, o := range offsets {
		sim.Set(at.Row+o.Row, at.Col+o.Col, Unused)
	}
	return Connected(sim, fillable)
}

// Fit writes value into every cell of piece's footprint at anchor.
// The region is left untouched when the footprint leaves it.
func Fit(piece polyomino.Polyomino, region *Region, at Anchor, value int) error {
	if region == nil {
		return ErrNilRegion
	}
	cells, err := Footprint(piece, at)
	if err != nil {
		return err
	}
	for _, c := range cells {
		if !region.InBounds(c.Row, c.Col) {
			return fmt.Errorf("%w: cell (%d,%d) in %dx%d region", ErrOutOfBounds, c.Row, c.Col, region.rows, region.cols)
		}
	}
	for _, c := range cells {
		region.cells[c.Row*region.cols+c.Col] = value
	}
	return nil
}
