// Package compose builds puzzle outlines from two randomly drawn pieces of
// the same size.
package compose

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/vovakirdan/polyfit/internal/placement"
	"github.com/vovakirdan/polyfit/internal/polyomino"
)

// DefaultMaxAttempts bounds the second-piece draws per outline.
const DefaultMaxAttempts = 500

var (
	// ErrNoComposablePair is returned when no second piece completed the
	// first one without holes within the attempt budget.
	ErrNoComposablePair = errors.New("compose: no composable pair found")
	// ErrEmptyPool is returned when there is nothing to draw from.
	ErrEmptyPool = errors.New("compose: empty piece pool")
)

// Outline is a two-piece puzzle shape. Region holds placement.Reserved for
// every outline cell and placement.Unused elsewhere.
type Outline struct {
	ID       uuid.UUID
	Size     int
	Region   *placement.Region
	PieceA   polyomino.Polyomino
	PieceB   polyomino.Polyomino
	AnchorB  placement.Anchor
	Attempts int
}

// Cells returns the number of outline cells.
func (o *Outline) Cells() int {
	return o.Region.Count(placement.Reserved)
}

// Composer draws piece pairs from a pool of fixed orientations.
type Composer struct {
	Pool        []polyomino.Polyomino
	Rand        *rand.Rand
	MaxAttempts int
	// Adjacent requires piece B to share an edge with piece A. When false
	// the first free anchor in row-major order is taken, which may leave
	// the two pieces apart.
	Adjacent bool
}

func (c *Composer) maxAttempts() int {
	if c.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return c.MaxAttempts
}

// Compose draws piece A once, then draws piece B until B fits into the free
// cells of A's grid and the union has neither a hole nor a two-cell hole.
func (c *Composer) Compose() (*Outline, error) {
	n := len(c.Pool)
	if n == 0 {
		return nil, ErrEmptyPool
	}

	a := c.Pool[c.Rand.Intn(n)]
	base := placement.RegionFromPolyomino(a, placement.Reserved)
	attempts := c.maxAttempts()

	for i := 1; i <= attempts; i++ {
		b := c.Pool[c.Rand.Intn(n)]
		at, ok, err := c.anchorFor(b, base)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		region := base.Clone()
		if err := placement.Fit(b, region, at, placement.Reserved); err != nil {
			return nil, err
		}
		grid, err := region.ToPolyomino()
		if err != nil {
			return nil, err
		}
		if grid.HasHole() || grid.HasBigHole() {
			continue
		}

		return &Outline{
			ID:       uuid.New(),
			Size:     a.Size(),
			Region:   region,
			PieceA:   a,
			PieceB:   b,
			AnchorB:  at,
			Attempts: i,
		}, nil
	}

	return nil, fmt.Errorf("%w: size %d after %d attempts", ErrNoComposablePair, a.Size(), attempts)
}

// anchorFor picks where b goes in the free cells of base.
func (c *Composer) anchorFor(b polyomino.Polyomino, base *placement.Region) (placement.Anchor, bool, error) {
	anchors, err := placement.Find(b, base, placement.Options{
		Fillable: placement.Unused,
		WantAll:  c.Adjacent,
	})
	if err != nil || len(anchors) == 0 {
		return placement.Anchor{}, false, err
	}
	if !c.Adjacent {
		return anchors[0], true, nil
	}
	for _, at := range anchors {
		if touches(b, base, at) {
			return at, true, nil
		}
	}
	return placement.Anchor{}, false, nil
}

// touches reports whether b placed at at shares an edge with a Reserved cell.
func touches(b polyomino.Polyomino, base *placement.Region, at placement.Anchor) bool {
	cells, err := placement.Footprint(b, at)
	if err != nil {
		return false
	}
	for _, cell := range cells {
		for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
			if base.Get(cell.Row+d[0], cell.Col+d[1]) == placement.Reserved {
				return true
			}
		}
	}
	return false
}
