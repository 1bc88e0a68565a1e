package polyomino

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"
)

// DefaultHoleFilterSize is the shape size whose holed shapes are left out
// of a catalog.
const DefaultHoleFilterSize = 7

// Catalog holds the canonical shapes of one size in ascending order.
type Catalog struct {
	Size   int
	Shapes []Polyomino
}

// Len returns the number of shapes.
func (c Catalog) Len() int {
	return len(c.Shapes)
}

// Contains reports whether p's canonical form is in the catalog.
func (c Catalog) Contains(p Polyomino) bool {
	if p.size != c.Size {
		return false
	}
	_, found := c.search(p.Canonical())
	return found
}

// search returns the insertion index for canon and whether it is already present.
func (c Catalog) search(canon Polyomino) (int, bool) {
	i := sort.Search(len(c.Shapes), func(i int) bool {
		return mustCompare(c.Shapes[i], canon) >= 0
	})
	return i, i < len(c.Shapes) && mustCompare(c.Shapes[i], canon) == 0
}

// insert adds canon in order unless an equal shape is present.
func (c *Catalog) insert(canon Polyomino) bool {
	i, found := c.search(canon)
	if found {
		return false
	}
	c.Shapes = append(c.Shapes, Polyomino{})
	copy(c.Shapes[i+1:], c.Shapes[i:])
	c.Shapes[i] = canon
	return true
}

// EnumerateOptions tunes catalog construction.
type EnumerateOptions struct {
	// MaxSize bounds the accepted size. Zero means MaxSize.
	MaxSize int
	// HoleFilterSize drops shapes with HasHole at exactly this size.
	// Larger catalogs keep their holed shapes. Zero or negative disables it.
	HoleFilterSize int
	// Logger receives one debug line per size. Optional.
	Logger *log.Logger
}

// DefaultEnumerateOptions returns options for sizes up to MaxSize with the
// default hole filter.
func DefaultEnumerateOptions() EnumerateOptions {
	return EnumerateOptions{
		MaxSize:        MaxSize,
		HoleFilterSize: DefaultHoleFilterSize,
	}
}

// maxSize resolves the effective upper bound.
func (o EnumerateOptions) maxSize() int {
	if o.MaxSize <= 0 || o.MaxSize > MaxSize {
		return MaxSize
	}
	return o.MaxSize
}

// filterHoles reports whether holed shapes of size k are dropped.
func (o EnumerateOptions) filterHoles(k int) bool {
	return o.HoleFilterSize > 0 && k == o.HoleFilterSize
}

// ValidateSize checks k against the supported range.
func (o EnumerateOptions) ValidateSize(k int) error {
	if k < MinSize || k > o.maxSize() {
		return fmt.Errorf("%w: %d (supported %d..%d)", ErrInvalidSize, k, MinSize, o.maxSize())
	}
	return nil
}

// Enumerate builds the catalog of all distinct shapes of k cells, up to
// rotation and reflection, by growing every shape of k-1 cells by one cell.
func Enumerate(k int, opts EnumerateOptions) (Catalog, error) {
	if err := opts.ValidateSize(k); err != nil {
		return Catalog{}, err
	}

	cat := Catalog{Size: 1, Shapes: []Polyomino{Monomino()}}
	for cat.Size < k {
		cat = Extend(cat, opts)
	}
	return cat, nil
}

// Extend grows a catalog of size n into the catalog of size n+1.
func Extend(prev Catalog, opts EnumerateOptions) Catalog {
	k := prev.Size + 1
	next := Catalog{Size: k}
	dropped := 0

	for _, base := range prev.Shapes {
		grown := base.MoveToMinimalEmbedding().Grow()
		for _, cell := range base.Cells() {
			for _, d := range neighbours {
				cand, ok := attach(grown, cell.Row+d.Row, cell.Col+d.Col)
				if !ok {
					continue
				}
				canon := cand.Canonical()
				if opts.filterHoles(k) && canon.HasHole() {
					dropped++
					continue
				}
				next.insert(canon)
			}
		}
	}

	if opts.Logger != nil {
		opts.Logger.Debug("catalog extended", "size", k, "shapes", next.Len(), "holed", dropped)
	}
	return next
}

// attach adds one cell at (r, c) to g. A target one step above or left of
// the grid shifts the shape to make room. The base shape never spans the
// last row or column of g, so the shift loses no cells.
func attach(g Polyomino, r, c int) (Polyomino, bool) {
	dr, dc := 0, 0
	if r < 0 {
		dr = 1
	}
	if c < 0 {
		dc = 1
	}
	if dr != 0 || dc != 0 {
		g = g.shift(dr, dc)
		r, c = r+dr, c+dc
	}
	if !g.inBounds(r, c) || g.Occupied(r, c) {
		return Polyomino{}, false
	}
	return g.With(r, c, 1), true
}
