// Package polyomino provides the square-grid shape type used by the puzzle
// engine together with its geometric transforms, canonical forms, catalog
// enumeration and orientation expansion.
//
// A Polyomino is a k×k grid of ints stored in row-major order. Zero is an
// empty cell; any positive value is an occupied cell (the value may tag the
// piece that occupies it). Values are never mutated after construction:
// every transform returns a fresh grid.
package polyomino

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Supported shape sizes.
const (
	MinSize = 1
	MaxSize = 9
)

var (
	// ErrInvalidSize is returned when a requested size is outside the supported range.
	ErrInvalidSize = errors.New("polyomino: invalid size")
	// ErrSizeMismatch is returned when two grids of different sizes are compared.
	ErrSizeMismatch = errors.New("polyomino: size mismatch")
	// ErrNotSquare is returned when a grid literal is ragged or not square.
	ErrNotSquare = errors.New("polyomino: grid is not square")
)

// Cell is a row/column coordinate inside a grid.
type Cell struct {
	Row int
	Col int
}

// Polyomino is an immutable k×k grid.
type Polyomino struct {
	size  int
	cells []int // row-major, len size*size
}

// New returns an empty grid of side k. Negative sizes yield an empty 0×0 grid.
func New(k int) Polyomino {
	if k < 0 {
		k = 0
	}
	return Polyomino{size: k, cells: make([]int, k*k)}
}

// Monomino returns the single filled cell.
func Monomino() Polyomino {
	return Polyomino{size: 1, cells: []int{1}}
}

// FromRows builds a grid from a square row literal.
func FromRows(rows [][]int) (Polyomino, error) {
	k := len(rows)
	p := New(k)
	for r, row := range rows {
		if len(row) != k {
			return Polyomino{}, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotSquare, r, len(row), k)
		}
		copy(p.cells[r*k:(r+1)*k], row)
	}
	return p, nil
}

// MustFromRows is like FromRows but panics on malformed input.
// Intended for literals in tables and tests.
func MustFromRows(rows [][]int) Polyomino {
	p, err := FromRows(rows)
	if err != nil {
		panic(err)
	}
	return p
}

// Parse reads the text form produced by String: one line per row, '#' for
// an occupied cell, '.' for an empty one and digits for tagged cells.
// Surrounding whitespace on each line is ignored. A non-square picture is
// padded with empty cells to the larger of its height and width.
func Parse(s string) (Polyomino, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	width := 0
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
		if len(lines[i]) > width {
			width = len(lines[i])
		}
	}
	k := max(len(lines), width)
	if k == 1 && width == 0 {
		k = 0
	}

	p := New(k)
	for r, line := range lines {
		for c, ch := range line {
			switch {
			case ch == '#':
				p.cells[r*k+c] = 1
			case ch == '.':
			case ch >= '1' && ch <= '9':
				p.cells[r*k+c] = int(ch - '0')
			default:
				return Polyomino{}, fmt.Errorf("polyomino: unexpected %q at row %d col %d", ch, r, c)
			}
		}
	}
	return p, nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(s string) Polyomino {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Size returns the side length of the grid.
func (p Polyomino) Size() int {
	return p.size
}

// inBounds reports whether (r, c) lies on the grid.
func (p Polyomino) inBounds(r, c int) bool {
	return r >= 0 && r < p.size && c >= 0 && c < p.size
}

// At returns the value at (r, c), or 0 when out of bounds.
func (p Polyomino) At(r, c int) int {
	if !p.inBounds(r, c) {
		return 0
	}
	return p.cells[r*p.size+c]
}

// Occupied reports whether (r, c) holds a positive value.
func (p Polyomino) Occupied(r, c int) bool {
	return p.At(r, c) > 0
}

// CellCount returns the number of occupied cells.
func (p Polyomino) CellCount() int {
	n := 0
	for _, v := range p.cells {
		if v > 0 {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no cell is occupied.
func (p Polyomino) IsEmpty() bool {
	return p.CellCount() == 0
}

// Cells returns the occupied coordinates in row-major order.
func (p Polyomino) Cells() []Cell {
	out := make([]Cell, 0, p.size)
	for i, v := range p.cells {
		if v > 0 {
			out = append(out, Cell{Row: i / p.size, Col: i % p.size})
		}
	}
	return out
}

// Rows returns a deep copy of the grid as a row slice.
func (p Polyomino) Rows() [][]int {
	rows := make([][]int, p.size)
	for r := range rows {
		rows[r] = make([]int, p.size)
		copy(rows[r], p.cells[r*p.size:(r+1)*p.size])
	}
	return rows
}

// Bounds returns the height and width of the occupied bounding box.
func (p Polyomino) Bounds() (height, width int) {
	minR, minC := p.size, p.size
	maxR, maxC := -1, -1
	for i, v := range p.cells {
		if v == 0 {
			continue
		}
		r, c := i/p.size, i%p.size
		minR, maxR = min(minR, r), max(maxR, r)
		minC, maxC = min(minC, c), max(maxC, c)
	}
	if maxR < 0 {
		return 0, 0
	}
	return maxR - minR + 1, maxC - minC + 1
}

// Fill returns a copy with every occupied cell set to value.
func (p Polyomino) Fill(value int) Polyomino {
	out := p.clone()
	for i, v := range out.cells {
		if v > 0 {
			out.cells[i] = value
		}
	}
	return out
}

// Key returns a string that uniquely identifies the grid contents.
func (p Polyomino) Key() string {
	var sb strings.Builder
	sb.Grow(len(p.cells)*2 + 3)
	sb.WriteString(strconv.Itoa(p.size))
	sb.WriteByte(':')
	for _, v := range p.cells {
		sb.WriteString(strconv.Itoa(v))
		sb.WriteByte(',')
	}
	return sb.String()
}

// String renders the grid with '#' for occupied and '.' for empty cells.
func (p Polyomino) String() string {
	var sb strings.Builder
	sb.Grow(p.size*p.size + p.size)
	for r := 0; r < p.size; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < p.size; c++ {
			if p.cells[r*p.size+c] > 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// clone returns a deep copy.
func (p Polyomino) clone() Polyomino {
	cells := make([]int, len(p.cells))
	copy(cells, p.cells)
	return Polyomino{size: p.size, cells: cells}
}

// With returns a copy with (r, c) set to value. Out-of-bounds writes are ignored.
func (p Polyomino) With(r, c, value int) Polyomino {
	out := p.clone()
	if out.inBounds(r, c) {
		out.cells[r*out.size+c] = value
	}
	return out
}
