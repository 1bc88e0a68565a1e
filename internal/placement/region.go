// Package placement finds where a polyomino can be laid into a partially
// filled region and writes pieces into regions.
package placement

import (
	"strconv"
	"strings"

	"github.com/vovakirdan/polyfit/internal/polyomino"
)

// Region cell values.
const (
	Unused   = 0 // outside the outline
	Reserved = 1 // part of the outline, not yet covered
)

// Region is a mutable rectangular grid stored in row-major order.
// Cells are Unused, Reserved or a piece tag of 2 and above.
type Region struct {
	rows  int
	cols  int
	cells []int
}

// NewRegion returns an all-Unused region.
func NewRegion(rows, cols int) *Region {
	rows, cols = max(rows, 0), max(cols, 0)
	return &Region{rows: rows, cols: cols, cells: make([]int, rows*cols)}
}

// RegionFromPolyomino embeds p's occupied cells as value in a k×k region.
func RegionFromPolyomino(p polyomino.Polyomino, value int) *Region {
	k := p.Size()
	r := NewRegion(k, k)
	for _, c := range p.Cells() {
		r.cells[c.Row*k+c.Col] = value
	}
	return r
}

// Rows returns the region height.
func (r *Region) Rows() int { return r.rows }

// Cols returns the region width.
func (r *Region) Cols() int { return r.cols }

// InBounds reports whether (row, col) lies in the region.
func (r *Region) InBounds(row, col int) bool {
	return row >= 0 && row < r.rows && col >= 0 && col < r.cols
}

// Get returns the value at (row, col), or Unused when out of bounds.
func (r *Region) Get(row, col int) int {
	if !r.InBounds(row, col) {
		return Unused
	}
	return r.cells[row*r.cols+col]
}

// Set writes value at (row, col). Out-of-bounds writes are ignored.
func (r *Region) Set(row, col, value int) {
	if r.InBounds(row, col) {
		r.cells[row*r.cols+col] = value
	}
}

// Clone returns a deep copy.
func (r *Region) Clone() *Region {
	cells := make([]int, len(r.cells))
	copy(cells, r.cells)
	return &Region{rows: r.rows, cols: r.cols, cells: cells}
}

// Count returns how many cells hold value.
func (r *Region) Count(value int) int {
	n := 0
	for _, v := range r.cells {
		if v == value {
			n++
		}
	}
	return n
}

// CountAtLeast returns how many cells hold value or more.
func (r *Region) CountAtLeast(value int) int {
	n := 0
	for _, v := range r.cells {
		if v >= value {
			n++
		}
	}
	return n
}

// Replace rewrites every cell equal to from as to.
func (r *Region) Replace(from, to int) {
	for i, v := range r.cells {
		if v == from {
			r.cells[i] = to
		}
	}
}

// Equal reports whether both regions have the same shape and contents.
func (r *Region) Equal(other *Region) bool {
	if other == nil || r.rows != other.rows || r.cols != other.cols {
		return false
	}
	for i := range r.cells {
		if r.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// ToPolyomino converts a square region into a polyomino grid, keeping values.
func (r *Region) ToPolyomino() (polyomino.Polyomino, error) {
	rows := make([][]int, r.rows)
	for i := range rows {
		rows[i] = r.cells[i*r.cols : (i+1)*r.cols]
	}
	return polyomino.FromRows(rows)
}

// String renders Unused as '.', and every other value as its digit.
func (r *Region) String() string {
	var sb strings.Builder
	for row := 0; row < r.rows; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < r.cols; col++ {
			v := r.cells[row*r.cols+col]
			if v == Unused {
				sb.WriteByte('.')
				continue
			}
			sb.WriteString(strconv.Itoa(v))
		}
	}
	return sb.String()
}
