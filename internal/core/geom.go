// Package core holds the types shared by games and the terminal platform:
// a character canvas, semantic input actions and per-tick state. It has no
// dependency on Bubble Tea so game logic stays testable on its own.
package core

// Rect is an axis-aligned area on the canvas.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset shrinks r by n on every side. The result never has a negative size.
func (r Rect) Inset(n int) Rect {
	return Rect{
		X: r.X + n,
		Y: r.Y + n,
		W: max(r.W-2*n, 0),
		H: max(r.H-2*n, 0),
	}
}

// SplitColumns cuts r into n side-by-side columns separated by gap.
// Leftover width goes to the last column.
func (r Rect) SplitColumns(n, gap int) []Rect {
	if n <= 0 {
		return nil
	}
	w := max((r.W-gap*(n-1))/n, 0)
	out := make([]Rect, n)
	x := r.X
	for i := range out {
		out[i] = Rect{X: x, Y: r.Y, W: w, H: r.H}
		x += w + gap
	}
	out[n-1].W = max(r.Right()-out[n-1].X, 0)
	return out
}

// Clamp restricts val to [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// Wrap maps val into [0, n) so that cursors cycle.
func Wrap(val, n int) int {
	if n <= 0 {
		return 0
	}
	val %= n
	if val < 0 {
		val += n
	}
	return val
}
