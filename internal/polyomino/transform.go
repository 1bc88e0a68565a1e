package polyomino

// Grow returns a grid one larger on each side with p copied to the top-left
// corner. The new last row and column are empty.
func (p Polyomino) Grow() Polyomino {
	k := p.size + 1
	out := New(k)
	for r := 0; r < p.size; r++ {
		copy(out.cells[r*k:r*k+p.size], p.cells[r*p.size:(r+1)*p.size])
	}
	return out
}

// rowEmpty reports whether row r has no occupied cell.
func (p Polyomino) rowEmpty(r int) bool {
	for c := 0; c < p.size; c++ {
		if p.cells[r*p.size+c] > 0 {
			return false
		}
	}
	return true
}

// colEmpty reports whether column c has no occupied cell.
func (p Polyomino) colEmpty(c int) bool {
	for r := 0; r < p.size; r++ {
		if p.cells[r*p.size+c] > 0 {
			return false
		}
	}
	return true
}

// shift returns a copy translated by (dr, dc). Cells pushed off the grid are lost.
func (p Polyomino) shift(dr, dc int) Polyomino {
	out := New(p.size)
	for i, v := range p.cells {
		if v == 0 {
			continue
		}
		r, c := i/p.size+dr, i%p.size+dc
		if out.inBounds(r, c) {
			out.cells[r*p.size+c] = v
		}
	}
	return out
}

// MoveTop shifts the shape up until its first row is occupied.
// An empty grid is returned unchanged.
func (p Polyomino) MoveTop() Polyomino {
	n := 0
	for n < p.size && p.rowEmpty(n) {
		n++
	}
	if n == 0 || n == p.size {
		return p.clone()
	}
	return p.shift(-n, 0)
}

// MoveLeftSide shifts the shape left until its first column is occupied.
// An empty grid is returned unchanged.
func (p Polyomino) MoveLeftSide() Polyomino {
	n := 0
	for n < p.size && p.colEmpty(n) {
		n++
	}
	if n == 0 || n == p.size {
		return p.clone()
	}
	return p.shift(0, -n)
}

// MoveToMinimalEmbedding anchors the shape's bounding box at (0, 0).
func (p Polyomino) MoveToMinimalEmbedding() Polyomino {
	return p.MoveTop().MoveLeftSide()
}

// Rotate turns the shape 90° clockwise and normalises it.
func (p Polyomino) Rotate() Polyomino {
	k := p.size
	out := New(k)
	for r := 0; r < k; r++ {
		for c := 0; c < k; c++ {
			out.cells[r*k+c] = p.cells[(k-1-c)*k+r]
		}
	}
	return out.MoveToMinimalEmbedding()
}

// RotateLeft turns the shape 90° counter-clockwise and normalises it.
func (p Polyomino) RotateLeft() Polyomino {
	return p.Rotate().Rotate().Rotate()
}

// MirrorVertical reflects the shape across the vertical mid-axis (left/right swap).
func (p Polyomino) MirrorVertical() Polyomino {
	k := p.size
	out := New(k)
	for r := 0; r < k; r++ {
		for c := 0; c < k; c++ {
			out.cells[r*k+c] = p.cells[r*k+(k-1-c)]
		}
	}
	return out.MoveToMinimalEmbedding()
}

// MirrorHorizontal reflects the shape across the horizontal mid-axis (top/bottom swap).
func (p Polyomino) MirrorHorizontal() Polyomino {
	k := p.size
	out := New(k)
	for r := 0; r < k; r++ {
		copy(out.cells[r*k:(r+1)*k], p.cells[(k-1-r)*k:(k-r)*k])
	}
	return out.MoveToMinimalEmbedding()
}

// Images returns the eight rotation/reflection images of p: the four
// rotations of p followed by the four rotations of its mirror. All images
// are in minimal embedding. Symmetric shapes repeat images.
func (p Polyomino) Images() [8]Polyomino {
	var out [8]Polyomino
	cur := p.MoveToMinimalEmbedding()
	for i := 0; i < 4; i++ {
		out[i] = cur
		cur = cur.Rotate()
	}
	cur = p.MirrorVertical()
	for i := 4; i < 8; i++ {
		out[i] = cur
		cur = cur.Rotate()
	}
	return out
}

// Canonical returns the smallest of p's images under Compare.
func (p Polyomino) Canonical() Polyomino {
	images := p.Images()
	best := images[0]
	for _, img := range images[1:] {
		if mustCompare(img, best) < 0 {
			best = img
		}
	}
	return best
}
