package polyomino

// Neighbour offsets, checked in this order: down, up, right, left.
var neighbours = [4]Cell{
	{Row: 1, Col: 0},
	{Row: -1, Col: 0},
	{Row: 0, Col: 1},
	{Row: 0, Col: -1},
}

// interior reports whether (r, c) is off the grid border.
func (p Polyomino) interior(r, c int) bool {
	return r >= 1 && r <= p.size-2 && c >= 1 && c <= p.size-2
}

// occupiedNeighbours counts the occupied orthogonal neighbours of (r, c).
func (p Polyomino) occupiedNeighbours(r, c int) int {
	n := 0
	for _, d := range neighbours {
		if p.Occupied(r+d.Row, c+d.Col) {
			n++
		}
	}
	return n
}

// HasHole reports whether some interior empty cell is enclosed on all four sides.
func (p Polyomino) HasHole() bool {
	for r := 1; r <= p.size-2; r++ {
		for c := 1; c <= p.size-2; c++ {
			if !p.Occupied(r, c) && p.occupiedNeighbours(r, c) == 4 {
				return true
			}
		}
	}
	return false
}

// HasBigHole reports whether two adjacent interior empty cells are enclosed
// on every other side: each has exactly three occupied neighbours and the
// fourth neighbour is the other one.
func (p Polyomino) HasBigHole() bool {
	for r := 1; r <= p.size-2; r++ {
		for c := 1; c <= p.size-2; c++ {
			if p.Occupied(r, c) || p.occupiedNeighbours(r, c) != 3 {
				continue
			}
			for _, d := range neighbours {
				nr, nc := r+d.Row, c+d.Col
				if p.Occupied(nr, nc) {
					continue
				}
				// first empty neighbour only
				if p.interior(nr, nc) && p.occupiedNeighbours(nr, nc) == 3 {
					return true
				}
				break
			}
		}
	}
	return false
}
