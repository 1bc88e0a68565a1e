package polyomino

import "fmt"

// Compare orders two grids of the same size lexicographically in row-major
// order, cell by cell. It returns -1, 0 or 1. Grids of different sizes are
// not comparable and yield ErrSizeMismatch.
func Compare(a, b Polyomino) (int, error) {
	if a.size != b.size {
		return 0, fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, a.size, b.size)
	}
	return mustCompare(a, b), nil
}

// mustCompare is Compare for callers that already guarantee equal sizes.
func mustCompare(a, b Polyomino) int {
	for i := range a.cells {
		switch {
		case a.cells[i] < b.cells[i]:
			return -1
		case a.cells[i] > b.cells[i]:
			return 1
		}
	}
	return 0
}

// Equal reports whether a and b have the same size and contents.
func Equal(a, b Polyomino) bool {
	return a.size == b.size && mustCompare(a, b) == 0
}

// Equal reports whether p and other have the same size and contents.
func (p Polyomino) Equal(other Polyomino) bool {
	return Equal(p, other)
}
