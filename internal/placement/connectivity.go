package placement

// Connected reports whether the cells holding value form a single
// 4-connected component. A region without such cells counts as connected.
func Connected(r *Region, value int) bool {
	start := -1
	total := 0
	for i, v := range r.cells {
		if v == value {
			if start < 0 {
				start = i
			}
			total++
		}
	}
	if total == 0 {
		return true
	}
	return floodCount(r, start, value) == total
}

// floodCount returns the size of the component of value containing start.
// Walks with an explicit stack.
func floodCount(r *Region, start, value int) int {
	visited := make([]bool, len(r.cells))
	stack := []int{start}
	visited[start] = true
	count := 0

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		count++

		row, col := i/r.cols, i%r.cols
		for _, d := range directions {
			nr, nc := row+d[0], col+d[1]
			if !r.InBounds(nr, nc) {
				continue
			}
			j := nr*r.cols + nc
			if visited[j] || r.cells[j] != value {
				continue
			}
			visited[j] = true
			stack = append(stack, j)
		}
	}
	return count
}

var directions = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
