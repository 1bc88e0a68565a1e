package polyomino

// Orientations returns the distinct images of p under rotation and
// reflection, in generation order. The result has 1, 2, 4 or 8 entries.
func Orientations(p Polyomino) []Polyomino {
	images := p.Images()
	out := make([]Polyomino, 0, len(images))
	for _, img := range images {
		dup := false
		for _, seen := range out {
			if Equal(seen, img) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, img)
		}
	}
	return out
}

// ExpandAll concatenates the orientations of every catalog shape.
// Shapes from different catalog entries never coincide, so duplicates are
// only removed within each shape's own set.
func ExpandAll(c Catalog) []Polyomino {
	pool := make([]Polyomino, 0, len(c.Shapes)*8)
	for _, shape := range c.Shapes {
		pool = append(pool, Orientations(shape)...)
	}
	return pool
}
