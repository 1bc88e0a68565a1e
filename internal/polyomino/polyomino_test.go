package polyomino

import (
	"errors"
	"testing"
)

func TestFromRowsRejectsRaggedGrid(t *testing.T) {
	_, err := FromRows([][]int{{1, 1}, {1}})
	if !errors.Is(err, ErrNotSquare) {
		t.Fatalf("FromRows(ragged) error = %v, want ErrNotSquare", err)
	}

	_, err = FromRows([][]int{{1, 1, 1}, {0, 1, 0}})
	if !errors.Is(err, ErrNotSquare) {
		t.Fatalf("FromRows(2x3) error = %v, want ErrNotSquare", err)
	}
}

func TestParseAndString(t *testing.T) {
	p := MustParse(`
		##.
		.##
		...`)

	if p.Size() != 3 {
		t.Fatalf("Size() = %d, want 3", p.Size())
	}
	if p.CellCount() != 4 {
		t.Errorf("CellCount() = %d, want 4", p.CellCount())
	}
	want := "##.\n.##\n..."
	if p.String() != want {
		t.Errorf("String() = %q, want %q", p.String(), want)
	}

	// Non-square pictures are padded.
	l := MustParse("#\n#\n##")
	if l.Size() != 3 || l.CellCount() != 4 {
		t.Errorf("padded parse: size %d cells %d, want 3 and 4", l.Size(), l.CellCount())
	}

	if _, err := Parse("#x"); err == nil {
		t.Error("Parse with unknown glyph should fail")
	}
}

func TestGrow(t *testing.T) {
	p := MustParse("##\n#.")
	g := p.Grow()

	if g.Size() != 3 {
		t.Fatalf("Grow().Size() = %d, want 3", g.Size())
	}
	want := MustParse("##.\n#..\n...")
	if !g.Equal(want) {
		t.Errorf("Grow() =\n%s\nwant\n%s", g, want)
	}
	// Original untouched.
	if p.Size() != 2 {
		t.Error("Grow must not modify the receiver")
	}
}

func TestMoveToMinimalEmbedding(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"already minimal", "##.\n#..\n...", "##.\n#..\n..."},
		{"bottom right", "...\n.##\n..#", "##.\n.#.\n..."},
		{"middle column", ".#.\n.#.\n.#.", "#..\n#..\n#.."},
		{"empty grid", "...\n...\n...", "...\n...\n..."},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MustParse(tc.in).MoveToMinimalEmbedding()
			if got.String() != tc.want {
				t.Errorf("MoveToMinimalEmbedding() =\n%s\nwant\n%s", got, tc.want)
			}
		})
	}
}

func TestRotate(t *testing.T) {
	// L tromino, 90° clockwise.
	p := MustParse("#..\n##.\n...")
	got := p.Rotate()
	want := MustParse("##.\n#..\n...")
	if !got.Equal(want) {
		t.Errorf("Rotate() =\n%s\nwant\n%s", got, want)
	}

	// Four turns return to the normalised original.
	s := MustParse(".##\n##.\n...")
	if !s.Rotate().Rotate().Rotate().Rotate().Equal(s) {
		t.Error("four rotations should be the identity")
	}
	if !s.Rotate().RotateLeft().Equal(s) {
		t.Error("RotateLeft should undo Rotate")
	}
}

func TestMirrors(t *testing.T) {
	p := MustParse("##.\n#..\n#..")

	v := p.MirrorVertical()
	if want := MustParse("##.\n.#.\n.#."); !v.Equal(want) {
		t.Errorf("MirrorVertical() =\n%s\nwant\n%s", v, want)
	}

	h := p.MirrorHorizontal()
	if want := MustParse("#..\n#..\n##."); !h.Equal(want) {
		t.Errorf("MirrorHorizontal() =\n%s\nwant\n%s", h, want)
	}

	if !p.MirrorVertical().MirrorVertical().Equal(p) {
		t.Error("MirrorVertical twice should be the identity")
	}
	if !p.MirrorHorizontal().MirrorHorizontal().Equal(p) {
		t.Error("MirrorHorizontal twice should be the identity")
	}
}

func TestCompare(t *testing.T) {
	a := MustParse("#.\n#.")
	b := MustParse("##\n..")

	got, err := Compare(a, b)
	if err != nil {
		t.Fatalf("Compare() error: %v", err)
	}
	if got != -1 {
		t.Errorf("Compare(a, b) = %d, want -1", got)
	}
	if got, _ := Compare(b, a); got != 1 {
		t.Errorf("Compare(b, a) = %d, want 1", got)
	}
	if got, _ := Compare(a, a); got != 0 {
		t.Errorf("Compare(a, a) = %d, want 0", got)
	}

	_, err = Compare(a, New(3))
	if !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("Compare(2x2, 3x3) error = %v, want ErrSizeMismatch", err)
	}
}

func TestCanonicalIsInvariant(t *testing.T) {
	shapes := []string{
		"#..\n##.\n.#.",
		"###.\n#...\n....\n....",
		".#.\n###\n...",
	}

	for _, s := range shapes {
		p := MustParse(s)
		canon := p.Canonical()
		for i, img := range p.Images() {
			if got := img.Canonical(); !got.Equal(canon) {
				t.Errorf("image %d of\n%s\nhas canonical\n%s\nwant\n%s", i, p, got, canon)
			}
		}
		// Canonical is the smallest image.
		for _, img := range p.Images() {
			if mustCompare(img, canon) < 0 {
				t.Errorf("image\n%s\nis smaller than canonical\n%s", img, canon)
			}
		}
	}
}

func TestHasHole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"ring", "###\n#.#\n###", true},
		{"ring open at top", "#.#\n#.#\n###", false},
		{"ring open at left", "###\n..#\n###", false},
		{"ring open at right", "###\n#..\n###", false},
		{"ring open at bottom", "###\n#.#\n#.#", false},
		{"solid", "###\n###\n###", false},
		{"empty top-left corner does not matter", ".##\n#.#\n###", true},
		{"empty bottom-right corner does not matter", "###\n#.#\n##.", true},
		{"no interior cells", "#.\n##", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MustParse(tc.in).HasHole(); got != tc.want {
				t.Errorf("HasHole() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHasBigHole(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"two-cell cavity", "####\n#..#\n####\n....", true},
		{"vertical cavity", "###.\n#.#.\n#.#.\n###.", true},
		{"cavity open to border", "####\n#...\n####\n....", false},
		{"single-cell hole", "###\n#.#\n###", false},
		{"ring open at top", "#.#\n#.#\n###", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := MustParse(tc.in).HasBigHole(); got != tc.want {
				t.Errorf("HasBigHole() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHolesCountTaggedCells(t *testing.T) {
	p := MustFromRows([][]int{
		{1, 2, 2},
		{1, 0, 2},
		{1, 3, 3},
	})
	if !p.HasHole() {
		t.Error("tagged cells should count as occupied")
	}
}
