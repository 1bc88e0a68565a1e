package polyomino

import (
	"errors"
	"testing"
)

func TestEnumerateCounts(t *testing.T) {
	// Free polyominoes; the single holed heptomino is filtered at size 7.
	want := map[int]int{1: 1, 2: 1, 3: 2, 4: 5, 5: 12, 6: 35, 7: 107}

	for k := 1; k <= 7; k++ {
		cat, err := Enumerate(k, DefaultEnumerateOptions())
		if err != nil {
			t.Fatalf("Enumerate(%d) error: %v", k, err)
		}
		if cat.Size != k {
			t.Errorf("Enumerate(%d).Size = %d", k, cat.Size)
		}
		if cat.Len() != want[k] {
			t.Errorf("Enumerate(%d) has %d shapes, want %d", k, cat.Len(), want[k])
		}
	}
}

func TestEnumerateWithoutHoleFilter(t *testing.T) {
	cat, err := Enumerate(7, EnumerateOptions{HoleFilterSize: 0})
	if err != nil {
		t.Fatalf("Enumerate(7) error: %v", err)
	}
	if cat.Len() != 108 {
		t.Errorf("unfiltered heptominoes = %d, want 108", cat.Len())
	}

	holed := 0
	for _, s := range cat.Shapes {
		if s.HasHole() {
			holed++
		}
	}
	if holed != 1 {
		t.Errorf("holed heptominoes = %d, want 1", holed)
	}
}

func TestHoleFilterOnlyAtConfiguredSize(t *testing.T) {
	cat, err := Enumerate(8, DefaultEnumerateOptions())
	if err != nil {
		t.Fatalf("Enumerate(8) error: %v", err)
	}
	if cat.Len() != 369 {
		t.Errorf("octominoes = %d, want 369", cat.Len())
	}

	holed := 0
	for _, s := range cat.Shapes {
		if s.HasHole() {
			holed++
		}
	}
	if holed != 6 {
		t.Errorf("holed octominoes = %d, want 6", holed)
	}

	// Growing the filtered heptominoes without any filter gives the same set.
	seven, _ := Enumerate(7, DefaultEnumerateOptions())
	grown := Extend(seven, EnumerateOptions{})
	if grown.Len() != cat.Len() {
		t.Fatalf("unfiltered Extend(7).Len() = %d, want %d", grown.Len(), cat.Len())
	}
	for i := range grown.Shapes {
		if !grown.Shapes[i].Equal(cat.Shapes[i]) {
			t.Errorf("octomino %d differs", i)
		}
	}
}

func TestEnumerateInvalidSize(t *testing.T) {
	for _, k := range []int{0, -3, MaxSize + 1} {
		if _, err := Enumerate(k, DefaultEnumerateOptions()); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Enumerate(%d) error = %v, want ErrInvalidSize", k, err)
		}
	}

	opts := EnumerateOptions{MaxSize: 5}
	if _, err := Enumerate(6, opts); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Enumerate(6) with MaxSize 5 error = %v, want ErrInvalidSize", err)
	}
}

func TestCatalogInvariants(t *testing.T) {
	cat, err := Enumerate(6, DefaultEnumerateOptions())
	if err != nil {
		t.Fatalf("Enumerate(6) error: %v", err)
	}

	for i, s := range cat.Shapes {
		if s.Size() != 6 {
			t.Errorf("shape %d has size %d", i, s.Size())
		}
		if s.CellCount() != 6 {
			t.Errorf("shape %d has %d cells", i, s.CellCount())
		}
		// Idempotent canonical form.
		if !s.Canonical().Equal(s) {
			t.Errorf("shape %d is not canonical:\n%s", i, s)
		}
		if !s.MoveToMinimalEmbedding().Equal(s) {
			t.Errorf("shape %d is not in minimal embedding:\n%s", i, s)
		}
		// Strictly ascending implies no duplicates.
		if i > 0 && mustCompare(cat.Shapes[i-1], s) >= 0 {
			t.Errorf("shapes %d and %d out of order", i-1, i)
		}
		// Closed under rotation and reflection.
		if !cat.Contains(s.Rotate()) || !cat.Contains(s.MirrorVertical()) {
			t.Errorf("catalog missing an image of shape %d", i)
		}
	}
}

func TestEnumerateTrominoes(t *testing.T) {
	cat, err := Enumerate(3, DefaultEnumerateOptions())
	if err != nil {
		t.Fatalf("Enumerate(3) error: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("Enumerate(3) has %d shapes, want 2", cat.Len())
	}

	// Ascending order puts the bent tromino ahead of the straight one.
	bent := MustParse(".#.\n##.\n...")
	straight := MustParse("#..\n#..\n#..")
	if !cat.Shapes[0].Equal(bent) {
		t.Errorf("Shapes[0] =\n%s\nwant\n%s", cat.Shapes[0], bent)
	}
	if !cat.Shapes[1].Equal(straight) {
		t.Errorf("Shapes[1] =\n%s\nwant\n%s", cat.Shapes[1], straight)
	}
}

func TestExtendMatchesEnumerate(t *testing.T) {
	opts := DefaultEnumerateOptions()
	four, _ := Enumerate(4, opts)
	five, _ := Enumerate(5, opts)

	got := Extend(four, opts)
	if got.Len() != five.Len() {
		t.Fatalf("Extend(4).Len() = %d, want %d", got.Len(), five.Len())
	}
	for i := range got.Shapes {
		if !got.Shapes[i].Equal(five.Shapes[i]) {
			t.Errorf("shape %d differs", i)
		}
	}
}
