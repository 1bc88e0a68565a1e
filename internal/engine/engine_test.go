package engine

import (
	"errors"
	"math/rand"
	"sync"
	"testing"

	"github.com/vovakirdan/polyfit/internal/compose"
	"github.com/vovakirdan/polyfit/internal/config"
	"github.com/vovakirdan/polyfit/internal/placement"
	"github.com/vovakirdan/polyfit/internal/polyomino"
)

func newEngine() *Engine {
	return New(config.DefaultConfig().Engine, nil)
}

func TestExpandedPoolSizes(t *testing.T) {
	e := newEngine()
	want := map[int]int{1: 1, 2: 2, 3: 6, 4: 19, 5: 63, 6: 216, 7: 756}

	// Out of order on purpose so later sizes extend cached ones.
	for _, k := range []int{4, 2, 7, 1, 6, 3, 5} {
		pool, err := e.ExpandedPool(k)
		if err != nil {
			t.Fatalf("ExpandedPool(%d) error: %v", k, err)
		}
		if len(pool) != want[k] {
			t.Errorf("ExpandedPool(%d) = %d pieces, want %d", k, len(pool), want[k])
		}
	}
}

func TestCatalogMatchesEnumerate(t *testing.T) {
	e := newEngine()
	if _, err := e.Catalog(3); err != nil {
		t.Fatalf("Catalog(3) error: %v", err)
	}
	got, err := e.Catalog(6)
	if err != nil {
		t.Fatalf("Catalog(6) error: %v", err)
	}
	want, _ := polyomino.Enumerate(6, polyomino.DefaultEnumerateOptions())
	if got.Len() != want.Len() {
		t.Fatalf("Catalog(6).Len() = %d, want %d", got.Len(), want.Len())
	}
	for i := range got.Shapes {
		if !got.Shapes[i].Equal(want.Shapes[i]) {
			t.Errorf("shape %d differs", i)
		}
	}

	// Callers cannot disturb the cache.
	got.Shapes[0] = polyomino.New(6)
	again, _ := e.Catalog(6)
	if !again.Shapes[0].Equal(want.Shapes[0]) {
		t.Error("mutating a returned catalog leaked into the cache")
	}
}

func TestInvalidSize(t *testing.T) {
	e := newEngine()
	for _, k := range []int{0, 10} {
		if _, err := e.ExpandedPool(k); !errors.Is(err, polyomino.ErrInvalidSize) {
			t.Errorf("ExpandedPool(%d) error = %v, want ErrInvalidSize", k, err)
		}
		if _, err := e.ComposeOutline(k, rand.New(rand.NewSource(1))); !errors.Is(err, polyomino.ErrInvalidSize) {
			t.Errorf("ComposeOutline(%d) error = %v, want ErrInvalidSize", k, err)
		}
	}

	small := New(config.EngineConfig{MaxSize: 4, MaxComposeAttempts: 10}, nil)
	if _, err := small.Catalog(5); !errors.Is(err, polyomino.ErrInvalidSize) {
		t.Errorf("Catalog(5) with MaxSize 4 error = %v", err)
	}
}

func TestComposeOutline(t *testing.T) {
	e := newEngine()
	rng := rand.New(rand.NewSource(3))

	out, err := e.ComposeOutline(4, rng)
	if err != nil {
		t.Fatalf("ComposeOutline() error: %v", err)
	}
	if out.Cells() != 8 {
		t.Errorf("outline has %d cells, want 8", out.Cells())
	}

	// The monomino can never pair up.
	if _, err := e.ComposeOutline(1, rng); !errors.Is(err, compose.ErrNoComposablePair) {
		t.Errorf("ComposeOutline(1) error = %v, want ErrNoComposablePair", err)
	}
}

func TestCheckFit(t *testing.T) {
	e := newEngine()
	region := placement.RegionFromPolyomino(polyomino.MustParse("##\n##"), placement.Reserved)

	anchors, err := e.CheckFit(polyomino.MustParse("##\n.."), region, placement.Options{Fillable: 1, WantAll: true})
	if err != nil {
		t.Fatalf("CheckFit() error: %v", err)
	}
	if len(anchors) != 2 {
		t.Errorf("CheckFit() = %v, want 2 anchors", anchors)
	}
}

func TestTransform(t *testing.T) {
	e := newEngine()
	l := polyomino.MustParse("#..\n#..\n##.")

	tests := []struct {
		op   Op
		want string
	}{
		{OpRotateRight, "###\n#..\n..."},
		{OpRotateLeft, "..#\n###\n..."},
		{OpMirrorVertical, ".#.\n.#.\n##."},
		{OpMirrorHorizontal, "##.\n#..\n#.."},
	}

	for _, tc := range tests {
		t.Run(tc.op.String(), func(t *testing.T) {
			got, err := e.Transform(l, tc.op)
			if err != nil {
				t.Fatalf("Transform() error: %v", err)
			}
			if got.String() != tc.want {
				t.Errorf("Transform(%v) =\n%s\nwant\n%s", tc.op, got, tc.want)
			}
		})
	}

	if _, err := e.Transform(l, Op(99)); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("Transform(99) error = %v, want ErrUnknownOp", err)
	}
}

func TestParseOp(t *testing.T) {
	for op, name := range opNames {
		got, err := ParseOp(name)
		if err != nil || got != op {
			t.Errorf("ParseOp(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseOp("flip"); !errors.Is(err, ErrUnknownOp) {
		t.Errorf("ParseOp(flip) error = %v", err)
	}
}

func TestConcurrentAccess(t *testing.T) {
	e := newEngine()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(seed int64) {
			defer wg.Done()
			rng := rand.New(rand.NewSource(seed))
			if _, err := e.ComposeOutline(5, rng); err != nil {
				t.Errorf("ComposeOutline() error: %v", err)
			}
			if _, err := e.RandomPiece(5, rng); err != nil {
				t.Errorf("RandomPiece() error: %v", err)
			}
		}(int64(i))
	}
	wg.Wait()
}
