// Package engine is the request surface of the polyomino puzzle engine.
// It caches catalogs and orientation pools per piece size and is safe for
// concurrent use by several game sessions.
package engine

import (
	"io"
	"math/rand"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/polyfit/internal/compose"
	"github.com/vovakirdan/polyfit/internal/config"
	"github.com/vovakirdan/polyfit/internal/placement"
	"github.com/vovakirdan/polyfit/internal/polyomino"
)

// Engine serves catalogs, pools, outlines, fit checks and transforms.
type Engine struct {
	cfg    config.EngineConfig
	logger *log.Logger

	mu       sync.Mutex
	catalogs map[int]polyomino.Catalog
	pools    map[int][]polyomino.Polyomino
}

// New creates an engine. A nil logger discards output.
func New(cfg config.EngineConfig, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{
		cfg:      cfg,
		logger:   logger,
		catalogs: make(map[int]polyomino.Catalog),
		pools:    make(map[int][]polyomino.Polyomino),
	}
}

func (e *Engine) options() polyomino.EnumerateOptions {
	return polyomino.EnumerateOptions{
		MaxSize:        e.cfg.MaxSize,
		HoleFilterSize: e.cfg.HoleFilterSize,
		Logger:         e.logger,
	}
}

// Catalog returns the canonical shapes of size k in ascending order.
func (e *Engine) Catalog(k int) (polyomino.Catalog, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cat, err := e.catalogLocked(k)
	if err != nil {
		return polyomino.Catalog{}, err
	}
	shapes := make([]polyomino.Polyomino, len(cat.Shapes))
	copy(shapes, cat.Shapes)
	return polyomino.Catalog{Size: cat.Size, Shapes: shapes}, nil
}

// catalogLocked extends the largest cached smaller catalog up to k.
func (e *Engine) catalogLocked(k int) (polyomino.Catalog, error) {
	if cat, ok := e.catalogs[k]; ok {
		return cat, nil
	}
	opts := e.options()
	if err := opts.ValidateSize(k); err != nil {
		return polyomino.Catalog{}, err
	}

	start := time.Now()
	cat := polyomino.Catalog{Size: 1, Shapes: []polyomino.Polyomino{polyomino.Monomino()}}
	for n := k - 1; n >= 1; n-- {
		if cached, ok := e.catalogs[n]; ok {
			cat = cached
			break
		}
	}
	e.catalogs[cat.Size] = cat
	for cat.Size < k {
		cat = polyomino.Extend(cat, opts)
		e.catalogs[cat.Size] = cat
	}

	e.logger.Info("catalog ready", "size", k, "shapes", cat.Len(), "took", time.Since(start))
	return cat, nil
}

// ExpandedPool returns every orientation of every catalog shape of size k.
func (e *Engine) ExpandedPool(k int) ([]polyomino.Polyomino, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	pool, err := e.poolLocked(k)
	if err != nil {
		return nil, err
	}
	out := make([]polyomino.Polyomino, len(pool))
	copy(out, pool)
	return out, nil
}

func (e *Engine) poolLocked(k int) ([]polyomino.Polyomino, error) {
	if pool, ok := e.pools[k]; ok {
		return pool, nil
	}
	cat, err := e.catalogLocked(k)
	if err != nil {
		return nil, err
	}
	pool := polyomino.ExpandAll(cat)
	e.pools[k] = pool
	e.logger.Debug("pool ready", "size", k, "orientations", len(pool))
	return pool, nil
}

// RandomPiece draws one orientation of size k uniformly.
func (e *Engine) RandomPiece(k int, rng *rand.Rand) (polyomino.Polyomino, error) {
	e.mu.Lock()
	pool, err := e.poolLocked(k)
	e.mu.Unlock()
	if err != nil {
		return polyomino.Polyomino{}, err
	}
	return pool[rng.Intn(len(pool))], nil
}

// ComposeOutline builds a two-piece outline of size k.
func (e *Engine) ComposeOutline(k int, rng *rand.Rand) (*compose.Outline, error) {
	e.mu.Lock()
	pool, err := e.poolLocked(k)
	e.mu.Unlock()
	if err != nil {
		return nil, err
	}

	c := compose.Composer{
		Pool:        pool,
		Rand:        rng,
		MaxAttempts: e.cfg.MaxComposeAttempts,
		Adjacent:    e.cfg.AdjacentPieces,
	}
	outline, err := c.Compose()
	if err != nil {
		e.logger.Warn("compose failed", "size", k, "error", err)
		return nil, err
	}
	e.logger.Debug("outline composed", "id", outline.ID, "size", k, "attempts", outline.Attempts)
	return outline, nil
}

// CheckFit lists the anchors at which piece fits into region.
func (e *Engine) CheckFit(piece polyomino.Polyomino, region *placement.Region, opts placement.Options) ([]placement.Anchor, error) {
	return placement.Find(piece, region, opts)
}

// Warm builds the pools for the given sizes ahead of use.
func (e *Engine) Warm(sizes ...int) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, k := range sizes {
		if _, err := e.poolLocked(k); err != nil {
			return err
		}
	}
	return nil
}
