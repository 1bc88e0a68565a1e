// Package puzzle holds the live-play state around outlines: filling an
// outline with two pieces, the piece tray and parking slots, and scoring.
package puzzle

import (
	"errors"
	"math/rand"

	"github.com/vovakirdan/polyfit/internal/compose"
	"github.com/vovakirdan/polyfit/internal/placement"
	"github.com/vovakirdan/polyfit/internal/polyomino"
)

// Tags written into an outline for the first and second placed piece.
const (
	TagFirst  = 2
	TagSecond = 3
)

// ErrSolved is returned when inserting into a completed outline.
var ErrSolved = errors.New("puzzle: outline already solved")

// InsertResult describes the outcome of an insert.
type InsertResult struct {
	Placed  bool
	Solved  bool
	Anchor  placement.Anchor
	Choices int // valid anchors the piece had
}

// Session fills one outline. It owns its region exclusively.
type Session struct {
	outline *compose.Outline
	region  *placement.Region
	rng     *rand.Rand

	placed    int
	lastID    int
	lastPiece polyomino.Polyomino
	anchors   []placement.Anchor
	anchorIdx int
}

// NewSession starts an empty session on outline.
func NewSession(outline *compose.Outline, rng *rand.Rand) *Session {
	s := &Session{outline: outline, rng: rng}
	s.Reset()
	return s
}

// Reset clears every placed piece.
func (s *Session) Reset() {
	s.region = s.outline.Region.Clone()
	s.placed = 0
	s.lastID = -1
	s.lastPiece = polyomino.Polyomino{}
	s.anchors = nil
	s.anchorIdx = -1
}

// Insert commits a piece. The first piece goes to a random anchor that
// keeps the rest of the outline in one piece; ChooseOtherPosition moves it.
// The next piece completes the outline if it fits what is left.
// A piece that does not fit yields Placed == false and no error.
func (s *Session) Insert(pieceID int, piece polyomino.Polyomino) (InsertResult, error) {
	if s.Solved() {
		return InsertResult{}, ErrSolved
	}
	if s.placed == 0 {
		return s.insertFirst(pieceID, piece)
	}
	return s.insertSecond(piece)
}

func (s *Session) insertFirst(pieceID int, piece polyomino.Polyomino) (InsertResult, error) {
	s.Reset()
	anchors, err := placement.Find(piece, s.region, placement.Options{
		Fillable:                  placement.Reserved,
		WantAll:                   true,
		RequireConnectedRemainder: true,
	})
	if err != nil {
		return InsertResult{}, err
	}
	if len(anchors) == 0 {
		return InsertResult{}, nil
	}

	idx := compose.RandomIndex(s.rng, len(anchors), -1)
	if err := placement.Fit(piece, s.region, anchors[idx], TagFirst); err != nil {
		return InsertResult{}, err
	}
	s.placed = 1
	s.lastID = pieceID
	s.lastPiece = piece
	s.anchors = anchors
	s.anchorIdx = idx
	return InsertResult{Placed: true, Anchor: anchors[idx], Choices: len(anchors)}, nil
}

func (s *Session) insertSecond(piece polyomino.Polyomino) (InsertResult, error) {
	anchors, err := placement.Find(piece, s.region, placement.Options{Fillable: placement.Reserved})
	if err != nil {
		return InsertResult{}, err
	}
	if len(anchors) == 0 {
		return InsertResult{}, nil
	}
	if err := placement.Fit(piece, s.region, anchors[0], TagSecond); err != nil {
		return InsertResult{}, err
	}
	s.placed = 2
	return InsertResult{Placed: true, Solved: s.Solved(), Anchor: anchors[0], Choices: 1}, nil
}

// ChooseOtherPosition moves the first piece to a different valid anchor.
// It does nothing and returns false unless there is an alternative.
func (s *Session) ChooseOtherPosition() bool {
	if s.placed != 1 || len(s.anchors) < 2 {
		return false
	}
	anchors, piece, id := s.anchors, s.lastPiece, s.lastID
	idx := compose.RandomIndex(s.rng, len(anchors), s.anchorIdx)

	s.region = s.outline.Region.Clone()
	if err := placement.Fit(piece, s.region, anchors[idx], TagFirst); err != nil {
		s.Reset()
		return false
	}
	s.anchors, s.lastPiece, s.lastID, s.anchorIdx = anchors, piece, id, idx
	return true
}

// Release undoes the first piece and returns it. ok is false when no piece
// is held or the outline is solved.
func (s *Session) Release() (id int, piece polyomino.Polyomino, ok bool) {
	id, piece, ok = s.Held()
	if ok {
		s.Reset()
	}
	return id, piece, ok
}

// Held returns the first piece while the outline is half filled.
func (s *Session) Held() (id int, piece polyomino.Polyomino, ok bool) {
	if s.placed != 1 {
		return 0, polyomino.Polyomino{}, false
	}
	return s.lastID, s.lastPiece, true
}

// Solved reports whether no reserved cell is left.
func (s *Session) Solved() bool {
	return s.placed > 0 && s.region.Count(placement.Reserved) == 0
}

// Placed returns how many pieces sit in the outline.
func (s *Session) Placed() int { return s.placed }

// Region returns a copy of the current outline state.
func (s *Session) Region() *placement.Region { return s.region.Clone() }

// Outline returns the outline being filled.
func (s *Session) Outline() *compose.Outline { return s.outline }

// Anchors returns the valid anchors of the held first piece.
func (s *Session) Anchors() []placement.Anchor {
	out := make([]placement.Anchor, len(s.anchors))
	copy(out, s.anchors)
	return out
}
