package engine

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/polyfit/internal/polyomino"
)

// Op is a live piece transform.
type Op int

const (
	OpRotateRight Op = iota
	OpRotateLeft
	OpMirrorHorizontal
	OpMirrorVertical
)

// ErrUnknownOp is returned for an unsupported transform.
var ErrUnknownOp = errors.New("engine: unknown transform")

var opNames = map[Op]string{
	OpRotateRight:      "rotateRight",
	OpRotateLeft:       "rotateLeft",
	OpMirrorHorizontal: "mirrorHorizontal",
	OpMirrorVertical:   "mirrorVertical",
}

// String returns the op name.
func (o Op) String() string {
	if name, ok := opNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// ParseOp resolves an op by name.
func ParseOp(s string) (Op, error) {
	for op, name := range opNames {
		if name == s {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, s)
}

// Transform applies op to piece. The result is in minimal embedding.
func (e *Engine) Transform(piece polyomino.Polyomino, op Op) (polyomino.Polyomino, error) {
	return Apply(piece, op)
}

// Apply is Transform without an engine.
func Apply(piece polyomino.Polyomino, op Op) (polyomino.Polyomino, error) {
	switch op {
	case OpRotateRight:
		return piece.Rotate(), nil
	case OpRotateLeft:
		return piece.RotateLeft(), nil
	case OpMirrorHorizontal:
		return piece.MirrorHorizontal(), nil
	case OpMirrorVertical:
		return piece.MirrorVertical(), nil
	default:
		return polyomino.Polyomino{}, fmt.Errorf("%w: %v", ErrUnknownOp, op)
	}
}
