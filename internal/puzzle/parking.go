package puzzle

import "github.com/vovakirdan/polyfit/internal/polyomino"

// Piece is a dealt piece with a stable id.
type Piece struct {
	ID    int
	Shape polyomino.Polyomino
}

// ParkingLot is a fixed row of slots that each hold at most one piece.
type ParkingLot struct {
	slots []*Piece
}

// NewParkingLot returns n empty slots.
func NewParkingLot(n int) *ParkingLot {
	return &ParkingLot{slots: make([]*Piece, max(n, 0))}
}

// Park puts p in the first free slot.
func (l *ParkingLot) Park(p Piece) (slot int, ok bool) {
	for i, s := range l.slots {
		if s == nil {
			l.slots[i] = &p
			return i, true
		}
	}
	return -1, false
}

// Get returns the piece in slot.
func (l *ParkingLot) Get(slot int) (Piece, bool) {
	if slot < 0 || slot >= len(l.slots) || l.slots[slot] == nil {
		return Piece{}, false
	}
	return *l.slots[slot], true
}

// Take removes and returns the piece in slot.
func (l *ParkingLot) Take(slot int) (Piece, bool) {
	p, ok := l.Get(slot)
	if ok {
		l.slots[slot] = nil
	}
	return p, ok
}

// Replace swaps the shape of the piece in slot, keeping its id.
func (l *ParkingLot) Replace(slot int, shape polyomino.Polyomino) bool {
	if _, ok := l.Get(slot); !ok {
		return false
	}
	l.slots[slot].Shape = shape
	return true
}

// Free empties slot.
func (l *ParkingLot) Free(slot int) {
	if slot >= 0 && slot < len(l.slots) {
		l.slots[slot] = nil
	}
}

// Cap returns the number of slots.
func (l *ParkingLot) Cap() int { return len(l.slots) }

// Len returns the number of occupied slots.
func (l *ParkingLot) Len() int {
	n := 0
	for _, s := range l.slots {
		if s != nil {
			n++
		}
	}
	return n
}

// Full reports whether every slot is occupied.
func (l *ParkingLot) Full() bool { return l.Len() == len(l.slots) }

// Occupied returns the indices of occupied slots in order.
func (l *ParkingLot) Occupied() []int {
	out := make([]int, 0, len(l.slots))
	for i, s := range l.slots {
		if s != nil {
			out = append(out, i)
		}
	}
	return out
}
