package game

import (
	"math/rand"
	"time"
)

// PieceBag deals tetrominoes in randomized "bags": each fill is a uniform
// permutation of all seven kinds, dealt completely before the next fill.
// This bounds the worst-case gap between two pieces of the same kind,
// unlike a purely random stream.
type PieceBag struct {
	pieces []Piece
	rng    *rand.Rand
}

// NewPieceBag returns a bag pre-filled with one shuffled set of seven
func NewPieceBag() *PieceBag {
	return NewPieceBagWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewPieceBagWithRand uses the given source, for deterministic tests
func NewPieceBagWithRand(rng *rand.Rand) *PieceBag {
	b := &PieceBag{rng: rng}
	b.fill()
	return b
}

// Pop removes and returns the front piece. When the last piece of a bag
// is dealt the queue is refilled immediately, so the bag is never left
// empty after a Pop.
func (b *PieceBag) Pop() Piece {
	piece := b.pieces[0]
	b.pieces = b.pieces[1:]
	if len(b.pieces) == 0 {
		b.fill()
	}
	return piece
}

// Peek returns a copy of the front piece without removing it. An empty
// bag is unreachable through Pop's refill guarantee and panics.
func (b *PieceBag) Peek() Piece {
	if len(b.pieces) == 0 {
		panic("piece bag is empty")
	}
	return b.pieces[0].Clone()
}

// fill appends a fresh uniform permutation of all seven kinds
func (b *PieceBag) fill() {
	order := make([]Kind, len(Kinds))
	copy(order, Kinds)
	b.rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	for _, k := range order {
		b.pieces = append(b.pieces, NewPiece(k))
	}
}
