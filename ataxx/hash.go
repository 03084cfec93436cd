package ataxx

import (
	"fmt"
	"math/bits"
)

// Hash is the semi-unique checksum of a Position, intended as a transposition
// table key. It is deterministic and cheap to maintain across moves, but it
// is deliberately not collision-free: consumers must tolerate rare false
// matches in exchange for skipping per-piece random-table lookups.
type Hash uint64

// Constants of the hash function.
const (
	hashX uint64 = 6364136223846793005
	hashY uint64 = 1442695040888963407
	hashZ uint64 = 2305843009213693951
)

// NewHash folds the two color bitboards and the side to move into a Hash.
// Blocker squares are left out since they cannot change during a game.
//
// The function computes x*a + y*b + hi(y*a) + hi(z*b), an almost-delta-
// universal family (Nguyen & Roscoe, https://eprint.iacr.org/2011/116.pdf).
// The result is bitwise complemented when Black is to move, so two positions
// differing only in side to move have complementary hashes and a pass move
// updates the checksum with a single complement.
func NewHash(black, white BitBoard, stm Color) Hash {
	a := uint64(black)
	b := uint64(white)

	hiYA, _ := bits.Mul64(hashY, a)
	hiZB, _ := bits.Mul64(hashZ, b)
	hash := hashX*a + hashY*b + hiYA + hiZB

	if stm == Black {
		hash = ^hash
	}
	return Hash(hash)
}

func (h Hash) String() string { return fmt.Sprintf("0x%X", uint64(h)) }
