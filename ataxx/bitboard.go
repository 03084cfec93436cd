package ataxx

import (
	"math/bits"
	"strings"
)

// BitBoard represents a set of board squares as a 49-bit bitset packed into a
// uint64, 7 bits per rank. A BitBoard contains a Square when the 1 << square
// bit is set. Bits at index 49 and above are always zero; every operation
// that could push bits past the board masks them back out.
type BitBoard uint64

const (
	// BBEmpty is the set containing no squares.
	BBEmpty BitBoard = 0
	// BBUniverse is the set containing all 49 squares.
	BBUniverse BitBoard = 0x1FFFFFFFFFFFF

	bbFileA BitBoard = 0x0040810204081
	bbFileG BitBoard = bbFileA << 6
)

// SquareBB returns the bitboard with only the given square's bit set.
func SquareBB(sq Square) BitBoard { return 1 << uint(sq) }

// Contains reports whether the square is in the set.
func (bb BitBoard) Contains(sq Square) bool { return bb&SquareBB(sq) != 0 }

// Count returns the number of squares in the set.
func (bb BitBoard) Count() int { return bits.OnesCount64(uint64(bb)) }

// IsEmpty reports whether the set contains no squares.
func (bb BitBoard) IsEmpty() bool { return bb == BBEmpty }

// IsDisjoint reports whether the two sets share no squares.
func (bb BitBoard) IsDisjoint(other BitBoard) bool { return bb&other == BBEmpty }

// North shifts every square one rank up; squares on rank 7 fall off.
func (bb BitBoard) North() BitBoard { return (bb << boardWidth) & BBUniverse }

// South shifts every square one rank down; squares on rank 1 fall off.
func (bb BitBoard) South() BitBoard { return bb >> boardWidth }

// East shifts every square one file right; squares on file g fall off.
func (bb BitBoard) East() BitBoard { return ((bb &^ bbFileG) << 1) & BBUniverse }

// West shifts every square one file left; squares on file a fall off.
func (bb BitBoard) West() BitBoard { return (bb &^ bbFileA) >> 1 }

// popFirst removes and returns the lowest square in the set.
func popFirst(bb *BitBoard) Square {
	sq := Square(bits.TrailingZeros64(uint64(*bb)))
	*bb &= *bb - 1
	return sq
}

// String renders the set as a 7x7 grid, rank 7 first, with X for members.
func (bb BitBoard) String() string {
	var sb strings.Builder
	for rank := boardWidth - 1; rank >= 0; rank-- {
		for file := 0; file < boardWidth; file++ {
			if bb.Contains(NewSquare(file, rank)) {
				sb.WriteString("X ")
			} else {
				sb.WriteString(". ")
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
