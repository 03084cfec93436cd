package ataxx

import "fmt"

// Board geometry.
const (
	boardWidth = 7
	// NumSquares is the number of playable squares on the board.
	NumSquares = boardWidth * boardWidth
)

// Square identifies one of the 49 board squares, rank-major: square index is
// rank*7 + file, so a1 = 0 and g7 = 48.
type Square int

// NoSquare is the "no square" sentinel used by pass moves and parse failures.
const NoSquare Square = -1

// NewSquare builds a square from zero-based file and rank indices.
func NewSquare(file, rank int) Square { return Square(rank*boardWidth + file) }

// File returns the zero-based file index (0 = file a).
func (sq Square) File() int { return int(sq) % boardWidth }

// Rank returns the zero-based rank index (0 = rank 1).
func (sq Square) Rank() int { return int(sq) / boardWidth }

// IsValid reports whether the square is on the board.
func (sq Square) IsValid() bool { return sq >= 0 && sq < NumSquares }

// String returns the algebraic form of the square, e.g. "a1" or "g7".
// NoSquare and any other off-board value format as "-".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{'a' + byte(sq.File()), '1' + byte(sq.Rank())})
}

// ParseSquare converts algebraic coordinates ("a1" through "g7") into a
// Square. It is the inverse of Square.String.
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("invalid square %q: must be 2 characters", s)
	}
	file := int(s[0]) - 'a'
	rank := int(s[1]) - '1'
	if file < 0 || file >= boardWidth || rank < 0 || rank >= boardWidth {
		return NoSquare, fmt.Errorf("invalid square %q: out of range", s)
	}
	return NewSquare(file, rank), nil
}
