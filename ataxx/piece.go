package ataxx

import "fmt"

// Color is a side in the game. Black plays the "x" pieces and moves first,
// White plays the "o" pieces.
type Color uint8

const (
	Black Color = 0
	White Color = 1
)

// Other returns the opposing side.
func (c Color) Other() Color { return c ^ 1 }

func (c Color) String() string {
	if c == Black {
		return "x"
	}
	return "o"
}

// ParseColor parses a side-to-move token. Both common letter conventions are
// accepted: x/b for Black and o/w for White.
func ParseColor(s string) (Color, error) {
	switch s {
	case "x", "X", "b", "B":
		return Black, nil
	case "o", "O", "w", "W":
		return White, nil
	}
	return Black, fmt.Errorf("invalid side to move %q", s)
}

// Piece is the occupancy state of a single square. A square holds exactly one
// of these states at any time.
type Piece uint8

const (
	NoPiece Piece = iota
	BlackPiece
	WhitePiece
	// Blocker squares never change hands and never host a move.
	Blocker
)

// PieceFromColor returns the piece belonging to the given side.
func PieceFromColor(c Color) Piece {
	if c == Black {
		return BlackPiece
	}
	return WhitePiece
}

func (p Piece) String() string {
	switch p {
	case BlackPiece:
		return "x"
	case WhitePiece:
		return "o"
	case Blocker:
		return "-"
	}
	return "."
}
