package ataxx

import "fmt"

// Move encodes one Ataxx move in a 16-bit value: 6 bits of source square and
// 6 bits of target square. A single move (placing a new piece next to an
// existing one) stores the same square in both fields; a jump move relocates
// the piece on the source square to the target square two away.
type Move uint16

const (
	moveSourceShift = 0
	moveTargetShift = 6
	moveSquareMask  = 0x3F

	// MoveNull is an invalid placeholder move.
	MoveNull Move = 1 << 15
	// MovePass switches the side to move without touching any pieces. It is
	// only legal when the mover has pieces but no single or jump available.
	MovePass Move = 1<<15 | 1<<14
)

// NewMove returns a jump move from source to target.
func NewMove(source, target Square) Move {
	return Move(uint16(source)<<moveSourceShift | uint16(target)<<moveTargetShift)
}

// NewSingleMove returns a single (placement) move to the target square.
func NewSingleMove(target Square) Move { return NewMove(target, target) }

// Source returns the square the moving piece leaves. For a single move it
// equals Target, since no piece leaves any square.
func (m Move) Source() Square { return Square((m >> moveSourceShift) & moveSquareMask) }

// Target returns the square the move lands on.
func (m Move) Target() Square { return Square((m >> moveTargetShift) & moveSquareMask) }

// IsSingle reports whether the move places a new piece rather than relocating
// one. The result is undefined for MoveNull and MovePass.
func (m Move) IsSingle() bool { return m.Source() == m.Target() }

// String formats the move: "0000" for a pass, "g2" for a single move and
// "a1c3" for a jump. ParseMove is its inverse; MoveNull formats as "null".
func (m Move) String() string {
	switch {
	case m == MoveNull:
		return "null"
	case m == MovePass:
		return "0000"
	case m.IsSingle():
		return m.Target().String()
	default:
		return m.Source().String() + m.Target().String()
	}
}

// ParseMove parses the textual form of a move: "0000" for a pass, a lone
// target square for a single move, or a source-target square pair for a jump.
func ParseMove(s string) (Move, error) {
	if s == "0000" {
		return MovePass, nil
	}
	switch len(s) {
	case 2:
		target, err := ParseSquare(s)
		if err != nil {
			return MoveNull, err
		}
		return NewSingleMove(target), nil
	case 4:
		source, err := ParseSquare(s[:2])
		if err != nil {
			return MoveNull, err
		}
		target, err := ParseSquare(s[2:])
		if err != nil {
			return MoveNull, err
		}
		return NewMove(source, target), nil
	}
	return MoveNull, fmt.Errorf("invalid move %q: length must be 2 or 4", s)
}
